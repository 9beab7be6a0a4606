package utils

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"
)

// StateTag is the parsed `P±x A±y D±z L±w` adjustment emitted by the
// generation step. D and L are optional in the grammar.
type StateTag struct {
	Pleasure     float64
	Arousal      float64
	Dominance    float64
	HasDominance bool
	Lust         float64
	HasLust      bool
}

// Absurd-magnitude ceilings: a delta larger than the full axis span is
// clamped and logged rather than failing the turn.
const (
	maxMoodDelta = 20.0
	maxLustDelta = 100.0
)

var (
	stateTagRe = regexp.MustCompile(`(?i)\[\s*P\s*([+-]?\d+(?:\.\d+)?)\s+A\s*([+-]?\d+(?:\.\d+)?)(?:\s+D\s*([+-]?\d+(?:\.\d+)?))?(?:\s+L\s*([+-]?\d+(?:\.\d+)?))?\s*\]`)
	releaseRe  = regexp.MustCompile(`(?i)\[\s*RELEASE\s*\]`)
)

// ExtractStateTag pulls the state tag and the out-of-band release marker out
// of a model reply. It returns the parsed tag, whether a release fired, the
// reply with both markers stripped, and whether a tag was present at all.
// Malformed tags never fail the turn; they are dropped with a warning.
func ExtractStateTag(raw string) (StateTag, bool, string, bool) {
	release := releaseRe.MatchString(raw)
	cleaned := releaseRe.ReplaceAllString(raw, "")

	match := stateTagRe.FindStringSubmatch(cleaned)
	cleaned = strings.TrimSpace(stateTagRe.ReplaceAllString(cleaned, ""))
	if match == nil {
		return StateTag{}, release, cleaned, false
	}

	var tag StateTag
	tag.Pleasure = parseBounded(match[1], maxMoodDelta, "P")
	tag.Arousal = parseBounded(match[2], maxMoodDelta, "A")
	if match[3] != "" {
		tag.Dominance = parseBounded(match[3], maxMoodDelta, "D")
		tag.HasDominance = true
	}
	if match[4] != "" {
		tag.Lust = parseBounded(match[4], maxLustDelta, "L")
		tag.HasLust = true
	}
	return tag, release, cleaned, true
}

// parseBounded parses a delta component, clamping absurd magnitudes.
func parseBounded(s string, bound float64, axis string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// The grammar regexp only admits numerics; this guards refactors.
		slog.Warn("non-numeric state delta dropped", "axis", axis, "value", s)
		return 0
	}
	if v > bound || v < -bound {
		slog.Warn("out-of-range state delta clamped", "axis", axis, "value", v, "bound", bound)
		if v > 0 {
			return bound
		}
		return -bound
	}
	return v
}
