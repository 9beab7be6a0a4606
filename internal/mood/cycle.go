package mood

import (
	"time"

	"github.com/easeaico/project-texas/internal/types"
)

// Phase is the release-recovery phase derived from last_release_time.
type Phase string

const (
	PhaseRefractory   Phase = "Refractory"
	PhaseAfterglow    Phase = "Afterglow"
	PhaseNormal       Phase = "Normal"
	PhaseAccumulating Phase = "Accumulating"
	PhaseStarved      Phase = "Starved"
)

// CycleState is the derived temporal snapshot; recomputed on read, never stored.
type CycleState struct {
	Phase     Phase
	CycleDay  int
	PainLevel float64
}

// CycleTracker derives phase, cycle day, and pain level from timestamps.
// It is pure and safe for concurrent use.
type CycleTracker struct {
	params Params
}

// NewCycleTracker returns a tracker for validated params.
func NewCycleTracker(params Params) (*CycleTracker, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &CycleTracker{params: params}, nil
}

// PhaseOf returns the release phase at now. An unset release time means the
// record has never released and is treated as Starved.
func (t *CycleTracker) PhaseOf(lastRelease *time.Time, now time.Time) Phase {
	if lastRelease == nil || lastRelease.IsZero() {
		return PhaseStarved
	}
	elapsed := now.Sub(*lastRelease)
	switch {
	case elapsed < t.params.RefractoryWindow:
		return PhaseRefractory
	case elapsed < t.params.AfterglowWindow:
		return PhaseAfterglow
	case elapsed < t.params.NormalWindow:
		return PhaseNormal
	case elapsed < t.params.AccumulatingWindow:
		return PhaseAccumulating
	default:
		return PhaseStarved
	}
}

// CycleDay returns the 1-based day within the cycle. A non-positive cycle
// length is a configuration fault, never divided by.
func (t *CycleTracker) CycleDay(start time.Time, length int, now time.Time) (int, error) {
	if length <= 0 {
		return 0, &ConfigError{Field: "CycleLength", Reason: "must be positive"}
	}
	days := daysBetween(start, now)
	day := days % length
	if day < 0 {
		day += length
	}
	return day + 1, nil
}

// PainLevel looks the day up in the configured curve; days off the curve
// carry no pain.
func (t *CycleTracker) PainLevel(day int) float64 {
	return t.params.PainCurve[day]
}

// Snapshot derives the full cycle state for a record at now.
func (t *CycleTracker) Snapshot(bio types.BiologicalState, now time.Time) (CycleState, error) {
	day, err := t.CycleDay(bio.CycleStartDate, bio.CycleLength, now)
	if err != nil {
		return CycleState{}, err
	}
	return CycleState{
		Phase:     t.PhaseOf(bio.LastReleaseTime, now),
		CycleDay:  day,
		PainLevel: t.PainLevel(day),
	}, nil
}

// daysBetween counts whole calendar days from a to b, ignoring clock time.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	start := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	end := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}
