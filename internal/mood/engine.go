package mood

import (
	"math"
	"time"

	"github.com/easeaico/project-texas/internal/types"
)

// Delta is one signed adjustment produced by the external generation step.
// HasDominance distinguishes an explicit D shift from an omitted one.
type Delta struct {
	Pleasure     float64
	Arousal      float64
	Dominance    float64
	HasDominance bool
	Lust         float64
}

// DeltaBatch groups the deltas of a single turn. Release marks the batch as
// an explicit release event carried out-of-band from ordinary deltas.
type DeltaBatch struct {
	Deltas  []Delta
	Release bool
}

// UpdateEngine applies delta batches and time passage to a StateRecord.
// It works on record values and returns the updated copy, so a batch is
// atomic by construction: the caller's record is replaced whole or not at
// all. Serialization of writers is the owning service's concern.
type UpdateEngine struct {
	params  Params
	tracker *CycleTracker
}

// NewUpdateEngine validates params and returns an engine.
func NewUpdateEngine(params Params) (*UpdateEngine, error) {
	tracker, err := NewCycleTracker(params)
	if err != nil {
		return nil, err
	}
	return &UpdateEngine{params: params, tracker: tracker}, nil
}

// ApplyTurn applies a batch at now and returns the updated record. Ordinary
// dominance deltas are capped to ±DominanceCap before being added; a release
// batch instead takes its dominance shift from ReleaseDominanceShift, resets
// lust to the post-release baseline, and stamps last_release_time. All
// scalars stay within their declared bounds.
func (e *UpdateEngine) ApplyTurn(rec types.StateRecord, batch DeltaBatch, now time.Time) types.StateRecord {
	next := rec

	// The release shift is computed from the record as it stood when the
	// event fired, before any same-batch deltas land.
	var releaseShift float64
	if batch.Release {
		releaseShift = ReleaseDominanceShift(rec, e.params)
	}

	for _, d := range batch.Deltas {
		next.Mood.Pleasure = clamp(next.Mood.Pleasure+d.Pleasure, e.params.MoodMin, e.params.MoodMax)
		next.Mood.Arousal = clamp(next.Mood.Arousal+d.Arousal, e.params.MoodMin, e.params.MoodMax)
		if d.HasDominance && !batch.Release {
			capped := clamp(d.Dominance, -e.params.DominanceCap, e.params.DominanceCap)
			next.Mood.Dominance = clamp(next.Mood.Dominance+capped, e.params.MoodMin, e.params.MoodMax)
		}
		next.Desire.Lust = clamp(next.Desire.Lust+d.Lust, 0, 100)
	}

	if batch.Release {
		next.Mood.Dominance = clamp(next.Mood.Dominance+releaseShift, e.params.MoodMin, e.params.MoodMax)
		next.Mood.Pleasure = clamp(next.Mood.Pleasure+e.params.ReleasePleasureBoost, e.params.MoodMin, e.params.MoodMax)
		next.Mood.Arousal = clamp(next.Mood.Arousal-e.params.ReleaseArousalDrop, e.params.MoodMin, e.params.MoodMax)
		next.Biology.Stamina = clamp(next.Biology.Stamina-e.params.ReleaseStaminaCost, 0, 100)
		next.Biology.Sensitivity = clamp(next.Biology.Sensitivity+e.params.SensitivityGrowth, 0, 100)
		next.Desire.Lust = clamp(e.params.PostReleaseLust, 0, 100)
		released := now
		next.Biology.LastReleaseTime = &released
	}

	next.UpdatedAt = now
	return next
}

// ApplyTimePassage settles the elapsed interval since the record was last
// updated: mood decays toward the base mood, lust decays or accumulates with
// the release phase, and stamina recovers while resting. Intervals under a
// minute are ignored.
func (e *UpdateEngine) ApplyTimePassage(rec types.StateRecord, now time.Time) types.StateRecord {
	hours := now.Sub(rec.UpdatedAt).Hours()
	if hours < 1.0/60.0 {
		return rec
	}

	next := rec

	factor := math.Pow(1.0-e.params.MoodDecayRate, hours)
	base := e.params.BaseMood
	next.Mood.Pleasure = clamp(base.Pleasure+(next.Mood.Pleasure-base.Pleasure)*factor, e.params.MoodMin, e.params.MoodMax)
	next.Mood.Arousal = clamp(base.Arousal+(next.Mood.Arousal-base.Arousal)*factor, e.params.MoodMin, e.params.MoodMax)
	next.Mood.Dominance = clamp(base.Dominance+(next.Mood.Dominance-base.Dominance)*factor, e.params.MoodMin, e.params.MoodMax)

	switch e.tracker.PhaseOf(next.Biology.LastReleaseTime, now) {
	case PhaseAccumulating:
		next.Desire.Lust = clamp(next.Desire.Lust+e.params.LustAccumPerHour*hours, 0, 100)
		next.Biology.Stamina = clamp(next.Biology.Stamina-e.params.StaminaDrainPerHr*hours, 0, 100)
	case PhaseStarved:
		next.Desire.Lust = clamp(next.Desire.Lust+2.0*e.params.LustAccumPerHour*hours, 0, 100)
		next.Biology.Stamina = clamp(next.Biology.Stamina-e.params.StaminaDrainPerHr*hours, 0, 100)
	case PhaseRefractory, PhaseAfterglow:
		// Resting: desire stays put, stamina recovers.
		next.Biology.Stamina = clamp(next.Biology.Stamina+e.params.StaminaRestPerHr*hours, 0, 100)
	default:
		decay := e.params.LustDecayPerHour * hours
		if next.Biology.Sensitivity > 50 {
			decay *= 0.5
		}
		next.Desire.Lust = clamp(next.Desire.Lust-decay, 0, 100)
		next.Biology.Stamina = clamp(next.Biology.Stamina-e.params.StaminaDrainPerHr*hours, 0, 100)
	}

	next.UpdatedAt = now
	return next
}

// MindBreakActive reports whether lust has crossed the terminal limit.
func (e *UpdateEngine) MindBreakActive(rec types.StateRecord) bool {
	return rec.Desire.Lust > e.params.MindBreakLust
}
