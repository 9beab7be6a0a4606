package mood

import (
	"time"

	"github.com/easeaico/project-texas/internal/types"
)

// Params holds every tunable of the state machine. Nothing in the logic
// components is hardcoded; callers inject a validated Params.
type Params struct {
	// Mood axis bounds and the quadrant dead zone.
	MoodMin  float64
	MoodMax  float64
	DeadZone float64

	// BaseMood is the point mood decays back to over time.
	BaseMood types.MoodState

	// Release phase breakpoints, measured from last_release_time.
	RefractoryWindow   time.Duration
	AfterglowWindow    time.Duration
	NormalWindow       time.Duration
	AccumulatingWindow time.Duration

	// PainCurve maps cycle day to pain level in [0, 1].
	PainCurve        map[int]float64
	PainLockLevel    float64
	PainLockPleasure float64

	// Ordinary-turn dominance cap and release-delta clamp.
	DominanceCap float64
	ReleaseClamp float64

	// Desire breakpoints.
	MindBreakLust   float64
	PostReleaseLust float64

	// Stamina tier floor for the comatose hard lock.
	ComatoseStamina float64

	// Time passage rates, per hour.
	MoodDecayRate     float64
	LustDecayPerHour  float64
	LustAccumPerHour  float64
	StaminaRestPerHr  float64
	StaminaDrainPerHr float64

	// Release side effects beyond the dominance shift.
	ReleasePleasureBoost float64
	ReleaseArousalDrop   float64
	ReleaseStaminaCost   float64
	SensitivityGrowth    float64
}

// DefaultParams returns the production defaults.
func DefaultParams() Params {
	return Params{
		MoodMin:  -10.0,
		MoodMax:  10.0,
		DeadZone: 1.0,

		BaseMood: types.MoodState{Pleasure: 1.0, Arousal: -1.0, Dominance: 1.0},

		RefractoryWindow:   30 * time.Minute,
		AfterglowWindow:    2 * time.Hour,
		NormalWindow:       72 * time.Hour,
		AccumulatingWindow: 168 * time.Hour,

		PainCurve:        map[int]float64{1: 0.8, 2: 0.6},
		PainLockLevel:    0.5,
		PainLockPleasure: -2.0,

		DominanceCap: 0.2,
		ReleaseClamp: 3.0,

		MindBreakLust:   95.0,
		PostReleaseLust: 10.0,

		ComatoseStamina: 10.0,

		MoodDecayRate:     0.10,
		LustDecayPerHour:  5.0,
		LustAccumPerHour:  2.0,
		StaminaRestPerHr:  12.0,
		StaminaDrainPerHr: 1.0,

		ReleasePleasureBoost: 5.0,
		ReleaseArousalDrop:   5.0,
		ReleaseStaminaCost:   30.0,
		SensitivityGrowth:    1.0,
	}
}

// Validate checks the params and returns a ConfigError on the first problem.
func (p Params) Validate() error {
	if p.MoodMin >= p.MoodMax {
		return &ConfigError{Field: "MoodMin/MoodMax", Reason: "min must be below max"}
	}
	if p.DeadZone < 0 {
		return &ConfigError{Field: "DeadZone", Reason: "must be non-negative"}
	}
	if p.RefractoryWindow <= 0 || p.AfterglowWindow <= p.RefractoryWindow ||
		p.NormalWindow <= p.AfterglowWindow || p.AccumulatingWindow <= p.NormalWindow {
		return &ConfigError{Field: "phase windows", Reason: "breakpoints must be positive and strictly increasing"}
	}
	for day, level := range p.PainCurve {
		if day < 1 {
			return &ConfigError{Field: "PainCurve", Reason: "cycle days start at 1"}
		}
		if level < 0 || level > 1 {
			return &ConfigError{Field: "PainCurve", Reason: "pain level must be within [0, 1]"}
		}
	}
	if p.DominanceCap <= 0 {
		return &ConfigError{Field: "DominanceCap", Reason: "must be positive"}
	}
	if p.ReleaseClamp <= 0 {
		return &ConfigError{Field: "ReleaseClamp", Reason: "must be positive"}
	}
	if p.MindBreakLust <= 0 || p.MindBreakLust > 100 {
		return &ConfigError{Field: "MindBreakLust", Reason: "must be within (0, 100]"}
	}
	if p.PostReleaseLust < 0 || p.PostReleaseLust > 100 {
		return &ConfigError{Field: "PostReleaseLust", Reason: "must be within [0, 100]"}
	}
	if p.MoodDecayRate < 0 || p.MoodDecayRate >= 1 {
		return &ConfigError{Field: "MoodDecayRate", Reason: "must be within [0, 1)"}
	}
	return nil
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
