package mood

import (
	"time"

	"github.com/easeaico/project-texas/internal/types"
)

// Level is the arbitration tier that produced a directive.
type Level string

const (
	LevelHardLock  Level = "HardLock"
	LevelLimit     Level = "Limit"
	LevelResonance Level = "Resonance"
	LevelBase      Level = "Base"
)

// LockKind names the physiological hard lock in effect, if any.
type LockKind string

const (
	LockNone       LockKind = ""
	LockComatose   LockKind = "Comatose"
	LockRefractory LockKind = "Refractory"
	LockPain       LockKind = "Pain"
	// LockPainBypass is the downgraded pain lock: desire has crossed the
	// break threshold, so refusal softens to non-penetrative contact only.
	LockPainBypass LockKind = "PainBypass"
)

// StaminaTier buckets stamina for arbitration and flavor.
type StaminaTier string

const (
	TierVigorous StaminaTier = "Vigorous"
	TierTired    StaminaTier = "Tired"
	TierDrained  StaminaTier = "Drained"
	TierComatose StaminaTier = "Comatose"
)

// StaminaTierOf buckets a stamina value. The Comatose floor is the arbiter's
// hard-lock boundary and is kept in Params.
func StaminaTierOf(stamina, comatoseFloor float64) StaminaTier {
	switch {
	case stamina < comatoseFloor:
		return TierComatose
	case stamina < 40:
		return TierDrained
	case stamina < 60:
		return TierTired
	default:
		return TierVigorous
	}
}

// Directive is the structured behavioral instruction handed to the
// generation step. It is a pure function of a StateRecord and a clock.
type Directive struct {
	Level       Level
	Lock        LockKind
	Quadrant    Quadrant
	Phase       Phase
	CycleDay    int
	PainLevel   float64
	StaminaTier StaminaTier
	MindBreak   bool
	Text        string
}

// Arbiter composes the classifier, tracker, and threshold table into one
// ranked, non-contradictory directive. Reads are side-effect free; the
// same record and clock always produce the same directive.
type Arbiter struct {
	params  Params
	tracker *CycleTracker
}

// NewArbiter validates params and returns an arbiter.
func NewArbiter(params Params) (*Arbiter, error) {
	tracker, err := NewCycleTracker(params)
	if err != nil {
		return nil, err
	}
	return &Arbiter{params: params, tracker: tracker}, nil
}

// Decide evaluates the priority hierarchy top-down. The only possible error
// is a ConfigError from an invalid cycle length on the record itself; with a
// valid record every state within bounds maps to exactly one directive.
func (a *Arbiter) Decide(rec types.StateRecord, now time.Time) (Directive, error) {
	cycle, err := a.tracker.Snapshot(rec.Biology, now)
	if err != nil {
		return Directive{}, err
	}

	d := Directive{
		Quadrant:    Classify(rec.Mood, a.params.DeadZone),
		Phase:       cycle.Phase,
		CycleDay:    cycle.CycleDay,
		PainLevel:   cycle.PainLevel,
		StaminaTier: StaminaTierOf(rec.Biology.Stamina, a.params.ComatoseStamina),
		MindBreak:   rec.Desire.Lust > a.params.MindBreakLust,
	}

	// 1. Physiological hard locks.
	if d.StaminaTier == TierComatose {
		d.Level = LevelHardLock
		d.Lock = LockComatose
		d.Text = lockText(LockComatose)
		return d, nil
	}
	if cycle.Phase == PhaseRefractory {
		d.Level = LevelHardLock
		d.Lock = LockRefractory
		d.Text = lockText(LockRefractory)
		return d, nil
	}
	if cycle.PainLevel > a.params.PainLockLevel && rec.Mood.Pleasure < a.params.PainLockPleasure {
		d.Level = LevelHardLock
		// Desire above the sensitivity-derived threshold downgrades the
		// refusal instead of removing it.
		if rec.Desire.Lust >= BreakThreshold(rec.Biology.Sensitivity) {
			d.Lock = LockPainBypass
			d.Text = lockText(LockPainBypass)
		} else {
			d.Lock = LockPain
			d.Text = lockText(LockPain)
		}
		return d, nil
	}

	// 2. Limit state.
	if d.MindBreak {
		d.Level = LevelLimit
		d.Text = mindBreakText()
		return d, nil
	}

	// 3. Resonance field.
	if d.Quadrant != QuadrantNeutral || rec.Desire.Lust > lowLust {
		d.Level = LevelResonance
		d.Text = resonanceText(rec, d)
		return d, nil
	}

	// 4. Base state.
	d.Level = LevelBase
	d.Text = baseText()
	return d, nil
}

// lowLust is the desire level below which a neutral mood stays at base.
const lowLust = 40.0
