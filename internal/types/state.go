package types

import "time"

// StateSchemaVersion identifies the persisted state layout.
const StateSchemaVersion = 3

// MoodState is the continuous PAD affect vector, each axis in [-10, 10].
type MoodState struct {
	Pleasure  float64 `json:"pleasure"`
	Arousal   float64 `json:"arousal"`
	Dominance float64 `json:"dominance"`
}

// DesireState tracks the lust scalar in [0, 100].
type DesireState struct {
	Lust float64 `json:"lust"`
}

// BiologicalState holds the slow-moving physiological traits.
type BiologicalState struct {
	Stamina         float64    `json:"stamina"`
	CycleStartDate  time.Time  `json:"cycle_start_date"`
	CycleLength     int        `json:"cycle_length"`
	Sensitivity     float64    `json:"sensitivity"`
	LastReleaseTime *time.Time `json:"last_release_time,omitempty"`
}

// StateRecord is the persisted snapshot of mood, desire, and biology.
// Version is the optimistic-concurrency counter bumped on every save.
type StateRecord struct {
	SchemaVersion int             `json:"schema_version"`
	Version       int64           `json:"version"`
	Mood          MoodState       `json:"mood"`
	Desire        DesireState     `json:"desire"`
	Biology       BiologicalState `json:"biology"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// DefaultCycleLength is used when a record is created without an explicit cycle.
const DefaultCycleLength = 28

// NewStateRecord returns a record with neutral defaults.
func NewStateRecord(now time.Time) StateRecord {
	return StateRecord{
		SchemaVersion: StateSchemaVersion,
		Version:       0,
		Mood:          MoodState{},
		Desire:        DesireState{},
		Biology: BiologicalState{
			Stamina:        100.0,
			CycleStartDate: now,
			CycleLength:    DefaultCycleLength,
			Sensitivity:    0.0,
		},
		UpdatedAt: now,
	}
}

// Reset restores neutral defaults while keeping the version counter,
// so a concurrent writer still observes the conflict.
func (r *StateRecord) Reset(now time.Time) {
	version := r.Version
	*r = NewStateRecord(now)
	r.Version = version
}
