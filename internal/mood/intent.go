package mood

import "github.com/easeaico/project-texas/internal/types"

// Intent is a coarse classification of a conversational turn, used when the
// generation step reports an intent instead of raw deltas.
type Intent string

const (
	IntentNormal  Intent = "Normal"
	IntentFlirt   Intent = "Flirt"
	IntentComfort Intent = "Comfort"
	IntentAttack  Intent = "Attack"
)

// LustGainModifier scales desire gain by development tier and cycle timing.
// Pain days dampen gain; the mid-cycle window heightens it.
func LustGainModifier(bio types.BiologicalState, cycle CycleState) float64 {
	modifier := 1.0

	if cycle.PainLevel > 0 {
		modifier *= 0.8
	} else if mid := bio.CycleLength / 2; cycle.CycleDay >= mid-2 && cycle.CycleDay <= mid+2 {
		modifier *= 1.5
	}

	level, _ := SensitivityLevel(bio.Sensitivity)
	switch {
	case level == 0:
		modifier *= 0.5
	case level == 1:
		modifier *= 0.8
	case level >= 3:
		modifier *= 1.0 + float64(level-2)*0.2
	}

	return modifier
}

// IntentImpact translates an intent and its intensity (1–5) into a delta
// batch. Flirt desire gain is scaled by LustGainModifier.
func IntentImpact(intent Intent, intensity float64, bio types.BiologicalState, cycle CycleState) DeltaBatch {
	if intensity < 1 {
		intensity = 1
	}
	if intensity > 5 {
		intensity = 5
	}

	var d Delta
	switch intent {
	case IntentFlirt:
		d.Pleasure = 1.0 * intensity
		d.Arousal = 2.0 * intensity
		d.Lust = 5.0 * intensity * LustGainModifier(bio, cycle)
	case IntentComfort:
		d.Pleasure = 2.0 * intensity
		d.Arousal = -2.0 * intensity
		d.Dominance = 1.0 * intensity
		d.HasDominance = true
	case IntentAttack:
		d.Pleasure = -3.0 * intensity
		d.Arousal = 3.0 * intensity
		d.Dominance = -2.0 * intensity
		d.HasDominance = true
	default:
		return DeltaBatch{}
	}
	return DeltaBatch{Deltas: []Delta{d}}
}
