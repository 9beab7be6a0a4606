package mood

import (
	"math"

	"github.com/easeaico/project-texas/internal/types"
)

// loss-of-control threshold: above this lust the release always reads passive.
const controlLossLust = 90.0

// neutralBand is the dominance magnitude below which feedback has no bias.
const neutralBand = 1.0

// ReleaseDominanceShift computes the dominance delta triggered by a release
// event. It never mutates state and is deterministic for identical inputs;
// this is the only path by which dominance may move more than the ordinary
// per-turn cap. The result is clamped to ±params.ReleaseClamp.
func ReleaseDominanceShift(rec types.StateRecord, params Params) float64 {
	sensitivity := rec.Biology.Sensitivity

	base := 0.5 + (sensitivity/100.0)*2.0

	direction := -1.0
	if Classify(rec.Mood, params.DeadZone).DominantLeaning() {
		direction = 1.0
	}
	if rec.Desire.Lust > controlLossLust {
		direction = -1.0
	}

	// Moving further in the direction the record already leans is amplified;
	// moving against it is damped. Inside the neutral band there is no bias.
	feedback := 1.0
	dominance := rec.Mood.Dominance
	if math.Abs(dominance) > neutralBand {
		if (dominance > 0) == (direction > 0) {
			feedback = 1.5
		} else {
			feedback = 0.5
		}
	}

	amplifier := 1.0 + (sensitivity/100.0)*0.5
	feedback = math.Pow(feedback, amplifier)

	return clamp(base*direction*feedback, -params.ReleaseClamp, params.ReleaseClamp)
}
