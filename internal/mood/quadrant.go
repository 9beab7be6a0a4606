package mood

import (
	"math"

	"github.com/easeaico/project-texas/internal/types"
)

// Quadrant is the discrete affect octant derived from the sign of each
// PAD axis, or Neutral when all three magnitudes sit inside the dead zone.
type Quadrant string

const (
	QuadrantNeutral Quadrant = "Neutral"

	// High pleasure.
	QuadrantConqueror Quadrant = "Conqueror" // +P +A +D
	QuadrantDevotee   Quadrant = "Devotee"   // +P +A -D
	QuadrantSovereign Quadrant = "Sovereign" // +P -A +D
	QuadrantClingyPet Quadrant = "ClingyPet" // +P -A -D

	// Low pleasure.
	QuadrantTsundere Quadrant = "Tsundere" // -P +A +D
	QuadrantAnxious  Quadrant = "Anxious"  // -P +A -D
	QuadrantIceQueen Quadrant = "IceQueen" // -P -A +D
	QuadrantBroken   Quadrant = "Broken"   // -P -A -D
)

// Classify maps a mood vector to exactly one quadrant label. It is pure and
// total: every valid MoodState yields a label, and scaling that preserves
// the sign of each axis (outside the dead zone) yields the same label.
func Classify(m types.MoodState, deadZone float64) Quadrant {
	if math.Abs(m.Pleasure) < deadZone &&
		math.Abs(m.Arousal) < deadZone &&
		math.Abs(m.Dominance) < deadZone {
		return QuadrantNeutral
	}

	highP := m.Pleasure >= 0
	highA := m.Arousal >= 0
	highD := m.Dominance >= 0

	switch {
	case highP && highA && highD:
		return QuadrantConqueror
	case highP && highA && !highD:
		return QuadrantDevotee
	case highP && !highA && highD:
		return QuadrantSovereign
	case highP && !highA && !highD:
		return QuadrantClingyPet
	case !highP && highA && highD:
		return QuadrantTsundere
	case !highP && highA && !highD:
		return QuadrantAnxious
	case !highP && !highA && highD:
		return QuadrantIceQueen
	default:
		return QuadrantBroken
	}
}

// DominantLeaning reports whether the quadrant reads as assertive. These are
// the four high-dominance octants; Neutral is not assertive.
func (q Quadrant) DominantLeaning() bool {
	switch q {
	case QuadrantConqueror, QuadrantSovereign, QuadrantTsundere, QuadrantIceQueen:
		return true
	default:
		return false
	}
}
