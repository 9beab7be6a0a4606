package mood

// BreakThreshold returns the lust value required to override the pain lock
// and permit non-penetrative contact. Evaluated top-down, first match wins;
// higher sensitivity never raises the bar.
func BreakThreshold(sensitivity float64) float64 {
	switch {
	case sensitivity > 95:
		return 0
	case sensitivity > 80:
		return 40
	case sensitivity > 60:
		return 60
	case sensitivity > 40:
		return 80
	default:
		return 90
	}
}
