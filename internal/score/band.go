package score

// Band is the three-band tip policy applied to AI scores. The low and
// mid bands currently behave identically (wrong verdict, negative cue,
// remedial tip), but the band structure is kept explicit: product may
// give the middle band a partial-credit path later.
type Band int

const (
	// BandLow covers scores below 30.
	BandLow Band = iota
	// BandMid covers scores from 30 up to but excluding 60.
	BandMid
	// BandHigh covers scores of 60 and above.
	BandHigh
)

const (
	lowBandLimit  = 30
	highBandFloor = 60
)

// BandFor classifies a score.
func BandFor(score int) Band {
	switch {
	case score < lowBandLimit:
		return BandLow
	case score < highBandFloor:
		return BandMid
	default:
		return BandHigh
	}
}

// Passing reports whether the band counts as a correct answer.
func (b Band) Passing() bool {
	switch b {
	case BandLow:
		return false
	case BandMid:
		// Same treatment as BandLow for now; kept as its own case.
		return false
	case BandHigh:
		return true
	}
	return false
}

// ShowTip reports whether the remedial tip panel should be revealed.
func (b Band) ShowTip() bool {
	switch b {
	case BandLow:
		return true
	case BandMid:
		return true
	case BandHigh:
		return false
	}
	return false
}
