package specimen

// BrushSet names a stroke style family. One set is active per target
// image; strokes keep the shape of the set that created them.
type BrushSet uint8

const (
	// BrushCanvas paints soft round dabs
	BrushCanvas BrushSet = iota
	// BrushRound paints hard-edged discs
	BrushRound
	// BrushStreak paints elongated directional strokes
	BrushStreak
)

// AllBrushSets is the default rotation the selector draws from
var AllBrushSets = []BrushSet{BrushCanvas, BrushRound, BrushStreak}

func (b BrushSet) String() string {
	switch b {
	case BrushCanvas:
		return "canvas"
	case BrushRound:
		return "round"
	case BrushStreak:
		return "streak"
	}
	return "unknown"
}

// SizeRange returns the stroke radius bounds for this set, as a fraction
// of the shorter canvas dimension
func (b BrushSet) SizeRange() (min, max float64) {
	switch b {
	case BrushStreak:
		return 0.01, 0.08
	case BrushRound:
		return 0.015, 0.12
	default:
		return 0.02, 0.16
	}
}

// Elongation returns the length/width ratio range for strokes of this set
func (b BrushSet) Elongation() (min, max float64) {
	if b == BrushStreak {
		return 2.0, 5.0
	}
	return 1.0, 1.3
}
