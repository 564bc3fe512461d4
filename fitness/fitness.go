// Package fitness scores a rendered specimen against a target image.
// Lower is better; zero means a pixel-perfect match.
package fitness

import (
	"fmt"
	"math"

	"github.com/lixenwraith/easel/canvas"
)

// WorstScore is the sentinel assigned before the first real evaluation of
// an image session
const WorstScore = math.MaxFloat64

// DifferenceMethod selects the per-pixel color distance
type DifferenceMethod uint8

const (
	// DiffDeltaE is a redmean-weighted RGB distance, a cheap perceptual
	// approximation of CIE delta-E
	DiffDeltaE DifferenceMethod = iota
	// DiffMSE is plain mean squared error over RGB
	DiffMSE
)

func (m DifferenceMethod) String() string {
	switch m {
	case DiffDeltaE:
		return "deltae"
	case DiffMSE:
		return "mse"
	}
	return "unknown"
}

// ParseDifferenceMethod maps a config string to a method
func ParseDifferenceMethod(s string) (DifferenceMethod, error) {
	switch s {
	case "deltae":
		return DiffDeltaE, nil
	case "mse":
		return DiffMSE, nil
	}
	return DiffDeltaE, fmt.Errorf("unknown difference method %q", s)
}

// PixelDiff returns the distance between two RGB pixels under m
func PixelDiff(m DifferenceMethod, r1, g1, b1, r2, g2, b2 uint8) float64 {
	dr := float64(r1) - float64(r2)
	dg := float64(g1) - float64(g2)
	db := float64(b1) - float64(b2)
	switch m {
	case DiffMSE:
		return (dr*dr + dg*dg + db*db) / 3
	default:
		// Redmean: weight channels by where human sensitivity sits
		rm := (float64(r1) + float64(r2)) / 2
		return math.Sqrt((2+rm/256)*dr*dr + 4*dg*dg + (2+(255-rm)/256)*db*db)
	}
}

// regionDiff sums pixel distance between a and b over the clipped box
func regionDiff(a, b *canvas.Image, m DifferenceMethod, x0, y0, x1, y1 int) float64 {
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > a.W-1 {
		x1 = a.W - 1
	}
	if y1 > a.H-1 {
		y1 = a.H - 1
	}
	var total float64
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r1, g1, b1 := a.At(x, y)
			r2, g2, b2 := b.At(x, y)
			total += PixelDiff(m, r1, g1, b1, r2, g2, b2)
		}
	}
	return total
}
