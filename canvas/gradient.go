package canvas

import (
	"math"
	"math/rand/v2"
	"sort"
)

// Gradient holds per-pixel edge magnitude for a target image plus a
// cumulative distribution over it, so mutation can bias new strokes toward
// detailed regions.
type Gradient struct {
	W, H int
	Mag  []float64
	cum  []float64
	sum  float64
}

// NewGradient computes a Sobel edge-magnitude map over the luminance of im
func NewGradient(im *Image) *Gradient {
	g := &Gradient{W: im.W, H: im.H}
	n := im.W * im.H
	g.Mag = make([]float64, n)
	g.cum = make([]float64, n)
	if n == 0 {
		return g
	}

	lum := func(x, y int) float64 {
		r, gr, b := im.At(clamp(x, 0, im.W-1), clamp(y, 0, im.H-1))
		return 0.299*float64(r) + 0.587*float64(gr) + 0.114*float64(b)
	}

	for y := 0; y < im.H; y++ {
		for x := 0; x < im.W; x++ {
			gx := -lum(x-1, y-1) - 2*lum(x-1, y) - lum(x-1, y+1) +
				lum(x+1, y-1) + 2*lum(x+1, y) + lum(x+1, y+1)
			gy := -lum(x-1, y-1) - 2*lum(x, y-1) - lum(x+1, y-1) +
				lum(x-1, y+1) + 2*lum(x, y+1) + lum(x+1, y+1)
			m := math.Sqrt(gx*gx + gy*gy)
			i := y*im.W + x
			g.Mag[i] = m
			// Small floor keeps flat regions reachable
			g.sum += m + 1.0
			g.cum[i] = g.sum
		}
	}
	return g
}

// Sample returns a pixel position drawn with probability proportional to
// gradient magnitude (plus a uniform floor)
func (g *Gradient) Sample(rng *rand.Rand) (x, y int) {
	if g.W == 0 || g.H == 0 {
		return 0, 0
	}
	target := rng.Float64() * g.sum
	i := sort.SearchFloat64s(g.cum, target)
	if i >= len(g.cum) {
		i = len(g.cum) - 1
	}
	return i % g.W, i / g.W
}
