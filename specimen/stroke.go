package specimen

import (
	"math"

	"github.com/lixenwraith/easel/canvas"
)

// Stroke is one brush mark: an oriented ellipse with color and opacity.
// Soft sets fade alpha toward the rim, hard sets do not.
type Stroke struct {
	X, Y    float64 // center, pixels
	Radius  float64 // semi-minor axis, pixels
	Angle   float64 // orientation, radians
	Elong   float64 // semi-major / semi-minor ratio, >= 1
	R, G, B uint8
	Opacity float64 // 0..1
	Brush   BrushSet
}

// Bounds returns the integer pixel box the stroke can touch
func (st *Stroke) Bounds() (x0, y0, x1, y1 int) {
	reach := st.Radius * math.Max(st.Elong, 1)
	x0 = int(math.Floor(st.X - reach))
	y0 = int(math.Floor(st.Y - reach))
	x1 = int(math.Ceil(st.X + reach))
	y1 = int(math.Ceil(st.Y + reach))
	return
}

// Draw alpha-blends the stroke onto im
func (st *Stroke) Draw(im *canvas.Image) {
	if st.Radius <= 0 || st.Opacity <= 0 {
		return
	}
	x0, y0, x1, y1 := st.Bounds()
	x0 = max(x0, 0)
	y0 = max(y0, 0)
	x1 = min(x1, im.W-1)
	y1 = min(y1, im.H-1)

	sin, cos := math.Sincos(st.Angle)
	major := st.Radius * math.Max(st.Elong, 1)
	minor := st.Radius
	soft := st.Brush == BrushCanvas || st.Brush == BrushStreak

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			// Rotate into stroke space
			dx := float64(x) - st.X
			dy := float64(y) - st.Y
			u := (dx*cos + dy*sin) / major
			v := (-dx*sin + dy*cos) / minor
			d2 := u*u + v*v
			if d2 > 1 {
				continue
			}
			a := st.Opacity
			if soft {
				a *= 1 - d2
			}
			if a <= 0 {
				continue
			}
			br, bg, bb := im.At(x, y)
			im.Set(x, y,
				blend(br, st.R, a),
				blend(bg, st.G, a),
				blend(bb, st.B, a),
			)
		}
	}
}

func blend(under, over uint8, a float64) uint8 {
	v := float64(under)*(1-a) + float64(over)*a
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
