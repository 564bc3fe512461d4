package canvas

// ScaleToFit resamples src to the largest size that fits inside
// (maxW, maxH) while preserving aspect ratio. Center-of-region point
// sampling; the source is not mutated.
func ScaleToFit(src *Image, maxW, maxH int) *Image {
	if src.Empty() || maxW < 1 || maxH < 1 {
		return New(0, 0)
	}

	outW := maxW
	outH := outW * src.H / src.W
	if outH > maxH {
		outH = maxH
		outW = outH * src.W / src.H
	}
	if outW < 1 {
		outW = 1
	}
	if outH < 1 {
		outH = 1
	}

	out := New(outW, outH)
	for y := 0; y < outH; y++ {
		sy := (y*src.H + src.H/2) / outH
		if sy >= src.H {
			sy = src.H - 1
		}
		for x := 0; x < outW; x++ {
			sx := (x*src.W + src.W/2) / outW
			if sx >= src.W {
				sx = src.W - 1
			}
			r, g, b := src.At(sx, sy)
			out.Set(x, y, r, g, b)
		}
	}
	return out
}
