package canvas

// BoxBlur returns a blurred copy of src using a (2*radius+1)^2 box kernel
// with edge clamping. Used to knock high-frequency noise out of targets
// before fitness comparison.
func BoxBlur(src *Image, radius int) *Image {
	if src.Empty() || radius < 1 {
		return src.Clone()
	}

	// Two separable passes, horizontal then vertical
	tmp := New(src.W, src.H)
	out := New(src.W, src.H)
	n := 2*radius + 1

	for y := 0; y < src.H; y++ {
		for x := 0; x < src.W; x++ {
			var sr, sg, sb int
			for k := -radius; k <= radius; k++ {
				sx := clamp(x+k, 0, src.W-1)
				r, g, b := src.At(sx, y)
				sr += int(r)
				sg += int(g)
				sb += int(b)
			}
			tmp.Set(x, y, uint8(sr/n), uint8(sg/n), uint8(sb/n))
		}
	}
	for y := 0; y < src.H; y++ {
		for x := 0; x < src.W; x++ {
			var sr, sg, sb int
			for k := -radius; k <= radius; k++ {
				sy := clamp(y+k, 0, src.H-1)
				r, g, b := tmp.At(x, sy)
				sr += int(r)
				sg += int(g)
				sb += int(b)
			}
			out.Set(x, y, uint8(sr/n), uint8(sg/n), uint8(sb/n))
		}
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
