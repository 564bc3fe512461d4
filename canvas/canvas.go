// Package canvas provides the flat RGB pixel buffers the optimizer and the
// presenter trade in, plus the handful of pixel operations the pipeline
// needs: decode, scale-to-fit, box blur and gradient extraction.
package canvas

// Image is a packed 24-bit RGB buffer, 3 bytes per pixel, row-major
type Image struct {
	W, H int
	Pix  []uint8
}

// New creates a zeroed (black) image
func New(w, h int) *Image {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Image{W: w, H: h, Pix: make([]uint8, w*h*3)}
}

// At returns the pixel at (x, y). Out-of-bounds reads return black.
func (im *Image) At(x, y int) (r, g, b uint8) {
	if x < 0 || y < 0 || x >= im.W || y >= im.H {
		return 0, 0, 0
	}
	i := (y*im.W + x) * 3
	return im.Pix[i], im.Pix[i+1], im.Pix[i+2]
}

// Set writes the pixel at (x, y). Out-of-bounds writes are dropped.
func (im *Image) Set(x, y int, r, g, b uint8) {
	if x < 0 || y < 0 || x >= im.W || y >= im.H {
		return
	}
	i := (y*im.W + x) * 3
	im.Pix[i] = r
	im.Pix[i+1] = g
	im.Pix[i+2] = b
}

// Fill sets every pixel to the given color
func (im *Image) Fill(r, g, b uint8) {
	for i := 0; i < len(im.Pix); i += 3 {
		im.Pix[i] = r
		im.Pix[i+1] = g
		im.Pix[i+2] = b
	}
}

// Clone returns an independent copy of the image
func (im *Image) Clone() *Image {
	out := &Image{W: im.W, H: im.H, Pix: make([]uint8, len(im.Pix))}
	copy(out.Pix, im.Pix)
	return out
}

// Empty reports whether the image has no pixels
func (im *Image) Empty() bool {
	return im.W == 0 || im.H == 0
}
