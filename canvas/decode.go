package canvas

import (
	"errors"
	"fmt"
	"image"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// ErrDecode wraps any failure to read or decode a target image file.
// A buffer from a failed decode must never reach fitness comparison, so
// callers treat this as fatal for the run.
var ErrDecode = errors.New("image decode failure")

// Decode reads an image file into a packed RGB buffer. Alpha is
// premultiplied away against black.
func Decode(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}

	bounds := src.Bounds()
	out := New(bounds.Dx(), bounds.Dy())
	for y := 0; y < out.H; y++ {
		for x := 0; x < out.W; x++ {
			r, g, b, _ := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			out.Set(x, y, uint8(r>>8), uint8(g>>8), uint8(b>>8))
		}
	}
	if out.Empty() {
		return nil, fmt.Errorf("%w: %s: zero-sized image", ErrDecode, path)
	}
	return out, nil
}
