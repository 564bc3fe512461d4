package runner

import (
	"github.com/lixenwraith/easel/canvas"
	"github.com/lixenwraith/easel/constants"
)

// prepareImage decodes a target, scales it to fit the display dimension,
// pre-blurs it and computes its gradient map. The returned target is what
// fitness compares against; the raw decode is discarded.
func prepareImage(path string, maxW, maxH int) (*canvas.Image, *canvas.Gradient, error) {
	raw, err := canvas.Decode(path)
	if err != nil {
		return nil, nil, err
	}
	scaled := canvas.ScaleToFit(raw, maxW, maxH)
	blurred := canvas.BoxBlur(scaled, constants.BlurRadius)
	return blurred, canvas.NewGradient(blurred), nil
}
