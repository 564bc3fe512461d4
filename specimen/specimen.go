// Package specimen defines the candidate drawing: an ordered list of brush
// strokes rasterized onto a canvas, scored elsewhere against a target.
package specimen

import (
	"github.com/lixenwraith/easel/canvas"
)

// Canvas background; strokes accumulate on top of this
const (
	BackgroundR = 0xf2
	BackgroundG = 0xee
	BackgroundB = 0xe4
)

// Specimen is an ordered collection of strokes. Order matters: later
// strokes paint over earlier ones.
type Specimen struct {
	Strokes []Stroke
	W, H    int

	// Placeholder marks the pre-first-image sentinel. A placeholder is
	// never published as a finished result and never marked available.
	Placeholder bool
}

// NewPlaceholder creates the zero-size sentinel specimen used before the
// first target image is loaded
func NewPlaceholder() *Specimen {
	return &Specimen{Placeholder: true}
}

// Initial creates an empty real specimen sized to the target
func Initial(target *canvas.Image) *Specimen {
	return &Specimen{
		Strokes: make([]Stroke, 0, 64),
		W:       target.W,
		H:       target.H,
	}
}

// Clone returns a deep copy; the stroke slice is never shared
func (s *Specimen) Clone() *Specimen {
	out := &Specimen{
		Strokes:     make([]Stroke, len(s.Strokes)),
		W:           s.W,
		H:           s.H,
		Placeholder: s.Placeholder,
	}
	copy(out.Strokes, s.Strokes)
	return out
}

// Rescale maps the specimen onto a new canvas size, scaling stroke
// geometry proportionally. Strokes accumulated against earlier targets
// survive the move; the painting continues over them.
func (s *Specimen) Rescale(w, h int) {
	if s.W == w && s.H == h {
		return
	}
	if s.W > 0 && s.H > 0 {
		fx := float64(w) / float64(s.W)
		fy := float64(h) / float64(s.H)
		fr := fx
		if fy < fr {
			fr = fy
		}
		for i := range s.Strokes {
			s.Strokes[i].X *= fx
			s.Strokes[i].Y *= fy
			s.Strokes[i].Radius *= fr
		}
	}
	s.W, s.H = w, h
}

// Render rasterizes the full specimen onto a fresh canvas
func (s *Specimen) Render() *canvas.Image {
	im := canvas.New(s.W, s.H)
	im.Fill(BackgroundR, BackgroundG, BackgroundB)
	for i := range s.Strokes {
		s.Strokes[i].Draw(im)
	}
	return im
}
