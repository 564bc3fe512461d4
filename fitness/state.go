package fitness

import (
	"github.com/lixenwraith/easel/canvas"
	"github.com/lixenwraith/easel/specimen"
)

// State carries a specimen's rendered buffer and its running total
// difference against one target. The mutate-and-score step derives a
// candidate State per proposal; the orchestrator keeps whichever State
// belongs to the accepted specimen and drops the other. A State's buffer
// is treated as immutable once it has been handed off.
type State struct {
	Rendered *canvas.Image
	total    float64
	method   DifferenceMethod
}

// Evaluate fully renders sp and scores it against target
func Evaluate(sp *specimen.Specimen, target *canvas.Image, m DifferenceMethod) *State {
	rendered := sp.Render()
	return &State{
		Rendered: rendered,
		total:    regionDiff(rendered, target, m, 0, 0, target.W-1, target.H-1),
		method:   m,
	}
}

// Score returns the mean per-pixel difference (lower is better)
func (st *State) Score() float64 {
	n := st.Rendered.W * st.Rendered.H
	if n == 0 {
		return WorstScore
	}
	return st.total / float64(n)
}

// Method returns the difference method this state was built with
func (st *State) Method() DifferenceMethod {
	return st.method
}

// WithStroke derives a candidate State by blending one additional stroke
// onto a copy of the rendered buffer, rescoring only the stroke's bounding
// box. The receiver is not modified.
func (st *State) WithStroke(stroke *specimen.Stroke, target *canvas.Image) *State {
	x0, y0, x1, y1 := stroke.Bounds()
	next := st.Rendered.Clone()

	before := regionDiff(next, target, st.method, x0, y0, x1, y1)
	stroke.Draw(next)
	after := regionDiff(next, target, st.method, x0, y0, x1, y1)

	return &State{
		Rendered: next,
		total:    st.total - before + after,
		method:   st.method,
	}
}
