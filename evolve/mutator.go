package evolve

import (
	"math"
	"math/rand/v2"

	"github.com/lixenwraith/easel/canvas"
	"github.com/lixenwraith/easel/constants"
	"github.com/lixenwraith/easel/fitness"
	"github.com/lixenwraith/easel/specimen"
)

// Mutator holds the random source and the active brush set for stroke
// proposals. One Mutator serves one optimization loop; it is not safe for
// concurrent use.
type Mutator struct {
	rng   *rand.Rand
	brush specimen.BrushSet
}

// NewMutator creates a mutator. Seed 0 draws a random seed.
func NewMutator(seed uint64) *Mutator {
	var rng *rand.Rand
	if seed == 0 {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	} else {
		rng = rand.New(rand.NewPCG(seed, seed))
	}
	return &Mutator{rng: rng, brush: specimen.BrushCanvas}
}

// SetBrush switches the stroke style for subsequent add mutations.
// Called once per image by the orchestrator.
func (m *Mutator) SetBrush(b specimen.BrushSet) {
	m.brush = b
}

// Iterate proposes one mutated specimen and scores it. Matches
// IterateFunc.
func (m *Mutator) Iterate(
	sp *specimen.Specimen,
	st *fitness.State,
	target *canvas.Image,
	gradient *canvas.Gradient,
	method fitness.DifferenceMethod,
) (*specimen.Specimen, *fitness.State, float64, error) {
	roll := m.rng.Float64()
	switch {
	case roll < constants.MutateAddWeight && len(sp.Strokes) < constants.MaxStrokes:
		return m.addStroke(sp, st, target, gradient)
	case roll < constants.MutateAddWeight+constants.MutatePerturbWeight || len(sp.Strokes) == 0:
		return m.perturbStroke(sp, target, gradient, method)
	default:
		return m.dropStroke(sp, target, method)
	}
}

// addStroke places a new stroke at a gradient-biased location with a color
// sampled from the target, scored incrementally over its bounding box
func (m *Mutator) addStroke(
	sp *specimen.Specimen,
	st *fitness.State,
	target *canvas.Image,
	gradient *canvas.Gradient,
) (*specimen.Specimen, *fitness.State, float64, error) {
	stroke := m.randomStroke(target, gradient)

	next := sp.Clone()
	next.Strokes = append(next.Strokes, stroke)

	nextState := st.WithStroke(&stroke, target)
	return next, nextState, nextState.Score(), nil
}

// perturbStroke jitters one existing stroke; requires a full re-render
// since the stroke may have been painted over
func (m *Mutator) perturbStroke(
	sp *specimen.Specimen,
	target *canvas.Image,
	gradient *canvas.Gradient,
	method fitness.DifferenceMethod,
) (*specimen.Specimen, *fitness.State, float64, error) {
	next := sp.Clone()
	if len(next.Strokes) == 0 {
		stroke := m.randomStroke(target, gradient)
		next.Strokes = append(next.Strokes, stroke)
	} else {
		st := &next.Strokes[m.rng.IntN(len(next.Strokes))]
		shorter := math.Min(float64(target.W), float64(target.H))
		st.X += (m.rng.Float64()*2 - 1) * shorter * 0.05
		st.Y += (m.rng.Float64()*2 - 1) * shorter * 0.05
		st.Radius = math.Max(1, st.Radius*(0.8+m.rng.Float64()*0.4))
		st.Angle += (m.rng.Float64()*2 - 1) * 0.5
		st.Opacity = clamp01(st.Opacity + (m.rng.Float64()*2-1)*0.2)
	}

	nextState := fitness.Evaluate(next, target, method)
	return next, nextState, nextState.Score(), nil
}

// dropStroke removes one random stroke
func (m *Mutator) dropStroke(
	sp *specimen.Specimen,
	target *canvas.Image,
	method fitness.DifferenceMethod,
) (*specimen.Specimen, *fitness.State, float64, error) {
	next := sp.Clone()
	if len(next.Strokes) > 0 {
		i := m.rng.IntN(len(next.Strokes))
		next.Strokes = append(next.Strokes[:i], next.Strokes[i+1:]...)
	}
	nextState := fitness.Evaluate(next, target, method)
	return next, nextState, nextState.Score(), nil
}

func (m *Mutator) randomStroke(target *canvas.Image, gradient *canvas.Gradient) specimen.Stroke {
	x, y := gradient.Sample(m.rng)
	r, g, b := target.At(x, y)

	shorter := math.Min(float64(target.W), float64(target.H))
	sizeMin, sizeMax := m.brush.SizeRange()
	elongMin, elongMax := m.brush.Elongation()

	return specimen.Stroke{
		X:       float64(x),
		Y:       float64(y),
		Radius:  math.Max(1, shorter*(sizeMin+m.rng.Float64()*(sizeMax-sizeMin))),
		Angle:   m.rng.Float64() * math.Pi,
		Elong:   elongMin + m.rng.Float64()*(elongMax-elongMin),
		R:       r,
		G:       g,
		B:       b,
		Opacity: 0.3 + m.rng.Float64()*0.7,
		Brush:   m.brush,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
