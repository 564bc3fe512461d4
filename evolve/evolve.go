// Package evolve proposes specimen mutations and scores them. It is pure
// with respect to shared state: the orchestrator owns acceptance.
package evolve

import (
	"github.com/lixenwraith/easel/canvas"
	"github.com/lixenwraith/easel/constants"
	"github.com/lixenwraith/easel/fitness"
	"github.com/lixenwraith/easel/specimen"
)

// IterateFunc is the mutate-and-score step the orchestrator drives. It
// returns a candidate specimen, the candidate's fitness state and the
// candidate's score; it must not modify its inputs.
type IterateFunc func(
	sp *specimen.Specimen,
	st *fitness.State,
	target *canvas.Image,
	gradient *canvas.Gradient,
	method fitness.DifferenceMethod,
) (*specimen.Specimen, *fitness.State, float64, error)

// FinishedFunc is the convergence predicate: given the count of
// consecutive non-improving iterations and the current score, report
// whether work on this image is done.
type FinishedFunc func(stagnation int, score float64) bool

// Finished is the default convergence predicate
func Finished(stagnation int, score float64) bool {
	if score <= constants.TargetScore {
		return true
	}
	return stagnation >= constants.StagnationLimit
}
