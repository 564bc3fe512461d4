// Package runner drives the continuous painting loop: pick a target,
// hill-climb the specimen against it, publish improvements to the shared
// state, honor the interactive flags, wait, repeat. It is the only place
// where timing, concurrency and shared mutable state meet; everything it
// calls is a pure transformation.
package runner

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/easel/canvas"
	"github.com/lixenwraith/easel/constants"
	"github.com/lixenwraith/easel/evolve"
	"github.com/lixenwraith/easel/fitness"
	"github.com/lixenwraith/easel/specimen"
	"github.com/lixenwraith/easel/state"
)

// Config wires the orchestrator's collaborators and tuning. Zero-value
// durations and nil functions fall back to package defaults; Iterate is
// the only mandatory field.
type Config struct {
	// ImageDir is the directory of target photographs
	ImageDir string

	// BrushSets is the per-image rotation; one is drawn at random per image
	BrushSets []specimen.BrushSet

	// DiffMethod selects the fitness distance, fixed at process start
	DiffMethod fitness.DifferenceMethod

	MaxTimePerImage   time.Duration
	MinStepTime       time.Duration
	WaitBetweenImages time.Duration
	WaitPollInterval  time.Duration

	// Iterate is the external mutate-and-score step
	Iterate evolve.IterateFunc

	// Finished is the convergence predicate; defaults to evolve.Finished
	Finished evolve.FinishedFunc

	// SetBrush, when set, tells the mutation collaborator which brush set
	// became active for the new image
	SetBrush func(specimen.BrushSet)

	// WindowSize reports the drawing area in pixels; targets are scaled
	// to fit it
	WindowSize func() (w, h int)

	// OnImageDone fires after work on an image ends (chime hook)
	OnImageDone func()

	// Clock and Sleep are injectable for tests
	Clock Clock
	Sleep func(time.Duration)

	// Logf receives diagnostics; nil discards them
	Logf func(format string, args ...any)

	// Seed for image/brush selection; 0 draws a random seed
	Seed uint64
}

// Runner owns one optimization loop against one shared state
type Runner struct {
	cfg     Config
	shared  *state.State
	tracker ConvergenceTracker
	rng     *rand.Rand
}

// New validates cfg, applies defaults and builds a runner
func New(cfg Config, shared *state.State) (*Runner, error) {
	if cfg.Iterate == nil {
		return nil, fmt.Errorf("runner: Iterate is required")
	}
	if cfg.Finished == nil {
		cfg.Finished = evolve.Finished
	}
	if len(cfg.BrushSets) == 0 {
		cfg.BrushSets = specimen.AllBrushSets
	}
	if cfg.MaxTimePerImage <= 0 {
		cfg.MaxTimePerImage = constants.MaxTimePerImage
	}
	if cfg.MinStepTime <= 0 {
		cfg.MinStepTime = constants.MinStepTime
	}
	if cfg.WaitBetweenImages <= 0 {
		cfg.WaitBetweenImages = constants.WaitBetweenImages
	}
	if cfg.WaitPollInterval <= 0 {
		cfg.WaitPollInterval = constants.WaitPollInterval
	}
	if cfg.WindowSize == nil {
		cfg.WindowSize = func() (int, int) { return constants.WindowedCols * 2, constants.WindowedRows * 2 }
	}
	if cfg.Clock == nil {
		cfg.Clock = NewMonotonicClock()
	}
	if cfg.Sleep == nil {
		cfg.Sleep = time.Sleep
	}

	var rng *rand.Rand
	if cfg.Seed == 0 {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	} else {
		rng = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	}

	return &Runner{cfg: cfg, shared: shared, rng: rng}, nil
}

// Run drives the continuous loop until the stop flag is raised. The only
// error returns are a missing/empty image directory, a decode failure, or
// a failure inside the mutation collaborator; none of these are masked.
func (r *Runner) Run() error {
	// Surface an empty directory before any optimization work
	if _, err := listImages(r.cfg.ImageDir); err != nil {
		return err
	}

	lastUpdate := r.cfg.Clock.Now()

	for !r.shared.Stopped() {
		sess, err := r.beginImage()
		if err != nil {
			return err
		}
		if err := r.optimize(sess, &lastUpdate); err != nil {
			return err
		}
		if r.cfg.OnImageDone != nil && !r.shared.Stopped() {
			r.cfg.OnImageDone()
		}
		r.waitForNextImage()
		r.shared.ClearNext()
	}
	return nil
}

// session is the per-image working set the loop iterates over
type session struct {
	target   *canvas.Image
	gradient *canvas.Gradient
	fst      *fitness.State
}

// beginImage selects and prepares the next target, publishes the new
// frame, replaces the placeholder specimen if this is the first image,
// and computes the real initial fitness. The published score stays at the
// worst sentinel so the first proposal is judged against it.
func (r *Runner) beginImage() (*session, error) {
	candidates, err := listImages(r.cfg.ImageDir)
	if err != nil {
		return nil, err
	}
	path := pickImage(r.rng, candidates, r.shared.Frame().ImagePath)
	brush := r.cfg.BrushSets[r.rng.IntN(len(r.cfg.BrushSets))]
	if r.cfg.SetBrush != nil {
		r.cfg.SetBrush(brush)
	}

	r.logf("drawing image %s with brush set %s", path, brush)

	maxW, maxH := r.cfg.WindowSize()
	target, gradient, err := prepareImage(path, maxW, maxH)
	if err != nil {
		return nil, err
	}

	r.shared.PublishFrame(&state.Frame{
		ImagePath: path,
		Brush:     brush,
		Target:    target,
	})

	snap := r.shared.Snapshot()
	sp := snap.Specimen
	if sp.Placeholder {
		sp = specimen.Initial(target)
	} else if sp.W != target.W || sp.H != target.H {
		sp = sp.Clone()
		sp.Rescale(target.W, target.H)
	}

	fst := fitness.Evaluate(sp, target, r.cfg.DiffMethod)
	r.shared.PublishSnapshot(&state.Snapshot{
		Specimen: sp,
		Score:    fitness.WorstScore,
		Rendered: fst.Rendered,
	})

	return &session{target: target, gradient: gradient, fst: fst}, nil
}

// optimize is the per-image hill-climbing loop. Greedy: a proposal
// replaces the specimen only on strict improvement, so the published
// score never increases within one image session.
func (r *Runner) optimize(sess *session, lastUpdate *time.Time) error {
	generation := 0
	imageStart := r.cfg.Clock.Now()

	for !r.shared.Stopped() &&
		!r.shared.NextRequested() &&
		(r.shared.Locked() || r.cfg.Clock.Now().Sub(imageStart) < r.cfg.MaxTimePerImage) {

		frameStart := r.cfg.Clock.Now()
		generation++

		snap := r.shared.Snapshot()
		candidate, candidateState, score, err := r.cfg.Iterate(
			snap.Specimen, sess.fst, sess.target, sess.gradient, r.cfg.DiffMethod)
		if err != nil {
			return fmt.Errorf("iterate: %w", err)
		}

		// Ties are rejections: only strict improvement publishes
		if score >= snap.Score {
			r.tracker.Reject()
		} else {
			r.tracker.Accept()
			sess.fst = candidateState
			r.shared.PublishSnapshot(&state.Snapshot{
				Specimen: candidate,
				Score:    score,
				Rendered: candidateState.Rendered,
			})
			r.shared.SetImageAvailable(true)
		}

		now := r.cfg.Clock.Now()
		r.shared.SetUpdateLatencyMicros(now.Sub(*lastUpdate).Microseconds())
		*lastUpdate = now

		r.logf("gen_%06d__dt_%d_us__score_%v",
			generation, r.shared.UpdateLatencyMicros(), r.shared.Snapshot().Score)

		if !r.shared.Locked() && r.cfg.Finished(r.tracker.Count(), r.shared.Snapshot().Score) {
			break
		}

		// Frame pacing: never iterate faster than the step floor
		if frameTime := r.cfg.Clock.Now().Sub(frameStart); frameTime < r.cfg.MinStepTime {
			r.sleep(r.cfg.MinStepTime - frameTime)
		}
	}
	return nil
}

func (r *Runner) sleep(d time.Duration) {
	r.cfg.Sleep(d)
}

func (r *Runner) logf(format string, args ...any) {
	if r.cfg.Logf != nil {
		r.cfg.Logf(format, args...)
	}
}
