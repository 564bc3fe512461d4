package constants

import "time"

// Continuous Loop Timing
const (
	// MaxTimePerImage is the hard per-image budget; the optimizer moves on
	// after this much wall-clock time unless the image is locked
	MaxTimePerImage = 10 * time.Minute

	// MinStepTime is the floor for one optimization iteration. Iterations
	// finishing faster sleep out the remainder so the loop never spins
	// beyond this rate. Caps presentation churn and CPU, not quality.
	MinStepTime = 100 * time.Microsecond

	// WaitBetweenImages is the idle window between finished images, giving
	// the operator a chance to lock, skip or quit
	WaitBetweenImages = 1 * time.Minute

	// WaitPollInterval is how often the inter-image wait rechecks the
	// control flags
	WaitPollInterval = 1 * time.Second
)

// Evolution
const (
	// StagnationLimit is the number of consecutive non-improving
	// iterations after which an image is considered converged
	StagnationLimit = 2000

	// TargetScore is the good-enough mean pixel difference; at or below
	// this the drawing is finished regardless of stagnation
	TargetScore = 6.0

	// MaxStrokes bounds specimen growth; add-stroke mutations are
	// redirected to perturbation once the limit is reached
	MaxStrokes = 4000
)

// Mutation weights (must sum to 1.0)
const (
	MutateAddWeight     = 0.7
	MutatePerturbWeight = 0.2
	MutateDropWeight    = 0.1
)

// Display
const (
	// FrameInterval is the presenter redraw cadence
	FrameInterval = 33 * time.Millisecond

	// WindowedCols / WindowedRows cap the drawing area when not running
	// fullscreen
	WindowedCols = 80
	WindowedRows = 24
)

// Preprocessing
const (
	// BlurRadius is the box-blur radius applied to targets before fitness
	// comparison (5x5 kernel)
	BlurRadius = 2
)

// Audio
const (
	ChimeNoteDuration = 120 * time.Millisecond
	ChimeSampleRate   = 44100
)
