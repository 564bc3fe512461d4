// Package state holds the single record shared between the optimization
// loop and the presenter. There are no locks: each field has exactly one
// writer, and the pieces a reader must see together travel in immutable
// snapshots swapped atomically.
//
// Writer discipline: the optimizer owns the snapshot, the per-image frame,
// imageAvailable and the latency diagnostic; the presenter's input handler
// owns the three control flags.
package state

import (
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/easel/canvas"
	"github.com/lixenwraith/easel/fitness"
	"github.com/lixenwraith/easel/specimen"
)

// Snapshot is the best-known specimen and its score, published together on
// every accepted improvement so no reader observes a torn pair. Rendered
// is the specimen's rasterization, carried along so the presenter never
// has to re-render. All fields are immutable after publication.
type Snapshot struct {
	Specimen *specimen.Specimen
	Score    float64
	Rendered *canvas.Image
}

// Frame is the per-image context: path, brush set and preprocessed target.
// Written once per image by the optimizer; immutable after publication.
type Frame struct {
	ImagePath string
	Brush     specimen.BrushSet
	Target    *canvas.Image
}

// State is the process-wide shared record. Create exactly one with New.
type State struct {
	snapshot atomic.Pointer[Snapshot]
	frame    atomic.Pointer[Frame]

	imageAvailable atomic.Bool
	updateLatency  atomic.Int64 // microseconds between iterations

	// Control flags; presenter-owned, best-effort signals observed at
	// loop boundaries
	flagStop      atomic.Bool
	flagNextImage atomic.Bool
	lockImage     atomic.Bool

	ready     chan struct{}
	readyOnce sync.Once
}

// New creates the shared state holding the placeholder specimen
func New() *State {
	s := &State{ready: make(chan struct{})}
	placeholder := specimen.NewPlaceholder()
	s.snapshot.Store(&Snapshot{
		Specimen: placeholder,
		Score:    fitness.WorstScore,
		Rendered: placeholder.Render(),
	})
	s.frame.Store(&Frame{Target: canvas.New(0, 0)})
	return s
}

// Snapshot returns the latest published specimen/score pair
func (s *State) Snapshot() *Snapshot {
	return s.snapshot.Load()
}

// PublishSnapshot swaps in a new best specimen. Optimizer only, and only
// after confirming strict improvement.
func (s *State) PublishSnapshot(snap *Snapshot) {
	s.snapshot.Store(snap)
}

// Frame returns the active per-image context
func (s *State) Frame() *Frame {
	return s.frame.Load()
}

// PublishFrame installs the context for a new target image. Optimizer only.
func (s *State) PublishFrame(f *Frame) {
	s.frame.Store(f)
}

// ImageAvailable reports whether a specimen has been accepted at least
// once for the current image and is ready to render
func (s *State) ImageAvailable() bool {
	return s.imageAvailable.Load()
}

// SetImageAvailable marks the render-ready signal. Optimizer only.
func (s *State) SetImageAvailable(v bool) {
	s.imageAvailable.Store(v)
}

// UpdateLatencyMicros returns the diagnostic delta between the last two
// loop iterations
func (s *State) UpdateLatencyMicros() int64 {
	return s.updateLatency.Load()
}

// SetUpdateLatencyMicros records the iteration delta. Optimizer only.
func (s *State) SetUpdateLatencyMicros(v int64) {
	s.updateLatency.Store(v)
}

// Stopped reports the terminate-everything flag
func (s *State) Stopped() bool {
	return s.flagStop.Load()
}

// RequestStop asks the whole process to wind down
func (s *State) RequestStop() {
	s.flagStop.Store(true)
}

// NextRequested reports the abandon-current-image flag
func (s *State) NextRequested() bool {
	return s.flagNextImage.Load()
}

// RequestNext asks the optimizer to move on from the current image
func (s *State) RequestNext() {
	s.flagNextImage.Store(true)
}

// ClearNext resets the skip flag after an image switch. Optimizer only.
func (s *State) ClearNext() {
	s.flagNextImage.Store(false)
}

// Locked reports whether the current image is pinned
func (s *State) Locked() bool {
	return s.lockImage.Load()
}

// SetLocked pins or unpins the current image
func (s *State) SetLocked(v bool) {
	s.lockImage.Store(v)
}

// ToggleLock flips the pin and returns the new value
func (s *State) ToggleLock() bool {
	for {
		old := s.lockImage.Load()
		if s.lockImage.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// SignalReady marks the presenter as initialized. Safe to call more than
// once; only the first call has effect.
func (s *State) SignalReady() {
	s.readyOnce.Do(func() { close(s.ready) })
}

// Ready returns a channel closed once the presenter has initialized.
// Replaces the original fixed startup sleep with an explicit handoff.
func (s *State) Ready() <-chan struct{} {
	return s.ready
}
