package runner

// ConvergenceTracker counts consecutive non-improving iterations. The
// count survives image switches (the first acceptance on a fresh image
// resets it); the stopping decision itself belongs to the injected
// convergence predicate.
type ConvergenceTracker struct {
	stagnation int
}

// Accept records an accepted improvement and resets the count
func (c *ConvergenceTracker) Accept() {
	c.stagnation = 0
}

// Reject records a rejected proposal
func (c *ConvergenceTracker) Reject() {
	c.stagnation++
}

// Count returns the current consecutive-rejection count
func (c *ConvergenceTracker) Count() int {
	return c.stagnation
}
