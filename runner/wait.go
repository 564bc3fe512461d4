package runner

// waitForNextImage is the semi-active pause between images: a coarse poll
// that keeps lock/skip/stop interaction responsive without touching the
// optimizer. The condition ordering is deliberate: a locked image keeps
// the wait alive no matter what else is set; once unlocked, stop or skip
// end it within one poll, and otherwise it expires after the configured
// delay.
func (r *Runner) waitForNextImage() {
	r.logf("waiting %v before drawing next image", r.cfg.WaitBetweenImages)
	start := r.cfg.Clock.Now()
	for r.shared.Locked() ||
		(r.cfg.Clock.Now().Sub(start) < r.cfg.WaitBetweenImages &&
			!r.shared.Stopped() &&
			!r.shared.NextRequested()) {
		r.sleep(r.cfg.WaitPollInterval)
	}
}
