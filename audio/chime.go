// Package audio plays a short chime when an image finishes, so an
// unattended installation signals progress. Audio is strictly optional:
// any initialization failure downgrades Chime to a no-op.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/easel/constants"
)

// Chimer owns the speaker; zero value is silent until Init succeeds
type Chimer struct {
	ready bool
}

// Init opens the speaker. Non-fatal on error: the caller keeps the silent
// chimer.
func (c *Chimer) Init() error {
	sr := beep.SampleRate(constants.ChimeSampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return err
	}
	c.ready = true
	return nil
}

// Chime plays a rising two-note figure. Asynchronous; returns immediately.
func (c *Chimer) Chime() {
	if !c.ready {
		return
	}
	sr := beep.SampleRate(constants.ChimeSampleRate)
	n := sr.N(constants.ChimeNoteDuration)

	low, err := generators.SineTone(sr, 660)
	if err != nil {
		return
	}
	high, err := generators.SineTone(sr, 880)
	if err != nil {
		return
	}
	speaker.Play(beep.Seq(beep.Take(n, low), beep.Take(n, high)))
}

// Close releases the speaker
func (c *Chimer) Close() {
	if c.ready {
		speaker.Close()
		c.ready = false
	}
}
