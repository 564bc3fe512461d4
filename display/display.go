// Package display is the presentation process: a tcell goroutine that
// renders the latest published specimen at its own cadence and feeds
// operator input back as control flags. It only ever reads the painting
// side of the shared state and only ever writes the flags.
package display

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/easel/constants"
	"github.com/lixenwraith/easel/fitness"
	"github.com/lixenwraith/easel/state"
)

// Display owns the terminal screen for the lifetime of the program
type Display struct {
	screen     tcell.Screen
	shared     *state.State
	fullscreen bool
	overlay    bool // show the target instead of the specimen
}

// New initializes the terminal screen
func New(shared *state.State, fullscreen bool) (*Display, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return &Display{
		screen:     screen,
		shared:     shared,
		fullscreen: fullscreen,
	}, nil
}

// WindowSize reports the drawing area in pixels: two pixels per cell in
// each direction (quadrant rendering), minus the status row. The runner
// scales targets to fit this.
func (d *Display) WindowSize() (w, h int) {
	cols, rows := d.screen.Size()
	if !d.fullscreen {
		if cols > constants.WindowedCols {
			cols = constants.WindowedCols
		}
		if rows > constants.WindowedRows {
			rows = constants.WindowedRows
		}
	}
	rows-- // status bar
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return cols * 2, rows * 2
}

// Fini restores the terminal. Safe after a finished Run.
func (d *Display) Fini() {
	d.screen.Fini()
}

// Run drives the render loop until the stop flag is raised. It signals
// readiness once the event loop is up so the optimizer can start driving
// state without a startup sleep.
func (d *Display) Run() {
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	d.shared.SignalReady()

	ticker := time.NewTicker(constants.FrameInterval)
	defer ticker.Stop()

	for !d.shared.Stopped() {
		select {
		case ev, ok := <-events:
			if !ok {
				d.shared.RequestStop()
				return
			}
			d.handleEvent(ev)
		case <-ticker.C:
			d.draw()
		}
	}
}

// handleEvent maps operator input to the control flags
func (d *Display) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		d.screen.Sync()
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			d.shared.RequestStop()
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			d.shared.RequestStop()
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'n' || ev.Rune() == ' '):
			d.shared.RequestNext()
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'l':
			d.shared.ToggleLock()
		case ev.Key() == tcell.KeyRune && ev.Rune() == 't':
			d.overlay = !d.overlay
		}
	}
}

// draw renders the latest snapshot (or the target while nothing has been
// accepted yet, or while the overlay is toggled on) plus the status bar
func (d *Display) draw() {
	cols, rows := d.screen.Size()
	if rows < 2 {
		return
	}

	frame := d.shared.Frame()
	snap := d.shared.Snapshot()

	img := snap.Rendered
	if d.overlay || !d.shared.ImageAvailable() {
		img = frame.Target
	}

	cells := RenderCells(img, cols, rows-1)
	for y := 0; y < rows-1; y++ {
		for x := 0; x < cols; x++ {
			c := cells[y*cols+x]
			d.screen.SetContent(x, y, c.Rune, nil, c.Style)
		}
	}

	d.drawStatus(cols, rows-1, frame, snap)
	d.screen.Show()
}

func (d *Display) drawStatus(cols, row int, frame *state.Frame, snap *state.Snapshot) {
	lock := " "
	if d.shared.Locked() {
		lock = "L"
	}
	name := filepath.Base(frame.ImagePath)
	if frame.ImagePath == "" {
		name = "-"
	}
	score := "-"
	if snap.Score != fitness.WorstScore {
		score = fmt.Sprintf("%.2f", snap.Score)
	}
	text := fmt.Sprintf(" %s [%s] score %s  dt %dus  strokes %d  [%s] q:quit n:next l:lock t:target",
		name, frame.Brush, score, d.shared.UpdateLatencyMicros(), len(snap.Specimen.Strokes), lock)

	style := tcell.StyleDefault.
		Foreground(tcell.ColorWhite).
		Background(tcell.NewRGBColor(40, 40, 40))
	for x := 0; x < cols; x++ {
		r := ' '
		if x < len(text) {
			r = rune(text[x])
		}
		d.screen.SetContent(x, row, r, nil, style)
	}
}
