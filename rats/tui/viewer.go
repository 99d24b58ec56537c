package tui

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
)

// DefaultInterval is the redraw period used when Viewer.Interval is zero.
const DefaultInterval = time.Second

// Viewer redraws a Model on a screen until the user quits or the context
// is cancelled. The caller owns the screen and must Init and Fini it.
type Viewer struct {
	Screen   tcell.Screen
	Model    *Model
	Interval time.Duration
}

// NewViewer creates a viewer with the default redraw interval.
func NewViewer(screen tcell.Screen, model *Model) *Viewer {
	return &Viewer{
		Screen:   screen,
		Model:    model,
		Interval: DefaultInterval,
	}
}

// Run blocks until q, Esc or Ctrl-C is pressed, the screen stops
// delivering events, or ctx is done.
func (v *Viewer) Run(ctx context.Context) error {
	interval := v.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 16)
	go func() {
		defer close(events)
		for {
			ev := v.Screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	v.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok || !v.handleInput(ev) {
				return nil
			}
		case <-ticker.C:
			v.draw()
		}
	}
}

func (v *Viewer) draw() {
	Draw(v.Screen, v.Model.Snapshot())
	v.Screen.Show()
}

func (v *Viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q') {
			return false
		}
	case *tcell.EventResize:
		v.Screen.Sync()
		v.draw()
	}
	return true
}
