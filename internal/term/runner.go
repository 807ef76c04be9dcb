// Package term runs the simulation inside a terminal.
package term

import (
	"fmt"
	"image"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/4n0nym0u5-3y3/Flappy-Bird/internal/assets"
	"github.com/4n0nym0u5-3y3/Flappy-Bird/internal/sound"
	"github.com/4n0nym0u5-3y3/Flappy-Bird/internal/world"
)

type sounder interface {
	Play(e sound.Effect)
}

var (
	bannerStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack).Bold(true)
	scoreStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack).Bold(true)
)

// Runner owns the terminal loop. The screen must already be initialised.
type Runner struct {
	screen tcell.Screen
	state  *world.State
	set    *assets.Set
	sfx    sounder

	frame  *image.RGBA
	events chan tcell.Event
	pause  time.Duration
}

func New(screen tcell.Screen, state *world.State, set *assets.Set, sfx sounder) *Runner {
	return &Runner{
		screen: screen,
		state:  state,
		set:    set,
		sfx:    sfx,
		frame:  image.NewRGBA(image.Rect(0, 0, world.ScreenWidth, world.ScreenHeight)),
		events: make(chan tcell.Event, 100),
		pause:  world.GameOverPause,
	}
}

// Run blocks until the player quits or crashes.
func (r *Runner) Run() error {
	if r.screen == nil || r.state == nil {
		return fmt.Errorf("term: runner not initialised")
	}
	go r.pump()

	ticker := time.NewTicker(time.Second / world.FPS)
	defer ticker.Stop()

	r.draw()
	for range ticker.C {
		ev := r.state.Advance(inputFrom(r.drain()))
		if ev.Has(world.EventQuit) {
			return nil
		}
		if ev.Has(world.EventWing) {
			r.sfx.Play(sound.Wing)
		}
		if ev.Has(world.EventHit) {
			r.sfx.Play(sound.Hit)
		}
		r.draw()
		if r.state.Phase == world.PhaseOver {
			time.Sleep(r.pause)
			return nil
		}
	}
	return nil
}

// pump forwards screen events until the screen is finalised.
func (r *Runner) pump() {
	for {
		ev := r.screen.PollEvent()
		if ev == nil {
			return
		}
		r.events <- ev
	}
}

// drain empties the event channel without blocking.
func (r *Runner) drain() []tcell.Event {
	var out []tcell.Event
	for {
		select {
		case ev := <-r.events:
			if _, ok := ev.(*tcell.EventResize); ok {
				r.screen.Sync()
			}
			out = append(out, ev)
		default:
			return out
		}
	}
}

func (r *Runner) draw() {
	Compose(r.frame, r.state, r.set)
	Present(r.screen, r.frame)

	_, h := r.screen.Size()
	switch r.state.Phase {
	case world.PhaseBegin:
		drawText(r.screen, h/4, " GET READY ", bannerStyle)
		drawText(r.screen, h/4+2, " SPACE / UP TO FLAP, ESC TO QUIT ", bannerStyle)
	case world.PhasePlaying:
		drawText(r.screen, 1, fmt.Sprintf(" %d ", r.state.Score), scoreStyle)
	case world.PhaseOver:
		drawText(r.screen, 1, fmt.Sprintf(" %d ", r.state.Score), scoreStyle)
		drawText(r.screen, h/3, " GAME OVER ", bannerStyle)
	}
	r.screen.Show()
}

// inputFrom folds a frame's worth of events into one input.
func inputFrom(events []tcell.Event) world.Input {
	var in world.Input
	for _, ev := range events {
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		switch {
		case key.Key() == tcell.KeyEscape || key.Key() == tcell.KeyCtrlC:
			in.Quit = true
		case key.Key() == tcell.KeyRune && key.Rune() == 'c' && key.Modifiers()&tcell.ModCtrl != 0:
			in.Quit = true
		case key.Key() == tcell.KeyUp:
			in.Bump = true
		case key.Key() == tcell.KeyRune && key.Rune() == ' ':
			in.Bump = true
		}
	}
	return in
}
