package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/4n0nym0u5-3y3/Flappy-Bird/internal/sound"
	"github.com/4n0nym0u5-3y3/Flappy-Bird/internal/world"
)

// holdFrames is how long the final frame stays up after a crash.
var holdFrames = int(world.GameOverPause.Seconds() * world.FPS)

type sounder interface {
	Play(e sound.Effect)
}

// session is the frame driver shared by Update. It holds no GPU resources
// so it can run without a window.
type session struct {
	state      *world.State
	sfx        sounder
	overFrames int
}

// tick advances one frame and returns ebiten.Termination once the game is
// finished.
func (s *session) tick(in world.Input) error {
	if s.state.Phase == world.PhaseOver {
		s.overFrames++
		if s.overFrames >= holdFrames {
			return ebiten.Termination
		}
		return nil
	}

	ev := s.state.Advance(in)
	if ev.Has(world.EventQuit) {
		return ebiten.Termination
	}
	if ev.Has(world.EventWing) {
		s.sfx.Play(sound.Wing)
	}
	if ev.Has(world.EventHit) {
		s.sfx.Play(sound.Hit)
	}
	return nil
}

// inputFrom maps this frame's key presses to the game input.
func inputFrom(justPressed func(ebiten.Key) bool, closing bool) world.Input {
	return world.Input{
		Bump: justPressed(ebiten.KeySpace) || justPressed(ebiten.KeyArrowUp),
		Quit: closing,
	}
}
