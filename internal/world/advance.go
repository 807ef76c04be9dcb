package world

import "strings"

// Input is what the frontend collected since the previous frame.
type Input struct {
	Bump bool
	Quit bool
}

// Events reports what happened during one Advance call.
type Events uint8

const (
	EventWing Events = 1 << iota
	EventHit
	EventScore
	EventQuit
)

func (e Events) Has(f Events) bool { return e&f != 0 }

func (e Events) String() string {
	if e == 0 {
		return "none"
	}
	var parts []string
	for _, f := range []struct {
		ev   Events
		name string
	}{{EventWing, "wing"}, {EventHit, "hit"}, {EventScore, "score"}, {EventQuit, "quit"}} {
		if e.Has(f.ev) {
			parts = append(parts, f.name)
		}
	}
	return strings.Join(parts, "|")
}

// Advance runs one frame: input, recycling, physics, collision.
func (s *State) Advance(in Input) Events {
	if in.Quit {
		return EventQuit
	}

	var ev Events
	switch s.Phase {
	case PhaseBegin:
		if in.Bump {
			s.Bird.Bump()
			ev |= EventWing
		}
		s.recycleGround()
		s.Bird.Update()
		s.scrollGround()
		if in.Bump {
			s.Phase = PhasePlaying
		}

	case PhasePlaying:
		// a flap consumes the whole frame
		if in.Bump {
			s.Bird.Bump()
			s.Frame++
			return EventWing
		}
		s.recycleGround()
		s.recyclePipes()
		s.Bird.Update()
		s.scrollGround()
		s.scrollPipes()
		if s.score() {
			ev |= EventScore
		}
		if s.Collided() {
			s.Phase = PhaseOver
			ev |= EventHit
		}

	case PhaseOver:
		return 0
	}
	s.Frame++
	return ev
}

// Collided reports whether the bird currently touches the ground or a pipe.
func (s *State) Collided() bool {
	for _, b := range s.Bodies() {
		if Collide(&s.Bird, b) {
			return true
		}
	}
	return false
}

func (s *State) recycleGround() {
	if front := s.Ground.Front(); front != nil && front.OffScreen() {
		s.Ground.Pop()
		s.Ground.Push(NewGroundTile(GroundWidth-GroundRespawnOffset, s.art.Ground))
	}
}

func (s *State) recyclePipes() {
	if front := s.Pipes.Front(); front != nil && front.OffScreen() {
		s.Pipes.Pop()
		s.Pipes.Push(RandomPipePair(PipeSpawnX, s.rng, &s.art))
	}
}

func (s *State) scrollGround() {
	for _, g := range s.Ground.All() {
		g.X -= ScrollSpeed
	}
}

func (s *State) scrollPipes() {
	for _, pp := range s.Pipes.All() {
		pp.Scroll(ScrollSpeed)
	}
}

func (s *State) score() bool {
	scored := false
	for _, pp := range s.Pipes.All() {
		if !pp.Scored && pp.X()+float64(pp.Width()) <= s.Bird.X {
			pp.Scored = true
			s.Score++
			scored = true
		}
	}
	return scored
}
