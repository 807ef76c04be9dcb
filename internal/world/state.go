// Package world is the game simulation: entities, collision masks and the
// per-frame state machine. It has no graphics or audio dependencies.
package world

import (
	"fmt"
	"math/rand"
)

type Phase int

const (
	PhaseBegin Phase = iota
	PhasePlaying
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseBegin:
		return "Begin"
	case PhasePlaying:
		return "Playing"
	case PhaseOver:
		return "Over"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// State is the whole game. It owns the bird and both sliding windows; the
// frontends only read it and feed it input.
type State struct {
	Phase  Phase
	Bird   Bird
	Ground *Ring[GroundTile]
	Pipes  *Ring[PipePair]
	Score  int
	Frame  int

	art Art
	rng *rand.Rand
}

func New(art Art, rng *rand.Rand) (*State, error) {
	if err := art.validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("world: nil random source")
	}
	s := &State{
		Phase:  PhaseBegin,
		Bird:   NewBird(art.Bird),
		Ground: NewRing[GroundTile](GroundTiles),
		Pipes:  NewRing[PipePair](PipePairs),
		art:    art,
		rng:    rng,
	}
	for i := 0; i < GroundTiles; i++ {
		s.Ground.Push(NewGroundTile(float64(GroundWidth*i), art.Ground))
	}
	for i := 0; i < PipePairs; i++ {
		s.Pipes.Push(RandomPipePair(float64(FirstPipeX+PipeSpacing*i), rng, &s.art))
	}
	return s, nil
}

// PipeCount is the number of individual pipes on the field.
func (s *State) PipeCount() int { return 2 * s.Pipes.Len() }

// Bodies lists every obstacle the bird can hit.
func (s *State) Bodies() []Body {
	out := make([]Body, 0, s.Ground.Len()+s.PipeCount())
	for _, g := range s.Ground.All() {
		out = append(out, g)
	}
	for _, pp := range s.Pipes.All() {
		out = append(out, &pp.Upright, &pp.Inverted)
	}
	return out
}
