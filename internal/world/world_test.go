package world

import (
	"math/rand"
	"testing"
)

func solidMask(w, h int) *Mask {
	m := NewMask(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.Set(x, y, true)
		}
	}
	return m
}

// testArt uses solid rectangles so collisions are easy to reason about.
func testArt() Art {
	bird := solidMask(34, 24)
	pipe := solidMask(PipeWidth, PipeHeight)
	return Art{
		Bird:         [BirdFrames]*Mask{bird, bird, bird},
		Pipe:         pipe,
		PipeInverted: pipe.FlipV(),
		Ground:       solidMask(GroundWidth, GroundHeight),
	}
}

// ghostArt gives the bird no solid pixels so it never collides.
func ghostArt() Art {
	a := testArt()
	ghost := NewMask(34, 24)
	a.Bird = [BirdFrames]*Mask{ghost, ghost, ghost}
	return a
}

func newTestState(t *testing.T, art Art, seed int64) *State {
	t.Helper()
	s, err := New(art, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return s
}
