package world

import (
	"errors"
	"math/rand"
	"testing"
)

func TestNewLayout(t *testing.T) {
	s := newTestState(t, testArt(), 1)

	if s.Phase != PhaseBegin {
		t.Errorf("Expected Begin, got %s", s.Phase)
	}
	if s.Ground.Len() != GroundTiles {
		t.Fatalf("Expected %d ground tiles, got %d", GroundTiles, s.Ground.Len())
	}
	if s.Ground.At(0).X != 0 || s.Ground.At(1).X != GroundWidth {
		t.Errorf("Ground tiles at %v/%v", s.Ground.At(0).X, s.Ground.At(1).X)
	}
	if s.PipeCount() != 4 {
		t.Fatalf("Expected 4 pipes, got %d", s.PipeCount())
	}
	if s.Pipes.At(0).X() != FirstPipeX || s.Pipes.At(1).X() != FirstPipeX+PipeSpacing {
		t.Errorf("Pipe pairs at %v/%v", s.Pipes.At(0).X(), s.Pipes.At(1).X())
	}
}

func TestNewRejectsIncompleteArt(t *testing.T) {
	art := testArt()
	art.Bird[1] = nil
	if _, err := New(art, rand.New(rand.NewSource(1))); !errors.Is(err, ErrMissingMask) {
		t.Errorf("Expected ErrMissingMask, got %v", err)
	}
	if _, err := New(testArt(), nil); err == nil {
		t.Error("Expected error for nil random source")
	}
}

func TestBeginIgnoresCollisions(t *testing.T) {
	s := newTestState(t, testArt(), 1)
	pipeX := s.Pipes.Front().X()

	// falls straight through the ground without ending the session
	for i := 0; i < 60; i++ {
		if ev := s.Advance(Input{}); ev != 0 {
			t.Fatalf("Frame %d: unexpected events %s", i, ev)
		}
	}
	if s.Phase != PhaseBegin {
		t.Fatalf("Expected Begin, got %s", s.Phase)
	}
	if s.Bird.Y < ScreenHeight {
		t.Errorf("Expected bird below the screen, y=%v", s.Bird.Y)
	}
	if s.Pipes.Front().X() != pipeX {
		t.Error("Pipes must not scroll before the first flap")
	}
	if s.Ground.Len() != GroundTiles {
		t.Errorf("Ground window changed size to %d", s.Ground.Len())
	}
}

func TestBeginFlapStartsPlaying(t *testing.T) {
	s := newTestState(t, testArt(), 1)
	groundX := s.Ground.Front().X

	ev := s.Advance(Input{Bump: true})

	if !ev.Has(EventWing) {
		t.Errorf("Expected wing event, got %s", ev)
	}
	if s.Phase != PhasePlaying {
		t.Fatalf("Expected Playing, got %s", s.Phase)
	}
	// the jump frame still runs the begin update
	if s.Bird.Velocity != -JumpSpeed+Gravity {
		t.Errorf("Velocity = %v, want %v", s.Bird.Velocity, -JumpSpeed+Gravity)
	}
	if s.Ground.Front().X != groundX-ScrollSpeed {
		t.Error("Ground should scroll on the transition frame")
	}
}

func TestPlayingFlapConsumesFrame(t *testing.T) {
	s := newTestState(t, testArt(), 1)
	s.Phase = PhasePlaying
	s.Bird.Y, s.Bird.Velocity = 200, 12.5
	groundX, pipeX := s.Ground.Front().X, s.Pipes.Front().X()

	ev := s.Advance(Input{Bump: true})

	if ev != EventWing {
		t.Errorf("Expected only wing, got %s", ev)
	}
	if s.Bird.Velocity != -JumpSpeed || s.Bird.Y != 200 {
		t.Errorf("Expected velocity %v at y=200, got %v at %v", -JumpSpeed, s.Bird.Velocity, s.Bird.Y)
	}
	if s.Ground.Front().X != groundX || s.Pipes.Front().X() != pipeX {
		t.Error("Nothing should scroll on a flap frame")
	}

	s.Advance(Input{})
	if s.Bird.Velocity != -JumpSpeed+Gravity {
		t.Errorf("Velocity after next tick = %v, want %v", s.Bird.Velocity, -JumpSpeed+Gravity)
	}
	if s.Bird.Y != 200-JumpSpeed+Gravity {
		t.Errorf("Y after next tick = %v", s.Bird.Y)
	}
}

func TestPlayingTickNoBump(t *testing.T) {
	s := newTestState(t, ghostArt(), 1)
	s.Phase = PhasePlaying
	s.Bird.Y, s.Bird.Velocity = 250, 4

	s.Advance(Input{})

	if s.Bird.Y != 250+4+Gravity || s.Bird.Velocity != 4+Gravity {
		t.Errorf("Got y=%v v=%v", s.Bird.Y, s.Bird.Velocity)
	}
}

// Velocity rule and window sizes hold over a long random session.
func TestPlayingInvariants(t *testing.T) {
	s := newTestState(t, ghostArt(), 7)
	s.Phase = PhasePlaying
	inputs := rand.New(rand.NewSource(99))

	for frame := 0; frame < 2000; frame++ {
		prev := s.Bird.Velocity
		bump := inputs.Intn(4) == 0

		s.Advance(Input{Bump: bump})

		want := prev + Gravity
		if bump {
			want = -JumpSpeed
		}
		if s.Bird.Velocity != want {
			t.Fatalf("Frame %d: velocity %v, want %v", frame, s.Bird.Velocity, want)
		}
		if s.Ground.Len() != GroundTiles {
			t.Fatalf("Frame %d: %d ground tiles", frame, s.Ground.Len())
		}
		if s.PipeCount() != 4 {
			t.Fatalf("Frame %d: %d pipes", frame, s.PipeCount())
		}
		if s.Phase != PhasePlaying {
			t.Fatalf("Frame %d: ghost bird left Playing (%s)", frame, s.Phase)
		}
		for _, pp := range s.Pipes.All() {
			if pp.Gap() != PipeGap || pp.Upright.X != pp.Inverted.X {
				t.Fatalf("Frame %d: broken pair %+v", frame, *pp)
			}
		}
	}
	t.Logf("score after 2000 frames: %d", s.Score)
}

func TestGroundRecycle(t *testing.T) {
	s := newTestState(t, testArt(), 1)
	s.Ground.Front().X = -GroundWidth - 1
	second := *s.Ground.At(1)

	s.recycleGround()

	if s.Ground.Len() != GroundTiles {
		t.Fatalf("Expected %d tiles, got %d", GroundTiles, s.Ground.Len())
	}
	if s.Ground.Front().X != second.X {
		t.Error("The old trailing tile should now be in front")
	}
	if got := s.Ground.At(1).X; got != GroundWidth-GroundRespawnOffset {
		t.Errorf("Replacement at %v, want %d", got, GroundWidth-GroundRespawnOffset)
	}
}

func TestGroundRecycleThroughAdvance(t *testing.T) {
	s := newTestState(t, testArt(), 1)
	s.Ground.Front().X = -GroundWidth - 1

	s.Advance(Input{})

	if got := s.Ground.At(1).X; got != GroundWidth-GroundRespawnOffset-ScrollSpeed {
		t.Errorf("Replacement scrolled to %v", got)
	}
}

func TestRecycleIdempotentWhileOnScreen(t *testing.T) {
	s := newTestState(t, testArt(), 3)
	s.Ground.Front().X = -GroundWidth
	s.Pipes.Front().Scroll(FirstPipeX + PipeWidth)

	ground := []GroundTile{*s.Ground.At(0), *s.Ground.At(1)}
	pipes := []PipePair{*s.Pipes.At(0), *s.Pipes.At(1)}

	for i := 0; i < 3; i++ {
		s.recycleGround()
		s.recyclePipes()
	}

	for i := range ground {
		if *s.Ground.At(i) != ground[i] {
			t.Errorf("Ground tile %d changed", i)
		}
		if *s.Pipes.At(i) != pipes[i] {
			t.Errorf("Pipe pair %d changed", i)
		}
	}
}

func TestPipeRecycleReplacesPair(t *testing.T) {
	s := newTestState(t, testArt(), 5)
	s.Pipes.Front().Scroll(FirstPipeX + PipeWidth + 1)
	survivor := *s.Pipes.At(1)

	s.recyclePipes()

	if s.PipeCount() != 4 {
		t.Fatalf("Expected 4 pipes, got %d", s.PipeCount())
	}
	if *s.Pipes.Front() != survivor {
		t.Error("Second pair should move to the front")
	}
	back := s.Pipes.At(1)
	if back.X() != PipeSpawnX || back.Gap() != PipeGap {
		t.Errorf("New pair at x=%v gap=%v", back.X(), back.Gap())
	}
}

func TestGroundCollisionEndsSession(t *testing.T) {
	s := newTestState(t, testArt(), 1)
	s.Phase = PhasePlaying
	s.Bird.Y, s.Bird.Velocity = ScreenHeight-GroundHeight-24, 0

	ev := s.Advance(Input{})

	if !ev.Has(EventHit) {
		t.Fatalf("Expected hit, got %s", ev)
	}
	if s.Phase != PhaseOver {
		t.Fatalf("Expected Over, got %s", s.Phase)
	}

	hits := 0
	for i := 0; i < 10; i++ {
		if s.Advance(Input{Bump: true}).Has(EventHit) {
			hits++
		}
	}
	if hits != 0 {
		t.Errorf("Over must be terminal, got %d more hits", hits)
	}
}

func TestPipeCollisionEndsSession(t *testing.T) {
	s := newTestState(t, testArt(), 1)
	s.Phase = PhasePlaying
	pp := s.Pipes.Front()
	pp.Scroll(pp.X() - s.Bird.X - ScrollSpeed)
	// park the bird inside the upright pipe body
	s.Bird.Y, s.Bird.Velocity = pp.Upright.Y+10, -Gravity

	if ev := s.Advance(Input{}); !ev.Has(EventHit) {
		t.Fatalf("Expected hit, got %s", ev)
	}
}

func TestBirdInGapSurvives(t *testing.T) {
	s := newTestState(t, testArt(), 1)
	s.Phase = PhasePlaying
	pp := s.Pipes.Front()
	pp.Scroll(pp.X() - s.Bird.X - ScrollSpeed)
	s.Bird.Y, s.Bird.Velocity = pp.Upright.Y-PipeGap/2-12, -Gravity

	if ev := s.Advance(Input{}); ev.Has(EventHit) {
		t.Fatalf("Bird centred in the gap should not collide")
	}
	if s.Phase != PhasePlaying {
		t.Errorf("Expected Playing, got %s", s.Phase)
	}
}

func TestScoreCountsEachPairOnce(t *testing.T) {
	s := newTestState(t, ghostArt(), 1)
	s.Phase = PhasePlaying
	pp := s.Pipes.Front()
	pp.Scroll(pp.X() + PipeWidth - s.Bird.X - ScrollSpeed + 1)

	first := s.Advance(Input{})
	if !first.Has(EventScore) || s.Score != 1 {
		t.Fatalf("Expected score event and score 1, got %s / %d", first, s.Score)
	}
	if s.Advance(Input{}).Has(EventScore) || s.Score != 1 {
		t.Errorf("Pair must only score once, score=%d", s.Score)
	}
}

func TestQuit(t *testing.T) {
	s := newTestState(t, testArt(), 1)
	before := s.Bird

	if ev := s.Advance(Input{Quit: true, Bump: true}); ev != EventQuit {
		t.Errorf("Expected quit only, got %s", ev)
	}
	if s.Bird != before || s.Phase != PhaseBegin {
		t.Error("Quit must not advance the frame")
	}
}

func TestEventsString(t *testing.T) {
	cases := map[Events]string{
		0:                     "none",
		EventWing:             "wing",
		EventHit | EventScore: "hit|score",
		EventWing | EventQuit: "wing|quit",
	}
	for ev, want := range cases {
		if got := ev.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", ev, got, want)
		}
	}
	if PhaseOver.String() != "Over" || Phase(9).String() != "Phase(9)" {
		t.Error("Unexpected phase names")
	}
}
