// Package sound synthesises the game's sound effects with beep.
package sound

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const SampleRate = beep.SampleRate(48000)

// Format is 16-bit stereo at SampleRate, which is what ebiten's audio
// context expects after WAV decoding.
var Format = beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}

type Effect int

const (
	Wing Effect = iota
	Hit
)

func (e Effect) String() string {
	switch e {
	case Wing:
		return "wing"
	case Hit:
		return "hit"
	default:
		return fmt.Sprintf("Effect(%d)", int(e))
	}
}

// Effects lists every effect in a stable order.
var Effects = []Effect{Wing, Hit}

// Streamer builds a fresh, finite streamer for e.
func Streamer(e Effect) (beep.Streamer, error) {
	switch e {
	case Wing:
		return wing(), nil
	case Hit:
		return hit()
	default:
		return nil, fmt.Errorf("sound: unknown effect %d", int(e))
	}
}

// wing is a short rising chirp.
func wing() beep.Streamer {
	d := 120 * time.Millisecond
	s := newEnvelope(newSweep(520, 1180, d), d, 8*time.Millisecond)
	return volume(s, 0.35)
}

// hit is a thud: low tone plus a burst of noise.
func hit() (beep.Streamer, error) {
	tone, err := generators.SineTone(SampleRate, 96)
	if err != nil {
		return nil, fmt.Errorf("sound: hit tone: %w", err)
	}
	d := 260 * time.Millisecond
	body := newEnvelope(beep.Take(SampleRate.N(d), tone), d, 2*time.Millisecond)
	crack := newEnvelope(newNoise(SampleRate.N(90*time.Millisecond), 7), 90*time.Millisecond, time.Millisecond)
	return volume(beep.Mix(volume(body, 0.7), volume(crack, 0.4)), 0.8), nil
}

func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// sweep is a sine whose frequency glides linearly from f0 to f1.
type sweep struct {
	f0, f1 float64
	phase  float64
	pos, n int
}

func newSweep(f0, f1 float64, d time.Duration) *sweep {
	return &sweep{f0: f0, f1: f1, n: SampleRate.N(d)}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.n {
			return i, i > 0
		}
		f := s.f0 + (s.f1-s.f0)*float64(s.pos)/float64(s.n)
		v := math.Sin(2 * math.Pi * s.phase)
		samples[i] = [2]float64{v, v}
		s.phase += f / float64(SampleRate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

type noise struct {
	rng    *rand.Rand
	pos, n int
}

func newNoise(n int, seed int64) *noise {
	return &noise{rng: rand.New(rand.NewSource(seed)), n: n}
}

func (g *noise) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.n {
			return i, i > 0
		}
		v := g.rng.Float64()*2 - 1
		samples[i] = [2]float64{v, v}
		g.pos++
	}
	return len(samples), true
}

func (g *noise) Err() error { return nil }

// envelope applies a linear attack and a linear release over total.
type envelope struct {
	s             beep.Streamer
	pos           int
	total, attack int
}

func newEnvelope(s beep.Streamer, total, attack time.Duration) *envelope {
	return &envelope{s: s, total: SampleRate.N(total), attack: max(SampleRate.N(attack), 1)}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.s.Stream(samples)
	for i := 0; i < n; i++ {
		var g float64
		switch {
		case e.pos < e.attack:
			g = float64(e.pos) / float64(e.attack)
		case e.pos < e.total:
			g = 1 - float64(e.pos-e.attack)/float64(max(e.total-e.attack, 1))
		}
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }
