package game

import (
	"bytes"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/4n0nym0u5-3y3/Flappy-Bird/internal/sound"
)

// players keeps one ebiten audio player per effect.
type players struct {
	audioContext *audio.Context
	byEffect     map[sound.Effect]*audio.Player
}

func newPlayers() (*players, error) {
	p := &players{
		audioContext: audio.NewContext(int(sound.SampleRate)),
		byEffect:     make(map[sound.Effect]*audio.Player, len(sound.Effects)),
	}
	for _, e := range sound.Effects {
		data, err := sound.WAV(e)
		if err != nil {
			return nil, err
		}
		d, err := wav.DecodeWithoutResampling(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("game: decode %s: %w", e, err)
		}
		pl, err := p.audioContext.NewPlayer(d)
		if err != nil {
			return nil, fmt.Errorf("game: player %s: %w", e, err)
		}
		p.byEffect[e] = pl
	}
	return p, nil
}

func (p *players) Play(e sound.Effect) {
	pl, ok := p.byEffect[e]
	if !ok {
		return
	}
	if err := pl.Rewind(); err != nil {
		log.Printf("rewind %s: %v", e, err)
		return
	}
	pl.Play()
}
