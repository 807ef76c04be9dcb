package sound

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Speaker plays pre-rendered effects on the default audio device.
type Speaker struct {
	mu      sync.Mutex
	buffers map[Effect]*beep.Buffer
	ready   bool
}

// NewSpeaker renders every effect up front. Call Init to open the device.
func NewSpeaker() (*Speaker, error) {
	sp := &Speaker{buffers: make(map[Effect]*beep.Buffer, len(Effects))}
	for _, e := range Effects {
		buf, err := Render(e)
		if err != nil {
			return nil, err
		}
		sp.buffers[e] = buf
	}
	return sp, nil
}

// Init opens the audio device. On failure the speaker stays silent.
func (sp *Speaker) Init() error {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	if sp.ready {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("sound: speaker init: %w", err)
	}
	sp.ready = true
	return nil
}

func (sp *Speaker) Play(e Effect) {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	buf, ok := sp.buffers[e]
	if !sp.ready || !ok {
		return
	}
	speaker.Play(buf.Streamer(0, buf.Len()))
}

func (sp *Speaker) Close() {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	if !sp.ready {
		return
	}
	speaker.Clear()
	speaker.Close()
	sp.ready = false
}
