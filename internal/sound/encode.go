package sound

import (
	"errors"
	"fmt"
	"io"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// Render drains the effect into an in-memory buffer.
func Render(e Effect) (*beep.Buffer, error) {
	s, err := Streamer(e)
	if err != nil {
		return nil, err
	}
	buf := beep.NewBuffer(Format)
	buf.Append(s)
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("sound: render %s: %w", e, err)
	}
	return buf, nil
}

// WAV encodes the effect as a complete RIFF/WAVE file.
func WAV(e Effect) ([]byte, error) {
	s, err := Streamer(e)
	if err != nil {
		return nil, err
	}
	var w memFile
	if err := wav.Encode(&w, s, Format); err != nil {
		return nil, fmt.Errorf("sound: encode %s: %w", e, err)
	}
	return w.buf, nil
}

// memFile is an in-memory io.WriteSeeker; wav.Encode seeks back to patch
// the header sizes.
type memFile struct {
	buf []byte
	pos int
}

func (m *memFile) Write(p []byte) (int, error) {
	if end := m.pos + len(p); end > len(m.buf) {
		m.buf = append(m.buf, make([]byte, end-len(m.buf))...)
	}
	n := copy(m.buf[m.pos:], p)
	m.pos += n
	return n, nil
}

var errNegativeSeek = errors.New("sound: negative seek position")

func (m *memFile) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = int64(m.pos) + offset
	case io.SeekEnd:
		abs = int64(len(m.buf)) + offset
	default:
		return 0, fmt.Errorf("sound: bad whence %d", whence)
	}
	if abs < 0 {
		return 0, errNegativeSeek
	}
	m.pos = int(abs)
	return abs, nil
}
