package world

import (
	"image"
)

// alphaThreshold matches the usual sprite mask rule: a pixel is solid when
// its alpha is above half.
const alphaThreshold = 127

// Mask is a per-pixel collision bitmap.
type Mask struct {
	w, h int
	bits []bool
}

func NewMask(w, h int) *Mask {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Mask{w: w, h: h, bits: make([]bool, w*h)}
}

// MaskFromImage marks every pixel of img whose alpha is above the threshold.
func MaskFromImage(img image.Image) *Mask {
	b := img.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			if a>>8 > alphaThreshold {
				m.bits[y*m.w+x] = true
			}
		}
	}
	return m
}

func (m *Mask) Size() (w, h int) { return m.w, m.h }

func (m *Mask) Get(x, y int) bool {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return false
	}
	return m.bits[y*m.w+x]
}

func (m *Mask) Set(x, y int, v bool) {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return
	}
	m.bits[y*m.w+x] = v
}

// Count returns the number of solid pixels.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// FlipV returns a copy of m mirrored top to bottom.
func (m *Mask) FlipV() *Mask {
	out := NewMask(m.w, m.h)
	for y := 0; y < m.h; y++ {
		copy(out.bits[(m.h-1-y)*m.w:(m.h-y)*m.w], m.bits[y*m.w:(y+1)*m.w])
	}
	return out
}

// Overlap reports whether any solid pixel of m coincides with a solid pixel
// of o when o's top-left corner is placed at (dx, dy) in m's coordinates.
func (m *Mask) Overlap(o *Mask, dx, dy int) bool {
	x0, y0 := max(0, dx), max(0, dy)
	x1, y1 := min(m.w, dx+o.w), min(m.h, dy+o.h)
	for y := y0; y < y1; y++ {
		row, orow := y*m.w, (y-dy)*o.w
		for x := x0; x < x1; x++ {
			if m.bits[row+x] && o.bits[orow+x-dx] {
				return true
			}
		}
	}
	return false
}
