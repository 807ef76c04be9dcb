package world

import (
	"image"
	"math"
)

// Body is anything that occupies pixels on screen.
type Body interface {
	Bounds() image.Rectangle
	Mask() *Mask
}

// Collide tests exact pixel overlap between two bodies.
func Collide(a, b Body) bool {
	ra, rb := a.Bounds(), b.Bounds()
	if !ra.Overlaps(rb) {
		return false
	}
	return a.Mask().Overlap(b.Mask(), rb.Min.X-ra.Min.X, rb.Min.Y-ra.Min.Y)
}

func rectAt(x, y float64, m *Mask) image.Rectangle {
	w, h := m.Size()
	px, py := int(math.Floor(x)), int(math.Floor(y))
	return image.Rect(px, py, px+w, py+h)
}

// offScreen is true once the right edge has crossed the left screen border.
func offScreen(x float64, w int) bool {
	return x < -float64(w)
}
