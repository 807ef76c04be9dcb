package world

import (
	"image"
	"image/color"
	"testing"
)

func TestMaskFromImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	img.Set(0, 0, color.NRGBA{255, 0, 0, 255})
	img.Set(1, 0, color.NRGBA{255, 0, 0, 128})
	img.Set(2, 0, color.NRGBA{255, 0, 0, 127})
	img.Set(3, 1, color.NRGBA{0, 0, 0, 200})

	m := MaskFromImage(img)
	if w, h := m.Size(); w != 4 || h != 2 {
		t.Fatalf("Expected 4x2 mask, got %dx%d", w, h)
	}

	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{1, 0, true},
		{2, 0, false},
		{3, 0, false},
		{3, 1, true},
		{-1, 0, false},
		{4, 1, false},
	}
	for _, tc := range cases {
		if got := m.Get(tc.x, tc.y); got != tc.want {
			t.Errorf("Get(%d,%d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
	if m.Count() != 3 {
		t.Errorf("Expected 3 solid pixels, got %d", m.Count())
	}
}

func TestMaskFromImageOffsetBounds(t *testing.T) {
	img := image.NewNRGBA(image.Rect(10, 10, 12, 12))
	img.Set(10, 10, color.NRGBA{A: 255})

	m := MaskFromImage(img)
	if !m.Get(0, 0) || m.Count() != 1 {
		t.Errorf("Expected only (0,0) solid, got count %d", m.Count())
	}
}

func TestMaskOverlap(t *testing.T) {
	a := solidMask(10, 10)
	b := solidMask(5, 5)

	cases := []struct {
		name   string
		dx, dy int
		want   bool
	}{
		{"inside", 2, 2, true},
		{"corner touch", 9, 9, true},
		{"just right", 10, 0, false},
		{"just below", 0, 10, false},
		{"negative offset overlapping", -4, -4, true},
		{"negative offset clear", -5, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := a.Overlap(b, tc.dx, tc.dy); got != tc.want {
				t.Errorf("Overlap(%d,%d) = %v, want %v", tc.dx, tc.dy, got, tc.want)
			}
		})
	}
}

// Bounding boxes overlap but the solid pixels do not.
func TestMaskOverlapIsPixelExact(t *testing.T) {
	a := NewMask(4, 4)
	a.Set(0, 0, true)
	b := NewMask(4, 4)
	b.Set(3, 3, true)

	if a.Overlap(b, 1, 1) {
		t.Error("Expected no overlap between opposite corners")
	}
	if !a.Overlap(b, -3, -3) {
		t.Error("Expected overlap when corners coincide")
	}
}

func TestMaskFlipV(t *testing.T) {
	m := NewMask(3, 3)
	m.Set(1, 0, true)

	f := m.FlipV()
	if !f.Get(1, 2) || f.Get(1, 0) {
		t.Error("Expected pixel moved from top row to bottom row")
	}
	if !m.Get(1, 0) {
		t.Error("FlipV must not modify the source mask")
	}
}

func TestCollide(t *testing.T) {
	art := testArt()
	bird := NewBird(art.Bird)

	ground := NewGroundTile(0, art.Ground)
	if Collide(&bird, &ground) {
		t.Fatal("Bird at mid screen should not touch the ground")
	}

	bird.Y = ground.Y - 24
	if Collide(&bird, &ground) {
		t.Error("Bird resting exactly on top of the ground should not overlap")
	}

	bird.Y = ground.Y - 23
	if !Collide(&bird, &ground) {
		t.Error("Bird one pixel into the ground should collide")
	}
}
