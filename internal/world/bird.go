package world

import "image"

type Bird struct {
	X, Y     float64
	Velocity float64
	Frame    int

	frames [BirdFrames]*Mask
}

func NewBird(frames [BirdFrames]*Mask) Bird {
	return Bird{
		X:        float64(ScreenWidth / 6),
		Y:        float64(ScreenHeight / 2),
		Velocity: JumpSpeed,
		frames:   frames,
	}
}

// Update advances the flap animation and integrates one gravity step.
func (b *Bird) Update() {
	b.Frame = (b.Frame + 1) % BirdFrames
	b.Velocity += Gravity
	b.Y += b.Velocity
}

// Bump replaces the current velocity with the jump velocity.
func (b *Bird) Bump() {
	b.Velocity = -JumpSpeed
}

func (b *Bird) Mask() *Mask { return b.frames[b.Frame] }

func (b *Bird) Bounds() image.Rectangle { return rectAt(b.X, b.Y, b.Mask()) }
