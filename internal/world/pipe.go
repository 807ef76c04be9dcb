package world

import (
	"image"
	"math/rand"
)

type Pipe struct {
	X, Y     float64
	Inverted bool

	mask *Mask
}

// newPipe places a pipe so that ysize pixels of it are visible: from the
// bottom of the screen when upright, from the top when inverted.
func newPipe(inverted bool, x float64, ysize int, mask *Mask) Pipe {
	_, h := mask.Size()
	p := Pipe{X: x, Inverted: inverted, mask: mask}
	if inverted {
		p.Y = -float64(h - ysize)
	} else {
		p.Y = float64(ScreenHeight - ysize)
	}
	return p
}

func (p *Pipe) Mask() *Mask { return p.mask }

func (p *Pipe) Bounds() image.Rectangle { return rectAt(p.X, p.Y, p.mask) }

// PipePair is an upright pipe and an inverted pipe sharing a gap.
type PipePair struct {
	Upright  Pipe
	Inverted Pipe

	Scored bool
}

// NewPipePair builds a pair at x whose upright pipe shows split pixels.
func NewPipePair(x float64, split int, art *Art) PipePair {
	return PipePair{
		Upright:  newPipe(false, x, split, art.Pipe),
		Inverted: newPipe(true, x, ScreenHeight-split-PipeGap, art.PipeInverted),
	}
}

// RandomPipePair draws split uniformly from [MinSplit, MaxSplit].
func RandomPipePair(x float64, rng *rand.Rand, art *Art) PipePair {
	return NewPipePair(x, MinSplit+rng.Intn(MaxSplit-MinSplit+1), art)
}

func (pp *PipePair) X() float64 { return pp.Upright.X }

func (pp *PipePair) Width() int {
	w, _ := pp.Upright.mask.Size()
	return w
}

func (pp *PipePair) Scroll(dx float64) {
	pp.Upright.X -= dx
	pp.Inverted.X -= dx
}

func (pp *PipePair) OffScreen() bool { return offScreen(pp.Upright.X, pp.Width()) }

// Gap returns the vertical opening between the two pipe bodies.
func (pp *PipePair) Gap() float64 {
	_, h := pp.Inverted.mask.Size()
	return pp.Upright.Y - (pp.Inverted.Y + float64(h))
}
