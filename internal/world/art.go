package world

import "errors"

// Art holds the collision masks the simulation needs. Images live elsewhere;
// only their solid pixels matter here.
type Art struct {
	Bird         [BirdFrames]*Mask
	Pipe         *Mask
	PipeInverted *Mask
	Ground       *Mask
}

var ErrMissingMask = errors.New("world: missing mask")

func (a *Art) validate() error {
	for _, m := range a.Bird {
		if m == nil {
			return ErrMissingMask
		}
	}
	if a.Pipe == nil || a.PipeInverted == nil || a.Ground == nil {
		return ErrMissingMask
	}
	return nil
}
