package world

import "image"

type GroundTile struct {
	X, Y float64

	mask *Mask
}

func NewGroundTile(x float64, mask *Mask) GroundTile {
	return GroundTile{X: x, Y: ScreenHeight - GroundHeight, mask: mask}
}

func (g *GroundTile) Mask() *Mask { return g.mask }

func (g *GroundTile) Bounds() image.Rectangle { return rectAt(g.X, g.Y, g.mask) }

func (g *GroundTile) OffScreen() bool {
	w, _ := g.mask.Size()
	return offScreen(g.X, w)
}
