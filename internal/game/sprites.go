package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/4n0nym0u5-3y3/Flappy-Bird/internal/assets"
	"github.com/4n0nym0u5-3y3/Flappy-Bird/internal/world"
)

type sprites struct {
	background   *ebiten.Image
	bird         [world.BirdFrames]*ebiten.Image
	pipe         *ebiten.Image
	pipeInverted *ebiten.Image
	ground       *ebiten.Image
}

func newSprites(set *assets.Set) *sprites {
	s := &sprites{
		background:   ebiten.NewImageFromImage(set.Background),
		pipe:         ebiten.NewImageFromImage(set.Pipe),
		pipeInverted: ebiten.NewImageFromImage(set.PipeInverted),
		ground:       ebiten.NewImageFromImage(set.Ground),
	}
	for i, img := range set.Bird {
		s.bird[i] = ebiten.NewImageFromImage(img)
	}
	return s
}

func drawAt(screen, img *ebiten.Image, x, y float64) {
	var opts ebiten.DrawImageOptions
	opts.GeoM.Translate(x, y)
	screen.DrawImage(img, &opts)
}
