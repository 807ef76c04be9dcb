// Package assets paints the game's sprites in code and derives their
// collision masks.
package assets

import (
	"image"
	"image/color"
	"sync"

	"github.com/4n0nym0u5-3y3/Flappy-Bird/internal/world"
)

const (
	BirdWidth  = 34
	BirdHeight = 24
)

var (
	skyTop    = color.RGBA{78, 192, 202, 0xff}
	skyBottom = color.RGBA{200, 236, 236, 0xff}
	cloud     = color.RGBA{234, 252, 219, 0xff}
	city      = color.RGBA{150, 210, 180, 0xff}
	bush      = color.RGBA{94, 226, 112, 0xff}
	pipeLight = color.RGBA{115, 191, 46, 0xff}
	pipeDark  = color.RGBA{84, 128, 30, 0xff}
	pipeEdge  = color.RGBA{84, 56, 71, 0xff}
	dirt      = color.RGBA{222, 216, 149, 0xff}
	dirtShade = color.RGBA{208, 192, 118, 0xff}
	grass     = color.RGBA{115, 191, 46, 0xff}
	grassDark = color.RGBA{84, 128, 30, 0xff}
	birdBody  = color.RGBA{82, 162, 227, 0xff}
	birdBelly = color.RGBA{226, 240, 250, 0xff}
	birdWing  = color.RGBA{240, 248, 255, 0xff}
	birdBeak  = color.RGBA{250, 110, 40, 0xff}
	outline   = color.RGBA{84, 56, 71, 0xff}
	white     = color.RGBA{255, 255, 255, 0xff}
)

// Set is the full sprite sheet.
type Set struct {
	Background   *image.RGBA
	Bird         [world.BirdFrames]*image.RGBA
	Pipe         *image.RGBA
	PipeInverted *image.RGBA
	Ground       *image.RGBA
}

var (
	once   sync.Once
	shared *Set
)

// Load paints the sprites once and returns the shared set.
func Load() *Set {
	once.Do(func() {
		shared = Paint()
	})
	return shared
}

// Paint builds a fresh sprite set.
func Paint() *Set {
	s := &Set{
		Background: background(),
		Pipe:       pipe(),
		Ground:     ground(),
	}
	for i := range s.Bird {
		s.Bird[i] = bird(i)
	}
	s.PipeInverted = FlipV(s.Pipe)
	return s
}

// Art derives the collision masks from the sprite alpha channels.
func (s *Set) Art() world.Art {
	var a world.Art
	for i, img := range s.Bird {
		a.Bird[i] = world.MaskFromImage(img)
	}
	a.Pipe = world.MaskFromImage(s.Pipe)
	a.PipeInverted = world.MaskFromImage(s.PipeInverted)
	a.Ground = world.MaskFromImage(s.Ground)
	return a
}

func background() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, world.ScreenWidth, world.ScreenHeight))
	vgradient(img, img.Bounds(), skyTop, skyBottom)

	horizon := world.ScreenHeight - world.GroundHeight
	for i, x := 0, -20; x < world.ScreenWidth; i, x = i+1, x+46 {
		fillEllipse(img, image.Rect(x, horizon-120-(i%3)*8, x+70, horizon-60), cloud)
	}
	for i, x := 0, 0; x < world.ScreenWidth; i, x = i+1, x+28 {
		h := 30 + (i*37)%45
		fillRect(img, image.Rect(x, horizon-h, x+24, horizon), city)
		for wy := horizon - h + 6; wy < horizon-6; wy += 8 {
			fillRect(img, image.Rect(x+5, wy, x+9, wy+3), skyBottom)
			fillRect(img, image.Rect(x+14, wy, x+18, wy+3), skyBottom)
		}
	}
	for x := -10; x < world.ScreenWidth; x += 30 {
		fillEllipse(img, image.Rect(x, horizon-24, x+44, horizon+16), bush)
	}
	return img
}

// bird draws one flap frame: 0 wing up, 1 wing level, 2 wing down.
func bird(frame int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, BirdWidth, BirdHeight))
	fillEllipse(img, image.Rect(1, 1, 29, 23), outline)
	fillEllipse(img, image.Rect(2, 2, 28, 22), birdBody)
	fillEllipse(img, image.Rect(6, 12, 26, 22), birdBelly)

	// eye
	fillEllipse(img, image.Rect(17, 2, 28, 13), outline)
	fillEllipse(img, image.Rect(18, 3, 27, 12), white)
	fillRect(img, image.Rect(23, 6, 25, 10), outline)

	// beak
	fillRect(img, image.Rect(22, 13, 33, 16), outline)
	fillRect(img, image.Rect(23, 14, 32, 15), birdBeak)
	fillRect(img, image.Rect(21, 16, 31, 19), outline)
	fillRect(img, image.Rect(22, 16, 30, 18), birdBeak)

	wingY := [world.BirdFrames]int{4, 9, 13}[frame%world.BirdFrames]
	fillEllipse(img, image.Rect(0, wingY, 14, wingY+9), outline)
	fillEllipse(img, image.Rect(1, wingY+1, 13, wingY+8), birdWing)
	return img
}

// pipe draws an upright pipe with its lip at the top. The shaft is narrower
// than the lip, leaving transparent columns on both sides.
func pipe() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, world.PipeWidth, world.PipeHeight))
	const lip, inset = 30, 4
	fillRect(img, image.Rect(inset, lip, world.PipeWidth-inset, world.PipeHeight), pipeEdge)
	fillRect(img, image.Rect(inset+2, lip, world.PipeWidth-inset-2, world.PipeHeight), pipeLight)
	fillRect(img, image.Rect(world.PipeWidth-inset-18, lip, world.PipeWidth-inset-2, world.PipeHeight), pipeDark)
	fillRect(img, image.Rect(inset+8, lip, inset+14, world.PipeHeight), bush)

	fillRect(img, image.Rect(0, 0, world.PipeWidth, lip), pipeEdge)
	fillRect(img, image.Rect(2, 2, world.PipeWidth-2, lip-2), pipeLight)
	fillRect(img, image.Rect(world.PipeWidth-20, 2, world.PipeWidth-2, lip-2), pipeDark)
	fillRect(img, image.Rect(6, 2, 12, lip-2), bush)
	return img
}

func ground() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, world.GroundWidth, world.GroundHeight))
	fillRect(img, img.Bounds(), dirt)
	fillRect(img, image.Rect(0, 0, world.GroundWidth, 2), outline)
	fillRect(img, image.Rect(0, 2, world.GroundWidth, 16), grass)
	for x := 0; x < world.GroundWidth; x += 20 {
		for y := 2; y < 14; y++ {
			// diagonal stripes
			fillRect(img, image.Rect(x+y, y, x+y+8, y+1), grassDark)
		}
	}
	fillRect(img, image.Rect(0, 16, world.GroundWidth, 19), dirtShade)
	for x := 0; x < world.GroundWidth; x += 40 {
		fillRect(img, image.Rect(x+10, 40, x+16, 44), dirtShade)
		fillRect(img, image.Rect(x+28, 66, x+34, 70), dirtShade)
	}
	return img
}
