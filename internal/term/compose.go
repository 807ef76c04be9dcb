package term

import (
	"image"
	"image/draw"
	"math"

	"github.com/4n0nym0u5-3y3/Flappy-Bird/internal/assets"
	"github.com/4n0nym0u5-3y3/Flappy-Bird/internal/world"
)

// Compose paints the current frame into dst, which must be screen sized.
// Order matches the window frontend: bird, pipes, then ground on top.
func Compose(dst *image.RGBA, st *world.State, set *assets.Set) {
	draw.Draw(dst, dst.Bounds(), set.Background, image.Point{}, draw.Src)

	blit(dst, set.Bird[st.Bird.Frame], st.Bird.X, st.Bird.Y)
	if st.Phase != world.PhaseBegin {
		for _, pp := range st.Pipes.All() {
			blit(dst, set.Pipe, pp.Upright.X, pp.Upright.Y)
			blit(dst, set.PipeInverted, pp.Inverted.X, pp.Inverted.Y)
		}
	}
	for _, g := range st.Ground.All() {
		blit(dst, set.Ground, g.X, g.Y)
	}
}

func blit(dst *image.RGBA, src *image.RGBA, x, y float64) {
	at := image.Pt(int(math.Floor(x)), int(math.Floor(y)))
	r := src.Bounds().Sub(src.Bounds().Min).Add(at)
	draw.Draw(dst, r, src, src.Bounds().Min, draw.Over)
}
