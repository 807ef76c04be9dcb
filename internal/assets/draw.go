package assets

import (
	"image"
	"image/color"
	"image/draw"
)

func fillRect(img *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(img, r.Intersect(img.Bounds()), image.NewUniform(c), image.Point{}, draw.Src)
}

// fillEllipse paints the ellipse inscribed in r.
func fillEllipse(img *image.RGBA, r image.Rectangle, c color.Color) {
	cx := float64(r.Min.X+r.Max.X-1) / 2
	cy := float64(r.Min.Y+r.Max.Y-1) / 2
	rx := float64(r.Dx()) / 2
	ry := float64(r.Dy()) / 2
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			dx, dy := (float64(x)-cx)/rx, (float64(y)-cy)/ry
			if dx*dx+dy*dy <= 1 {
				img.Set(x, y, c)
			}
		}
	}
}

// vgradient fills r blending from top to bottom.
func vgradient(img *image.RGBA, r image.Rectangle, top, bottom color.RGBA) {
	h := r.Dy()
	for y := 0; y < h; y++ {
		t := float64(y) / float64(max(h-1, 1))
		fillRect(img, image.Rect(r.Min.X, r.Min.Y+y, r.Max.X, r.Min.Y+y+1), lerp(top, bottom, t))
	}
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t) }
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}

// FlipV returns a copy of img mirrored top to bottom.
func FlipV(img *image.RGBA) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(b)
	for y := 0; y < b.Dy(); y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+b.Dx()*4]
		dst := out.Pix[(b.Dy()-1-y)*out.Stride:]
		copy(dst, src)
	}
	return out
}
