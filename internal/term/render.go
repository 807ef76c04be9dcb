package term

import (
	"image"

	"github.com/gdamore/tcell/v2"
)

// upperHalf draws two vertical pixels per cell: foreground on top,
// background below.
const upperHalf = '▀'

// Present scales frame to the whole screen using half-block cells.
func Present(screen tcell.Screen, frame *image.RGBA) {
	w, h := screen.Size()
	if w <= 0 || h <= 0 {
		return
	}
	b := frame.Bounds()
	fw, fh := b.Dx(), b.Dy()
	for cy := 0; cy < h; cy++ {
		ty := b.Min.Y + (4*cy+1)*fh/(4*h)
		by := b.Min.Y + (4*cy+3)*fh/(4*h)
		for cx := 0; cx < w; cx++ {
			px := b.Min.X + (2*cx+1)*fw/(2*w)
			style := tcell.StyleDefault.
				Foreground(rgb(frame, px, ty)).
				Background(rgb(frame, px, by))
			screen.SetContent(cx, cy, upperHalf, nil, style)
		}
	}
}

func rgb(img *image.RGBA, x, y int) tcell.Color {
	c := img.RGBAAt(x, y)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// drawText writes msg centred on row y.
func drawText(screen tcell.Screen, y int, msg string, style tcell.Style) {
	w, h := screen.Size()
	if y < 0 || y >= h {
		return
	}
	runes := []rune(msg)
	x := (w - len(runes)) / 2
	for i, r := range runes {
		if x+i >= 0 && x+i < w {
			screen.SetContent(x+i, y, r, nil, style)
		}
	}
}
