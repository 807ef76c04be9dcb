// Package game runs the simulation in an ebiten window.
package game

import (
	"bytes"
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/4n0nym0u5-3y3/Flappy-Bird/internal/assets"
	"github.com/4n0nym0u5-3y3/Flappy-Bird/internal/world"
)

const WindowTitle = "Flappy Bird"

// Game implements ebiten.Game.
type Game struct {
	session

	sprites          *sprites
	arcadeFaceSource *text.GoTextFaceSource
}

func New() (*Game, error) {
	set := assets.Load()
	state, err := world.New(set.Art(), rand.New(rand.NewSource(time.Now().UnixNano())))
	if err != nil {
		return nil, err
	}

	src, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		return nil, fmt.Errorf("game: font: %w", err)
	}

	p, err := newPlayers()
	if err != nil {
		return nil, err
	}

	return &Game{
		session:          session{state: state, sfx: p},
		sprites:          newSprites(set),
		arcadeFaceSource: src,
	}, nil
}

func (g *Game) Update() error {
	return g.tick(inputFrom(inpututil.IsKeyJustPressed, ebiten.IsWindowBeingClosed()))
}

func (g *Game) Draw(screen *ebiten.Image) {
	st := g.state
	screen.DrawImage(g.sprites.background, nil)

	switch st.Phase {
	case world.PhaseBegin:
		g.drawText(screen, "GET READY", world.ScreenWidth/2, 150, 24)
		g.drawText(screen, "SPACE / UP TO FLAP", world.ScreenWidth/2, 200, 12)
		g.drawBird(screen)
		g.drawGround(screen)

	case world.PhasePlaying, world.PhaseOver:
		g.drawBird(screen)
		for _, pp := range st.Pipes.All() {
			drawAt(screen, g.sprites.pipe, pp.Upright.X, pp.Upright.Y)
			drawAt(screen, g.sprites.pipeInverted, pp.Inverted.X, pp.Inverted.Y)
		}
		g.drawGround(screen)
		g.drawText(screen, fmt.Sprintf("%v", st.Score), world.ScreenWidth/2, 60, 32)
		if st.Phase == world.PhaseOver {
			g.drawText(screen, "GAME OVER", world.ScreenWidth/2, 250, 28)
		}
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return world.ScreenWidth, world.ScreenHeight
}

func (g *Game) drawBird(screen *ebiten.Image) {
	b := g.state.Bird
	drawAt(screen, g.sprites.bird[b.Frame], b.X, b.Y)
}

func (g *Game) drawGround(screen *ebiten.Image) {
	for _, tile := range g.state.Ground.All() {
		drawAt(screen, g.sprites.ground, tile.X, tile.Y)
	}
}

func (g *Game) drawText(screen *ebiten.Image, msg string, x, y, size float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(color.White)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, msg, &text.GoTextFace{
		Source: g.arcadeFaceSource,
		Size:   size,
	}, op)
}

// Run opens the window and blocks until the game ends.
func Run() error {
	g, err := New()
	if err != nil {
		return err
	}
	ebiten.SetWindowSize(world.ScreenWidth, world.ScreenHeight)
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(world.FPS)
	return ebiten.RunGame(g)
}
