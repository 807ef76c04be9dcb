package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/4n0nym0u5-3y3/Flappy-Bird/internal/assets"
	"github.com/4n0nym0u5-3y3/Flappy-Bird/internal/sound"
	"github.com/4n0nym0u5-3y3/Flappy-Bird/internal/term"
	"github.com/4n0nym0u5-3y3/Flappy-Bird/internal/world"
)

func main() {
	set := assets.Load()
	state, err := world.New(set.Art(), rand.New(rand.NewSource(time.Now().UnixNano())))
	if err != nil {
		log.Fatal(err)
	}

	sp, err := sound.NewSpeaker()
	if err != nil {
		log.Fatal(err)
	}
	// Non-fatal, game can run without sound
	if err := sp.Init(); err != nil {
		log.Printf("audio disabled: %v", err)
	}
	defer sp.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()
	screen.HideCursor()

	if err := term.New(screen, state, set, sp).Run(); err != nil {
		screen.Fini()
		log.Fatal(err)
	}
}
