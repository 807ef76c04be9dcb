package main

import (
	"log"

	_ "github.com/ebitengine/hideconsole"

	"github.com/4n0nym0u5-3y3/Flappy-Bird/internal/game"
)

func main() {
	if err := game.Run(); err != nil {
		log.Fatal(err)
	}
}
