package world

import "time"

const (
	ScreenWidth  = 400
	ScreenHeight = 600

	// FPS is the fixed simulation rate. One Advance call is one frame.
	FPS = 15

	JumpSpeed   = 20
	Gravity     = 2.5
	ScrollSpeed = 15

	GroundWidth         = 2 * ScreenWidth
	GroundHeight        = 100
	GroundTiles         = 2
	GroundRespawnOffset = 20

	PipeWidth  = 80
	PipeHeight = 500
	PipeGap    = 150
	PipePairs  = 2

	MinSplit = 100
	MaxSplit = 300

	// first pairs sit at FirstPipeX + PipeSpacing*i, recycled ones at PipeSpawnX
	FirstPipeX  = 800
	PipeSpacing = ScreenWidth
	PipeSpawnX  = 2 * ScreenWidth

	BirdFrames = 3

	GameOverPause = time.Second
)
