package common

import "image/color"

const (
	BaseWidth  = 1280
	BaseHeight = 720
)

// World scale: one grid cell is one world unit.
const (
	CellSize   = 1.0
	WallWidth  = 1.0
	WallHeight = 2.0
	WallDepth  = 1.0
	FloorSize  = 100.0
)

const (
	DefaultCoinCount     = 5
	DefaultCaptureRadius = 0.5
	WallNudge            = 0.1
)

const (
	DefaultEyeHeight    = 1.6
	DefaultPlayerHalfW  = 0.2
	DefaultPlayerHeight = 1.8
	DefaultFOV          = 75.0
	DefaultNear         = 0.1
	DefaultFar          = 1000.0
)

const (
	AmbientIntensity     = 0.5
	DirectionalIntensity = 0.8
)

const WinMessage = "You collected all coins! You win!"

var (
	SkyColor   = color.RGBA{R: 0x87, G: 0xCE, B: 0xEB, A: 0xff}
	WallColor  = color.RGBA{R: 0x8B, G: 0x45, B: 0x13, A: 0xff}
	FloorColor = color.RGBA{R: 0x22, G: 0x8B, B: 0x22, A: 0xff}
	CoinColor  = color.RGBA{R: 0xFF, G: 0xD7, B: 0x00, A: 0xff}
)
