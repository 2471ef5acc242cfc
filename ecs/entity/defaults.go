package entity

import (
	"github.com/milk9111/mazerunner/common"
	"github.com/milk9111/mazerunner/prefabs"
)

// withDefaults returns a copy of specs with every zero field filled from the
// compile-time defaults. A nil input yields the defaults alone.
func withDefaults(specs *prefabs.Specs) prefabs.Specs {
	out := prefabs.Specs{
		Player: &prefabs.PlayerSpec{},
		Coin:   &prefabs.CoinSpec{},
		Wall:   &prefabs.WallSpec{},
		Floor:  &prefabs.FloorSpec{},
		Camera: &prefabs.CameraSpec{},
		Game:   &prefabs.GameSpec{},
	}
	if specs != nil {
		if specs.Player != nil {
			*out.Player = *specs.Player
		}
		if specs.Coin != nil {
			*out.Coin = *specs.Coin
		}
		if specs.Wall != nil {
			*out.Wall = *specs.Wall
		}
		if specs.Floor != nil {
			*out.Floor = *specs.Floor
		}
		if specs.Camera != nil {
			*out.Camera = *specs.Camera
		}
		if specs.Game != nil {
			*out.Game = *specs.Game
		}
	}

	p := out.Player
	orDefault(&p.MoveSpeed, 0.05)
	orDefault(&p.MouseSensitivity, 0.002)
	orDefault(&p.EyeHeight, common.DefaultEyeHeight)
	orDefault(&p.HalfWidth, common.DefaultPlayerHalfW)
	orDefault(&p.Height, common.DefaultPlayerHeight)

	c := out.Coin
	orDefault(&c.Height, 1.4)
	orDefault(&c.Radius, 0.2)
	orDefault(&c.Tube, 0.05)
	orDefault(&c.CaptureRadius, common.DefaultCaptureRadius)

	wl := out.Wall
	orDefault(&wl.Width, common.WallWidth)
	orDefault(&wl.Height, common.WallHeight)
	orDefault(&wl.Depth, common.WallDepth)

	f := out.Floor
	orDefault(&f.Width, common.FloorSize)
	orDefault(&f.Depth, common.FloorSize)

	cam := out.Camera
	orDefault(&cam.FOV, common.DefaultFOV)
	orDefault(&cam.Near, common.DefaultNear)
	orDefault(&cam.Far, common.DefaultFar)

	g := out.Game
	if g.CoinCount == 0 {
		g.CoinCount = common.DefaultCoinCount
	}
	orDefault(&g.WallNudge, common.WallNudge)
	orDefault(&g.AmbientIntensity, common.AmbientIntensity)
	orDefault(&g.DirectionalLight, common.DirectionalIntensity)
	if g.StatusScript == "" {
		g.StatusScript = "status.tengo"
	}

	return out
}

// Defaults exposes the filled spec set.
func Defaults(specs *prefabs.Specs) prefabs.Specs {
	return withDefaults(specs)
}

func orDefault(v *float64, def float64) {
	if *v == 0 {
		*v = def
	}
}
