package component

import (
	"math"

	"github.com/milk9111/mazerunner/common"
)

// Camera is a perspective camera. FOV is vertical, in degrees.
type Camera struct {
	FOV       float64
	Aspect    float64
	Near      float64
	Far       float64
	ViewportW int
	ViewportH int
	Yaw       float64
	Pitch     float64
}

// Projection maps camera space onto a viewport for one frame.
type Projection struct {
	Width, Height float64
	Aspect        float64
	// Focal is the pixel size of one world unit at depth 1.
	Focal float64
	// TanHalfH is tan of half the horizontal field of view.
	TanHalfH float64
	Near     float64
	Far      float64
}

// Project resolves the camera's projection. An unset viewport or aspect
// falls back to the screen size, and unset clip planes or FOV to the
// package defaults.
func (c *Camera) Project(screenW, screenH int) Projection {
	w, h := c.ViewportW, c.ViewportH
	if w <= 0 || h <= 0 {
		w, h = screenW, screenH
	}
	if w <= 0 || h <= 0 {
		w, h = common.BaseWidth, common.BaseHeight
	}
	p := Projection{
		Width:  float64(w),
		Height: float64(h),
		Aspect: c.Aspect,
		Near:   c.Near,
		Far:    c.Far,
	}
	if p.Aspect <= 0 {
		p.Aspect = p.Width / p.Height
	}
	if p.Near <= 0 {
		p.Near = common.DefaultNear
	}
	if p.Far <= p.Near {
		p.Far = common.DefaultFar
	}

	fov := c.FOV
	if fov <= 0 {
		fov = common.DefaultFOV
	}
	tanHalfV := math.Tan(common.Deg2Rad(fov) / 2)
	p.Focal = (p.Height / 2) / tanHalfV
	p.TanHalfH = tanHalfV * p.Aspect
	return p
}

var CameraComponent = NewComponent[Camera]()
