// Package render draws the maze from the camera's point of view by casting
// one ray per screen column against the grid.
package render

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/mazerunner/common"
	"github.com/milk9111/mazerunner/control"
	"github.com/milk9111/mazerunner/ecs"
	"github.com/milk9111/mazerunner/ecs/component"
	"github.com/milk9111/mazerunner/maze"
)

const (
	columnWidth   = 2
	coinRingDots  = 24
	crosshairSize = 6
	// Z-facing faces catch less of the directional light than X-facing ones.
	sideXLight = 1.0
	sideZLight = 0.6
)

// Lighting scales surface colors. Each lit surface gets
// ambient + directional*facing, capped at 1.
type Lighting struct {
	Sky         color.RGBA
	Ambient     float64
	Directional float64
}

type RenderSystem struct {
	grid      *maze.Grid
	light     Lighting
	camEntity ecs.Entity
	zbuf      []float64
}

func NewRenderSystem(grid *maze.Grid, light Lighting) *RenderSystem {
	return &RenderSystem{grid: grid, light: light}
}

// SetLighting swaps the scene lighting, e.g. after a prefab reload.
func (r *RenderSystem) SetLighting(light Lighting) {
	r.light = light
}

type view struct {
	pos     common.Vec3
	forward [2]float64
	right   [2]float64
	focal   float64
	tanHalf float64
	horizon float64
	w, h    float64
	near    float64
	far     float64
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil || r.grid == nil {
		return
	}

	if !ecs.IsAlive(w, r.camEntity) {
		camEntity, ok := ecs.First(w, component.CameraComponent.Kind())
		if !ok {
			return
		}
		r.camEntity = camEntity
	}
	cam, ok := ecs.Get(w, r.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}
	t, ok := ecs.Get(w, r.camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}

	v := r.buildView(cam, t, screen)

	screen.Fill(r.light.Sky)
	r.drawFloor(w, screen, v)
	r.drawWalls(w, screen, v)
	r.drawCoins(w, screen, v)
	drawCrosshair(screen, v)
}

func (r *RenderSystem) buildView(cam *component.Camera, t *component.Transform, screen *ebiten.Image) view {
	b := screen.Bounds()
	p := cam.Project(b.Dx(), b.Dy())

	fwd := control.Forward(cam.Yaw)
	right := control.Right(cam.Yaw)
	return view{
		pos:     common.Vec3{X: t.X, Y: t.Y, Z: t.Z},
		forward: [2]float64{fwd.X, fwd.Y},
		right:   [2]float64{right.X, right.Y},
		focal:   p.Focal,
		tanHalf: p.TanHalfH,
		horizon: p.Height/2 + math.Tan(cam.Pitch)*p.Focal,
		w:       p.Width,
		h:       p.Height,
		near:    p.Near,
		far:     p.Far,
	}
}

func (r *RenderSystem) shade(c color.RGBA, facing float64) color.RGBA {
	k := common.Clamp(r.light.Ambient+r.light.Directional*facing, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: c.A,
	}
}

func meshColor(w *ecs.World, kind component.MeshKind, def color.RGBA) color.RGBA {
	out := def
	found := false
	ecs.ForEach(w, component.MeshComponent.Kind(), func(_ ecs.Entity, m *component.Mesh) {
		if !found && m.Kind == kind {
			out = m.Color
			found = true
		}
	})
	return out
}

func (r *RenderSystem) drawFloor(w *ecs.World, screen *ebiten.Image, v view) {
	top := common.Clamp(v.horizon, 0, v.h)
	if top >= v.h {
		return
	}
	c := r.shade(meshColor(w, component.MeshFloor, common.FloorColor), 1)
	vector.FillRect(screen, 0, float32(top), float32(v.w), float32(v.h-top), c, false)
}

func (r *RenderSystem) drawWalls(w *ecs.World, screen *ebiten.Image, v view) {
	cols := int(math.Ceil(v.w / columnWidth))
	if cap(r.zbuf) < cols {
		r.zbuf = make([]float64, cols)
	}
	r.zbuf = r.zbuf[:cols]

	base := meshColor(w, component.MeshWall, common.WallColor)
	litX := r.shade(base, sideXLight)
	litZ := r.shade(base, sideZLight)

	for i := 0; i < cols; i++ {
		r.zbuf[i] = math.Inf(1)

		camX := 2*(float64(i)+0.5)*columnWidth/v.w - 1
		dirX := v.forward[0] + v.right[0]*camX*v.tanHalf
		dirZ := v.forward[1] + v.right[1]*camX*v.tanHalf

		hit, ok := r.grid.CastRay(v.pos.X, v.pos.Z, dirX, dirZ, v.far)
		if !ok {
			continue
		}
		// Walls inside the near plane fill the column instead of vanishing.
		dist := math.Max(hit.Distance, v.near)
		r.zbuf[i] = dist

		scale := v.focal / dist
		top := v.horizon - (common.WallHeight-v.pos.Y)*scale
		bottom := v.horizon + v.pos.Y*scale
		top = common.Clamp(top, 0, v.h)
		bottom = common.Clamp(bottom, 0, v.h)
		if bottom <= top {
			continue
		}

		c := litX
		if hit.Side == maze.SideZ {
			c = litZ
		}
		vector.FillRect(screen, float32(i*columnWidth), float32(top), columnWidth, float32(bottom-top), c, false)
	}
}

type projectedCoin struct {
	depth   float64
	x, y    float64
	radius  float64
	tube    float64
	squeeze float64
	color   color.RGBA
}

func (r *RenderSystem) drawCoins(w *ecs.World, screen *ebiten.Image, v view) {
	var coins []projectedCoin
	ecs.ForEach3(w, component.CoinComponent.Kind(), component.TransformComponent.Kind(), component.MeshComponent.Kind(), func(_ ecs.Entity, c *component.Coin, t *component.Transform, m *component.Mesh) {
		if !m.Visible {
			return
		}
		dx, dz := t.X-v.pos.X, t.Z-v.pos.Z
		depth := dx*v.forward[0] + dz*v.forward[1]
		if depth <= v.near {
			return
		}
		lateral := dx*v.right[0] + dz*v.right[1]
		scale := v.focal / depth

		radius := c.Radius
		if radius <= 0 {
			radius = 0.2
		}
		coins = append(coins, projectedCoin{
			depth:   depth,
			x:       v.w/2 + lateral*scale,
			y:       v.horizon - (t.Y-v.pos.Y)*scale,
			radius:  radius * scale,
			tube:    math.Max(c.Tube*scale, 1),
			squeeze: math.Abs(math.Cos(t.RotationY)),
			color:   r.shade(m.Color, sideXLight),
		})
	})

	sort.Slice(coins, func(i, j int) bool { return coins[i].depth > coins[j].depth })

	for _, c := range coins {
		col := int(c.x / columnWidth)
		if col < 0 || col >= len(r.zbuf) || c.depth > r.zbuf[col] {
			continue
		}
		rx := math.Max(c.radius*c.squeeze, c.tube)
		for k := 0; k < coinRingDots; k++ {
			a := 2 * math.Pi * float64(k) / coinRingDots
			px := c.x + rx*math.Cos(a)
			py := c.y + c.radius*math.Sin(a)
			vector.FillCircle(screen, float32(px), float32(py), float32(c.tube), c.color, true)
		}
	}
}

func drawCrosshair(screen *ebiten.Image, v view) {
	cx, cy := float32(v.w/2), float32(v.h/2)
	c := color.RGBA{R: 255, G: 255, B: 255, A: 200}
	vector.StrokeLine(screen, cx-crosshairSize, cy, cx+crosshairSize, cy, 1, c, false)
	vector.StrokeLine(screen, cx, cy-crosshairSize, cx, cy+crosshairSize, 1, c, false)
}
