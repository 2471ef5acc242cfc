package maze

import "math"

// Side identifies which face of a cell a ray struck.
type Side uint8

const (
	SideX Side = iota // face perpendicular to the X axis
	SideZ
)

type RayHit struct {
	Cell     Point
	Side     Side
	Distance float64 // along the ray direction, scaled by its length
}

// CastRay walks the grid from a world-space origin along (dirX, dirZ) and
// returns the first wall face hit within maxDist.
func (g *Grid) CastRay(originX, originZ, dirX, dirZ, maxDist float64) (RayHit, bool) {
	if dirX == 0 && dirZ == 0 {
		return RayHit{}, false
	}

	// Grid space: cell (x,z) covers [x, x+1) on both axes.
	px := originX + float64(g.cols)/2 + 0.5
	pz := originZ + float64(g.rows)/2 + 0.5

	cx := int(math.Floor(px))
	cz := int(math.Floor(pz))

	deltaX := math.Inf(1)
	if dirX != 0 {
		deltaX = math.Abs(1 / dirX)
	}
	deltaZ := math.Inf(1)
	if dirZ != 0 {
		deltaZ = math.Abs(1 / dirZ)
	}

	var stepX, stepZ int
	var sideX, sideZ float64
	if dirX < 0 {
		stepX = -1
		sideX = (px - float64(cx)) * deltaX
	} else {
		stepX = 1
		sideX = (float64(cx) + 1 - px) * deltaX
	}
	if dirZ < 0 {
		stepZ = -1
		sideZ = (pz - float64(cz)) * deltaZ
	} else {
		stepZ = 1
		sideZ = (float64(cz) + 1 - pz) * deltaZ
	}

	dist := 0.0
	side := SideX
	for dist <= maxDist {
		if sideX < sideZ {
			dist = sideX
			sideX += deltaX
			cx += stepX
			side = SideX
		} else {
			dist = sideZ
			sideZ += deltaZ
			cz += stepZ
			side = SideZ
		}
		if !g.InBounds(cx, cz) {
			return RayHit{}, false
		}
		if g.IsWall(cx, cz) {
			if dist > maxDist {
				return RayHit{}, false
			}
			return RayHit{Cell: Point{X: cx, Z: cz}, Side: side, Distance: dist}, true
		}
	}
	return RayHit{}, false
}
