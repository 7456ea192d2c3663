package dodge

import "math"

// Vec3 is a point in corridor world space: X lateral, Y up, Z depth.
// Obstacles travel toward +Z; the camera looks down -Z.
type Vec3 struct {
	X, Y, Z float64
}

func (a Vec3) sub(b Vec3) Vec3 { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }

func (a Vec3) dot(b Vec3) float64 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

func (a Vec3) cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func (a Vec3) normalize() Vec3 {
	l := math.Sqrt(a.dot(a))
	if l == 0 {
		return a
	}
	return Vec3{a.X / l, a.Y / l, a.Z / l}
}

// Camera is a pinhole perspective camera with a vertical field of view.
type Camera struct {
	Eye    Vec3
	Target Vec3
	FOV    float64 // Vertical field of view in degrees
	Near   float64 // Points closer than this are not projected
}

// Viewport describes the drawing surface. CellAspect is the width of one
// drawing unit divided by its height: 1 for pixels, about 0.5 for terminal cells.
type Viewport struct {
	W, H       float64
	CellAspect float64
}

// CameraFor returns the chase camera for a player at lateral position x.
// The camera follows the player partway so the corridor edges stay visible.
func CameraFor(playerX float64) Camera {
	return Camera{
		Eye:    Vec3{X: playerX * 0.3, Y: 3, Z: 6},
		Target: Vec3{X: playerX * 0.5, Y: 0, Z: -25},
		FOV:    60,
		Near:   0.1,
	}
}

// basis returns the camera's right, up and forward unit vectors.
func (c Camera) basis() (right, up, forward Vec3) {
	forward = c.Target.sub(c.Eye).normalize()
	right = forward.cross(Vec3{Y: 1}).normalize()
	up = right.cross(forward)
	return right, up, forward
}

// Project maps a world point to viewport coordinates. The returned depth is
// the distance along the view direction and orders points for painting.
// ok is false for points behind the near plane.
func (c Camera) Project(p Vec3, vp Viewport) (x, y, depth float64, ok bool) {
	right, up, forward := c.basis()
	v := p.sub(c.Eye)

	depth = v.dot(forward)
	if depth < c.Near {
		return 0, 0, depth, false
	}

	aspect := 1.0
	if vp.H > 0 {
		aspect = vp.W * vp.CellAspect / vp.H
	}
	f := 1 / math.Tan(c.FOV*math.Pi/360)

	ndcX := v.dot(right) * f / (depth * aspect)
	ndcY := v.dot(up) * f / depth

	x = (ndcX + 1) / 2 * vp.W
	y = (1 - ndcY) / 2 * vp.H
	return x, y, depth, true
}
