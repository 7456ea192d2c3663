package dodge

import (
	"sort"

	"github.com/vovakirdan/lane-dodger/internal/config"
)

// Shape identifies what a sprite depicts.
type Shape int

const (
	ShapeObstacle Shape = iota
	ShapePlayer
)

// Sprite is an axis-aligned rectangle in viewport coordinates, ready to draw.
type Sprite struct {
	Shape      Shape
	X, Y, W, H float64 // Top-left corner and size
	Depth      float64 // Distance from the viewer, larger is farther
	Lane       int
}

// Segment is a straight line in viewport coordinates.
type Segment struct {
	X0, Y0, X1, Y1 float64
	Edge           bool // Outer corridor wall rather than a lane divider
}

// Visual proportions of the drawn player relative to its hitbox.
const (
	playerDrawWidth  = 0.75
	playerDrawHeight = 0.6
	corridorNearZ    = 4.0
)

// CorridorSprites projects the player and obstacles through the chase camera
// and returns them far to near, the order a painter draws them in.
// Obstacles are drawn by their front face.
func CorridorSprites(cfg config.DodgeConfig, snap Snapshot, vp Viewport) []Sprite {
	cam := CameraFor(snap.PlayerX)
	sprites := make([]Sprite, 0, len(snap.Obstacles)+1)

	face := func(shape Shape, lane int, cx, halfW, height, z float64) {
		x0, y0, d0, ok0 := cam.Project(Vec3{X: cx - halfW, Y: height, Z: z}, vp)
		x1, y1, _, ok1 := cam.Project(Vec3{X: cx + halfW, Y: 0, Z: z}, vp)
		if !ok0 || !ok1 {
			return
		}
		sprites = append(sprites, Sprite{
			Shape: shape,
			X:     x0,
			Y:     y0,
			W:     x1 - x0,
			H:     y1 - y0,
			Depth: d0,
			Lane:  lane,
		})
	}

	size := cfg.Obstacles.Size
	for _, o := range snap.Obstacles {
		face(ShapeObstacle, o.Lane, o.X, size/2, size, o.Depth+size/2)
	}
	face(ShapePlayer, -1, snap.PlayerX, cfg.Player.HalfWidth*playerDrawWidth,
		cfg.Player.HalfWidth*playerDrawHeight*2, cfg.Player.Depth)

	sort.SliceStable(sprites, func(i, j int) bool {
		return sprites[i].Depth > sprites[j].Depth
	})
	return sprites
}

// CorridorLanes returns the projected lane dividers and walls on the floor.
func CorridorLanes(cfg config.DodgeConfig, snap Snapshot, vp Viewport) []Segment {
	cam := CameraFor(snap.PlayerX)
	lanes := cfg.World.LaneCount
	width := cfg.LaneWidth()

	segs := make([]Segment, 0, lanes+1)
	for b := 0; b <= lanes; b++ {
		x := -cfg.World.HalfWidth + float64(b)*width
		x0, y0, _, ok0 := cam.Project(Vec3{X: x, Z: cfg.Obstacles.SpawnDepth}, vp)
		x1, y1, _, ok1 := cam.Project(Vec3{X: x, Z: corridorNearZ}, vp)
		if !ok0 || !ok1 {
			continue
		}
		segs = append(segs, Segment{
			X0: x0, Y0: y0, X1: x1, Y1: y1,
			Edge: b == 0 || b == lanes,
		})
	}
	return segs
}

// FieldDepth returns the visible depth range of the top-down field: obstacles
// are removed once they have fully left its bottom edge.
func FieldDepth(cfg config.DodgeConfig) float64 {
	return cfg.Obstacles.RemovalDepth - cfg.Obstacles.Size
}

// TopDownSprites maps the world onto a W x H viewport: lateral range
// [-HalfWidth, HalfWidth] spans the width and depth [0, FieldDepth] spans the
// height. Sprites may extend past the viewport while entering or leaving.
func TopDownSprites(cfg config.DodgeConfig, snap Snapshot, vp Viewport) []Sprite {
	sx := vp.W / (2 * cfg.World.HalfWidth)
	sz := vp.H / FieldDepth(cfg)

	rect := func(shape Shape, lane int, cx, cz, hw, hd float64) Sprite {
		return Sprite{
			Shape: shape,
			X:     (cx - hw + cfg.World.HalfWidth) * sx,
			Y:     (cz - hd) * sz,
			W:     2 * hw * sx,
			H:     2 * hd * sz,
			Depth: -cz,
			Lane:  lane,
		}
	}

	sprites := make([]Sprite, 0, len(snap.Obstacles)+1)
	half := cfg.Obstacles.Size / 2
	for _, o := range snap.Obstacles {
		sprites = append(sprites, rect(ShapeObstacle, o.Lane, o.X, o.Depth, half, half))
	}
	sprites = append(sprites, rect(ShapePlayer, -1, snap.PlayerX, cfg.Player.Depth,
		cfg.Player.HalfWidth, cfg.Player.HalfDepth))
	return sprites
}

// TopDownLanes returns the lane dividers of the top-down field.
func TopDownLanes(cfg config.DodgeConfig, vp Viewport) []Segment {
	lanes := cfg.World.LaneCount
	segs := make([]Segment, 0, lanes+1)
	for b := 0; b <= lanes; b++ {
		x := float64(b) / float64(lanes) * vp.W
		segs = append(segs, Segment{
			X0: x, Y0: 0, X1: x, Y1: vp.H,
			Edge: b == 0 || b == lanes,
		})
	}
	return segs
}
