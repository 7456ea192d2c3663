package window

import (
	"image/color"

	"github.com/vovakirdan/lane-dodger/internal/config"
	"github.com/vovakirdan/lane-dodger/internal/games/dodge"
)

// Palette
var (
	colorBackground = color.RGBA{0x10, 0x12, 0x1c, 0xff}
	colorField      = color.RGBA{0x16, 0x1d, 0x33, 0xff}
	colorWall       = color.RGBA{0x3c, 0xc8, 0xdc, 0xff}
	colorDivider    = color.RGBA{0x4a, 0x4f, 0x63, 0xff}
	colorPlayer     = color.RGBA{0x5c, 0xe6, 0x7a, 0xff}
	colorObstacle   = color.RGBA{0xe8, 0x4a, 0x4a, 0xff}
	colorFar        = color.RGBA{0x7a, 0x2c, 0x34, 0xff}
	colorOverlay    = color.RGBA{0x00, 0x00, 0x00, 0xa0}
)

// farDepth is the camera distance at which corridor obstacles reach colorFar.
const farDepth = 45.0

// rect is a drawing area in screen pixels.
type rect struct {
	X, Y, W, H float64
}

// frame is everything one Draw call paints, already in screen pixels.
type frame struct {
	Field   rect
	Lanes   []dodge.Segment
	Sprites []dodge.Sprite
	Paused  bool
	Over    bool
	Score   int
	Speed   float64
	Elapsed float64
	Variant string
}

// hudHeight reserves room for ebitenutil's debug font.
const hudHeight = 32.0

// planFrame lays out a snapshot on a w x h pixel screen.
func planFrame(variant string, cfg config.DodgeConfig, snap dodge.Snapshot, w, h int) frame {
	f := frame{
		Over:    snap.Over,
		Score:   int(snap.Score),
		Speed:   snap.Multiplier,
		Elapsed: snap.Elapsed,
		Variant: variant,
	}

	avail := rect{Y: hudHeight, W: float64(w), H: max(0, float64(h)-hudHeight)}

	if variant == config.VariantCorridor {
		f.Field = avail
		vp := dodge.Viewport{W: avail.W, H: avail.H, CellAspect: 1}
		f.Lanes = dodge.CorridorLanes(cfg, snap, vp)
		f.Sprites = dodge.CorridorSprites(cfg, snap, vp)
	} else {
		f.Field = fitField(avail, 2*cfg.World.HalfWidth/dodge.FieldDepth(cfg))
		vp := dodge.Viewport{W: f.Field.W, H: f.Field.H, CellAspect: 1}
		f.Lanes = dodge.TopDownLanes(cfg, vp)
		f.Sprites = dodge.TopDownSprites(cfg, snap, vp)
	}

	for i := range f.Lanes {
		f.Lanes[i].X0 += f.Field.X
		f.Lanes[i].X1 += f.Field.X
		f.Lanes[i].Y0 += f.Field.Y
		f.Lanes[i].Y1 += f.Field.Y
	}
	for i := range f.Sprites {
		f.Sprites[i].X += f.Field.X
		f.Sprites[i].Y += f.Field.Y
	}
	return f
}

// fitField returns the largest rect with the given width/height ratio
// centered in avail.
func fitField(avail rect, aspect float64) rect {
	if aspect <= 0 || avail.W <= 0 || avail.H <= 0 {
		return avail
	}
	w, h := avail.W, avail.W/aspect
	if h > avail.H {
		h = avail.H
		w = h * aspect
	}
	return rect{
		X: avail.X + (avail.W-w)/2,
		Y: avail.Y + (avail.H-h)/2,
		W: w,
		H: h,
	}
}

// spriteColor picks a fill for a sprite. Corridor obstacles fade toward
// colorFar with distance.
func spriteColor(variant string, s dodge.Sprite) color.RGBA {
	if s.Shape == dodge.ShapePlayer {
		return colorPlayer
	}
	if variant != config.VariantCorridor {
		return colorObstacle
	}
	t := min(1, max(0, s.Depth/farDepth))
	return lerpColor(colorObstacle, colorFar, t)
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}

// clip intersects a sprite with the field so sprites entering or leaving
// do not paint over the HUD.
func clip(s dodge.Sprite, field rect) (rect, bool) {
	x0, y0 := max(s.X, field.X), max(s.Y, field.Y)
	x1, y1 := min(s.X+s.W, field.X+field.W), min(s.Y+s.H, field.Y+field.H)
	if x1 <= x0 || y1 <= y0 {
		return rect{}, false
	}
	return rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}, true
}
