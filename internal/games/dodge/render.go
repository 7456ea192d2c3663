package dodge

import (
	"fmt"
	"math"

	"github.com/vovakirdan/lane-dodger/internal/config"
	"github.com/vovakirdan/lane-dodger/internal/core"
)

// Visual characters for rendering
const (
	ObstacleChar = '█'
	FarChar      = '▓'
	PlayerChar   = '▲'
	SteerLeft    = '◀'
	SteerRight   = '▶'
	WallChar     = '│'
	LaneChar     = '·'
)

// cellAspect is the width of a terminal cell relative to its height.
const cellAspect = 0.5

// farThreshold is the camera distance beyond which obstacles are drawn dim.
const farThreshold = 25.0

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.sim == nil {
		return
	}

	snap := g.sim.Snapshot()
	if g.variant == config.VariantCorridor {
		renderCorridor(dst, g.cfg, snap)
	} else {
		renderTopDown(dst, g.cfg, snap)
	}

	drawHUD(dst, snap)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if snap.Over {
		drawCenteredMessage(dst, "CRASH!", fmt.Sprintf("Score: %d  |  Press R to restart", int(snap.Score)))
	}
}

// renderCorridor draws the perspective view below the HUD row.
func renderCorridor(dst *core.Screen, cfg config.DodgeConfig, snap Snapshot) {
	top := 1
	vp := Viewport{W: float64(dst.Width()), H: float64(dst.Height() - top), CellAspect: cellAspect}

	for _, seg := range CorridorLanes(cfg, snap, vp) {
		r, c := LaneChar, core.ColorGray
		if seg.Edge {
			r, c = WallChar, core.ColorCyan
		}
		drawSegment(dst, seg, 0, top, r, c)
	}

	for _, sp := range CorridorSprites(cfg, snap, vp) {
		switch sp.Shape {
		case ShapePlayer:
			fillSprite(dst, sp, 0, top, playerGlyph(snap), core.ColorBrightCyan)
		case ShapeObstacle:
			r, c := ObstacleChar, core.ColorBrightRed
			if sp.Depth > farThreshold {
				r, c = FarChar, core.ColorRed
			}
			fillSprite(dst, sp, 0, top, r, c)
		}
	}
}

// renderTopDown draws the field as a bordered box centered below the HUD row,
// keeping the world's proportions where the terminal allows.
func renderTopDown(dst *core.Screen, cfg config.DodgeConfig, snap Snapshot) {
	innerH := dst.Height() - 3
	if innerH < 1 {
		return
	}
	ratio := 2 * cfg.World.HalfWidth / FieldDepth(cfg)
	innerW := int(math.Round(float64(innerH) * ratio / cellAspect))
	innerW = core.Clamp(innerW, 1, core.Max(1, dst.Width()-2))

	box := core.NewRect((dst.Width()-innerW-2)/2, 1, innerW+2, innerH+2)
	dst.DrawBox(box, core.ColorNavy)

	ox, oy := box.X+1, box.Y+1
	vp := Viewport{W: float64(innerW), H: float64(innerH), CellAspect: cellAspect}

	for _, seg := range TopDownLanes(cfg, vp) {
		if seg.Edge {
			continue
		}
		x := ox + int(seg.X0)
		for y := 0; y < innerH; y += 2 {
			dst.SetColored(x, oy+y, LaneChar, core.ColorGray)
		}
	}

	clip := core.NewRect(ox, oy, innerW, innerH)
	for _, sp := range TopDownSprites(cfg, snap, vp) {
		r, c := ObstacleChar, core.ColorMagenta
		if sp.Shape == ShapePlayer {
			r, c = playerGlyph(snap), core.ColorBrightYellow
		}
		fillSpriteClipped(dst, sp, ox, oy, clip, r, c)
	}
}

// playerGlyph leans the player toward the held direction.
func playerGlyph(snap Snapshot) rune {
	switch {
	case snap.SteerLeft && !snap.SteerRight:
		return SteerLeft
	case snap.SteerRight && !snap.SteerLeft:
		return SteerRight
	}
	return PlayerChar
}

// cellSpan converts a continuous span to the cell indices it covers,
// always covering at least one cell.
func cellSpan(start, length float64) (int, int) {
	a := int(math.Floor(start))
	b := int(math.Ceil(start + length))
	if b <= a {
		b = a + 1
	}
	return a, b
}

func fillSprite(dst *core.Screen, sp Sprite, ox, oy int, r rune, c core.Color) {
	fillSpriteClipped(dst, sp, ox, oy, core.NewRect(ox, oy, dst.Width()-ox, dst.Height()-oy), r, c)
}

func fillSpriteClipped(dst *core.Screen, sp Sprite, ox, oy int, clip core.Rect, r rune, c core.Color) {
	x0, x1 := cellSpan(sp.X, sp.W)
	y0, y1 := cellSpan(sp.Y, sp.H)
	for y := y0 + oy; y < y1+oy; y++ {
		for x := x0 + ox; x < x1+ox; x++ {
			if clip.Contains(x, y) {
				dst.SetColored(x, y, r, c)
			}
		}
	}
}

// drawSegment plots a line by sampling one point per row or column.
func drawSegment(dst *core.Screen, seg Segment, ox, oy int, r rune, c core.Color) {
	dx, dy := seg.X1-seg.X0, seg.Y1-seg.Y0
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(math.Floor(seg.X0 + dx*t))
		y := int(math.Floor(seg.Y0 + dy*t))
		if y+oy < oy {
			continue
		}
		dst.SetColored(x+ox, y+oy, r, c)
	}
}

// drawHUD writes score and multiplier on the top row.
func drawHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", int(snap.Score)), core.ColorWhite)

	speed := fmt.Sprintf(" Speed: %.1fx ", snap.Multiplier)
	dst.DrawTextColored(dst.Width()-len(speed)-2, 0, speed, core.ColorYellow)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorWhite)

	dst.DrawTextColored(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorBrightRed)
	dst.DrawTextColored(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle, core.ColorDefault)
}
