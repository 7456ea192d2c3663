package core

// Color is the foreground color of a screen cell.
// Frontends map it to ANSI 256-color codes or RGBA.
type Color uint8

// Palette used by the renderers.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightMagenta
	ColorBrightCyan
	ColorGray
	ColorNavy
)
