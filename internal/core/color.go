package core

// Color is the foreground color of a screen cell. The viewer maps each value
// to an ANSI 256-color code.
type Color uint8

// Base colors.
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
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Roles the world renderer paints with.
const (
	ColorWall       = ColorGray
	ColorBarricade  = ColorYellow
	ColorPlayer     = ColorBrightCyan
	ColorEnemy      = ColorRed
	ColorStalker    = ColorMagenta
	ColorBurning    = ColorOrange
	ColorNest       = ColorBrightRed
	ColorNestDead   = ColorGray
	ColorPuddle     = ColorBrightMagenta
	ColorAcid       = ColorBrightGreen
	ColorProjectile = ColorBrightYellow
	ColorPickup     = ColorGreen
	ColorHUD        = ColorBrightWhite
	ColorWarning    = ColorBrightRed
)
