package core

// Color is the foreground color of a screen cell. The zero value leaves
// the terminal's own color alone.
type Color uint8

const (
	ColorDefault Color = iota
	ColorYellow
	ColorGray
	ColorBrightCyan
	ColorBrightMagenta
	ColorBrightWhite
)

// Court roles.
const (
	ColorLeftPaddle  = ColorBrightCyan
	ColorRightPaddle = ColorBrightMagenta
	ColorBall        = ColorBrightWhite
	ColorCourt       = ColorGray
	ColorStatus      = ColorYellow
)
