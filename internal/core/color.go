package core

// Color is a cell foreground color: either a hex code ("#ff6600") or an
// ANSI 256 palette index ("208"). The empty string is the terminal default.
type Color string

// Common palette colors.
const (
	ColorDefault Color = ""
	ColorRed     Color = "1"
	ColorGreen   Color = "2"
	ColorYellow  Color = "3"
	ColorBlue    Color = "4"
	ColorMagenta Color = "5"
	ColorCyan    Color = "6"
	ColorWhite   Color = "7"
	ColorOrange  Color = "208"
	ColorGray    Color = "245"
	ColorDim     Color = "238"
)
