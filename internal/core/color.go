package core

// Color is an ANSI 256-colour code. ColorDefault leaves the terminal colour
// untouched.
type Color uint8

const ColorDefault Color = 0

// Palette entries used by the board renderer.
const (
	ColorBlack      Color = 16
	ColorGray       Color = 245
	ColorDarkGray   Color = 238
	ColorWhite      Color = 231
	ColorBrightGold Color = 220
	ColorOrange     Color = 208
	ColorRed        Color = 196
	ColorGreen      Color = 34
)

// Style is the foreground/background pair of a screen cell.
type Style struct {
	FG   Color
	BG   Color
	Bold bool
}

// Plain is the zero style.
var Plain = Style{}
