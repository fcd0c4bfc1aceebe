package core

// Color is the foreground color of a screen cell.
// The zero value leaves the terminal's own color in place.
type Color uint8

// Colors of the jumper scene: actor, obstacles, platforms and ground.
const (
	ColorDefault Color = iota
	ColorRed
	ColorBlue
	ColorBrown
	ColorGray
)

// ansi256 holds the 256-color palette index for each color.
var ansi256 = [...]string{
	ColorRed:   "1",
	ColorBlue:  "4",
	ColorBrown: "130",
	ColorGray:  "245",
}

// ANSI returns the 256-color palette index as a string, or "" for
// ColorDefault and unknown values.
func (c Color) ANSI() string {
	if int(c) >= len(ansi256) {
		return ""
	}
	return ansi256[c]
}
