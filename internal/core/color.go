package core

// Color represents a foreground color for a screen cell.
// Mapped to ANSI 256-color codes by the platform renderer.
type Color uint8

// Predefined colors for game elements.
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
	ColorOrange
	ColorGray
)

// riderPalette assigns distinct colors to rider identities.
// Index 0 is the controlled rider; autonomous riders cycle through the rest.
var riderPalette = []Color{
	ColorBrightCyan,
	ColorBrightRed,
	ColorBrightYellow,
	ColorBrightGreen,
	ColorBrightMagenta,
	ColorOrange,
	ColorBrightBlue,
}

// RiderColor returns the display color for a rider identity (1-based).
func RiderColor(id int) Color {
	if id < 1 {
		return ColorDefault
	}
	return riderPalette[(id-1)%len(riderPalette)]
}
