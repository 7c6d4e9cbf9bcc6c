package core

// Color is a logical palette entry. Hosts map it to whatever their output
// supports (ANSI 256 colors in the terminal host).
type Color uint8

// Palette used by the renderer.
const (
	ColorDefault Color = iota
	ColorInk           // Player, obstacles, ground
	ColorCloud         // Background decorations
	ColorEye           // Eye highlight
	ColorText          // HUD and messages
	ColorAccent        // New best score highlight
	ColorBackground    // Sky fill
)

// String returns the palette name.
func (c Color) String() string {
	switch c {
	case ColorInk:
		return "ink"
	case ColorCloud:
		return "cloud"
	case ColorEye:
		return "eye"
	case ColorText:
		return "text"
	case ColorAccent:
		return "accent"
	case ColorBackground:
		return "background"
	default:
		return "default"
	}
}
