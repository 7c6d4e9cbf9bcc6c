package core

import (
	"math"
	"unicode/utf8"
)

// Align controls horizontal text placement relative to the anchor x.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// TextStyle carries the parameters of a text primitive.
type TextStyle struct {
	Size  int // Font size in world units
	Color Color
	Align Align
}

// Surface is a fixed-size 2D drawing target addressed in world units.
// The renderer only ever talks to this interface.
type Surface interface {
	// Size returns the logical width and height of the surface.
	Size() (w, h float64)
	// FillRect fills an axis-aligned rectangle.
	FillRect(x, y, w, h float64, c Color)
	// FillCircle fills a circle centred on (cx, cy).
	FillCircle(cx, cy, r float64, c Color)
	// DrawText draws text whose baseline sits at y.
	DrawText(x, y float64, text string, style TextStyle)
}

// FillRune is the glyph CellSurface uses for filled shapes.
const FillRune = '█'

// CellSurface rasterizes world-space primitives onto a character Screen.
// World coordinates are scaled independently on each axis so the whole
// logical surface always fits the screen.
type CellSurface struct {
	screen *Screen
	worldW float64
	worldH float64
}

// NewCellSurface creates a surface of worldW x worldH logical units backed by
// the given screen.
func NewCellSurface(screen *Screen, worldW, worldH float64) *CellSurface {
	return &CellSurface{screen: screen, worldW: worldW, worldH: worldH}
}

// Size returns the logical surface size.
func (c *CellSurface) Size() (float64, float64) {
	return c.worldW, c.worldH
}

// cx and cy map world coordinates to fractional cell coordinates. Multiplying
// before dividing keeps whole-number inputs exact.
func (c *CellSurface) cx(x float64) float64 {
	return x * float64(c.screen.Width()) / c.worldW
}

func (c *CellSurface) cy(y float64) float64 {
	return y * float64(c.screen.Height()) / c.worldH
}

// FillRect marks every cell the rectangle touches.
func (c *CellSurface) FillRect(x, y, w, h float64, col Color) {
	if w <= 0 || h <= 0 {
		return
	}
	x0 := int(math.Floor(c.cx(x)))
	y0 := int(math.Floor(c.cy(y)))
	x1 := int(math.Ceil(c.cx(x + w)))
	y1 := int(math.Ceil(c.cy(y + h)))
	ch := FillRune
	if col == ColorBackground {
		ch = ' '
	}
	c.screen.DrawRect(NewRect(x0, y0, x1-x0, y1-y0), ch, col)
}

// FillCircle marks cells whose centres fall inside the (scaled) circle. A
// circle smaller than one cell still marks the cell under its centre.
func (c *CellSurface) FillCircle(cx, cy, r float64, col Color) {
	if r <= 0 {
		return
	}
	sx := float64(c.screen.Width()) / c.worldW
	sy := float64(c.screen.Height()) / c.worldH
	x0 := int(math.Floor(c.cx(cx - r)))
	x1 := int(math.Ceil(c.cx(cx + r)))
	y0 := int(math.Floor(c.cy(cy - r)))
	y1 := int(math.Ceil(c.cy(cy + r)))
	hit := false
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dx := (float64(x)+0.5)/sx - cx
			dy := (float64(y)+0.5)/sy - cy
			if dx*dx+dy*dy <= r*r {
				c.screen.SetColored(x, y, FillRune, col)
				hit = true
			}
		}
	}
	if !hit {
		c.screen.SetColored(int(c.cx(cx)), int(c.cy(cy)), FillRune, col)
	}
}

// DrawText writes text on the row containing the baseline. Cells have a
// single glyph size, so style.Size is ignored here.
func (c *CellSurface) DrawText(x, y float64, text string, style TextStyle) {
	row := int(math.Floor(c.cy(y))) - 1
	if row < 0 {
		row = 0
	}
	col := int(math.Floor(c.cx(x)))
	n := utf8.RuneCountInString(text)
	switch style.Align {
	case AlignCenter:
		col -= n / 2
	case AlignRight:
		col -= n
	}
	c.screen.DrawText(col, row, text, style.Color)
}

// PrimitiveKind identifies a recorded drawing call.
type PrimitiveKind int

const (
	PrimRect PrimitiveKind = iota
	PrimCircle
	PrimText
)

// Primitive is one recorded drawing call.
type Primitive struct {
	Kind       PrimitiveKind
	X, Y, W, H float64 // W doubles as the radius for circles
	Color      Color
	Text       string
	Style      TextStyle
}

// Recorder is a Surface that captures primitives instead of drawing them.
type Recorder struct {
	W, H  float64
	Prims []Primitive
}

// NewRecorder creates a recorder of the given logical size.
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{W: w, H: h}
}

// Size returns the logical surface size.
func (r *Recorder) Size() (float64, float64) {
	return r.W, r.H
}

// FillRect records a rectangle.
func (r *Recorder) FillRect(x, y, w, h float64, c Color) {
	r.Prims = append(r.Prims, Primitive{Kind: PrimRect, X: x, Y: y, W: w, H: h, Color: c})
}

// FillCircle records a circle.
func (r *Recorder) FillCircle(cx, cy, rad float64, c Color) {
	r.Prims = append(r.Prims, Primitive{Kind: PrimCircle, X: cx, Y: cy, W: rad, H: rad, Color: c})
}

// DrawText records a text draw.
func (r *Recorder) DrawText(x, y float64, text string, style TextStyle) {
	r.Prims = append(r.Prims, Primitive{Kind: PrimText, X: x, Y: y, Text: text, Style: style, Color: style.Color})
}

// Texts returns the recorded strings in draw order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, p := range r.Prims {
		if p.Kind == PrimText {
			out = append(out, p.Text)
		}
	}
	return out
}

// Reset drops all recorded primitives.
func (r *Recorder) Reset() {
	r.Prims = r.Prims[:0]
}
