// Package pdf holds an ephemeral, ordered draw-command model for single-page
// printable documents, and an encoder that turns a Document into a PDF byte
// stream. Documents are built once, encoded once and never persisted.
package pdf

// Page size for ISO A4 in points.
const (
	PageWidthA4  = 595.28
	PageHeightA4 = 841.89
)

// Color is an RGB color with 0-255 components.
type Color struct {
	R, G, B int
}

// Font styles understood by the encoder.
const (
	StyleRegular = ""
	StyleBold    = "B"
	StyleItalic  = "I"
)

// Horizontal alignment of a text command within its wrap width.
const (
	AlignLeft   = "L"
	AlignCenter = "C"
	AlignRight  = "R"
)

// Command is a single draw instruction. Commands are applied in order; later
// commands paint over earlier ones.
type Command interface {
	isCommand()
}

// Text draws a text run with its top-left corner at (X, Y). When Width is
// non-zero the run wraps within that width and Align takes effect; otherwise
// the run is a single left-aligned line.
type Text struct {
	Value string
	X, Y  float64
	Style string
	Size  float64
	Color Color
	Width float64
	Align string
}

// Rect draws a filled and stroked rectangle. A non-zero Radius rounds all
// four corners.
type Rect struct {
	X, Y, W, H float64
	Radius     float64
	Fill       Color
	Stroke     Color
}

// Line draws a straight stroke from (X1, Y1) to (X2, Y2).
type Line struct {
	X1, Y1, X2, Y2 float64
	Color          Color
	Width          float64
}

func (Text) isCommand() {}
func (Rect) isCommand() {}
func (Line) isCommand() {}

// Document is an ordered list of draw commands on a single fixed-size page.
type Document struct {
	Width    float64
	Height   float64
	Commands []Command
}

// NewA4Document creates an empty A4 portrait document.
func NewA4Document() *Document {
	return &Document{Width: PageWidthA4, Height: PageHeightA4}
}

// Add appends commands to the document in draw order.
func (d *Document) Add(cmds ...Command) {
	d.Commands = append(d.Commands, cmds...)
}
