// Package canvas provides the retained-mode command model for 2D plan views.
//
// A RecordingCanvas exposes the same drawing surface a live rasterizer would,
// but appends typed commands to a CommandBuffer instead of touching pixels.
// The buffer can then be replayed by independent consumers (raster display,
// hit-testing, PDF export) without re-deriving the scene.
//
// Commands are typed structs behind a closed Command interface so that
// renderers and exporters can switch exhaustively over the fixed primitive
// set.
package canvas

// CommandKind identifies the type of a recorded command.
type CommandKind uint8

const (
	// State commands
	KindSave CommandKind = iota
	KindRestore
	KindSetTransform

	// Drawing commands
	KindLine
	KindPolyline
	KindPolygon
	KindRect
	KindCircle
	KindText

	// Symbol commands
	KindBeginSymbol
	KindEndSymbol
	KindSymbolInstance
)

var kindNames = [...]string{
	KindSave:           "Save",
	KindRestore:        "Restore",
	KindSetTransform:   "SetTransform",
	KindLine:           "Line",
	KindPolyline:       "Polyline",
	KindPolygon:        "Polygon",
	KindRect:           "Rect",
	KindCircle:         "Circle",
	KindText:           "Text",
	KindBeginSymbol:    "BeginSymbol",
	KindEndSymbol:      "EndSymbol",
	KindSymbolInstance: "SymbolInstance",
}

func (k CommandKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Command is implemented by every recorded operation.
type Command interface {
	Kind() CommandKind
}

// Point is a position in world units.
type Point struct {
	X, Y float64
}

// Color is a normalized RGBA color; all channels are in [0, 1].
type Color struct {
	R, G, B, A float64
}

// Stroke carries the outline style of a primitive. Width is in world units
// during recording and in output points after mapping.
type Stroke struct {
	Color Color
	Width float64
}

// TextAnchor selects how label text attaches to its position.
type TextAnchor uint8

const (
	AnchorStart TextAnchor = iota
	AnchorMiddle
	AnchorEnd
)

// TextStyle carries label styling. Size is in world units during recording.
type TextStyle struct {
	Color  Color
	Size   float64
	Anchor TextAnchor
}

// Save pushes the current canvas transform.
type Save struct{}

func (Save) Kind() CommandKind { return KindSave }

// Restore pops the canvas transform pushed by the matching Save.
type Restore struct{}

func (Restore) Kind() CommandKind { return KindRestore }

// SetTransform replaces the active canvas transform outright. Producers
// always supply an absolute transform; composition with the previous value
// happens at record time, not replay time.
type SetTransform struct {
	T Transform2D
}

func (SetTransform) Kind() CommandKind { return KindSetTransform }

// Line is a single stroked segment.
type Line struct {
	X0, Y0, X1, Y1 float64
	Stroke         Stroke
}

func (Line) Kind() CommandKind { return KindLine }

// Polyline is an open stroked point chain.
type Polyline struct {
	Points []Point
	Stroke Stroke
}

func (Polyline) Kind() CommandKind { return KindPolyline }

// Polygon is a closed point chain, stroked and optionally filled.
type Polygon struct {
	Points []Point
	Stroke Stroke
	Fill   *Color
}

func (Polygon) Kind() CommandKind { return KindPolygon }

// Rect is an axis-aligned rectangle in its local space. Under a rotating
// transform it is replayed as a four-corner polygon.
type Rect struct {
	X, Y, W, H float64
	Stroke     Stroke
	Fill       *Color
}

func (Rect) Kind() CommandKind { return KindRect }

// Circle is a circle; the radius scales by the uniform scale factor of the
// active transforms.
type Circle struct {
	CX, CY, R float64
	Stroke    Stroke
	Fill      *Color
}

func (Circle) Kind() CommandKind { return KindCircle }

// Text is a label at a world position.
type Text struct {
	X, Y  float64
	S     string
	Style TextStyle
}

func (Text) Kind() CommandKind { return KindText }

// BeginSymbol marks the start of a symbol definition. Records between
// BeginSymbol and EndSymbol are captured into the symbol's local buffer, not
// the frame buffer; the markers themselves remain in the frame buffer for
// inspection and are ignored on replay.
type BeginSymbol struct {
	ID int
}

func (BeginSymbol) Kind() CommandKind { return KindBeginSymbol }

// EndSymbol closes the current symbol definition.
type EndSymbol struct{}

func (EndSymbol) Kind() CommandKind { return KindEndSymbol }

// SymbolInstance places a previously defined symbol with a local placement
// transform.
type SymbolInstance struct {
	ID int
	T  Transform2D
}

func (SymbolInstance) Kind() CommandKind { return KindSymbolInstance }
