package thermo

// Shape classes, also used as class attributes on the generated groups.
const (
	ClassBulb    = "bulb"
	ClassArea    = "area"
	ClassOutline = "outline"
	ClassBracket = "bracket"
	ClassGoal    = "goal"
)

type Pos struct {
	X float64
	Y float64
}

func NewPos(x, y float64) Pos {
	return Pos{
		X: x,
		Y: y,
	}
}

// Shape is one primitive produced by the layout pass. Coordinates are given
// in stem widths on x (the stem spans [0, 1]) and in chart values on y, with
// y growing upwards. Scaling to pixels happens when rendering.
type Shape interface {
	Class() string
}

// Quad is an axis aligned filled rectangle: the bulb and the area segments.
type Quad struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Fill   string

	class string
}

func (q Quad) Class() string {
	return q.class
}

func (q Quad) Top() float64 {
	return q.Y + q.Height
}

// Polyline is an open or closed sequence of straight lines: the stem
// outline, the label brackets, the goal ticks and the dotted goal lines.
type Polyline struct {
	Points []Pos
	Closed bool
	Dotted bool

	class string
}

func (p Polyline) Class() string {
	return p.class
}

// Marker is a single point symbol, drawn as a diamond.
type Marker struct {
	Pos

	class string
}

func (m Marker) Class() string {
	return m.class
}

// Anchor is a text attachment point. Lines are stacked downwards from the
// anchor, Align takes the svg text-anchor values.
type Anchor struct {
	Pos
	Lines []string
	Align string

	class string
}

func (a Anchor) Class() string {
	return a.class
}
