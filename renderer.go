package thermo

import (
	"github.com/midbel/svg"
)

var DefaultSize float64 = 4

// MarkerFunc draws the point symbol of a goal line.
type MarkerFunc func(svg.Pos) svg.Element

func GetDiamond(pos svg.Pos) svg.Element {
	half := DefaultSize / 2
	pos.X -= half
	pos.Y -= half

	var el svg.Rect
	el.Pos = pos
	el.Dim = svg.NewDim(DefaultSize, DefaultSize)
	el.Fill = svg.NewFill("black")
	el.Transform.RA = 45
	el.Transform.RX = pos.X + half
	el.Transform.RY = pos.Y + half

	return el.AsElement()
}

func GetCircle(pos svg.Pos) svg.Element {
	var el svg.Circle
	el.Pos = pos
	el.Fill = svg.NewFill("black")
	el.Radius = DefaultSize / 2
	return el.AsElement()
}

// renderShapes maps layout shapes onto svg elements through the two
// scalers. The whole element tree is rebuilt on every call, nothing from a
// previous render survives.
func renderShapes(all []Shape, x, y Scaler, marker MarkerFunc) svg.Element {
	if marker == nil {
		marker = GetDiamond
	}
	grp := getBaseGroup("", "thermometer")
	for _, s := range all {
		el := renderShape(s, x, y, marker)
		if el != nil {
			grp.Append(el)
		}
	}
	return grp.AsElement()
}

func renderShape(s Shape, x, y Scaler, marker MarkerFunc) svg.Element {
	switch s := s.(type) {
	case Quad:
		return renderQuad(s, x, y)
	case Polyline:
		return renderPolyline(s, x, y)
	case Marker:
		grp := getBaseGroup("", s.Class())
		grp.Append(marker(svg.NewPos(x.Scale(s.X), y.Scale(s.Y))))
		return grp.AsElement()
	case Anchor:
		return renderAnchor(s, x, y)
	}
	return nil
}

func renderQuad(q Quad, x, y Scaler) svg.Element {
	var (
		pos = svg.NewPos(x.Scale(q.X), y.Scale(q.Top()))
		dim = svg.NewDim(x.Scale(q.X+q.Width)-x.Scale(q.X), y.Scale(q.Y)-y.Scale(q.Top()))
		grp = getBaseGroup("", q.Class())
	)
	var el svg.Rect
	el.Pos = pos
	el.Dim = dim
	el.Fill = svg.NewFill(q.Fill)
	grp.Append(el.AsElement())
	return grp.AsElement()
}

func renderPolyline(p Polyline, x, y Scaler) svg.Element {
	var (
		grp = getBaseGroup("", p.Class())
		pat = getBasePath()
	)
	if p.Dotted {
		pat.Stroke.DashArray = []int{4}
	}
	for i, pt := range p.Points {
		pos := svg.NewPos(x.Scale(pt.X), y.Scale(pt.Y))
		if i == 0 {
			pat.AbsMoveTo(pos)
		} else {
			pat.AbsLineTo(pos)
		}
	}
	if p.Closed {
		pat.ClosePath()
	}
	grp.Append(pat.AsElement())
	return grp.AsElement()
}

func renderAnchor(a Anchor, x, y Scaler) svg.Element {
	grp := getBaseGroup("", a.Class())
	for i, line := range a.Lines {
		txt := svg.NewText(line)
		txt.Pos = svg.NewPos(x.Scale(a.X), y.Scale(a.Y)+float64(i)*FontSize*1.2)
		txt.Font = svg.NewFont(FontSize)
		txt.Anchor = a.Align
		txt.Baseline = "middle"
		grp.Append(txt.AsElement())
	}
	return grp.AsElement()
}

func getBasePath() svg.Path {
	var pat svg.Path
	pat.Rendering = "geometricPrecision"
	pat.Stroke = svg.NewStroke("black", 1)
	pat.Fill = svg.NewFill("none")
	return pat
}

func getBaseGroup(color string, class ...string) svg.Group {
	var g svg.Group
	if color != "" {
		g.Fill = svg.NewFill(color)
		g.Stroke = svg.NewStroke(color, 1)
	}
	g.Class = class
	return g
}
