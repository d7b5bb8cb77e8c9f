package thermo

import (
	"bufio"
	"io"

	"github.com/midbel/svg"
)

const defaultTicks = 5

type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

type Chart struct {
	Title  string
	Width  float64
	Height float64

	Padding

	Ticks    int
	HideAxis bool
	Marker   MarkerFunc
}

func (c Chart) DrawingWidth() float64 {
	return c.Width - c.Padding.Horizontal()
}

func (c Chart) DrawingHeight() float64 {
	return c.Height - c.Padding.Vertical()
}

// Render lays the thermometer out and writes the chart as a svg document.
// Every call rebuilds the full element tree from the current state.
func (c Chart) Render(w io.Writer, t *Thermometer) error {
	shapes, err := t.Layout()
	if err != nil {
		return err
	}
	x, y := c.scalers(t, shapes)

	el := svg.NewSVG()
	el.Dim = svg.NewDim(c.Width, c.Height)
	el.OmitProlog = true
	if !c.HideAxis {
		el.Append(c.drawAxis(t, y))
	}
	area := c.getArea()
	area.Append(renderShapes(shapes, x, y, c.Marker))
	el.Append(area.AsElement())
	if title := c.title(t); title != "" {
		el.Append(c.drawTitle(title))
	}

	bw := bufio.NewWriter(w)
	el.Render(bw)
	return bw.Flush()
}

func (c Chart) title(t *Thermometer) string {
	if c.Title != "" {
		return c.Title
	}
	return t.Title
}

func (c Chart) getArea() svg.Group {
	var g svg.Group
	g.Class = append(g.Class, "area")
	g.Transform = svg.Translate(c.Padding.Left, c.Padding.Top)
	return g
}

// scalers maps stem widths to pixels on x and chart values to pixels on y.
// The y domain runs top down so that the maximum sits at the top of the
// drawing area and the bulb bottom at its bottom.
func (c Chart) scalers(t *Thermometer, shapes []Shape) (Scaler, Scaler) {
	var (
		min  = t.Limits.Min()
		max  = t.Limits.Max()
		bulb = 2 * bulbRatio * (max - min)
		base = min - bulb*bulbStraddle
		x    Scaler
		y    Scaler
	)
	lo, hi := xbounds(shapes)
	x = NewScaler(NewDomain(lo-0.2, hi+0.2), NewRange(0, c.DrawingWidth()))
	y = NewScaler(NewDomain(max, base-bulb/2), NewRange(0, c.DrawingHeight()))
	return x, y
}

func xbounds(shapes []Shape) (float64, float64) {
	lo, hi := 0.0, 1.0
	grow := func(xs ...float64) {
		for _, x := range xs {
			if x < lo {
				lo = x
			}
			if x > hi {
				hi = x
			}
		}
	}
	for _, s := range shapes {
		switch s := s.(type) {
		case Quad:
			grow(s.X, s.X+s.Width)
		case Polyline:
			for _, pt := range s.Points {
				grow(pt.X)
			}
		case Marker:
			grow(s.X)
		case Anchor:
			grow(s.X)
		}
	}
	return lo, hi
}

func (c Chart) drawAxis(t *Thermometer, y Scaler) svg.Element {
	ticks := c.Ticks
	if ticks <= 0 {
		ticks = defaultTicks
	}
	axis := ValueAxis{
		Orientation:    OrientLeft,
		Scaler:         y,
		Domain:         NewDomain(t.Limits.Max(), t.Limits.Min()).Values(ticks),
		WithInnerTicks: true,
		WithLabelTicks: true,
		WithGridLines:  true,
	}
	var g svg.Group
	g.Id = "axis"
	g.Append(axis.Render(c.DrawingHeight(), c.DrawingWidth(), c.Padding.Left, c.Padding.Top))
	return g.AsElement()
}

func (c Chart) drawTitle(title string) svg.Element {
	txt := svg.NewText(title)
	txt.Pos = svg.NewPos(c.Width/2, c.Padding.Top/2)
	txt.Font = svg.NewFont(FontSize * 1.4)
	txt.Anchor = "middle"
	txt.Baseline = "middle"
	return txt.AsElement()
}
