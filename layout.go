package thermo

import (
	"strconv"
)

// Horizontal offsets, all expressed in stem widths. The stem itself runs
// from 0 to 1, the bulb is twice as wide and centered on it.
const (
	bulbRatio    = 1.0 / 20.0
	bulbStraddle = 0.1

	bracketInner = 0.5
	bracketOuter = 0.7
	bracketText  = 0.8

	goalTickLeft  = -0.4
	goalTextLeft  = -1.2
	goalTickRight = 1.7
	goalTextRight = 1.8
)

// DefaultPalette gives the cyclic fill colors of the area segments.
var DefaultPalette = Category10

// Layout converts the thermometer state into primitive shapes. It is a pure
// single pass: same state, same shapes, in the same order.
func (t *Thermometer) Layout() ([]Shape, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	var (
		min  = t.Limits.Min()
		max  = t.Limits.Max()
		bulb = 2 * bulbRatio * (max - min)
		base = min - bulb*bulbStraddle
		all  []Shape
	)
	all = append(all, t.bulbShape(bulb, base))
	all = append(all, t.areaShapes(base)...)
	all = append(all, t.outlineShape(base))
	all = append(all, t.goalShapes()...)
	return all, nil
}

func (t *Thermometer) bulbShape(bulb, base float64) Shape {
	fill := "none"
	if len(t.Data) > 0 {
		fill = DefaultPalette.Color(0)
	}
	return Quad{
		X:      0.5 - 1,
		Y:      base - bulb/2,
		Width:  2,
		Height: bulb,
		Fill:   fill,
		class:  ClassBulb,
	}
}

// outlineShape traces the stem rectangle from the bulb straddle point up to
// the maximum on both edges.
func (t *Thermometer) outlineShape(base float64) Shape {
	max := t.Limits.Max()
	return Polyline{
		Points: []Pos{
			NewPos(0, base),
			NewPos(0, max),
			NewPos(1, max),
			NewPos(1, base),
		},
		Closed: true,
		class:  ClassOutline,
	}
}

// areaShapes stacks the segments bottom to top. Bookkeeping runs in value
// space starting at the minimum; only the first drawn quad has its bottom
// lowered to the bulb straddle point so the fill covers the bulb outline.
// That expression repeats the one used to place the bulb, on purpose.
func (t *Thermometer) areaShapes(base float64) []Shape {
	var (
		min    = t.Limits.Min()
		max    = t.Limits.Max()
		bottom = min
		all    []Shape
	)
	for i, v := range t.Data {
		if bottom >= max {
			break
		}
		top := bottom + v
		if top > max {
			top = max
		}
		drawn := bottom
		if i == 0 {
			drawn = base
		}
		all = append(all, Quad{
			X:      0,
			Y:      drawn,
			Width:  1,
			Height: top - drawn,
			Fill:   DefaultPalette.Color(i),
			class:  ClassArea,
		})
		if len(t.Labels) > 0 {
			all = append(all, bracketShapes(bottom, bottom+v, max, t.Labels[i])...)
		}
		bottom = top
	}
	return all
}

// bracketShapes draws the right facing bracket of one segment together with
// its two line label. A segment entirely past the maximum gets nothing, one
// crossing it gets a clipped bracket without the top arm.
func bracketShapes(bottom, top, max float64, label string) []Shape {
	if bottom >= max {
		return nil
	}
	var (
		pts     []Pos
		clipped = top >= max
	)
	if clipped {
		top = max
	}
	pts = append(pts, NewPos(1+bracketInner, bottom))
	pts = append(pts, NewPos(1+bracketOuter, bottom))
	pts = append(pts, NewPos(1+bracketOuter, top))
	if !clipped {
		pts = append(pts, NewPos(1+bracketInner, top))
	}
	if label == "" {
		label = " "
	}
	return []Shape{
		Polyline{
			Points: pts,
			class:  ClassBracket,
		},
		Anchor{
			Pos:   NewPos(1+bracketText, (bottom+top)/2),
			Lines: []string{formatValue(top - bottom), label},
			Align: "start",
			class: ClassBracket,
		},
	}
}

// goalShapes keeps only the goals inside the limits, in their original
// order; their labels stay paired with them through the filtering.
func (t *Thermometer) goalShapes() []Shape {
	var (
		min = t.Limits.Min()
		max = t.Limits.Max()
		all []Shape
	)
	for i, g := range t.Goals {
		if g < min || g > max {
			continue
		}
		all = append(all, t.goalTick(g))
		all = append(all, Polyline{
			Points: []Pos{NewPos(0, g), NewPos(1, g)},
			Dotted: true,
			class:  ClassGoal,
		})
		all = append(all, Marker{
			Pos:   NewPos(0.5, g),
			class: ClassGoal,
		})
		if len(t.GoalLabels) > 0 {
			all = append(all, t.goalText(g, t.GoalLabels[i]))
		}
	}
	return all
}

func (t *Thermometer) goalTick(g float64) Shape {
	pts := []Pos{NewPos(0, g), NewPos(goalTickLeft, g)}
	if t.side() == OrientRight {
		pts = []Pos{NewPos(1, g), NewPos(goalTickRight, g)}
	}
	return Polyline{
		Points: pts,
		class:  ClassGoal,
	}
}

func (t *Thermometer) goalText(g float64, label string) Shape {
	var (
		pos   = NewPos(goalTextLeft, g)
		align = "end"
	)
	if t.side() == OrientRight {
		pos = NewPos(goalTextRight, g)
		align = "start"
	}
	return Anchor{
		Pos:   pos,
		Lines: []string{label},
		Align: align,
		class: ClassGoal,
	}
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
