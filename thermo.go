package thermo

import (
	"errors"
	"fmt"
)

var (
	ErrLimits = errors.New("invalid limits")
	ErrLabels = errors.New("labels mismatch")
	ErrData   = errors.New("invalid data")
	ErrSide   = errors.New("invalid goal location")
)

// Thermometer holds everything needed to draw one thermometer chart. All
// fields are reconsumed from scratch on every render, nothing is cached.
type Thermometer struct {
	Data       []float64
	Labels     []string
	Goals      []float64
	GoalLabels []string
	Limits     Range
	GoalSide   Orientation
	Title      string
}

// New creates a thermometer from its area values and its limits, given
// either as a single maximum (minimum defaults to 0) or as a min,max pair.
func New(data []float64, limits ...float64) (*Thermometer, error) {
	var (
		rg  Range
		err error
	)
	switch len(limits) {
	case 1:
		rg, err = NewLimits(0, limits[0])
	case 2:
		rg, err = NewLimits(limits[0], limits[1])
	default:
		return nil, fmt.Errorf("%w: want max or min,max, got %d value(s)", ErrLimits, len(limits))
	}
	if err != nil {
		return nil, err
	}
	t := Thermometer{
		Data:     data,
		Limits:   rg,
		GoalSide: OrientLeft,
	}
	return &t, nil
}

// NewLimits validates the min < max invariant at the assignment boundary.
func NewLimits(min, max float64) (Range, error) {
	if max <= min {
		return Range{}, fmt.Errorf("%w: max (%g) should be greater than min (%g)", ErrLimits, max, min)
	}
	return NewRange(min, max), nil
}

func (t *Thermometer) SetTitle(str string) {
	t.Title = str
}

// Validate reports the first input error. It runs before any shape is
// produced so a broken chart never gets half drawn.
func (t *Thermometer) Validate() error {
	if t.Limits.Max() <= t.Limits.Min() {
		return fmt.Errorf("%w: max (%g) should be greater than min (%g)", ErrLimits, t.Limits.Max(), t.Limits.Min())
	}
	for i, v := range t.Data {
		if v < 0 {
			return fmt.Errorf("%w: negative value %g at index %d", ErrData, v, i)
		}
	}
	if n := len(t.Labels); n > 0 && n != len(t.Data) {
		return fmt.Errorf("%w: %d label(s) for %d area(s)", ErrLabels, n, len(t.Data))
	}
	if n := len(t.GoalLabels); n > 0 && n != len(t.Goals) {
		return fmt.Errorf("%w: %d label(s) for %d goal(s)", ErrLabels, n, len(t.Goals))
	}
	switch t.GoalSide {
	case 0, OrientLeft, OrientRight:
	default:
		return fmt.Errorf("%w: goals can only be drawn left or right", ErrSide)
	}
	return nil
}

func (t *Thermometer) side() Orientation {
	if t.GoalSide == 0 {
		return OrientLeft
	}
	return t.GoalSide
}
