package thermo

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	tm, err := New([]float64{5, 4, 7}, 20)
	if err != nil {
		t.Fatal(err)
	}
	if tm.Limits.Min() != 0 || tm.Limits.Max() != 20 {
		t.Errorf("single limit: want [0, 20], got [%g, %g]", tm.Limits.Min(), tm.Limits.Max())
	}
	tm, err = New([]float64{5}, 5, 25)
	if err != nil {
		t.Fatal(err)
	}
	if tm.Limits.Min() != 5 || tm.Limits.Max() != 25 {
		t.Errorf("limit pair: want [5, 25], got [%g, %g]", tm.Limits.Min(), tm.Limits.Max())
	}
	if tm.GoalSide != OrientLeft {
		t.Errorf("goals should default to the left side")
	}
}

func TestNew_Invalid(t *testing.T) {
	data := []struct {
		Name   string
		Limits []float64
	}{
		{Name: "none"},
		{Name: "too many", Limits: []float64{1, 2, 3}},
		{Name: "equal", Limits: []float64{5, 5}},
		{Name: "decreasing", Limits: []float64{6, 5}},
		{Name: "zero max", Limits: []float64{0}},
	}
	for _, d := range data {
		t.Run(d.Name, func(t *testing.T) {
			_, err := New([]float64{1}, d.Limits...)
			if !errors.Is(err, ErrLimits) {
				t.Errorf("want ErrLimits, got %v", err)
			}
		})
	}
}

func TestNewLimits(t *testing.T) {
	if _, err := NewLimits(5, 5); !errors.Is(err, ErrLimits) {
		t.Errorf("equal limits: want ErrLimits, got %v", err)
	}
	if _, err := NewLimits(6, 5); !errors.Is(err, ErrLimits) {
		t.Errorf("decreasing limits: want ErrLimits, got %v", err)
	}
	rg, err := NewLimits(-10, 10)
	if err != nil {
		t.Fatal(err)
	}
	if rg.Len() != 20 {
		t.Errorf("want length 20, got %g", rg.Len())
	}
}

func TestValidate(t *testing.T) {
	tm := Thermometer{
		Data:   []float64{1, 2},
		Limits: NewRange(0, 10),
	}
	if err := tm.Validate(); err != nil {
		t.Fatal(err)
	}
	tm.Data = []float64{1, -2}
	if err := tm.Validate(); !errors.Is(err, ErrData) {
		t.Errorf("negative value: want ErrData, got %v", err)
	}
	tm.Data = []float64{1, 2}
	tm.Limits = Range{}
	if err := tm.Validate(); !errors.Is(err, ErrLimits) {
		t.Errorf("empty limits: want ErrLimits, got %v", err)
	}
}

func TestSetTitle(t *testing.T) {
	var tm Thermometer
	tm.SetTitle("fundraising")
	if tm.Title != "fundraising" {
		t.Errorf("want fundraising, got %s", tm.Title)
	}
}
