package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/midbel/thermo"
	"github.com/midbel/thermo/decode"
)

const (
	defaultWidth  = 400
	defaultHeight = 600
)

var defaultPad = thermo.Padding{
	Top:    60,
	Right:  80,
	Bottom: 40,
	Left:   80,
}

func main() {
	var (
		title    = flag.String("title", "", "chart title")
		data     = flag.String("data", "", "comma separated area values")
		labels   = flag.String("labels", "", "comma separated area labels")
		goals    = flag.String("goals", "", "comma separated goal values")
		glabels  = flag.String("goal-labels", "", "comma separated goal labels")
		location = flag.String("goal-location", "left", "side of the goal labels")
		min      = flag.Float64("min", 0, "lower limit")
		max      = flag.Float64("max", 0, "upper limit")
		width    = flag.Float64("width", defaultWidth, "chart width")
		height   = flag.Float64("height", defaultHeight, "chart height")
		result   = flag.String("file", "", "output file")
	)
	flag.Parse()

	if flag.NArg() > 0 {
		if err := renderConfigs(flag.Args()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		return
	}

	tm, err := makeThermometer(*data, *labels, *goals, *glabels, *location, *min, *max)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	ch := thermo.Chart{
		Title:   *title,
		Width:   *width,
		Height:  *height,
		Padding: defaultPad,
	}
	if err := renderChart(*result, ch, tm); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

// renderConfigs decodes every config file given on the command line and
// renders each chart to its configured output, all files in parallel.
func renderConfigs(files []string) error {
	var grp errgroup.Group
	for _, f := range files {
		file := f
		grp.Go(func() error {
			r, err := os.Open(file)
			if err != nil {
				return err
			}
			defer r.Close()
			cfg, err := decode.NewDecoder(r).Decode()
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			return cfg.Render()
		})
	}
	return grp.Wait()
}

func makeThermometer(data, labels, goals, glabels, location string, min, max float64) (*thermo.Thermometer, error) {
	values, err := splitFloats(data)
	if err != nil {
		return nil, err
	}
	tm, err := thermo.New(values, min, max)
	if err != nil {
		return nil, err
	}
	tm.Labels = splitStrings(labels)
	tm.Goals, err = splitFloats(goals)
	if err != nil {
		return nil, err
	}
	tm.GoalLabels = splitStrings(glabels)
	switch location {
	case "", "left":
		tm.GoalSide = thermo.OrientLeft
	case "right":
		tm.GoalSide = thermo.OrientRight
	default:
		return nil, fmt.Errorf("%s: goal location not supported", location)
	}
	return tm, tm.Validate()
}

func renderChart(file string, ch thermo.Chart, tm *thermo.Thermometer) error {
	w := os.Stdout
	if file != "" {
		f, err := os.Create(file)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return ch.Render(w, tm)
}

func splitFloats(str string) ([]float64, error) {
	if str == "" {
		return nil, nil
	}
	var all []float64
	for _, s := range strings.Split(str, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, err
		}
		all = append(all, v)
	}
	return all, nil
}

func splitStrings(str string) []string {
	if str == "" {
		return nil
	}
	all := strings.Split(str, ",")
	for i := range all {
		all[i] = strings.TrimSpace(all[i])
	}
	return all
}
