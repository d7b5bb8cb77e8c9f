package decode

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/midbel/slices"
	"github.com/midbel/thermo"
)

var (
	DefaultWidth  = 400.0
	DefaultHeight = 600.0
	DefaultPath   = "out.svg"
)

var defaultPad = thermo.Padding{
	Top:    60,
	Right:  80,
	Bottom: 40,
	Left:   80,
}

type Config struct {
	Title      string
	Path       string
	Width      float64
	Height     float64
	Pad        thermo.Padding
	Areas      []float64
	Labels     []string
	Goals      []float64
	GoalLabels []string
	Limits     []float64
	Location   string
}

func Default() Config {
	return Config{
		Path:   DefaultPath,
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Pad:    defaultPad,
	}
}

// Build assembles the chart and the thermometer described by the config and
// validates them.
func (c Config) Build() (thermo.Chart, *thermo.Thermometer, error) {
	tm, err := thermo.New(c.Areas, c.Limits...)
	if err != nil {
		return thermo.Chart{}, nil, err
	}
	tm.Labels = c.Labels
	tm.Goals = c.Goals
	tm.GoalLabels = c.GoalLabels
	tm.Title = c.Title
	switch c.Location {
	case "", "left":
		tm.GoalSide = thermo.OrientLeft
	case "right":
		tm.GoalSide = thermo.OrientRight
	default:
		return thermo.Chart{}, nil, fmt.Errorf("%w: %s", thermo.ErrSide, c.Location)
	}
	if err := tm.Validate(); err != nil {
		return thermo.Chart{}, nil, err
	}
	ch := thermo.Chart{
		Title:   c.Title,
		Width:   c.Width,
		Height:  c.Height,
		Padding: c.Pad,
	}
	return ch, tm, nil
}

// Render writes the configured chart to its output path.
func (c Config) Render() error {
	ch, tm, err := c.Build()
	if err != nil {
		return err
	}
	w, err := os.Create(c.Path)
	if err != nil {
		return err
	}
	defer w.Close()
	return ch.Render(w, tm)
}

type Decoder struct {
	file string
	path string

	scan *Scanner
	curr Token
	peek Token
}

func NewDecoder(r io.Reader) *Decoder {
	d := Decoder{
		scan: Scan(r),
	}
	if n, ok := r.(interface{ Name() string }); ok {
		d.file = n.Name()
		d.path = filepath.Dir(d.file)
	}
	d.next()
	d.next()
	return &d
}

func (d *Decoder) Decode() (*Config, error) {
	cfg := Default()
	for !d.done() {
		if d.is(EOL) {
			d.next()
			continue
		}
		if !d.is(Keyword) {
			return nil, d.decodeError(fmt.Sprintf("expected keyword, got %s", d.curr))
		}
		var err error
		switch d.curr.Literal {
		case kwSet:
			err = d.decodeSet(&cfg)
		case kwLoad:
			err = d.decodeLoad(&cfg)
		case kwRender:
			err = d.decodeRender(&cfg)
		default:
			err = d.decodeError(fmt.Sprintf("keyword %s not expected here", d.curr.Literal))
		}
		if err != nil {
			return nil, err
		}
		if err := d.expectEOL(); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

func (d *Decoder) decodeSet(cfg *Config) error {
	d.next()
	option, err := d.getString()
	if err != nil {
		return err
	}
	switch option {
	case "title":
		cfg.Title, err = d.getString()
	case "limits":
		cfg.Limits, err = d.getFloatList()
	case "size":
		list, err1 := d.getFloatList()
		if err1 != nil {
			return err1
		}
		if len(list) != 2 {
			return d.decodeError("size wants width,height")
		}
		cfg.Width = slices.Fst(list)
		cfg.Height = slices.Lst(list)
	case "padding":
		list, err1 := d.getFloatList()
		if err1 != nil {
			return err1
		}
		if len(list) != 4 {
			return d.decodeError("padding wants top,right,bottom,left")
		}
		cfg.Pad.Top = list[0]
		cfg.Pad.Right = list[1]
		cfg.Pad.Bottom = list[2]
		cfg.Pad.Left = list[3]
	case "areas":
		cfg.Areas, err = d.getFloatList()
	case "area-labels":
		cfg.Labels, err = d.getStringList()
	case "goals":
		cfg.Goals, err = d.getFloatList()
	case "goal-labels":
		cfg.GoalLabels, err = d.getStringList()
	case "goal-location":
		cfg.Location, err = d.getString()
	default:
		return OptionError{
			Option:   option,
			File:     d.file,
			Position: d.curr.Position,
		}
	}
	return err
}

func (d *Decoder) decodeLoad(cfg *Config) error {
	d.next()
	path, err := d.getString()
	if err != nil {
		return err
	}
	var col int
	if d.is(Keyword) && d.curr.Literal == kwUsing {
		d.next()
		col, err = d.getInt()
		if err != nil {
			return err
		}
	}
	values, err := loadFile(d.resolve(path), col)
	if err != nil {
		return err
	}
	cfg.Areas = append(cfg.Areas, values...)
	return nil
}

func (d *Decoder) decodeRender(cfg *Config) error {
	d.next()
	if d.is(Keyword) && d.curr.Literal == kwTo {
		d.next()
		path, err := d.getString()
		if err != nil {
			return err
		}
		cfg.Path = path
	}
	return nil
}

func (d *Decoder) resolve(path string) string {
	if filepath.IsAbs(path) || d.path == "" {
		return path
	}
	return filepath.Join(d.path, path)
}

func loadFile(path string, col int) ([]float64, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var (
		rs  = csv.NewReader(r)
		all []float64
	)
	rs.TrimLeadingSpace = true
	for {
		row, err := rs.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if col < 0 || col >= len(row) {
			return nil, fmt.Errorf("%s: no column %d in row of %d", path, col, len(row))
		}
		v, err := strconv.ParseFloat(row[col], 64)
		if err != nil {
			return nil, err
		}
		all = append(all, v)
	}
	return all, nil
}

func (d *Decoder) getString() (string, error) {
	if !d.is(Literal) {
		return "", d.decodeError(fmt.Sprintf("expected literal, got %s", d.curr))
	}
	str := d.curr.Literal
	d.next()
	return str, nil
}

func (d *Decoder) getFloat() (float64, error) {
	str, err := d.getString()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, d.decodeError(fmt.Sprintf("%s can not be parsed as number", str))
	}
	return v, nil
}

func (d *Decoder) getInt() (int, error) {
	v, err := d.getFloat()
	return int(v), err
}

func (d *Decoder) getFloatList() ([]float64, error) {
	var all []float64
	for {
		v, err := d.getFloat()
		if err != nil {
			return nil, err
		}
		all = append(all, v)
		if !d.is(Comma) {
			break
		}
		d.next()
	}
	return all, nil
}

func (d *Decoder) getStringList() ([]string, error) {
	var all []string
	for {
		str, err := d.getString()
		if err != nil {
			return nil, err
		}
		all = append(all, str)
		if !d.is(Comma) {
			break
		}
		d.next()
	}
	return all, nil
}

func (d *Decoder) expectEOL() error {
	switch d.curr.Type {
	case EOL:
		d.next()
	case EOF:
	default:
		return d.decodeError(fmt.Sprintf("expected end of line, got %s", d.curr))
	}
	return nil
}

func (d *Decoder) next() {
	d.curr = d.peek
	d.peek = d.scan.Scan()
	for d.peek.Type == Comment {
		d.peek = d.scan.Scan()
	}
}

func (d *Decoder) is(kind rune) bool {
	return d.curr.Type == kind
}

func (d *Decoder) done() bool {
	return d.is(EOF)
}

func (d *Decoder) decodeError(msg string) error {
	return DecodeError{
		Message:  msg,
		File:     d.file,
		Position: d.curr.Position,
	}
}
