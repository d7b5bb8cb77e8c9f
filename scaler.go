package thermo

type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

func (r Range) Max() float64 {
	return r.T
}

func (r Range) Min() float64 {
	return r.F
}

type Domain struct {
	fst float64
	lst float64
}

func NewDomain(f, t float64) Domain {
	return Domain{
		fst: f,
		lst: t,
	}
}

func (d Domain) Diff(v float64) float64 {
	return v - d.fst
}

func (d Domain) Extend() float64 {
	return d.lst - d.fst
}

func (d Domain) Values(c int) []float64 {
	var (
		all  = make([]float64, c)
		step = d.Extend() / float64(c)
	)
	for i := 0; i < c; i++ {
		all[i] = d.fst + float64(i)*step
	}
	all = append(all, d.lst)
	return all
}

type Scaler struct {
	Range
	Domain
}

func NewScaler(dom Domain, rg Range) Scaler {
	return Scaler{
		Range:  rg,
		Domain: dom,
	}
}

func (s Scaler) Scale(v float64) float64 {
	return s.Diff(v) * s.Space()
}

func (s Scaler) Space() float64 {
	return s.Len() / s.Extend()
}
