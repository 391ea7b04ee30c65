package charts

type Domain interface {
	Diff(float64) float64
	Extend() float64
}

type numberDomain struct {
	fst float64
	lst float64
}

// NumberDomain creates a continuous domain going from f to t. A reversed
// domain (f > t) flips the direction of the scale it is used with.
func NumberDomain(f, t float64) Domain {
	return numberDomain{
		fst: f,
		lst: t,
	}
}

func (n numberDomain) Diff(v float64) float64 {
	return v - n.fst
}

func (n numberDomain) Extend() float64 {
	return n.lst - n.fst
}

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

type Scaler interface {
	Scale(float64) float64
	Space() float64
}

type numberScaler struct {
	Range
	Domain
}

func NumberScaler(dom Domain, rg Range) Scaler {
	return numberScaler{
		Range:  rg,
		Domain: dom,
	}
}

func (n numberScaler) Scale(v float64) float64 {
	return n.F + n.Diff(v)*n.Space()
}

func (n numberScaler) Space() float64 {
	ext := n.Extend()
	if ext == 0 {
		return 0
	}
	return n.Len() / ext
}

type indexScaler struct {
	Range
	count int
}

// IndexScaler spreads count positions evenly over rg, keeping half an
// interval free at both ends.
func IndexScaler(count int, rg Range) Scaler {
	return indexScaler{
		Range: rg,
		count: count,
	}
}

func (s indexScaler) Scale(i float64) float64 {
	return s.F + (i+1)*s.Space()
}

func (s indexScaler) Space() float64 {
	return s.Len() / float64(s.count+1)
}
