package charts

import (
	"github.com/midbel/slices"
	"github.com/pkg/errors"
)

// Canvas is the drawing surface charts are rendered on. Angles given to
// Sector are in degrees, clockwise from the 3 o'clock position.
type Canvas interface {
	Line(from, to Point, stroke Stroke) error
	Sector(center Point, radius, start, sweep float64, fill ColorTag) error
}

type Stroke struct {
	Color ColorTag
	Width float64
}

var DefaultStroke = Stroke{
	Color: "mediumpurple",
	Width: 8,
}

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

type LineChart struct {
	Width  float64
	Height float64

	Padding
	Stroke Stroke
}

func (c LineChart) DrawingWidth() float64 {
	return c.Width - c.Padding.Horizontal()
}

func (c LineChart) DrawingHeight() float64 {
	return c.Height - c.Padding.Vertical()
}

// Draw connects each pair of consecutive points with a segment. A single
// value produces no segment.
func (c LineChart) Draw(cv Canvas, values []float64) ([]Point, error) {
	points, err := BuildLine(values, c.DrawingWidth(), c.DrawingHeight())
	if err != nil {
		return nil, err
	}
	if len(points) < 2 {
		return points, nil
	}
	var (
		offset = NewPoint(c.Padding.Left, c.Padding.Top)
		stroke = c.Stroke
		prev   = slices.Fst(points).Add(offset)
	)
	if stroke.Color == "" {
		stroke = DefaultStroke
	}
	for _, pt := range slices.Rest(points) {
		pt = pt.Add(offset)
		if err := cv.Line(prev, pt, stroke); err != nil {
			return nil, err
		}
		prev = pt
	}
	return points, nil
}

type PieChart struct {
	Radius  float64
	Animate bool
}

// Center is where the pie is drawn: the canvas origin moved by the radius on
// both axes.
func (c PieChart) Center() Point {
	return NewPoint(c.Radius, c.Radius)
}

// Draw builds the sectors of slices and fills them on cv. When the chart is
// animated, sweeps are scaled by progress at draw time only: the returned
// geometry is always the complete one.
func (c PieChart) Draw(cv Canvas, slices []Slice, progress float64) ([]PieSlice, error) {
	if !(c.Radius > 0) {
		return nil, errors.Wrapf(ErrInvalidDimension, "radius %g", c.Radius)
	}
	list, err := BuildPie(slices)
	if err != nil {
		return nil, err
	}
	draw := list
	if c.Animate {
		draw = Scale(list, progress)
	}
	for _, s := range draw {
		if err := cv.Sector(c.Center(), c.Radius, s.Start, s.Sweep, s.Color); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// Select resolves a tap at (x, y) and passes the index of the touched slice
// to fn. ErrNoSliceMatched is returned, and fn is not called, when the tap
// does not fall on any slice.
func (c PieChart) Select(slices []Slice, x, y float64, fn func(int)) (int, error) {
	list, err := BuildPie(slices)
	if err != nil {
		return -1, err
	}
	i, ok := HitTest(list, x, y, c.Radius)
	if !ok {
		return -1, errors.Wrapf(ErrNoSliceMatched, "tap at (%g, %g)", x, y)
	}
	if fn != nil {
		fn(i)
	}
	return i, nil
}
