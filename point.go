package charts

import (
	"math"
)

// Number is the set of value types a line chart accepts.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Point is a position in canvas space: origin top-left, y growing downward.
type Point struct {
	X float64
	Y float64
}

func NewPoint(x, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}

func (p Point) Add(other Point) Point {
	p.X += other.X
	p.Y += other.Y
	return p
}

func (p Point) Sub(other Point) Point {
	p.X -= other.X
	p.Y -= other.Y
	return p
}

func (p Point) Distance(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// Rect is the bounding box used when drawing arcs around the origin.
type Rect struct {
	Min Point
	Max Point
}

// Bounds returns the box spanning [-radius, radius] on both axes.
func Bounds(radius float64) Rect {
	return Rect{
		Min: NewPoint(-radius, -radius),
		Max: NewPoint(radius, radius),
	}
}

func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

func (r Rect) Center() Point {
	return NewPoint(r.Min.X+r.Width()/2, r.Min.Y+r.Height()/2)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
