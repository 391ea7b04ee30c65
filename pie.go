package charts

import (
	"math"

	"github.com/pkg/errors"
)

const (
	fullcircle = 360.0
	halfcircle = 180.0
	deg2rad    = math.Pi / halfcircle
	rad2deg    = halfcircle / math.Pi
)

// Slice is one entry of a pie chart as given by the caller.
type Slice struct {
	Value float64
	Color ColorTag
}

// PieSlice is the sector computed for a Slice. Angles are in degrees,
// clockwise from the 3 o'clock position.
type PieSlice struct {
	Value float64
	Color ColorTag
	Start float64
	Sweep float64
}

func (p PieSlice) End() float64 {
	return p.Start + p.Sweep
}

// Midpoint gives the angle halfway through the sector.
func Midpoint(p PieSlice) float64 {
	return p.Start + p.Sweep/2
}

// BuildPie computes the sectors of slices in insertion order. The start
// angle of a sector is the sum of the sweeps before it.
func BuildPie(slices []Slice) ([]PieSlice, error) {
	var total float64
	for i, s := range slices {
		if !isFinite(s.Value) || s.Value < 0 {
			return nil, errors.Wrapf(ErrInvalidValue, "slice at %d: %v", i, s.Value)
		}
		total += s.Value
	}
	if total <= 0 {
		return nil, errors.Wrapf(ErrDegenerateDataset, "sum of %d slice(s) is zero", len(slices))
	}
	var (
		list  = make([]PieSlice, len(slices))
		angle float64
	)
	for i, s := range slices {
		sweep := (s.Value / total) * fullcircle
		list[i] = PieSlice{
			Value: s.Value,
			Color: s.Color,
			Start: angle,
			Sweep: sweep,
		}
		angle += sweep
	}
	return list, nil
}

// Scale returns a copy of slices with every sweep multiplied by progress,
// clamped to [0, 1]. Start angles are left untouched so that each sector
// grows from its own origin.
func Scale(slices []PieSlice, progress float64) []PieSlice {
	progress = clamp(progress)
	list := make([]PieSlice, len(slices))
	for i, s := range slices {
		s.Sweep *= progress
		list[i] = s
	}
	return list
}

// TouchAngle converts a position in canvas space into an angle in [0, 360)
// around the centre of a pie of the given radius drawn at (radius, radius).
func TouchAngle(x, y, radius float64) float64 {
	var (
		cx    = x - radius
		cy    = y - radius
		angle = math.Atan2(cy, cx) * rad2deg
	)
	if angle < 0 {
		angle += fullcircle
	}
	if angle >= fullcircle {
		angle = 0
	}
	return angle
}

// PointAt is the inverse of TouchAngle: the canvas position found at angle
// and distance from the centre of a pie of the given radius.
func PointAt(angle, distance, radius float64) Point {
	pos := getPosFromAngle(angle*deg2rad, distance)
	return pos.Add(NewPoint(radius, radius))
}

// HitTest returns the index of the sector under (x, y). The boolean is
// false when no sector matches: empty input, only zero sweeps, or an angle
// past the last cumulative sweep. Sectors with a zero sweep are never
// selected.
func HitTest(slices []PieSlice, x, y, radius float64) (int, bool) {
	if !isFinite(x) || !isFinite(y) || !isFinite(radius) {
		return -1, false
	}
	var total float64
	for _, s := range slices {
		total += s.Sweep
	}
	if !(total > 0) {
		return -1, false
	}
	var (
		angle = TouchAngle(x, y, radius)
		cumul float64
	)
	for i, s := range slices {
		cumul += s.Sweep
		if s.Sweep <= 0 {
			continue
		}
		if angle <= cumul {
			return i, true
		}
	}
	return -1, false
}

func getPosFromAngle(angle, radius float64) Point {
	var (
		x1 = radius * math.Cos(angle)
		y1 = radius * math.Sin(angle)
	)
	return NewPoint(x1, y1)
}

func clamp(f float64) float64 {
	switch {
	case math.IsNaN(f) || f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}
