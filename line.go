package charts

import (
	"github.com/pkg/errors"
)

// BuildLine maps values to canvas points. Points are evenly spaced on the
// x axis with half an interval of margin at both edges, and the largest value
// touches the top of the canvas. When every value is zero, all points sit on
// the bottom edge.
func BuildLine[T Number](values []T, width, height float64) ([]Point, error) {
	if !(width > 0) || !(height > 0) {
		return nil, errors.Wrapf(ErrInvalidDimension, "%gx%g", width, height)
	}
	if len(values) == 0 {
		return []Point{}, nil
	}
	maxValue, err := maxOf(values)
	if err != nil {
		return nil, err
	}
	var (
		xscale = IndexScaler(len(values), NewRange(0, width))
		yscale = NumberScaler(NumberDomain(maxValue, 0), NewRange(0, height))
		points = make([]Point, len(values))
	)
	for i, v := range values {
		points[i].X = xscale.Scale(float64(i))
		if maxValue == 0 {
			points[i].Y = height
			continue
		}
		points[i].Y = yscale.Scale(float64(v))
	}
	return points, nil
}

func maxOf[T Number](values []T) (float64, error) {
	var res float64
	for i, v := range values {
		f := float64(v)
		if !isFinite(f) || f < 0 {
			return 0, errors.Wrapf(ErrInvalidValue, "value at %d: %v", i, v)
		}
		if i == 0 || f > res {
			res = f
		}
	}
	return res, nil
}
