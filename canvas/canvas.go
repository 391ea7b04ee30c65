// Package canvas provides the drawing surfaces charts are rendered on.
package canvas

import (
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	charts "github.com/midbel/tapcharts"
)

const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

var ErrFormat = errors.New("unsupported format")

// Surface is a Canvas that can be written out once drawing is complete.
type Surface interface {
	charts.Canvas
	Render(io.Writer) error
}

// New creates a surface for the given format ("svg" or "png").
func New(format string, width, height float64) (Surface, error) {
	if !(width > 0) || !(height > 0) {
		return nil, errors.Wrapf(charts.ErrInvalidDimension, "%gx%g", width, height)
	}
	switch strings.ToLower(format) {
	case FormatSVG, "":
		return NewSVG(width, height), nil
	case FormatPNG:
		return NewRaster(int(math.Ceil(width)), int(math.Ceil(height))), nil
	default:
		return nil, errors.Wrapf(ErrFormat, "%s", format)
	}
}

// FormatOf guesses the output format from the extension of file.
func FormatOf(file string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(file)), ".")
	if ext == FormatPNG {
		return FormatPNG
	}
	return FormatSVG
}

func ContentType(format string) string {
	if format == FormatPNG {
		return "image/png"
	}
	return "image/svg+xml"
}
