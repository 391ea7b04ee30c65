package canvas

import (
	"image"
	"io"

	"github.com/gogpu/gg"
	"github.com/pkg/errors"

	charts "github.com/midbel/tapcharts"
)

// Raster draws on a gg context and encodes the result as PNG.
type Raster struct {
	dc *gg.Context
}

func NewRaster(width, height int) *Raster {
	dc := gg.NewContext(width, height)
	dc.ClearWithColor(gg.White)
	return &Raster{
		dc: dc,
	}
}

func (r *Raster) Line(from, to charts.Point, stroke charts.Stroke) error {
	rgba, err := stroke.Color.RGBA()
	if err != nil {
		return err
	}
	r.dc.SetColor(rgba)
	r.dc.SetLineWidth(stroke.Width)
	r.dc.SetLineCap(gg.LineCapRound)
	r.dc.DrawLine(from.X, from.Y, to.X, to.Y)
	return errors.Wrap(r.dc.Stroke(), "stroke line")
}

func (r *Raster) Sector(center charts.Point, radius, start, sweep float64, fill charts.ColorTag) error {
	if sweep <= 0 || radius <= 0 {
		return nil
	}
	rgba, err := fill.RGBA()
	if err != nil {
		return err
	}
	if sweep > fullcircle {
		sweep = fullcircle
	}
	var (
		beg = start * deg2rad
		end = (start + sweep) * deg2rad
		pos = getPosFromAngle(center, start, radius)
	)
	r.dc.SetColor(rgba)
	r.dc.MoveTo(center.X, center.Y)
	r.dc.LineTo(pos.X, pos.Y)
	r.dc.DrawArc(center.X, center.Y, radius, beg, end)
	r.dc.ClosePath()
	return errors.Wrap(r.dc.Fill(), "fill sector")
}

func (r *Raster) Image() image.Image {
	return r.dc.Image()
}

func (r *Raster) Render(w io.Writer) error {
	return r.dc.EncodePNG(w)
}

func (r *Raster) Close() error {
	return r.dc.Close()
}
