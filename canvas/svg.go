package canvas

import (
	"bufio"
	"io"
	"math"

	"github.com/midbel/svg"
	charts "github.com/midbel/tapcharts"
)

const (
	fullcircle = 360.0
	halfcircle = 180.0
	deg2rad    = math.Pi / halfcircle
)

// SVG records draw calls as svg elements. Nothing is written until Render.
type SVG struct {
	Width  float64
	Height float64

	lines   svg.Group
	sectors svg.Group
}

func NewSVG(width, height float64) *SVG {
	return &SVG{
		Width:   width,
		Height:  height,
		lines:   getBaseGroup("line"),
		sectors: getBaseGroup("pie"),
	}
}

func (s *SVG) Line(from, to charts.Point, stroke charts.Stroke) error {
	li := svg.NewLine(getPos(from), getPos(to))
	li.Stroke = svg.NewStroke(stroke.Color.String(), stroke.Width)
	s.lines.Append(li.AsElement())
	return nil
}

func (s *SVG) Sector(center charts.Point, radius, start, sweep float64, fill charts.ColorTag) error {
	if sweep <= 0 || radius <= 0 {
		return nil
	}
	var pat svg.Path
	pat.Rendering = "geometricPrecision"
	pat.Fill = svg.NewFill(fill.String())

	pat.AbsMoveTo(getPos(center))
	pat.AbsLineTo(getPosFromAngle(center, start, radius))
	if sweep >= fullcircle {
		// a single arc can not join a point to itself
		pat.AbsArcTo(getPosFromAngle(center, start+halfcircle, radius), radius, radius, 0, false, true)
		sweep -= halfcircle
		start += halfcircle
	}
	pat.AbsArcTo(getPosFromAngle(center, start+sweep, radius), radius, radius, 0, sweep > halfcircle, true)
	pat.ClosePath()
	s.sectors.Append(pat.AsElement())
	return nil
}

func (s *SVG) Render(w io.Writer) error {
	el := svg.NewSVG(svg.WithDimension(s.Width, s.Height))
	el.OmitProlog = true
	el.Append(s.sectors.AsElement())
	el.Append(s.lines.AsElement())

	bw := bufio.NewWriter(w)
	el.Render(bw)
	return bw.Flush()
}

func getBaseGroup(class ...string) svg.Group {
	var g svg.Group
	g.Class = class
	return g
}

func getPos(pt charts.Point) svg.Pos {
	return svg.NewPos(pt.X, pt.Y)
}

func getPosFromAngle(center charts.Point, angle, radius float64) svg.Pos {
	var (
		rad = angle * deg2rad
		x   = center.X + radius*math.Cos(rad)
		y   = center.Y + radius*math.Sin(rad)
	)
	return svg.NewPos(x, y)
}
