package dash

import (
	charts "github.com/midbel/tapcharts"
)

type Style struct {
	Width   float64 `mapstructure:"width"`
	Height  float64 `mapstructure:"height"`
	Radius  float64 `mapstructure:"radius"`
	Stroke  string  `mapstructure:"stroke"`
	Line    float64 `mapstructure:"line-width"`
	Palette string  `mapstructure:"palette"`
	Animate bool    `mapstructure:"animate"`
}

func GlobalStyle() Style {
	return Style{
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		Radius:  DefaultRadius,
		Stroke:  charts.DefaultStroke.Color.String(),
		Line:    charts.DefaultStroke.Width,
		Palette: "category10",
	}
}

func (s Style) getStroke() charts.Stroke {
	return charts.Stroke{
		Color: charts.ColorTag(s.Stroke),
		Width: s.Line,
	}
}

func (s Style) getPalette() charts.Palette {
	return charts.GetPalette(s.Palette)
}

// Merge fills the unset fields of s from g.
func (s Style) Merge(g Style) Style {
	if s.Width == 0 {
		s.Width = g.Width
	}
	if s.Height == 0 {
		s.Height = g.Height
	}
	if s.Radius == 0 {
		s.Radius = g.Radius
	}
	if s.Stroke == "" {
		s.Stroke = g.Stroke
	}
	if s.Line == 0 {
		s.Line = g.Line
	}
	if s.Palette == "" {
		s.Palette = g.Palette
	}
	if !s.Animate {
		s.Animate = g.Animate
	}
	return s
}
