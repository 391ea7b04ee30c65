package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/midbel/tapcharts/dash"
)

var (
	sampleLine = []float64{40, 70, 80, 60, 90, 20, 10, 50, 30, 100}

	samplePie       = []float64{20, 30, 72, 87, 98}
	samplePieColors = []string{"magenta", "darkgray", "black", "cyan", "yellow"}
)

type dataFlags struct {
	value  int
	color  int
	offset int
	count  int
	output string
	dash.Style
}

func (d *dataFlags) register(cmd *cobra.Command, output string) {
	cmd.Flags().StringVarP(&d.output, "output", "o", output, "Output file (.svg or .png)")
	cmd.Flags().IntVar(&d.value, "value-col", 1, "Index of the value column")
	cmd.Flags().IntVar(&d.offset, "offset", 0, "Rows to skip (negative counts from the end)")
	cmd.Flags().IntVar(&d.count, "count", 0, "Maximum number of rows")
	cmd.Flags().StringVar(&d.Palette, "palette", "", "Palette used for slices without color (category10, tableau10)")
}

// file builds the description of the chart from the command line. Without
// argument, the sample data set of the kind is used.
func (d *dataFlags) file(cmd *cobra.Command, kind string, args []string) dash.File {
	f := dash.File{
		Kind:   kind,
		Output: d.output,
		Offset: d.offset,
		Count:  d.count,
		Style:  d.Style,
	}
	if len(args) > 0 {
		f.Data = args[0]
		if cmd.Flags().Changed("value-col") {
			f.Value = &d.value
		}
		if cmd.Flags().Changed("color-col") {
			f.Color = &d.color
		}
		return f
	}
	f.Name = "sample-" + kind
	switch kind {
	case dash.KindPie:
		f.Values = samplePie
		f.Colors = samplePieColors
	default:
		f.Values = sampleLine
	}
	return f
}

func globalStyle() dash.Style {
	g := dash.GlobalStyle()
	if !viper.IsSet("style") {
		return g
	}
	var s dash.Style
	if err := viper.UnmarshalKey("style", &s); err != nil {
		log.Warn("invalid style in configuration", "error", err)
		return g
	}
	return s.Merge(g)
}
