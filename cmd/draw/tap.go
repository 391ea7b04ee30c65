package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	charts "github.com/midbel/tapcharts"
	"github.com/midbel/tapcharts/dash"
)

func newTapCmd() *cobra.Command {
	var (
		flags dataFlags
		x     float64
		y     float64
	)

	cmd := &cobra.Command{
		Use:   "tap [file.csv]",
		Short: "Find the slice of a pie chart under a position",
		Long:  `Resolve a tap at x,y (canvas coordinates, origin top-left) on a pie chart and print the index of the selected slice.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.file(cmd, dash.KindPie, args).Config(globalStyle())
			if err != nil {
				log.Error("invalid pie chart", "error", err)
				return err
			}
			i, slice, err := cfg.Tap(cmd.Context(), x, y)
			if err != nil {
				if errors.Is(err, charts.ErrNoSliceMatched) {
					log.Warn("no slice at position", "x", x, "y", y, "angle", charts.TouchAngle(x, y, cfg.Radius))
				} else {
					log.Error("fail to resolve tap", "chart", cfg.Name, "error", err)
				}
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%g\t%s\n", i, slice.Value, slice.Color)
			return err
		},
	}

	flags.register(cmd, "")
	cmd.Flags().Float64Var(&flags.Radius, "radius", 0, "Pie radius")
	cmd.Flags().IntVar(&flags.color, "color-col", 0, "Index of the color column")
	cmd.Flags().Float64Var(&x, "x", 0, "Horizontal position of the tap")
	cmd.Flags().Float64Var(&y, "y", 0, "Vertical position of the tap")

	cmd.MarkFlagRequired("x")
	cmd.MarkFlagRequired("y")

	return cmd
}
