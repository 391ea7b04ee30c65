package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/midbel/tapcharts/dash"
)

func newLineCmd() *cobra.Command {
	var flags dataFlags

	cmd := &cobra.Command{
		Use:   "line [file.csv]",
		Short: "Draw a line chart",
		Long:  `Draw a line chart connecting the values of a csv file, or of the sample data set when no file is given.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.file(cmd, dash.KindLine, args).Config(globalStyle())
			if err != nil {
				log.Error("invalid line chart", "error", err)
				return err
			}
			if err := cfg.Save(cmd.Context()); err != nil {
				log.Error("fail to draw line chart", "chart", cfg.Name, "error", err)
				return err
			}
			log.Info("line chart written", "chart", cfg.Name, "path", cfg.Path)
			return nil
		},
	}

	flags.register(cmd, "line.svg")
	cmd.Flags().Float64Var(&flags.Width, "width", 0, "Canvas width")
	cmd.Flags().Float64Var(&flags.Height, "height", 0, "Canvas height")
	cmd.Flags().StringVar(&flags.Stroke, "stroke", "", "Line color")
	cmd.Flags().Float64Var(&flags.Line, "line-width", 0, "Line width")

	return cmd
}
