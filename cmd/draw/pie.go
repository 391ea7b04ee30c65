package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/midbel/tapcharts/anim"
	"github.com/midbel/tapcharts/dash"
)

func newPieCmd() *cobra.Command {
	var (
		flags    dataFlags
		progress float64
		frames   int
		duration time.Duration
	)

	cmd := &cobra.Command{
		Use:   "pie [file.csv]",
		Short: "Draw a pie chart",
		Long:  `Draw a pie chart from the values of a csv file, or from the sample data set when no file is given.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := flags.file(cmd, dash.KindPie, args)
			if cmd.Flags().Changed("progress") {
				file.Progress = &progress
				file.Animate = true
			}
			cfg, err := file.Config(globalStyle())
			if err != nil {
				log.Error("invalid pie chart", "error", err)
				return err
			}
			if frames <= 0 {
				if err := cfg.Save(cmd.Context()); err != nil {
					log.Error("fail to draw pie chart", "chart", cfg.Name, "error", err)
					return err
				}
				log.Info("pie chart written", "chart", cfg.Name, "path", cfg.Path)
				return nil
			}
			var (
				ani = anim.New(duration)
				out = cfg.Path
				n   int
			)
			cfg.Animate = true
			return ani.Run(cmd.Context(), duration/time.Duration(frames), func(p float64) error {
				cfg.Progress = p
				cfg.Path = framePath(out, n)
				n++
				log.Debug("drawing frame", "path", cfg.Path, "progress", p)
				return cfg.Save(cmd.Context())
			})
		},
	}

	flags.register(cmd, "pie.svg")
	cmd.Flags().Float64Var(&flags.Radius, "radius", 0, "Pie radius")
	cmd.Flags().IntVar(&flags.color, "color-col", 0, "Index of the color column")
	cmd.Flags().Float64Var(&progress, "progress", 1, "Fraction of the sweep angles to draw")
	cmd.Flags().IntVar(&frames, "frames", 0, "Write an animation of this many frames")
	cmd.Flags().DurationVar(&duration, "duration", anim.DefaultDuration, "Duration of the animation")

	return cmd
}

func framePath(file string, n int) string {
	ext := filepath.Ext(file)
	return fmt.Sprintf("%s-%03d%s", strings.TrimSuffix(file, ext), n, ext)
}
