package main

import (
	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/midbel/tapcharts/dash"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the configured charts over http",
		Long:  `Serve the charts of the configuration file (or the sample charts) and resolve taps on pie charts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := loadCharts()
			if err != nil {
				log.Error("invalid configuration", "error", err)
				return err
			}
			if len(list) == 0 {
				list, err = sampleCharts()
				if err != nil {
					return err
				}
			}
			if log.GetLevel() > log.DebugLevel {
				gin.SetMode(gin.ReleaseMode)
			}
			srv := dash.NewServer(log.Default(), list...)
			return srv.ListenAndServe(cmd.Context(), viper.GetString("addr"))
		},
	}

	cmd.Flags().String("addr", ":8080", "Listening address")
	viper.BindPFlag("addr", cmd.Flags().Lookup("addr"))

	return cmd
}

func sampleCharts() ([]dash.Config, error) {
	files := []dash.File{
		{
			Name:   "sample-line",
			Kind:   dash.KindLine,
			Values: sampleLine,
		},
		{
			Name:   "sample-pie",
			Kind:   dash.KindPie,
			Values: samplePie,
			Colors: samplePieColors,
		},
	}
	return dash.Configs(files, globalStyle())
}
