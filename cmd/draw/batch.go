package main

import (
	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/midbel/tapcharts/dash"
)

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Draw every chart of the configuration file",
		Long:  `Draw concurrently all the charts listed under the charts key of the configuration file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := loadCharts()
			if err != nil {
				log.Error("invalid configuration", "error", err)
				return err
			}
			if len(list) == 0 {
				return errors.New("no charts configured")
			}
			if err := dash.Render(cmd.Context(), list...); err != nil {
				log.Error("fail to draw charts", "error", err)
				return err
			}
			log.Info("charts written", "count", len(list))
			return nil
		},
	}
	return cmd
}

func loadCharts() ([]dash.Config, error) {
	var files []dash.File
	if err := viper.UnmarshalKey("charts", &files); err != nil {
		return nil, errors.Wrap(err, "charts")
	}
	return dash.Configs(files, globalStyle())
}
