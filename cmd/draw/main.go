package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/gogpu/gg"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile  string
	logLevel string
)

func init() {
	cobra.OnInitialize(initConfig)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draw <command>",
		Short: "Draw line and pie charts",
		Long:  `Draw line and pie charts as svg or png and resolve taps on pie charts.`,
		Example: heredoc.Doc(`
			$ draw line values.csv -o line.svg
			$ draw pie shares.csv --color-col 0 -o pie.png
			$ draw tap shares.csv --x 620 --y 300
			$ draw serve --addr :8080
		`),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger(logLevel)
		},
	}
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default is $HOME/.tapcharts.yaml)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(newLineCmd())
	cmd.AddCommand(newPieCmd())
	cmd.AddCommand(newTapCmd())
	cmd.AddCommand(newBatchCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func initConfig() {
	viper.SetEnvPrefix("tapcharts")
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigName(".tapcharts")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && cfgFile == "" {
			return
		}
		fmt.Fprintln(os.Stderr, "Can't read config:", err)
		os.Exit(1)
	}
}

func setupLogger(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)
	log.SetReportTimestamp(true)
	gg.SetLogger(slog.New(log.Default()))
	return nil
}
