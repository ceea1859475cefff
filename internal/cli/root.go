package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	application "github.com/rocketscienceinc/tictactoe-nxn/internal"
	"github.com/rocketscienceinc/tictactoe-nxn/internal/config"
)

type options struct {
	configPath string
	output     string
}

// state is filled by the root PersistentPreRunE before any subcommand runs.
type state struct {
	opts options
	conf *config.Config
	app  *application.App
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	st := &state{}

	rootCmd := &cobra.Command{
		Use:   "tictactoe",
		Short: "N×N tic-tac-toe where three in a row wins",
		Long: `tictactoe plays two-player tic-tac-toe on an N×N board in the terminal.

A player wins with three marks in a row, column or diagonal. When redis is
enabled the outcome of every match is kept on a scoreboard, which can be read
with the standings command or served over HTTP.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := config.Load(st.opts.configPath)
			if err != nil {
				return err
			}

			logger := application.NewLogger(conf.LogLevel, cmd.ErrOrStderr())

			app, err := application.New(cmd.Context(), logger, conf)
			if err != nil {
				return err
			}

			st.conf = conf
			st.app = app

			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if st.app == nil {
				return nil
			}

			return st.app.Close()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&st.opts.configPath, "config", defaultConfigPath(), "Config file path")
	rootCmd.PersistentFlags().StringVarP(&st.opts.output, "output", "o", "text", "Output format: text, json")

	rootCmd.AddCommand(newPlayCmd(st))
	rootCmd.AddCommand(newStandingsCmd(st))
	rootCmd.AddCommand(newServeCmd(st))

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func defaultConfigPath() string {
	baseDir, err := os.Getwd()
	if err != nil {
		return "config.yml"
	}

	return filepath.Join(baseDir, "config.yml")
}

func unsupportedOutput(format string) error {
	return fmt.Errorf("unsupported output format %q", format)
}
