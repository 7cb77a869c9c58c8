package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"lightswitch.app/internal/cli/logger"
	"lightswitch.app/internal/config"
	"lightswitch.app/internal/version"
)

var (
	flagConfigFile string
	flagConfigYAML string
	flagDebugMode  bool

	logCloser io.Closer
)

var Cmd = cobra.Command{
	Use:     "lightswitch",
	Short:   "Lightswitch remembers a visitor's light/dark theme preference.",
	Version: version.Version,

	PersistentPreRunE: persistentPreRunE,

	RunE: func(cmd *cobra.Command, args []string) error {
		if err := NewDaemon().Run(); err != nil {
			slog.Error("daemon exited with error", slog.Any("error", err))
			return err
		}
		return nil
	},

	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			logCloser.Close()
		}
	},
}

var configDumpCmd = cobra.Command{
	Use:   "config-dump",
	Short: "Print parsed configuration values",
	Args:  cobra.ExactArgs(0),
	Run:   func(cmd *cobra.Command, args []string) { fmt.Print(config.Opts) },
}

func init() {
	Cmd.PersistentFlags().StringVarP(&flagConfigFile, "config-file", "c", "",
		"Path to .env configuration file")
	Cmd.PersistentFlags().StringVarP(&flagConfigYAML, "config-yaml", "", "",
		"Path to YAML configuration file")
	Cmd.PersistentFlags().BoolVarP(&flagDebugMode, "debug", "d", false,
		"Show debug logs")

	Cmd.AddCommand(&configDumpCmd)
	Cmd.AddCommand(&healthCmd)
}

func persistentPreRunE(cmd *cobra.Command, args []string) error {
	// Don't show usage on app errors.
	// https://github.com/spf13/cobra/issues/340#issuecomment-378726225
	cmd.SilenceUsage = true

	if err := config.LoadYAML(flagConfigYAML, flagConfigFile); err != nil {
		return err
	} else if flagDebugMode {
		config.Opts.SetLogLevel("debug")
	}

	closer, err := logger.InitializeDefaultLogger()
	if err != nil {
		return err
	}
	logCloser = closer
	return nil
}

func Execute() {
	if err := Cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
