package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"wordtiles/internal/config"
	"wordtiles/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "wordtiles",
	Short: "manage word tile dictionaries and look up plays",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		level := cfg.LogLevel
		if mustGetBoolFlag(cmd, "verbose") {
			level = "debug"
		}
		if err := logging.Configure(level, cfg.LogFormat); err != nil {
			return err
		}
		appConfig = cfg
		return nil
	},
	SilenceUsage: true,
}

// appConfig is loaded before any subcommand runs
var appConfig *config.Config

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "show debug logging")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logging.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func mustGetBoolFlag(cmd *cobra.Command, name string) bool {
	value, err := cmd.Flags().GetBool(name)
	if err != nil {
		logging.Fatal().Err(err).Str("flag", name).Msg("could not get flag")
	}
	return value
}

func mustGetStringFlag(cmd *cobra.Command, name string) string {
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		logging.Fatal().Err(err).Str("flag", name).Msg("could not get flag")
	}
	return value
}

func mustGetDurationFlag(cmd *cobra.Command, name string) time.Duration {
	value, err := cmd.Flags().GetDuration(name)
	if err != nil {
		logging.Fatal().Err(err).Str("flag", name).Msg("could not get flag")
	}
	return value
}
