package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/nonx2/yuuna-server/cmd"
	"github.com/nonx2/yuuna-server/internal/config"
	"github.com/nonx2/yuuna-server/pkg/logger"
)

func main() {
	// default configuration
	cfg := config.NewConfigurationWithOptionsAndDefaults(
		config.WithLogFormat("console"),
		config.WithLogLevel("info"),
	)

	var undo func()
	var log *zap.Logger

	rootCmd := &cobra.Command{
		Use:          "yuna",
		Short:        "Yuna server",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := validateConfig(cfg); err != nil {
				return err
			}

			log = logger.Init(cfg.LogFormat, cfg.LogLevel)
			undo = zap.ReplaceGlobals(log)
			return nil
		},
	}
	registerLoggingFlags(rootCmd, cfg)

	rootCmd.AddCommand(cmd.NewRunCommand(cfg))

	err := rootCmd.Execute()
	if log != nil {
		_ = log.Sync()
		undo()
	}
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func validateConfig(cfg *config.Configuration) error {
	switch cfg.LogFormat {
	case "console":
	case "json":
	default:
		return fmt.Errorf("invalid log-format: %s", cfg.LogFormat)
	}

	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %s", cfg.LogLevel)
	}

	return nil
}

func registerLoggingFlags(cmd *cobra.Command, config *config.Configuration) {
	cmd.PersistentFlags().StringVar(&config.LogFormat, "log-format", config.LogFormat, "format of the logs: console or json")
	cmd.PersistentFlags().StringVar(&config.LogLevel, "log-level", config.LogLevel, "log level: debug, info, warn or error")
}
