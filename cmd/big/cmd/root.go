package cmd

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "big",
		Short:        "big",
		SilenceUsage: true,
		Long:         `CLI exercising the big-sub001 text/container library: one subcommand per package.`,
	}

	configPath string
	logLevel   string
	cfg        *Config
)

// Execute runs the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file (tab_width, separator-set presets)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn, or error (defaults to $BIG_LOG_LEVEL, then info)")
	cobra.OnInitialize(initLogging, initConfig)
	return rootCmd.Execute()
}

// initLogging configures logrus from --log-level, falling back to
// $BIG_LOG_LEVEL, the way sqldef-sqldef's logutil.InitSlog reads
// $LOG_LEVEL — realized with logrus rather than log/slog since this
// repo's ambient stack carries logrus, not slog.
func initLogging() {
	level := logLevel
	if level == "" {
		level = os.Getenv("BIG_LOG_LEVEL")
	}
	parsed, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
	logrus.SetOutput(os.Stderr)
}

func initConfig() {
	loaded, err := loadConfig(configPath)
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}
	cfg = loaded
}
