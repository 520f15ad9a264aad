// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"

	"github.com/storiesascode/storiesascode/internal/config"
	"github.com/storiesascode/storiesascode/internal/logger"
)

var (
	configPath string // directory holding main.toml
	devMode    bool

	cfg config.Config

	rootCmd = &cobra.Command{
		Use:   "stories",
		Short: "stories generates user stories from a project blueprint",
		Long: `stories reads a YAML blueprint of user types, models and permissions
and derives the create, read, update and delete user stories of every model.`,
		Args:          cobra.OnlyValidArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
)

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./etc/", "directory holding main.toml")
	rootCmd.PersistentFlags().BoolVar(&devMode, "dev", false, "Enable dev mode")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the configuration and initialises the logger. Dev mode switches to debug
// level on a human readable console.
func loadConfig(_ *cobra.Command, _ []string) error {
	var err error

	if cfg, err = config.ReadConfig(configPath); err != nil {
		return err
	}

	if devMode {
		cfg.DevMode = true
	}

	if cfg.DevMode {
		cfg.Log.Level = "debug"
		cfg.Log.Console.Enabled = true
		cfg.Log.Console.UseConsoleWriter = true
	}

	return logger.Init(cfg.Log)
}
