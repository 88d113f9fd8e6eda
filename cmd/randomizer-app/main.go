package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sbugallo/muos-pokemon-randomizer-app/internal/config"
	"github.com/sbugallo/muos-pokemon-randomizer-app/internal/gui"
	"github.com/sbugallo/muos-pokemon-randomizer-app/internal/logging"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:     "randomizer-app",
		Short:   "Controller-driven Pokémon ROM randomizer front-end",
		Long:    "A fullscreen front-end for handhelds: browse the SD cards for a Pokémon ROM and run the Universal Pokémon Randomizer on it with the bundled settings.",
		Version: fmt.Sprintf("%s (%s) %s", version, commit, date),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfgFile
			if path == "" {
				path = config.ResolvePath(config.DefaultFileName)
			}
			cfg, err := config.Load(path)
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}

			logPath, err := logging.Setup(cfg)
			if err != nil {
				return fmt.Errorf("setting up logging: %w", err)
			}
			if logPath != "" {
				logrus.WithField("path", logPath).Info("Logging to file")
			}

			app := gui.NewApp(gui.AppConfig{
				Version: version,
				Commit:  commit,
			}, cfg)
			return app.Run()
		},
	}
	rootCmd.SilenceUsage = true

	rootCmd.Flags().StringVar(&cfgFile, "config", "", "config file (default is "+config.DefaultFileName+" beside the executable)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
