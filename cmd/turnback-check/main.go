package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/itinerary-turnback/config"
	"github.com/theoremus-urban-solutions/itinerary-turnback/internal"
)

type rootOptions struct {
	configPath string
	dataset    string
	logLevel   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("turnback check failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:           "turnback-check",
		Short:         "Flatten itinerary XML and report turnback itineraries",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default: config.yml or ./configs/config.yml)")
	cmd.PersistentFlags().StringVar(&opts.dataset, "dataset", "", "Dataset name from config.datasets[]")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug|info|warn|error (overrides config)")

	cmd.AddCommand(newRunCmd(&opts), newFlattenCmd(&opts), newCheckCmd(&opts))
	return cmd
}

// setup loads the configuration and installs the logger
func setup(opts rootOptions) error {
	var err error
	if opts.configPath != "" {
		err = config.LoadAppConfig(opts.configPath)
	} else {
		err = config.LoadAppConfig()
		if errors.Is(err, fs.ErrNotExist) {
			config.Config = config.Default()
			err = nil
		}
	}
	if err != nil {
		return err
	}

	level := config.Config.Logging.Level
	if opts.logLevel != "" {
		level = opts.logLevel
	}
	internal.InitLogging(level)
	return nil
}
