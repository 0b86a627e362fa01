package cli

import (
	"github.com/soyeahso/underline/internal/config"
	"github.com/soyeahso/underline/internal/logging"
	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	logLevel string

	// loaded at init time
	paths config.Paths
	log   *logging.Logger
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "underline",
		Short: "underline — module bootstrap and configuration",
		Long:  "underline loads its JSON configuration, creating it with defaults on first run, and applies it to the API error log.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			paths, err = config.ResolvePaths()
			if err != nil {
				return err
			}
			if cfgFile != "" {
				paths.Config = cfgFile
			}
			level := logLevel
			if level == "" {
				level = "info"
			}
			log = logging.New(nil, level)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.underline/config.json)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error, fatal, silent)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newStatusCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

// prepareDirs creates the default directories unless the config file was
// given explicitly.
func prepareDirs() error {
	if cfgFile != "" {
		return nil
	}
	return paths.EnsureDirs()
}

// loadStore loads the config file, creating it if needed.
func loadStore() (*config.Store, error) {
	if err := prepareDirs(); err != nil {
		return nil, err
	}
	store := config.New()
	if err := store.Load(paths.Config); err != nil {
		return nil, err
	}
	return store, nil
}
