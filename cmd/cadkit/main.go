package main

import (
	"os"

	"github.com/dhamidi/cadkit/config"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

var cfg = config.DefaultConfig()

func main() {
	rootCmd := newRootCmd()

	rootCmd.AddCommand(newDumpCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newTablesCmd())
	rootCmd.AddCommand(newIndexCmd())
	rootCmd.AddCommand(newQueryCmd())
	rootCmd.AddCommand(newLSPCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	var verbose int
	var logPath string

	rootCmd := &cobra.Command{
		Use:          "cadkit",
		Short:        "Read and inspect DXF drawings",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if configPath != "" {
				cfg, _, err = config.LoadFromPath(configPath)
			} else {
				cfg, _, err = config.Load()
			}
			if err != nil {
				return err
			}

			verbosity := cfg.Log.Verbosity
			if cmd.Flags().Changed("verbose") {
				verbosity = verbose
			}
			path := cfg.Log.Path
			if logPath != "" {
				path = logPath
			}
			if path == "" {
				commonlog.Configure(verbosity, nil)
			} else {
				commonlog.Configure(verbosity, &path)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: $CADKIT_CONFIG, ./cadkit.yaml, ~/.config/cadkit/config.yaml)")
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase log verbosity")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "write log to file instead of stderr")

	return rootCmd
}
