package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/latticeui/lattice"
	"github.com/latticeui/lattice/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lattice",
	Short: "Lattice is a declarative UI block templating engine",
	Long:  `Lattice resolves JSON/YAML block templates into render trees: coerced attributes, substituted variables, locale overlays and entrance-animation timing.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("site", "site.yaml", "Site definition file or directory")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
}

// newEngine builds an engine from the persistent flags.
func newEngine(cmd *cobra.Command) (*lattice.Engine, *slog.Logger, error) {
	site, _ := cmd.Flags().GetString("site")
	level, _ := cmd.Flags().GetString("log-level")

	logger := logging.New(logging.ParseLevel(level))
	eng, err := lattice.New(site, lattice.WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}
	return eng, logger, nil
}
