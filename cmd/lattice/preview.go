package main

import (
	"context"
	"fmt"
	"os"

	"github.com/latticeui/lattice/internal/cli"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview a resolved page in the terminal",
	Long:  `Resolves a page and prints a styled outline of the render tree: node kinds, attributes, content and animation timing.`,
	Run: func(cmd *cobra.Command, args []string) {
		page, _ := cmd.Flags().GetString("page")
		locale, _ := cmd.Flags().GetString("locale")

		eng, _, err := newEngine(cmd)
		if err != nil {
			fmt.Printf("Error initializing lattice: %v\n", err)
			os.Exit(1)
		}

		tree, err := eng.ResolvePage(context.Background(), page, locale)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		if err := cli.Preview(os.Stdout, tree); err != nil {
			fmt.Printf("Error rendering preview: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringP("page", "p", "/", "Page path to preview")
	previewCmd.Flags().StringP("locale", "l", "", "Locale to resolve for (defaults to the site default)")
}
