package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Resolve a page into its render tree",
	Long:  `Resolves every section of a page for the given locale and writes the render tree as JSON to stdout.`,
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

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(tree); err != nil {
			fmt.Printf("Error encoding render tree: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringP("page", "p", "/", "Page path to resolve")
	renderCmd.Flags().StringP("locale", "l", "", "Locale to resolve for (defaults to the site default)")
}
