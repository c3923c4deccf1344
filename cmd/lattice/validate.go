package main

import (
	"fmt"
	"os"

	"github.com/latticeui/lattice/internal/config"
	"github.com/latticeui/lattice/internal/validator"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the site definition for consistency",
	Long:  `Loads the site definition and reports unknown block references, missing node types, circular block references and undeclared locales.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(cmd); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Site is valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("site")

	loader, err := config.NewLoader(path)
	if err != nil {
		return err
	}
	site, err := loader.Site()
	if err != nil {
		return err
	}
	return validator.ValidateSite(site)
}
