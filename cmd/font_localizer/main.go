// Package main provides the entry point for the font localizer CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "font_localizer",
	Short: "Download remote web fonts and rewrite stylesheets to local copies",
	Long:  "Font Localizer scans stylesheets for remote TrueType font URLs, downloads each font next to the stylesheet, and rewrites the stylesheet to reference the local copy. Invoked without a subcommand it runs localize with defaults.",
	RunE:  runLocalize,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
