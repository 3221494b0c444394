package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/font-localizer/internal/discovery"
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "List the stylesheets an HTML page references",
	Long:  "Parses an HTML file and prints the href of every <link rel=\"stylesheet\"> element, split into local paths (candidates for --stylesheet) and remote URLs (reported only).",
	RunE:  runDiscover,
}

var discoverHTMLPath string

func init() {
	discoverCmd.Flags().StringVar(&discoverHTMLPath, "html", "", "Path to HTML file (required)")

	if err := discoverCmd.MarkFlagRequired("html"); err != nil {
		panic(fmt.Sprintf("failed to mark html flag as required: %v", err))
	}

	rootCmd.AddCommand(discoverCmd)
}

func runDiscover(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(discoverHTMLPath)
	if err != nil {
		return fmt.Errorf("failed to read HTML file %s: %w", discoverHTMLPath, err)
	}

	links, err := discovery.StylesheetLinks(string(data))
	if err != nil {
		return fmt.Errorf("failed to extract stylesheet links: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Local stylesheets (%d):\n", len(links.Local))
	for _, href := range links.Local {
		_, _ = fmt.Fprintf(os.Stdout, "  %s\n", href)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Remote stylesheets (%d):\n", len(links.Remote))
	for _, href := range links.Remote {
		_, _ = fmt.Fprintf(os.Stdout, "  %s\n", href)
	}

	return nil
}
