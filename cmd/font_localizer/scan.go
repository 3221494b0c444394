package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/font-localizer/internal/config"
	"github.com/jonathan/font-localizer/internal/stylesheet"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "List the remote font URLs the stylesheets reference",
	Long:  "Reads each configured stylesheet and prints the font URLs that a localize run would download. Nothing is downloaded and no file is modified.",
	RunE:  runScan,
}

var (
	scanAssetsDir   string
	scanStylesheets []string
)

func init() {
	scanCmd.Flags().StringVarP(&scanAssetsDir, "assets-dir", "d", "", "Directory holding the stylesheets (default: static/fonts)")
	scanCmd.Flags().StringSliceVarP(&scanStylesheets, "stylesheet", "s", nil, "Stylesheet filename, repeatable (default: inter.css,icons.css)")

	rootCmd.AddCommand(scanCmd)
}

func runScan(_ *cobra.Command, _ []string) error {
	// Resolved at run time so the environment override applies, same as
	// localize.
	cfg := config.Config{
		AssetsDir:   scanAssetsDir,
		Stylesheets: scanStylesheets,
	}
	cfg = cfg.MergeWithDefaults(config.Default())

	total := 0
	for _, name := range cfg.Stylesheets {
		path := filepath.Join(cfg.AssetsDir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read stylesheet %s: %w", path, err)
		}

		urls := stylesheet.ExtractFontURLs(string(data))
		_, _ = fmt.Fprintf(os.Stdout, "%s: %d font URL(s)\n", name, len(urls))
		for _, fontURL := range urls {
			_, _ = fmt.Fprintf(os.Stdout, "  %s -> %s\n", fontURL, stylesheet.Filename(fontURL))
		}
		total += len(urls)
	}

	_, _ = fmt.Fprintf(os.Stdout, "%d font URL(s) across %d stylesheet(s)\n", total, len(cfg.Stylesheets))

	return nil
}
