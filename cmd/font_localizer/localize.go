// Package main implements the font_localizer CLI tool.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/font-localizer/internal/config"
	"github.com/jonathan/font-localizer/internal/fetch"
	"github.com/jonathan/font-localizer/internal/localize"
)

var localizeCmd = &cobra.Command{
	Use:   "localize",
	Short: "Download fonts referenced by the stylesheets and rewrite them in place",
	Long:  "Reads each configured stylesheet, downloads every url(https://...ttf) font it references into the assets directory, and rewrites the stylesheet to point at the local copies.",
	RunE:  runLocalize,
}

var (
	localizeAssetsDir   string
	localizeStylesheets []string
	localizePrefix      string
	localizeTimeout     time.Duration
	localizeManifest    bool
	localizeConfigPath  string
	localizeVerbose     bool
)

func init() {
	localizeCmd.Flags().StringVarP(&localizeAssetsDir, "assets-dir", "d", "", "Directory holding the stylesheets and downloaded fonts (default: static/fonts)")
	localizeCmd.Flags().StringSliceVarP(&localizeStylesheets, "stylesheet", "s", nil, "Stylesheet filename, repeatable (default: inter.css,icons.css)")
	localizeCmd.Flags().StringVar(&localizePrefix, "prefix", "", "URL prefix substituted for the remote origin (default: /fonts/)")
	localizeCmd.Flags().DurationVar(&localizeTimeout, "timeout", 0, "Per-request HTTP timeout (default: 30s)")
	localizeCmd.Flags().BoolVar(&localizeManifest, "manifest", false, "Write fonts.manifest.json next to the fonts after the run")
	localizeCmd.Flags().StringVarP(&localizeConfigPath, "config", "c", "", "Path to JSON config file")
	localizeCmd.Flags().BoolVarP(&localizeVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(localizeCmd)
}

// timeoutSeconds converts the --timeout duration to whole seconds, rounding
// up so a sub-second value stays a 1s timeout instead of falling back to the
// 30s default.
func timeoutSeconds(d time.Duration) int {
	return int((d + time.Second - 1) / time.Second)
}

func runLocalize(_ *cobra.Command, _ []string) error {
	// Flags > config file > environment/defaults
	cfg := config.Config{
		AssetsDir:   localizeAssetsDir,
		Stylesheets: localizeStylesheets,
		Prefix:      localizePrefix,
		Manifest:    localizeManifest,
		Verbose:     localizeVerbose,
	}
	if localizeTimeout > 0 {
		cfg.TimeoutSeconds = timeoutSeconds(localizeTimeout)
	}

	if localizeConfigPath != "" {
		fileCfg, err := config.LoadConfig(localizeConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
		cfg.Manifest = cfg.Manifest || fileCfg.Manifest
		cfg.Verbose = cfg.Verbose || fileCfg.Verbose
	}
	cfg = cfg.MergeWithDefaults(config.Default())

	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := context.Background()
	fetchOpts := fetch.DefaultOptions()
	fetchOpts.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second

	report, err := localize.Run(ctx, localize.Options{
		AssetsDir:    cfg.AssetsDir,
		Stylesheets:  cfg.Stylesheets,
		Prefix:       cfg.Prefix,
		FetchOptions: fetchOpts,
		Verbose:      cfg.Verbose,
	})
	if err != nil {
		return err
	}

	if cfg.Manifest {
		manifestPath := filepath.Join(cfg.AssetsDir, "fonts.manifest.json")
		if err := localize.WriteManifest(report, manifestPath); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Manifest: %s\n", manifestPath)
	}

	_, _ = fmt.Fprintln(os.Stdout, "Finished downloading fonts and updating CSS.")

	return nil
}
