package localize

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/font-localizer/internal/fetch"
	"github.com/jonathan/font-localizer/internal/stylesheet"
)

// DefaultAssetsDir is the directory holding the stylesheets and the
// downloaded fonts.
const DefaultAssetsDir = "static/fonts"

// DefaultPrefix is the URL prefix substituted for the remote origin in
// rewritten stylesheets.
const DefaultPrefix = "/fonts/"

// DefaultStylesheets returns the stylesheets processed when none are
// configured.
func DefaultStylesheets() []string {
	return []string{"inter.css", "icons.css"}
}

// ProgressEvent represents a progress update during a localization run.
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
}

// ProgressCallback is called as the run advances.
type ProgressCallback func(event ProgressEvent)

// Options holds configuration for a localization run.
type Options struct {
	AssetsDir    string
	Stylesheets  []string
	Prefix       string
	FetchOptions *fetch.Options
	Verbose      bool
	OnProgress   ProgressCallback
}

// emitProgress calls the progress callback if configured.
func emitProgress(opts *Options, step, message string) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{Step: step, Message: message})
	}
}

// Run processes each configured stylesheet in order: it reads the file,
// extracts the embedded font URLs, downloads each font into the assets
// directory, substitutes the local reference for the remote URL, and writes
// the stylesheet back in place.
//
// Processing is strictly sequential, one stylesheet at a time and one URL at
// a time, with no retries and no cache: a duplicate URL is downloaded again,
// harmlessly overwriting the same file. The first failure aborts the run;
// stylesheets already rewritten stay rewritten and fonts already downloaded
// stay on disk.
func Run(ctx context.Context, opts Options) (*Report, error) {
	if opts.AssetsDir == "" {
		opts.AssetsDir = DefaultAssetsDir
	}
	if len(opts.Stylesheets) == 0 {
		opts.Stylesheets = DefaultStylesheets()
	}
	if opts.Prefix == "" {
		opts.Prefix = DefaultPrefix
	}

	report := &Report{
		RunID:       uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
	}

	for _, name := range opts.Stylesheets {
		path := filepath.Join(opts.AssetsDir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, &StylesheetError{
				Path:    path,
				Message: "failed to read stylesheet",
				Cause:   err,
			}
		}
		content := string(data)

		urls := stylesheet.ExtractFontURLs(content)
		if opts.Verbose {
			log.Printf("[VERBOSE] %s: %d font URL(s) found", path, len(urls))
		}
		emitProgress(&opts, "scan", name)

		for _, fontURL := range urls {
			filename := stylesheet.Filename(fontURL)

			result, err := fetch.Bytes(ctx, fontURL, opts.FetchOptions)
			if err != nil {
				return nil, &DownloadError{
					Stylesheet: name,
					URL:        fontURL,
					Message:    "failed to fetch font",
					Cause:      err,
				}
			}

			target := filepath.Join(opts.AssetsDir, filename)
			if err := os.WriteFile(target, result.Body, 0644); err != nil {
				return nil, &DownloadError{
					Stylesheet: name,
					URL:        fontURL,
					Message:    "failed to save font",
					Cause:      err,
				}
			}
			if opts.Verbose {
				log.Printf("[VERBOSE] downloaded %s (%d bytes) to %s", fontURL, len(result.Body), target)
			}
			emitProgress(&opts, "download", fontURL)

			content = stylesheet.Rewrite(content, fontURL, opts.Prefix+filename)

			report.Downloads = append(report.Downloads, Download{
				URL:         fontURL,
				File:        filename,
				Bytes:       len(result.Body),
				ContentType: result.ContentType,
			})
		}

		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return nil, &StylesheetError{
				Path:    path,
				Message: "failed to write stylesheet",
				Cause:   err,
			}
		}
		emitProgress(&opts, "rewrite", name)

		report.Stylesheets = append(report.Stylesheets, StylesheetResult{
			Name:     name,
			FontURLs: len(urls),
		})
	}

	return report, nil
}
