// Package localize orchestrates the font localization run: it scans
// stylesheets for remote font URLs, downloads each font next to the
// stylesheet, and rewrites the stylesheet to reference the local copy.
package localize

import "fmt"

// StylesheetError represents a failure reading or writing a stylesheet file.
type StylesheetError struct {
	Path    string
	Message string
	Cause   error
}

func (e *StylesheetError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("stylesheet error for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("stylesheet error for %s: %s", e.Path, e.Message)
}

func (e *StylesheetError) Unwrap() error {
	return e.Cause
}

// DownloadError represents a failure downloading a font or saving it to disk.
type DownloadError struct {
	Stylesheet string
	URL        string
	Message    string
	Cause      error
}

func (e *DownloadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("download error for %s (referenced by %s): %s: %v", e.URL, e.Stylesheet, e.Message, e.Cause)
	}
	return fmt.Sprintf("download error for %s (referenced by %s): %s", e.URL, e.Stylesheet, e.Message)
}

func (e *DownloadError) Unwrap() error {
	return e.Cause
}
