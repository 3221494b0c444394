package localize

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Download records one fetched font.
type Download struct {
	URL         string `json:"url"`
	File        string `json:"file"`
	Bytes       int    `json:"bytes"`
	ContentType string `json:"content_type,omitempty"`
}

// StylesheetResult records one processed stylesheet.
type StylesheetResult struct {
	Name     string `json:"name"`
	FontURLs int    `json:"font_urls"`
}

// Report summarizes a localization run.
type Report struct {
	RunID       string             `json:"run_id"`
	GeneratedAt time.Time          `json:"generated_at"`
	Stylesheets []StylesheetResult `json:"stylesheets"`
	Downloads   []Download         `json:"downloads"`
}

// WriteManifest writes the report as indented JSON to the given path.
func WriteManifest(report *Report, path string) error {
	manifestJSON, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal manifest to JSON: %w", err)
	}
	if err := os.WriteFile(path, manifestJSON, 0644); err != nil {
		return fmt.Errorf("failed to write manifest file %s: %w", path, err)
	}
	return nil
}
