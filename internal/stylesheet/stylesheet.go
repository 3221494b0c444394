// Package stylesheet provides font URL extraction and rewriting for CSS text.
// It uses plain text pattern matching, not a CSS parser: only absolute HTTPS
// URLs with a .ttf suffix inside url(...) are recognized, and anything else
// is left untouched.
package stylesheet

import (
	"regexp"
	"strings"
)

// fontURLPattern matches url(https://...ttf). The character class stops the
// URL at the first closing parenthesis, so multiple declarations on a single
// line are matched independently.
var fontURLPattern = regexp.MustCompile(`url\((https://[^)]+\.ttf)\)`)

// ExtractFontURLs returns every font URL embedded in the stylesheet text, in
// order of occurrence. Duplicates are preserved; callers decide whether a
// repeated URL is downloaded again.
func ExtractFontURLs(text string) []string {
	matches := fontURLPattern.FindAllStringSubmatch(text, -1)
	urls := make([]string, 0, len(matches))
	for _, m := range matches {
		urls = append(urls, m[1])
	}
	return urls
}

// Filename returns the final path segment of a font URL, used as the local
// file name for the downloaded font.
func Filename(rawURL string) string {
	return rawURL[strings.LastIndex(rawURL, "/")+1:]
}

// Rewrite replaces every occurrence of the literal URL in the stylesheet text
// with the local reference. Replacement is plain substring substitution, so a
// matched URL that is a substring of another matched URL would also be
// rewritten inside the longer one.
func Rewrite(text, rawURL, local string) string {
	return strings.ReplaceAll(text, rawURL, local)
}
