// Package discovery extracts stylesheet references from HTML pages so the
// localizer can be pointed at the stylesheets a page actually uses.
package discovery

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractError represents a failure in extracting stylesheet links from HTML.
type ExtractError struct {
	Message string
	Cause   error
}

func (e *ExtractError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("stylesheet extraction error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("stylesheet extraction error: %s", e.Message)
}

func (e *ExtractError) Unwrap() error {
	return e.Cause
}

// Links holds the stylesheet references found in an HTML document, split by
// whether the href points into the local filesystem or at a remote host.
type Links struct {
	Local  []string
	Remote []string
}

// StylesheetLinks extracts the href of every <link rel="stylesheet"> element
// in the HTML content. Hrefs with a scheme and host are reported as remote;
// everything else is a local path. Order of appearance is preserved and
// duplicates are removed.
func StylesheetLinks(htmlContent string) (*Links, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, &ExtractError{
			Message: "failed to parse HTML",
			Cause:   err,
		}
	}

	seen := make(map[string]bool)
	links := &Links{}

	doc.Find(`link[rel="stylesheet"]`).Each(func(_ int, s *goquery.Selection) {
		href, exists := s.Attr("href")
		if !exists || href == "" {
			return
		}
		if seen[href] {
			return
		}
		seen[href] = true

		hrefURL, err := url.Parse(href)
		if err != nil {
			// Skip malformed hrefs
			return
		}
		if hrefURL.Scheme != "" && hrefURL.Host != "" {
			links.Remote = append(links.Remote, href)
			return
		}
		links.Local = append(links.Local, href)
	})

	return links, nil
}
