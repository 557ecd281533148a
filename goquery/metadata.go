package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/notefetch"
)

// ExtractMetadata reads page metadata from well-known tags. It performs no
// network access and does not modify doc.
//
//   - title: first <title> element's text
//   - description: meta[name=description], then meta[property=og:description]
//   - image: meta[property=og:image]
//
// Missing or empty values fall through to the next candidate and finally to "".
func ExtractMetadata(doc *goquery.Document) notefetch.PageMetadata {
	return notefetch.PageMetadata{
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
		Description: firstContent(doc,
			`meta[name="description"]`,
			`meta[property="og:description"]`,
		),
		ImageURL: firstContent(doc, `meta[property="og:image"]`),
	}
}

// firstContent returns the content attribute of the first element matching
// each selector in turn, skipping empty values.
func firstContent(doc *goquery.Document, selectors ...string) string {
	for _, selector := range selectors {
		content, ok := doc.Find(selector).First().Attr("content")
		if !ok {
			continue
		}
		if content = strings.TrimSpace(content); content != "" {
			return content
		}
	}
	return ""
}
