// Package goquery implements HTML parsing, metadata extraction and content
// linearization on top of github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/notefetch"
	"golang.org/x/net/html"
)

// Parse builds a document tree from raw markup. Parsing follows the HTML5
// algorithm, so malformed input is recovered rather than rejected: unbalanced
// tags are closed and a missing doctype is tolerated. Scripts are never run.
func Parse(rawHTML string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, notefetch.Errorf(notefetch.EPARSE, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// isSkipped reports whether the subtree rooted at n must be excluded from
// every traversal.
func isSkipped(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	switch n.Data {
	case "script", "style":
		return true
	}
	return false
}

// textContent returns the concatenated text below n, leaving out script and
// style subtrees.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if isSkipped(n) {
			return
		}
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// attr returns the value of the named attribute of n.
func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
