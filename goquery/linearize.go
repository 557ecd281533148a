package goquery

import (
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/notefetch"
	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"
)

// DefaultProbeConcurrency caps the number of image probes in flight for a
// single page.
const DefaultProbeConcurrency = 8

// contentRootSelectors are tried in order; the first match is the content root.
var contentRootSelectors = []string{"main", "article", "#content", ".content"}

// Linearizer turns the main content region of a parsed page into an ordered
// list of content blocks.
type Linearizer struct {
	prober      notefetch.Prober
	distiller   notefetch.Distiller
	concurrency int
}

// Option configures a Linearizer.
type Option func(*Linearizer)

// WithProbeConcurrency sets how many image probes may run at once.
// Defaults to DefaultProbeConcurrency (8); values below 1 are ignored.
func WithProbeConcurrency(n int) Option {
	return func(l *Linearizer) {
		if n > 0 {
			l.concurrency = n
		}
	}
}

// WithDistiller sets a Distiller whose output replaces <body> as the content
// root when a page has no semantic content container.
func WithDistiller(d notefetch.Distiller) Option {
	return func(l *Linearizer) {
		l.distiller = d
	}
}

// NewLinearizer creates a Linearizer that validates images with prober.
func NewLinearizer(prober notefetch.Prober, opts ...Option) *Linearizer {
	l := &Linearizer{
		prober:      prober,
		concurrency: DefaultProbeConcurrency,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// slot is a position in the output. Image slots carry the URL that must be
// probed before the block is kept.
type slot struct {
	block notefetch.ContentBlock
	probe string
}

// Linearize walks the content root of doc once, depth first, and returns the
// blocks it classifies in document order. rawHTML and base are used for the
// distiller fallback and for resolving relative references. The document is
// not modified.
func (l *Linearizer) Linearize(ctx context.Context, doc *goquery.Document, rawHTML string, base *url.URL) []notefetch.ContentBlock {
	root := l.contentRoot(doc, rawHTML, base)

	var slots []slot
	for _, n := range root.Nodes {
		slots = l.walk(n, base, slots)
	}

	reachable := l.probeAll(ctx, slots)

	blocks := make([]notefetch.ContentBlock, 0, len(slots))
	for _, s := range slots {
		if s.probe != "" && !reachable[s.probe] {
			continue
		}
		blocks = append(blocks, s.block)
	}
	return blocks
}

// contentRoot selects the first semantic content container, falling back to
// the distilled content if a distiller is configured, and to <body> otherwise.
func (l *Linearizer) contentRoot(doc *goquery.Document, rawHTML string, base *url.URL) *goquery.Selection {
	for _, selector := range contentRootSelectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			return sel
		}
	}

	if l.distiller != nil {
		if sel, ok := l.distilledRoot(rawHTML, base); ok {
			return sel
		}
	}

	return doc.Find("body").First()
}

func (l *Linearizer) distilledRoot(rawHTML string, base *url.URL) (*goquery.Selection, bool) {
	result, err := l.distiller.Distill(rawHTML, base.String())
	if err != nil || strings.TrimSpace(result.ContentHTML) == "" {
		return nil, false
	}
	distilled, err := Parse(result.ContentHTML)
	if err != nil {
		return nil, false
	}
	return distilled.Find("body").First(), true
}

// walk classifies n, appends its slot if it yields a block, and recurses
// into its element children in document order.
func (l *Linearizer) walk(n *html.Node, base *url.URL, slots []slot) []slot {
	if n.Type != html.ElementNode || isSkipped(n) {
		return slots
	}

	if s, ok := classify(n, base); ok {
		slots = append(slots, s)
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		slots = l.walk(c, base, slots)
	}
	return slots
}

// classify maps a single element onto its output slot.
func classify(n *html.Node, base *url.URL) (slot, bool) {
	switch n.Data {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		text := strings.TrimSpace(textContent(n))
		if text == "" {
			return slot{}, false
		}
		return slot{block: notefetch.Heading{Level: int(n.Data[1] - '0'), Text: text}}, true

	case "p":
		text := strings.TrimSpace(textContent(n))
		if text == "" {
			return slot{}, false
		}
		return slot{block: notefetch.Paragraph{Text: text}}, true

	case "img":
		return classifyImage(n, base)

	case "a":
		return classifyAnchor(n, base)
	}
	return slot{}, false
}

func classifyImage(n *html.Node, base *url.URL) (slot, bool) {
	src, _ := attr(n, "src")
	if strings.TrimSpace(src) == "" || hasScheme(src, "data:") {
		return slot{}, false
	}
	resolved, ok := resolveURL(base, src)
	if !ok || !isHTTPURL(resolved) {
		return slot{}, false
	}
	alt, _ := attr(n, "alt")
	return slot{
		block: notefetch.Image{Src: resolved, Alt: strings.TrimSpace(alt)},
		probe: resolved,
	}, true
}

func classifyAnchor(n *html.Node, base *url.URL) (slot, bool) {
	href, _ := attr(n, "href")
	href = strings.TrimSpace(href)
	if href == "" {
		return slot{}, false
	}
	text := strings.TrimSpace(textContent(n))

	if hasScheme(href, "mailto:") {
		address := strings.TrimSpace(href[len("mailto:"):])
		if address == "" {
			return slot{}, false
		}
		if text == "" {
			text = address
		}
		return slot{block: notefetch.Email{Text: text, Href: "mailto:" + address}}, true
	}

	if hasScheme(href, "javascript:") {
		return slot{}, false
	}

	resolved, ok := resolveURL(base, href)
	if !ok {
		return slot{}, false
	}

	return slot{block: notefetch.Link{
		Text:         text,
		Href:         resolved,
		PreviewImage: previewImage(n),
	}}, true
}

// previewImage returns the raw src of the first image nested in n.
func previewImage(n *html.Node) *string {
	var found *string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil && found == nil; c = c.NextSibling {
			if isSkipped(c) {
				continue
			}
			if c.Type == html.ElementNode && c.Data == "img" {
				if src, ok := attr(c, "src"); ok && strings.TrimSpace(src) != "" {
					src = strings.TrimSpace(src)
					found = &src
					return
				}
			}
			walk(c)
		}
	}
	walk(n)
	return found
}

// probeAll probes each distinct image URL once, with bounded concurrency.
// Results are indexed by URL so the caller can keep positional order.
func (l *Linearizer) probeAll(ctx context.Context, slots []slot) map[string]bool {
	var urls []string
	seen := make(map[string]bool)
	for _, s := range slots {
		if s.probe == "" || seen[s.probe] {
			continue
		}
		seen[s.probe] = true
		urls = append(urls, s.probe)
	}
	if len(urls) == 0 || l.prober == nil {
		return map[string]bool{}
	}

	results := make([]bool, len(urls))

	var g errgroup.Group
	g.SetLimit(l.concurrency)
	for i, u := range urls {
		g.Go(func() error {
			results[i] = l.prober.Probe(ctx, u)
			return nil
		})
	}
	_ = g.Wait()

	reachable := make(map[string]bool, len(urls))
	for i, u := range urls {
		reachable[u] = results[i]
	}
	return reachable
}
