package goquery

import (
	"net/url"
	"strings"
)

// resolveURL resolves href against base and returns the absolute URL.
// Returns false if href cannot be parsed or does not resolve to an
// absolute URL.
func resolveURL(base *url.URL, href string) (string, bool) {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return "", false
	}
	resolved := base.ResolveReference(ref)
	if !resolved.IsAbs() {
		return "", false
	}
	return resolved.String(), true
}

// isHTTPURL reports whether the absolute URL s uses http or https.
func isHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// hasScheme reports whether href starts with the given scheme (including
// the trailing colon), ignoring case and leading whitespace.
func hasScheme(href, scheme string) bool {
	href = strings.TrimSpace(href)
	return len(href) >= len(scheme) && strings.EqualFold(href[:len(scheme)], scheme)
}
