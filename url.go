package notefetch

import "strings"

// DefaultScheme is prepended to URLs that arrive without one.
const DefaultScheme = "https://"

// NormalizeURL ensures raw is a scheme-qualified URL before any network
// access. URLs already starting with http:// or https:// are returned
// unchanged; anything else gets DefaultScheme prepended exactly once.
// Returns EINVALID if raw is empty.
func NormalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", Errorf(EINVALID, "url required")
	}
	if HasHTTPScheme(raw) {
		return raw, nil
	}
	return DefaultScheme + raw, nil
}

// HasHTTPScheme reports whether s starts with http:// or https://,
// ignoring case.
func HasHTTPScheme(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
