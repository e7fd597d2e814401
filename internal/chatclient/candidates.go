package chatclient

import "strings"

// DefaultBaseURLs are the local addresses tried after the configured one.
var DefaultBaseURLs = []string{
	"http://localhost:5000",
	"http://localhost:5001",
}

// Candidates returns the ordered list of base URLs to try: configured first
// (when set), then defaults minus anything already listed. Entries are
// trimmed of whitespace and trailing slashes before comparison, and empty
// entries are dropped.
func Candidates(configured string, defaults []string) []string {
	out := make([]string, 0, len(defaults)+1)
	seen := make(map[string]bool, len(defaults)+1)

	add := func(raw string) {
		u := normalizeBaseURL(raw)
		if u == "" || seen[u] {
			return
		}
		seen[u] = true
		out = append(out, u)
	}

	add(configured)
	for _, d := range defaults {
		add(d)
	}
	return out
}

func normalizeBaseURL(s string) string {
	return strings.TrimRight(strings.TrimSpace(s), "/")
}
