package validate

import (
	"strconv"
	"strings"
)

// Q normalizes a free-text search query: trims and caps length. An empty
// result means "match everything", so there is no failure case here.
func Q(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// IntOrDefault parses a numeric query parameter. Empty input yields the
// default; anything non-numeric fails.
func IntOrDefault(s string, def int) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, true
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
