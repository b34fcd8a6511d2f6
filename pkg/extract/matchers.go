package extract

import (
	"regexp"
	"strings"
)

var spaceRun = regexp.MustCompile(`\s+`)

// document is the pre-split view of one OCR transcript that every matcher
// receives: the raw text, the whitespace-collapsed form, and the trimmed
// non-blank lines.
type document struct {
	raw   string
	clean string
	lines []string
}

func newDocument(text string) *document {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	return &document{
		raw:   text,
		clean: strings.TrimSpace(spaceRun.ReplaceAllString(text, " ")),
		lines: lines,
	}
}

// matcher tries one extraction strategy and returns "" when it does not apply.
type matcher func(doc *document) string

// firstMatch runs matchers in declaration order and stops on the first hit.
// The ordering is the tie-break policy between strategies, so later matchers
// never run once an earlier one has produced a value.
func firstMatch(doc *document, matchers ...matcher) string {
	for _, m := range matchers {
		if v := m(doc); v != "" {
			return v
		}
	}
	return ""
}

func containsNoiseWord(s string) bool {
	upper := strings.ToUpper(s)
	for _, nw := range noiseWords {
		if strings.Contains(upper, nw) {
			return true
		}
	}
	return false
}

func isNoiseWord(s string) bool {
	upper := strings.ToUpper(s)
	for _, nw := range noiseWords {
		if upper == nw {
			return true
		}
	}
	return false
}
