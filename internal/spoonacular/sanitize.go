package spoonacular

import "strings"

// Tags removed from recipe summaries
const (
	boldOpenTag    = "<b>"
	boldCloseTag   = "</b>"
	anchorOpenTag  = "<a"
	anchorCloseTag = "</a>"
)

// SanitizeSummary removes <b>, </b>, </a> and <a ...> opening tags from a summary.
// Any other markup is left as is.
func SanitizeSummary(summary string) string {
	summary = strings.ReplaceAll(summary, boldOpenTag, "")
	summary = strings.ReplaceAll(summary, boldCloseTag, "")
	summary = strings.ReplaceAll(summary, anchorCloseTag, "")
	return stripAnchorOpenTags(summary)
}

// stripAnchorOpenTags drops every "<a" that starts an anchor tag, through the closing '>'.
// An unterminated "<a" is dropped on its own.
func stripAnchorOpenTags(s string) string {
	var b strings.Builder
	for {
		idx := indexAnchorOpen(s)
		if idx < 0 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:idx])
		rest := s[idx+len(anchorOpenTag):]
		end := strings.IndexByte(rest, '>')
		if end < 0 {
			s = rest
			continue
		}
		s = rest[end+1:]
	}
}

// indexAnchorOpen finds "<a" followed by '>' or whitespace, so <abbr> or <aside> are not matched
func indexAnchorOpen(s string) int {
	offset := 0
	for {
		idx := strings.Index(s[offset:], anchorOpenTag)
		if idx < 0 {
			return -1
		}
		pos := offset + idx
		next := pos + len(anchorOpenTag)
		if next >= len(s) {
			return pos
		}
		switch s[next] {
		case '>', ' ', '\t', '\n', '\r':
			return pos
		}
		offset = next
	}
}
