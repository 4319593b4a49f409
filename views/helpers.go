package views

import (
	"fmt"
	"html"
	"strings"
	"time"
)

func esc(s string) string {
	return html.EscapeString(s)
}

// formatDate renders an RFC3339 timestamp as a human date; anything that
// does not parse comes back unchanged.
func formatDate(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return t.Format("January 2, 2006")
}

// JoinList formats a string sequence as a comma-separated value for form
// fields.
func JoinList(vals []string) string {
	return strings.Join(vals, ", ")
}

// paragraphs renders free text as escaped <p> blocks split on blank lines.
func paragraphs(content string) string {
	var b strings.Builder
	for _, block := range strings.Split(content, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		b.WriteString("<p>" + strings.ReplaceAll(esc(block), "\n", "<br>") + "</p>")
	}
	return b.String()
}

func readingTimeLabel(minutes int) string {
	if minutes <= 0 {
		return ""
	}
	return fmt.Sprintf("%d min read", minutes)
}
