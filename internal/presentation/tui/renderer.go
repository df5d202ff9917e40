package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// The style follows the terminal background.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return func(markdown string) (string, error) {
			return markdown, nil
		}
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// Panel formats a titled block of "Key: value" lines as markdown.
// The keys keep their order.
func Panel(title string, rows [][2]string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s\n\n", title)
	for _, row := range rows {
		fmt.Fprintf(&sb, "- **%s:** `%s`\n", row[0], row[1])
	}
	return sb.String()
}

// PlainPanel is Panel without markdown, for pipes and logs.
func PlainPanel(title string, rows [][2]string) string {
	var sb strings.Builder
	sb.WriteString(title + "\n")
	sb.WriteString(strings.Repeat("-", len(title)) + "\n")
	for _, row := range rows {
		fmt.Fprintf(&sb, "%s: %s\n", row[0], row[1])
	}
	return sb.String()
}
