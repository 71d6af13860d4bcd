package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
)

const tabPadding = 2

// headingColor is used for section titles on terminals.
func headingColor() lipgloss.Color { return lipgloss.Color("39") }

// mutedColor is used for footnotes on terminals.
func mutedColor() lipgloss.Color { return lipgloss.Color("246") }

// styled reports whether w is a terminal that should receive ANSI styling.
func styled(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}

// heading renders a section title, bold and coloured on terminals.
func heading(w io.Writer, title string) string {
	if !styled(w) {
		return title
	}
	return lipgloss.NewStyle().Bold(true).Foreground(headingColor()).Render(title)
}

// muted renders secondary text, dimmed on terminals.
func muted(w io.Writer, text string) string {
	if !styled(w) {
		return text
	}
	return lipgloss.NewStyle().Italic(true).Foreground(mutedColor()).Render(text)
}

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
}

// renderJSON writes v as indented JSON.
func renderJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}
