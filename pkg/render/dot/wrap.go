package dot

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// wrap breaks s into lines of at most width columns at word boundaries.
// Runs of whitespace collapse to one space and words longer than width
// stay whole.
func wrap(s string, width int) []string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return nil
	}

	var lines []string
	for _, line := range strings.Split(ansi.Wordwrap(s, width, ""), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
