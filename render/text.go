package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func textWidth(s string) int {
	return lipgloss.Width(s)
}

// wrap breaks s on spaces into lines of at most width columns
// Words longer than width are placed on their own line unbroken
func wrap(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 || width <= 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if textWidth(line)+1+textWidth(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}
