package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

const panelWidth = 72

// errorPanel prints a bordered, red error panel to stderr, in the style the
// rest of the survey tooling uses for precondition failures.
func errorPanel(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	border := color.New(color.FgRed)

	top := "╭─ Error " + strings.Repeat("─", panelWidth-9) + "╮"
	bottom := "╰" + strings.Repeat("─", panelWidth-2) + "╯"

	border.Fprintln(os.Stderr, top)
	for _, line := range wrapText(msg, panelWidth-4) {
		pad := panelWidth - 4 - len([]rune(line))
		if pad < 0 {
			pad = 0
		}
		border.Fprint(os.Stderr, "│ ")
		fmt.Fprint(os.Stderr, line)
		fmt.Fprint(os.Stderr, strings.Repeat(" ", pad))
		border.Fprintln(os.Stderr, " │")
	}
	border.Fprintln(os.Stderr, bottom)
}

func wrapText(msg string, width int) []string {
	var lines []string
	for _, paragraph := range strings.Split(msg, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if len([]rune(line))+1+len([]rune(w)) > width {
				lines = append(lines, line)
				line = w
				continue
			}
			line += " " + w
		}
		lines = append(lines, line)
	}
	return lines
}
