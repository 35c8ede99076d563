package ui

import (
	"fmt"

	"github.com/pterm/pterm"
)

func PrintTitle(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.BgCyan, pterm.FgBlack, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	style.Printf(" %s   \n", text)
}

// PrintSeparator prints a separator line between form passes of one session.
func PrintSeparator() {
	pterm.Println(pterm.Gray("----------------------------------------"))
}
