package ui

import (
	"fmt"
	"os"
)

var (
	// ANSI Colors
	ColorReset = "\033[0m"
	ColorRed   = "\033[31m"
	ColorGreen = "\033[32m"
)

func PrintSuccess(label, detail string) {
	fmt.Printf("  %s✔%s %-12s %s%s\n", ColorGreen, ColorReset, label, ColorGreen, detail+ColorReset)
}

// PrintError writes a single diagnostic line to the error stream. The exit
// status, not this text, is the machine-readable failure signal.
func PrintError(err error) {
	fmt.Fprintf(os.Stderr, "%sERROR:%s %v\n", ColorRed, ColorReset, err)
}
