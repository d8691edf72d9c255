package main

import (
	"os"

	"github.com/bin2c/bin2c/internal/cli"
)

// main is the entry point of the bin2h converter, the Local-only variant.
func main() {
	os.Exit(cli.Execute(cli.Bin2H))
}
