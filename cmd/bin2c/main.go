package main

import (
	"os"

	"github.com/bin2c/bin2c/internal/cli"
)

// main is the entry point of the bin2c converter, the variant supporting
// both Local and Global scope.
func main() {
	os.Exit(cli.Execute(cli.Bin2C))
}
