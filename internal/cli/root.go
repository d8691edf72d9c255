// Package cli wires the conversion pipeline to its command-line surface.
// Both converter programs are built here: bin2h, the Local-only variant,
// and bin2c, which adds the -g option for Global scope. Argument errors
// print the full usage text; every other failure prints one diagnostic line
// per failing phase, and the exit status is the sole machine-readable
// failure signal.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bin2c/bin2c/internal/config"
	"github.com/bin2c/bin2c/internal/ui"
	"github.com/bin2c/bin2c/version"
)

// Variant selects which of the two converter programs a binary presents.
type Variant int

const (
	// Bin2H is the Local-only converter: one static-scope header artifact.
	Bin2H Variant = iota

	// Bin2C supports both scopes; the -g option selects Global scope and
	// supplies the length-macro suffix.
	Bin2C
)

// name returns the program name for the variant.
func (v Variant) name() string {
	if v == Bin2H {
		return "bin2h"
	}
	return "bin2c"
}

// prologue is the first line of the usage text: program purpose and version.
func (v Variant) prologue() string {
	if v == Bin2H {
		return fmt.Sprintf("Binary file to C header file converter (bin2h), version %s.", version.Version)
	}
	return fmt.Sprintf("Binary file to C language file converter (bin2c), version %s.", version.Version)
}

// usageLine follows IBM-style conventions: verbatim parts are undecorated,
// mandatory parts are in chevrons, optional parts are in brackets.
func (v Variant) usageLine() string {
	if v == Bin2H {
		return "bin2h <input_file> [-p <array_prefix>] [-s <array_suffix>]"
	}
	return "bin2c <input_file> [-p <array_prefix>] [-s <array_suffix>] [-g <length_suffix>]"
}

// options collects the flag values for one invocation.
type options struct {
	prefix       string
	suffix       string
	lengthSuffix string
	configPath   string

	// globalScope records whether -g was present, which is what selects
	// Global scope; the flag's value may legitimately be empty.
	globalScope bool
}

// runError marks failures that happened after argument validation. They get
// ERROR diagnostics instead of usage text, one line per failing phase.
type runError struct {
	errs []error
}

func (e *runError) Error() string {
	parts := make([]string, 0, len(e.errs))
	for _, err := range e.errs {
		parts = append(parts, err.Error())
	}
	return strings.Join(parts, "; ")
}

// New builds the cobra command for the given program variant.
func New(v Variant) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   v.usageLine(),
		Short: "Convert a binary file into a C array definition",
		Long: v.prologue() + "\n\n" +
			"This program extracts data in unaltered binary form from the given input file\n" +
			"and outputs that data as an array of unsigned characters (\"unsigned char\n" +
			"const\", specifically) into C language file(s). The output file(s) take the\n" +
			"input file's path and name with the extension replaced.",
		Args:                  cobra.ExactArgs(1),
		DisableFlagsInUseLine: true,
		SilenceUsage:          true,
		SilenceErrors:         true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.globalScope = v == Bin2C && cmd.Flags().Changed("global")
			return run(v, args[0], opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.prefix, "prefix", "p", "", "prepend array_prefix to the name of the array")
	f.StringVarP(&opts.suffix, "suffix", "s", "", "append array_suffix to the name of the array")
	if v == Bin2C {
		f.StringVarP(&opts.lengthSuffix, "global", "g", "",
			"give the name global scope and create both header and source files; the\ncapitalized prefix, name, and length_suffix form the length macro")
	}
	f.StringVar(&opts.configPath, "config", config.DefaultPath, "path to the optional configuration file")

	return cmd
}

// Execute runs the given program variant against os.Args and returns the
// process exit code.
func Execute(v Variant) int {
	cmd := New(v)

	args := normalizeShorthands(os.Args[1:])
	if err := rejectDuplicates(args, cmd.Flags()); err != nil {
		printArgumentError(cmd, v, err)
		return 1
	}
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		var rerr *runError
		if errors.As(err, &rerr) {
			for _, phaseErr := range rerr.errs {
				ui.PrintError(phaseErr)
			}
			return 1
		}
		printArgumentError(cmd, v, err)
		return 1
	}
	return 0
}

// printArgumentError reports a malformed command line: the diagnostic plus
// the full usage text, all on the error stream.
func printArgumentError(cmd *cobra.Command, v Variant, err error) {
	fmt.Fprintf(os.Stderr, "\n%s\n\n", v.prologue())
	fmt.Fprintf(os.Stderr, "%v\n\n", err)
	fmt.Fprint(os.Stderr, cmd.UsageString())
}
