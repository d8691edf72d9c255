package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// normalizeShorthands lowercases upper-case single-letter option tokens, so
// -P, -S, and -G behave like -p, -s, and -g. The original converters accept
// their single-letter options case-insensitively; pflag does not, so the
// argument list is rewritten before parsing.
func normalizeShorthands(args []string) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		if len(arg) == 2 && arg[0] == '-' && arg[1] >= 'A' && arg[1] <= 'Z' {
			arg = strings.ToLower(arg)
		}
		out[i] = arg
	}
	return out
}

// rejectDuplicates treats a repeated option as an argument error. pflag is
// last-one-wins on repeats, so the scan happens before parsing. Tokens that
// do not resolve to a known flag are left for the parser to reject.
func rejectDuplicates(args []string, flags *pflag.FlagSet) error {
	seen := make(map[string]bool)
	for _, arg := range args {
		var fl *pflag.Flag
		switch {
		case strings.HasPrefix(arg, "--") && len(arg) > 2:
			name := strings.TrimPrefix(arg, "--")
			if i := strings.IndexByte(name, '='); i >= 0 {
				name = name[:i]
			}
			fl = flags.Lookup(name)
		case strings.HasPrefix(arg, "-") && len(arg) == 2:
			fl = flags.ShorthandLookup(arg[1:])
		}
		if fl == nil {
			continue
		}
		if seen[fl.Name] {
			return fmt.Errorf("duplicate option: %s", arg)
		}
		seen[fl.Name] = true
	}
	return nil
}
