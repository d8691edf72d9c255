// Package symbol builds the generated array identifiers and their
// macro-safe upper-cased variants from an optional prefix, a core name, and
// an optional suffix.
package symbol

import (
	"errors"
	"strings"
)

// MaxLen bounds the combined length of the three name parts, including room
// for one terminating byte. It matches the path bound; both are inherited
// from the original converter's 16-bit string arithmetic.
const MaxLen = 65535

// ErrNameTooLong is returned when the combined parts would exceed MaxLen.
var ErrNameTooLong = errors.New("symbol name exceeds the maximum supported length")

// Build concatenates prefix, core, and suffix in order, skipping absent
// parts. No case transform is applied.
func Build(prefix, core, suffix string) (string, error) {
	if err := checkBudget(prefix, core, suffix); err != nil {
		return "", err
	}
	return prefix + core + suffix, nil
}

// Macro concatenates prefix, core, and suffix and maps every byte through
// an ASCII-only uppercase transform. Bytes outside 'a'..'z' pass through
// unmodified, so non-ASCII input survives byte for byte.
func Macro(prefix, core, suffix string) (string, error) {
	if err := checkBudget(prefix, core, suffix); err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(prefix) + len(core) + len(suffix))
	for _, part := range []string{prefix, core, suffix} {
		upperize(&b, part)
	}
	return b.String(), nil
}

// upperize appends part to b with ASCII lowercase letters capitalized.
// strings.ToUpper is unsuitable here: it folds non-ASCII runes, while this
// transform must leave every byte outside 'a'..'z' untouched.
func upperize(b *strings.Builder, part string) {
	for i := 0; i < len(part); i++ {
		c := part[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		b.WriteByte(c)
	}
}

// checkBudget verifies the parts fit MaxLen with room for one terminating
// byte. Each fragment is subtracted from a remaining budget rather than
// summed, so the check cannot overflow for any input.
func checkBudget(parts ...string) error {
	budget := MaxLen - 1
	for _, p := range parts {
		if len(p) > budget {
			return ErrNameTooLong
		}
		budget -= len(p)
	}
	return nil
}
