// Package pathname provides the string scanning used to derive output
// artifact paths and symbol core names from an input file path.
//
// All functions operate on validated-length strings: a path longer than
// MaxLen (including room for a terminating byte in the eventual C token) is
// rejected up front rather than scanned with bounded counters.
package pathname

import (
	"errors"
	"fmt"
	"os"
)

// MaxLen is the maximum supported path length, including room for one
// terminating byte. The bound is inherited from the original converter's
// 16-bit string arithmetic; real file systems reject far shorter paths, so
// this is a graceful-failure limit, not a working assumption.
const MaxLen = 65535

// Separator is the platform path delimiter.
const Separator = os.PathSeparator

// ErrPathTooLong is returned when a path, or a path derived from one, would
// exceed MaxLen.
var ErrPathTooLong = errors.New("path exceeds the maximum supported length")

// Validate checks that path fits the MaxLen bound.
func Validate(path string) error {
	if len(path)+1 > MaxLen {
		return fmt.Errorf("input path: %w", ErrPathTooLong)
	}
	return nil
}

// BaseName returns the suffix of path that follows the last Separator, or
// the whole path when no separator is present. A path consisting only of a
// separator has an empty base name.
func BaseName(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == Separator {
			return path[i+1:]
		}
	}
	return path
}

// SplitExt splits path into a stem and an extension. The extension boundary
// is the last '.' that occurs after the last Separator. A '.' that starts
// the base name marks a hidden file, not an extension, so ".bin" has stem
// ".bin" and no extension. ok reports whether an extension was found; the
// returned extension excludes the '.'.
func SplitExt(path string) (stem, ext string, ok bool) {
	for i := len(path) - 1; i >= 0; i-- {
		switch path[i] {
		case Separator:
			return path, "", false
		case '.':
			if i == 0 || path[i-1] == Separator {
				// Leading dot: hidden-file name, keep it in the stem.
				return path, "", false
			}
			return path[:i], path[i+1:], true
		}
	}
	return path, "", false
}

// ReplaceExt returns path with its extension replaced by newExt (which is
// supplied without the '.'). When path has no extension, newExt is appended.
// The result must fit the MaxLen bound; the check subtracts each fragment
// from a remaining budget so it cannot overflow.
func ReplaceExt(path, newExt string) (string, error) {
	stem, _, _ := SplitExt(path)

	budget := MaxLen - 1
	for _, fragment := range []string{stem, ".", newExt} {
		if len(fragment) > budget {
			return "", fmt.Errorf("replace extension: %w", ErrPathTooLong)
		}
		budget -= len(fragment)
	}

	return stem + "." + newExt, nil
}
