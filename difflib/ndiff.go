package difflib

import (
	"fmt"
	"strings"
)

// NDiff compares a and b (lists of lines) and returns a Differ-style delta,
// with IsCharacterJunk as the character junk filter and no line junk.
func NDiff(a, b []string) []string {
	d := Differ{CharJunk: IsCharacterJunk}
	return d.CompareLines(a, b)
}

// Restore returns one of the two sequences that generated a delta produced
// by Differ or NDiff: a for which == 1, b for which == 2. Guide lines
// ("? ") are ignored.
//
// It returns an error wrapping ErrInvalidArgument if which is not 1 or 2.
func Restore(delta []string, which int) ([]string, error) {
	var tag string
	switch which {
	case 1:
		tag = "- "
	case 2:
		tag = "+ "
	default:
		return nil, fmt.Errorf("unknown delta choice (must be 1 or 2): %d: %w", which, ErrInvalidArgument)
	}
	var out []string
	for _, line := range delta {
		if strings.HasPrefix(line, "  ") || strings.HasPrefix(line, tag) {
			out = append(out, line[2:])
		}
	}
	return out, nil
}
