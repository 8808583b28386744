package difflib

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/mattn/go-runewidth"
)

// SplitLines splits s on "\n" while preserving the terminators. The last
// element always ends with "\n", so "foo" becomes ["foo\n"]. The output can
// be used as input for Differ, UnifiedDiff and ContextDiff.
func SplitLines(s string) []string {
	lines := strings.SplitAfter(s, "\n")
	lines[len(lines)-1] += "\n"
	return lines
}

// SplitLinesBytes is SplitLines for byte slices.
func SplitLinesBytes(b []byte) [][]byte {
	parts := bytes.SplitAfter(b, []byte{'\n'})
	parts[len(parts)-1] = append(parts[len(parts)-1], '\n')
	return parts
}

// splitRunes splits s into one string per rune. Invalid UTF-8 bytes are
// kept as they are, one element per byte, so distinct bad bytes do not
// compare equal.
func splitRunes(s string) []string {
	out := make([]string, 0, len(s))
	for len(s) > 0 {
		_, size := utf8.DecodeRuneInString(s)
		out = append(out, s[:size])
		s = s[size:]
	}
	return out
}

// splitGraphemes splits s into user-perceived characters (extended grapheme
// clusters, UAX #29).
func splitGraphemes(s string) []string {
	out := make([]string, 0, len(s))
	iter := graphemes.FromString(s)
	for iter.Next() {
		out = append(out, iter.Value())
	}
	return out
}

// widthCondition measures terminal columns the same way regardless of the
// process locale.
var widthCondition = newWidthCondition()

func newWidthCondition() *runewidth.Condition {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false
	cond.StrictEmojiNeutral = true
	return cond
}

// displayWidth is the number of terminal columns s occupies, at least 1 so
// that every element keeps a visible marker.
func displayWidth(s string) int {
	return max(1, widthCondition.StringWidth(s))
}

func countLeading(line string, ch byte) int {
	i := 0
	for i < len(line) && line[i] == ch {
		i++
	}
	return i
}
