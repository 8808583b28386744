package difflib

import (
	"strings"
	"unicode/utf8"
)

// IsLineJunk reports whether a line is ignorable: blank or containing only a
// single '#', possibly surrounded by whitespace.
func IsLineJunk(line string) bool {
	t := strings.TrimSpace(line)
	return t == "" || t == "#"
}

// IsCharacterJunk reports whether a rune is ignorable: a space or a tab.
func IsCharacterJunk(r rune) bool {
	return r == ' ' || r == '\t'
}

// elementJunk adapts a rune classifier to the string elements used for
// intraline matching. Only single-rune elements can be junk.
func elementJunk(charJunk func(rune) bool) func(string) bool {
	if charJunk == nil {
		return nil
	}
	return func(s string) bool {
		r, size := utf8.DecodeRuneInString(s)
		return size == len(s) && charJunk(r)
	}
}
