package difflib

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// UnifiedDiff holds the parameters of a unified diff.
type UnifiedDiff struct {
	A        []string // First sequence lines
	FromFile string   // First file name
	FromDate string   // First file time
	B        []string // Second sequence lines
	ToFile   string   // Second file name
	ToDate   string   // Second file time
	Eol      string   // Headers end of line, defaults to LF
	Context  int      // Number of context lines, negative for the default of 3
}

// ContextDiff holds the parameters of a context diff.
type ContextDiff UnifiedDiff

// errWriter remembers the first write error so formatting code can write
// unconditionally.
type errWriter struct {
	w   *bufio.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err == nil {
		_, ew.err = fmt.Fprintf(ew.w, format, args...)
	}
}

func (ew *errWriter) write(s string) {
	if ew.err == nil {
		_, ew.err = ew.w.WriteString(s)
	}
}

func (ew *errWriter) flush() error {
	if ew.err != nil {
		return ew.err
	}
	return ew.w.Flush()
}

func fileHeader(name, date string) string {
	if date != "" {
		return name + "\t" + date
	}
	return name
}

// formatRangeUnified converts a range to the "ed" format used by unified
// diffs.
func formatRangeUnified(start, stop int) string {
	// POSIX diff format, http://www.unix.org/single_unix_specification/
	beginning := start + 1 // lines start numbering with one
	length := stop - start
	if length == 1 {
		return fmt.Sprintf("%d", beginning)
	}
	if length == 0 {
		beginning-- // empty ranges begin at line just before the range
	}
	return fmt.Sprintf("%d,%d", beginning, length)
}

// WriteUnifiedDiff compares two sequences of lines and writes the delta as a
// unified diff.
//
// Unified diffs are a compact way of showing line changes and a few lines of
// context. The number of context lines is set by diff.Context.
//
// The control lines (those with ---, +++, or @@) end with diff.Eol. The
// lines themselves are written as they are, so inputs should keep their
// terminators (see SplitLines). The header with file names and dates is only
// written if at least one file name is set, and nothing at all is written
// if the sequences are equal.
func WriteUnifiedDiff(writer io.Writer, diff UnifiedDiff) error {
	ew := &errWriter{w: bufio.NewWriter(writer)}
	if diff.Eol == "" {
		diff.Eol = "\n"
	}

	m := NewMatcher(diff.A, diff.B)
	for gi, g := range m.GetGroupedOpCodes(diff.Context) {
		if gi == 0 && (diff.FromFile != "" || diff.ToFile != "") {
			ew.printf("--- %s%s", fileHeader(diff.FromFile, diff.FromDate), diff.Eol)
			ew.printf("+++ %s%s", fileHeader(diff.ToFile, diff.ToDate), diff.Eol)
		}
		first, last := g[0], g[len(g)-1]
		range1 := formatRangeUnified(first.I1, last.I2)
		range2 := formatRangeUnified(first.J1, last.J2)
		ew.printf("@@ -%s +%s @@%s", range1, range2, diff.Eol)
		for _, c := range g {
			if c.Tag == TagEqual {
				for _, line := range diff.A[c.I1:c.I2] {
					ew.write(" " + line)
				}
				continue
			}
			if c.Tag == TagReplace || c.Tag == TagDelete {
				for _, line := range diff.A[c.I1:c.I2] {
					ew.write("-" + line)
				}
			}
			if c.Tag == TagReplace || c.Tag == TagInsert {
				for _, line := range diff.B[c.J1:c.J2] {
					ew.write("+" + line)
				}
			}
		}
	}
	return ew.flush()
}

// GetUnifiedDiffString is like WriteUnifiedDiff but returns the diff as a
// string.
func GetUnifiedDiffString(diff UnifiedDiff) (string, error) {
	w := &bytes.Buffer{}
	err := WriteUnifiedDiff(w, diff)
	return w.String(), err
}

// formatRangeContext converts a range to the "ed" format used by context
// diffs.
func formatRangeContext(start, stop int) string {
	// POSIX diff format, http://www.unix.org/single_unix_specification/
	beginning := start + 1 // lines start numbering with one
	length := stop - start
	if length == 0 {
		beginning-- // empty ranges begin at line just before the range
	}
	if length <= 1 {
		return fmt.Sprintf("%d", beginning)
	}
	return fmt.Sprintf("%d,%d", beginning, beginning+length-1)
}

var contextPrefix = map[Tag]string{
	TagInsert:  "+ ",
	TagDelete:  "- ",
	TagReplace: "! ",
	TagEqual:   "  ",
}

// WriteContextDiff compares two sequences of lines and writes the delta as a
// context diff.
//
// Context diffs are a compact way of showing line changes and a few lines of
// context. The number of context lines is set by diff.Context. Headers and
// line terminators are handled as in WriteUnifiedDiff.
func WriteContextDiff(writer io.Writer, diff ContextDiff) error {
	ew := &errWriter{w: bufio.NewWriter(writer)}
	if diff.Eol == "" {
		diff.Eol = "\n"
	}

	m := NewMatcher(diff.A, diff.B)
	for gi, g := range m.GetGroupedOpCodes(diff.Context) {
		if gi == 0 && (diff.FromFile != "" || diff.ToFile != "") {
			ew.printf("*** %s%s", fileHeader(diff.FromFile, diff.FromDate), diff.Eol)
			ew.printf("--- %s%s", fileHeader(diff.ToFile, diff.ToDate), diff.Eol)
		}

		first, last := g[0], g[len(g)-1]
		ew.write("***************" + diff.Eol)

		ew.printf("*** %s ****%s", formatRangeContext(first.I1, last.I2), diff.Eol)
		if hasTag(g, TagReplace, TagDelete) {
			for _, c := range g {
				if c.Tag == TagInsert {
					continue
				}
				for _, line := range diff.A[c.I1:c.I2] {
					ew.write(contextPrefix[c.Tag] + line)
				}
			}
		}

		ew.printf("--- %s ----%s", formatRangeContext(first.J1, last.J2), diff.Eol)
		if hasTag(g, TagReplace, TagInsert) {
			for _, c := range g {
				if c.Tag == TagDelete {
					continue
				}
				for _, line := range diff.B[c.J1:c.J2] {
					ew.write(contextPrefix[c.Tag] + line)
				}
			}
		}
	}
	return ew.flush()
}

func hasTag(group []OpCode, tags ...Tag) bool {
	for _, c := range group {
		for _, t := range tags {
			if c.Tag == t {
				return true
			}
		}
	}
	return false
}

// GetContextDiffString is like WriteContextDiff but returns the diff as a
// string.
func GetContextDiffString(diff ContextDiff) (string, error) {
	w := &bytes.Buffer{}
	err := WriteContextDiff(w, diff)
	return w.String(), err
}
