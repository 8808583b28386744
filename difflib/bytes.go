package difflib

import (
	"bytes"
	"io"
)

// UnifiedDiffBytes is UnifiedDiff for raw content. A and B are split into
// lines with SplitLinesBytes; nothing is decoded as UTF-8.
type UnifiedDiffBytes struct {
	A        []byte
	FromFile string
	FromDate string
	B        []byte
	ToFile   string
	ToDate   string
	Eol      []byte
	Context  int
}

// ContextDiffBytes is ContextDiff for raw content.
type ContextDiffBytes UnifiedDiffBytes

func (d UnifiedDiffBytes) lines() UnifiedDiff {
	return UnifiedDiff{
		A:        byteLines(d.A),
		FromFile: d.FromFile,
		FromDate: d.FromDate,
		B:        byteLines(d.B),
		ToFile:   d.ToFile,
		ToDate:   d.ToDate,
		Eol:      string(d.Eol),
		Context:  d.Context,
	}
}

// byteLines converts without interpreting the bytes; Go strings hold
// arbitrary bytes.
func byteLines(b []byte) []string {
	parts := SplitLinesBytes(b)
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = string(p)
	}
	return out
}

// WriteUnifiedDiffBytes writes the unified diff of diff.A and diff.B to w.
func WriteUnifiedDiffBytes(w io.Writer, diff UnifiedDiffBytes) error {
	return WriteUnifiedDiff(w, diff.lines())
}

// GetUnifiedDiffBytes is like WriteUnifiedDiffBytes but returns the diff.
func GetUnifiedDiffBytes(diff UnifiedDiffBytes) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteUnifiedDiffBytes(&buf, diff); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteContextDiffBytes writes the context diff of diff.A and diff.B to w.
func WriteContextDiffBytes(w io.Writer, diff ContextDiffBytes) error {
	return WriteContextDiff(w, ContextDiff(UnifiedDiffBytes(diff).lines()))
}

// GetContextDiffBytes is like WriteContextDiffBytes but returns the diff.
func GetContextDiffBytes(diff ContextDiffBytes) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteContextDiffBytes(&buf, diff); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
