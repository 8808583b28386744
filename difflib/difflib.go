// Package difflib compares sequences and describes how to turn one into the
// other in a way that looks right to people.
//
// The package is built around SequenceMatcher, a generic implementation of
// the Ratcliff/Obershelp "gestalt pattern matching" idea extended with a
// notion of junk: find the longest contiguous junk-free matching block, then
// apply the same idea to the pieces on either side of it. The matches are
// turned into OpCodes (equal, insert, delete, replace) and, for display,
// grouped into hunks with a bounded amount of context.
//
// On top of the matcher sit:
//
// - Differ, which compares sequences of lines and marks intraline changes
// on the most similar pair of lines in a replaced block
//
// - GetCloseMatches and CloseMatches, which rank candidates by similarity
//
// - unified and context diff writers, and SplitLines/Restore helpers
//
// This is not a minimal edit distance engine. Generated diffs are meant to be
// read, there are no guarantees they are the shortest possible.
package difflib

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned (wrapped) when a caller passes an argument
// outside its documented domain.
var ErrInvalidArgument = errors.New("invalid argument")

// Tag classifies an OpCode. The underlying values are the single letter
// codes used by the classic difflib ports.
type Tag byte

const (
	TagEqual   Tag = 'e' // a[I1:I2] == b[J1:J2]
	TagInsert  Tag = 'i' // b[J1:J2] should be inserted at a[I1:I1]; I1 == I2
	TagDelete  Tag = 'd' // a[I1:I2] should be deleted; J1 == J2
	TagReplace Tag = 'r' // a[I1:I2] should be replaced by b[J1:J2]
)

func (t Tag) String() string {
	switch t {
	case TagEqual:
		return "equal"
	case TagInsert:
		return "insert"
	case TagDelete:
		return "delete"
	case TagReplace:
		return "replace"
	}
	return fmt.Sprintf("Tag(%d)", byte(t))
}

// Byte returns the one letter code of t ('e', 'i', 'd' or 'r').
func (t Tag) Byte() byte {
	return byte(t)
}

// Match describes a matching block: a[A:A+Size] == b[B:B+Size].
type Match struct {
	A    int
	B    int
	Size int
}

// OpCode is one step of turning a into b, over the half-open ranges
// a[I1:I2] and b[J1:J2].
type OpCode struct {
	Tag Tag
	I1  int
	I2  int
	J1  int
	J2  int
}

func (o OpCode) String() string {
	return fmt.Sprintf("%s a[%d:%d] b[%d:%d]", o.Tag, o.I1, o.I2, o.J1, o.J2)
}

func calculateRatio(matches, length int) float64 {
	if length > 0 {
		return 2.0 * float64(matches) / float64(length)
	}
	return 1.0
}
