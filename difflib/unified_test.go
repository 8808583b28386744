package difflib

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComparingEmptyLists(t *testing.T) {
	groups := NewMatcher[string](nil, nil).GetGroupedOpCodes(-1)
	assert.Empty(t, groups)

	diff := UnifiedDiff{
		FromFile: "Original",
		ToFile:   "Current",
		Context:  3,
	}
	result, err := GetUnifiedDiffString(diff)
	require.NoError(t, err)
	assert.Equal(t, "", result)

	result, err = GetContextDiffString(ContextDiff(diff))
	require.NoError(t, err)
	assert.Equal(t, "", result)
}

func TestOutputFormatRangeFormatUnified(t *testing.T) {
	// Each <range> field shall be of the form:
	//   %1d", <beginning line number>  if the range contains exactly one line,
	// and:
	//  "%1d,%1d", <beginning line number>, <number of lines> otherwise.
	// If a range is empty, its beginning line number shall be the number of
	// the line just before the range, or 0 if the empty range starts the file.
	fm := formatRangeUnified
	assert.Equal(t, "3,0", fm(3, 3))
	assert.Equal(t, "4", fm(3, 4))
	assert.Equal(t, "4,2", fm(3, 5))
	assert.Equal(t, "4,3", fm(3, 6))
	assert.Equal(t, "0,0", fm(0, 0))
}

func TestOutputFormatRangeFormatContext(t *testing.T) {
	// The range of lines in file1 shall be written in the following format
	// if the range contains two or more lines:
	//     "*** %d,%d ****\n", <beginning line number>, <ending line number>
	// and the following format otherwise:
	//     "*** %d ****\n", <ending line number>
	// The ending line number of an empty range shall be the number of the preceding line,
	// or 0 if the range is at the start of the file.
	fm := formatRangeContext
	assert.Equal(t, "3", fm(3, 3))
	assert.Equal(t, "4", fm(3, 4))
	assert.Equal(t, "4,5", fm(3, 5))
	assert.Equal(t, "4,6", fm(3, 6))
	assert.Equal(t, "0", fm(0, 0))
}

func TestOutputFormatTabDelimiter(t *testing.T) {
	diff := UnifiedDiff{
		A:        chars("one"),
		B:        chars("two"),
		FromFile: "Original",
		FromDate: "2005-01-26 23:30:50",
		ToFile:   "Current",
		ToDate:   "2010-04-12 10:20:52",
		Eol:      "\n",
	}
	ud, err := GetUnifiedDiffString(diff)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"--- Original\t2005-01-26 23:30:50\n",
		"+++ Current\t2010-04-12 10:20:52\n",
	}, SplitLines(ud)[:2])

	cd, err := GetContextDiffString(ContextDiff(diff))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"*** Original\t2005-01-26 23:30:50\n",
		"--- Current\t2010-04-12 10:20:52\n",
	}, SplitLines(cd)[:2])
}

func TestOutputFormatNoTrailingTabOnEmptyFiledate(t *testing.T) {
	diff := UnifiedDiff{
		A:        chars("one"),
		B:        chars("two"),
		FromFile: "Original",
		ToFile:   "Current",
		Eol:      "\n",
	}
	ud, err := GetUnifiedDiffString(diff)
	require.NoError(t, err)
	assert.Equal(t, []string{"--- Original\n", "+++ Current\n"}, SplitLines(ud)[:2])

	cd, err := GetContextDiffString(ContextDiff(diff))
	require.NoError(t, err)
	assert.Equal(t, []string{"*** Original\n", "--- Current\n"}, SplitLines(cd)[:2])
}

func TestOmitFilenames(t *testing.T) {
	diff := UnifiedDiff{
		A:   SplitLines("o\nn\ne\n"),
		B:   SplitLines("t\nw\no\n"),
		Eol: "\n",
	}
	ud, err := GetUnifiedDiffString(diff)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"@@ -0,0 +1,2 @@\n",
		"+t\n",
		"+w\n",
		"@@ -2,2 +3,0 @@\n",
		"-n\n",
		"-e\n",
		"\n",
	}, SplitLines(ud))

	cd, err := GetContextDiffString(ContextDiff(diff))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"***************\n",
		"*** 0 ****\n",
		"--- 1,2 ----\n",
		"+ t\n",
		"+ w\n",
		"***************\n",
		"*** 2,3 ****\n",
		"- n\n",
		"- e\n",
		"--- 3 ----\n",
		"\n",
	}, SplitLines(cd))
}

func TestContextDiffHunks(t *testing.T) {
	a := []string{"a\n", "b\n", "c\n", "d\n", "e\n", "f\n", "g\n", "h\n", "i\n", "j\n"}
	b := []string{"a\n", "b\n", "C\n", "d\n", "e\n", "f\n", "g\n", "h\n", "I\n", "j\n"}

	cd, err := GetContextDiffString(ContextDiff{A: a, B: b, FromFile: "x", ToFile: "y", Context: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"*** x\n", "--- y\n",
		"***************\n", "*** 2,4 ****\n", "  b\n", "! c\n", "  d\n",
		"--- 2,4 ----\n", "  b\n", "! C\n", "  d\n",
		"***************\n", "*** 8,10 ****\n", "  h\n", "! i\n", "  j\n",
		"--- 8,10 ----\n", "  h\n", "! I\n", "  j\n",
	}, SplitLines(cd)[:20])

	ud, err := GetUnifiedDiffString(UnifiedDiff{A: a, B: b, Context: 1})
	require.NoError(t, err)
	assert.Equal(t, "@@ -2,3 +2,3 @@\n b\n-c\n+C\n d\n@@ -8,3 +8,3 @@\n h\n-i\n+I\n j\n", ud)
}

func TestCustomEol(t *testing.T) {
	ud, err := GetUnifiedDiffString(UnifiedDiff{
		A:        []string{"a\r\n"},
		B:        []string{"b\r\n"},
		FromFile: "x",
		ToFile:   "y",
		Eol:      "\r\n",
	})
	require.NoError(t, err)
	assert.Equal(t, "--- x\r\n+++ y\r\n@@ -1 +1 @@\r\n-a\r\n+b\r\n", ud)
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestWriteErrors(t *testing.T) {
	diff := UnifiedDiff{A: SplitLines("a\nb"), B: SplitLines("a\nc"), FromFile: "x", ToFile: "y"}
	assert.ErrorIs(t, WriteUnifiedDiff(failingWriter{}, diff), errWrite)
	assert.ErrorIs(t, WriteContextDiff(failingWriter{}, ContextDiff(diff)), errWrite)
}
