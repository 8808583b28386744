package difflib_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/codinganovel/difflib/difflib"
)

func ExampleWriteUnifiedDiff() {
	a := `one
two
three
four
fmt.Printf("%s,%T",a,b)`
	b := `zero
one
three
four`
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(a),
		B:        difflib.SplitLines(b),
		FromFile: "Original",
		FromDate: "2005-01-26 23:30:50",
		ToFile:   "Current",
		ToDate:   "2010-04-02 10:20:52",
		Context:  3,
	}
	result, _ := difflib.GetUnifiedDiffString(diff)
	fmt.Println(strings.ReplaceAll(result, "\t", " "))
	// Output:
	// --- Original 2005-01-26 23:30:50
	// +++ Current 2010-04-02 10:20:52
	// @@ -1,5 +1,4 @@
	// +zero
	//  one
	// -two
	//  three
	//  four
	// -fmt.Printf("%s,%T",a,b)
}

func ExampleWriteContextDiff() {
	a := `one
two
three
four
fmt.Printf("%s,%T",a,b)`
	b := `zero
one
tree
four`
	diff := difflib.ContextDiff{
		A:        difflib.SplitLines(a),
		B:        difflib.SplitLines(b),
		FromFile: "Original",
		ToFile:   "Current",
		Context:  3,
		Eol:      "\n",
	}
	if err := difflib.WriteContextDiff(os.Stdout, diff); err != nil {
		fmt.Println(err)
	}
	// Output:
	// *** Original
	// --- Current
	// ***************
	// *** 1,5 ****
	//   one
	// ! two
	// ! three
	//   four
	// - fmt.Printf("%s,%T",a,b)
	// --- 1,4 ----
	// + zero
	//   one
	// ! tree
	//   four
}

func ExampleGetCloseMatches() {
	matches, err := difflib.GetCloseMatches("appel", []string{"ape", "apple", "peach", "puppy"}, 3, 0.6)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(matches)
	// Output:
	// [apple ape]
}

func ExampleCloseMatches() {
	target := []int{1, 2, 3, 4, 5}
	candidates := [][]int{{1, 2, 3, 4, 6}, {9, 9, 9}, {1, 2, 3, 4, 5, 6}}
	matches, err := difflib.CloseMatches(target, candidates, 2, 0.5)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(matches)
	// Output:
	// [[1 2 3 4 6] [1 2 3 4 5 6]]
}

func ExampleNDiff() {
	a := difflib.SplitLines("one\ntwo\nthree")
	b := difflib.SplitLines("zero\none\nthree")
	fmt.Print(strings.Join(difflib.NDiff(a, b), ""))
	// Output:
	// + zero
	//   one
	// - two
	//   three
}

func ExampleDiffer_Compare() {
	d := &difflib.Differ{}
	for line := range d.Compare(difflib.SplitLines("abc"), difflib.SplitLines("axc")) {
		fmt.Print(line)
	}
	// Output:
	// - abc
	// ?  ^
	// + axc
	// ?  ^
}

func ExampleRestore() {
	delta := difflib.NDiff(difflib.SplitLines("one\ntwo"), difflib.SplitLines("one\ntoo"))
	b, err := difflib.Restore(delta, 2)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(strings.Join(b, ""))
	// Output:
	// one
	// too
}

func ExampleSequenceMatcher_GetOpCodes() {
	a, b := "qabxcd", "abycdf"
	s := difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, ""))
	for _, op := range s.GetOpCodes() {
		fmt.Printf("%7s a[%d:%d] (%s) b[%d:%d] (%s)\n", op.Tag,
			op.I1, op.I2, a[op.I1:op.I2], op.J1, op.J2, b[op.J1:op.J2])
	}
	// Output:
	//  delete a[0:1] (q) b[0:0] ()
	//   equal a[1:3] (ab) b[0:2] (ab)
	// replace a[3:4] (x) b[2:3] (y)
	//   equal a[4:6] (cd) b[3:5] (cd)
	//  insert a[6:6] () b[5:6] (f)
}

func ExampleGetUnifiedDiffBytes() {
	diff := difflib.UnifiedDiffBytes{
		A:        []byte("one\ntwo\nthree\nfour"),
		B:        []byte("zero\none\nthree\nfour"),
		FromFile: "Original",
		ToFile:   "Current",
		Context:  3,
	}
	out, err := difflib.GetUnifiedDiffBytes(diff)
	if err != nil {
		fmt.Println(err)
		return
	}
	os.Stdout.Write(out)
	// Output:
	// --- Original
	// +++ Current
	// @@ -1,4 +1,4 @@
	// +zero
	//  one
	// -two
	//  three
	//  four
}
