package difflib

import (
	"iter"
	"log/slog"
	"slices"
	"strings"
)

// Differ produces human-readable deltas from sequences of lines of text.
//
// Each line of a delta begins with a two-letter code:
//
//	"- " line unique to sequence a
//	"+ " line unique to sequence b
//	"  " line common to both sequences
//	"? " line not present in either input sequence
//
// Lines beginning with "? " guide the eye to intraline differences; they are
// produced for the most similar pair of lines in a replaced block.
//
// The zero value compares with no junk at all. A Differ is safe for
// concurrent use as long as its fields are not modified.
type Differ struct {
	// LineJunk reports whether a line is junk for the line-level matcher.
	LineJunk func(string) bool

	// CharJunk reports whether a character is junk for intraline matching.
	CharJunk func(rune) bool

	// Graphemes makes intraline matching and marking work on grapheme
	// clusters instead of runes.
	Graphemes bool

	// DisplayWidth repeats each "? " marker once per terminal column of the
	// element it marks, so markers stay under wide characters.
	DisplayWidth bool

	// Logger, if set, receives debug records about synch point selection.
	Logger *slog.Logger
}

// NewDiffer returns a Differ using the given line and character junk
// classifiers. Either may be nil, meaning nothing is junk.
func NewDiffer(lineJunk func(string) bool, charJunk func(rune) bool) *Differ {
	return &Differ{LineJunk: lineJunk, CharJunk: charJunk}
}

// Compare compares two sequences of lines and returns the delta. Lines
// should keep their own line terminators (see SplitLines).
//
// The delta is computed lazily while it is ranged over. Each call returns an
// independent sequence, and breaking out of the loop stops the work.
func (d *Differ) Compare(a, b []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		m := NewMatcherWithJunk(a, b, true, d.LineJunk)
		m.SetLogger(d.Logger)
		for _, op := range m.GetOpCodes() {
			var ok bool
			switch op.Tag {
			case TagReplace:
				ok = d.fancyReplace(a, op.I1, op.I2, b, op.J1, op.J2, yield)
			case TagDelete:
				ok = dump("-", a, op.I1, op.I2, yield)
			case TagInsert:
				ok = dump("+", b, op.J1, op.J2, yield)
			case TagEqual:
				ok = dump(" ", a, op.I1, op.I2, yield)
			}
			if !ok {
				return
			}
		}
	}
}

// CompareLines is Compare with the delta collected into a slice.
func (d *Differ) CompareLines(a, b []string) []string {
	return slices.Collect(d.Compare(a, b))
}

// dump yields every line of x[lo:hi] prefixed with tag and a space. It
// reports false if the consumer stopped early.
func dump(tag string, x []string, lo, hi int, yield func(string) bool) bool {
	for i := lo; i < hi; i++ {
		if !yield(tag + " " + x[i]) {
			return false
		}
	}
	return true
}

// plainReplace dumps a[alo:ahi] as deletes and b[blo:bhi] as inserts, the
// shorter block first.
func plainReplace(a []string, alo, ahi int, b []string, blo, bhi int, yield func(string) bool) bool {
	if bhi-blo < ahi-alo {
		return dump("+", b, blo, bhi, yield) && dump("-", a, alo, ahi, yield)
	}
	return dump("-", a, alo, ahi, yield) && dump("+", b, blo, bhi, yield)
}

// replaceFrame is pending fancyReplace work: either a block a[alo:ahi] vs
// b[blo:bhi] still to be aligned, or, if synch is set, the synch pair
// a[alo] / b[blo] to be marked.
type replaceFrame struct {
	alo, ahi, blo, bhi int
	synch              bool
	identical          bool
}

// synchPoint is the pair of lines chosen to anchor a replaced block.
type synchPoint struct {
	i, j      int
	ratio     float64
	identical bool
}

// fancyReplace handles a block of lines replaced by another. It searches the
// blocks for *similar* lines; the best-matching pair (if any) is used as a
// synch point, and intraline difference marking is done on the similar
// pair. The blocks before and after the synch point are handled the same
// way. Lots of work, but often worth it.
//
// Pending blocks live on an explicit stack so that long blocks without good
// pairs do not grow the call stack.
func (d *Differ) fancyReplace(a []string, alo, ahi int, b []string, blo, bhi int, yield func(string) bool) bool {
	cruncher := NewMatcherWithJunk[string](nil, nil, true, elementJunk(d.CharJunk))
	stack := []replaceFrame{{alo: alo, ahi: ahi, blo: blo, bhi: bhi}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.synch {
			if !d.emitSynch(cruncher, a[f.alo], b[f.blo], f.identical, yield) {
				return false
			}
			continue
		}

		switch {
		case f.alo < f.ahi && f.blo < f.bhi:
		case f.alo < f.ahi:
			if !dump("-", a, f.alo, f.ahi, yield) {
				return false
			}
			continue
		case f.blo < f.bhi:
			if !dump("+", b, f.blo, f.bhi, yield) {
				return false
			}
			continue
		default:
			continue
		}

		sp, ok := d.findSynchPoint(cruncher, a, f.alo, f.ahi, b, f.blo, f.bhi)
		if !ok {
			if d.Logger != nil {
				d.Logger.Debug("difflib: plain replace", "alo", f.alo, "ahi", f.ahi, "blo", f.blo, "bhi", f.bhi)
			}
			if !plainReplace(a, f.alo, f.ahi, b, f.blo, f.bhi, yield) {
				return false
			}
			continue
		}
		if d.Logger != nil {
			d.Logger.Debug("difflib: synch point", "i", sp.i, "j", sp.j, "ratio", sp.ratio, "identical", sp.identical)
		}

		// Pushed in reverse: before, then the pair, then after.
		stack = append(stack,
			replaceFrame{alo: sp.i + 1, ahi: f.ahi, blo: sp.j + 1, bhi: f.bhi},
			replaceFrame{alo: sp.i, blo: sp.j, synch: true, identical: sp.identical},
			replaceFrame{alo: f.alo, ahi: sp.i, blo: f.blo, bhi: sp.j},
		)
	}
	return true
}

// findSynchPoint picks the pair of lines in a[alo:ahi] and b[blo:bhi] to
// synch on. A non-identical pair must score above 0.74 and at least 0.75
// to be used; failing that the first identical pair is used. It reports
// false if there is neither.
func (d *Differ) findSynchPoint(cruncher *SequenceMatcher[string], a []string, alo, ahi int, b []string, blo, bhi int) (synchPoint, bool) {
	const cutoff = 0.75
	bestRatio := 0.74
	besti, bestj := -1, -1
	eqi, eqj := -1, -1

	aChars := make([][]string, ahi-alo)
	for j := blo; j < bhi; j++ {
		bj := b[j]
		cruncher.SetSeq2(d.splitChars(bj))
		for i := alo; i < ahi; i++ {
			ai := a[i]
			if ai == bj {
				if eqi < 0 {
					eqi, eqj = i, j
				}
				continue
			}
			if aChars[i-alo] == nil {
				aChars[i-alo] = d.splitChars(ai)
			}
			cruncher.SetSeq1(aChars[i-alo])
			// computing similarity is expensive, so use the quick
			// upper bounds first
			if cruncher.RealQuickRatio() > bestRatio &&
				cruncher.QuickRatio() > bestRatio {
				if r := cruncher.Ratio(); r > bestRatio {
					bestRatio, besti, bestj = r, i, j
				}
			}
		}
	}

	if bestRatio < cutoff {
		// no non-identical "pretty close" pair
		if eqi < 0 {
			return synchPoint{}, false
		}
		return synchPoint{i: eqi, j: eqj, ratio: 1.0, identical: true}, true
	}
	// there's a close pair, so forget the identical pair (if any)
	return synchPoint{i: besti, j: bestj, ratio: bestRatio}, true
}

// emitSynch yields the synch pair: a single context line if the lines are
// identical, otherwise a '-', '?', '+', '?' quad with intraline marks.
func (d *Differ) emitSynch(cruncher *SequenceMatcher[string], aelt, belt string, identical bool, yield func(string) bool) bool {
	if identical {
		return yield("  " + aelt)
	}
	aChars, bChars := d.splitChars(aelt), d.splitChars(belt)
	cruncher.SetSeqs(aChars, bChars)
	var atags, btags strings.Builder
	for _, op := range cruncher.GetOpCodes() {
		switch op.Tag {
		case TagReplace:
			d.mark(&atags, '^', aChars[op.I1:op.I2])
			d.mark(&btags, '^', bChars[op.J1:op.J2])
		case TagDelete:
			d.mark(&atags, '-', aChars[op.I1:op.I2])
		case TagInsert:
			d.mark(&btags, '+', bChars[op.J1:op.J2])
		case TagEqual:
			d.mark(&atags, ' ', aChars[op.I1:op.I2])
			d.mark(&btags, ' ', bChars[op.J1:op.J2])
		}
	}
	for _, line := range qformat(aelt, belt, atags.String(), btags.String()) {
		if !yield(line) {
			return false
		}
	}
	return true
}

func (d *Differ) mark(sb *strings.Builder, marker byte, elems []string) {
	for _, e := range elems {
		n := 1
		if d.DisplayWidth {
			n = displayWidth(e)
		}
		for range n {
			sb.WriteByte(marker)
		}
	}
}

func (d *Differ) splitChars(line string) []string {
	if d.Graphemes {
		return splitGraphemes(line)
	}
	return splitRunes(line)
}

// qformat formats the '-', '?', '+', '?' quad for a synch pair. Leading tabs
// shared by both lines are written as tabs in the guide lines, bounded by the
// blanks each tag string has from that offset on, so the markers stay
// aligned when the output is displayed. Trailing blanks are dropped from the
// guides, and empty guides are omitted.
func qformat(aline, bline, atags, btags string) []string {
	common := min(countLeading(aline, '\t'), countLeading(bline, '\t'))
	common = min(common, countLeading(atags[min(common, len(atags)):], ' '))
	common = min(common, countLeading(btags[min(common, len(btags)):], ' '))
	atags = strings.TrimRight(atags[common:], " ")
	btags = strings.TrimRight(btags[common:], " ")

	tabs := strings.Repeat("\t", common)
	out := make([]string, 0, 4)
	out = append(out, "- "+aline)
	if atags != "" {
		out = append(out, "? "+tabs+atags+"\n")
	}
	out = append(out, "+ "+bline)
	if btags != "" {
		out = append(out, "? "+tabs+btags+"\n")
	}
	return out
}
