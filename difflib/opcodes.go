package difflib

import "slices"

// GetOpCodes returns the list of OpCodes describing how to turn a into b.
//
// The first OpCode has I1 == J1 == 0, and remaining OpCodes have I1 == the
// I2 of the OpCode preceding it, and likewise for J1 == the previous J2. The
// last OpCode ends at len(a) and len(b).
//
// The result is computed once per pair of sequences; each call returns a
// fresh copy.
func (m *SequenceMatcher[T]) GetOpCodes() []OpCode {
	if m.opCodes == nil {
		m.opCodes = m.buildOpCodes()
	}
	return slices.Clone(m.opCodes)
}

func (m *SequenceMatcher[T]) buildOpCodes() []OpCode {
	if m.matchingBlocks == nil {
		m.matchingBlocks = m.matchBlocks()
	}
	i, j := 0, 0
	opCodes := make([]OpCode, 0, 2*len(m.matchingBlocks))
	for _, b := range m.matchingBlocks {
		// a[:i] and b[:j] are covered; a[i:ai] vs b[j:bj] is the gap
		// before this block.
		ai, bj, size := b.A, b.B, b.Size
		var tag Tag
		switch {
		case i < ai && j < bj:
			tag = TagReplace
		case i < ai:
			tag = TagDelete
		case j < bj:
			tag = TagInsert
		}
		if tag != 0 {
			opCodes = append(opCodes, OpCode{tag, i, ai, j, bj})
		}
		i, j = ai+size, bj+size
		// the list of matching blocks is terminated by a
		// sentinel with size 0
		if size > 0 {
			opCodes = append(opCodes, OpCode{TagEqual, ai, i, bj, j})
		}
	}
	return opCodes
}

// GetGroupedOpCodes isolates change clusters by eliminating ranges with no
// changes.
//
// It returns groups (hunks) with up to n elements of context on each side.
// Each group is in the same format as returned by GetOpCodes. A negative n
// means the default of 3. No group consists only of unchanged content; if a
// and b are equal the result is empty.
func (m *SequenceMatcher[T]) GetGroupedOpCodes(n int) [][]OpCode {
	if n < 0 {
		n = 3
	}
	codes := m.GetOpCodes()
	if len(codes) == 0 {
		codes = []OpCode{{TagEqual, 0, 1, 0, 1}}
	}
	// Fixup leading and trailing groups if they show no changes.
	if codes[0].Tag == TagEqual {
		c := codes[0]
		codes[0] = OpCode{c.Tag, max(c.I1, c.I2-n), c.I2, max(c.J1, c.J2-n), c.J2}
	}
	if last := len(codes) - 1; codes[last].Tag == TagEqual {
		c := codes[last]
		codes[last] = OpCode{c.Tag, c.I1, min(c.I2, c.I1+n), c.J1, min(c.J2, c.J1+n)}
	}
	nn := n + n
	groups := [][]OpCode{}
	group := []OpCode{}
	for _, c := range codes {
		i1, i2, j1, j2 := c.I1, c.I2, c.J1, c.J2
		// End the current group and start a new one whenever
		// there is a large range with no changes.
		if c.Tag == TagEqual && i2-i1 > nn {
			group = append(group, OpCode{c.Tag, i1, min(i2, i1+n), j1, min(j2, j1+n)})
			groups = append(groups, group)
			group = []OpCode{}
			i1, j1 = max(i1, i2-n), max(j1, j2-n)
		}
		group = append(group, OpCode{c.Tag, i1, i2, j1, j2})
	}
	if len(group) > 0 && !(len(group) == 1 && group[0].Tag == TagEqual) {
		groups = append(groups, group)
	}
	return groups
}
