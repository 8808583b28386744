package difflib

import (
	"cmp"
	"log/slog"
	"slices"
)

// SequenceMatcher compares two sequences of any comparable element type.
// The basic algorithm predates, and is a little fancier than, an algorithm
// published in the late 1980's by Ratcliff and Obershelp under the
// hyperbolic name "gestalt pattern matching". The basic idea is to find
// the longest contiguous matching subsequence that contains no "junk"
// elements (R-O doesn't address junk). The same idea is then applied
// recursively to the pieces of the sequences to the left and to the right
// of the matching subsequence. This does not yield minimal edit
// sequences, but does tend to yield matches that "look right" to people.
//
// SequenceMatcher tries to compute a "human-friendly diff" between two
// sequences. Unlike e.g. UNIX(tm) diff, the fundamental notion is the
// longest *contiguous* & junk-free matching subsequence. That's what
// catches peoples' eyes.
//
// Junk and popularity are computed from b only, so Ratio is not symmetric:
// comparing a to b and b to a can score differently.
//
// A SequenceMatcher caches derived results for its current sequences and is
// not safe for concurrent use. Callers must serialize SetSeq1/SetSeq2/SetSeqs
// against any other call on the same matcher.
//
// Timing: SequenceMatcher is quadratic time for the worst case and has
// expected-case behavior dependent in a complicated way on how many
// elements the sequences have in common; best case time is linear.
type SequenceMatcher[T comparable] struct {
	a              []T
	b              []T
	b2j            map[T][]int
	isJunk         func(T) bool
	autoJunk       bool
	bJunk          map[T]struct{}
	bPopular       map[T]struct{}
	fullBCount     map[T]int
	matchingBlocks []Match
	opCodes        []OpCode
	logger         *slog.Logger
}

// NewMatcher returns a matcher for a and b with no junk and the automatic
// popularity heuristic enabled.
func NewMatcher[T comparable](a, b []T) *SequenceMatcher[T] {
	m := SequenceMatcher[T]{autoJunk: true}
	m.SetSeqs(a, b)
	return &m
}

// NewMatcherWithJunk returns a matcher for a and b. isJunk, if non-nil,
// reports whether an element of b is junk. autoJunk enables the heuristic
// that treats elements appearing in more than 1% (+1) of a b of length 200
// or more as junk.
func NewMatcherWithJunk[T comparable](a, b []T, autoJunk bool, isJunk func(T) bool) *SequenceMatcher[T] {
	m := SequenceMatcher[T]{isJunk: isJunk, autoJunk: autoJunk}
	m.SetSeqs(a, b)
	return &m
}

// SetLogger attaches a logger that receives debug records about index
// rebuilds and block decomposition. A nil logger disables logging.
func (m *SequenceMatcher[T]) SetLogger(logger *slog.Logger) {
	m.logger = logger
}

// SetSeqs sets both sequences to be compared.
func (m *SequenceMatcher[T]) SetSeqs(a, b []T) {
	m.SetSeq1(a)
	m.SetSeq2(b)
}

// SetSeq1 sets the first sequence to be compared. The second sequence to be
// compared is not changed.
//
// SequenceMatcher computes and caches detailed information about the second
// sequence, so if you want to compare one sequence S against many sequences,
// use SetSeq2(S) once and call SetSeq1(x) repeatedly for each of the other
// sequences.
func (m *SequenceMatcher[T]) SetSeq1(a []T) {
	m.a = a
	m.matchingBlocks = nil
	m.opCodes = nil
}

// SetSeq2 sets the second sequence to be compared and rebuilds its index.
// The first sequence to be compared is not changed.
func (m *SequenceMatcher[T]) SetSeq2(b []T) {
	m.b = b
	m.matchingBlocks = nil
	m.opCodes = nil
	m.fullBCount = nil
	m.chainB()
}

func (m *SequenceMatcher[T]) chainB() {
	// Populate element -> index mapping
	b2j := map[T][]int{}
	for i, s := range m.b {
		b2j[s] = append(b2j[s], i)
	}

	// Purge junk elements
	m.bJunk = map[T]struct{}{}
	if m.isJunk != nil {
		for s := range b2j {
			if m.isJunk(s) {
				m.bJunk[s] = struct{}{}
			}
		}
		for s := range m.bJunk {
			delete(b2j, s)
		}
	}

	// Purge remaining popular elements
	popular := map[T]struct{}{}
	n := len(m.b)
	if m.autoJunk && n >= 200 {
		ntest := n/100 + 1
		for s, indices := range b2j {
			if len(indices) > ntest {
				popular[s] = struct{}{}
			}
		}
		for s := range popular {
			delete(b2j, s)
		}
	}
	m.bPopular = popular
	m.b2j = b2j

	if m.logger != nil {
		m.logger.Debug("difflib: indexed b", "len", n, "junk", len(m.bJunk), "popular", len(popular))
	}
}

func (m *SequenceMatcher[T]) isBJunk(s T) bool {
	_, ok := m.bJunk[s]
	return ok
}

// FindLongestMatch finds the longest matching block in a[alo:ahi] and
// b[blo:bhi].
//
// With no junk, it returns (i,j,k) such that a[i:i+k] is equal to b[j:j+k],
// where
//
//	alo <= i <= i+k <= ahi
//	blo <= j <= j+k <= bhi
//
// and for all (i',j',k') meeting those conditions,
//
//	k >= k'
//	i <= i'
//	and if i == i', j <= j'
//
// In other words, of all maximal matching blocks, return one that starts
// earliest in a, and of all those maximal matching blocks that start
// earliest in a, return the one that starts earliest in b.
//
// With junk, the longest block is first determined as above with the
// additional restriction that no junk or popular element appears in it.
// That block, or the empty block at (alo, blo) if there is none, is then
// extended as far as possible by matching non-junk elements on both sides.
// This is how runs of popular elements get matched. Only a block of
// non-zero size is further extended over matching junk, so junk alone
// never starts a match.
//
// If no blocks match, it returns Match{alo, ahi, 0}. Callers only look at
// Size in that case.
//
// The ranges must lie within the current sequences; that is not checked.
func (m *SequenceMatcher[T]) FindLongestMatch(alo, ahi, blo, bhi int) Match {
	// No prefix or suffix stripping: for ab vs acab it would find "a"
	// instead of "ab".
	besti, bestj, bestsize := alo, blo, 0

	// j2len[j] is the length of the longest junk-free match ending with
	// a[i-1] and b[j]. Junk and popular elements have no b2j entry.
	j2len, newj2len := map[int]int{}, map[int]int{}
	for i := alo; i < ahi; i++ {
		for _, j := range m.b2j[m.a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len, newj2len = newj2len, j2len
		clear(newj2len)
	}

	// Popular elements are not junk but are missing from b2j.
	for besti > alo && bestj > blo && !m.isBJunk(m.b[bestj-1]) &&
		m.a[besti-1] == m.b[bestj-1] {
		besti, bestj, bestsize = besti-1, bestj-1, bestsize+1
	}
	for besti+bestsize < ahi && bestj+bestsize < bhi &&
		!m.isBJunk(m.b[bestj+bestsize]) &&
		m.a[besti+bestsize] == m.b[bestj+bestsize] {
		bestsize++
	}
	if bestsize == 0 {
		return Match{A: alo, B: ahi, Size: 0}
	}

	// Attach adjacent identical junk.
	for besti > alo && bestj > blo && m.isBJunk(m.b[bestj-1]) &&
		m.a[besti-1] == m.b[bestj-1] {
		besti, bestj, bestsize = besti-1, bestj-1, bestsize+1
	}
	for besti+bestsize < ahi && bestj+bestsize < bhi &&
		m.isBJunk(m.b[bestj+bestsize]) &&
		m.a[besti+bestsize] == m.b[bestj+bestsize] {
		bestsize++
	}

	return Match{A: besti, B: bestj, Size: bestsize}
}

// matchTask is a pending sub-range pair for GetMatchingBlocks.
type matchTask struct {
	alo, ahi, blo, bhi int
}

// GetMatchingBlocks returns the list of matching blocks.
//
// Each block is of the form (i, j, n), and means that a[i:i+n] == b[j:j+n].
// The blocks are monotonically increasing in i and in j. It's also
// guaranteed that if (i, j, n) and (i', j', n') are adjacent blocks in the
// list, and the second is not the last block in the list, then i+n != i' or
// j+n != j'. IOW, adjacent blocks never describe adjacent equal blocks.
//
// The last block is a dummy, (len(a), len(b), 0), and is the only block with
// n==0.
//
// The result is computed once per pair of sequences; each call returns a
// fresh copy.
func (m *SequenceMatcher[T]) GetMatchingBlocks() []Match {
	if m.matchingBlocks == nil {
		m.matchingBlocks = m.matchBlocks()
	}
	return slices.Clone(m.matchingBlocks)
}

func (m *SequenceMatcher[T]) matchBlocks() []Match {
	la, lb := len(m.a), len(m.b)

	// An explicit stack instead of recursion keeps the depth bounded on
	// long sequences that barely match.
	queue := []matchTask{{0, la, 0, lb}}
	var matched []Match
	tasks := 0
	for len(queue) > 0 {
		t := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		tasks++

		match := m.FindLongestMatch(t.alo, t.ahi, t.blo, t.bhi)
		i, j, k := match.A, match.B, match.Size
		if k == 0 {
			continue
		}
		matched = append(matched, match)
		if t.alo < i && t.blo < j {
			queue = append(queue, matchTask{t.alo, i, t.blo, j})
		}
		if i+k < t.ahi && j+k < t.bhi {
			queue = append(queue, matchTask{i + k, t.ahi, j + k, t.bhi})
		}
	}
	slices.SortFunc(matched, func(x, y Match) int {
		if c := cmp.Compare(x.A, y.A); c != 0 {
			return c
		}
		return cmp.Compare(x.B, y.B)
	})

	// Blocks found on either side of a junk split can touch; merge them.
	nonAdjacent := make([]Match, 0, len(matched)+1)
	var cur Match
	for _, b := range matched {
		if cur.A+cur.Size == b.A && cur.B+cur.Size == b.B {
			cur.Size += b.Size
			continue
		}
		if cur.Size > 0 {
			nonAdjacent = append(nonAdjacent, cur)
		}
		cur = b
	}
	if cur.Size > 0 {
		nonAdjacent = append(nonAdjacent, cur)
	}
	nonAdjacent = append(nonAdjacent, Match{la, lb, 0})

	if m.logger != nil {
		m.logger.Debug("difflib: matching blocks", "blocks", len(nonAdjacent)-1, "tasks", tasks)
	}
	return nonAdjacent
}

// Ratio returns a measure of the sequences' similarity (float in [0,1]).
//
// Where T is the total number of elements in both sequences, and M is the
// number of matches, this is 2.0*M / T. Note that this is 1 if the
// sequences are identical, and 0 if they have nothing in common. Two empty
// sequences have a ratio of 1.
//
// Ratio is expensive to compute if you haven't already computed
// GetMatchingBlocks or GetOpCodes, in which case you may want to try
// QuickRatio or RealQuickRatio first to get an upper bound.
func (m *SequenceMatcher[T]) Ratio() float64 {
	if m.matchingBlocks == nil {
		m.matchingBlocks = m.matchBlocks()
	}
	matches := 0
	for _, b := range m.matchingBlocks {
		matches += b.Size
	}
	return calculateRatio(matches, len(m.a)+len(m.b))
}

// QuickRatio returns an upper bound on Ratio relatively quickly.
func (m *SequenceMatcher[T]) QuickRatio() float64 {
	// viewing a and b as multisets, set matches to the cardinality
	// of their intersection; this counts the number of matches
	// without regard to order, so is clearly an upper bound
	if m.fullBCount == nil {
		m.fullBCount = make(map[T]int, len(m.b))
		for _, s := range m.b {
			m.fullBCount[s]++
		}
	}

	// avail[x] is the number of times x appears in 'b' less the
	// number of times we've seen it in 'a' so far ... kinda
	avail := map[T]int{}
	matches := 0
	for _, s := range m.a {
		n, ok := avail[s]
		if !ok {
			n = m.fullBCount[s]
		}
		avail[s] = n - 1
		if n > 0 {
			matches++
		}
	}
	return calculateRatio(matches, len(m.a)+len(m.b))
}

// RealQuickRatio returns an upper bound on Ratio very quickly.
func (m *SequenceMatcher[T]) RealQuickRatio() float64 {
	la, lb := len(m.a), len(m.b)
	return calculateRatio(min(la, lb), la+lb)
}
