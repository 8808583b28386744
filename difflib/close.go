package difflib

import (
	"fmt"
	"slices"
)

type scoredCandidate struct {
	score float64
	idx   int
}

// bestCandidates scores every candidate against target and returns the n
// best with a ratio of at least cutoff, best first, ties in input order.
func bestCandidates[T comparable](target []T, candidates [][]T, n int, cutoff float64) ([]scoredCandidate, error) {
	if n <= 0 {
		return nil, fmt.Errorf("n must be > 0, got %d: %w", n, ErrInvalidArgument)
	}
	if cutoff < 0.0 || cutoff > 1.0 {
		return nil, fmt.Errorf("cutoff must be in [0.0, 1.0], got %v: %w", cutoff, ErrInvalidArgument)
	}

	// target is b so that its index is built once.
	m := NewMatcher(nil, target)
	var results []scoredCandidate
	for i, c := range candidates {
		m.SetSeq1(c)
		if m.RealQuickRatio() >= cutoff && m.QuickRatio() >= cutoff {
			if s := m.Ratio(); s >= cutoff {
				results = append(results, scoredCandidate{score: s, idx: i})
			}
		}
	}
	slices.SortStableFunc(results, func(x, y scoredCandidate) int {
		switch {
		case x.score > y.score:
			return -1
		case x.score < y.score:
			return 1
		}
		return 0
	})
	if len(results) > n {
		results = results[:n]
	}
	return results, nil
}

// CloseMatches returns up to n of the candidates most similar to target,
// among those whose Ratio against target is at least cutoff. The result is
// ordered by ascending similarity, so the best match is last.
//
// It returns an error wrapping ErrInvalidArgument if n <= 0 or cutoff is
// outside [0, 1].
func CloseMatches[T comparable](target []T, candidates [][]T, n int, cutoff float64) ([][]T, error) {
	best, err := bestCandidates(target, candidates, n, cutoff)
	if err != nil {
		return nil, err
	}
	out := make([][]T, len(best))
	for i, c := range best {
		out[len(best)-1-i] = candidates[c.idx]
	}
	return out, nil
}

// GetCloseMatches returns up to n of the best "good enough" matches for word
// among possibilities, comparing rune by rune. Only candidates scoring at
// least cutoff are returned, best first, with ties kept in their original
// order.
//
// It returns an error wrapping ErrInvalidArgument if n <= 0 or cutoff is
// outside [0, 1].
func GetCloseMatches(word string, possibilities []string, n int, cutoff float64) ([]string, error) {
	split := make([][]string, len(possibilities))
	for i, p := range possibilities {
		split[i] = splitRunes(p)
	}
	best, err := bestCandidates(splitRunes(word), split, n, cutoff)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(best))
	for i, c := range best {
		out[i] = possibilities[c.idx]
	}
	return out, nil
}
