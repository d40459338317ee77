// Package sequence implements a Ratcliff/Obershelp sequence matcher over
// runes. Given two strings it finds the set of non-overlapping matching
// blocks obtainable by repeatedly taking the longest contiguous common
// substring, and derives a similarity ratio from the total matched length:
//
//	ratio = 2 * matched / (len(a) + len(b))
//
// Every rune is treated as significant; there is no junk filtering or
// popularity heuristic. For identical inputs the ratio is 1.0, for inputs
// with no runes in common it is 0.0.
package sequence

import "sort"

// Match describes a contiguous matching block: a[A:A+Size] == b[B:B+Size].
type Match struct {
	A    int
	B    int
	Size int
}

// Matcher compares two rune sequences. The zero value is not usable;
// construct with NewMatcher. A Matcher is cheap to create and intended to
// be used for a single pair of texts.
type Matcher struct {
	a, b []rune

	// b2j maps each rune of b to the ascending list of its positions.
	b2j map[rune][]int

	blocks []Match
}

// NewMatcher creates a matcher for the given pair of strings.
func NewMatcher(a, b string) *Matcher {
	m := &Matcher{
		a: []rune(a),
		b: []rune(b),
	}
	m.b2j = make(map[rune][]int, len(m.b))
	for j, r := range m.b {
		m.b2j[r] = append(m.b2j[r], j)
	}
	return m
}

// findLongestMatch finds the longest matching block within a[alo:ahi] and
// b[blo:bhi]. Among blocks of equal length it returns the one starting
// earliest in a, and among those the one starting earliest in b, so the
// result is deterministic.
//
// The search walks a once and extends run lengths through b's position
// lists, which is near-linear for ordinary text and O(n*m) only when one
// rune dominates both inputs.
func (m *Matcher) findLongestMatch(alo, ahi, blo, bhi int) Match {
	besti, bestj, bestsize := alo, blo, 0

	// j2len[j] is the length of the common run ending at a[i-1], b[j].
	j2len := map[int]int{}
	for i := alo; i < ahi; i++ {
		newj2len := make(map[int]int, len(j2len)+1)
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
		j2len = newj2len
	}

	return Match{A: besti, B: bestj, Size: bestsize}
}

// MatchingBlocks returns the list of matching blocks, ordered by position.
// Blocks are non-overlapping and monotonically increasing in both A and B.
// The computation is iterative with an explicit work stack; the divide
// around each longest match mirrors the recursive definition exactly.
func (m *Matcher) MatchingBlocks() []Match {
	if m.blocks != nil {
		return m.blocks
	}

	type span struct {
		alo, ahi, blo, bhi int
	}

	stack := []span{{0, len(m.a), 0, len(m.b)}}
	matched := []Match{}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		best := m.findLongestMatch(s.alo, s.ahi, s.blo, s.bhi)
		if best.Size == 0 {
			continue
		}
		matched = append(matched, best)
		if s.alo < best.A && s.blo < best.B {
			stack = append(stack, span{s.alo, best.A, s.blo, best.B})
		}
		if best.A+best.Size < s.ahi && best.B+best.Size < s.bhi {
			stack = append(stack, span{best.A + best.Size, s.ahi, best.B + best.Size, s.bhi})
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].A != matched[j].A {
			return matched[i].A < matched[j].A
		}
		return matched[i].B < matched[j].B
	})

	// Coalesce adjacent blocks so callers see maximal runs.
	merged := make([]Match, 0, len(matched))
	for _, bl := range matched {
		n := len(merged)
		if n > 0 && merged[n-1].A+merged[n-1].Size == bl.A && merged[n-1].B+merged[n-1].Size == bl.B {
			merged[n-1].Size += bl.Size
			continue
		}
		merged = append(merged, bl)
	}

	m.blocks = merged
	return m.blocks
}

// TotalMatched returns the total number of runes covered by matching blocks.
func (m *Matcher) TotalMatched() int {
	total := 0
	for _, bl := range m.MatchingBlocks() {
		total += bl.Size
	}
	return total
}

// Ratio returns the similarity ratio in [0, 1]. Two empty sequences are
// considered identical and yield 1.0.
func (m *Matcher) Ratio() float64 {
	return calculateRatio(m.TotalMatched(), len(m.a)+len(m.b))
}

// Lengths returns the rune lengths of the two compared sequences.
func (m *Matcher) Lengths() (int, int) {
	return len(m.a), len(m.b)
}

func calculateRatio(matched, length int) float64 {
	if length == 0 {
		return 1.0
	}
	return 2.0 * float64(matched) / float64(length)
}

// Ratio is a convenience wrapper that compares two strings directly.
func Ratio(a, b string) float64 {
	return NewMatcher(a, b).Ratio()
}
