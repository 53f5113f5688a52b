// Package answer implements the four answer-matching semantics plus
// free-text equality. Validation is pure: the same inputs always yield
// the same result, and malformed shapes degrade to "not correct"
// instead of failing.
package answer

import "github.com/naghz/naghz/internal/content"

// Selection is the tagged union of learner-answer shapes, mirroring
// content.TestType. The runtime builds one incrementally from clicks;
// Validate consumes it.
type Selection struct {
	Type content.TestType

	// Single is the chosen option id for Default. 0 means nothing chosen.
	Single int

	// Set holds the chosen ids for Multiple, in click order for display
	// purposes only; matching ignores order.
	Set []int

	// Ordered holds the chosen ids for Sequential in click order.
	Ordered []int

	// Pairs is the partial injective mapping for Pluggable. Complete
	// pairs appear in both directions (a→b and b→a).
	Pairs map[int]int

	// Text is the free-text answer for Input.
	Text string
}

// NewSelection returns an empty selection for the given test type.
func NewSelection(t content.TestType) Selection {
	s := Selection{Type: t}
	if t == content.TestPluggable {
		s.Pairs = make(map[int]int)
	}
	return s
}

// Empty reports whether the learner has selected anything at all.
func (s Selection) Empty() bool {
	switch s.Type {
	case content.TestDefault:
		return s.Single == 0
	case content.TestMultiple:
		return len(s.Set) == 0
	case content.TestSequential:
		return len(s.Ordered) == 0
	case content.TestPluggable:
		return len(s.Pairs) == 0
	case content.TestInput:
		return s.Text == ""
	}
	return true
}

// CompletedPairs returns the Pluggable pairing in canonical form: each
// pair as (min, max), the list sorted ascending. Canonicalization makes
// matching insensitive to both click direction within a pair and the
// order pairs were formed in.
func (s Selection) CompletedPairs() [][2]int {
	seen := make(map[[2]int]bool)
	var out [][2]int
	for a, b := range s.Pairs {
		p := orderPair(a, b)
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	sortPairs(out)
	return out
}

func orderPair(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

func sortPairs(pairs [][2]int) {
	// Insertion sort; pairings are tiny.
	for i := 1; i < len(pairs); i++ {
		for j := i; j > 0 && lessPair(pairs[j], pairs[j-1]); j-- {
			pairs[j], pairs[j-1] = pairs[j-1], pairs[j]
		}
	}
}

func lessPair(a, b [2]int) bool {
	if a[0] != b[0] {
		return a[0] < b[0]
	}
	return a[1] < b[1]
}
