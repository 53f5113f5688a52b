package answer

import "github.com/naghz/naghz/internal/content"

// Result is the outcome of validating one submission.
type Result struct {
	Correct  bool
	User     Selection
	Expected content.CorrectAnswer
}

// Validate checks a learner selection against the expected answer using
// the semantics of the given test type:
//
//	Default    — the single chosen id equals the expected id
//	Multiple   — set equality, order-independent
//	Sequential — elementwise equality, order-sensitive
//	Pluggable  — canonicalized pair lists are equal
//	Input      — exact string equality, no normalization
//
// A selection or expectation whose shape does not match the test type
// validates as incorrect.
func Validate(t content.TestType, user Selection, expected content.CorrectAnswer) Result {
	res := Result{User: user, Expected: expected}
	if user.Type != t {
		return res
	}

	switch t {
	case content.TestDefault:
		want := expectedSingle(expected)
		res.Correct = want != 0 && user.Single == want

	case content.TestMultiple:
		res.Correct = setEqual(user.Set, expected.IDs)

	case content.TestSequential:
		res.Correct = listEqual(user.Ordered, expected.IDs)

	case content.TestPluggable:
		want := canonicalize(expected.Pairs)
		res.Correct = pairsEqual(user.CompletedPairs(), want)

	case content.TestInput:
		res.Correct = user.Text != "" && user.Text == expected.Text
	}
	return res
}

// expectedSingle normalizes a Default expectation to one id: the Single
// field when set, otherwise the first list element. Authoring tools
// sometimes persist single answers as one-element arrays.
func expectedSingle(a content.CorrectAnswer) int {
	if a.Single != 0 {
		return a.Single
	}
	if len(a.IDs) > 0 {
		return a.IDs[0]
	}
	return 0
}

func setEqual(got, want []int) bool {
	if len(want) == 0 || len(got) != len(want) {
		return false
	}
	have := make(map[int]int, len(got))
	for _, id := range got {
		have[id]++
	}
	for _, id := range want {
		if have[id] == 0 {
			return false
		}
		have[id]--
	}
	return true
}

func listEqual(got, want []int) bool {
	if len(got) != len(want) || len(want) == 0 {
		return false
	}
	for i := range want {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

// canonicalize brings an expected pair list to the same canonical form
// CompletedPairs produces: (min, max) per pair, sorted ascending.
func canonicalize(pairs [][2]int) [][2]int {
	out := make([][2]int, len(pairs))
	for i, p := range pairs {
		out[i] = orderPair(p[0], p[1])
	}
	sortPairs(out)
	return out
}

func pairsEqual(got, want [][2]int) bool {
	if len(got) != len(want) || len(want) == 0 {
		return false
	}
	for i := range want {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
