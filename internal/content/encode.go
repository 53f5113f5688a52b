package content

// Flat encoding of correct answers for persistence. Every numeric
// answer shape round-trips through a flat []int keyed by the TestType
// tag; Input answers carry their text out of band (see the store's
// answer_text column) and encode to an empty array.

// EncodeFlat converts a CorrectAnswer to its flat integer form.
//
//	Default    → [id] (empty when unset)
//	Multiple   → the id list as-is
//	Sequential → the id list as-is
//	Pluggable  → pairs interleaved: [a1, b1, a2, b2, ...]
//	Input      → nil (text stored separately)
func EncodeFlat(a CorrectAnswer) []int {
	switch a.Type {
	case TestDefault:
		if a.Single == 0 {
			return nil
		}
		return []int{a.Single}
	case TestMultiple, TestSequential:
		out := make([]int, len(a.IDs))
		copy(out, a.IDs)
		return out
	case TestPluggable:
		out := make([]int, 0, len(a.Pairs)*2)
		for _, p := range a.Pairs {
			out = append(out, p[0], p[1])
		}
		return out
	default:
		return nil
	}
}

// DecodeFlat rebuilds a CorrectAnswer from its flat form. Pluggable
// input is consumed two elements at a time; a trailing odd element is
// dropped rather than producing a half pair.
func DecodeFlat(t TestType, flat []int) CorrectAnswer {
	a := CorrectAnswer{Type: t}
	switch t {
	case TestDefault:
		if len(flat) > 0 {
			a.Single = flat[0]
		}
	case TestMultiple, TestSequential:
		a.IDs = make([]int, len(flat))
		copy(a.IDs, flat)
	case TestPluggable:
		for i := 0; i+1 < len(flat); i += 2 {
			a.Pairs = append(a.Pairs, [2]int{flat[i], flat[i+1]})
		}
	}
	return a
}
