package answer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/naghz/naghz/internal/content"
)

func TestValidateDefault(t *testing.T) {
	expected := content.SingleAnswer(2)

	sel := NewSelection(content.TestDefault)
	sel.Single = 2
	assert.True(t, Validate(content.TestDefault, sel, expected).Correct)

	sel.Single = 3
	assert.False(t, Validate(content.TestDefault, sel, expected).Correct)

	sel.Single = 0
	assert.False(t, Validate(content.TestDefault, sel, expected).Correct)
}

func TestValidateDefaultNormalizesListExpectation(t *testing.T) {
	// Authoring tools sometimes persist a single answer as a one-element
	// array; the first element wins.
	expected := content.CorrectAnswer{Type: content.TestDefault, IDs: []int{4, 9}}
	sel := NewSelection(content.TestDefault)
	sel.Single = 4
	assert.True(t, Validate(content.TestDefault, sel, expected).Correct)
}

func TestValidateMultipleOrderInsensitive(t *testing.T) {
	expected := content.MultipleAnswer(1, 2, 3)

	sel := NewSelection(content.TestMultiple)
	sel.Set = []int{3, 1, 2}
	assert.True(t, Validate(content.TestMultiple, sel, expected).Correct)

	sel.Set = []int{1, 2}
	assert.False(t, Validate(content.TestMultiple, sel, expected).Correct)

	sel.Set = []int{1, 2, 4}
	assert.False(t, Validate(content.TestMultiple, sel, expected).Correct)

	sel.Set = []int{1, 2, 3, 4}
	assert.False(t, Validate(content.TestMultiple, sel, expected).Correct)
}

func TestValidateSequentialOrderSensitive(t *testing.T) {
	expected := content.SequentialAnswer(1, 2)

	sel := NewSelection(content.TestSequential)
	sel.Ordered = []int{1, 2}
	assert.True(t, Validate(content.TestSequential, sel, expected).Correct)

	sel.Ordered = []int{2, 1}
	assert.False(t, Validate(content.TestSequential, sel, expected).Correct)

	sel.Ordered = []int{1}
	assert.False(t, Validate(content.TestSequential, sel, expected).Correct)
}

func TestValidatePluggableSymmetric(t *testing.T) {
	expected := content.PairAnswer([2]int{1, 2}, [2]int{3, 4})

	// Pair direction and formation order must not matter.
	sel := NewSelection(content.TestPluggable)
	sel.Pairs = map[int]int{4: 3, 3: 4, 2: 1, 1: 2}
	assert.True(t, Validate(content.TestPluggable, sel, expected).Correct)

	// Expected pairs in reversed member order still match.
	reversed := content.PairAnswer([2]int{2, 1}, [2]int{4, 3})
	assert.True(t, Validate(content.TestPluggable, sel, reversed).Correct)

	// Wrong pairing fails.
	sel.Pairs = map[int]int{1: 3, 3: 1, 2: 4, 4: 2}
	assert.False(t, Validate(content.TestPluggable, sel, expected).Correct)

	// Missing a pair fails.
	sel.Pairs = map[int]int{1: 2, 2: 1}
	assert.False(t, Validate(content.TestPluggable, sel, expected).Correct)
}

func TestValidateInputExactMatch(t *testing.T) {
	expected := content.TextAnswer("Paris")

	sel := NewSelection(content.TestInput)
	sel.Text = "Paris"
	assert.True(t, Validate(content.TestInput, sel, expected).Correct)

	// No trimming or case folding.
	sel.Text = "paris"
	assert.False(t, Validate(content.TestInput, sel, expected).Correct)
	sel.Text = " Paris"
	assert.False(t, Validate(content.TestInput, sel, expected).Correct)
	sel.Text = ""
	assert.False(t, Validate(content.TestInput, sel, expected).Correct)
}

func TestValidateIsPure(t *testing.T) {
	expected := content.MultipleAnswer(1, 2)
	sel := NewSelection(content.TestMultiple)
	sel.Set = []int{2, 1}

	first := Validate(content.TestMultiple, sel, expected)
	second := Validate(content.TestMultiple, sel, expected)
	assert.Equal(t, first.Correct, second.Correct)
	assert.Equal(t, []int{2, 1}, sel.Set, "validation must not mutate the selection")
}

func TestValidateMismatchedShape(t *testing.T) {
	// Selection tag not matching the test type degrades to incorrect.
	sel := NewSelection(content.TestMultiple)
	sel.Set = []int{2}
	res := Validate(content.TestDefault, sel, content.SingleAnswer(2))
	assert.False(t, res.Correct)

	// Empty expectation is never satisfiable.
	empty := content.CorrectAnswer{Type: content.TestMultiple}
	sel2 := NewSelection(content.TestMultiple)
	sel2.Set = nil
	assert.False(t, Validate(content.TestMultiple, sel2, empty).Correct)
}

func TestCompletedPairsCanonical(t *testing.T) {
	sel := NewSelection(content.TestPluggable)
	sel.Pairs = map[int]int{5: 2, 2: 5, 1: 4, 4: 1}
	assert.Equal(t, [][2]int{{1, 4}, {2, 5}}, sel.CompletedPairs())
}
