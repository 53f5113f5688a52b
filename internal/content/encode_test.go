package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeFlatRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		answer CorrectAnswer
		flat   []int
	}{
		{"default", SingleAnswer(2), []int{2}},
		{"default empty", CorrectAnswer{Type: TestDefault}, nil},
		{"multiple", MultipleAnswer(1, 2, 3), []int{1, 2, 3}},
		{"sequential", SequentialAnswer(3, 1, 2), []int{3, 1, 2}},
		{"pluggable", PairAnswer([2]int{1, 2}, [2]int{3, 4}), []int{1, 2, 3, 4}},
		{"input", TextAnswer("paris"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flat := EncodeFlat(tt.answer)
			assert.Equal(t, tt.flat, flat)

			back := DecodeFlat(tt.answer.Type, flat)
			assert.Equal(t, tt.answer.Type, back.Type)
			switch tt.answer.Type {
			case TestDefault:
				assert.Equal(t, tt.answer.Single, back.Single)
			case TestMultiple, TestSequential:
				assert.ElementsMatch(t, tt.answer.IDs, back.IDs)
			case TestPluggable:
				assert.Equal(t, tt.answer.Pairs, back.Pairs)
			}
		})
	}
}

func TestDecodeFlatOddPluggable(t *testing.T) {
	// A trailing odd element never yields a half pair.
	a := DecodeFlat(TestPluggable, []int{1, 2, 3})
	assert.Equal(t, [][2]int{{1, 2}}, a.Pairs)
}

func TestValidateSequence(t *testing.T) {
	ok := []Page{
		{ID: "p1", Number: 1, Length: 3},
		{ID: "p2", Number: 2, Length: 3},
		{ID: "p3", Number: 3, Length: 3},
	}
	assert.NoError(t, ValidateSequence(ok))

	gap := []Page{
		{ID: "p1", Number: 1, Length: 2},
		{ID: "p3", Number: 3, Length: 2},
	}
	assert.Error(t, ValidateSequence(gap))

	badLen := []Page{
		{ID: "p1", Number: 1, Length: 5},
	}
	assert.Error(t, ValidateSequence(badLen))

	assert.Error(t, ValidateSequence(nil))
}

func TestThreshold(t *testing.T) {
	var g *AIGrading
	assert.Equal(t, DefaultScoreThreshold, g.Threshold())
	assert.Equal(t, DefaultScoreThreshold, (&AIGrading{}).Threshold())
	assert.Equal(t, 70, (&AIGrading{ScoreThreshold: 70}).Threshold())
}
