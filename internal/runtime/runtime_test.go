package runtime

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naghz/naghz/internal/content"
	"github.com/naghz/naghz/internal/sequencer"
)

func quizPage(test content.TestType, ans content.CorrectAnswer) sequencer.RenderPage {
	return sequencer.RenderPage{
		Page: content.Page{
			ID: "p1", Number: 1, Length: 1,
			Type: content.PageTest, Test: test,
			Question: "q", Why: "because",
			Answer: ans,
		},
		Options: []content.Option{
			{ID: 1, Text: "alpha", Order: 1},
			{ID: 2, Text: "beta", Order: 2},
			{ID: 3, Text: "gamma", Order: 3},
			{ID: 4, Text: "delta", Order: 4},
		},
	}
}

func aiPage(tip string, low, high string) sequencer.RenderPage {
	p := quizPage(content.TestInput, content.TextAnswer(""))
	p.AI = &content.AIGrading{
		GiveFeedback:    true,
		Tip:             tip,
		LowScorePageID:  low,
		HighScorePageID: high,
	}
	return p
}

func TestDefaultSelectionAndSubmit(t *testing.T) {
	r := New(quizPage(content.TestDefault, content.SingleAnswer(2)))

	assert.False(t, r.CanSubmit())
	assert.Equal(t, SubmitRejected, r.Submit())

	r.Toggle(1)
	r.Toggle(2) // replaces
	assert.Equal(t, 2, r.Selection().Single)
	require.True(t, r.CanSubmit())

	assert.Equal(t, SubmitValidated, r.Submit())
	assert.Equal(t, PhaseFeedback, r.Phase())
	assert.Equal(t, VerdictCorrect, r.Verdict())
	assert.True(t, r.FeedbackOpen())
	assert.Equal(t, CuePositive, r.TakeCue())
	assert.Equal(t, CueNone, r.TakeCue())

	target, ok := r.Continue()
	assert.True(t, ok)
	assert.Equal(t, "", target)
}

func TestMultipleToggleRemoves(t *testing.T) {
	r := New(quizPage(content.TestMultiple, content.MultipleAnswer(1, 3)))

	r.Toggle(1)
	r.Toggle(3)
	r.Toggle(1) // toggling a selected id removes it
	assert.Equal(t, []int{3}, r.Selection().Set)

	r.Toggle(1)
	require.True(t, r.CanSubmit())
	r.Submit()
	assert.Equal(t, VerdictCorrect, r.Verdict())
}

func TestSequentialOrderMatters(t *testing.T) {
	r := New(quizPage(content.TestSequential, content.SequentialAnswer(1, 2)))

	r.Toggle(2)
	r.Toggle(1)
	r.Submit()
	assert.Equal(t, VerdictIncorrect, r.Verdict())
	assert.Equal(t, CueNegative, r.TakeCue())

	r.Retry()
	assert.Equal(t, PhaseUnanswered, r.Phase())
	assert.True(t, r.Selection().Empty())

	r.Toggle(1)
	r.Toggle(2)
	r.Submit()
	assert.Equal(t, VerdictCorrect, r.Verdict())
}

func TestPluggablePairing(t *testing.T) {
	r := New(quizPage(content.TestPluggable, content.PairAnswer([2]int{1, 2}, [2]int{3, 4})))

	// A dangling half-pair alone does not enable submission.
	r.Toggle(1)
	assert.Equal(t, 1, r.Dangling())
	assert.False(t, r.CanSubmit())

	// Second click completes the pair both ways.
	r.Toggle(2)
	assert.Equal(t, 0, r.Dangling())
	assert.Equal(t, 2, r.Selection().Pairs[1])
	assert.Equal(t, 1, r.Selection().Pairs[2])
	assert.True(t, r.CanSubmit())

	// Clicking a paired id frees both partners.
	r.Toggle(1)
	assert.Empty(t, r.Selection().Pairs)

	// Clicking the dangling id clears it.
	r.Toggle(3)
	r.Toggle(3)
	assert.Equal(t, 0, r.Dangling())

	r.Toggle(2)
	r.Toggle(1)
	r.Toggle(4)
	r.Toggle(3)
	r.Submit()
	assert.Equal(t, VerdictCorrect, r.Verdict(), "pair direction must not matter")
}

func TestSelectionChangeClosesFeedback(t *testing.T) {
	r := New(quizPage(content.TestMultiple, content.MultipleAnswer(1, 2)))

	r.Toggle(1)
	r.Submit()
	assert.True(t, r.FeedbackOpen())
	assert.Equal(t, VerdictIncorrect, r.Verdict())

	// Any selection change while feedback is open forces a resubmit.
	r.Toggle(2)
	assert.False(t, r.FeedbackOpen())
	assert.Equal(t, PhaseUnanswered, r.Phase())
	assert.Equal(t, VerdictNone, r.Verdict())
	assert.Equal(t, []int{1, 2}, r.Selection().Set, "the toggle itself still lands")
}

func TestRevealAndWhy(t *testing.T) {
	r := New(quizPage(content.TestDefault, content.SingleAnswer(2)))

	r.Toggle(1)
	r.Submit()
	require.Equal(t, VerdictIncorrect, r.Verdict())

	r.ToggleWhy() // only for correct answers
	assert.False(t, r.WhyOpen())

	r.Reveal()
	assert.True(t, r.RevealOpen())
	assert.Equal(t, "beta", r.RevealText())

	r.Retry()
	r.Toggle(2)
	r.Submit()
	r.Reveal() // only for incorrect answers
	assert.False(t, r.RevealOpen())
	r.ToggleWhy()
	assert.True(t, r.WhyOpen())
}

func TestRevealTextShapes(t *testing.T) {
	seq := New(quizPage(content.TestSequential, content.SequentialAnswer(1, 3)))
	assert.Equal(t, "alpha → gamma", seq.RevealText())

	multi := New(quizPage(content.TestMultiple, content.MultipleAnswer(2, 4)))
	assert.Equal(t, "beta, delta", multi.RevealText())

	pairs := New(quizPage(content.TestPluggable, content.PairAnswer([2]int{1, 2})))
	assert.Equal(t, "alpha — beta", pairs.RevealText())

	input := New(quizPage(content.TestInput, content.TextAnswer("Paris")))
	assert.Equal(t, "Paris", input.RevealText())

	unknown := New(quizPage(content.TestDefault, content.SingleAnswer(9)))
	assert.Equal(t, "#9", unknown.RevealText())
}

func TestSkippableAdvancesOnAnyInteraction(t *testing.T) {
	p := quizPage(content.TestDefault, content.SingleAnswer(1))
	p.Page.Type = content.PageTestSkippable
	r := New(p)

	assert.Equal(t, EventAdvance, r.Toggle(3))
	assert.True(t, r.Selection().Empty(), "skippable pages never record a selection")
}

func TestAIGradeHighScoreAdvances(t *testing.T) {
	r := New(aiPage("try again", "low-page", "high-page"))

	r.SetText("my essay answer")
	require.True(t, r.CanSubmit())
	assert.Equal(t, SubmitAwaitGrade, r.Submit())
	assert.Equal(t, PhaseEvaluating, r.Phase())
	assert.False(t, r.CanSubmit(), "no double submit while evaluating")

	ev := r.ApplyGrade("well reasoned", 85, nil)
	assert.Equal(t, EventAdvance, ev)
	assert.Equal(t, VerdictCorrect, r.Verdict())
	assert.Equal(t, CuePositive, r.TakeCue())
	assert.Equal(t, "well reasoned", r.AIFeedback())

	sc, ok := r.AIScore()
	assert.True(t, ok)
	assert.Equal(t, 85, sc)

	target, ok := r.Continue()
	assert.True(t, ok)
	assert.Equal(t, "high-page", target)
}

func TestAIGradeLowScoreShowsTip(t *testing.T) {
	r := New(aiPage("remember the rubric", "low-page", "high-page"))

	r.SetText("weak answer")
	r.Submit()

	ev := r.ApplyGrade("needs work", 25, nil)
	assert.Equal(t, EventNone, ev)
	assert.Equal(t, VerdictIncorrect, r.Verdict())
	assert.Equal(t, CueNegative, r.TakeCue())
	assert.True(t, r.TipOpen())
	assert.True(t, r.FeedbackOpen())

	// The mid band behaves like the low band today.
	r.Retry()
	r.SetText("second try")
	r.Submit()
	ev = r.ApplyGrade("closer", 45, nil)
	assert.Equal(t, EventNone, ev)
	assert.Equal(t, VerdictIncorrect, r.Verdict())
	assert.True(t, r.TipOpen())
}

func TestAIGradeFailureLeavesResubmittable(t *testing.T) {
	r := New(aiPage("", "", ""))

	r.SetText("answer")
	r.Submit()
	ev := r.ApplyGrade("", 0, errors.New("oracle down"))

	assert.Equal(t, EventNone, ev)
	assert.Equal(t, PhaseUnanswered, r.Phase())
	assert.NotEmpty(t, r.Err())
	assert.Equal(t, "answer", r.Selection().Text, "the draft answer survives")
	assert.True(t, r.CanSubmit())

	// A later successful grade clears the error.
	r.Submit()
	r.ApplyGrade("fine", 70, nil)
	assert.Empty(t, r.Err())
	assert.Equal(t, VerdictCorrect, r.Verdict())
}

func TestAIThresholdBranchBoundary(t *testing.T) {
	p := aiPage("", "L", "H")
	p.AI.ScoreThreshold = 50
	r := New(p)

	r.SetText("x")
	r.Submit()
	r.ApplyGrade("", 62, nil)
	target, _ := r.Continue()
	assert.Equal(t, "H", target)

	// Score below threshold but passing band cannot happen with the
	// default bands; a low score routes to the low page once the
	// learner moves on.
	r2 := New(p)
	r2.SetText("x")
	r2.Submit()
	r2.ApplyGrade("", 40, nil)
	_, ok := r2.Continue()
	assert.False(t, ok, "a failing verdict is not continuable")
}
