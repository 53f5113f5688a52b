// Package runtime drives a single displayed page: it accumulates the
// learner's selection in the shape the page's test type demands,
// validates submissions, and runs the AI-graded feedback flow. One
// Runtime instance lives exactly as long as its page is on screen.
package runtime

import (
	"github.com/naghz/naghz/internal/answer"
	"github.com/naghz/naghz/internal/content"
	"github.com/naghz/naghz/internal/score"
	"github.com/naghz/naghz/internal/sequencer"
)

// Phase is the page-level state: Unanswered → Evaluating →
// Feedback, with Retry looping back to Unanswered.
type Phase int

const (
	PhaseUnanswered Phase = iota
	PhaseEvaluating
	PhaseFeedback
)

// Verdict is the outcome shown in the feedback panel.
type Verdict int

const (
	VerdictNone Verdict = iota
	VerdictIncorrect
	VerdictCorrect
)

// Cue selects the audio/visual feedback accent.
type Cue int

const (
	CueNone Cue = iota
	CueNegative
	CuePositive
)

// Event tells the caller what a runtime interaction demands of the
// surrounding sequencer.
type Event int

const (
	// EventNone: nothing beyond re-rendering.
	EventNone Event = iota
	// EventAdvance: move to the next page (skippable interaction or a
	// passing AI score).
	EventAdvance
)

// SubmitAction is what Submit decided to do with the selection.
type SubmitAction int

const (
	// SubmitRejected: gating failed, nothing happened.
	SubmitRejected SubmitAction = iota
	// SubmitValidated: the answer was checked locally; feedback is open.
	SubmitValidated
	// SubmitAwaitGrade: the page is AI-graded; the caller must run the
	// grading call and hand the outcome to ApplyGrade.
	SubmitAwaitGrade
)

// gradeFailureMessage is the learner-visible error for oracle failures.
const gradeFailureMessage = "error in getting feedback/score"

// Runtime is the per-page state machine.
type Runtime struct {
	page sequencer.RenderPage

	sel      answer.Selection
	dangling int

	phase        Phase
	verdict      Verdict
	cue          Cue
	feedbackOpen bool
	result       answer.Result

	whyOpen    bool
	revealOpen bool

	aiFeedback string
	aiScore    int
	scored     bool
	tipOpen    bool
	branch     string

	errMsg string
}

// New creates a runtime for the given page.
func New(page sequencer.RenderPage) *Runtime {
	return &Runtime{
		page: page,
		sel:  answer.NewSelection(page.Test),
	}
}

// Page returns the rendered page bundle.
func (r *Runtime) Page() sequencer.RenderPage { return r.page }

// Selection returns the current learner selection.
func (r *Runtime) Selection() answer.Selection { return r.sel }

// Dangling returns the Pluggable half-pair awaiting a partner, 0 when
// none.
func (r *Runtime) Dangling() int { return r.dangling }

// Phase returns the current phase.
func (r *Runtime) Phase() Phase { return r.phase }

// Verdict returns the feedback verdict.
func (r *Runtime) Verdict() Verdict { return r.verdict }

// Cue returns the pending feedback accent.
func (r *Runtime) Cue() Cue { return r.cue }

// FeedbackOpen reports whether the feedback panel is showing.
func (r *Runtime) FeedbackOpen() bool { return r.feedbackOpen }

// WhyOpen reports whether the rationale panel is showing.
func (r *Runtime) WhyOpen() bool { return r.whyOpen }

// RevealOpen reports whether the correct answer is revealed.
func (r *Runtime) RevealOpen() bool { return r.revealOpen }

// TipOpen reports whether the remedial tip panel is showing.
func (r *Runtime) TipOpen() bool { return r.tipOpen }

// AIFeedback returns the oracle's qualitative feedback text.
func (r *Runtime) AIFeedback() string { return r.aiFeedback }

// AIScore returns the assigned score and whether one has arrived.
func (r *Runtime) AIScore() (int, bool) { return r.aiScore, r.scored }

// Err returns the learner-visible error string, empty when none.
func (r *Runtime) Err() string { return r.errMsg }

// Toggle registers a click on an option. Skippable pages advance on any
// interaction without validation; otherwise the selection mutates per
// the test type's shape, and an open feedback panel closes to force a
// resubmit.
func (r *Runtime) Toggle(optionID int) Event {
	if r.page.Type == content.PageTestSkippable {
		return EventAdvance
	}
	if r.phase == PhaseEvaluating {
		return EventNone
	}
	if r.feedbackOpen {
		r.closeFeedback()
	}

	switch r.sel.Type {
	case content.TestDefault:
		r.sel.Single = optionID

	case content.TestMultiple:
		r.sel.Set = toggleID(r.sel.Set, optionID)

	case content.TestSequential:
		r.sel.Ordered = toggleID(r.sel.Ordered, optionID)

	case content.TestPluggable:
		r.togglePair(optionID)
	}
	return EventNone
}

// togglePair implements two-click pairing. Clicking a paired id frees
// it and its partner; clicking an unpaired id completes the dangling
// half-pair when one exists, otherwise it becomes the dangling half.
func (r *Runtime) togglePair(id int) {
	if partner, ok := r.sel.Pairs[id]; ok {
		delete(r.sel.Pairs, id)
		delete(r.sel.Pairs, partner)
		return
	}
	if r.dangling == id {
		r.dangling = 0
		return
	}
	if r.dangling != 0 {
		r.sel.Pairs[r.dangling] = id
		r.sel.Pairs[id] = r.dangling
		r.dangling = 0
		return
	}
	r.dangling = id
}

// SetText replaces the free-text answer. Changing it while feedback is
// open closes the panel, same as option toggles.
func (r *Runtime) SetText(s string) {
	if r.phase == PhaseEvaluating {
		return
	}
	if r.feedbackOpen {
		r.closeFeedback()
	}
	r.sel.Text = s
}

// CanSubmit applies the per-type gating: Default needs a selection,
// Multiple and Sequential need at least one id, Pluggable needs at
// least one completed pair (a dangling half alone does not qualify),
// Input needs non-empty text.
func (r *Runtime) CanSubmit() bool {
	if r.page.Type != content.PageTest || r.phase == PhaseEvaluating {
		return false
	}
	switch r.sel.Type {
	case content.TestDefault:
		return r.sel.Single != 0
	case content.TestMultiple:
		return len(r.sel.Set) > 0
	case content.TestSequential:
		return len(r.sel.Ordered) > 0
	case content.TestPluggable:
		return len(r.sel.Pairs) > 0
	case content.TestInput:
		return r.sel.Text != ""
	}
	return false
}

// Submit evaluates the current selection. AI-graded pages hand off to
// the grader instead of validating locally.
func (r *Runtime) Submit() SubmitAction {
	if !r.CanSubmit() {
		return SubmitRejected
	}
	r.errMsg = ""

	if r.page.AIEnabled() {
		r.phase = PhaseEvaluating
		return SubmitAwaitGrade
	}

	r.result = answer.Validate(r.page.Test, r.sel, r.page.Answer)
	if r.result.Correct {
		r.verdict = VerdictCorrect
		r.cue = CuePositive
	} else {
		r.verdict = VerdictIncorrect
		r.cue = CueNegative
	}
	r.phase = PhaseFeedback
	r.feedbackOpen = true
	return SubmitValidated
}

// ApplyGrade receives the grading outcome for an AI page. Failures
// leave the page unsubmitted and resubmittable with a local error
// message; scores run the three-band tip policy and compute the branch
// override.
func (r *Runtime) ApplyGrade(feedback string, sc int, err error) Event {
	if r.phase != PhaseEvaluating {
		return EventNone
	}
	if err != nil {
		r.errMsg = gradeFailureMessage
		r.phase = PhaseUnanswered
		return EventNone
	}

	r.aiFeedback = feedback
	r.aiScore = score.Clamp(sc)
	r.scored = true

	ai := r.page.AI
	r.branch = score.NextPageID(r.aiScore, ai.LowScorePageID, ai.HighScorePageID, ai.Threshold())

	band := score.BandFor(r.aiScore)
	r.phase = PhaseFeedback
	if band.Passing() {
		r.verdict = VerdictCorrect
		r.cue = CuePositive
		return EventAdvance
	}

	r.verdict = VerdictIncorrect
	r.cue = CueNegative
	r.feedbackOpen = true
	r.tipOpen = band.ShowTip() && ai.Tip != ""
	return EventNone
}

// Retry clears the selection and returns to Unanswered.
func (r *Runtime) Retry() {
	r.sel = answer.NewSelection(r.page.Test)
	r.dangling = 0
	r.closeFeedback()
	r.phase = PhaseUnanswered
	r.cue = CueNone
	r.errMsg = ""
}

// Continue consumes the runtime after a correct verdict. It returns the
// score-driven branch target, empty for linear advancement, and false
// when the page is not in a continuable state.
func (r *Runtime) Continue() (string, bool) {
	if r.phase != PhaseFeedback || r.verdict != VerdictCorrect {
		return "", false
	}
	return r.branch, true
}

// ToggleWhy shows or hides the rationale panel; only available when the
// page carries one and the answer was correct.
func (r *Runtime) ToggleWhy() {
	if r.page.Why == "" || r.verdict != VerdictCorrect {
		return
	}
	r.whyOpen = !r.whyOpen
}

// Reveal shows the canonical correct answer after an incorrect verdict.
func (r *Runtime) Reveal() {
	if r.verdict != VerdictIncorrect {
		return
	}
	r.revealOpen = true
}

// TakeCue returns and clears the pending feedback accent.
func (r *Runtime) TakeCue() Cue {
	c := r.cue
	r.cue = CueNone
	return c
}

func (r *Runtime) closeFeedback() {
	r.feedbackOpen = false
	r.whyOpen = false
	r.revealOpen = false
	r.tipOpen = false
	r.verdict = VerdictNone
	if r.phase == PhaseFeedback {
		r.phase = PhaseUnanswered
	}
}

// toggleID appends id when absent and removes it when present,
// preserving the order of the rest.
func toggleID(ids []int, id int) []int {
	for i, v := range ids {
		if v == id {
			return append(ids[:i:i], ids[i+1:]...)
		}
	}
	return append(ids, id)
}
