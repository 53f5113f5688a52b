// Package content defines the page and option model shared by the
// sequencer, runtime, and store. Pages are authored externally and
// read-only here; the engine never mutates them.
package content

// PageType determines how a page participates in the lesson flow.
type PageType string

const (
	// PageText displays content only; advancing needs no answer.
	PageText PageType = "text"
	// PageTest requires a validated answer before advancing.
	PageTest PageType = "test"
	// PageTestSkippable advances on any interaction without validation.
	PageTestSkippable PageType = "test-skippable"
)

// TestType selects the answer-matching semantics for a test page.
type TestType string

const (
	TestDefault    TestType = "Default"    // single choice
	TestMultiple   TestType = "Multiple"   // unordered set of choices
	TestSequential TestType = "Sequential" // ordered list of choices
	TestPluggable  TestType = "Pluggable"  // symmetric pairing of choices
	TestInput      TestType = "Input"      // free text
)

// GridLayout is a presentational hint for option placement. It carries
// no answer semantics and is forwarded to the view untouched.
type GridLayout string

const (
	GridColumn    GridLayout = "column"
	GridTwoColumn GridLayout = "grid-2"
	GridRow       GridLayout = "row"
)

// DefaultScoreThreshold is the branch threshold used when a page does
// not set its own.
const DefaultScoreThreshold = 50

// CorrectAnswer is the tagged union of expected-answer shapes. The Type
// tag mirrors the page's TestType and selects which payload field is
// meaningful; the others stay zero.
type CorrectAnswer struct {
	Type TestType

	// Single holds the expected option id for TestDefault.
	// 0 means no answer is configured.
	Single int

	// IDs holds the expected option ids for TestMultiple (unordered)
	// and TestSequential (click order).
	IDs []int

	// Pairs holds the expected pairings for TestPluggable. Pairing is
	// symmetric, so {a,b} and {b,a} are the same pair.
	Pairs [][2]int

	// Text holds the expected answer for TestInput. Matched by exact
	// string equality on non-AI pages.
	Text string
}

// SingleAnswer builds a Default correct answer.
func SingleAnswer(id int) CorrectAnswer {
	return CorrectAnswer{Type: TestDefault, Single: id}
}

// MultipleAnswer builds a Multiple correct answer.
func MultipleAnswer(ids ...int) CorrectAnswer {
	return CorrectAnswer{Type: TestMultiple, IDs: ids}
}

// SequentialAnswer builds a Sequential correct answer.
func SequentialAnswer(ids ...int) CorrectAnswer {
	return CorrectAnswer{Type: TestSequential, IDs: ids}
}

// PairAnswer builds a Pluggable correct answer.
func PairAnswer(pairs ...[2]int) CorrectAnswer {
	return CorrectAnswer{Type: TestPluggable, Pairs: pairs}
}

// TextAnswer builds an Input correct answer.
func TextAnswer(s string) CorrectAnswer {
	return CorrectAnswer{Type: TestInput, Text: s}
}

// AIGrading holds the attributes of an AI-graded page. A nil *AIGrading
// on a Page means the page is validated locally.
type AIGrading struct {
	GiveFeedback  bool
	GivePoint     bool
	GivePointByAI bool

	// ScoreThreshold splits the low/high branch. Zero means use
	// DefaultScoreThreshold.
	ScoreThreshold int

	// LowScorePageID and HighScorePageID override linear advancement.
	// Empty means continue to the next page.
	LowScorePageID  string
	HighScorePageID string

	// SystemPrompt is the grading rubric sent to the scoring oracle.
	SystemPrompt string

	// Tip is the remedial hint revealed on low scores.
	Tip string
}

// Threshold returns the effective branch threshold.
func (g *AIGrading) Threshold() int {
	if g == nil || g.ScoreThreshold == 0 {
		return DefaultScoreThreshold
	}
	return g.ScoreThreshold
}

// Page is one unit of lesson or challenge content.
type Page struct {
	ID       string
	CourseID string

	// Number is 1-based within the owning sequence; Length is the total
	// page count of that sequence.
	Number int
	Length int

	Type PageType
	Test TestType
	Grid GridLayout

	Header   string
	Body     string
	Question string
	Subject  string
	Image    string

	// Why is the rationale revealed after a correct answer.
	Why string

	Answer CorrectAnswer

	// AI is set on AI-graded pages.
	AI *AIGrading
}

// AIEnabled reports whether the page is graded by the scoring oracle.
func (p Page) AIEnabled() bool {
	return p.AI != nil
}

// IsTest reports whether the page requires interaction.
func (p Page) IsTest() bool {
	return p.Type == PageTest || p.Type == PageTestSkippable
}

// Option is a selectable choice belonging to exactly one page. Order is
// the 1-based stable position that correct answers reference as the
// option's id. Correct is informational for authoring tools; validation
// always recomputes from the page's CorrectAnswer.
type Option struct {
	ID    int
	Text  string
	Order int
	// Correct mirrors the authored answer key. Never trusted for scoring.
	Correct bool
	Icon    string
}
