package daily

import "github.com/naghz/naghz/internal/content"

// ChallengeCourseID identifies the built-in challenge sequence in
// progress records and answer events.
const ChallengeCourseID = "daily-challenge"

// Challenge returns the built-in challenge sequence with every page's
// options supplied up front, ready for the sequencer's preloaded mode.
// No store or network access is needed to run it.
func Challenge() ([]content.Page, map[string][]content.Option) {
	pages := []content.Page{
		{
			ID: "dc-1", CourseID: ChallengeCourseID, Number: 1, Length: 4,
			Type:   content.PageText,
			Header: "Daily Challenge",
			Body:   "Three quick questions. Answer them all to keep your streak alive.",
		},
		{
			ID: "dc-2", CourseID: ChallengeCourseID, Number: 2, Length: 4,
			Type: content.PageTest, Test: content.TestDefault,
			Grid:     content.GridColumn,
			Question: "Which planet is closest to the sun?",
			Why:      "Mercury orbits at about a third of Earth's distance from the sun.",
			Answer:   content.SingleAnswer(2),
		},
		{
			ID: "dc-3", CourseID: ChallengeCourseID, Number: 3, Length: 4,
			Type: content.PageTest, Test: content.TestSequential,
			Grid:     content.GridTwoColumn,
			Question: "Put these from smallest to largest.",
			Answer:   content.SequentialAnswer(3, 1, 4, 2),
		},
		{
			ID: "dc-4", CourseID: ChallengeCourseID, Number: 4, Length: 4,
			Type: content.PageTestSkippable, Test: content.TestDefault,
			Grid:     content.GridRow,
			Question: "Done! How did that feel?",
		},
	}

	options := map[string][]content.Option{
		"dc-2": {
			{ID: 1, Text: "Venus", Order: 1},
			{ID: 2, Text: "Mercury", Order: 2, Correct: true},
			{ID: 3, Text: "Mars", Order: 3},
		},
		"dc-3": {
			{ID: 1, Text: "Moon", Order: 1},
			{ID: 2, Text: "Sun", Order: 2},
			{ID: 3, Text: "Everest", Order: 3},
			{ID: 4, Text: "Earth", Order: 4},
		},
		"dc-4": {
			{ID: 1, Text: "Easy", Order: 1},
			{ID: 2, Text: "Just right", Order: 2},
			{ID: 3, Text: "Hard", Order: 3},
		},
	}

	return pages, options
}
