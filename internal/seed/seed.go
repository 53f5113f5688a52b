// Package seed loads the demo course into the local store so the app
// is usable before any real content is imported.
package seed

import (
	"context"
	"fmt"

	"github.com/naghz/naghz/internal/content"
	"github.com/naghz/naghz/internal/store"
)

// DemoCourseID is the id of the built-in demo course.
const DemoCourseID = "intro-fractions"

// Apply writes the demo course, its pages, and their options. It is
// idempotent: re-seeding overwrites the same rows.
func Apply(ctx context.Context, repo store.ContentRepo) error {
	course, pages, options := demoCourse()

	if err := repo.PutCourse(ctx, course); err != nil {
		return fmt.Errorf("seed course: %w", err)
	}
	for _, p := range pages {
		if err := repo.PutPage(ctx, p); err != nil {
			return fmt.Errorf("seed page %s: %w", p.ID, err)
		}
	}
	for pageID, opts := range options {
		if err := repo.PutOptions(ctx, pageID, opts); err != nil {
			return fmt.Errorf("seed options for %s: %w", pageID, err)
		}
	}
	return nil
}

// demoCourse builds a course that exercises every page and test type:
// prose, single choice, multi-select, ordering, pairing, an AI-graded
// free response with score branching, and a skippable closer.
func demoCourse() (store.Course, []content.Page, map[string][]content.Option) {
	course := store.Course{
		ID:      DemoCourseID,
		Title:   "Introduction to Fractions",
		Subject: "math",
	}

	const n = 7
	pages := []content.Page{
		{
			ID: "frac-1", CourseID: DemoCourseID, Number: 1, Length: n,
			Type:   content.PageText,
			Header: "What is a fraction?",
			Body: "A fraction names part of a whole. The bottom number tells how many " +
				"equal parts the whole is split into; the top number tells how many " +
				"of those parts you have.",
		},
		{
			ID: "frac-2", CourseID: DemoCourseID, Number: 2, Length: n,
			Type: content.PageTest, Test: content.TestDefault,
			Grid:     content.GridColumn,
			Question: "A pizza is cut into 4 equal slices and you eat 1. What fraction did you eat?",
			Why:      "One slice out of four equal slices is 1/4.",
			Answer:   content.SingleAnswer(2),
		},
		{
			ID: "frac-3", CourseID: DemoCourseID, Number: 3, Length: n,
			Type: content.PageTest, Test: content.TestMultiple,
			Grid:     content.GridTwoColumn,
			Question: "Select every fraction equal to one half.",
			Why:      "2/4, 3/6, and 5/10 all simplify to 1/2.",
			Answer:   content.MultipleAnswer(1, 3, 4),
		},
		{
			ID: "frac-4", CourseID: DemoCourseID, Number: 4, Length: n,
			Type: content.PageTest, Test: content.TestSequential,
			Grid:     content.GridRow,
			Question: "Tap these fractions from smallest to largest.",
			Answer:   content.SequentialAnswer(2, 3, 1),
		},
		{
			ID: "frac-5", CourseID: DemoCourseID, Number: 5, Length: n,
			Type: content.PageTest, Test: content.TestPluggable,
			Grid:     content.GridTwoColumn,
			Question: "Match each fraction with its decimal form.",
			Answer:   content.PairAnswer([2]int{1, 4}, [2]int{2, 5}, [2]int{3, 6}),
		},
		{
			ID: "frac-6", CourseID: DemoCourseID, Number: 6, Length: n,
			Type: content.PageTest, Test: content.TestInput,
			Question: "In your own words, why is 2/4 the same amount as 1/2?",
			Subject:  "math",
			Answer:   content.TextAnswer(""),
			AI: &content.AIGrading{
				GiveFeedback:    true,
				GivePointByAI:   true,
				ScoreThreshold:  50,
				LowScorePageID:  "frac-1",
				HighScorePageID: "",
				SystemPrompt: "You are grading a short explanation of fraction " +
					"equivalence for a beginner. Reward the idea that both name " +
					"the same part of a whole.",
				Tip: "Think about cutting the same pizza into more, smaller slices.",
			},
		},
		{
			ID: "frac-7", CourseID: DemoCourseID, Number: 7, Length: n,
			Type: content.PageTestSkippable, Test: content.TestDefault,
			Grid:     content.GridRow,
			Question: "Nice work! Ready for more?",
		},
	}

	options := map[string][]content.Option{
		"frac-2": {
			{ID: 1, Text: "4/1", Order: 1},
			{ID: 2, Text: "1/4", Order: 2, Correct: true},
			{ID: 3, Text: "1/3", Order: 3},
		},
		"frac-3": {
			{ID: 1, Text: "2/4", Order: 1, Correct: true},
			{ID: 2, Text: "2/3", Order: 2},
			{ID: 3, Text: "3/6", Order: 3, Correct: true},
			{ID: 4, Text: "5/10", Order: 4, Correct: true},
		},
		"frac-4": {
			{ID: 1, Text: "3/4", Order: 1},
			{ID: 2, Text: "1/4", Order: 2},
			{ID: 3, Text: "1/2", Order: 3},
		},
		"frac-5": {
			{ID: 1, Text: "1/2", Order: 1},
			{ID: 2, Text: "1/4", Order: 2},
			{ID: 3, Text: "3/4", Order: 3},
			{ID: 4, Text: "0.5", Order: 4},
			{ID: 5, Text: "0.25", Order: 5},
			{ID: 6, Text: "0.75", Order: 6},
		},
		"frac-7": {
			{ID: 1, Text: "Let's go", Order: 1},
			{ID: 2, Text: "Take a break", Order: 2},
		},
	}

	return course, pages, options
}
