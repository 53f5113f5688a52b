package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	create := r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetCourseID(data.CourseID).
		SetPageID(data.PageID).
		SetTestType(data.TestType).
		SetSelectionText(data.SelectionText).
		SetCorrect(data.Correct).
		SetTimeMs(data.TimeMs)

	if len(data.SelectionFlat) > 0 {
		create = create.SetSelectionFlat(data.SelectionFlat)
	}
	if data.AIScore != nil {
		create = create.SetAiScore(*data.AIScore)
	}

	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}
