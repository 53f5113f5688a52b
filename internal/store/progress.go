package store

import (
	"context"
	"fmt"
	"time"

	"github.com/naghz/naghz/ent"
	"github.com/naghz/naghz/ent/pageprogress"
)

// progressRepo implements ProgressRepo using the ent client.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Get(ctx context.Context, userID, courseID string) (*Progress, error) {
	row, err := r.client.PageProgress.Query().
		Where(pageprogress.UserID(userID), pageprogress.CourseID(courseID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query progress: %w", err)
	}
	return &Progress{
		UserID:     row.UserID,
		CourseID:   row.CourseID,
		PageNumber: row.PageNumber,
		Completed:  row.Completed,
		UpdatedAt:  row.UpdatedAt,
	}, nil
}

func (r *progressRepo) MarkReached(ctx context.Context, userID, courseID string, pageNumber int) error {
	row, err := r.client.PageProgress.Query().
		Where(pageprogress.UserID(userID), pageprogress.CourseID(courseID)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query progress: %w", err)
		}
		_, err = r.client.PageProgress.Create().
			SetUserID(userID).
			SetCourseID(courseID).
			SetPageNumber(pageNumber).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create progress: %w", err)
		}
		return nil
	}

	// Paging backwards never loses the resume point.
	if pageNumber <= row.PageNumber {
		return nil
	}

	_, err = row.Update().
		SetPageNumber(pageNumber).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update progress: %w", err)
	}
	return nil
}

func (r *progressRepo) MarkCompleted(ctx context.Context, userID, courseID string) error {
	row, err := r.client.PageProgress.Query().
		Where(pageprogress.UserID(userID), pageprogress.CourseID(courseID)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query progress: %w", err)
		}
		_, err = r.client.PageProgress.Create().
			SetUserID(userID).
			SetCourseID(courseID).
			SetPageNumber(1).
			SetCompleted(true).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create progress: %w", err)
		}
		return nil
	}

	_, err = row.Update().
		SetCompleted(true).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("complete progress: %w", err)
	}
	return nil
}
