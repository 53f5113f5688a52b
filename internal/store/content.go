package store

import (
	"context"
	"fmt"

	"github.com/naghz/naghz/ent"
	entcourse "github.com/naghz/naghz/ent/course"
	entoption "github.com/naghz/naghz/ent/pageoption"
	entpage "github.com/naghz/naghz/ent/page"
	"github.com/naghz/naghz/internal/content"
)

// contentRepo implements ContentRepo using the ent client. Answers round
// trip through the flat integer encoding; free-response text rides in
// its own column.
type contentRepo struct {
	client *ent.Client
}

func (r *contentRepo) ListCourses(ctx context.Context) ([]Course, error) {
	rows, err := r.client.Course.Query().
		Order(ent.Asc(entcourse.FieldTitle)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query courses: %w", err)
	}

	out := make([]Course, 0, len(rows))
	for _, row := range rows {
		out = append(out, Course{ID: row.CourseID, Title: row.Title, Subject: row.Subject})
	}
	return out, nil
}

func (r *contentRepo) GetCourse(ctx context.Context, courseID string) (*Course, error) {
	row, err := r.client.Course.Query().
		Where(entcourse.CourseID(courseID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query course: %w", err)
	}
	return &Course{ID: row.CourseID, Title: row.Title, Subject: row.Subject}, nil
}

func (r *contentRepo) ListPages(ctx context.Context, courseID string) ([]content.Page, error) {
	rows, err := r.client.Page.Query().
		Where(entpage.CourseID(courseID)).
		Order(ent.Asc(entpage.FieldNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query pages: %w", err)
	}

	out := make([]content.Page, 0, len(rows))
	for _, row := range rows {
		out = append(out, entPageToPage(row))
	}
	return out, nil
}

func (r *contentRepo) ListOptions(ctx context.Context, pageID string) ([]content.Option, error) {
	rows, err := r.client.PageOption.Query().
		Where(entoption.PageID(pageID)).
		Order(ent.Asc(entoption.FieldOptionOrder)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query options: %w", err)
	}

	out := make([]content.Option, 0, len(rows))
	for _, row := range rows {
		out = append(out, content.Option{
			ID:      row.OptionID,
			Text:    row.Text,
			Order:   row.OptionOrder,
			Correct: row.Correct,
			Icon:    row.Icon,
		})
	}
	return out, nil
}

func (r *contentRepo) PutCourse(ctx context.Context, c Course) error {
	row, err := r.client.Course.Query().
		Where(entcourse.CourseID(c.ID)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query course: %w", err)
		}
		_, err = r.client.Course.Create().
			SetCourseID(c.ID).
			SetTitle(c.Title).
			SetSubject(c.Subject).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create course: %w", err)
		}
		return nil
	}

	_, err = row.Update().
		SetTitle(c.Title).
		SetSubject(c.Subject).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update course: %w", err)
	}
	return nil
}

func (r *contentRepo) PutPage(ctx context.Context, p content.Page) error {
	existing, err := r.client.Page.Query().
		Where(entpage.PageID(p.ID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query page: %w", err)
	}

	if ent.IsNotFound(err) {
		if _, err := fillPage(r.client.Page.Create(), p).Save(ctx); err != nil {
			return fmt.Errorf("create page: %w", err)
		}
		return nil
	}

	if _, err := fillPageUpdate(existing.Update(), p).Save(ctx); err != nil {
		return fmt.Errorf("update page: %w", err)
	}
	return nil
}

func (r *contentRepo) PutOptions(ctx context.Context, pageID string, opts []content.Option) error {
	_, err := r.client.PageOption.Delete().
		Where(entoption.PageID(pageID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("clear options: %w", err)
	}

	for _, o := range opts {
		_, err := r.client.PageOption.Create().
			SetPageID(pageID).
			SetOptionID(o.ID).
			SetText(o.Text).
			SetOptionOrder(o.Order).
			SetCorrect(o.Correct).
			SetIcon(o.Icon).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create option %d: %w", o.ID, err)
		}
	}
	return nil
}

func entPageToPage(row *ent.Page) content.Page {
	p := content.Page{
		ID:       row.PageID,
		CourseID: row.CourseID,
		Number:   row.Number,
		Length:   row.Length,
		Type:     content.PageType(row.PageType),
		Test:     content.TestType(row.TestType),
		Grid:     content.GridLayout(row.Grid),
		Header:   row.Header,
		Body:     row.Body,
		Question: row.Question,
		Subject:  row.Subject,
		Image:    row.Image,
		Why:      row.Why,
	}

	if p.Test == content.TestInput {
		p.Answer = content.TextAnswer(row.AnswerText)
	} else {
		p.Answer = content.DecodeFlat(p.Test, row.AnswerFlat)
	}

	if row.AiGraded {
		p.AI = &content.AIGrading{
			GiveFeedback:    row.GiveFeedback,
			GivePoint:       row.GivePoint,
			GivePointByAI:   row.GivePointByAi,
			ScoreThreshold:  row.ScoreThreshold,
			LowScorePageID:  row.LowScorePageID,
			HighScorePageID: row.HighScorePageID,
			SystemPrompt:    row.SystemPrompt,
			Tip:             row.Tip,
		}
	}
	return p
}

func fillPage(c *ent.PageCreate, p content.Page) *ent.PageCreate {
	c = c.
		SetPageID(p.ID).
		SetCourseID(p.CourseID).
		SetNumber(p.Number).
		SetLength(p.Length).
		SetPageType(string(p.Type)).
		SetTestType(string(p.Test)).
		SetGrid(string(p.Grid)).
		SetHeader(p.Header).
		SetBody(p.Body).
		SetQuestion(p.Question).
		SetSubject(p.Subject).
		SetImage(p.Image).
		SetWhy(p.Why).
		SetAnswerText(p.Answer.Text).
		SetAiGraded(p.AI != nil)

	if flat := content.EncodeFlat(p.Answer); len(flat) > 0 {
		c = c.SetAnswerFlat(flat)
	}
	if p.AI != nil {
		c = c.
			SetGiveFeedback(p.AI.GiveFeedback).
			SetGivePoint(p.AI.GivePoint).
			SetGivePointByAi(p.AI.GivePointByAI).
			SetScoreThreshold(p.AI.ScoreThreshold).
			SetLowScorePageID(p.AI.LowScorePageID).
			SetHighScorePageID(p.AI.HighScorePageID).
			SetSystemPrompt(p.AI.SystemPrompt).
			SetTip(p.AI.Tip)
	}
	return c
}

func fillPageUpdate(u *ent.PageUpdateOne, p content.Page) *ent.PageUpdateOne {
	u = u.
		SetCourseID(p.CourseID).
		SetNumber(p.Number).
		SetLength(p.Length).
		SetPageType(string(p.Type)).
		SetTestType(string(p.Test)).
		SetGrid(string(p.Grid)).
		SetHeader(p.Header).
		SetBody(p.Body).
		SetQuestion(p.Question).
		SetSubject(p.Subject).
		SetImage(p.Image).
		SetWhy(p.Why).
		SetAnswerText(p.Answer.Text).
		SetAiGraded(p.AI != nil)

	if flat := content.EncodeFlat(p.Answer); len(flat) > 0 {
		u = u.SetAnswerFlat(flat)
	} else {
		u = u.ClearAnswerFlat()
	}
	if p.AI != nil {
		u = u.
			SetGiveFeedback(p.AI.GiveFeedback).
			SetGivePoint(p.AI.GivePoint).
			SetGivePointByAi(p.AI.GivePointByAI).
			SetScoreThreshold(p.AI.ScoreThreshold).
			SetLowScorePageID(p.AI.LowScorePageID).
			SetHighScorePageID(p.AI.HighScorePageID).
			SetSystemPrompt(p.AI.SystemPrompt).
			SetTip(p.AI.Tip)
	}
	return u
}
