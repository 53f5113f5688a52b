// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/naghz/naghz/ent/page"
)

// PageCreate is the builder for creating a Page entity.
type PageCreate struct {
	config
	mutation *PageMutation
	hooks    []Hook
}

// SetPageID sets the "page_id" field.
func (_c *PageCreate) SetPageID(v string) *PageCreate {
	_c.mutation.SetPageID(v)
	return _c
}

// SetCourseID sets the "course_id" field.
func (_c *PageCreate) SetCourseID(v string) *PageCreate {
	_c.mutation.SetCourseID(v)
	return _c
}

// SetNumber sets the "number" field.
func (_c *PageCreate) SetNumber(v int) *PageCreate {
	_c.mutation.SetNumber(v)
	return _c
}

// SetLength sets the "length" field.
func (_c *PageCreate) SetLength(v int) *PageCreate {
	_c.mutation.SetLength(v)
	return _c
}

// SetPageType sets the "page_type" field.
func (_c *PageCreate) SetPageType(v string) *PageCreate {
	_c.mutation.SetPageType(v)
	return _c
}

// SetTestType sets the "test_type" field.
func (_c *PageCreate) SetTestType(v string) *PageCreate {
	_c.mutation.SetTestType(v)
	return _c
}

// SetNillableTestType sets the "test_type" field if the given value is not nil.
func (_c *PageCreate) SetNillableTestType(v *string) *PageCreate {
	if v != nil {
		_c.SetTestType(*v)
	}
	return _c
}

// SetGrid sets the "grid" field.
func (_c *PageCreate) SetGrid(v string) *PageCreate {
	_c.mutation.SetGrid(v)
	return _c
}

// SetNillableGrid sets the "grid" field if the given value is not nil.
func (_c *PageCreate) SetNillableGrid(v *string) *PageCreate {
	if v != nil {
		_c.SetGrid(*v)
	}
	return _c
}

// SetHeader sets the "header" field.
func (_c *PageCreate) SetHeader(v string) *PageCreate {
	_c.mutation.SetHeader(v)
	return _c
}

// SetNillableHeader sets the "header" field if the given value is not nil.
func (_c *PageCreate) SetNillableHeader(v *string) *PageCreate {
	if v != nil {
		_c.SetHeader(*v)
	}
	return _c
}

// SetBody sets the "body" field.
func (_c *PageCreate) SetBody(v string) *PageCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_c *PageCreate) SetNillableBody(v *string) *PageCreate {
	if v != nil {
		_c.SetBody(*v)
	}
	return _c
}

// SetQuestion sets the "question" field.
func (_c *PageCreate) SetQuestion(v string) *PageCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_c *PageCreate) SetNillableQuestion(v *string) *PageCreate {
	if v != nil {
		_c.SetQuestion(*v)
	}
	return _c
}

// SetSubject sets the "subject" field.
func (_c *PageCreate) SetSubject(v string) *PageCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_c *PageCreate) SetNillableSubject(v *string) *PageCreate {
	if v != nil {
		_c.SetSubject(*v)
	}
	return _c
}

// SetImage sets the "image" field.
func (_c *PageCreate) SetImage(v string) *PageCreate {
	_c.mutation.SetImage(v)
	return _c
}

// SetNillableImage sets the "image" field if the given value is not nil.
func (_c *PageCreate) SetNillableImage(v *string) *PageCreate {
	if v != nil {
		_c.SetImage(*v)
	}
	return _c
}

// SetWhy sets the "why" field.
func (_c *PageCreate) SetWhy(v string) *PageCreate {
	_c.mutation.SetWhy(v)
	return _c
}

// SetNillableWhy sets the "why" field if the given value is not nil.
func (_c *PageCreate) SetNillableWhy(v *string) *PageCreate {
	if v != nil {
		_c.SetWhy(*v)
	}
	return _c
}

// SetAnswerFlat sets the "answer_flat" field.
func (_c *PageCreate) SetAnswerFlat(v []int) *PageCreate {
	_c.mutation.SetAnswerFlat(v)
	return _c
}

// SetAnswerText sets the "answer_text" field.
func (_c *PageCreate) SetAnswerText(v string) *PageCreate {
	_c.mutation.SetAnswerText(v)
	return _c
}

// SetNillableAnswerText sets the "answer_text" field if the given value is not nil.
func (_c *PageCreate) SetNillableAnswerText(v *string) *PageCreate {
	if v != nil {
		_c.SetAnswerText(*v)
	}
	return _c
}

// SetAiGraded sets the "ai_graded" field.
func (_c *PageCreate) SetAiGraded(v bool) *PageCreate {
	_c.mutation.SetAiGraded(v)
	return _c
}

// SetNillableAiGraded sets the "ai_graded" field if the given value is not nil.
func (_c *PageCreate) SetNillableAiGraded(v *bool) *PageCreate {
	if v != nil {
		_c.SetAiGraded(*v)
	}
	return _c
}

// SetGiveFeedback sets the "give_feedback" field.
func (_c *PageCreate) SetGiveFeedback(v bool) *PageCreate {
	_c.mutation.SetGiveFeedback(v)
	return _c
}

// SetNillableGiveFeedback sets the "give_feedback" field if the given value is not nil.
func (_c *PageCreate) SetNillableGiveFeedback(v *bool) *PageCreate {
	if v != nil {
		_c.SetGiveFeedback(*v)
	}
	return _c
}

// SetGivePoint sets the "give_point" field.
func (_c *PageCreate) SetGivePoint(v bool) *PageCreate {
	_c.mutation.SetGivePoint(v)
	return _c
}

// SetNillableGivePoint sets the "give_point" field if the given value is not nil.
func (_c *PageCreate) SetNillableGivePoint(v *bool) *PageCreate {
	if v != nil {
		_c.SetGivePoint(*v)
	}
	return _c
}

// SetGivePointByAi sets the "give_point_by_ai" field.
func (_c *PageCreate) SetGivePointByAi(v bool) *PageCreate {
	_c.mutation.SetGivePointByAi(v)
	return _c
}

// SetNillableGivePointByAi sets the "give_point_by_ai" field if the given value is not nil.
func (_c *PageCreate) SetNillableGivePointByAi(v *bool) *PageCreate {
	if v != nil {
		_c.SetGivePointByAi(*v)
	}
	return _c
}

// SetScoreThreshold sets the "score_threshold" field.
func (_c *PageCreate) SetScoreThreshold(v int) *PageCreate {
	_c.mutation.SetScoreThreshold(v)
	return _c
}

// SetNillableScoreThreshold sets the "score_threshold" field if the given value is not nil.
func (_c *PageCreate) SetNillableScoreThreshold(v *int) *PageCreate {
	if v != nil {
		_c.SetScoreThreshold(*v)
	}
	return _c
}

// SetLowScorePageID sets the "low_score_page_id" field.
func (_c *PageCreate) SetLowScorePageID(v string) *PageCreate {
	_c.mutation.SetLowScorePageID(v)
	return _c
}

// SetNillableLowScorePageID sets the "low_score_page_id" field if the given value is not nil.
func (_c *PageCreate) SetNillableLowScorePageID(v *string) *PageCreate {
	if v != nil {
		_c.SetLowScorePageID(*v)
	}
	return _c
}

// SetHighScorePageID sets the "high_score_page_id" field.
func (_c *PageCreate) SetHighScorePageID(v string) *PageCreate {
	_c.mutation.SetHighScorePageID(v)
	return _c
}

// SetNillableHighScorePageID sets the "high_score_page_id" field if the given value is not nil.
func (_c *PageCreate) SetNillableHighScorePageID(v *string) *PageCreate {
	if v != nil {
		_c.SetHighScorePageID(*v)
	}
	return _c
}

// SetSystemPrompt sets the "system_prompt" field.
func (_c *PageCreate) SetSystemPrompt(v string) *PageCreate {
	_c.mutation.SetSystemPrompt(v)
	return _c
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_c *PageCreate) SetNillableSystemPrompt(v *string) *PageCreate {
	if v != nil {
		_c.SetSystemPrompt(*v)
	}
	return _c
}

// SetTip sets the "tip" field.
func (_c *PageCreate) SetTip(v string) *PageCreate {
	_c.mutation.SetTip(v)
	return _c
}

// SetNillableTip sets the "tip" field if the given value is not nil.
func (_c *PageCreate) SetNillableTip(v *string) *PageCreate {
	if v != nil {
		_c.SetTip(*v)
	}
	return _c
}

// Mutation returns the PageMutation object of the builder.
func (_c *PageCreate) Mutation() *PageMutation {
	return _c.mutation
}

// Save creates the Page in the database.
func (_c *PageCreate) Save(ctx context.Context) (*Page, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PageCreate) SaveX(ctx context.Context) *Page {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PageCreate) defaults() {
	if _, ok := _c.mutation.TestType(); !ok {
		v := page.DefaultTestType
		_c.mutation.SetTestType(v)
	}
	if _, ok := _c.mutation.Grid(); !ok {
		v := page.DefaultGrid
		_c.mutation.SetGrid(v)
	}
	if _, ok := _c.mutation.AiGraded(); !ok {
		v := page.DefaultAiGraded
		_c.mutation.SetAiGraded(v)
	}
	if _, ok := _c.mutation.GiveFeedback(); !ok {
		v := page.DefaultGiveFeedback
		_c.mutation.SetGiveFeedback(v)
	}
	if _, ok := _c.mutation.GivePoint(); !ok {
		v := page.DefaultGivePoint
		_c.mutation.SetGivePoint(v)
	}
	if _, ok := _c.mutation.GivePointByAi(); !ok {
		v := page.DefaultGivePointByAi
		_c.mutation.SetGivePointByAi(v)
	}
	if _, ok := _c.mutation.ScoreThreshold(); !ok {
		v := page.DefaultScoreThreshold
		_c.mutation.SetScoreThreshold(v)
	}
	if _, ok := _c.mutation.LowScorePageID(); !ok {
		v := page.DefaultLowScorePageID
		_c.mutation.SetLowScorePageID(v)
	}
	if _, ok := _c.mutation.HighScorePageID(); !ok {
		v := page.DefaultHighScorePageID
		_c.mutation.SetHighScorePageID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PageCreate) check() error {
	if _, ok := _c.mutation.PageID(); !ok {
		return &ValidationError{Name: "page_id", err: errors.New(`ent: missing required field "Page.page_id"`)}
	}
	if v, ok := _c.mutation.PageID(); ok {
		if err := page.PageIDValidator(v); err != nil {
			return &ValidationError{Name: "page_id", err: fmt.Errorf(`ent: validator failed for field "Page.page_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CourseID(); !ok {
		return &ValidationError{Name: "course_id", err: errors.New(`ent: missing required field "Page.course_id"`)}
	}
	if v, ok := _c.mutation.CourseID(); ok {
		if err := page.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "Page.course_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Number(); !ok {
		return &ValidationError{Name: "number", err: errors.New(`ent: missing required field "Page.number"`)}
	}
	if v, ok := _c.mutation.Number(); ok {
		if err := page.NumberValidator(v); err != nil {
			return &ValidationError{Name: "number", err: fmt.Errorf(`ent: validator failed for field "Page.number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Length(); !ok {
		return &ValidationError{Name: "length", err: errors.New(`ent: missing required field "Page.length"`)}
	}
	if v, ok := _c.mutation.Length(); ok {
		if err := page.LengthValidator(v); err != nil {
			return &ValidationError{Name: "length", err: fmt.Errorf(`ent: validator failed for field "Page.length": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PageType(); !ok {
		return &ValidationError{Name: "page_type", err: errors.New(`ent: missing required field "Page.page_type"`)}
	}
	if v, ok := _c.mutation.PageType(); ok {
		if err := page.PageTypeValidator(v); err != nil {
			return &ValidationError{Name: "page_type", err: fmt.Errorf(`ent: validator failed for field "Page.page_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TestType(); !ok {
		return &ValidationError{Name: "test_type", err: errors.New(`ent: missing required field "Page.test_type"`)}
	}
	if _, ok := _c.mutation.Grid(); !ok {
		return &ValidationError{Name: "grid", err: errors.New(`ent: missing required field "Page.grid"`)}
	}
	if _, ok := _c.mutation.AiGraded(); !ok {
		return &ValidationError{Name: "ai_graded", err: errors.New(`ent: missing required field "Page.ai_graded"`)}
	}
	if _, ok := _c.mutation.GiveFeedback(); !ok {
		return &ValidationError{Name: "give_feedback", err: errors.New(`ent: missing required field "Page.give_feedback"`)}
	}
	if _, ok := _c.mutation.GivePoint(); !ok {
		return &ValidationError{Name: "give_point", err: errors.New(`ent: missing required field "Page.give_point"`)}
	}
	if _, ok := _c.mutation.GivePointByAi(); !ok {
		return &ValidationError{Name: "give_point_by_ai", err: errors.New(`ent: missing required field "Page.give_point_by_ai"`)}
	}
	if _, ok := _c.mutation.ScoreThreshold(); !ok {
		return &ValidationError{Name: "score_threshold", err: errors.New(`ent: missing required field "Page.score_threshold"`)}
	}
	if _, ok := _c.mutation.LowScorePageID(); !ok {
		return &ValidationError{Name: "low_score_page_id", err: errors.New(`ent: missing required field "Page.low_score_page_id"`)}
	}
	if _, ok := _c.mutation.HighScorePageID(); !ok {
		return &ValidationError{Name: "high_score_page_id", err: errors.New(`ent: missing required field "Page.high_score_page_id"`)}
	}
	return nil
}

func (_c *PageCreate) sqlSave(ctx context.Context) (*Page, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PageCreate) createSpec() (*Page, *sqlgraph.CreateSpec) {
	var (
		_node = &Page{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(page.Table, sqlgraph.NewFieldSpec(page.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.PageID(); ok {
		_spec.SetField(page.FieldPageID, field.TypeString, value)
		_node.PageID = value
	}
	if value, ok := _c.mutation.CourseID(); ok {
		_spec.SetField(page.FieldCourseID, field.TypeString, value)
		_node.CourseID = value
	}
	if value, ok := _c.mutation.Number(); ok {
		_spec.SetField(page.FieldNumber, field.TypeInt, value)
		_node.Number = value
	}
	if value, ok := _c.mutation.Length(); ok {
		_spec.SetField(page.FieldLength, field.TypeInt, value)
		_node.Length = value
	}
	if value, ok := _c.mutation.PageType(); ok {
		_spec.SetField(page.FieldPageType, field.TypeString, value)
		_node.PageType = value
	}
	if value, ok := _c.mutation.TestType(); ok {
		_spec.SetField(page.FieldTestType, field.TypeString, value)
		_node.TestType = value
	}
	if value, ok := _c.mutation.Grid(); ok {
		_spec.SetField(page.FieldGrid, field.TypeString, value)
		_node.Grid = value
	}
	if value, ok := _c.mutation.Header(); ok {
		_spec.SetField(page.FieldHeader, field.TypeString, value)
		_node.Header = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(page.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(page.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(page.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Image(); ok {
		_spec.SetField(page.FieldImage, field.TypeString, value)
		_node.Image = value
	}
	if value, ok := _c.mutation.Why(); ok {
		_spec.SetField(page.FieldWhy, field.TypeString, value)
		_node.Why = value
	}
	if value, ok := _c.mutation.AnswerFlat(); ok {
		_spec.SetField(page.FieldAnswerFlat, field.TypeJSON, value)
		_node.AnswerFlat = value
	}
	if value, ok := _c.mutation.AnswerText(); ok {
		_spec.SetField(page.FieldAnswerText, field.TypeString, value)
		_node.AnswerText = value
	}
	if value, ok := _c.mutation.AiGraded(); ok {
		_spec.SetField(page.FieldAiGraded, field.TypeBool, value)
		_node.AiGraded = value
	}
	if value, ok := _c.mutation.GiveFeedback(); ok {
		_spec.SetField(page.FieldGiveFeedback, field.TypeBool, value)
		_node.GiveFeedback = value
	}
	if value, ok := _c.mutation.GivePoint(); ok {
		_spec.SetField(page.FieldGivePoint, field.TypeBool, value)
		_node.GivePoint = value
	}
	if value, ok := _c.mutation.GivePointByAi(); ok {
		_spec.SetField(page.FieldGivePointByAi, field.TypeBool, value)
		_node.GivePointByAi = value
	}
	if value, ok := _c.mutation.ScoreThreshold(); ok {
		_spec.SetField(page.FieldScoreThreshold, field.TypeInt, value)
		_node.ScoreThreshold = value
	}
	if value, ok := _c.mutation.LowScorePageID(); ok {
		_spec.SetField(page.FieldLowScorePageID, field.TypeString, value)
		_node.LowScorePageID = value
	}
	if value, ok := _c.mutation.HighScorePageID(); ok {
		_spec.SetField(page.FieldHighScorePageID, field.TypeString, value)
		_node.HighScorePageID = value
	}
	if value, ok := _c.mutation.SystemPrompt(); ok {
		_spec.SetField(page.FieldSystemPrompt, field.TypeString, value)
		_node.SystemPrompt = value
	}
	if value, ok := _c.mutation.Tip(); ok {
		_spec.SetField(page.FieldTip, field.TypeString, value)
		_node.Tip = value
	}
	return _node, _spec
}

// PageCreateBulk is the builder for creating many Page entities in bulk.
type PageCreateBulk struct {
	config
	err      error
	builders []*PageCreate
}

// Save creates the Page entities in the database.
func (_c *PageCreateBulk) Save(ctx context.Context) ([]*Page, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Page, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PageMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PageCreateBulk) SaveX(ctx context.Context) []*Page {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
