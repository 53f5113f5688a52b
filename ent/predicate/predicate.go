// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnswerEvent is the predicate function for answerevent builders.
type AnswerEvent func(*sql.Selector)

// Course is the predicate function for course builders.
type Course func(*sql.Selector)

// DailyFlag is the predicate function for dailyflag builders.
type DailyFlag func(*sql.Selector)

// HeartLedger is the predicate function for heartledger builders.
type HeartLedger func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// Page is the predicate function for page builders.
type Page func(*sql.Selector)

// PageOption is the predicate function for pageoption builders.
type PageOption func(*sql.Selector)

// PageProgress is the predicate function for pageprogress builders.
type PageProgress func(*sql.Selector)
