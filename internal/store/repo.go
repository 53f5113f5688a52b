package store

import (
	"context"
	"time"

	"github.com/naghz/naghz/internal/content"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestRecord is a stored LLM request event read back for stats.
type LLMRequestRecord struct {
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// AnswerEventData captures one submitted answer.
type AnswerEventData struct {
	SessionID     string
	CourseID      string
	PageID        string
	TestType      string
	SelectionFlat []int
	SelectionText string
	Correct       bool
	AIScore       *int
	TimeMs        int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendAnswer records a submitted answer.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// QueryLLMRequests returns LLM request events, newest first.
	QueryLLMRequests(ctx context.Context, opts QueryOpts) ([]LLMRequestRecord, error)
}

// Course is the course header row; pages hang off it by course id.
type Course struct {
	ID      string
	Title   string
	Subject string
}

// ContentRepo reads and writes courses, pages, and options. The read
// side is the page source the sequencer consumes; the write side exists
// for seeding and import.
type ContentRepo interface {
	// ListCourses returns all courses ordered by title.
	ListCourses(ctx context.Context) ([]Course, error)

	// GetCourse returns a course by id, or nil when absent.
	GetCourse(ctx context.Context, courseID string) (*Course, error)

	// ListPages returns the course's pages ordered by page number.
	ListPages(ctx context.Context, courseID string) ([]content.Page, error)

	// ListOptions returns a page's options ordered by display order.
	ListOptions(ctx context.Context, pageID string) ([]content.Option, error)

	// PutCourse upserts a course header.
	PutCourse(ctx context.Context, c Course) error

	// PutPage upserts a page, replacing its stored answer encoding.
	PutPage(ctx context.Context, p content.Page) error

	// PutOptions replaces the full option set of a page.
	PutOptions(ctx context.Context, pageID string, opts []content.Option) error
}

// Progress is the resume point for one user in one course.
type Progress struct {
	UserID     string
	CourseID   string
	PageNumber int
	Completed  bool
	UpdatedAt  time.Time
}

// ProgressRepo tracks how far each user has gotten in each course.
type ProgressRepo interface {
	// Get returns the user's progress in a course, or nil when absent.
	Get(ctx context.Context, userID, courseID string) (*Progress, error)

	// MarkReached records the highest page number reached. Lower numbers
	// than the stored one are ignored.
	MarkReached(ctx context.Context, userID, courseID string, pageNumber int) error

	// MarkCompleted flags the course finished for the user.
	MarkCompleted(ctx context.Context, userID, courseID string) error
}

// DailyFlags is the per-user daily-challenge prompt state. Day strings
// are YYYY-MM-DD in the user's local zone.
type DailyFlags struct {
	UserID        string
	LastShown     string
	DeclinedUntil time.Time
	CompletedDay  string
}

// DailyRepo persists daily-challenge prompt flags.
type DailyRepo interface {
	// Get returns the user's flags, or nil when absent.
	Get(ctx context.Context, userID string) (*DailyFlags, error)

	// SetShown records that the prompt was shown on the given day.
	SetShown(ctx context.Context, userID, day string) error

	// SetDeclined suppresses the prompt until the given instant.
	SetDeclined(ctx context.Context, userID string, until time.Time) error

	// SetCompleted records that the challenge was finished on the given day.
	SetCompleted(ctx context.Context, userID, day string) error
}
