package store

import (
	"context"
	"errors"
	"time"

	"github.com/abhisek/mentorai/internal/document"
	"github.com/abhisek/mentorai/internal/quiz"
)

// ErrNotFound marks a lookup of a quiz, document or result that does not
// exist. Repos return nil for a miss; callers wrap this sentinel.
var ErrNotFound = errors.New("not found")

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To

	// Purpose filters LLM events. Ignored by result queries.
	Purpose string
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

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStats aggregates LLM usage for one purpose.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	Failures     int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo records and inspects LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns one event, or nil if it doesn't exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}

// ResultRecord is a stored quiz result.
type ResultRecord struct {
	ID       int         `json:"id"`
	Sequence int64       `json:"sequence"`
	Result   quiz.Result `json:"result"`
}

// ResultRepo is the quiz history.
type ResultRepo interface {
	// AppendResult adds a result at the end of the history.
	AppendResult(ctx context.Context, r quiz.Result) error

	// ListResults returns results oldest first. A Limit keeps the most
	// recent N.
	ListResults(ctx context.Context, opts QueryOpts) ([]ResultRecord, error)

	// GetResult returns one result, or nil if it doesn't exist.
	GetResult(ctx context.Context, id int) (*ResultRecord, error)

	// History returns every result, oldest first.
	History(ctx context.Context) ([]quiz.Result, error)
}

// QuizSummary describes a stored quiz without its questions.
type QuizSummary struct {
	ID        string    `json:"id"`
	Document  string    `json:"document"`
	Questions int       `json:"questions"`
	CreatedAt time.Time `json:"created_at"`
}

// QuizRepo stores generated quizzes so they can be taken later.
type QuizRepo interface {
	SaveQuiz(ctx context.Context, def *quiz.Definition) error
	// GetQuiz returns the quiz, or nil if it doesn't exist.
	GetQuiz(ctx context.Context, id string) (*quiz.Definition, error)
	// ListQuizzes returns quizzes newest first.
	ListQuizzes(ctx context.Context, limit int) ([]QuizSummary, error)
}

// DocumentRepo stores uploaded documents, keyed by name.
type DocumentRepo interface {
	// SaveDocument inserts or replaces the document with the same name.
	SaveDocument(ctx context.Context, doc *document.Document) error
	// GetDocument returns the document, or nil if it doesn't exist.
	GetDocument(ctx context.Context, name string) (*document.Document, error)
	// ListDocuments returns documents in upload order, without text.
	ListDocuments(ctx context.Context) ([]document.Document, error)
	// DeleteDocument reports whether a document was removed.
	DeleteDocument(ctx context.Context, name string) (bool, error)
}

// ProfileData is the persisted learner profile.
type ProfileData struct {
	Role       string
	Discipline string
	Level      string
	UpdatedAt  time.Time
}

// ProfileRepo stores the single learner profile.
type ProfileRepo interface {
	SaveProfile(ctx context.Context, p ProfileData) error
	// LoadProfile returns the zero value when no profile was saved.
	LoadProfile(ctx context.Context) (ProfileData, error)
}
