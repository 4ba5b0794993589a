package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// TopicCompetency is the persisted competency state for one topic.
type TopicCompetency struct {
	Score     float64  `json:"score"`      // 0-10 overall assessment score
	Gaps      []string `json:"gaps"`       // concepts ranked weakest first
	Strengths []string `json:"strengths"`  // concepts ranked strongest first
	UpdatedAt string   `json:"updated_at"` // RFC3339
}

// SnapshotData captures the full learner state at a point in time.
type SnapshotData struct {
	Version      int                        `json:"version"`
	Competencies map[string]TopicCompetency `json:"competencies,omitempty"`
	SessionCount int                        `json:"session_count"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// AssessmentEventData captures one answered assessment question.
type AssessmentEventData struct {
	SessionID     string
	Topic         string
	Phase         string // "initial" or "adaptive"
	QuestionIndex int
	QuestionText  string
	Concept       string
	ChosenOption  string
	CorrectOption string
	Correct       bool
	Difficulty    int
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID         string
	Topic             string
	Action            string // "start" or "end"
	PreScore          float64
	QuestionsServed   int
	CorrectAnswers    int
	SegmentsCompleted int
	Completed         bool
	DurationSecs      int
	SentimentSummary  *SentimentSummaryData
}

// SentimentSummaryData is the aggregate persisted on session end.
type SentimentSummaryData struct {
	AvgConfusion  float64
	AvgConfidence float64
	AvgEngagement float64
	ReadingCount  int
	Note          string
}

// SentimentEventData captures one sentiment reading.
type SentimentEventData struct {
	SessionID     string
	Topic         string
	SegmentIndex  int
	Confusion     float64
	Confidence    float64
	Engagement    float64
	Understanding string
	Suggestion    string
}

// LessonEventData captures one lesson segment being shown.
type LessonEventData struct {
	SessionID           string
	Topic               string
	SegmentIndex        int
	SegmentTitle        string
	ReflectionSubmitted bool
	SentimentCaptured   bool
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
}

// LLMEvent is a queried LLM request event row.
type LLMEvent struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// SessionSummaryRow is a queried session-end event used by the stats command.
type SessionSummaryRow struct {
	SessionID         string
	Topic             string
	Timestamp         time.Time
	PreScore          float64
	QuestionsServed   int
	CorrectAnswers    int
	SegmentsCompleted int
	Completed         bool
	DurationSecs      int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAssessment records one answered assessment question.
	AppendAssessment(ctx context.Context, data AssessmentEventData) error

	// AppendSession records a session start or end event.
	AppendSession(ctx context.Context, data SessionEventData) error

	// AppendSentiment records one sentiment reading.
	AppendSentiment(ctx context.Context, data SentimentEventData) error

	// AppendLesson records a lesson segment being shown.
	AppendLesson(ctx context.Context, data LessonEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// TopicAccuracy returns the historical answer accuracy for a topic,
	// or 0 when no answers have been recorded.
	TopicAccuracy(ctx context.Context, topic string) (float64, error)

	// SessionHistory returns session-end events, most recent first.
	SessionHistory(ctx context.Context, opts QueryOpts) ([]SessionSummaryRow, error)

	// QueryLLMEvents returns LLM request events, most recent first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)
}
