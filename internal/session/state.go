package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mkline/tutora/internal/assessment"
	"github.com/mkline/tutora/internal/lessons"
	"github.com/mkline/tutora/internal/questionbank"
	"github.com/mkline/tutora/internal/report"
	"github.com/mkline/tutora/internal/scoring"
	"github.com/mkline/tutora/internal/sentiment"
	"github.com/mkline/tutora/internal/store"
)

// Phase is the session's position in the learning flow.
type Phase int

const (
	PhaseAssessing  Phase = iota // Serving assessment questions
	PhaseLessonWait              // Lesson generation in flight
	PhaseLesson                  // Walking lesson segments
	PhaseSummary                 // Showing the session summary
)

func (p Phase) String() string {
	switch p {
	case PhaseAssessing:
		return "assessing"
	case PhaseLessonWait:
		return "lesson-wait"
	case PhaseLesson:
		return "lesson"
	case PhaseSummary:
		return "summary"
	default:
		return "unknown"
	}
}

// CompleteFunc submits both assessment phases for remote analysis.
type CompleteFunc func(ctx context.Context, topic string, initialAnswers, adaptiveAnswers map[int]string, questions []questionbank.Question) (*scoring.Analysis, error)

// Deps are the services a session orchestrates. Events and Saver may be
// nil; the session then runs without persistence. Complete delegates
// final assessment analysis to a hosted scorer; nil scores locally.
type Deps struct {
	Source    questionbank.Source
	Lessons   *lessons.Service
	Sentiment *sentiment.Service
	Complete  CompleteFunc
	Events    store.EventRepo
	Snapshots store.SnapshotRepo
	Saver     report.Saver
}

// Session owns the state for one learner sitting: assessment, lesson,
// per-segment sentiment, and the final record. Not safe for concurrent
// use; callbacks from async services must be funneled back onto the
// goroutine that owns the session before applying them.
type Session struct {
	ID    string
	Topic string

	Runner     *assessment.Runner
	Sequencer  *lessons.Sequencer
	Aggregator *sentiment.Aggregator
	Reporter   *report.Reporter

	// Assessment results, populated when the runner completes.
	Tally           *scoring.Tally
	Vector          scoring.Vector
	PreScore        float64
	Recommendations []string

	// LessonErr is the generation error when the active lesson is the
	// deterministic fallback, nil when generation succeeded.
	LessonErr error

	phase             Phase
	startTime         time.Time
	questionsServed   int
	segmentsCompleted int
	ended             bool

	deps Deps
}

// New creates a session for one topic. The session starts in the
// assessing phase; call Begin to load the first question batch.
func New(topic string, deps Deps) *Session {
	id := uuid.NewString()
	saver := deps.Saver
	if saver == nil && deps.Events != nil {
		saver = report.NewStoreSaver(deps.Events, id)
	}
	return &Session{
		ID:         id,
		Topic:      topic,
		Runner:     assessment.NewRunner(deps.Source, topic),
		Aggregator: sentiment.NewAggregator(),
		Reporter:   report.NewReporter(saver),
		phase:      PhaseAssessing,
		startTime:  time.Now(),
		deps:       deps,
	}
}

func (s *Session) Phase() Phase           { return s.phase }
func (s *Session) StartTime() time.Time   { return s.startTime }
func (s *Session) QuestionsServed() int   { return s.questionsServed }
func (s *Session) SegmentsCompleted() int { return s.segmentsCompleted }
func (s *Session) Elapsed() time.Duration { return time.Since(s.startTime) }
