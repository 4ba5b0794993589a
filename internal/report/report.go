package report

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/mkline/tutora/internal/sentiment"
)

// SessionRecord is the final record of one learning session. Built
// write-once after all lesson segments are traversed (or the session
// is explicitly abandoned) and never mutated after construction.
type SessionRecord struct {
	Topic     string              `json:"topic"`
	PreScore  float64             `json:"pre_score"`
	Readings  []sentiment.Reading `json:"readings"`
	Summary   *sentiment.Summary  `json:"summary,omitempty"`
	Completed bool                `json:"completed"`
	Timestamp time.Time           `json:"timestamp"`

	// Session totals for the event log.
	QuestionsServed   int `json:"questions_served,omitempty"`
	CorrectAnswers    int `json:"correct_answers,omitempty"`
	SegmentsCompleted int `json:"segments_completed,omitempty"`
	DurationSecs      int `json:"duration_secs,omitempty"`
}

// Saver persists a finished session record.
type Saver interface {
	SaveSession(ctx context.Context, rec *SessionRecord) error
}

// Reporter builds the session record and submits it for persistence
// exactly once.
type Reporter struct {
	saver Saver

	mu        sync.Mutex
	submitted bool
}

// NewReporter creates a reporter backed by the given saver.
func NewReporter(saver Saver) *Reporter {
	return &Reporter{saver: saver}
}

// Totals carries session counters into the record.
type Totals struct {
	QuestionsServed   int
	CorrectAnswers    int
	SegmentsCompleted int
	Duration          time.Duration
}

// Finalize combines the assessment score and sentiment data into a
// write-once SessionRecord.
func (r *Reporter) Finalize(topic string, preScore float64, agg *sentiment.Aggregator, totals Totals, completed bool) *SessionRecord {
	rec := &SessionRecord{
		Topic:             topic,
		PreScore:          preScore,
		Completed:         completed,
		Timestamp:         time.Now(),
		QuestionsServed:   totals.QuestionsServed,
		CorrectAnswers:    totals.CorrectAnswers,
		SegmentsCompleted: totals.SegmentsCompleted,
		DurationSecs:      int(totals.Duration.Seconds()),
	}
	if agg != nil {
		rec.Readings = agg.Readings()
		rec.Summary = agg.Summarize()
	}
	return rec
}

// Submit persists the record in the background. Failure is logged,
// never surfaced: the learner sees their results regardless of whether
// the save landed. A reporter submits at most once.
func (r *Reporter) Submit(ctx context.Context, rec *SessionRecord) {
	r.mu.Lock()
	if r.submitted {
		r.mu.Unlock()
		return
	}
	r.submitted = true
	r.mu.Unlock()

	if r.saver == nil {
		return
	}
	go func() {
		if err := r.saver.SaveSession(ctx, rec); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to save session: %v\n", err)
		}
	}()
}
