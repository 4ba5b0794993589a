package report

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/mkline/tutora/internal/sentiment"
)

// recordingSaver counts saves and can fail.
type recordingSaver struct {
	mu    sync.Mutex
	saved []*SessionRecord
	err   error
	done  chan struct{}
}

func newRecordingSaver(err error) *recordingSaver {
	return &recordingSaver{err: err, done: make(chan struct{}, 4)}
}

func (s *recordingSaver) SaveSession(_ context.Context, rec *SessionRecord) error {
	s.mu.Lock()
	s.saved = append(s.saved, rec)
	s.mu.Unlock()
	s.done <- struct{}{}
	return s.err
}

func (s *recordingSaver) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.saved)
}

func (s *recordingSaver) wait(t *testing.T) {
	t.Helper()
	select {
	case <-s.done:
	case <-time.After(2 * time.Second):
		t.Fatal("save never happened")
	}
}

func TestFinalizeBuildsRecord(t *testing.T) {
	agg := sentiment.NewAggregator()
	agg.Add(sentiment.Reading{Confusion: 0.3, Confidence: 0.8})
	agg.Add(sentiment.Reading{Confusion: 0.1, Confidence: 0.9})

	r := NewReporter(nil)
	rec := r.Finalize("generative-models", 6.0, agg, Totals{QuestionsServed: 10, CorrectAnswers: 6}, true)

	if rec.Topic != "generative-models" || rec.PreScore != 6.0 || !rec.Completed {
		t.Errorf("record = %+v", rec)
	}
	if len(rec.Readings) != 2 {
		t.Errorf("readings = %d, want 2", len(rec.Readings))
	}
	if rec.Summary == nil || rec.Summary.Note == "" {
		t.Errorf("summary = %+v", rec.Summary)
	}
	if rec.Timestamp.IsZero() {
		t.Error("timestamp not set")
	}
}

func TestFinalizeWithNoReadings(t *testing.T) {
	r := NewReporter(nil)
	rec := r.Finalize("lists", 4.0, sentiment.NewAggregator(), Totals{}, false)

	if rec.Summary != nil {
		t.Errorf("summary = %+v, want nil with zero readings", rec.Summary)
	}
	if len(rec.Readings) != 0 {
		t.Errorf("readings = %d", len(rec.Readings))
	}
}

func TestSubmitExactlyOnce(t *testing.T) {
	saver := newRecordingSaver(nil)
	r := NewReporter(saver)
	rec := r.Finalize("lists", 5.0, nil, Totals{}, true)

	r.Submit(context.Background(), rec)
	r.Submit(context.Background(), rec)
	r.Submit(context.Background(), rec)

	saver.wait(t)
	// Give any extra goroutines a moment to misbehave.
	time.Sleep(50 * time.Millisecond)
	if got := saver.count(); got != 1 {
		t.Errorf("saves = %d, want exactly 1", got)
	}
}

func TestSubmitFailureDoesNotBlock(t *testing.T) {
	saver := newRecordingSaver(errors.New("disk full"))
	r := NewReporter(saver)
	rec := r.Finalize("lists", 5.0, nil, Totals{}, true)

	// Submit returns immediately; the failure is logged in the
	// background and never surfaces here.
	r.Submit(context.Background(), rec)
	saver.wait(t)
}

func TestRecordJSONRoundTrip(t *testing.T) {
	agg := sentiment.NewAggregator()
	agg.Add(sentiment.Reading{Confusion: 0.2, Confidence: 0.7, Engagement: 0.9, Understanding: "good"})
	agg.Add(sentiment.Reading{Confusion: 0.5, Confidence: 0.4, Engagement: 0.6, Understanding: "fair"})
	agg.Add(sentiment.Reading{Confusion: 0.1, Confidence: 0.9, Engagement: 0.8, Understanding: "excellent"})

	r := NewReporter(nil)
	rec := r.Finalize("reinforcement-learning", 7.5, agg, Totals{}, true)

	raw, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got SessionRecord
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got.Topic != rec.Topic {
		t.Errorf("topic = %q, want %q", got.Topic, rec.Topic)
	}
	if got.PreScore != rec.PreScore {
		t.Errorf("preScore = %v, want %v", got.PreScore, rec.PreScore)
	}
	if len(got.Readings) != len(rec.Readings) {
		t.Errorf("readings = %d, want %d", len(got.Readings), len(rec.Readings))
	}
}
