package sentiment

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/mkline/tutora/internal/llm"
)

func validReadingJSON() json.RawMessage {
	return json.RawMessage(`{
		"confusion_level": 0.2,
		"confidence_level": 0.8,
		"engagement_level": 0.9,
		"understanding": "good",
		"suggestion": "Add a concrete example next time.",
		"should_proceed": true
	}`)
}

func TestAnalyzeParsesReading(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validReadingJSON()})
	a := NewAnalyzer(mock, DefaultAnalyzerConfig())

	reading, err := a.Analyze(context.Background(), "That made sense, loss is just the error we minimize", "segment text")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if reading.Confidence != 0.8 {
		t.Errorf("confidence = %v", reading.Confidence)
	}
	if !reading.ShouldProceed {
		t.Error("shouldProceed = false")
	}
	if reading.Understanding != "good" {
		t.Errorf("understanding = %q", reading.Understanding)
	}
}

func TestAnalyzeProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("boom")})
	a := NewAnalyzer(mock, DefaultAnalyzerConfig())

	if _, err := a.Analyze(context.Background(), "huh?", ""); err == nil {
		t.Fatal("expected error")
	}
}

func TestServiceDeliversReadingWithSegment(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validReadingJSON()})
	svc := NewService(mock)
	defer svc.Close()

	type result struct {
		segment int
		reading *Reading
	}
	done := make(chan result, 1)

	ok := svc.Dispatch(context.Background(), 2, "clear as day", "segment text", func(segment int, r *Reading) {
		done <- result{segment, r}
	})
	if !ok {
		t.Fatal("dispatch refused")
	}

	select {
	case got := <-done:
		if got.segment != 2 {
			t.Errorf("segment = %d, want 2", got.segment)
		}
		if got.reading == nil || got.reading.Engagement != 0.9 {
			t.Errorf("reading = %+v", got.reading)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("callback never fired")
	}
}

func TestServiceFailureDeliversNilReading(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("rate limited")})
	svc := NewService(mock)
	defer svc.Close()

	done := make(chan *Reading, 1)
	svc.Dispatch(context.Background(), 0, "lost", "", func(_ int, r *Reading) {
		done <- r
	})

	select {
	case r := <-done:
		if r != nil {
			t.Errorf("reading = %+v, want nil so the segment contributes nothing", r)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("callback never fired")
	}
}

func TestServiceWithoutProviderRefusesDispatch(t *testing.T) {
	svc := NewService(nil)
	defer svc.Close()

	ok := svc.Dispatch(context.Background(), 0, "anything", "", func(int, *Reading) {
		t.Error("callback must not fire without an analyzer")
	})
	if ok {
		t.Error("dispatch accepted with no analyzer")
	}
}

func TestRemoteServiceDelegates(t *testing.T) {
	svc := NewRemoteService(func(_ context.Context, reflection, _ string) (*Reading, error) {
		if reflection != "pretty clear" {
			t.Errorf("reflection = %q", reflection)
		}
		return &Reading{Confidence: 0.9, ShouldProceed: true}, nil
	})
	defer svc.Close()

	got := make(chan *Reading, 1)
	ok := svc.Dispatch(context.Background(), 0, "pretty clear", "segment", func(_ int, r *Reading) {
		got <- r
	})
	if !ok {
		t.Fatal("dispatch refused")
	}
	select {
	case r := <-got:
		if r == nil || r.Confidence != 0.9 {
			t.Errorf("reading = %+v", r)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("callback never fired")
	}
}
