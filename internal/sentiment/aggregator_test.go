package sentiment

import (
	"math"
	"testing"
)

func TestSummarizeNilOnZeroReadings(t *testing.T) {
	a := NewAggregator()
	if got := a.Summarize(); got != nil {
		t.Errorf("summary = %+v, want nil to distinguish no data from all zero", got)
	}
}

func TestSummarizeAverages(t *testing.T) {
	a := NewAggregator()
	a.Add(Reading{Confusion: 0.8, Confidence: 0.4, Engagement: 0.6})
	a.Add(Reading{Confusion: 0.2, Confidence: 0.6, Engagement: 1.0})

	s := a.Summarize()
	if s == nil {
		t.Fatal("summary is nil")
	}
	if math.Abs(s.AvgConfusion-0.5) > 1e-9 {
		t.Errorf("avgConfusion = %v, want 0.5", s.AvgConfusion)
	}
	if math.Abs(s.AvgConfidence-0.5) > 1e-9 {
		t.Errorf("avgConfidence = %v, want 0.5", s.AvgConfidence)
	}
	if math.Abs(s.AvgEngagement-0.8) > 1e-9 {
		t.Errorf("avgEngagement = %v, want 0.8", s.AvgEngagement)
	}
	if s.ReadingCount != 2 {
		t.Errorf("readingCount = %d, want 2", s.ReadingCount)
	}
}

func TestNotePolicy(t *testing.T) {
	tests := []struct {
		name       string
		confusion  float64
		confidence float64
		want       string
	}{
		{"high confusion is cautionary", 0.7, 0.9, NoteCautionary},
		{"confusion exactly at cutoff falls through", 0.6, 0.5, NoteSteady},
		{"high confidence is encouraging", 0.1, 0.8, NoteEncouraging},
		{"confidence exactly at cutoff is encouraging", 0.1, 0.7, NoteEncouraging},
		{"neither branch is steady", 0.3, 0.5, NoteSteady},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAggregator()
			a.Add(Reading{Confusion: tt.confusion, Confidence: tt.confidence})
			if got := a.Summarize().Note; got != tt.want {
				t.Errorf("note = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMeanConfusionHalfFallsThroughCautionary(t *testing.T) {
	// 0.8 and 0.2 average to 0.5, which does not exceed 0.6.
	a := NewAggregator()
	a.Add(Reading{Confusion: 0.8, Confidence: 0.2})
	a.Add(Reading{Confusion: 0.2, Confidence: 0.4})

	s := a.Summarize()
	if math.Abs(s.AvgConfusion-0.5) > 1e-9 {
		t.Fatalf("avgConfusion = %v, want 0.5", s.AvgConfusion)
	}
	if s.Note == NoteCautionary {
		t.Errorf("0.5 mean confusion must not select the cautionary note")
	}
}

func TestMissingSegmentAveragesOverReceived(t *testing.T) {
	// Segment 2 of 3 failed analysis: only two readings arrive.
	a := NewAggregator()
	a.Add(Reading{Confusion: 0.4})
	a.Add(Reading{Confusion: 0.8})

	s := a.Summarize()
	if s.ReadingCount != 2 {
		t.Errorf("readingCount = %d, want 2", s.ReadingCount)
	}
	if math.Abs(s.AvgConfusion-0.6) > 1e-9 {
		t.Errorf("avgConfusion = %v, want the mean over 2, not 3", s.AvgConfusion)
	}
}

func TestReadingsKeepArrivalOrder(t *testing.T) {
	a := NewAggregator()
	a.Add(Reading{Suggestion: "first"})
	a.Add(Reading{Suggestion: "first"}) // duplicates are kept
	a.Add(Reading{Suggestion: "third"})

	got := a.Readings()
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3 (no dedup)", len(got))
	}
	if got[2].Suggestion != "third" {
		t.Errorf("order not preserved: %+v", got)
	}
}
