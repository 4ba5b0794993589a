package session

import (
	"time"

	"github.com/mkline/tutora/internal/scoring"
	"github.com/mkline/tutora/internal/sentiment"
	"github.com/mkline/tutora/internal/topics"
)

// topConcepts caps the strengths and gaps lists on the summary screen.
const topConcepts = 3

// Summary holds everything the summary screen displays.
type Summary struct {
	Topic             string
	Score             float64
	Strengths         []string
	Gaps              []string
	Recommendations   []string
	Sentiment         *sentiment.Summary
	QuestionsServed   int
	CorrectAnswers    int
	SegmentsCompleted int
	Duration          time.Duration
}

// BuildSummary reduces the session to its summary. Valid at any point;
// an abandoned session summarizes whatever was collected.
func (s *Session) BuildSummary() *Summary {
	sum := &Summary{
		Topic:             topics.DisplayName(s.Topic),
		QuestionsServed:   s.questionsServed,
		SegmentsCompleted: s.segmentsCompleted,
		Duration:          time.Since(s.startTime),
		Sentiment:         s.Aggregator.Summarize(),
	}
	if s.Tally != nil {
		sum.Score = s.PreScore
		sum.Strengths = scoring.RankStrengths(s.Tally, topConcepts)
		sum.Gaps = scoring.RankGaps(s.Tally, topConcepts)
		sum.Recommendations = s.Recommendations
		_, sum.CorrectAnswers = s.Tally.Totals()
	}
	return sum
}
