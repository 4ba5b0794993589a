package report

import (
	"context"

	"github.com/mkline/tutora/internal/store"
)

// StoreSaver persists session records to the local event log.
type StoreSaver struct {
	events    store.EventRepo
	sessionID string
}

// NewStoreSaver creates a saver that appends SessionEvents under the
// given session ID.
func NewStoreSaver(events store.EventRepo, sessionID string) *StoreSaver {
	return &StoreSaver{events: events, sessionID: sessionID}
}

func (s *StoreSaver) SaveSession(ctx context.Context, rec *SessionRecord) error {
	data := store.SessionEventData{
		SessionID:         s.sessionID,
		Topic:             rec.Topic,
		Action:            "end",
		PreScore:          rec.PreScore,
		QuestionsServed:   rec.QuestionsServed,
		CorrectAnswers:    rec.CorrectAnswers,
		SegmentsCompleted: rec.SegmentsCompleted,
		Completed:         rec.Completed,
		DurationSecs:      rec.DurationSecs,
	}
	if rec.Summary != nil {
		data.SentimentSummary = &store.SentimentSummaryData{
			AvgConfusion:  rec.Summary.AvgConfusion,
			AvgConfidence: rec.Summary.AvgConfidence,
			AvgEngagement: rec.Summary.AvgEngagement,
			ReadingCount:  rec.Summary.ReadingCount,
			Note:          rec.Summary.Note,
		}
	}
	return s.events.AppendSession(ctx, data)
}
