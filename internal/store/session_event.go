package store

import (
	"context"
	"fmt"

	"github.com/mkline/tutora/ent"
	"github.com/mkline/tutora/ent/sessionevent"
	entschema "github.com/mkline/tutora/ent/schema"
)

func (r *eventRepo) AppendSession(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetTopic(data.Topic).
		SetAction(data.Action).
		SetPreScore(data.PreScore).
		SetQuestionsServed(data.QuestionsServed).
		SetCorrectAnswers(data.CorrectAnswers).
		SetSegmentsCompleted(data.SegmentsCompleted).
		SetCompleted(data.Completed).
		SetDurationSecs(data.DurationSecs)

	if data.SentimentSummary != nil {
		builder = builder.SetSentimentSummary(&entschema.SentimentSummary{
			AvgConfusion:  data.SentimentSummary.AvgConfusion,
			AvgConfidence: data.SentimentSummary.AvgConfidence,
			AvgEngagement: data.SentimentSummary.AvgEngagement,
			ReadingCount:  data.SentimentSummary.ReadingCount,
			Note:          data.SentimentSummary.Note,
		})
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) SessionHistory(ctx context.Context, opts QueryOpts) ([]SessionSummaryRow, error) {
	q := r.client.SessionEvent.Query().
		Where(sessionevent.Action("end")).
		Order(ent.Desc(sessionevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session history: %w", err)
	}

	rows := make([]SessionSummaryRow, 0, len(events))
	for _, e := range events {
		rows = append(rows, SessionSummaryRow{
			SessionID:         e.SessionID,
			Topic:             e.Topic,
			Timestamp:         e.Timestamp,
			PreScore:          e.PreScore,
			QuestionsServed:   e.QuestionsServed,
			CorrectAnswers:    e.CorrectAnswers,
			SegmentsCompleted: e.SegmentsCompleted,
			Completed:         e.Completed,
			DurationSecs:      e.DurationSecs,
		})
	}
	return rows, nil
}
