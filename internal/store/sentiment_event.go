package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendSentiment(ctx context.Context, data SentimentEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SentimentEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetTopic(data.Topic).
		SetSegmentIndex(data.SegmentIndex).
		SetConfusion(data.Confusion).
		SetConfidence(data.Confidence).
		SetEngagement(data.Engagement).
		SetUnderstanding(data.Understanding).
		SetSuggestion(data.Suggestion).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save sentiment event: %w", err)
	}
	return nil
}
