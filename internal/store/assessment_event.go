package store

import (
	"context"
	"fmt"

	"github.com/mkline/tutora/ent/assessmentevent"
)

func (r *eventRepo) AppendAssessment(ctx context.Context, data AssessmentEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	concept := data.Concept
	if concept == "" {
		concept = "general"
	}

	_, err = r.client.AssessmentEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetTopic(data.Topic).
		SetPhase(data.Phase).
		SetQuestionIndex(data.QuestionIndex).
		SetQuestionText(data.QuestionText).
		SetConcept(concept).
		SetChosenOption(data.ChosenOption).
		SetCorrectOption(data.CorrectOption).
		SetCorrect(data.Correct).
		SetDifficulty(data.Difficulty).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save assessment event: %w", err)
	}
	return nil
}

func (r *eventRepo) TopicAccuracy(ctx context.Context, topic string) (float64, error) {
	events, err := r.client.AssessmentEvent.Query().
		Where(assessmentevent.Topic(topic)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query topic accuracy: %w", err)
	}
	if len(events) == 0 {
		return 0, nil
	}

	correct := 0
	for _, e := range events {
		if e.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(events)), nil
}
