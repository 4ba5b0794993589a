package questionbank

import "context"

// Batch sizes for the two assessment phases.
const (
	InitialBatchSize  = 5
	AdaptiveBatchSize = 5
)

// Question represents a generated multiple-choice assessment question.
type Question struct {
	// Text is the question prompt displayed to the learner.
	Text string

	// Options holds the labeled choices, e.g. "A) A model trained on labels".
	// Exactly four, labeled A through D.
	Options []string

	// Correct is the identifier of the correct option: "A", "B", "C" or "D".
	Correct string

	// Concept tags the question for competency scoring. Questions the
	// generator leaves untagged are scored under a general bucket.
	Concept string

	// Difficulty is the LLM's self-assessed difficulty (1-5).
	Difficulty int

	// TargetsWeakness marks adaptive-phase questions aimed at a concept
	// the learner missed in the initial phase.
	TargetsWeakness bool
}

// LearnerSnapshot summarizes initial-phase performance for adaptive
// question generation.
type LearnerSnapshot struct {
	CorrectCount int
	TotalCount   int
	// WeakConcepts lists concepts ordered worst-accuracy-first.
	WeakConcepts []string
}

// Source produces assessment questions for a topic.
// Implementations: LLMSource (direct provider calls) and the remote
// backend client.
type Source interface {
	// InitialQuestions returns the fixed opening batch for a topic.
	InitialQuestions(ctx context.Context, topic string) ([]Question, error)

	// AdaptiveQuestions returns a follow-up batch shaped by initial
	// performance, weighted toward the learner's weak concepts.
	AdaptiveQuestions(ctx context.Context, topic string, perf LearnerSnapshot) ([]Question, error)
}
