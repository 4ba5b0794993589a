package assessment

import (
	"context"
	"errors"
	"testing"

	"github.com/mkline/tutora/internal/questionbank"
)

// stubSource returns canned batches and can fail per phase.
type stubSource struct {
	initial     []questionbank.Question
	adaptive    []questionbank.Question
	initialErr  error
	adaptiveErr error
}

func (s *stubSource) InitialQuestions(_ context.Context, _ string) ([]questionbank.Question, error) {
	return s.initial, s.initialErr
}

func (s *stubSource) AdaptiveQuestions(_ context.Context, _ string, _ questionbank.LearnerSnapshot) ([]questionbank.Question, error) {
	return s.adaptive, s.adaptiveErr
}

func twoQuestions() []questionbank.Question {
	return []questionbank.Question{
		{Text: "Can lists change?", Options: []string{"A) Yes", "B) No", "C) Sometimes", "D) Never"}, Correct: "A", Concept: "basics"},
		{Text: "What mutates a list?", Options: []string{"A) read", "B) append", "C) len", "D) print"}, Correct: "B", Concept: "mutation"},
	}
}

func startedRunner(t *testing.T, src questionbank.Source) *Runner {
	t.Helper()
	r := NewRunner(src, "lists")
	if err := r.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	return r
}

func TestStartLoadsInitialPhase(t *testing.T) {
	r := startedRunner(t, &stubSource{initial: twoQuestions()})

	if r.Phase() != InitialPhase {
		t.Errorf("phase = %v, want InitialPhase", r.Phase())
	}
	if len(r.Questions()) != 2 {
		t.Errorf("questions = %d, want 2", len(r.Questions()))
	}
}

func TestStartFetchFailureAllowsRetry(t *testing.T) {
	src := &stubSource{initialErr: errors.New("connection refused")}
	r := NewRunner(src, "lists")

	err := r.Start(context.Background())
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("error = %v, want FetchError", err)
	}
	if r.Phase() != NotStarted {
		t.Errorf("phase = %v, want NotStarted so the learner can retry", r.Phase())
	}

	// Source recovers; retry succeeds.
	src.initialErr = nil
	src.initial = twoQuestions()
	if err := r.Start(context.Background()); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if r.Phase() != InitialPhase {
		t.Errorf("phase = %v after retry", r.Phase())
	}
}

func TestRecordAnswerOverwrites(t *testing.T) {
	r := startedRunner(t, &stubSource{initial: twoQuestions()})

	if err := r.RecordAnswer(0, "A"); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := r.RecordAnswer(0, "C"); err != nil {
		t.Fatalf("re-record: %v", err)
	}

	_, answers := r.InitialResults()
	if answers[0] != "C" {
		t.Errorf("answer = %q, want the replacement 'C'", answers[0])
	}
}

func TestRecordAnswerAcceptsOffListChoice(t *testing.T) {
	r := startedRunner(t, &stubSource{initial: twoQuestions()})

	if err := r.RecordAnswer(1, "garbage"); err != nil {
		t.Errorf("off-list choices must be accepted, got %v", err)
	}
}

func TestRecordAnswerRejectsOutOfRangeIndex(t *testing.T) {
	r := startedRunner(t, &stubSource{initial: twoQuestions()})

	if err := r.RecordAnswer(5, "A"); err == nil {
		t.Error("expected error for index outside the phase")
	}
	if err := r.RecordAnswer(-1, "A"); err == nil {
		t.Error("expected error for negative index")
	}
}

func TestPhaseComplete(t *testing.T) {
	r := startedRunner(t, &stubSource{initial: twoQuestions()})

	if r.PhaseComplete() {
		t.Error("phase complete with no answers")
	}
	r.RecordAnswer(0, "A")
	if r.PhaseComplete() {
		t.Error("phase complete with one of two answered")
	}
	r.RecordAnswer(1, "B")
	if !r.PhaseComplete() {
		t.Error("phase not complete with all answered")
	}
}

func TestAdvanceLoadsAdaptivePhase(t *testing.T) {
	adaptive := []questionbank.Question{
		{Text: "Deep cut", Options: []string{"A) w", "B) x", "C) y", "D) z"}, Correct: "D", Concept: "mutation", TargetsWeakness: true},
	}
	r := startedRunner(t, &stubSource{initial: twoQuestions(), adaptive: adaptive})
	r.RecordAnswer(0, "A")
	r.RecordAnswer(1, "X")

	if err := r.Advance(context.Background(), questionbank.LearnerSnapshot{CorrectCount: 1, TotalCount: 2}); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if r.Phase() != AdaptivePhase {
		t.Errorf("phase = %v, want AdaptivePhase", r.Phase())
	}
	if len(r.Questions()) != 1 {
		t.Errorf("questions = %d, want the adaptive batch", len(r.Questions()))
	}
}

func TestAdvanceRequiresCompleteInitialPhase(t *testing.T) {
	r := startedRunner(t, &stubSource{initial: twoQuestions()})
	r.RecordAnswer(0, "A")

	if err := r.Advance(context.Background(), questionbank.LearnerSnapshot{}); err == nil {
		t.Error("expected error advancing with unanswered questions")
	}
	if r.Phase() != InitialPhase {
		t.Errorf("phase = %v, want unchanged InitialPhase", r.Phase())
	}
}

func TestAdaptiveLoadFailureCompletesDegraded(t *testing.T) {
	r := startedRunner(t, &stubSource{
		initial:     twoQuestions(),
		adaptiveErr: errors.New("network down"),
	})
	r.RecordAnswer(0, "A")
	r.RecordAnswer(1, "B")

	err := r.Advance(context.Background(), questionbank.LearnerSnapshot{CorrectCount: 2, TotalCount: 2})
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("error = %v, want FetchError", err)
	}
	if r.Phase() != Complete {
		t.Errorf("phase = %v, want direct Complete on adaptive failure", r.Phase())
	}

	// Initial answers remain available for scoring.
	questions, answers := r.Collected()
	if len(questions) != 2 || len(answers) != 2 {
		t.Errorf("collected %d questions, %d answers; want the initial phase data", len(questions), len(answers))
	}
}

func TestNoTransitionLeavesComplete(t *testing.T) {
	r := startedRunner(t, &stubSource{initial: twoQuestions()})
	r.RecordAnswer(0, "A")
	r.RecordAnswer(1, "B")
	if err := r.Finish(); err != nil {
		t.Fatalf("finish: %v", err)
	}

	if err := r.Start(context.Background()); err == nil {
		t.Error("Start must fail once complete")
	}
	if err := r.Advance(context.Background(), questionbank.LearnerSnapshot{}); err == nil {
		t.Error("Advance must fail once complete")
	}
	if err := r.Finish(); err == nil {
		t.Error("Finish must fail once complete")
	}
	if err := r.RecordAnswer(0, "A"); err == nil {
		t.Error("RecordAnswer must fail once complete")
	}
	if r.Phase() != Complete {
		t.Errorf("phase = %v, want Complete", r.Phase())
	}
}

func TestCollectedMergesPhasesInEncounterOrder(t *testing.T) {
	adaptive := []questionbank.Question{
		{Text: "q3", Options: []string{"A) w", "B) x", "C) y", "D) z"}, Correct: "A", Concept: "mutation"},
	}
	r := startedRunner(t, &stubSource{initial: twoQuestions(), adaptive: adaptive})
	r.RecordAnswer(0, "A")
	r.RecordAnswer(1, "B")
	if err := r.Advance(context.Background(), questionbank.LearnerSnapshot{}); err != nil {
		t.Fatalf("advance: %v", err)
	}
	r.RecordAnswer(0, "D")

	questions, answers := r.Collected()
	if len(questions) != 3 {
		t.Fatalf("questions = %d, want 3", len(questions))
	}
	if questions[2].Text != "q3" {
		t.Errorf("adaptive question must follow initial ones, got %q", questions[2].Text)
	}
	if answers[2] != "D" {
		t.Errorf("adaptive answer at combined index 2 = %q, want 'D'", answers[2])
	}
}
