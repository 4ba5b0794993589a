package assessment

import (
	"context"
	"fmt"

	"github.com/mkline/tutora/internal/questionbank"
)

// Phase is the runner's position in the assessment flow.
type Phase int

const (
	NotStarted Phase = iota
	InitialPhase
	AdaptivePhase
	Complete
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "not-started"
	case InitialPhase:
		return "initial"
	case AdaptivePhase:
		return "adaptive"
	case Complete:
		return "complete"
	default:
		return "unknown"
	}
}

// FetchError indicates the question source could not supply a phase.
type FetchError struct {
	Phase Phase
	Err   error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching %s phase questions: %v", e.Phase, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Runner walks a learner through the two assessment phases for one
// topic, collecting exactly one answer per question. Not safe for
// concurrent use; each session owns its runner.
type Runner struct {
	source questionbank.Source
	topic  string
	phase  Phase

	initial  phaseState
	adaptive phaseState
}

// phaseState holds one phase's questions and collected answers.
// Answers overwrite; unanswered indices are absent.
type phaseState struct {
	questions []questionbank.Question
	answers   map[int]string
}

func (s *phaseState) complete() bool {
	if len(s.questions) == 0 {
		return false
	}
	for i := range s.questions {
		if s.answers[i] == "" {
			return false
		}
	}
	return true
}

// NewRunner creates a runner for one topic backed by the given source.
func NewRunner(source questionbank.Source, topic string) *Runner {
	return &Runner{
		source:   source,
		topic:    topic,
		initial:  phaseState{answers: make(map[int]string)},
		adaptive: phaseState{answers: make(map[int]string)},
	}
}

func (r *Runner) Topic() string { return r.topic }
func (r *Runner) Phase() Phase  { return r.phase }

// Start loads the initial question batch. On fetch failure the runner
// stays in NotStarted so the caller can retry.
func (r *Runner) Start(ctx context.Context) error {
	if r.phase != NotStarted {
		return fmt.Errorf("start from %s phase", r.phase)
	}
	questions, err := r.source.InitialQuestions(ctx, r.topic)
	if err != nil {
		return &FetchError{Phase: InitialPhase, Err: err}
	}
	r.initial.questions = questions
	r.phase = InitialPhase
	return nil
}

// Advance moves from the initial phase to the adaptive phase, loading
// the follow-up batch shaped by initial performance. When the load
// fails the runner completes on the initial answers alone: the session
// is degraded but valid, and the returned FetchError is for logging.
func (r *Runner) Advance(ctx context.Context, perf questionbank.LearnerSnapshot) error {
	if r.phase != InitialPhase {
		return fmt.Errorf("advance from %s phase", r.phase)
	}
	if !r.initial.complete() {
		return fmt.Errorf("initial phase has unanswered questions")
	}

	questions, err := r.source.AdaptiveQuestions(ctx, r.topic, perf)
	if err != nil {
		r.phase = Complete
		return &FetchError{Phase: AdaptivePhase, Err: err}
	}
	r.adaptive.questions = questions
	r.phase = AdaptivePhase
	return nil
}

// Finish completes the assessment. Valid from either answering phase
// once that phase is fully answered.
func (r *Runner) Finish() error {
	switch r.phase {
	case InitialPhase:
		if !r.initial.complete() {
			return fmt.Errorf("initial phase has unanswered questions")
		}
	case AdaptivePhase:
		if !r.adaptive.complete() {
			return fmt.Errorf("adaptive phase has unanswered questions")
		}
	default:
		return fmt.Errorf("finish from %s phase", r.phase)
	}
	r.phase = Complete
	return nil
}

// Questions returns the current phase's question list.
func (r *Runner) Questions() []questionbank.Question {
	switch r.phase {
	case InitialPhase:
		return r.initial.questions
	case AdaptivePhase:
		return r.adaptive.questions
	default:
		return nil
	}
}

// RecordAnswer stores the learner's choice for a question in the
// current phase. Re-answering replaces the prior choice. The choice is
// not checked against the listed options; an off-list choice simply
// scores as incorrect.
func (r *Runner) RecordAnswer(index int, choice string) error {
	var state *phaseState
	switch r.phase {
	case InitialPhase:
		state = &r.initial
	case AdaptivePhase:
		state = &r.adaptive
	default:
		return fmt.Errorf("record answer in %s phase", r.phase)
	}
	if index < 0 || index >= len(state.questions) {
		return fmt.Errorf("answer index %d out of range (phase has %d questions)", index, len(state.questions))
	}
	state.answers[index] = choice
	return nil
}

// PhaseComplete reports whether every question in the current phase
// has a non-empty answer.
func (r *Runner) PhaseComplete() bool {
	switch r.phase {
	case InitialPhase:
		return r.initial.complete()
	case AdaptivePhase:
		return r.adaptive.complete()
	default:
		return false
	}
}

// InitialResults returns the initial phase's questions and answers.
func (r *Runner) InitialResults() ([]questionbank.Question, map[int]string) {
	return r.initial.questions, cloneAnswers(r.initial.answers)
}

// AdaptiveResults returns the adaptive phase's questions and answers.
// Both are empty when the adaptive fetch failed or never ran.
func (r *Runner) AdaptiveResults() ([]questionbank.Question, map[int]string) {
	return r.adaptive.questions, cloneAnswers(r.adaptive.answers)
}

// Collected returns all questions asked across both phases with the
// learner's answers keyed by combined index, ready for scoring.
// Adaptive questions follow initial ones in encounter order.
func (r *Runner) Collected() ([]questionbank.Question, map[int]string) {
	questions := make([]questionbank.Question, 0, len(r.initial.questions)+len(r.adaptive.questions))
	questions = append(questions, r.initial.questions...)
	questions = append(questions, r.adaptive.questions...)

	answers := cloneAnswers(r.initial.answers)
	offset := len(r.initial.questions)
	for i, choice := range r.adaptive.answers {
		answers[offset+i] = choice
	}
	return questions, answers
}

func cloneAnswers(m map[int]string) map[int]string {
	out := make(map[int]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
