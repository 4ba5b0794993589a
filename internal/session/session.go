package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mkline/tutora/internal/assessment"
	"github.com/mkline/tutora/internal/lessons"
	"github.com/mkline/tutora/internal/questionbank"
	"github.com/mkline/tutora/internal/report"
	"github.com/mkline/tutora/internal/scoring"
	"github.com/mkline/tutora/internal/sentiment"
	"github.com/mkline/tutora/internal/store"
)

// Begin records the session start and loads the initial question batch.
// On fetch failure the runner stays retryable and no start event is
// written, so a failed begin leaves no trace in the log.
func (s *Session) Begin(ctx context.Context) error {
	if err := s.Runner.Start(ctx); err != nil {
		return err
	}
	s.questionsServed = len(s.Runner.Questions())
	if s.deps.Events != nil {
		if err := s.deps.Events.AppendSession(ctx, store.SessionEventData{
			SessionID: s.ID,
			Topic:     s.Topic,
			Action:    "start",
		}); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to record session start: %v\n", err)
		}
	}
	return nil
}

// SubmitAnswer records the learner's choice for the current phase.
func (s *Session) SubmitAnswer(index int, choice string) error {
	return s.Runner.RecordAnswer(index, choice)
}

// AdvanceAssessment moves the runner forward once the current phase is
// fully answered: initial -> adaptive, adaptive -> complete. An adaptive
// fetch failure completes the assessment on the initial answers alone;
// the session proceeds degraded and the error is returned for display.
func (s *Session) AdvanceAssessment(ctx context.Context) error {
	switch s.Runner.Phase() {
	case assessment.InitialPhase:
		perf := s.initialSnapshot()
		err := s.Runner.Advance(ctx, perf)
		var fetchErr *assessment.FetchError
		if errors.As(err, &fetchErr) {
			s.completeAssessment(ctx)
			return err
		}
		if err != nil {
			return err
		}
		s.questionsServed += len(s.Runner.Questions())
		return nil
	case assessment.AdaptivePhase:
		if err := s.Runner.Finish(); err != nil {
			return err
		}
		s.completeAssessment(ctx)
		return nil
	default:
		return fmt.Errorf("advance assessment from %s phase", s.Runner.Phase())
	}
}

// initialSnapshot reduces the answered initial phase into the
// performance shape the question source adapts on.
func (s *Session) initialSnapshot() questionbank.LearnerSnapshot {
	questions, answers := s.Runner.InitialResults()
	tally, _ := scoring.Score(questions, answers)
	attempted, correct := tally.Totals()
	return questionbank.LearnerSnapshot{
		CorrectCount: correct,
		TotalCount:   attempted,
		WeakConcepts: scoring.LearningPath(tally),
	}
}

// completeAssessment scores everything collected, persists the answer
// events, kicks off lesson generation, and moves to the waiting phase.
// The tally is always built locally; when a remote scorer is configured
// its score and learning path take precedence, falling back to the
// local reduction if the call fails.
func (s *Session) completeAssessment(ctx context.Context) {
	questions, answers := s.Runner.Collected()
	s.Tally, s.Vector = scoring.Score(questions, answers)
	s.PreScore = scoring.OverallScore(s.Tally)
	s.Recommendations = scoring.RecommendLessons(s.Tally)

	gaps := scoring.LearningPath(s.Tally)
	if s.deps.Complete != nil {
		_, initialAnswers := s.Runner.InitialResults()
		_, adaptiveAnswers := s.Runner.AdaptiveResults()
		analysis, err := s.deps.Complete(ctx, s.Topic, initialAnswers, adaptiveAnswers, questions)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: remote analysis failed, scoring locally: %v\n", err)
		} else {
			s.PreScore = analysis.OverallScore
			s.Recommendations = analysis.LearningPath
			gaps = analysis.LearningPath
		}
	}

	s.persistAnswers(ctx, questions, answers)

	if s.deps.Lessons != nil {
		s.deps.Lessons.RequestLesson(ctx, lessons.GenerateInput{
			Topic:      s.Topic,
			Competency: s.PreScore,
			Gaps:       gaps,
		})
	}
	s.phase = PhaseLessonWait
}

func (s *Session) persistAnswers(ctx context.Context, questions []questionbank.Question, answers map[int]string) {
	if s.deps.Events == nil {
		return
	}
	initialQuestions, _ := s.Runner.InitialResults()
	initialLen := len(initialQuestions)
	for i, q := range questions {
		phase := "initial"
		if i >= initialLen {
			phase = "adaptive"
		}
		data := store.AssessmentEventData{
			SessionID:     s.ID,
			Topic:         s.Topic,
			Phase:         phase,
			QuestionIndex: i,
			QuestionText:  q.Text,
			Concept:       q.Concept,
			ChosenOption:  answers[i],
			CorrectOption: q.Correct,
			Correct:       answers[i] == q.Correct,
			Difficulty:    q.Difficulty,
		}
		if err := s.deps.Events.AppendAssessment(ctx, data); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to record answer: %v\n", err)
		}
	}
}

// PollLesson consumes the generated lesson if one is ready, building
// the sequencer and entering the lesson phase. Returns false while
// generation is still in flight. LessonErr is set when the lesson is
// the fallback scaffold.
func (s *Session) PollLesson() bool {
	if s.phase != PhaseLessonWait || s.deps.Lessons == nil {
		return false
	}
	lesson, genErr, ready := s.deps.Lessons.ConsumeLesson()
	if !ready {
		return false
	}
	s.LessonErr = genErr
	s.Sequencer = lessons.NewSequencer(lesson)
	s.phase = PhaseLesson
	return true
}

// SubmitReflection takes the learner's free-text reflection for the
// current segment and dispatches it for sentiment analysis. Returns
// true when analysis is in flight; the caller must deliver the result
// via ApplyReading before AdvanceSegment unblocks. Returns false when
// no analysis will run, in which case the segment resolves immediately
// with no reading.
func (s *Session) SubmitReflection(ctx context.Context, reflection string, cb func(segment int, r *sentiment.Reading)) (bool, error) {
	if s.Sequencer == nil {
		return false, fmt.Errorf("no active lesson")
	}
	seg, ok := s.Sequencer.Current()
	if !ok {
		return false, fmt.Errorf("lesson already complete")
	}
	if err := s.Sequencer.BeginReflection(); err != nil {
		return false, err
	}

	dispatched := false
	if s.deps.Sentiment != nil {
		lessonContext := seg.Title + ": " + seg.Body
		dispatched = s.deps.Sentiment.Dispatch(ctx, s.Sequencer.Index(), reflection, lessonContext, cb)
	}
	if !dispatched {
		s.Sequencer.ResolveReflection()
		s.recordSegment(ctx, seg.Title, true, false)
	}
	return dispatched, nil
}

// ApplyReading attributes an analysis result (or its absence, when r is
// nil) to a segment and unblocks the sequencer. Call from the goroutine
// that owns the session.
func (s *Session) ApplyReading(ctx context.Context, segment int, r *sentiment.Reading) {
	if s.Sequencer == nil {
		return
	}
	captured := r != nil
	if captured {
		s.Aggregator.Add(*r)
		if s.deps.Events != nil {
			err := s.deps.Events.AppendSentiment(ctx, store.SentimentEventData{
				SessionID:     s.ID,
				Topic:         s.Topic,
				SegmentIndex:  segment,
				Confusion:     r.Confusion,
				Confidence:    r.Confidence,
				Engagement:    r.Engagement,
				Understanding: r.Understanding,
				Suggestion:    r.Suggestion,
			})
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to record reading: %v\n", err)
			}
		}
	}
	if segment == s.Sequencer.Index() {
		s.Sequencer.ResolveReflection()
		if seg, ok := s.Sequencer.Current(); ok {
			s.recordSegment(ctx, seg.Title, true, captured)
		}
	}
}

func (s *Session) recordSegment(ctx context.Context, title string, reflected, captured bool) {
	if s.deps.Events == nil {
		return
	}
	err := s.deps.Events.AppendLesson(ctx, store.LessonEventData{
		SessionID:           s.ID,
		Topic:               s.Topic,
		SegmentIndex:        s.Sequencer.Index(),
		SegmentTitle:        title,
		ReflectionSubmitted: reflected,
		SentimentCaptured:   captured,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record segment: %v\n", err)
	}
}

// AdvanceSegment moves to the next lesson segment, entering the summary
// phase after the last one. Refuses while the current segment's
// analysis is unresolved.
func (s *Session) AdvanceSegment() error {
	if s.Sequencer == nil {
		return fmt.Errorf("no active lesson")
	}
	if err := s.Sequencer.Advance(); err != nil {
		return err
	}
	s.segmentsCompleted++
	if s.Sequencer.Done() {
		s.phase = PhaseSummary
	}
	return nil
}

// End finalizes and submits the session record. Completed means every
// lesson segment was traversed; an abandoned session still produces a
// record over whatever was collected. Safe to call more than once; only
// the first submission lands.
func (s *Session) End(ctx context.Context, completed bool) *report.SessionRecord {
	var correct int
	if s.Tally != nil {
		_, correct = s.Tally.Totals()
	}
	rec := s.Reporter.Finalize(s.Topic, s.PreScore, s.Aggregator, report.Totals{
		QuestionsServed:   s.questionsServed,
		CorrectAnswers:    correct,
		SegmentsCompleted: s.segmentsCompleted,
		Duration:          time.Since(s.startTime),
	}, completed)
	s.Reporter.Submit(ctx, rec)
	if s.Tally != nil && !s.ended {
		s.saveSnapshot(ctx)
	}
	s.ended = true
	s.phase = PhaseSummary
	return rec
}

// snapshotKeep bounds how many historical competency snapshots are
// retained.
const snapshotKeep = 20

// saveSnapshot folds this session's competency result for the topic
// into the latest learner snapshot and persists a new one. Snapshot
// failures are non-fatal; the event log remains the source of truth.
func (s *Session) saveSnapshot(ctx context.Context) {
	if s.deps.Snapshots == nil {
		return
	}

	data := store.SnapshotData{Version: 1}
	var seq int64
	if latest, err := s.deps.Snapshots.Latest(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "warning: load snapshot: %v\n", err)
		return
	} else if latest != nil {
		data = latest.Data
		seq = latest.Sequence
	}
	if data.Competencies == nil {
		data.Competencies = make(map[string]store.TopicCompetency)
	}
	data.Competencies[s.Topic] = store.TopicCompetency{
		Score:     s.PreScore,
		Gaps:      scoring.RankGaps(s.Tally, -1),
		Strengths: scoring.RankStrengths(s.Tally, -1),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	data.SessionCount++

	snap := &store.Snapshot{
		Sequence:  seq + 1,
		Timestamp: time.Now().UTC(),
		Data:      data,
	}
	if err := s.deps.Snapshots.Save(ctx, snap); err != nil {
		fmt.Fprintf(os.Stderr, "warning: save snapshot: %v\n", err)
		return
	}
	if err := s.deps.Snapshots.Prune(ctx, snapshotKeep); err != nil {
		fmt.Fprintf(os.Stderr, "warning: prune snapshots: %v\n", err)
	}
}
