package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/mkline/tutora/internal/assessment"
	"github.com/mkline/tutora/internal/lessons"
	"github.com/mkline/tutora/internal/llm"
	"github.com/mkline/tutora/internal/questionbank"
	"github.com/mkline/tutora/internal/report"
	"github.com/mkline/tutora/internal/scoring"
	"github.com/mkline/tutora/internal/sentiment"
	"github.com/mkline/tutora/internal/store"
)

// stubSource returns canned batches and records the snapshot it is
// adapted on.
type stubSource struct {
	initial     []questionbank.Question
	adaptive    []questionbank.Question
	initialErr  error
	adaptiveErr error
	gotSnapshot questionbank.LearnerSnapshot
}

func (s *stubSource) InitialQuestions(_ context.Context, _ string) ([]questionbank.Question, error) {
	return s.initial, s.initialErr
}

func (s *stubSource) AdaptiveQuestions(_ context.Context, _ string, perf questionbank.LearnerSnapshot) ([]questionbank.Question, error) {
	s.gotSnapshot = perf
	return s.adaptive, s.adaptiveErr
}

// recordingRepo captures appended events; queries are unused here.
type recordingRepo struct {
	mu          sync.Mutex
	sessions    []store.SessionEventData
	assessments []store.AssessmentEventData
	sentiments  []store.SentimentEventData
	lessons     []store.LessonEventData
}

func (r *recordingRepo) AppendAssessment(_ context.Context, d store.AssessmentEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.assessments = append(r.assessments, d)
	return nil
}

func (r *recordingRepo) AppendSession(_ context.Context, d store.SessionEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions = append(r.sessions, d)
	return nil
}

func (r *recordingRepo) AppendSentiment(_ context.Context, d store.SentimentEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sentiments = append(r.sentiments, d)
	return nil
}

func (r *recordingRepo) AppendLesson(_ context.Context, d store.LessonEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lessons = append(r.lessons, d)
	return nil
}

func (r *recordingRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}

func (r *recordingRepo) TopicAccuracy(_ context.Context, _ string) (float64, error) {
	return 0, nil
}

func (r *recordingRepo) SessionHistory(_ context.Context, _ store.QueryOpts) ([]store.SessionSummaryRow, error) {
	return nil, nil
}

func (r *recordingRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMEvent, error) {
	return nil, nil
}

// countingSaver records saves and signals each arrival.
type countingSaver struct {
	mu    sync.Mutex
	saves []*report.SessionRecord
	done  chan struct{}
}

func newCountingSaver() *countingSaver {
	return &countingSaver{done: make(chan struct{}, 4)}
}

func (c *countingSaver) SaveSession(_ context.Context, rec *report.SessionRecord) error {
	c.mu.Lock()
	c.saves = append(c.saves, rec)
	c.mu.Unlock()
	c.done <- struct{}{}
	return nil
}

func initialBatch() []questionbank.Question {
	return []questionbank.Question{
		{Text: "What does a label provide?", Options: []string{"A) Target output", "B) Input noise", "C) A cluster", "D) A reward"}, Correct: "A", Concept: "labels"},
		{Text: "What does a loss function measure?", Options: []string{"A) Memory", "B) Prediction error", "C) Dataset size", "D) Epochs"}, Correct: "B", Concept: "loss functions"},
	}
}

func adaptiveBatch() []questionbank.Question {
	return []questionbank.Question{
		{Text: "What is overfitting?", Options: []string{"A) Slow training", "B) Underuse of data", "C) Memorizing noise", "D) Small models"}, Correct: "C", Concept: "overfitting"},
	}
}

func lessonJSON() json.RawMessage {
	return json.RawMessage(`{
		"topic": "Supervised Learning",
		"overview": "How models learn from labeled data.",
		"chunks": [
			{"title": "Labels", "content": "Labels are the target outputs.", "key_point": "Labels supervise."},
			{"title": "Loss", "content": "Loss measures prediction error.", "key_point": "Lower is better."}
		],
		"key_takeaways": ["Labels drive training."]
	}`)
}

func startedSession(t *testing.T, deps Deps) *Session {
	t.Helper()
	s := New("supervised-learning", deps)
	if err := s.Begin(context.Background()); err != nil {
		t.Fatalf("begin: %v", err)
	}
	return s
}

func answerAll(t *testing.T, s *Session, choices ...string) {
	t.Helper()
	for i, c := range choices {
		if err := s.SubmitAnswer(i, c); err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
	}
}

func TestBeginRecordsStartEvent(t *testing.T) {
	repo := &recordingRepo{}
	s := startedSession(t, Deps{Source: &stubSource{initial: initialBatch()}, Events: repo})

	if len(repo.sessions) != 1 {
		t.Fatalf("session events = %d, want 1", len(repo.sessions))
	}
	if repo.sessions[0].Action != "start" || repo.sessions[0].SessionID != s.ID {
		t.Errorf("start event = %+v", repo.sessions[0])
	}
	if s.QuestionsServed() != 2 {
		t.Errorf("questions served = %d, want 2", s.QuestionsServed())
	}
}

func TestBeginFetchFailureLeavesNoTrace(t *testing.T) {
	repo := &recordingRepo{}
	s := New("supervised-learning", Deps{Source: &stubSource{initialErr: errors.New("timeout")}, Events: repo})

	if err := s.Begin(context.Background()); err == nil {
		t.Fatal("expected fetch error")
	}
	if len(repo.sessions) != 0 {
		t.Errorf("session events = %d, want 0 after failed begin", len(repo.sessions))
	}
	if s.Runner.Phase() != assessment.NotStarted {
		t.Errorf("runner phase = %v, want NotStarted", s.Runner.Phase())
	}
}

func TestFullAssessmentScoresAndPersists(t *testing.T) {
	repo := &recordingRepo{}
	src := &stubSource{initial: initialBatch(), adaptive: adaptiveBatch()}
	s := startedSession(t, Deps{Source: src, Events: repo})

	// One miss in the initial phase.
	answerAll(t, s, "A", "D")
	if err := s.AdvanceAssessment(context.Background()); err != nil {
		t.Fatalf("advance to adaptive: %v", err)
	}
	if s.Runner.Phase() != assessment.AdaptivePhase {
		t.Fatalf("runner phase = %v, want AdaptivePhase", s.Runner.Phase())
	}
	if s.QuestionsServed() != 3 {
		t.Errorf("questions served = %d, want 3", s.QuestionsServed())
	}

	// The source sees the initial performance.
	if src.gotSnapshot.TotalCount != 2 || src.gotSnapshot.CorrectCount != 1 {
		t.Errorf("snapshot = %+v, want 1/2", src.gotSnapshot)
	}
	if len(src.gotSnapshot.WeakConcepts) != 1 || src.gotSnapshot.WeakConcepts[0] != "loss functions" {
		t.Errorf("weak concepts = %v", src.gotSnapshot.WeakConcepts)
	}

	answerAll(t, s, "C")
	if err := s.AdvanceAssessment(context.Background()); err != nil {
		t.Fatalf("finish: %v", err)
	}

	if s.Phase() != PhaseLessonWait {
		t.Errorf("phase = %v, want PhaseLessonWait", s.Phase())
	}
	// 2 of 3 correct -> 6.67.
	if s.PreScore < 6.6 || s.PreScore > 6.7 {
		t.Errorf("pre score = %v", s.PreScore)
	}

	if len(repo.assessments) != 3 {
		t.Fatalf("assessment events = %d, want 3", len(repo.assessments))
	}
	if repo.assessments[1].Phase != "initial" || repo.assessments[1].Correct {
		t.Errorf("event 1 = %+v", repo.assessments[1])
	}
	if repo.assessments[2].Phase != "adaptive" || !repo.assessments[2].Correct {
		t.Errorf("event 2 = %+v", repo.assessments[2])
	}
}

func TestAdaptiveFetchFailureCompletesDegraded(t *testing.T) {
	src := &stubSource{initial: initialBatch(), adaptiveErr: errors.New("rate limited")}
	s := startedSession(t, Deps{Source: src})

	answerAll(t, s, "A", "B")
	err := s.AdvanceAssessment(context.Background())

	var fe *assessment.FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("error = %v, want FetchError", err)
	}
	if s.Phase() != PhaseLessonWait {
		t.Errorf("phase = %v, want PhaseLessonWait despite the failure", s.Phase())
	}
	if s.PreScore != 10 {
		t.Errorf("pre score = %v, want 10 over initial answers alone", s.PreScore)
	}
}

func TestRemoteAnalysisOverridesLocalScoring(t *testing.T) {
	var gotTopic string
	var gotInitial, gotAdaptive map[int]string
	var gotQuestions int
	complete := func(_ context.Context, topic string, initial, adaptive map[int]string, questions []questionbank.Question) (*scoring.Analysis, error) {
		gotTopic = topic
		gotInitial = initial
		gotAdaptive = adaptive
		gotQuestions = len(questions)
		return &scoring.Analysis{OverallScore: 4.2, LearningPath: []string{"overfitting"}}, nil
	}
	src := &stubSource{initial: initialBatch(), adaptive: adaptiveBatch()}
	s := startedSession(t, Deps{Source: src, Complete: complete})

	answerAll(t, s, "A", "B")
	if err := s.AdvanceAssessment(context.Background()); err != nil {
		t.Fatalf("advance: %v", err)
	}
	answerAll(t, s, "C")
	if err := s.AdvanceAssessment(context.Background()); err != nil {
		t.Fatalf("finish: %v", err)
	}

	if gotTopic != "supervised-learning" || gotQuestions != 3 {
		t.Errorf("submitted %q with %d questions", gotTopic, gotQuestions)
	}
	if len(gotInitial) != 2 || gotInitial[1] != "B" {
		t.Errorf("initial answers = %v", gotInitial)
	}
	if len(gotAdaptive) != 1 || gotAdaptive[0] != "C" {
		t.Errorf("adaptive answers = %v", gotAdaptive)
	}
	if s.PreScore != 4.2 {
		t.Errorf("pre score = %v, want the remote 4.2", s.PreScore)
	}
	if len(s.Recommendations) != 1 || s.Recommendations[0] != "overfitting" {
		t.Errorf("recommendations = %v", s.Recommendations)
	}
	// The tally stays local; the summary still ranks concepts.
	if s.Tally == nil {
		t.Fatal("tally not built")
	}
}

func TestRemoteAnalysisFailureScoresLocally(t *testing.T) {
	complete := func(_ context.Context, _ string, _, _ map[int]string, _ []questionbank.Question) (*scoring.Analysis, error) {
		return nil, errors.New("service unavailable")
	}
	src := &stubSource{initial: initialBatch(), adaptive: adaptiveBatch()}
	s := startedSession(t, Deps{Source: src, Complete: complete})

	answerAll(t, s, "A", "B")
	if err := s.AdvanceAssessment(context.Background()); err != nil {
		t.Fatalf("advance: %v", err)
	}
	answerAll(t, s, "C")
	if err := s.AdvanceAssessment(context.Background()); err != nil {
		t.Fatalf("finish: %v", err)
	}

	if s.Phase() != PhaseLessonWait {
		t.Errorf("phase = %v, want PhaseLessonWait despite the failure", s.Phase())
	}
	if s.PreScore != 10 {
		t.Errorf("pre score = %v, want the local 10", s.PreScore)
	}
}

func TestPollLessonBuildsSequencer(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Content: lessonJSON()})
	svc := lessons.NewService(provider, nil, lessons.DefaultConfig())
	src := &stubSource{initial: initialBatch(), adaptive: adaptiveBatch()}
	s := startedSession(t, Deps{Source: src, Lessons: svc})

	answerAll(t, s, "A", "B")
	if err := s.AdvanceAssessment(context.Background()); err != nil {
		t.Fatalf("advance: %v", err)
	}
	answerAll(t, s, "C")
	if err := s.AdvanceAssessment(context.Background()); err != nil {
		t.Fatalf("finish: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for !s.PollLesson() {
		select {
		case <-deadline:
			t.Fatal("lesson never became ready")
		case <-time.After(10 * time.Millisecond):
		}
	}

	if s.Phase() != PhaseLesson {
		t.Errorf("phase = %v, want PhaseLesson", s.Phase())
	}
	if s.LessonErr != nil {
		t.Errorf("lesson err = %v, want nil for a generated lesson", s.LessonErr)
	}
	if s.Sequencer == nil || s.Sequencer.Len() != 2 {
		t.Fatalf("sequencer = %+v", s.Sequencer)
	}
}

func TestReflectionWithoutSentimentResolvesImmediately(t *testing.T) {
	repo := &recordingRepo{}
	s := startedSession(t, Deps{Source: &stubSource{initial: initialBatch()}, Events: repo})
	s.Sequencer = lessons.NewSequencer(&lessons.Lesson{Segments: []lessons.Segment{
		{Title: "Labels", Body: "Labels are targets."},
		{Title: "Loss", Body: "Loss measures error."},
	}})
	s.phase = PhaseLesson

	dispatched, err := s.SubmitReflection(context.Background(), "makes sense", nil)
	if err != nil {
		t.Fatalf("submit reflection: %v", err)
	}
	if dispatched {
		t.Error("dispatched = true without a sentiment service")
	}
	if s.Sequencer.Awaiting() {
		t.Error("sequencer still awaiting after immediate resolve")
	}
	if err := s.AdvanceSegment(); err != nil {
		t.Fatalf("advance segment: %v", err)
	}
	if s.SegmentsCompleted() != 1 {
		t.Errorf("segments completed = %d, want 1", s.SegmentsCompleted())
	}

	if len(repo.lessons) != 1 {
		t.Fatalf("lesson events = %d, want 1", len(repo.lessons))
	}
	if !repo.lessons[0].ReflectionSubmitted || repo.lessons[0].SentimentCaptured {
		t.Errorf("lesson event = %+v", repo.lessons[0])
	}
}

func TestApplyReadingAggregatesAndUnblocks(t *testing.T) {
	repo := &recordingRepo{}
	s := startedSession(t, Deps{Source: &stubSource{initial: initialBatch()}, Events: repo})
	s.Sequencer = lessons.NewSequencer(&lessons.Lesson{Segments: []lessons.Segment{
		{Title: "Labels", Body: "Labels are targets."},
	}})
	s.phase = PhaseLesson

	if err := s.Sequencer.BeginReflection(); err != nil {
		t.Fatalf("begin reflection: %v", err)
	}
	if err := s.AdvanceSegment(); err == nil {
		t.Fatal("advance succeeded while analysis in flight")
	}

	s.ApplyReading(context.Background(), 0, &sentiment.Reading{
		Confusion:     0.2,
		Confidence:    0.9,
		Engagement:    0.8,
		Understanding: "good",
		ShouldProceed: true,
	})

	if s.Aggregator.Count() != 1 {
		t.Errorf("readings = %d, want 1", s.Aggregator.Count())
	}
	if len(repo.sentiments) != 1 || repo.sentiments[0].SegmentIndex != 0 {
		t.Errorf("sentiment events = %+v", repo.sentiments)
	}
	if err := s.AdvanceSegment(); err != nil {
		t.Fatalf("advance after resolve: %v", err)
	}
	if s.Phase() != PhaseSummary {
		t.Errorf("phase = %v, want PhaseSummary after last segment", s.Phase())
	}
}

func TestApplyNilReadingStillUnblocks(t *testing.T) {
	s := startedSession(t, Deps{Source: &stubSource{initial: initialBatch()}})
	s.Sequencer = lessons.NewSequencer(&lessons.Lesson{Segments: []lessons.Segment{
		{Title: "Labels", Body: "Labels are targets."},
	}})

	if err := s.Sequencer.BeginReflection(); err != nil {
		t.Fatalf("begin reflection: %v", err)
	}
	s.ApplyReading(context.Background(), 0, nil)

	if s.Aggregator.Count() != 0 {
		t.Errorf("readings = %d, want 0 for a failed analysis", s.Aggregator.Count())
	}
	if s.Sequencer.Awaiting() {
		t.Error("sequencer still awaiting after nil reading")
	}
}

func TestEndSubmitsExactlyOnce(t *testing.T) {
	saver := newCountingSaver()
	src := &stubSource{initial: initialBatch(), adaptive: adaptiveBatch()}
	s := startedSession(t, Deps{Source: src, Saver: saver})

	answerAll(t, s, "A", "B")
	if err := s.AdvanceAssessment(context.Background()); err != nil {
		t.Fatalf("advance: %v", err)
	}
	answerAll(t, s, "C")
	if err := s.AdvanceAssessment(context.Background()); err != nil {
		t.Fatalf("finish: %v", err)
	}

	rec := s.End(context.Background(), true)
	s.End(context.Background(), true)
	s.End(context.Background(), false)

	select {
	case <-saver.done:
	case <-time.After(2 * time.Second):
		t.Fatal("save never arrived")
	}
	// Give duplicate submissions a moment to (wrongly) land.
	time.Sleep(20 * time.Millisecond)

	saver.mu.Lock()
	defer saver.mu.Unlock()
	if len(saver.saves) != 1 {
		t.Fatalf("saves = %d, want 1", len(saver.saves))
	}
	if saver.saves[0] != rec {
		t.Error("saved record differs from the returned one")
	}
	if !rec.Completed || rec.PreScore != 10 || rec.QuestionsServed != 3 {
		t.Errorf("record = %+v", rec)
	}
}

func TestBuildSummary(t *testing.T) {
	src := &stubSource{initial: initialBatch(), adaptive: adaptiveBatch()}
	s := startedSession(t, Deps{Source: src})

	answerAll(t, s, "A", "D")
	if err := s.AdvanceAssessment(context.Background()); err != nil {
		t.Fatalf("advance: %v", err)
	}
	answerAll(t, s, "C")
	if err := s.AdvanceAssessment(context.Background()); err != nil {
		t.Fatalf("finish: %v", err)
	}
	s.Aggregator.Add(sentiment.Reading{Confusion: 0.1, Confidence: 0.9, Engagement: 0.8})

	sum := s.BuildSummary()
	if sum.Topic != "Supervised Learning" {
		t.Errorf("topic = %q", sum.Topic)
	}
	if sum.CorrectAnswers != 2 || sum.QuestionsServed != 3 {
		t.Errorf("totals = %d/%d", sum.CorrectAnswers, sum.QuestionsServed)
	}
	if len(sum.Gaps) == 0 || sum.Gaps[0] != "loss functions" {
		t.Errorf("gaps = %v", sum.Gaps)
	}
	if len(sum.Strengths) == 0 || sum.Strengths[0] != "labels" {
		t.Errorf("strengths = %v", sum.Strengths)
	}
	if sum.Sentiment == nil || sum.Sentiment.Note != sentiment.NoteEncouraging {
		t.Errorf("sentiment = %+v", sum.Sentiment)
	}
}

func TestBuildSummaryBeforeScoring(t *testing.T) {
	s := New("supervised-learning", Deps{Source: &stubSource{}})
	sum := s.BuildSummary()
	if sum.Score != 0 || sum.Sentiment != nil || len(sum.Strengths) != 0 {
		t.Errorf("summary = %+v, want empty", sum)
	}
}

// memSnapshots is an in-memory SnapshotRepo.
type memSnapshots struct {
	mu    sync.Mutex
	saved []*store.Snapshot
}

func (m *memSnapshots) Save(_ context.Context, snap *store.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved = append(m.saved, snap)
	return nil
}

func (m *memSnapshots) Latest(_ context.Context) (*store.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.saved) == 0 {
		return nil, nil
	}
	return m.saved[len(m.saved)-1], nil
}

func (m *memSnapshots) Prune(_ context.Context, _ int) error { return nil }

func TestEndSavesCompetencySnapshot(t *testing.T) {
	snaps := &memSnapshots{}
	src := &stubSource{initial: initialBatch(), adaptive: adaptiveBatch()}
	s := startedSession(t, Deps{Source: src, Snapshots: snaps})

	answerAll(t, s, "A", "D")
	if err := s.AdvanceAssessment(context.Background()); err != nil {
		t.Fatalf("advance: %v", err)
	}
	answerAll(t, s, "C")
	if err := s.AdvanceAssessment(context.Background()); err != nil {
		t.Fatalf("finish: %v", err)
	}

	s.End(context.Background(), true)
	s.End(context.Background(), true)

	snaps.mu.Lock()
	defer snaps.mu.Unlock()
	if len(snaps.saved) != 1 {
		t.Fatalf("snapshots = %d, want 1", len(snaps.saved))
	}
	snap := snaps.saved[0]
	comp, ok := snap.Data.Competencies["supervised-learning"]
	if !ok {
		t.Fatalf("no competency for topic, data = %+v", snap.Data)
	}
	if comp.Score != s.PreScore {
		t.Errorf("score = %v, want %v", comp.Score, s.PreScore)
	}
	if len(comp.Gaps) == 0 || comp.Gaps[0] != "loss functions" {
		t.Errorf("gaps = %v", comp.Gaps)
	}
	if snap.Data.SessionCount != 1 {
		t.Errorf("session count = %d, want 1", snap.Data.SessionCount)
	}
}

func TestSnapshotAccumulatesAcrossSessions(t *testing.T) {
	snaps := &memSnapshots{}

	for i, topic := range []string{"supervised-learning", "neural-networks"} {
		src := &stubSource{initial: initialBatch(), adaptive: adaptiveBatch()}
		s := New(topic, Deps{Source: src, Snapshots: snaps})
		if err := s.Begin(context.Background()); err != nil {
			t.Fatalf("begin %d: %v", i, err)
		}
		answerAll(t, s, "A", "B")
		if err := s.AdvanceAssessment(context.Background()); err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
		answerAll(t, s, "C")
		if err := s.AdvanceAssessment(context.Background()); err != nil {
			t.Fatalf("finish %d: %v", i, err)
		}
		s.End(context.Background(), true)
	}

	latest, err := snaps.Latest(context.Background())
	if err != nil || latest == nil {
		t.Fatalf("latest: %v, %v", latest, err)
	}
	if len(latest.Data.Competencies) != 2 {
		t.Fatalf("competencies = %v", latest.Data.Competencies)
	}
	if latest.Data.SessionCount != 2 {
		t.Errorf("session count = %d, want 2", latest.Data.SessionCount)
	}
	if latest.Sequence != 2 {
		t.Errorf("sequence = %d, want 2", latest.Sequence)
	}
}
