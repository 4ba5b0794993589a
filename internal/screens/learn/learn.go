package learn

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/mkline/tutora/internal/router"
	"github.com/mkline/tutora/internal/screen"
	"github.com/mkline/tutora/internal/screens/summary"
	"github.com/mkline/tutora/internal/sentiment"
	sess "github.com/mkline/tutora/internal/session"
	"github.com/mkline/tutora/internal/speech"
	"github.com/mkline/tutora/internal/topics"
	"github.com/mkline/tutora/internal/ui/components"
	"github.com/mkline/tutora/internal/ui/layout"
)

// lessonPollInterval is how often the screen checks for a generated lesson.
const lessonPollInterval = 200 * time.Millisecond

// reflectionCharLimit caps free-text reflections.
const reflectionCharLimit = 280

// LearnScreen walks one full sitting: assessment, lesson segments with
// reflections, then the summary.
type LearnScreen struct {
	session  *sess.Session
	narrator speech.Narrator

	mc     components.MultiChoice
	input  components.TextInput
	qIndex int // index into the runner's current phase

	reflecting      bool // reflection input showing for the current segment
	awaitingReading bool // analysis in flight
	readings        chan readingMsg

	degradedNote string // shown when the adaptive batch could not load
	quitConfirm  bool
	errMsg       string
	started      bool
	ended        bool
}

var _ screen.Screen = (*LearnScreen)(nil)
var _ screen.KeyHintProvider = (*LearnScreen)(nil)

// New creates a learn screen for one topic. Narrator may be nil.
func New(topic string, deps sess.Deps, narrator speech.Narrator) *LearnScreen {
	if narrator == nil {
		narrator = speech.Noop{}
	}
	return &LearnScreen{
		session:  sess.New(topic, deps),
		narrator: narrator,
		input:    components.NewTextInput("How did this section land for you?", reflectionCharLimit),
		readings: make(chan readingMsg, 8),
	}
}

func (s *LearnScreen) Init() tea.Cmd {
	return s.startAssessment()
}

func (s *LearnScreen) Title() string {
	return topics.DisplayName(s.session.Topic)
}

func (s *LearnScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.quitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	case s.errMsg != "":
		return []layout.KeyHint{
			{Key: "R", Description: "Retry"},
			{Key: "Esc", Description: "Back"},
		}
	case s.session.Phase() == sess.PhaseAssessing:
		return []layout.KeyHint{
			{Key: "↑↓/1-4", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Quit"},
		}
	case s.reflecting:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Share reflection"},
			{Key: "Esc", Description: "Quit"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "Esc", Description: "Quit"},
		}
	}
}

func (s *LearnScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case assessmentStartedMsg:
		return s.handleStarted(msg)
	case phaseAdvancedMsg:
		return s.handleAdvanced(msg)
	case lessonTickMsg:
		return s.handleLessonTick()
	case readingMsg:
		return s.handleReading(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.reflecting && !s.awaitingReading {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// startAssessment loads the initial question batch off the UI goroutine.
func (s *LearnScreen) startAssessment() tea.Cmd {
	return func() tea.Msg {
		return assessmentStartedMsg{Err: s.session.Begin(context.Background())}
	}
}

func (s *LearnScreen) handleStarted(msg assessmentStartedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.started = true
	s.errMsg = ""
	s.qIndex = 0
	questions := s.session.Runner.Questions()
	if len(questions) > 0 {
		s.mc = components.NewMultiChoice(questions[0].Text, questions[0].Options)
	}
	return s, nil
}

// advancePhase moves the runner forward off the UI goroutine.
func (s *LearnScreen) advancePhase() tea.Cmd {
	return func() tea.Msg {
		err := s.session.AdvanceAssessment(context.Background())
		if err != nil && s.session.Phase() == sess.PhaseLessonWait {
			// Adaptive fetch failed; the session completed degraded.
			return phaseAdvancedMsg{Degraded: err}
		}
		return phaseAdvancedMsg{Err: err}
	}
}

func (s *LearnScreen) handleAdvanced(msg phaseAdvancedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	if msg.Degraded != nil {
		s.degradedNote = "Follow-up questions could not be loaded; scoring what you answered."
	}

	switch s.session.Phase() {
	case sess.PhaseAssessing:
		// Entered the adaptive phase.
		s.qIndex = 0
		questions := s.session.Runner.Questions()
		if len(questions) > 0 {
			s.mc.Reset(questions[0].Text, questions[0].Options)
		}
		return s, nil
	case sess.PhaseLessonWait:
		return s, lessonTick()
	}
	return s, nil
}

func lessonTick() tea.Cmd {
	return tea.Tick(lessonPollInterval, func(t time.Time) tea.Msg {
		return lessonTickMsg(t)
	})
}

func (s *LearnScreen) handleLessonTick() (screen.Screen, tea.Cmd) {
	if s.session.Phase() != sess.PhaseLessonWait {
		return s, nil
	}
	if !s.session.PollLesson() {
		return s, lessonTick()
	}
	return s, s.narrateSegment()
}

// narrateSegment reads the current segment aloud, fire and forget.
func (s *LearnScreen) narrateSegment() tea.Cmd {
	seg, ok := s.session.Sequencer.Current()
	if !ok {
		return nil
	}
	narrator := s.narrator
	return func() tea.Msg {
		_ = narrator.Speak(context.Background(), seg.Title+". "+seg.Body)
		return nil
	}
}

func (s *LearnScreen) handleReading(msg readingMsg) (screen.Screen, tea.Cmd) {
	s.session.ApplyReading(context.Background(), msg.Segment, msg.Reading)
	s.awaitingReading = false
	return s.nextSegment()
}

// nextSegment advances past the resolved segment, ending the session
// after the last one.
func (s *LearnScreen) nextSegment() (screen.Screen, tea.Cmd) {
	s.reflecting = false
	s.input.Clear()
	if err := s.session.AdvanceSegment(); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	if s.session.Phase() == sess.PhaseSummary {
		return s, s.finish(true)
	}
	return s, s.narrateSegment()
}

// finish submits the record and swaps in the summary screen.
func (s *LearnScreen) finish(completed bool) tea.Cmd {
	if s.ended {
		return nil
	}
	s.ended = true
	s.session.End(context.Background(), completed)
	sum := s.session.BuildSummary()
	return tea.Sequence(
		func() tea.Msg { return router.PopScreenMsg{} },
		func() tea.Msg { return router.PushScreenMsg{Screen: summary.New(sum)} },
	)
}

func (s *LearnScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		switch key {
		case "r", "R":
			if !s.started {
				s.errMsg = ""
				return s, s.startAssessment()
			}
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			s.quitConfirm = false
			return s, s.finish(false)
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	if key == "esc" {
		s.quitConfirm = true
		return s, nil
	}

	switch s.session.Phase() {
	case sess.PhaseAssessing:
		return s.handleAssessmentKey(msg)
	case sess.PhaseLesson:
		return s.handleLessonKey(msg)
	}
	return s, nil
}

func (s *LearnScreen) handleAssessmentKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if !s.started {
		return s, nil
	}

	var cmd tea.Cmd
	s.mc, cmd = s.mc.Update(msg)
	if !s.mc.Submitted() {
		return s, cmd
	}

	if err := s.session.SubmitAnswer(s.qIndex, s.mc.Chosen); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	questions := s.session.Runner.Questions()
	s.qIndex++
	if s.qIndex < len(questions) {
		s.mc.Reset(questions[s.qIndex].Text, questions[s.qIndex].Options)
		return s, nil
	}
	return s, s.advancePhase()
}

func (s *LearnScreen) handleLessonKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.awaitingReading {
		return s, nil
	}

	if !s.reflecting {
		if msg.String() == "enter" {
			s.reflecting = true
			return s, s.input.Init()
		}
		return s, nil
	}

	if msg.String() == "enter" {
		return s.submitReflection()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *LearnScreen) submitReflection() (screen.Screen, tea.Cmd) {
	reflection := s.input.Value()
	if reflection == "" {
		return s, nil
	}

	ch := s.readings
	dispatched, err := s.session.SubmitReflection(context.Background(), reflection, func(segment int, r *sentiment.Reading) {
		ch <- readingMsg{Segment: segment, Reading: r}
	})
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	if !dispatched {
		// No analysis will run; the segment resolved immediately.
		return s.nextSegment()
	}

	s.awaitingReading = true
	return s, s.awaitReading()
}

// awaitReading blocks on the analysis channel and re-delivers the
// result as a message on the UI goroutine.
func (s *LearnScreen) awaitReading() tea.Cmd {
	ch := s.readings
	return func() tea.Msg {
		return <-ch
	}
}
