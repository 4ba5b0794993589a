package learn

import (
	"time"

	"github.com/mkline/tutora/internal/sentiment"
)

// assessmentStartedMsg is sent when the initial question batch loads.
type assessmentStartedMsg struct {
	Err error
}

// phaseAdvancedMsg is sent when the runner moved past the current
// assessment phase. Degraded carries the adaptive fetch failure when
// the assessment completed on initial answers alone.
type phaseAdvancedMsg struct {
	Degraded error
	Err      error
}

// lessonTickMsg polls for the generated lesson.
type lessonTickMsg time.Time

// readingMsg delivers an async sentiment analysis result back onto the
// UI goroutine. Reading is nil when the analysis failed.
type readingMsg struct {
	Segment int
	Reading *sentiment.Reading
}
