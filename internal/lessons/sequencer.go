package lessons

import "fmt"

// Sequencer walks a lesson's segments in order. Each segment takes one
// free-text reflection, and its sentiment analysis must resolve
// (complete or fail) before the sequencer advances, so every reading
// is attributed to the right segment.
type Sequencer struct {
	lesson   *Lesson
	index    int
	awaiting bool
	done     bool
}

// NewSequencer starts a sequencer at the lesson's first segment.
func NewSequencer(lesson *Lesson) *Sequencer {
	return &Sequencer{lesson: lesson, done: len(lesson.Segments) == 0}
}

func (s *Sequencer) Lesson() *Lesson { return s.lesson }
func (s *Sequencer) Index() int      { return s.index }
func (s *Sequencer) Len() int        { return len(s.lesson.Segments) }
func (s *Sequencer) Done() bool      { return s.done }

// Current returns the segment the learner is on.
func (s *Sequencer) Current() (Segment, bool) {
	if s.done {
		return Segment{}, false
	}
	return s.lesson.Segments[s.index], true
}

// BeginReflection marks the current segment's reflection as submitted
// and its analysis as in flight. One reflection per segment.
func (s *Sequencer) BeginReflection() error {
	if s.done {
		return fmt.Errorf("lesson already complete")
	}
	if s.awaiting {
		return fmt.Errorf("segment %d reflection already submitted", s.index)
	}
	s.awaiting = true
	return nil
}

// ResolveReflection records that the segment's analysis completed or
// failed, unblocking Advance.
func (s *Sequencer) ResolveReflection() {
	s.awaiting = false
}

// Awaiting reports whether the current segment's analysis is in flight.
func (s *Sequencer) Awaiting() bool { return s.awaiting }

// Advance moves to the next segment. It refuses to move while the
// current segment's analysis is unresolved, and marks the lesson done
// after the last segment.
func (s *Sequencer) Advance() error {
	if s.done {
		return fmt.Errorf("lesson already complete")
	}
	if s.awaiting {
		return fmt.Errorf("segment %d analysis still in flight", s.index)
	}
	if s.index+1 >= len(s.lesson.Segments) {
		s.done = true
		return nil
	}
	s.index++
	return nil
}
