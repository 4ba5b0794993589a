package sentiment

import (
	"context"

	"github.com/mkline/tutora/internal/llm"
)

// Service dispatches reflection analysis off the UI goroutine. Results
// arrive via callback with the segment index they belong to, so the
// caller can attribute each reading (or its absence) to the right
// segment before advancing. Failed analyses are dropped silently: the
// segment simply contributes no reading.
type Service struct {
	analyze AnalyzeFunc
	pending chan analysisJob
}

// AnalyzeFunc turns a reflection plus its lesson context into a
// reading. Both the LLM analyzer and the backend client satisfy it.
type AnalyzeFunc func(ctx context.Context, reflection, lessonContext string) (*Reading, error)

type analysisJob struct {
	ctx           context.Context
	segment       int
	reflection    string
	lessonContext string
	cb            func(segment int, r *Reading)
}

// NewService creates a sentiment service. If provider is nil, Dispatch
// reports that no analysis will happen.
func NewService(provider llm.Provider) *Service {
	s := &Service{
		pending: make(chan analysisJob, 8),
	}
	if provider != nil {
		s.analyze = NewAnalyzer(provider, DefaultAnalyzerConfig()).Analyze
		go s.processLoop()
	}
	return s
}

// NewRemoteService creates a sentiment service that delegates analysis
// to the given function, typically a backend client method.
func NewRemoteService(analyze AnalyzeFunc) *Service {
	s := &Service{
		pending: make(chan analysisJob, 8),
		analyze: analyze,
	}
	go s.processLoop()
	return s
}

// Dispatch queues a reflection for analysis. Returns false when no
// analysis will run (no analyzer, or the queue is full) so the caller
// can advance without waiting for a callback.
func (s *Service) Dispatch(ctx context.Context, segment int, reflection, lessonContext string, cb func(int, *Reading)) bool {
	if s.analyze == nil {
		return false
	}
	select {
	case s.pending <- analysisJob{ctx: ctx, segment: segment, reflection: reflection, lessonContext: lessonContext, cb: cb}:
		return true
	default:
		// Queue full — drop the reading. Partial data is valid data.
		return false
	}
}

func (s *Service) processLoop() {
	for job := range s.pending {
		reading, err := s.analyze(job.ctx, job.reflection, job.lessonContext)
		if err != nil || reading == nil {
			if job.cb != nil {
				job.cb(job.segment, nil)
			}
			continue
		}
		if job.cb != nil {
			job.cb(job.segment, reading)
		}
	}
}

// Close shuts down the processing loop.
func (s *Service) Close() {
	close(s.pending)
}
