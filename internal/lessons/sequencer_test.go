package lessons

import "testing"

func threeSegmentLesson() *Lesson {
	return &Lesson{
		Topic: "Neural Networks",
		Segments: []Segment{
			{Title: "Layers"},
			{Title: "Activations"},
			{Title: "Backpropagation"},
		},
	}
}

func TestSequencerWalksInOrder(t *testing.T) {
	seq := NewSequencer(threeSegmentLesson())

	for i, want := range []string{"Layers", "Activations", "Backpropagation"} {
		seg, ok := seq.Current()
		if !ok || seg.Title != want {
			t.Fatalf("segment %d = %q, want %q", i, seg.Title, want)
		}
		if err := seq.BeginReflection(); err != nil {
			t.Fatalf("begin reflection %d: %v", i, err)
		}
		seq.ResolveReflection()
		if err := seq.Advance(); err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
	}
	if !seq.Done() {
		t.Error("sequencer not done after last segment")
	}
	if _, ok := seq.Current(); ok {
		t.Error("Current returned a segment after completion")
	}
}

func TestSequencerBlocksAdvanceWhileAnalysisInFlight(t *testing.T) {
	seq := NewSequencer(threeSegmentLesson())

	if err := seq.BeginReflection(); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := seq.Advance(); err == nil {
		t.Error("advance succeeded with analysis in flight")
	}
	seq.ResolveReflection()
	if err := seq.Advance(); err != nil {
		t.Errorf("advance after resolve: %v", err)
	}
	if seq.Index() != 1 {
		t.Errorf("index = %d, want 1", seq.Index())
	}
}

func TestSequencerOneReflectionPerSegment(t *testing.T) {
	seq := NewSequencer(threeSegmentLesson())

	if err := seq.BeginReflection(); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := seq.BeginReflection(); err == nil {
		t.Error("second reflection on the same segment accepted")
	}
}

func TestSequencerFailedAnalysisStillAdvances(t *testing.T) {
	// A failed analysis resolves the segment the same as a successful
	// one; the segment just contributes no reading.
	seq := NewSequencer(threeSegmentLesson())
	seq.BeginReflection()
	seq.ResolveReflection()
	if err := seq.Advance(); err != nil {
		t.Errorf("advance after failed analysis: %v", err)
	}
}

func TestSequencerEmptyLessonIsDone(t *testing.T) {
	seq := NewSequencer(&Lesson{Topic: "empty"})
	if !seq.Done() {
		t.Error("empty lesson must start done")
	}
	if err := seq.Advance(); err == nil {
		t.Error("advance on a done sequencer must fail")
	}
}
