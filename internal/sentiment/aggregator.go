package sentiment

// Note copy for the three summary branches. The cut points are fixed:
// mean confusion above 0.6 reads cautionary, else mean confidence at or
// above 0.7 reads encouraging, else steady.
const (
	NoteCautionary  = "Slow down and revisit the sections that felt unclear before moving on."
	NoteEncouraging = "Great understanding! Keep the momentum going."
	NoteSteady      = "Steady progress. Continue at the current pace."
)

const (
	confusionCutoff  = 0.6
	confidenceCutoff = 0.7
)

// Summary is the running aggregate over the readings received so far.
type Summary struct {
	AvgConfusion  float64 `json:"avg_confusion"`
	AvgConfidence float64 `json:"avg_confidence"`
	AvgEngagement float64 `json:"avg_engagement"`
	ReadingCount  int     `json:"reading_count"`
	Note          string  `json:"note"`
}

// Aggregator accumulates readings across a session. A failed analysis
// contributes no reading; the aggregate stays consistent with however
// many actually arrived. Not safe for concurrent use; each session
// owns its aggregator.
type Aggregator struct {
	readings []Reading
}

// NewAggregator returns an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Add appends a reading in arrival order. No dedup, no cap.
func (a *Aggregator) Add(r Reading) {
	a.readings = append(a.readings, r)
}

// Count returns the number of readings received.
func (a *Aggregator) Count() int {
	return len(a.readings)
}

// Readings returns the readings in arrival order.
func (a *Aggregator) Readings() []Reading {
	out := make([]Reading, len(a.readings))
	copy(out, a.readings)
	return out
}

// Summarize returns the means over all readings so far and the pacing
// note. Returns nil with zero readings: "no data" must stay
// distinguishable from "all zero".
func (a *Aggregator) Summarize() *Summary {
	if len(a.readings) == 0 {
		return nil
	}

	var confusion, confidence, engagement float64
	for _, r := range a.readings {
		confusion += r.Confusion
		confidence += r.Confidence
		engagement += r.Engagement
	}
	n := float64(len(a.readings))

	s := &Summary{
		AvgConfusion:  confusion / n,
		AvgConfidence: confidence / n,
		AvgEngagement: engagement / n,
		ReadingCount:  len(a.readings),
	}

	switch {
	case s.AvgConfusion > confusionCutoff:
		s.Note = NoteCautionary
	case s.AvgConfidence >= confidenceCutoff:
		s.Note = NoteEncouraging
	default:
		s.Note = NoteSteady
	}
	return s
}
