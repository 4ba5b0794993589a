package sentiment

// Reading is one sentiment analysis of a learner's free-text
// reflection. One per lesson segment; immutable once received.
type Reading struct {
	// Confusion, Confidence and Engagement are in [0, 1].
	Confusion  float64 `json:"confusion_level"`
	Confidence float64 `json:"confidence_level"`
	Engagement float64 `json:"engagement_level"`

	// Understanding is a quality label: poor, fair, good or excellent.
	Understanding string `json:"understanding"`

	// Suggestion is a short teaching adjustment for the tutor.
	Suggestion string `json:"suggestion"`

	// ShouldProceed is the analyzer's pacing call: move on or review.
	ShouldProceed bool `json:"should_proceed"`
}
