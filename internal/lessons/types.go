package lessons

// Lesson is an LLM-generated lesson for one topic, delivered as
// ordered segments the learner reflects on one at a time.
type Lesson struct {
	Topic        string
	Overview     string
	Segments     []Segment
	KeyTakeaways []string
}

// Segment is one digestible piece of a lesson, sized for two to three
// minutes of reading.
type Segment struct {
	Title    string
	Body     string
	KeyPoint string
}

// GenerateInput holds all context needed to generate a lesson.
type GenerateInput struct {
	// Topic is the catalog topic ID or a free-form subject.
	Topic string

	// Competency is the learner's pre-assessment score on a 0-10 scale.
	Competency float64

	// Gaps lists the learner's weak concepts, worst first.
	Gaps []string
}
