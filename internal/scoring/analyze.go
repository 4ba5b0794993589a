package scoring

import (
	"fmt"
	"strings"
)

// Lesson titles recommended around the learner's gaps.
const (
	lessonFundamentals = "Fundamentals Review"
	lessonAdvanced     = "Advanced Applications"
)

// Analysis is the reduction of a completed assessment: the overall
// competency score and the ordered learning path. Produced locally via
// OverallScore/LearningPath, or by a hosted scorer in backend mode.
type Analysis struct {
	OverallScore float64
	LearningPath []string
}

// OverallScore reduces a tally to a 0-10 score: correct/attempted * 10.
func OverallScore(t *Tally) float64 {
	attempted, correct := t.Totals()
	if attempted == 0 {
		return 0
	}
	return float64(correct) / float64(attempted) * 10
}

// LearningPath orders the learner's gaps for study: every concept with
// at least one miss, worst accuracy first, with fundamentals-flavored
// concepts pulled to the front so prerequisites come before depth work.
func LearningPath(t *Tally) []string {
	var gaps []string
	for _, concept := range RankGaps(t, -1) {
		c := t.counts[concept]
		if c.Correct < c.Attempted {
			gaps = append(gaps, concept)
		}
	}

	var path []string
	for _, g := range gaps {
		if strings.Contains(strings.ToLower(g), "fundamental") {
			path = append(path, g)
		}
	}
	for _, g := range gaps {
		if !strings.Contains(strings.ToLower(g), "fundamental") {
			path = append(path, g)
		}
	}
	return path
}

// RecommendLessons names the lessons to queue after an assessment:
// a review below 3, a deep dive per gap, and stretch material above 7.
func RecommendLessons(t *Tally) []string {
	score := OverallScore(t)

	var lessons []string
	if score < 3 {
		lessons = append(lessons, lessonFundamentals)
	}
	for _, gap := range LearningPath(t) {
		lessons = append(lessons, fmt.Sprintf("Deep Dive: %s", gap))
	}
	if score > 7 {
		lessons = append(lessons, lessonAdvanced)
	}
	return lessons
}
