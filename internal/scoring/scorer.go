package scoring

import (
	"sort"

	"github.com/mkline/tutora/internal/questionbank"
)

// GeneralConcept is the bucket for questions the generator left untagged.
const GeneralConcept = "general"

// Counts holds one concept's attempted and correct totals.
type Counts struct {
	Attempted int
	Correct   int
}

// Accuracy returns correct/attempted, 0 when nothing was attempted.
func (c Counts) Accuracy() float64 {
	if c.Attempted == 0 {
		return 0
	}
	return float64(c.Correct) / float64(c.Attempted)
}

// Tally holds per-concept counts in first-encounter order. Derived
// state: always recomputed wholesale by Score, never patched.
type Tally struct {
	order  []string
	counts map[string]Counts
}

// Concepts returns the concepts in first-encounter order.
func (t *Tally) Concepts() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Counts returns the counts for a concept. A concept never seen has
// zero attempted, which callers must check to distinguish "untouched"
// from "scored 0%".
func (t *Tally) Counts(concept string) Counts {
	return t.counts[concept]
}

// Totals returns the attempted and correct counts across all concepts.
func (t *Tally) Totals() (attempted, correct int) {
	for _, c := range t.counts {
		attempted += c.Attempted
		correct += c.Correct
	}
	return attempted, correct
}

// Vector maps concepts to a normalized score in [0,1].
type Vector map[string]float64

// Score reduces questions and the learner's chosen options into a
// concept tally and competency vector. Correctness is exact
// case-sensitive equality with the question's correct option; a
// missing or off-list answer scores incorrect, never errors. Untagged
// questions land in the general bucket.
func Score(questions []questionbank.Question, answers map[int]string) (*Tally, Vector) {
	t := &Tally{counts: make(map[string]Counts)}

	for i, q := range questions {
		concept := q.Concept
		if concept == "" {
			concept = GeneralConcept
		}
		c, seen := t.counts[concept]
		if !seen {
			t.order = append(t.order, concept)
		}
		c.Attempted++
		if answers[i] == q.Correct {
			c.Correct++
		}
		t.counts[concept] = c
	}

	vector := make(Vector, len(t.counts))
	for concept, c := range t.counts {
		vector[concept] = c.Accuracy()
	}
	return t, vector
}

// RankStrengths returns up to n concepts with attempted >= 1, highest
// accuracy first, ties broken by first-encounter order.
func RankStrengths(t *Tally, n int) []string {
	return rank(t, n, func(a, b float64) bool { return a > b })
}

// RankGaps returns up to n concepts with attempted >= 1, lowest
// accuracy first, ties broken by first-encounter order.
func RankGaps(t *Tally, n int) []string {
	return rank(t, n, func(a, b float64) bool { return a < b })
}

func rank(t *Tally, n int, better func(a, b float64) bool) []string {
	var concepts []string
	for _, concept := range t.order {
		if t.counts[concept].Attempted >= 1 {
			concepts = append(concepts, concept)
		}
	}

	// Stable keeps encounter order for equal accuracies.
	sort.SliceStable(concepts, func(i, j int) bool {
		return better(t.counts[concepts[i]].Accuracy(), t.counts[concepts[j]].Accuracy())
	})

	if n >= 0 && len(concepts) > n {
		concepts = concepts[:n]
	}
	return concepts
}
