package scoring

import (
	"reflect"
	"testing"

	"github.com/mkline/tutora/internal/questionbank"
)

func q(concept, correct string) questionbank.Question {
	return questionbank.Question{
		Text:    "q",
		Options: []string{"A) w", "B) x", "C) y", "D) z"},
		Correct: correct,
		Concept: concept,
	}
}

func TestScoreCountsAttemptedPerConcept(t *testing.T) {
	questions := []questionbank.Question{
		q("basics", "A"), q("basics", "B"), q("mutation", "C"),
	}
	// Only one answered; attempted still counts every question.
	tally, _ := Score(questions, map[int]string{0: "A"})

	if got := tally.Counts("basics"); got.Attempted != 2 || got.Correct != 1 {
		t.Errorf("basics = %+v, want attempted 2 correct 1", got)
	}
	if got := tally.Counts("mutation"); got.Attempted != 1 || got.Correct != 0 {
		t.Errorf("mutation = %+v, want attempted 1 correct 0", got)
	}
}

func TestScoreUntaggedLandsInGeneral(t *testing.T) {
	tally, vector := Score([]questionbank.Question{q("", "A")}, map[int]string{0: "A"})

	if got := tally.Counts(GeneralConcept); got.Attempted != 1 || got.Correct != 1 {
		t.Errorf("general = %+v", got)
	}
	if vector[GeneralConcept] != 1.0 {
		t.Errorf("vector[general] = %v, want 1.0", vector[GeneralConcept])
	}
}

func TestScoreIsCaseSensitive(t *testing.T) {
	tally, _ := Score([]questionbank.Question{q("basics", "A")}, map[int]string{0: "a"})
	if got := tally.Counts("basics"); got.Correct != 0 {
		t.Errorf("lowercase answer scored correct; equality must be case-sensitive")
	}
}

func TestScoreGarbageAnswerIncorrectNotError(t *testing.T) {
	tally, vector := Score([]questionbank.Question{q("basics", "A")}, map[int]string{0: "purple"})
	if got := tally.Counts("basics"); got.Correct != 0 || got.Attempted != 1 {
		t.Errorf("garbage answer = %+v, want attempted 1 correct 0", got)
	}
	if vector["basics"] != 0 {
		t.Errorf("vector = %v", vector["basics"])
	}
}

func TestScoreIdempotent(t *testing.T) {
	questions := []questionbank.Question{q("basics", "A"), q("mutation", "B")}
	answers := map[int]string{0: "A", 1: "C"}

	t1, v1 := Score(questions, answers)
	t2, v2 := Score(questions, answers)

	if !reflect.DeepEqual(v1, v2) {
		t.Errorf("vectors differ: %v vs %v", v1, v2)
	}
	if !reflect.DeepEqual(t1.Concepts(), t2.Concepts()) {
		t.Errorf("concept orders differ")
	}
	for _, c := range t1.Concepts() {
		if t1.Counts(c) != t2.Counts(c) {
			t.Errorf("counts for %s differ", c)
		}
	}
}

func TestVectorZeroVersusUntouched(t *testing.T) {
	tally, vector := Score([]questionbank.Question{q("basics", "A")}, map[int]string{0: "B"})

	// Both scored-0% and never-seen read as 0 in the vector.
	if vector["basics"] != 0 || vector["never-seen"] != 0 {
		t.Errorf("vector = %v", vector)
	}
	// Attempted counts disambiguate.
	if tally.Counts("basics").Attempted < 1 {
		t.Error("basics must show attempted >= 1")
	}
	if tally.Counts("never-seen").Attempted != 0 {
		t.Error("never-seen must show attempted == 0")
	}
}

func TestRankingsListsScenario(t *testing.T) {
	// Two initial-phase questions, both correct, tagged basics then mutation.
	questions := []questionbank.Question{q("basics", "A"), q("mutation", "B")}
	tally, _ := Score(questions, map[int]string{0: "A", 1: "B"})

	want := []string{"basics", "mutation"}
	if got := RankStrengths(tally, 5); !reflect.DeepEqual(got, want) {
		t.Errorf("strengths = %v, want %v (tie broken by encounter order)", got, want)
	}
	if got := RankGaps(tally, 5); !reflect.DeepEqual(got, want) {
		t.Errorf("gaps = %v, want %v (no low scorers exist)", got, want)
	}
}

func TestRankOrdersByAccuracy(t *testing.T) {
	questions := []questionbank.Question{
		q("strong", "A"), q("strong", "A"), // 2/2
		q("weak", "A"), q("weak", "A"), // 0/2
		q("middle", "A"), q("middle", "A"), // 1/2
	}
	answers := map[int]string{0: "A", 1: "A", 2: "B", 3: "B", 4: "A", 5: "B"}
	tally, _ := Score(questions, answers)

	if got := RankStrengths(tally, 3); !reflect.DeepEqual(got, []string{"strong", "middle", "weak"}) {
		t.Errorf("strengths = %v", got)
	}
	if got := RankGaps(tally, 3); !reflect.DeepEqual(got, []string{"weak", "middle", "strong"}) {
		t.Errorf("gaps = %v", got)
	}
	if got := RankGaps(tally, 1); !reflect.DeepEqual(got, []string{"weak"}) {
		t.Errorf("gaps limited to 1 = %v", got)
	}
}

func TestOverallScore(t *testing.T) {
	questions := []questionbank.Question{
		q("a", "A"), q("a", "A"), q("b", "A"), q("b", "A"),
	}
	tally, _ := Score(questions, map[int]string{0: "A", 1: "A", 2: "A", 3: "B"})

	if got := OverallScore(tally); got != 7.5 {
		t.Errorf("score = %v, want 7.5 (3 of 4 * 10)", got)
	}

	empty, _ := Score(nil, nil)
	if got := OverallScore(empty); got != 0 {
		t.Errorf("empty score = %v, want 0", got)
	}
}

func TestLearningPathWorstFirst(t *testing.T) {
	questions := []questionbank.Question{
		q("sampling", "A"), q("sampling", "A"), // 1/2
		q("diffusion", "A"), q("diffusion", "A"), // 0/2
		q("density", "A"), // 1/1, no miss
	}
	answers := map[int]string{0: "A", 1: "B", 2: "B", 3: "B", 4: "A"}
	tally, _ := Score(questions, answers)

	want := []string{"diffusion", "sampling"}
	if got := LearningPath(tally); !reflect.DeepEqual(got, want) {
		t.Errorf("path = %v, want %v (perfect concepts excluded)", got, want)
	}
}

func TestLearningPathFundamentalsFirst(t *testing.T) {
	questions := []questionbank.Question{
		q("sampling", "A"),        // 0/1
		q("ml fundamentals", "A"), // 0/1
	}
	tally, _ := Score(questions, map[int]string{})

	got := LearningPath(tally)
	if len(got) != 2 || got[0] != "ml fundamentals" {
		t.Errorf("path = %v, want fundamentals pulled to the front", got)
	}
}

func TestRecommendLessons(t *testing.T) {
	// 0/2: score 0 -> review plus a deep dive per gap.
	lowQ := []questionbank.Question{q("sampling", "A"), q("sampling", "A")}
	low, _ := Score(lowQ, map[int]string{})
	if got := RecommendLessons(low); !reflect.DeepEqual(got, []string{"Fundamentals Review", "Deep Dive: sampling"}) {
		t.Errorf("low = %v", got)
	}

	// Perfect score: stretch material only.
	highQ := []questionbank.Question{q("sampling", "A"), q("density", "A")}
	high, _ := Score(highQ, map[int]string{0: "A", 1: "A"})
	if got := RecommendLessons(high); !reflect.DeepEqual(got, []string{"Advanced Applications"}) {
		t.Errorf("high = %v", got)
	}

	// Middling score: deep dives only.
	midQ := []questionbank.Question{q("sampling", "A"), q("density", "A")}
	mid, _ := Score(midQ, map[int]string{0: "A"})
	if got := RecommendLessons(mid); !reflect.DeepEqual(got, []string{"Deep Dive: density"}) {
		t.Errorf("mid = %v", got)
	}
}
