package questionbank

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an AI literacy tutor creating multiple-choice assessment questions for adult professionals.

Rules:
- Generate exactly the requested number of questions for the given topic.
- Each question has exactly 4 options, prefixed with their letter: "A) ...", "B) ...", "C) ...", "D) ...".
- "correct" is the letter of the right option, nothing else.
- Tag each question with the single lowercase concept it assesses (e.g. "loss functions").
- Distractors should reflect plausible misconceptions, not random statements.
- Use plain text. No markdown, no LaTeX.
- When course material is provided, ground questions in it rather than inventing terminology.`

// buildInitialMessage constructs the user message for the opening batch.
func buildInitialMessage(topic string, concepts []string, contextBlock string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", topic)
	fmt.Fprintf(&b, "Questions: %d, ranging from basic to intermediate difficulty.\n", InitialBatchSize)

	if len(concepts) > 0 {
		fmt.Fprintf(&b, "Spread the questions across these concepts: %s\n", strings.Join(concepts, ", "))
	}

	writeContext(&b, contextBlock)
	return b.String()
}

// buildAdaptiveMessage constructs the user message for the follow-up
// batch, weighted toward the learner's weak concepts.
func buildAdaptiveMessage(topic string, perf LearnerSnapshot, contextBlock string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", topic)
	fmt.Fprintf(&b, "Questions: %d.\n", AdaptiveBatchSize)
	fmt.Fprintf(&b, "The learner answered %d of %d initial questions correctly.\n",
		perf.CorrectCount, perf.TotalCount)

	if len(perf.WeakConcepts) > 0 {
		fmt.Fprintf(&b, "Weak concepts, worst first: %s\n", strings.Join(perf.WeakConcepts, ", "))
		b.WriteString("Target the weak concepts with most of the questions and mark those with targets_weakness. Probe whether the gaps are fundamental or superficial.\n")
	} else {
		b.WriteString("No specific weaknesses detected; increase difficulty to probe depth of understanding.\n")
	}

	writeContext(&b, contextBlock)
	return b.String()
}

func writeContext(b *strings.Builder, contextBlock string) {
	if contextBlock == "" {
		return
	}
	b.WriteString("\nCourse material:\n")
	b.WriteString(contextBlock)
	b.WriteString("\n")
}
