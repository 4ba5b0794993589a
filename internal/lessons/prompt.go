package lessons

import (
	"fmt"
	"strings"
)

const lessonSystemPrompt = `You are a patient AI literacy tutor for adult professionals. The learner has just completed an assessment and needs a lesson pitched to their level.

Rules:
- Structure the lesson as a brief overview, exactly 4 main segments each digestible in 2-3 minutes, and 3-5 key takeaways.
- Pitch the depth to the learner's competency: below 3/10 stay concrete and foundational, above 7/10 go deeper and assume the basics.
- When knowledge gaps are listed, make sure the segments address them directly.
- When course material is provided, teach from it rather than inventing terminology.
- Plain text only. No markdown, no LaTeX.`

func buildLessonUserMessage(input GenerateInput, contextBlock string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	fmt.Fprintf(&b, "Learner competency: %.1f/10\n", input.Competency)

	b.WriteString("Knowledge gaps, worst first:\n")
	if len(input.Gaps) == 0 {
		b.WriteString("None\n")
	} else {
		for _, g := range input.Gaps {
			fmt.Fprintf(&b, "- %s\n", g)
		}
	}

	if contextBlock != "" {
		b.WriteString("\nCourse material:\n")
		b.WriteString(contextBlock)
		b.WriteString("\n")
	}

	return b.String()
}
