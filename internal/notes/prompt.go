package notes

import (
	"fmt"
	"strings"
)

const notesSystemPrompt = `You are writing study notes for a medical student who just finished a Socratic tutoring session. The notes should consolidate what was covered and flag what to revisit.`

func buildNotesUserMessage(input Input) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Topic: %s\n\nSubtopic outcomes:\n", input.Topic))
	for _, sub := range input.Subtopics {
		b.WriteString(fmt.Sprintf("- %s: %s\n", sub.Title, sub.Status))
		for _, gap := range sub.Gaps {
			b.WriteString(fmt.Sprintf("  missing concept: %s\n", gap))
		}
	}

	b.WriteString(`
Instructions:
1. Write a 3-5 sentence summary of the session. Be honest about gaps but encouraging.
2. Create one section per subtopic, in the same order, with 3-6 high-yield key points each.
3. For subtopics marked "gap" or with missing concepts, put those concepts in the review list with one line each on what to look up. Leave review empty for subtopics the student understood.
4. Write at final-year medical student level. Plain factual statements, no questions.`)

	return b.String()
}
