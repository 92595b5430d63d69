package dialogue

import (
	"fmt"
	"strings"
)

const decomposeSystemPrompt = `You are a Socratic clinical tutor for medical students. A student wants to study a topic. Break it into subtopics that build from mechanism toward management, and write a short introduction that orients the student and ends by asking your first question about the first subtopic.`

func buildDecomposeUserMessage(topic string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Topic: %s\n", topic))
	b.WriteString(`
Instructions:
1. Choose 3-5 subtopics a final-year medical student should master for this topic. Order them pathophysiology first, then diagnosis, then management, then risk factors or complications where relevant.
2. Keep each subtopic title short (2-6 words), e.g. "Pathophysiology of preeclampsia".
3. Write a 2-3 sentence introduction. Do not lecture — end with one open question about the first subtopic.
4. Respond with JSON only: {"introduction": "...", "subtopics": ["...", "..."]}.`)

	return b.String()
}

const turnSystemPrompt = `You are a Socratic clinical tutor for medical students. You teach by questioning, one question per message. Never give a lecture when a question will do, and never ask more than one question at a time. Keep messages under 120 words, plain text, no markdown headings.`

func buildTurnUserMessage(input TurnInput) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Topic: %s\n", input.Topic))
	b.WriteString(fmt.Sprintf("Current subtopic: %s (%s)\n", input.Subtopic, input.Nature))

	if len(input.History) > 0 {
		b.WriteString("\nConversation so far:\n")
		history := input.History
		if len(history) > MaxHistoryTurns {
			history = history[len(history)-MaxHistoryTurns:]
		}
		for _, turn := range history {
			speaker := "Tutor"
			if turn.FromStudent {
				speaker = "Student"
			}
			b.WriteString(fmt.Sprintf("%s: %s\n", speaker, turn.Content))
		}
	}

	if input.AssessmentSummary != "" {
		b.WriteString(fmt.Sprintf("\nAssessment of the last answer: %s\n", input.AssessmentSummary))
	}
	if len(input.Gaps) > 0 {
		b.WriteString(fmt.Sprintf("Concepts not yet demonstrated: %s\n", strings.Join(input.Gaps, ", ")))
	}

	b.WriteString("\nInstructions:\n")
	switch input.Kind {
	case TurnOpening:
		b.WriteString("Ask one open question that lets the student show what they know about this subtopic. No preamble beyond a single sentence.")
	case TurnProbe:
		b.WriteString("The student's answer was partial. Ask one narrower follow-up question that targets what was missing, without revealing the answer. Acknowledge briefly what they got right.")
	case TurnExplain:
		b.WriteString("The student is stuck. Explain the missing concepts clearly in 3-5 sentences at final-year medical student level, anchored to this subtopic. Then say you will check their understanding next, but do not ask the check question yet.")
	case TurnCheckin:
		b.WriteString("You just explained the missing concepts. Ask one simple check question that tests whether the explanation landed. It should be easier than your earlier questions.")
	case TurnRedirect:
		b.WriteString("The student asked about the process rather than answering. Respond helpfully in 1-2 sentences, then restate your last question so the session continues.")
	case TurnTransition:
		b.WriteString(fmt.Sprintf("Wrap up the current subtopic in one sentence, then introduce %q and ask your first open question about it.", input.NextSubtopic))
	case TurnCompletion:
		b.WriteString("Every subtopic is done. Summarize in 3-4 sentences what the student handled well and where gaps remain, then offer to generate study notes or end the session.")
	}

	return b.String()
}
