package tutor

import (
	"fmt"
	"strings"

	"github.com/oslerlabs/osler/internal/dialogue"
	"github.com/oslerlabs/osler/internal/patterns"
)

// Template fallbacks keep the session moving when no LLM provider is
// configured or a dialogue call fails. Scoring is unaffected either way.

func fallbackDecomposition(topic string) *dialogue.Decomposition {
	var titles []string
	if profile, ok := patterns.FindTopicProfile(topic); ok {
		for _, sub := range profile.Subtopics {
			titles = append(titles, sub.Title)
		}
		topic = profile.Topic
	} else {
		titles = []string{
			fmt.Sprintf("%s pathophysiology", topic),
			fmt.Sprintf("%s diagnosis", topic),
			fmt.Sprintf("%s management", topic),
		}
	}

	intro := fmt.Sprintf(
		"Let's work through %s together. We'll cover %s. To start: %s",
		topic, strings.Join(titles, ", "), openingQuestion(titles[0]))

	return &dialogue.Decomposition{
		Topic:        topic,
		Introduction: intro,
		Subtopics:    titles,
	}
}

func fallbackTurn(input dialogue.TurnInput) string {
	switch input.Kind {
	case dialogue.TurnOpening:
		return openingQuestion(input.Subtopic)
	case dialogue.TurnProbe:
		if len(input.Gaps) > 0 {
			return fmt.Sprintf("Good start. Can you say more about %s and how it fits into %s?",
				input.Gaps[0], input.Subtopic)
		}
		return fmt.Sprintf("Can you go deeper on %s? What else is important here?", input.Subtopic)
	case dialogue.TurnExplain:
		if len(input.Gaps) > 0 {
			return fmt.Sprintf(
				"Let's pause and fill in the gaps. The key ideas you haven't mentioned yet for %s are: %s. Review how each one fits the bigger picture, and then I'll check your understanding.",
				input.Subtopic, strings.Join(input.Gaps, ", "))
		}
		return fmt.Sprintf(
			"Let's pause on %s. Review the core mechanism and the main clinical features, and then I'll check your understanding.",
			input.Subtopic)
	case dialogue.TurnCheckin:
		return fmt.Sprintf("Quick check: in your own words, what is the single most important idea in %s?",
			input.Subtopic)
	case dialogue.TurnRedirect:
		return fmt.Sprintf("Fair question, but let's stay with the material. Back to it: %s",
			openingQuestion(input.Subtopic))
	case dialogue.TurnTransition:
		return fmt.Sprintf("Let's move on to %s. %s",
			input.NextSubtopic, openingQuestion(input.NextSubtopic))
	case dialogue.TurnCompletion:
		return "That covers every subtopic. Press n to generate study notes, or q to finish the session."
	}
	return openingQuestion(input.Subtopic)
}

func openingQuestion(subtopic string) string {
	switch patterns.ClassifyNature(subtopic) {
	case patterns.NatureMechanism:
		return fmt.Sprintf("Walk me through %s. What is happening and why?", subtopic)
	case patterns.NatureDiagnosis:
		return fmt.Sprintf("How would you approach %s? What findings matter most?", subtopic)
	case patterns.NatureManagement:
		return fmt.Sprintf("Talk me through %s. What do you do first, and what changes your plan?", subtopic)
	case patterns.NatureRisk:
		return fmt.Sprintf("What should you know about %s, and which factors matter most?", subtopic)
	default:
		return fmt.Sprintf("Tell me what you know about %s.", subtopic)
	}
}
