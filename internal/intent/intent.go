// Package intent separates "answering the question" from "talking about the
// process". It is a lexical classifier: meta-signals (process questions,
// hint requests, small talk) are weighed against content signals (medical
// vocabulary, engagement with the last question), with ties broken toward
// treating the message as an answer. Skipping assessment requires high
// confidence — under-triggering conversational mode costs nothing, while
// over-triggering silently stalls progression.
package intent

import (
	"strings"

	"github.com/oslerlabs/osler/internal/patterns"
)

// MessageType classifies a student message.
type MessageType string

const (
	TypeAssessmentResponse     MessageType = "assessment-response"
	TypeConversationalQuestion MessageType = "conversational-question"
	TypeOther                  MessageType = "other"
)

// SkipAssessmentThreshold is the minimum confidence at which the caller may
// skip assessment entirely for a non-answer message.
const SkipAssessmentThreshold = 0.75

// Context is the slice of session state the classifier needs.
type Context struct {
	// LastTutorMessage is the most recent tutor turn. Empty means there is
	// no active question and nothing to be conversational about.
	LastTutorMessage string
	Topic            string
}

// Result is the classification outcome.
type Result struct {
	Type       MessageType
	Confidence float64
	// ShouldReturnToFlow signals the dialogue driver to steer back to the
	// pending question after handling the aside.
	ShouldReturnToFlow bool
}

// ShouldSkipAssessment reports whether the message may bypass scoring.
func (r Result) ShouldSkipAssessment() bool {
	return r.Type != TypeAssessmentResponse && r.Confidence >= SkipAssessmentThreshold
}

// Classify decides whether a student message is a substantive answer or a
// conversational aside. Pure function, no side effects.
func Classify(message string, sctx Context) Result {
	if strings.TrimSpace(sctx.LastTutorMessage) == "" {
		return Result{Type: TypeAssessmentResponse, Confidence: 1.0}
	}

	meta := metaScore(message)
	content := contentScore(message, sctx.LastTutorMessage)

	// Tie or content-leaning: an answer. The safer default.
	if content >= meta {
		conf := 0.6 + 0.4*clamp01(content-meta)
		return Result{Type: TypeAssessmentResponse, Confidence: conf}
	}

	margin := clamp01(meta - content)
	conf := 0.5 + 0.5*margin

	// Pure small talk with no process question is "other"; anything asking
	// about the interaction is a conversational question.
	norm := patterns.Normalize(message)
	if !matchesAny(norm, patterns.MetaProcessPhrases()) &&
		!matchesAny(norm, patterns.HintRequestPhrases()) &&
		!matchesAny(norm, patterns.InteractionConfusionPhrases()) {
		return Result{Type: TypeOther, Confidence: conf, ShouldReturnToFlow: true}
	}
	return Result{Type: TypeConversationalQuestion, Confidence: conf, ShouldReturnToFlow: true}
}

// metaScore measures how strongly the message is about the process rather
// than the content. Direct process questions dominate; small talk counts
// less; a trailing question mark with no medical language nudges it up.
func metaScore(message string) float64 {
	norm := patterns.Normalize(message)
	score := 0.0

	if matchesAny(norm, patterns.MetaProcessPhrases()) {
		score += 0.6
	}
	if matchesAny(norm, patterns.HintRequestPhrases()) {
		score += 0.5
	}
	if matchesAny(norm, patterns.InteractionConfusionPhrases()) {
		score += 0.5
	}
	if matchesAny(norm, patterns.SmallTalkPhrases()) {
		score += 0.25
	}
	if strings.Contains(message, "?") {
		score += 0.15
	}
	return clamp01(score)
}

// contentScore measures engagement with the subject matter: medical
// vocabulary plus lexical overlap with the last question.
func contentScore(message, lastQuestion string) float64 {
	score := 0.0

	basic := len(patterns.MatchTerms(message, patterns.BasicTerms()))
	advanced := len(patterns.MatchTerms(message, patterns.AdvancedTerms()))
	domain := len(patterns.MatchTerms(message, patterns.DomainTerms()))
	score += 0.15*float64(basic) + 0.3*float64(advanced+domain)

	overlap := wordOverlap(message, lastQuestion)
	score += 0.2 * float64(overlap)

	// Length alone is weak evidence of a real attempt.
	if len(strings.Fields(message)) >= 8 {
		score += 0.15
	}
	return clamp01(score)
}

// wordOverlap counts distinct substantive words shared with the question.
func wordOverlap(message, question string) int {
	qwords := make(map[string]bool)
	for _, w := range strings.Fields(patterns.Normalize(question)) {
		if len(w) > 4 {
			qwords[w] = true
		}
	}
	seen := make(map[string]bool)
	count := 0
	for _, w := range strings.Fields(patterns.Normalize(message)) {
		if qwords[w] && !seen[w] {
			seen[w] = true
			count++
		}
	}
	return count
}

func matchesAny(normalized string, phrases []string) bool {
	for _, p := range phrases {
		if patterns.ContainsTerm(normalized, p) {
			return true
		}
	}
	return false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
