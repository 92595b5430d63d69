// Package requirements derives how much evidence a subtopic needs before it
// can be declared mastered: the concepts a strong answer should touch and
// the question budget. Generation is deterministic and never fails — unknown
// subtopics get a generic profile.
package requirements

import "github.com/oslerlabs/osler/internal/patterns"

// SubtopicRequirements is the evidence profile for one subtopic.
type SubtopicRequirements struct {
	SubtopicTitle    string
	Topic            string
	ExpectedConcepts []string
	MaxQuestions     int
	Nature           patterns.SubtopicNature
}

// HasExpectedConcepts reports whether ground-truth concepts are available.
// The score combiner re-weights toward the topic signal when they are.
func (r *SubtopicRequirements) HasExpectedConcepts() bool {
	return len(r.ExpectedConcepts) > 0
}

// Generate derives requirements for a subtopic. A known (topic, title) pair
// resolves to its profile; anything else gets the generic fallback with the
// default question budget and no expected concepts.
func Generate(subtopicTitle, topic string) SubtopicRequirements {
	req := SubtopicRequirements{
		SubtopicTitle: subtopicTitle,
		Topic:         topic,
		MaxQuestions:  patterns.DefaultMaxQuestions,
		Nature:        patterns.ClassifyNature(subtopicTitle),
	}

	profile, ok := patterns.FindSubtopicProfile(subtopicTitle, topic)
	if !ok {
		return req
	}

	req.ExpectedConcepts = append([]string(nil), profile.ExpectedConcepts...)
	if profile.MaxQuestions > 0 {
		req.MaxQuestions = profile.MaxQuestions
	}
	return req
}
