// Package notes turns a finished tutoring session into study notes the
// student can keep.
package notes

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/oslerlabs/osler/internal/llm"
)

// SubtopicResult summarizes one subtopic's outcome for note generation.
type SubtopicResult struct {
	Title  string
	Status string
	Gaps   []string
}

// Input carries the session outcome into note generation.
type Input struct {
	Topic     string
	Subtopics []SubtopicResult
}

// Section is the notes for one subtopic.
type Section struct {
	Title     string
	KeyPoints []string
	Review    []string
}

// StudyNotes is the generated artifact.
type StudyNotes struct {
	Topic    string
	Summary  string
	Sections []Section
}

// Config holds note generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for note generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1536,
		Temperature: 0.3,
	}
}

// Service generates study notes through an llm.Provider.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a notes service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

type notesOutput struct {
	Summary  string          `json:"summary"`
	Sections []sectionOutput `json:"sections"`
}

type sectionOutput struct {
	Title     string   `json:"title"`
	KeyPoints []string `json:"key_points"`
	Review    []string `json:"review"`
}

// Generate produces study notes for a completed session.
func (s *Service) Generate(ctx context.Context, input Input) (*StudyNotes, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeNotes)

	req := llm.Request{
		System: notesSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildNotesUserMessage(input)},
		},
		Schema:      NotesSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("notes generation: %w", err)
	}

	var out notesOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse notes response: %w", err)
	}

	notes := &StudyNotes{Topic: input.Topic, Summary: out.Summary}
	for _, sec := range out.Sections {
		notes.Sections = append(notes.Sections, Section{
			Title:     sec.Title,
			KeyPoints: sec.KeyPoints,
			Review:    sec.Review,
		})
	}
	return notes, nil
}

// Markdown renders the notes as a markdown document.
func (n *StudyNotes) Markdown() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("# Study Notes: %s\n\n", n.Topic))
	b.WriteString(n.Summary)
	b.WriteString("\n")

	for _, sec := range n.Sections {
		b.WriteString(fmt.Sprintf("\n## %s\n\n", sec.Title))
		for _, p := range sec.KeyPoints {
			b.WriteString(fmt.Sprintf("- %s\n", p))
		}
		if len(sec.Review) > 0 {
			b.WriteString("\n**Review:**\n\n")
			for _, r := range sec.Review {
				b.WriteString(fmt.Sprintf("- %s\n", r))
			}
		}
	}
	return b.String()
}
