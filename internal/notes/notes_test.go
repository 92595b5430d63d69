package notes

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/oslerlabs/osler/internal/llm"
)

func TestGenerate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"summary": "Solid grasp of mechanism, diagnosis needs review.",
			"sections": [
				{"title": "Pathophysiology of preeclampsia", "key_points": ["Abnormal spiral artery remodeling", "Endothelial dysfunction drives hypertension"], "review": []},
				{"title": "Diagnostic criteria", "key_points": ["BP >= 140/90 after 20 weeks", "Proteinuria or end-organ dysfunction"], "review": ["severe features thresholds"]}
			]
		}`),
	})
	svc := NewService(mock, DefaultConfig())

	got, err := svc.Generate(context.Background(), Input{
		Topic: "Preeclampsia",
		Subtopics: []SubtopicResult{
			{Title: "Pathophysiology of preeclampsia", Status: "understood"},
			{Title: "Diagnostic criteria", Status: "gap", Gaps: []string{"severe features thresholds"}},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(got.Sections))
	}
	if len(got.Sections[1].Review) != 1 {
		t.Errorf("gap subtopic should carry review items, got %v", got.Sections[1].Review)
	}

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "Diagnostic criteria: gap") {
		t.Errorf("prompt missing subtopic outcome:\n%s", prompt)
	}
	if !strings.Contains(prompt, "missing concept: severe features thresholds") {
		t.Errorf("prompt missing gap concept:\n%s", prompt)
	}
	if mock.Calls[0].Schema != NotesSchema {
		t.Error("notes request should carry the notes schema")
	}
}

func TestGenerate_BadJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`"not an object"`),
	})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Generate(context.Background(), Input{Topic: "DKA"})
	if err == nil {
		t.Fatal("expected parse error")
	}
}

func TestMarkdown(t *testing.T) {
	n := &StudyNotes{
		Topic:   "Preeclampsia",
		Summary: "Good session overall.",
		Sections: []Section{
			{
				Title:     "Diagnostic criteria",
				KeyPoints: []string{"BP >= 140/90 after 20 weeks"},
				Review:    []string{"severe features thresholds"},
			},
		},
	}

	md := n.Markdown()
	for _, want := range []string{
		"# Study Notes: Preeclampsia",
		"Good session overall.",
		"## Diagnostic criteria",
		"- BP >= 140/90 after 20 weeks",
		"**Review:**",
		"- severe features thresholds",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}
