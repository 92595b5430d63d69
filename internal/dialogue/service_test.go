package dialogue

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/oslerlabs/osler/internal/llm"
)

func TestDecompose(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"introduction": "Tell me what causes preeclampsia.", "subtopics": ["Pathophysiology of preeclampsia", "Diagnostic criteria", "Management of severe features"]}`),
	})
	svc := NewService(mock, DefaultConfig())

	dec, err := svc.Decompose(context.Background(), "Preeclampsia")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dec.Subtopics) != 3 {
		t.Fatalf("got %d subtopics, want 3", len(dec.Subtopics))
	}
	if dec.Subtopics[0] != "Pathophysiology of preeclampsia" {
		t.Errorf("got first subtopic %q", dec.Subtopics[0])
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("got %d calls, want 1", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema != DecompositionSchema {
		t.Error("decomposition request should carry the decomposition schema")
	}
	if !strings.Contains(req.Messages[0].Content, "Topic: Preeclampsia") {
		t.Errorf("prompt missing topic: %q", req.Messages[0].Content)
	}
}

func TestDecompose_NonCompliantModelFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`"Preeclampsia is best learned by cases."`),
	})
	svc := NewService(mock, DefaultConfig())

	dec, err := svc.Decompose(context.Background(), "Preeclampsia")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dec.Subtopics) != 0 {
		t.Errorf("non-compliant output should yield no subtopics, got %v", dec.Subtopics)
	}
}

func TestNextTurn_PromptReflectsKind(t *testing.T) {
	tests := []struct {
		kind TurnKind
		want string
	}{
		{TurnOpening, "open question"},
		{TurnProbe, "narrower follow-up"},
		{TurnExplain, "Explain the missing concepts"},
		{TurnCheckin, "check question"},
		{TurnRedirect, "restate your last question"},
		{TurnTransition, "Diagnostic criteria"},
		{TurnCompletion, "study notes"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{
				Content: json.RawMessage(`"What initiates the placental dysfunction?"`),
			})
			svc := NewService(mock, DefaultConfig())

			msg, err := svc.NextTurn(context.Background(), TurnInput{
				Topic:        "Preeclampsia",
				Subtopic:     "Pathophysiology of preeclampsia",
				Nature:       "mechanism",
				Kind:         tt.kind,
				NextSubtopic: "Diagnostic criteria",
				Gaps:         []string{"endothelial dysfunction"},
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if msg != "What initiates the placental dysfunction?" {
				t.Errorf("got %q", msg)
			}

			prompt := mock.Calls[0].Messages[0].Content
			if !strings.Contains(prompt, tt.want) {
				t.Errorf("%s prompt missing %q:\n%s", tt.kind, tt.want, prompt)
			}
			if mock.Calls[0].Schema != nil {
				t.Error("turn requests are free text, no schema expected")
			}
		})
	}
}

func TestNextTurn_HistoryTruncated(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`"Go on."`)})
	svc := NewService(mock, DefaultConfig())

	history := make([]Turn, 0, MaxHistoryTurns+6)
	for i := 0; i < MaxHistoryTurns+6; i++ {
		history = append(history, Turn{FromStudent: i%2 == 1, Content: "turn"})
	}
	history[0].Content = "very first turn"

	_, err := svc.NextTurn(context.Background(), TurnInput{
		Topic:    "Preeclampsia",
		Subtopic: "Pathophysiology of preeclampsia",
		Kind:     TurnProbe,
		History:  history,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	prompt := mock.Calls[0].Messages[0].Content
	if strings.Contains(prompt, "very first turn") {
		t.Error("oldest turns should be dropped from the prompt")
	}
}
