package dialogue

import (
	"reflect"
	"testing"
)

func TestExtractDecomposition(t *testing.T) {
	tests := []struct {
		name          string
		raw           string
		wantIntro     string
		wantSubtopics []string
	}{
		{
			name:          "clean json",
			raw:           `{"introduction": "Let's start.", "subtopics": ["Pathophysiology", "Management"]}`,
			wantIntro:     "Let's start.",
			wantSubtopics: []string{"Pathophysiology", "Management"},
		},
		{
			name: "fenced json with language tag",
			raw: "```json\n" +
				`{"introduction": "Welcome.", "subtopics": ["Diagnosis"]}` +
				"\n```",
			wantIntro:     "Welcome.",
			wantSubtopics: []string{"Diagnosis"},
		},
		{
			name: "fenced json without language tag",
			raw: "```\n" +
				`{"introduction": "Hi.", "subtopics": ["Risk factors"]}` +
				"\n```",
			wantIntro:     "Hi.",
			wantSubtopics: []string{"Risk factors"},
		},
		{
			name:          "json surrounded by prose",
			raw:           `Here is the breakdown: {"introduction": "Off we go.", "subtopics": ["Pathophysiology"]} Hope that helps!`,
			wantIntro:     "Off we go.",
			wantSubtopics: []string{"Pathophysiology"},
		},
		{
			name:          "braces inside string values",
			raw:           `{"introduction": "Think of {risk} as a set.", "subtopics": ["Risk factors"]}`,
			wantIntro:     "Think of {risk} as a set.",
			wantSubtopics: []string{"Risk factors"},
		},
		{
			name:          "escaped quotes inside strings",
			raw:           `{"introduction": "The \"classic triad\" matters.", "subtopics": ["Diagnosis"]}`,
			wantIntro:     `The "classic triad" matters.`,
			wantSubtopics: []string{"Diagnosis"},
		},
		{
			name:          "blank subtopic entries dropped",
			raw:           `{"introduction": "Go.", "subtopics": ["Pathophysiology", "  ", ""]}`,
			wantIntro:     "Go.",
			wantSubtopics: []string{"Pathophysiology"},
		},
		{
			name:          "plain text falls back to introduction",
			raw:           "Preeclampsia is a multisystem disorder of pregnancy.",
			wantIntro:     "Preeclampsia is a multisystem disorder of pregnancy.",
			wantSubtopics: nil,
		},
		{
			name:          "unbalanced json falls back",
			raw:           `{"introduction": "Truncated`,
			wantIntro:     `{"introduction": "Truncated`,
			wantSubtopics: nil,
		},
		{
			name:          "balanced but not decomposition json falls back",
			raw:           `{"answer": 42}`,
			wantIntro:     `{"answer": 42}`,
			wantSubtopics: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractDecomposition("Preeclampsia", []byte(tt.raw))
			if got.Topic != "Preeclampsia" {
				t.Errorf("got topic %q, want Preeclampsia", got.Topic)
			}
			if got.Introduction != tt.wantIntro {
				t.Errorf("got introduction %q, want %q", got.Introduction, tt.wantIntro)
			}
			if !reflect.DeepEqual(got.Subtopics, tt.wantSubtopics) {
				t.Errorf("got subtopics %v, want %v", got.Subtopics, tt.wantSubtopics)
			}
		})
	}
}

func TestOutermostObject_NestedObjects(t *testing.T) {
	text := `noise {"a": {"b": {"c": 1}}, "d": 2} trailing {"e": 3}`
	obj, ok := outermostObject(text)
	if !ok {
		t.Fatal("expected a balanced object")
	}
	if obj != `{"a": {"b": {"c": 1}}, "d": 2}` {
		t.Errorf("got %q", obj)
	}
}
