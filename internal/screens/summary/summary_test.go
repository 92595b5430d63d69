package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
)

func testResult() Result {
	return Result{
		Topic:    "Preeclampsia",
		Duration: 12 * time.Minute,
		Subtopics: []SubtopicResult{
			{Title: "Pathophysiology of preeclampsia", Status: "understood"},
			{Title: "Diagnostic criteria", Status: "gap", Gaps: []string{"severe features thresholds"}},
			{Title: "Management", Status: "understood"},
		},
		NotesPath: "/tmp/notes/preeclampsia-2026-08-29.md",
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testResult())
	if s.Title() != "Session Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Session Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testResult())
	view := s.View(80, 24)

	for _, want := range []string{
		"Preeclampsia",
		"Diagnostic criteria",
		"severe features thresholds",
		"preeclampsia-2026-08-29.md",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_NoNotesLine(t *testing.T) {
	r := testResult()
	r.NotesPath = ""
	view := New(r).View(80, 24)
	if strings.Contains(view, "Study notes saved") {
		t.Error("view should not mention notes when none were written")
	}
}

func TestSummaryScreen_QuitKeys(t *testing.T) {
	for _, code := range []rune{'q', tea.KeyEnter, tea.KeyEscape} {
		s := New(testResult())
		_, cmd := s.Update(tea.KeyPressMsg{Code: code})
		if cmd == nil {
			t.Errorf("key %q should quit", code)
		}
	}
}
