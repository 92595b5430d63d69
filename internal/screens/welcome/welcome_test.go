package welcome

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/oslerlabs/osler/internal/patterns"
	"github.com/oslerlabs/osler/internal/router"
	"github.com/oslerlabs/osler/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct {
	topic string
}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.topic }
func (s *stubScreen) Title() string                           { return s.topic }

func newTestWelcome() (*WelcomeScreen, *[]string) {
	var topics []string
	factory := func(topic string) screen.Screen {
		topics = append(topics, topic)
		return &stubScreen{topic: topic}
	}
	return New(factory), &topics
}

func TestMenu_ListsBuiltinTopicsPlusFreeEntry(t *testing.T) {
	w, _ := newTestWelcome()

	want := len(patterns.TopicNames()) + 1
	if len(w.menu.Items) != want {
		t.Errorf("menu has %d items, want %d", len(w.menu.Items), want)
	}
	last := w.menu.Items[len(w.menu.Items)-1]
	if last.Label != "Another topic..." {
		t.Errorf("last item = %q, want the free-text entry", last.Label)
	}
}

func TestSelectTopic_StartsSession(t *testing.T) {
	w, topics := newTestWelcome()

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*stubScreen); !ok {
		t.Errorf("expected the factory's screen, got %T", msg.Screen)
	}
	if len(*topics) != 1 || (*topics)[0] != patterns.TopicNames()[0] {
		t.Errorf("factory called with %v, want first built-in topic", *topics)
	}
}

func TestFreeText_TypedTopicStartsSession(t *testing.T) {
	w, topics := newTestWelcome()

	// Navigate to the last menu item and select it.
	for range w.menu.Items {
		w.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !w.typing {
		t.Fatal("selecting the free-text entry should enter typing mode")
	}

	w.input.Model.SetValue("Aortic dissection")
	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter with a typed topic")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if len(*topics) != 1 || (*topics)[0] != "Aortic dissection" {
		t.Errorf("factory called with %v, want the typed topic", *topics)
	}
}

func TestFreeText_EmptyTopicIgnored(t *testing.T) {
	w, topics := newTestWelcome()
	w.typing = true

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("empty topic should not start a session")
	}
	if len(*topics) != 0 {
		t.Error("factory should not be called for an empty topic")
	}
}

func TestFreeText_EscReturnsToMenu(t *testing.T) {
	w, _ := newTestWelcome()
	w.typing = true

	w.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if w.typing {
		t.Error("esc should leave typing mode")
	}
}

func TestView_ShowsTagline(t *testing.T) {
	w, _ := newTestWelcome()

	view := w.View(100, 40)
	if !strings.Contains(view, "Socratic clinical tutoring") {
		t.Error("view should show the tagline")
	}
}
