package welcome

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/oslerlabs/osler/internal/patterns"
	"github.com/oslerlabs/osler/internal/router"
	"github.com/oslerlabs/osler/internal/screen"
	"github.com/oslerlabs/osler/internal/ui/components"
	"github.com/oslerlabs/osler/internal/ui/layout"
	"github.com/oslerlabs/osler/internal/ui/theme"
)

// WelcomeScreen lets the student pick a topic to study: one of the built-in
// profiles, or any topic typed freely.
type WelcomeScreen struct {
	tutorFactory func(topic string) screen.Screen
	menu         components.Menu
	input        components.TextInput
	typing       bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that starts sessions via tutorFactory.
func New(tutorFactory func(topic string) screen.Screen) *WelcomeScreen {
	w := &WelcomeScreen{
		tutorFactory: tutorFactory,
		input:        components.NewTextInput("e.g. Aortic dissection", 80),
	}

	var items []components.MenuItem
	for _, name := range patterns.TopicNames() {
		topic := name
		items = append(items, components.MenuItem{
			Label:  topic,
			Action: func() tea.Cmd { return w.start(topic) },
		})
	}
	items = append(items, components.MenuItem{
		Label: "Another topic...",
		Action: func() tea.Cmd {
			w.typing = true
			return w.input.Init()
		},
	})
	w.menu = components.NewMenu(items)
	return w
}

func (w *WelcomeScreen) Title() string {
	return "Choose a topic"
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return nil
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	if w.typing {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if w.typing {
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			switch kmsg.String() {
			case "enter":
				topic := strings.TrimSpace(w.input.Value())
				if topic == "" {
					return w, nil
				}
				return w, w.start(topic)
			case "esc":
				w.typing = false
				return w, nil
			}
		}
		var cmd tea.Cmd
		w.input, cmd = w.input.Update(msg)
		return w, cmd
	}

	var cmd tea.Cmd
	w.menu, cmd = w.menu.Update(msg)
	return w, cmd
}

// start replaces this screen with a tutoring session for the topic.
func (w *WelcomeScreen) start(topic string) tea.Cmd {
	tutorScreen := w.tutorFactory(topic)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: tutorScreen}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, RenderBanner(width))
	sections = append(sections, "")

	tagline := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Socratic clinical tutoring in your terminal")
	sections = append(sections, tagline, "")

	if w.typing {
		prompt := theme.Body.Render("What do you want to study?")
		sections = append(sections, prompt, "", w.input.View())
	} else {
		sections = append(sections, w.menu.View())
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
