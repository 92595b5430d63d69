package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/oslerlabs/osler/internal/dialogue"
	"github.com/oslerlabs/osler/internal/notes"
	"github.com/oslerlabs/osler/internal/router"
	"github.com/oslerlabs/osler/internal/screen"
	"github.com/oslerlabs/osler/internal/screens/tutor"
	"github.com/oslerlabs/osler/internal/screens/welcome"
	"github.com/oslerlabs/osler/internal/store"
	"github.com/oslerlabs/osler/internal/tutoring"
	"github.com/oslerlabs/osler/internal/ui/layout"
)

// Options carries the dependencies the screens need.
type Options struct {
	EventRepo    store.EventRepo
	SnapshotRepo store.SnapshotRepo

	// Dialogue and Notes are nil when no LLM provider is configured; the
	// tutor screen then falls back to built-in question templates.
	Dialogue *dialogue.Service
	Notes    *notes.Service

	// Topic non-empty skips the welcome screen.
	Topic string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel starting on the welcome screen, or
// directly in a tutoring session when a topic was preselected.
func newAppModel(opts Options) AppModel {
	tutorFactory := func(topic string) screen.Screen {
		return tutor.New(topic, tutoring.NewEngine(), opts.Dialogue, opts.Notes,
			opts.EventRepo, opts.SnapshotRepo)
	}

	var initial screen.Screen
	if opts.Topic != "" {
		initial = tutorFactory(opts.Topic)
	} else {
		initial = welcome.New(tutorFactory)
	}
	return AppModel{
		router: router.New(initial),
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	status := ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.HeaderStatus()
		}
	}

	header := layout.RenderHeader(title, status, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = append(hints, footerHints...)
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
