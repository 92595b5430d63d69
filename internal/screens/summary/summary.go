package summary

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/oslerlabs/osler/internal/screen"
	"github.com/oslerlabs/osler/internal/ui/components"
	"github.com/oslerlabs/osler/internal/ui/layout"
	"github.com/oslerlabs/osler/internal/ui/theme"
)

// SubtopicResult is one subtopic's outcome for display.
type SubtopicResult struct {
	Title  string
	Status string
	Gaps   []string
}

// Result carries everything the summary screen shows.
type Result struct {
	Topic     string
	Subtopics []SubtopicResult
	NotesPath string
	Duration  time.Duration
}

// SummaryScreen displays the session outcome per subtopic.
type SummaryScreen struct {
	result Result
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(result Result) *SummaryScreen {
	return &SummaryScreen{result: result}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Q", Description: "Quit"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "q", "enter", "esc":
			return s, tea.Quit
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Session complete: " + s.result.Topic))
	b.WriteString("\n\n")

	mins := int(s.result.Duration.Minutes())
	secs := int(s.result.Duration.Seconds()) % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Duration: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	if total := len(s.result.Subtopics); total > 0 {
		understood := 0
		for _, sub := range s.result.Subtopics {
			if sub.Status == "understood" {
				understood++
			}
		}
		bar := components.NewProgressBar("Understood", float64(understood)/float64(total), true, min(width-8, 50))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n\n")
	}

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Subtopics")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for _, sub := range s.result.Subtopics {
		var marker string
		var style lipgloss.Style
		switch sub.Status {
		case "understood":
			marker = "✓"
			style = theme.Understood
		case "gap":
			marker = "✗"
			style = theme.Gap
		default:
			marker = "·"
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		}

		line := fmt.Sprintf("%s %s", marker, sub.Title)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		for _, gap := range sub.Gaps {
			gapLine := lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("    review: " + gap)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, gapLine))
			b.WriteString("\n")
		}
	}

	if s.result.NotesPath != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Secondary).
			Render("Study notes saved to " + s.result.NotesPath))
		b.WriteString("\n")
	}

	return b.String()
}
