package tutor

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/oslerlabs/osler/internal/tutoring"
	"github.com/oslerlabs/osler/internal/ui/theme"
)

func (t *TutorScreen) View(width, height int) string {
	if t.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n  " + t.errMsg + "\n\n  Press any key to go back.")
	}

	if len(t.session.Subtopics) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Preparing your session...")
	}

	var b strings.Builder

	b.WriteString(t.renderSubtopicStrip(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 1))))
	b.WriteString("\n")

	// Reserve rows for the strip, divider, and the input area.
	transcriptHeight := height - 6
	if transcriptHeight < 3 {
		transcriptHeight = 3
	}
	b.WriteString(t.renderTranscript(width, transcriptHeight))
	b.WriteString("\n")
	b.WriteString(t.renderInputArea(width))

	return b.String()
}

// renderSubtopicStrip shows every subtopic with its progress marker.
func (t *TutorScreen) renderSubtopicStrip(width int) string {
	var parts []string
	for i := range t.session.Subtopics {
		sub := &t.session.Subtopics[i]
		marker := "○"
		style := lipgloss.NewStyle().Foreground(theme.TextDim)

		switch {
		case sub.Status == tutoring.StatusUnderstood:
			marker = "●"
			style = theme.Understood
		case sub.Status == tutoring.StatusGap:
			marker = "●"
			style = theme.Gap
		case i == t.session.CurrentSubtopicIndex && !t.session.Completed:
			marker = "◐"
			style = theme.Selected
		}
		parts = append(parts, style.Render(marker+" "+sub.Title))
	}

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		Render(strings.Join(parts, "   "))
}

// renderTranscript shows the most recent turns that fit in the given height.
func (t *TutorScreen) renderTranscript(width, height int) string {
	bubbleWidth := width * 3 / 4
	if bubbleWidth < 20 {
		bubbleWidth = max(width-4, 10)
	}

	var rendered []string
	for _, m := range t.session.Messages {
		var bubble string
		if m.Role == tutoring.RoleTutor {
			bubble = theme.TutorBubble.Width(bubbleWidth).Render(m.Text)
		} else {
			student := theme.StudentBubble.Width(bubbleWidth).Render(m.Text)
			bubble = lipgloss.NewStyle().
				Width(width - 2).
				Align(lipgloss.Right).
				Render(student)
		}
		rendered = append(rendered, bubble)
	}

	// Keep the newest turns visible.
	lines := strings.Split(strings.Join(rendered, "\n"), "\n")
	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	return strings.Join(lines, "\n")
}

func (t *TutorScreen) renderInputArea(width int) string {
	dim := lipgloss.NewStyle().Width(width).Padding(0, 2).Foreground(theme.TextDim)

	if t.quitConfirm {
		return lipgloss.NewStyle().
			Width(width).
			Padding(0, 2).
			Foreground(theme.Accent).
			Bold(true).
			Render("End this session? (y/n)")
	}

	if t.session.State == tutoring.StateCompletionChoice {
		return dim.Render("All subtopics covered. Press n for study notes, q to finish.")
	}

	if t.waiting {
		return dim.Render("Thinking...")
	}

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		Render(t.input.View())
}
