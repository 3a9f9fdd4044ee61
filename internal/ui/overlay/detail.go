package overlay

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jthornberg/stageboard/internal/domain"
)

// DetailPanel displays full task details with a scrollable description
type DetailPanel struct {
	task          domain.Task
	scrollY       int
	contentHeight int
	viewHeight    int
	styles        *Styles
}

// NewDetailPanel creates a new detail panel for the given task
func NewDetailPanel(task domain.Task) *DetailPanel {
	contentHeight := 0
	if task.Description != "" {
		contentHeight = len(strings.Split(task.Description, "\n"))
	}

	return &DetailPanel{
		task:          task,
		scrollY:       0,
		contentHeight: contentHeight,
		viewHeight:    15,
		styles:        New(),
	}
}

// Init initializes the detail panel
func (d *DetailPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (d *DetailPanel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q", "enter":
			return d, func() tea.Msg { return CloseOverlayMsg{} }

		case "j", "down":
			if d.scrollY < d.maxScroll() {
				d.scrollY++
			}
			return d, nil

		case "k", "up":
			if d.scrollY > 0 {
				d.scrollY--
			}
			return d, nil

		case "g":
			// Jump to top
			d.scrollY = 0
			return d, nil

		case "G":
			// Jump to bottom
			d.scrollY = d.maxScroll()
			return d, nil
		}
	}

	return d, nil
}

// View renders the detail panel
func (d *DetailPanel) View() string {
	var b strings.Builder

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#89b4fa")).
		Bold(true)

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#94e2d5")).
		Width(12).
		Align(lipgloss.Right)

	valueStyle := d.styles.MenuItem

	writeField := func(label, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString("  ")
		b.WriteString(valueStyle.Render(value))
		b.WriteString("\n")
	}

	b.WriteString(headerStyle.Render(d.task.Title))
	b.WriteString("\n\n")

	writeField("Stage:", string(d.task.Stage))
	writeField("Status:", string(d.task.Status))
	writeField("Priority:", string(d.task.Priority))
	writeField("Assignee:", d.task.Assignee)

	visibility := "internal"
	if d.task.ClientVisible {
		visibility = "client-visible"
	}
	writeField("Visibility:", visibility)

	writeField("Created:", d.formatTime(d.task.CreatedAt))
	writeField("Updated:", d.formatTime(d.task.UpdatedAt))

	if n := len(d.task.Comments); n > 0 {
		latest := d.task.Comments[n-1]
		writeField("Comments:", fmt.Sprintf("%d (latest by %s)", n, latest.Author))
	}

	// Description section with scrolling
	if d.task.Description != "" {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render("Description"))
		b.WriteString("\n")

		descLines := strings.Split(d.task.Description, "\n")
		d.contentHeight = len(descLines)

		start := d.scrollY
		end := min(d.scrollY+d.viewHeight, len(descLines))

		for i := start; i < end; i++ {
			b.WriteString(valueStyle.Render(descLines[i]))
			b.WriteString("\n")
		}

		if d.maxScroll() > 0 {
			scrollInfo := d.styles.Footer.Render(
				fmt.Sprintf("[j/k to scroll, g/G to jump] (line %d/%d)", d.scrollY+1, d.contentHeight),
			)
			b.WriteString("\n")
			b.WriteString(scrollInfo)
		}
	}

	return b.String()
}

// Title returns the overlay title
func (d *DetailPanel) Title() string {
	return "Task Details"
}

// Size returns the overlay dimensions
func (d *DetailPanel) Size() (width, height int) {
	return 70, 30
}

// formatTime formats a timestamp for display
func (d *DetailPanel) formatTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

// maxScroll returns the maximum scroll position
func (d *DetailPanel) maxScroll() int {
	return max(0, d.contentHeight-d.viewHeight)
}
