package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jthornberg/stageboard/internal/ui/board"
	"github.com/jthornberg/stageboard/internal/ui/progress"
	"github.com/jthornberg/stageboard/internal/ui/stagebar"
	"github.com/jthornberg/stageboard/internal/ui/statusbar"
	"github.com/jthornberg/stageboard/internal/ui/toast"
)

// View renders the application UI
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			fmt.Sprintf("%s Loading projects...", m.spinner.View()))
	}

	// Stage bar and completion bars
	tabs := stagebar.Render(m.project, m.activeStage, m.styles, m.width)

	barWidth := m.width / 4
	if barWidth < 10 {
		barWidth = 10
	}
	bars := progress.New(barWidth)
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		bars.Overall(m.project, m.styles),
		m.styles.StatusHint.Render("  │  "),
		bars.Stage(m.project, m.activeStage, m.styles),
		m.styles.StatusHint.Render("  │  "),
		stagebar.RenderProgress(m.project, m.styles),
	)

	// Status bar pinned at the bottom
	bar := statusbar.New(m.mode, m.width, m.styles).
		WithInfo(m.statusInfo()).
		Render()

	// Board fills the space between
	boardHeight := m.height - lipgloss.Height(tabs) - lipgloss.Height(header) - lipgloss.Height(bar)
	if m.mode == ModeSearch {
		boardHeight -= 1
	}
	if boardHeight < 1 {
		boardHeight = 1
	}

	columns := m.buildColumns()
	boardView := board.Render(columns, m.cursor, m.pendingDeleteID, m.styles, m.width, boardHeight)

	sections := []string{tabs, header, boardView}
	if m.mode == ModeSearch {
		sections = append(sections, "/"+m.searchInput.View())
	}
	sections = append(sections, bar)

	view := lipgloss.JoinVertical(lipgloss.Left, sections...)

	// Overlay centered on top of the board
	if current := m.overlayStack.Current(); current != nil {
		content := current.View()
		if title := current.Title(); title != "" {
			content = m.styles.OverlayTitle.Render(title) + "\n" + content
		}
		box := m.styles.Overlay.Render(content)
		view = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}

	// Toasts stack above the status bar
	if len(m.toasts) > 0 {
		renderer := toast.New(m.styles)
		view = lipgloss.JoinVertical(lipgloss.Left, view, renderer.Render(m.toasts, m.width))
	}

	return view
}

// statusInfo summarizes the current project and board context
func (m Model) statusInfo() string {
	parts := []string{m.project.Name, string(m.activeStage)}
	if m.filter.IsActive() {
		parts = append(parts, "filtered")
	}
	return strings.Join(parts, " · ")
}
