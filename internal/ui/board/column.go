package board

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jthornberg/stageboard/internal/domain"
	"github.com/jthornberg/stageboard/internal/ui/styles"
)

// renderColumn renders a status column with header and task cards
func renderColumn(
	status domain.Status,
	tasks []domain.Task,
	cursorTask int,
	isActive bool,
	pickedID string,
	width int,
	height int,
	s *styles.Styles,
) string {
	// Choose header style based on whether this column is active
	headerStyle := s.ColumnHeader
	if isActive {
		headerStyle = s.ColumnHeaderActive
	}

	// Render header with title and count (e.g., "─ Backlog (3) ─────")
	headerText := fmt.Sprintf("─ %s (%d) ", status, len(tasks))
	remainingWidth := width - len(headerText) - 2 // Account for padding
	if remainingWidth > 0 {
		headerText += strings.Repeat("─", remainingWidth)
	}
	header := headerStyle.Render(headerText)

	// Render cards
	var cardStrings []string
	cardWidth := width - 4 // Account for column border and padding
	for i, task := range tasks {
		isCursor := isActive && i == cursorTask
		isPicked := pickedID != "" && task.ID == pickedID
		cardStrings = append(cardStrings, renderCard(task, isCursor, isPicked, cardWidth, s))
	}

	// Handle empty column
	content := ""
	if len(cardStrings) > 0 {
		content = strings.Join(cardStrings, "\n")
	}

	// Apply column style
	columnStyle := s.Column.Width(width).Height(height)
	columnContent := columnStyle.Render(content)

	// Join header and column
	return lipgloss.JoinVertical(lipgloss.Left, header, columnContent)
}
