package board

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jthornberg/stageboard/internal/ui/styles"
)

// Render renders the active stage's board with one column per status
func Render(
	columns []Column,
	cursor Cursor,
	pickedID string,
	s *styles.Styles,
	width int,
	height int,
) string {
	if len(columns) == 0 {
		return ""
	}

	// Calculate column width - 5 columns, evenly distributed
	columnWidth := width / len(columns)

	// Render each column
	var columnStrings []string
	for i, col := range columns {
		isActive := i == cursor.Column
		cursorTask := 0
		if isActive {
			cursorTask = cursor.Task
		}

		columnStr := renderColumn(
			col.Status,
			col.Tasks,
			cursorTask,
			isActive,
			pickedID,
			columnWidth,
			height,
			s,
		)

		// Force consistent width using lipgloss Width
		sized := lipgloss.NewStyle().Width(columnWidth).Height(height).Render(columnStr)
		columnStrings = append(columnStrings, sized)
	}

	// Join columns horizontally
	return lipgloss.JoinHorizontal(lipgloss.Top, columnStrings...)
}
