package board

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/jthornberg/stageboard/internal/domain"
	"github.com/jthornberg/stageboard/internal/ui/styles"
)

// renderCard renders a task card
func renderCard(task domain.Task, isCursor bool, isPicked bool, width int, s *styles.Styles) string {
	// Choose card style based on state
	cardStyle := s.Card
	if isPicked {
		cardStyle = s.CardSelected
	} else if isCursor {
		cardStyle = s.CardActive
	}

	// Apply width
	cardStyle = cardStyle.Width(width)

	// Priority badge (U, H, M, L)
	priorityBadge := s.PriorityBadge(task.Priority).Render(task.Priority.Short())

	// Title - truncate if needed
	// Account for padding (2), border (2), and some space for badges
	maxTitleLen := width - 4
	title := task.Title
	if len(title) > maxTitleLen && maxTitleLen > 1 {
		title = title[:maxTitleLen-1] + "…"
	}

	// Cursor indicator (▶ symbol when cursor is on this card)
	cursor := ""
	if isCursor {
		cursor = "▶"
	}

	badges := []string{priorityBadge}
	if task.ClientVisible {
		badges = append(badges, " ", s.ClientBadge.Render("C"))
	}
	if n := len(task.Comments); n > 0 {
		badges = append(badges, " ", s.CommentCount.Render(fmt.Sprintf("💬%d", n)))
	}

	titleLine := cursor + title
	metaLine := s.StatusInfo.Render(task.Assignee)
	badgeLine := lipgloss.JoinHorizontal(lipgloss.Left, badges...)

	content := lipgloss.JoinVertical(lipgloss.Left, titleLine, metaLine, badgeLine)

	return cardStyle.Render(content)
}
