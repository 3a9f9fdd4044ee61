package board

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jthornberg/stageboard/internal/domain"
	"github.com/jthornberg/stageboard/internal/ui/styles"
)

func TestRenderCard_Content(t *testing.T) {
	task := domain.Task{
		ID:            "t1",
		Title:         "Create wireframes",
		Priority:      domain.PriorityHigh,
		Assignee:      "Jane Smith",
		ClientVisible: true,
		Comments:      []domain.Comment{{ID: "c1"}, {ID: "c2"}},
	}

	out := renderCard(task, false, false, 40, styles.New())

	assert.Contains(t, out, "Create wireframes")
	assert.Contains(t, out, "Jane Smith")
	assert.Contains(t, out, "H", "priority badge")
	assert.Contains(t, out, "C", "client visibility marker")
	assert.Contains(t, out, "💬2", "comment count")
}

func TestRenderCard_CursorMarker(t *testing.T) {
	task := domain.Task{ID: "t1", Title: "Fix header", Priority: domain.PriorityLow, Assignee: domain.Unassigned}

	plain := renderCard(task, false, false, 40, styles.New())
	assert.NotContains(t, plain, "▶")

	active := renderCard(task, true, false, 40, styles.New())
	assert.Contains(t, active, "▶Fix header")
}

func TestRenderCard_TruncatesLongTitle(t *testing.T) {
	task := domain.Task{
		ID:       "t1",
		Title:    strings.Repeat("very long title ", 10),
		Priority: domain.PriorityMedium,
		Assignee: domain.Unassigned,
	}

	out := renderCard(task, false, false, 24, styles.New())
	assert.Contains(t, out, "…")
}

func TestRenderCard_NoBadgesForInternalTask(t *testing.T) {
	task := domain.Task{ID: "t1", Title: "Internal chore", Priority: domain.PriorityLow, Assignee: "John Doe"}

	out := renderCard(task, false, false, 40, styles.New())
	assert.NotContains(t, out, "💬")
}
