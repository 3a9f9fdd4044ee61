package board

import "github.com/jthornberg/stageboard/internal/domain"

// Column is one status column of the active stage's board.
type Column struct {
	Status domain.Status
	Tasks  []domain.Task
}

// Cursor represents the current cursor position
type Cursor struct {
	Column int // Status column index (0-4)
	Task   int // Task index within column
}

// BuildColumns projects the project's tasks for one stage into the five
// status columns, preserving store order within each column.
func BuildColumns(tasks []domain.Task, stage domain.Stage) []Column {
	statuses := domain.Statuses()
	columns := make([]Column, 0, len(statuses))
	for _, status := range statuses {
		columns = append(columns, Column{
			Status: status,
			Tasks:  domain.TasksByCell(tasks, stage, status),
		})
	}
	return columns
}

// Clamp snaps the cursor back onto a real card after the columns change.
func (c Cursor) Clamp(columns []Column) Cursor {
	if len(columns) == 0 {
		return Cursor{}
	}
	if c.Column >= len(columns) {
		c.Column = len(columns) - 1
	}
	if c.Column < 0 {
		c.Column = 0
	}
	if n := len(columns[c.Column].Tasks); c.Task >= n {
		c.Task = n - 1
	}
	if c.Task < 0 {
		c.Task = 0
	}
	return c
}

// TaskAt returns the task under the cursor, if any.
func (c Cursor) TaskAt(columns []Column) (domain.Task, bool) {
	if c.Column < 0 || c.Column >= len(columns) {
		return domain.Task{}, false
	}
	col := columns[c.Column]
	if c.Task < 0 || c.Task >= len(col.Tasks) {
		return domain.Task{}, false
	}
	return col.Tasks[c.Task], true
}
