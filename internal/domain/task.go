package domain

import "time"

// Unassigned is the sentinel assignee for tasks without an owner.
const Unassigned = "unassigned"

// Comment is a note on a task. Comments are append-only: once added they are
// never edited or removed except when the parent task is deleted.
type Comment struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Task is a unit of work inside a project. A task occupies exactly one stage
// and one status at a time.
type Task struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	Stage         Stage     `json:"stage"`
	Status        Status    `json:"status"`
	Priority      Priority  `json:"priority"`
	Assignee      string    `json:"assignee,omitempty"`
	ClientVisible bool      `json:"client_visible"`
	Comments      []Comment `json:"comments,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Assigned reports whether the task has a real assignee.
func (t Task) Assigned() bool {
	return t.Assignee != "" && t.Assignee != Unassigned
}

// Clone returns a copy of the task with its own comment slice, so mutations
// on the clone never leak into the original.
func (t Task) Clone() Task {
	out := t
	if len(t.Comments) > 0 {
		out.Comments = make([]Comment, len(t.Comments))
		copy(out.Comments, t.Comments)
	}
	return out
}
