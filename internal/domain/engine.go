package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Engine applies task mutations. Every operation is all-or-nothing: it
// returns a new task slice and leaves its input untouched on failure, so the
// board state is always a pure function of the last successful mutation.
type Engine struct {
	now   func() time.Time
	newID func() string
}

// NewEngine returns an Engine using wall-clock time and UUID ids.
func NewEngine() *Engine {
	return &Engine{
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// NewEngineWith returns an Engine with an injected clock and id source, for
// deterministic tests and imports.
func NewEngineWith(now func() time.Time, newID func() string) *Engine {
	return &Engine{now: now, newID: newID}
}

// AddTask creates a task in the given stage with the pipeline's initial
// Backlog status, a fresh id, and both timestamps set to now.
func (e *Engine) AddTask(tasks []Task, stage Stage, title, description string, priority Priority, assignee string, clientVisible bool) ([]Task, Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return tasks, Task{}, &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if assignee == "" {
		assignee = Unassigned
	}

	now := e.now()
	task := Task{
		ID:            e.newID(),
		Title:         title,
		Description:   description,
		Stage:         stage,
		Status:        StatusBacklog,
		Priority:      priority,
		Assignee:      assignee,
		ClientVisible: clientVisible,
		Comments:      []Comment{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	out := make([]Task, 0, len(tasks)+1)
	out = append(out, tasks...)
	out = append(out, task)
	return out, task, nil
}

// TaskUpdate carries the fields of a partial edit; nil fields are left
// unchanged.
type TaskUpdate struct {
	Title         *string
	Description   *string
	Stage         *Stage
	Priority      *Priority
	Assignee      *string
	ClientVisible *bool
}

// EditTask applies a partial update to the task with the given id and
// refreshes its updated timestamp.
func (e *Engine) EditTask(tasks []Task, id string, update TaskUpdate) ([]Task, Task, error) {
	idx := indexOf(tasks, id)
	if idx < 0 {
		return tasks, Task{}, &NotFoundError{Kind: "task", ID: id}
	}
	if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
		return tasks, Task{}, &ValidationError{Field: "title", Reason: "must not be empty"}
	}

	out := copyTasks(tasks)
	t := &out[idx]
	if update.Title != nil {
		t.Title = strings.TrimSpace(*update.Title)
	}
	if update.Description != nil {
		t.Description = *update.Description
	}
	if update.Stage != nil {
		t.Stage = *update.Stage
	}
	if update.Priority != nil {
		t.Priority = *update.Priority
	}
	if update.Assignee != nil {
		assignee := *update.Assignee
		if assignee == "" {
			assignee = Unassigned
		}
		t.Assignee = assignee
	}
	if update.ClientVisible != nil {
		t.ClientVisible = *update.ClientVisible
	}
	t.UpdatedAt = e.now()
	return out, *t, nil
}

// DeleteTask removes the task and its comments in one step; no partial
// deletion state is ever observable.
func (e *Engine) DeleteTask(tasks []Task, id string) ([]Task, error) {
	idx := indexOf(tasks, id)
	if idx < 0 {
		return tasks, &NotFoundError{Kind: "task", ID: id}
	}

	out := make([]Task, 0, len(tasks)-1)
	out = append(out, tasks[:idx]...)
	out = append(out, tasks[idx+1:]...)
	return out, nil
}

// MoveTask sets the task's status. All status-to-status moves are legal.
// Dropping a task on the column it already occupies is a successful no-op
// that keeps the old timestamp, so re-drops never churn "updated".
func (e *Engine) MoveTask(tasks []Task, id string, status Status) ([]Task, Task, error) {
	idx := indexOf(tasks, id)
	if idx < 0 {
		return tasks, Task{}, &NotFoundError{Kind: "task", ID: id}
	}
	if tasks[idx].Status == status {
		return tasks, tasks[idx], nil
	}

	out := copyTasks(tasks)
	out[idx].Status = status
	out[idx].UpdatedAt = e.now()
	return out, out[idx], nil
}

// AddComment appends a comment to the end of the task's thread and refreshes
// the task's updated timestamp.
func (e *Engine) AddComment(tasks []Task, id, author, content string) ([]Task, Comment, error) {
	idx := indexOf(tasks, id)
	if idx < 0 {
		return tasks, Comment{}, &NotFoundError{Kind: "task", ID: id}
	}
	if strings.TrimSpace(content) == "" {
		return tasks, Comment{}, &ValidationError{Field: "content", Reason: "must not be empty"}
	}

	now := e.now()
	comment := Comment{
		ID:        e.newID(),
		Author:    author,
		Content:   content,
		CreatedAt: now,
	}

	out := copyTasks(tasks)
	t := &out[idx]
	comments := make([]Comment, 0, len(t.Comments)+1)
	comments = append(comments, t.Comments...)
	comments = append(comments, comment)
	t.Comments = comments
	t.UpdatedAt = now
	return out, comment, nil
}

// indexOf returns the position of the task with the given id, or -1.
func indexOf(tasks []Task, id string) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// copyTasks returns a fresh slice sharing task values with the input. Callers
// that touch a task's comment slice must replace it, not append in place.
func copyTasks(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	copy(out, tasks)
	return out
}
