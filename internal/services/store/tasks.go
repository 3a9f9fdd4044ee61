package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jthornberg/stageboard/internal/domain"
)

// LoadTasks returns a project's tasks with their comments, in insertion
// order. That order is the task store's ambient order on the board.
func (s *Store) LoadTasks(ctx context.Context, projectID string) ([]domain.Task, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, description, stage, status, priority, assignee, client_visible, created_at, updated_at
		FROM tasks WHERE project_id = ? ORDER BY rowid`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.Task
	index := make(map[string]int)
	for rows.Next() {
		var t domain.Task
		var stage, status, priority, created, updated string
		var clientVisible int
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &stage, &status, &priority,
			&t.Assignee, &clientVisible, &created, &updated); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		t.Stage = domain.Stage(stage)
		t.Status = domain.Status(status)
		t.Priority = domain.Priority(priority)
		t.ClientVisible = clientVisible != 0
		t.CreatedAt = parseTime(created)
		t.UpdatedAt = parseTime(updated)
		index[t.ID] = len(tasks)
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}
	if len(tasks) == 0 {
		return tasks, nil
	}

	crows, err := s.db.QueryContext(ctx, `
		SELECT c.id, c.task_id, c.author, c.content, c.created_at
		FROM comments c
		JOIN tasks t ON t.id = c.task_id
		WHERE t.project_id = ? ORDER BY c.rowid`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer crows.Close()

	for crows.Next() {
		var c domain.Comment
		var taskID, created string
		if err := crows.Scan(&c.ID, &taskID, &c.Author, &c.Content, &created); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		c.CreatedAt = parseTime(created)
		if i, ok := index[taskID]; ok {
			tasks[i].Comments = append(tasks[i].Comments, c)
		}
	}
	if err := crows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comments: %w", err)
	}
	return tasks, nil
}

// SaveTask inserts or updates one task row. Comments ride along separately
// via AddComment.
func (s *Store) SaveTask(ctx context.Context, projectID string, t domain.Task) error {
	s.logger.Debug("saving task", "project_id", projectID, "id", t.ID)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tasks (id, project_id, title, description, stage, status, priority, assignee, client_visible, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			stage = excluded.stage,
			status = excluded.status,
			priority = excluded.priority,
			assignee = excluded.assignee,
			client_visible = excluded.client_visible,
			updated_at = excluded.updated_at`,
		t.ID, projectID, t.Title, t.Description, string(t.Stage), string(t.Status),
		string(t.Priority), t.Assignee, boolToInt(t.ClientVisible),
		formatTime(t.CreatedAt), formatTime(t.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to save task %s: %w", t.ID, err)
	}
	return nil
}

// UpdateTaskStatus persists a drag-drop move.
func (s *Store) UpdateTaskStatus(ctx context.Context, taskID string, status domain.Status, updatedAt time.Time) error {
	s.logger.Debug("updating task status", "id", taskID, "status", status)

	res, err := s.db.ExecContext(ctx,
		`UPDATE tasks SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), formatTime(updatedAt), taskID)
	if err != nil {
		return fmt.Errorf("failed to update task %s: %w", taskID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &domain.NotFoundError{Kind: "task", ID: taskID}
	}
	return nil
}

// DeleteTask removes a task; its comments go with it via the foreign key
// cascade, so no partial deletion state is observable.
func (s *Store) DeleteTask(ctx context.Context, taskID string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, taskID)
	if err != nil {
		return fmt.Errorf("failed to delete task %s: %w", taskID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &domain.NotFoundError{Kind: "task", ID: taskID}
	}
	return nil
}

// AddComment appends one comment row and refreshes the parent task's
// updated timestamp.
func (s *Store) AddComment(ctx context.Context, taskID string, c domain.Comment) error {
	s.logger.Debug("adding comment", "task_id", taskID, "id", c.ID)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO comments (id, task_id, author, content, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		c.ID, taskID, c.Author, c.Content, formatTime(c.CreatedAt)); err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE tasks SET updated_at = ? WHERE id = ?`,
		formatTime(c.CreatedAt), taskID)
	if err != nil {
		return fmt.Errorf("failed to touch task %s: %w", taskID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &domain.NotFoundError{Kind: "task", ID: taskID}
	}

	return tx.Commit()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
