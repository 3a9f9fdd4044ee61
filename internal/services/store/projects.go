package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jthornberg/stageboard/internal/domain"
)

// SaveProject inserts or updates a project row. Tasks are persisted
// separately, one write per mutation.
func (s *Store) SaveProject(ctx context.Context, p domain.Project) error {
	s.logger.Debug("saving project", "id", p.ID, "name", p.Name)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO projects (id, name, client, developer, manager, start_date, end_date, status, description, completed_stages)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			client = excluded.client,
			developer = excluded.developer,
			manager = excluded.manager,
			start_date = excluded.start_date,
			end_date = excluded.end_date,
			status = excluded.status,
			description = excluded.description,
			completed_stages = excluded.completed_stages`,
		p.ID, p.Name, p.Client, p.Developer, p.Manager,
		formatTime(p.StartDate), formatTime(p.EndDate),
		string(p.Status), p.Description, joinStages(p.CompletedStages),
	)
	if err != nil {
		return fmt.Errorf("failed to save project %s: %w", p.ID, err)
	}
	return nil
}

// LoadProjects returns all project rows without their tasks, for the
// dashboard listing.
func (s *Store) LoadProjects(ctx context.Context) ([]domain.Project, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, client, developer, manager, start_date, end_date, status, description, completed_stages
		FROM projects ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate projects: %w", err)
	}
	return projects, nil
}

// LoadProject returns one project with its full task store.
func (s *Store) LoadProject(ctx context.Context, id string) (domain.Project, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, client, developer, manager, start_date, end_date, status, description, completed_stages
		FROM projects WHERE id = ?`, id)

	p, err := scanProject(row)
	if err == sql.ErrNoRows {
		return domain.Project{}, &domain.NotFoundError{Kind: "project", ID: id}
	}
	if err != nil {
		return domain.Project{}, err
	}

	tasks, err := s.LoadTasks(ctx, id)
	if err != nil {
		return domain.Project{}, err
	}
	p.Tasks = tasks
	return p, nil
}

// DeleteProject removes the project, its tasks, and their comments.
func (s *Store) DeleteProject(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &domain.NotFoundError{Kind: "project", ID: id}
	}
	return nil
}

// UpdateCompletedStages persists the outcome of a stage-completion toggle.
func (s *Store) UpdateCompletedStages(ctx context.Context, projectID string, stages []domain.Stage) error {
	s.logger.Debug("updating completed stages", "project_id", projectID, "count", len(stages))

	res, err := s.db.ExecContext(ctx,
		`UPDATE projects SET completed_stages = ? WHERE id = ?`,
		joinStages(stages), projectID)
	if err != nil {
		return fmt.Errorf("failed to update completed stages for %s: %w", projectID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &domain.NotFoundError{Kind: "project", ID: projectID}
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanProject(row scanner) (domain.Project, error) {
	var p domain.Project
	var start, end, status, completed string
	if err := row.Scan(&p.ID, &p.Name, &p.Client, &p.Developer, &p.Manager,
		&start, &end, &status, &p.Description, &completed); err != nil {
		if err == sql.ErrNoRows {
			return domain.Project{}, err
		}
		return domain.Project{}, fmt.Errorf("failed to scan project: %w", err)
	}
	p.StartDate = parseTime(start)
	p.EndDate = parseTime(end)
	p.Status = domain.ProjectStatus(status)
	p.CompletedStages = splitStages(completed)
	return p, nil
}
