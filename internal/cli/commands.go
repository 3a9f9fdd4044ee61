// Package cli implements the non-interactive subcommands: project and
// task listings plus YAML export/import.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/jthornberg/stageboard/internal/config"
	"github.com/jthornberg/stageboard/internal/domain"
	"github.com/jthornberg/stageboard/internal/services/store"
)

// Dependencies holds the services needed for CLI commands
type Dependencies struct {
	Config *config.Config
	Store  *store.Store
	Logger *slog.Logger
}

// NewDependencies opens the task store and wires up the CLI services
func NewDependencies(cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	st, err := store.New(cfg.Database.Path, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	return &Dependencies{
		Config: cfg,
		Store:  st,
		Logger: logger,
	}, nil
}

// Close releases the store
func (d *Dependencies) Close() error {
	return d.Store.Close()
}

var (
	statusColors = map[domain.ProjectStatus]*color.Color{
		domain.ProjectActive:    color.New(color.FgGreen),
		domain.ProjectCompleted: color.New(color.FgBlue),
		domain.ProjectOnHold:    color.New(color.FgYellow),
	}

	taskStatusColors = map[domain.Status]*color.Color{
		domain.StatusBacklog:    color.New(color.FgWhite),
		domain.StatusInProgress: color.New(color.FgBlue),
		domain.StatusBlocked:    color.New(color.FgRed),
		domain.StatusInReview:   color.New(color.FgYellow),
		domain.StatusCompleted:  color.New(color.FgGreen),
	}
)

func colorProjectStatus(s domain.ProjectStatus) string {
	if c, ok := statusColors[s]; ok {
		return c.Sprint(string(s))
	}
	return string(s)
}

func colorTaskStatus(s domain.Status) string {
	if c, ok := taskStatusColors[s]; ok {
		return c.Sprint(string(s))
	}
	return string(s)
}

// ProjectsCommand lists all projects with their overall progress
func ProjectsCommand(deps *Dependencies) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	projects, err := deps.Store.LoadProjects(ctx)
	if err != nil {
		return fmt.Errorf("failed to load projects: %w", err)
	}
	if len(projects) == 0 {
		fmt.Println("No projects found")
		return nil
	}

	// Task stores load concurrently, one query per project
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i := range projects {
		g.Go(func() error {
			tasks, err := deps.Store.LoadTasks(gctx, projects[i].ID)
			if err != nil {
				return fmt.Errorf("failed to load tasks for %s: %w", projects[i].ID, err)
			}
			projects[i].Tasks = tasks
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCLIENT\tSTATUS\tPROGRESS\tTASKS\tSTAGES")
	for _, p := range projects {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d%%\t%d\t%d/%d\n",
			p.ID, p.Name, p.Client,
			colorProjectStatus(p.Status),
			p.OverallProgress(),
			len(p.Tasks),
			len(p.CompletedStages), len(domain.Stages()),
		)
	}
	return w.Flush()
}

// TasksCommand lists a project's tasks, optionally limited to one stage
func TasksCommand(deps *Dependencies, projectID, stageName string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	p, err := deps.Store.LoadProject(ctx, projectID)
	if err != nil {
		return fmt.Errorf("failed to load project: %w", err)
	}

	stages := domain.Stages()
	if stageName != "" {
		stage, err := domain.ParseStage(stageName)
		if err != nil {
			return err
		}
		stages = []domain.Stage{stage}
	}

	counts := domain.StageCounts(p.Tasks)

	bold := color.New(color.Bold)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, stage := range stages {
		tasks := domain.TasksByStage(p.Tasks, stage)

		marker := " "
		if p.IsStageCompleted(stage) {
			marker = "✓"
		}
		bold.Fprintf(w, "%s %s (%d tasks, %d%%)\n", marker, stage, counts[stage], p.StageProgress(stage))

		if len(tasks) == 0 {
			fmt.Fprintln(w, "  (no tasks)")
			continue
		}
		for _, t := range tasks {
			visible := ""
			if t.ClientVisible {
				visible = "client"
			}
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\t%s\n",
				t.ID, colorTaskStatus(t.Status), t.Priority.Short(), t.Title, t.Assignee, visible)
		}
	}
	return w.Flush()
}

// projectExport is the YAML document shape for export and import
type projectExport struct {
	ID              string         `yaml:"id"`
	Name            string         `yaml:"name"`
	Client          string         `yaml:"client"`
	Developer       string         `yaml:"developer,omitempty"`
	Manager         string         `yaml:"manager,omitempty"`
	StartDate       time.Time      `yaml:"startDate,omitempty"`
	EndDate         time.Time      `yaml:"endDate,omitempty"`
	Status          string         `yaml:"status"`
	Description     string         `yaml:"description,omitempty"`
	CompletedStages []string       `yaml:"completedStages,omitempty"`
	Tasks           []taskExport   `yaml:"tasks"`
}

type taskExport struct {
	ID            string          `yaml:"id"`
	Title         string          `yaml:"title"`
	Description   string          `yaml:"description,omitempty"`
	Stage         string          `yaml:"stage"`
	Status        string          `yaml:"status"`
	Priority      string          `yaml:"priority"`
	Assignee      string          `yaml:"assignee,omitempty"`
	ClientVisible bool            `yaml:"clientVisible,omitempty"`
	CreatedAt     time.Time       `yaml:"createdAt,omitempty"`
	UpdatedAt     time.Time       `yaml:"updatedAt,omitempty"`
	Comments      []commentExport `yaml:"comments,omitempty"`
}

type commentExport struct {
	ID        string    `yaml:"id"`
	Author    string    `yaml:"author"`
	Content   string    `yaml:"content"`
	CreatedAt time.Time `yaml:"createdAt,omitempty"`
}

// ExportCommand writes one project, tasks and comments included, as YAML
func ExportCommand(deps *Dependencies, projectID, path string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	p, err := deps.Store.LoadProject(ctx, projectID)
	if err != nil {
		return fmt.Errorf("failed to load project: %w", err)
	}

	doc := exportProject(p)

	out := os.Stdout
	if path != "" && path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		defer f.Close()
		out = f
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode project: %w", err)
	}
	return enc.Close()
}

// ImportCommand reads a YAML project document and stores it
func ImportCommand(deps *Dependencies, path string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var doc projectExport
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	p, err := importProject(doc)
	if err != nil {
		return err
	}

	if err := deps.Store.SaveProject(ctx, p); err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}
	for _, t := range p.Tasks {
		if err := deps.Store.SaveTask(ctx, p.ID, t); err != nil {
			return fmt.Errorf("failed to save task %s: %w", t.ID, err)
		}
		for _, c := range t.Comments {
			if err := deps.Store.AddComment(ctx, t.ID, c); err != nil {
				return fmt.Errorf("failed to save comment on %s: %w", t.ID, err)
			}
		}
	}

	fmt.Printf("Imported %s (%d tasks)\n", p.Name, len(p.Tasks))
	return nil
}

func exportProject(p domain.Project) projectExport {
	doc := projectExport{
		ID:          p.ID,
		Name:        p.Name,
		Client:      p.Client,
		Developer:   p.Developer,
		Manager:     p.Manager,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Status:      string(p.Status),
		Description: p.Description,
	}
	for _, s := range p.CompletedStages {
		doc.CompletedStages = append(doc.CompletedStages, string(s))
	}
	for _, t := range p.Tasks {
		te := taskExport{
			ID:            t.ID,
			Title:         t.Title,
			Description:   t.Description,
			Stage:         string(t.Stage),
			Status:        string(t.Status),
			Priority:      string(t.Priority),
			Assignee:      t.Assignee,
			ClientVisible: t.ClientVisible,
			CreatedAt:     t.CreatedAt,
			UpdatedAt:     t.UpdatedAt,
		}
		for _, c := range t.Comments {
			te.Comments = append(te.Comments, commentExport{
				ID:        c.ID,
				Author:    c.Author,
				Content:   c.Content,
				CreatedAt: c.CreatedAt,
			})
		}
		doc.Tasks = append(doc.Tasks, te)
	}
	return doc
}

func importProject(doc projectExport) (domain.Project, error) {
	if doc.Name == "" {
		return domain.Project{}, &domain.ValidationError{Field: "name", Reason: "project name is required"}
	}

	p := domain.Project{
		ID:          doc.ID,
		Name:        doc.Name,
		Client:      doc.Client,
		Developer:   doc.Developer,
		Manager:     doc.Manager,
		StartDate:   doc.StartDate,
		EndDate:     doc.EndDate,
		Status:      domain.ProjectStatus(doc.Status),
		Description: doc.Description,
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Status == "" {
		p.Status = domain.ProjectActive
	}
	for _, s := range doc.CompletedStages {
		stage, err := domain.ParseStage(s)
		if err != nil {
			return domain.Project{}, &domain.ValidationError{Field: "completedStages", Reason: fmt.Sprintf("unknown stage: %s", s)}
		}
		p.CompletedStages = append(p.CompletedStages, stage)
	}

	now := time.Now()
	for _, td := range doc.Tasks {
		t, err := importTask(td, now)
		if err != nil {
			return domain.Project{}, err
		}
		p.Tasks = append(p.Tasks, t)
	}
	return p, nil
}

func importTask(td taskExport, now time.Time) (domain.Task, error) {
	if td.Title == "" {
		return domain.Task{}, &domain.ValidationError{Field: "title", Reason: "task title is required"}
	}
	stage, err := domain.ParseStage(td.Stage)
	if err != nil {
		return domain.Task{}, &domain.ValidationError{Field: "stage", Reason: fmt.Sprintf("unknown stage: %s", td.Stage)}
	}
	status := domain.StatusBacklog
	if td.Status != "" {
		status, err = domain.ParseStatus(td.Status)
		if err != nil {
			return domain.Task{}, &domain.ValidationError{Field: "status", Reason: fmt.Sprintf("unknown status: %s", td.Status)}
		}
	}

	t := domain.Task{
		ID:            td.ID,
		Title:         td.Title,
		Description:   td.Description,
		Stage:         stage,
		Status:        status,
		Priority:      domain.Priority(td.Priority),
		Assignee:      td.Assignee,
		ClientVisible: td.ClientVisible,
		CreatedAt:     td.CreatedAt,
		UpdatedAt:     td.UpdatedAt,
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Priority == "" {
		t.Priority = domain.PriorityMedium
	}
	if t.Assignee == "" {
		t.Assignee = domain.Unassigned
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = t.CreatedAt
	}

	for _, cd := range td.Comments {
		c := domain.Comment{
			ID:        cd.ID,
			Author:    cd.Author,
			Content:   cd.Content,
			CreatedAt: cd.CreatedAt,
		}
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		if c.CreatedAt.IsZero() {
			c.CreatedAt = now
		}
		t.Comments = append(t.Comments, c)
	}
	return t, nil
}
