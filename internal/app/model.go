// Package app contains the main application model and TEA implementation.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jthornberg/stageboard/internal/config"
	"github.com/jthornberg/stageboard/internal/domain"
	"github.com/jthornberg/stageboard/internal/services/notify"
	"github.com/jthornberg/stageboard/internal/types"
	"github.com/jthornberg/stageboard/internal/ui/board"
	"github.com/jthornberg/stageboard/internal/ui/overlay"
	"github.com/jthornberg/stageboard/internal/ui/styles"
	"github.com/jthornberg/stageboard/internal/ui/toast"
)

// Re-export Mode type and constants for convenience
type Mode = types.Mode

const (
	ModeNormal = types.ModeNormal
	ModeSearch = types.ModeSearch
	ModeGoto   = types.ModeGoto
	ModeAction = types.ModeAction
)

// Re-export Toast type and constants for convenience
type Toast = types.Toast
type ToastLevel = types.ToastLevel

const (
	ToastInfo    = types.ToastInfo
	ToastSuccess = types.ToastSuccess
	ToastWarning = types.ToastWarning
	ToastError   = types.ToastError
)

// Store is the persistence surface the model depends on
type Store interface {
	LoadProjects(ctx context.Context) ([]domain.Project, error)
	LoadProject(ctx context.Context, id string) (domain.Project, error)
	SaveTask(ctx context.Context, projectID string, t domain.Task) error
	UpdateTaskStatus(ctx context.Context, taskID string, status domain.Status, updatedAt time.Time) error
	DeleteTask(ctx context.Context, taskID string) error
	AddComment(ctx context.Context, taskID string, c domain.Comment) error
	UpdateCompletedStages(ctx context.Context, projectID string, stages []domain.Stage) error
}

// Model is the main application state
type Model struct {
	// Core data
	project  domain.Project
	projects []domain.Project

	// Board state
	activeStage domain.Stage
	cursor      board.Cursor

	// Editor state
	mode        Mode
	filter      *domain.Filter
	sort        domain.Sort
	searchInput textinput.Model

	// UI state
	overlayStack *overlay.Stack
	toasts       []Toast

	// Pending destructive action
	pendingDeleteID string

	// Terminal size
	width  int
	height int

	// Styles
	styles *styles.Styles

	// Configuration
	config *config.Config

	// Loading state
	loading bool
	spinner spinner.Model

	// Collaborators
	store    Store
	engine   *domain.Engine
	notifier *notify.Notifier

	// Logger
	logger *slog.Logger
}

// New creates a new application model with the given config and store
func New(cfg *config.Config, st Store, logger *slog.Logger) Model {
	// Initialize spinner
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Blue)

	// Initialize search input
	si := textinput.New()
	si.Placeholder = "Search tasks..."
	si.CharLimit = 100
	si.Width = 40

	sort := domain.Sort{Field: domain.SortField(cfg.Board.DefaultSort)}
	if cfg.Board.SortDescending {
		sort.Order = domain.SortDesc
	}

	filter := domain.NewFilter()
	if !cfg.Board.ShowInternalTasks {
		visible := true
		filter.ClientVisible = &visible
	}

	return Model{
		activeStage:  domain.Stages()[0],
		mode:         ModeNormal,
		filter:       filter,
		sort:         sort,
		searchInput:  si,
		overlayStack: overlay.NewStack(),
		toasts:       []Toast{},
		styles:       styles.New(),
		config:       cfg,
		loading:      true,
		spinner:      s,
		store:        st,
		engine:       domain.NewEngine(),
		notifier:     notify.New(logger),
		logger:       logger,
	}
}

// Init returns the initial command for the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.loadProjectsCmd(),
		tickEvery(time.Second),
	)
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		// If overlay is open, route to overlay stack
		if !m.overlayStack.IsEmpty() {
			return m.handleOverlayKey(msg)
		}
		return m.handleKey(msg)

	// Overlay messages
	case overlay.CloseOverlayMsg:
		m.overlayStack.Pop()
		// The filter menu can shrink the board under the cursor
		m.cursor = m.cursor.Clamp(m.buildColumns())
		return m, nil

	case overlay.SelectionMsg:
		return m.handleSelection(msg)

	case overlay.TaskCreatedMsg:
		return m.handleTaskCreated(msg)

	case overlay.TaskEditedMsg:
		return m.handleTaskEdited(msg)

	case overlay.CommentAddedMsg:
		return m.handleCommentAdded(msg)

	case overlay.ProjectSelectedMsg:
		m.loading = true
		return m, m.loadProjectCmd(msg.ID)

	case projectsLoadedMsg:
		m.projects = msg.projects
		if len(m.projects) == 0 {
			m.loading = false
			return m, nil
		}
		id := m.projects[0].ID
		if m.config.Board.DefaultProject != "" {
			for _, p := range m.projects {
				if p.ID == m.config.Board.DefaultProject || p.Name == m.config.Board.DefaultProject {
					id = p.ID
					break
				}
			}
		}
		return m, m.loadProjectCmd(id)

	case projectLoadedMsg:
		m.project = msg.project
		m.loading = false
		m.cursor = m.cursor.Clamp(m.buildColumns())
		return m, nil

	case storeErrorMsg:
		m.loading = false
		m.pushToast(notify.Event{Level: notify.LevelError, Message: msg.err.Error()})
		return m, nil

	case persistResultMsg:
		if msg.err != nil && m.config.Notifications.PersistErrors {
			m.pushToast(m.notifier.PersistFailed(msg.op, msg.err))
		}
		return m, nil

	case tickMsg:
		m.expireToasts()
		return m, tickEvery(time.Second)
	}

	return m, nil
}

// handleKey processes keyboard input based on current mode
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys (work in any mode)
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "ctrl+l":
		return m, tea.ClearScreen
	}

	// Escape exits non-normal modes
	if msg.String() == "esc" && m.mode != ModeNormal {
		if m.mode == ModeSearch {
			m.searchInput.Blur()
			m.searchInput.Reset()
			m.filter.SearchQuery = ""
		}
		m.mode = ModeNormal
		return m, nil
	}

	// Mode-specific handling
	switch m.mode {
	case ModeNormal:
		return m.handleNormalMode(msg)
	case ModeGoto:
		return m.handleGotoMode(msg)
	case ModeSearch:
		return m.handleSearchMode(msg)
	default:
		return m, nil
	}
}

// handleNormalMode processes keyboard input in normal mode
func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	columns := m.buildColumns()

	switch msg.String() {
	case "q":
		return m, tea.Quit

	// Vertical navigation
	case "j", "down":
		m.cursor.Task++
		m.cursor = m.cursor.Clamp(columns)
		return m, nil

	case "k", "up":
		m.cursor.Task--
		m.cursor = m.cursor.Clamp(columns)
		return m, nil

	// Horizontal navigation
	case "h", "left":
		m.cursor.Column--
		m.cursor.Task = 0
		m.cursor = m.cursor.Clamp(columns)
		return m, nil

	case "l", "right":
		m.cursor.Column++
		m.cursor.Task = 0
		m.cursor = m.cursor.Clamp(columns)
		return m, nil

	// Stage navigation
	case "[":
		return m.shiftStage(-1), nil

	case "]":
		return m.shiftStage(1), nil

	// Move task across status columns
	case "H", "shift+left":
		return m.moveCurrentTask(columns, -1)

	case "L", "shift+right":
		return m.moveCurrentTask(columns, 1)

	// Mode switches
	case "g":
		m.mode = ModeGoto
		return m, nil

	case "/":
		m.mode = ModeSearch
		m.searchInput.SetValue(m.filter.SearchQuery)
		m.searchInput.Focus()
		return m, textinput.Blink

	// Task operations
	case "enter":
		if task, ok := m.cursor.TaskAt(columns); ok {
			return m, m.overlayStack.Push(overlay.NewDetailPanel(task))
		}
		return m, nil

	case "n":
		return m, m.overlayStack.Push(overlay.NewCreateTaskOverlay(m.activeStage))

	case "e":
		if task, ok := m.cursor.TaskAt(columns); ok {
			return m, m.overlayStack.Push(overlay.NewEditTaskOverlay(task))
		}
		return m, nil

	case "d":
		if task, ok := m.cursor.TaskAt(columns); ok {
			m.pendingDeleteID = task.ID
			dialog := overlay.NewConfirmDialog("Delete Task",
				fmt.Sprintf("Delete %q and its comments?", task.Title))
			return m, m.overlayStack.Push(dialog)
		}
		return m, nil

	case "c":
		if task, ok := m.cursor.TaskAt(columns); ok {
			return m, m.overlayStack.Push(overlay.NewCommentsOverlay(task, m.config.User.Name))
		}
		return m, nil

	// Stage completion
	case "t":
		return m.toggleStageCompletion()

	// Filter and sort
	case "f":
		return m, m.overlayStack.Push(overlay.NewFilterMenu(m.filter))

	case ",":
		return m, m.overlayStack.Push(overlay.NewSortMenu(&m.sort))

	case "a":
		if task, ok := m.cursor.TaskAt(columns); ok && task.Assigned() {
			m.filter.ToggleAssignee(task.Assignee)
			m.cursor = m.cursor.Clamp(m.buildColumns())
		}
		return m, nil

	// Other
	case "p":
		return m, m.overlayStack.Push(overlay.NewProjectSelector(m.projects))

	case "?":
		return m, m.overlayStack.Push(overlay.NewHelpOverlay())
	}

	return m, nil
}

// handleGotoMode processes keyboard input in goto mode
func (m Model) handleGotoMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	columns := m.buildColumns()
	// Always return to normal mode after processing
	m.mode = ModeNormal

	key := msg.String()
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		stages := domain.Stages()
		if idx := int(key[0] - '1'); idx < len(stages) {
			m.activeStage = stages[idx]
			m.cursor = board.Cursor{}
		}
		return m, nil
	}

	switch key {
	case "g":
		// Go to top of column
		m.cursor.Task = 0
	case "e":
		// Go to end of column
		if n := len(columns[m.cursor.Column].Tasks); n > 0 {
			m.cursor.Task = n - 1
		}
	}

	return m, nil
}

// handleSearchMode processes keyboard input in search mode
func (m Model) handleSearchMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.mode = ModeNormal
		m.searchInput.Blur()
		m.filter.SearchQuery = strings.TrimSpace(m.searchInput.Value())
		m.cursor = m.cursor.Clamp(m.buildColumns())
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	// Live filtering while typing
	m.filter.SearchQuery = strings.TrimSpace(m.searchInput.Value())
	m.cursor = m.cursor.Clamp(m.buildColumns())
	return m, cmd
}

// handleOverlayKey routes key messages to the open overlay
func (m Model) handleOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Ctrl+C still quits with an overlay open
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	return m, m.overlayStack.Update(msg)
}

// handleSelection reacts to overlay selections
func (m Model) handleSelection(msg overlay.SelectionMsg) (tea.Model, tea.Cmd) {
	switch value := msg.Value.(type) {
	case overlay.ConfirmResult:
		m.overlayStack.Pop()
		id := m.pendingDeleteID
		m.pendingDeleteID = ""
		if !value.Confirmed || id == "" {
			return m, nil
		}
		return m.deleteTask(id)

	case *domain.Sort:
		// Sort menu already mutated the sort state; snap the cursor
		m.sort = *value
		m.cursor = m.cursor.Clamp(m.buildColumns())
		return m, nil
	}

	return m, nil
}

// handleTaskCreated appends a new task to the active stage's backlog
func (m Model) handleTaskCreated(msg overlay.TaskCreatedMsg) (tea.Model, tea.Cmd) {
	tasks, task, err := m.engine.AddTask(m.project.Tasks, m.activeStage,
		msg.Title, msg.Description, msg.Priority, msg.Assignee, msg.ClientVisible)
	if err != nil {
		m.pushToast(m.notifier.Outcome("add", "", err))
		return m, nil
	}

	m.project.Tasks = tasks
	if m.config.Notifications.TaskCreated {
		m.pushToast(m.notifier.Outcome("add", "Task created", nil))
	}
	return m, m.persistTaskCmd(task)
}

// handleTaskEdited applies a full-form edit to an existing task
func (m Model) handleTaskEdited(msg overlay.TaskEditedMsg) (tea.Model, tea.Cmd) {
	update := domain.TaskUpdate{
		Title:         &msg.Title,
		Description:   &msg.Description,
		Stage:         &msg.Stage,
		Priority:      &msg.Priority,
		Assignee:      &msg.Assignee,
		ClientVisible: &msg.ClientVisible,
	}

	tasks, task, err := m.engine.EditTask(m.project.Tasks, msg.ID, update)
	if err != nil {
		m.pushToast(m.notifier.Outcome("edit", "", err))
		return m, nil
	}

	m.project.Tasks = tasks
	m.cursor = m.cursor.Clamp(m.buildColumns())
	m.pushToast(m.notifier.Outcome("edit", "Task updated", nil))
	return m, m.persistTaskCmd(task)
}

// handleCommentAdded appends a comment and refreshes the open thread
func (m Model) handleCommentAdded(msg overlay.CommentAddedMsg) (tea.Model, tea.Cmd) {
	tasks, comment, err := m.engine.AddComment(m.project.Tasks, msg.TaskID, msg.Author, msg.Content)
	if err != nil {
		m.pushToast(m.notifier.Outcome("comment", "", err))
		return m, nil
	}

	m.project.Tasks = tasks

	// Refresh the thread in the open overlay
	if c, ok := m.overlayStack.Current().(*overlay.CommentsOverlay); ok {
		for _, t := range tasks {
			if t.ID == msg.TaskID {
				c.SetTask(t)
				break
			}
		}
	}

	return m, m.persistCommentCmd(msg.TaskID, comment)
}

// moveCurrentTask shifts the task under the cursor to an adjacent status
func (m Model) moveCurrentTask(columns []board.Column, delta int) (tea.Model, tea.Cmd) {
	task, ok := m.cursor.TaskAt(columns)
	if !ok {
		return m, nil
	}

	target := m.cursor.Column + delta
	if target < 0 || target >= len(columns) {
		return m, nil
	}

	status := columns[target].Status
	tasks, moved, err := m.engine.MoveTask(m.project.Tasks, task.ID, status)
	if err != nil {
		m.pushToast(m.notifier.Outcome("move", "", err))
		return m, nil
	}

	m.project.Tasks = tasks

	// Follow the card to its new column
	m.cursor.Column = target
	m.cursor.Task = 0
	fresh := m.buildColumns()
	for i, t := range fresh[target].Tasks {
		if t.ID == moved.ID {
			m.cursor.Task = i
			break
		}
	}

	return m, m.persistStatusCmd(moved)
}

// deleteTask removes a task after confirmation
func (m Model) deleteTask(id string) (tea.Model, tea.Cmd) {
	tasks, err := m.engine.DeleteTask(m.project.Tasks, id)
	if err != nil {
		m.pushToast(m.notifier.Outcome("delete", "", err))
		return m, nil
	}

	m.project.Tasks = tasks
	m.cursor = m.cursor.Clamp(m.buildColumns())
	m.pushToast(m.notifier.Outcome("delete", "Task deleted", nil))
	return m, m.deleteTaskCmd(id)
}

// toggleStageCompletion flips the active stage's completion mark
func (m Model) toggleStageCompletion() (tea.Model, tea.Cmd) {
	project, marked := m.project.ToggleStageCompletion(m.activeStage)
	m.project = project

	if ev, notifiable := m.notifier.StageToggled(m.activeStage, marked); notifiable && m.config.Notifications.StageCompleted {
		m.pushToast(ev)
	}
	return m, m.persistStagesCmd(project.CompletedStages)
}

// shiftStage moves the active stage tab by delta, clamped to the pipeline
func (m Model) shiftStage(delta int) Model {
	stages := domain.Stages()
	idx := m.activeStage.Index() + delta
	if idx < 0 {
		idx = 0
	}
	if idx >= len(stages) {
		idx = len(stages) - 1
	}
	m.activeStage = stages[idx]
	m.cursor = board.Cursor{}
	return m
}

// buildColumns converts tasks into board columns, applying filter and sort
func (m Model) buildColumns() []board.Column {
	filtered := m.filter.Apply(m.project.Tasks)
	columns := board.BuildColumns(filtered, m.activeStage)
	for i := range columns {
		columns[i].Tasks = m.sort.Apply(columns[i].Tasks)
	}
	return columns
}

// pushToast appends a toast for a notification event
func (m *Model) pushToast(ev notify.Event) {
	if ev.Message == "" {
		return
	}
	ttl := time.Duration(m.config.Board.ToastTimeoutMs) * time.Millisecond
	m.toasts = append(m.toasts, toast.FromEvent(ev, ttl))
}

// expireToasts drops toasts whose display window has passed
func (m *Model) expireToasts() {
	now := time.Now()
	kept := m.toasts[:0]
	for _, t := range m.toasts {
		if t.Expires.After(now) {
			kept = append(kept, t)
		}
	}
	m.toasts = kept
}
