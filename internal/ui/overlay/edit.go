package overlay

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jthornberg/stageboard/internal/domain"
)

// TaskEditedMsg is emitted when an edited task is submitted
type TaskEditedMsg struct {
	ID            string
	Title         string
	Description   string
	Stage         domain.Stage
	Priority      domain.Priority
	Assignee      string
	ClientVisible bool
}

// EditTaskOverlay provides a form to edit an existing task
type EditTaskOverlay struct {
	taskID        string
	title         textinput.Model
	description   textarea.Model
	assignee      textinput.Model
	stage         domain.Stage
	priority      domain.Priority
	clientVisible bool
	focusIndex    int
	styles        *Styles
}

const (
	editFocusTitle = iota
	editFocusDescription
	editFocusAssignee
	editFocusStage
	editFocusPriority
	editFocusVisibility
	editFocusSubmit
	editFocusCount
)

// NewEditTaskOverlay creates an edit form prefilled from the task
func NewEditTaskOverlay(task domain.Task) *EditTaskOverlay {
	ti := textinput.New()
	ti.SetValue(task.Title)
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 60

	ta := textarea.New()
	ta.SetValue(task.Description)
	ta.CharLimit = 2000
	ta.SetWidth(60)
	ta.SetHeight(5)

	ai := textinput.New()
	ai.SetValue(task.Assignee)
	ai.CharLimit = 100
	ai.Width = 40

	return &EditTaskOverlay{
		taskID:        task.ID,
		title:         ti,
		description:   ta,
		assignee:      ai,
		stage:         task.Stage,
		priority:      task.Priority,
		clientVisible: task.ClientVisible,
		focusIndex:    editFocusTitle,
		styles:        New(),
	}
}

// Init initializes the overlay
func (e *EditTaskOverlay) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (e *EditTaskOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return e, func() tea.Msg { return CloseOverlayMsg{} }

		case "ctrl+s":
			return e, e.submit()

		case "tab", "shift+tab":
			if msg.String() == "tab" {
				e.focusIndex = (e.focusIndex + 1) % editFocusCount
			} else {
				e.focusIndex = (e.focusIndex - 1 + editFocusCount) % editFocusCount
			}
			e.refocus()
			return e, nil

		case "enter":
			if e.focusIndex == editFocusSubmit {
				return e, e.submit()
			}
		}

		// Stage selection cycles through the pipeline
		if e.focusIndex == editFocusStage {
			switch msg.String() {
			case "left", "h":
				e.stage = prevStage(e.stage)
				return e, nil
			case "right", "l":
				e.stage = nextStage(e.stage)
				return e, nil
			}
		}

		if e.focusIndex == editFocusPriority {
			switch msg.String() {
			case "u":
				e.priority = domain.PriorityUrgent
				return e, nil
			case "h":
				e.priority = domain.PriorityHigh
				return e, nil
			case "m":
				e.priority = domain.PriorityMedium
				return e, nil
			case "l":
				e.priority = domain.PriorityLow
				return e, nil
			}
		}

		if e.focusIndex == editFocusVisibility && msg.String() == " " {
			e.clientVisible = !e.clientVisible
			return e, nil
		}
	}

	var cmd tea.Cmd
	switch e.focusIndex {
	case editFocusTitle:
		e.title, cmd = e.title.Update(msg)
		cmds = append(cmds, cmd)
	case editFocusDescription:
		e.description, cmd = e.description.Update(msg)
		cmds = append(cmds, cmd)
	case editFocusAssignee:
		e.assignee, cmd = e.assignee.Update(msg)
		cmds = append(cmds, cmd)
	}

	return e, tea.Batch(cmds...)
}

func (e *EditTaskOverlay) refocus() {
	e.title.Blur()
	e.description.Blur()
	e.assignee.Blur()

	switch e.focusIndex {
	case editFocusTitle:
		e.title.Focus()
	case editFocusDescription:
		e.description.Focus()
	case editFocusAssignee:
		e.assignee.Focus()
	}
}

// View renders the form
func (e *EditTaskOverlay) View() string {
	var b strings.Builder

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#94e2d5")).
		Width(12).
		Align(lipgloss.Right)

	focusStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#89b4fa")).
		Bold(true)

	label := func(text string, focused bool) string {
		if focused {
			return focusStyle.Render(text)
		}
		return labelStyle.Render(text)
	}

	b.WriteString(label("Title:", e.focusIndex == editFocusTitle))
	b.WriteString("  ")
	b.WriteString(e.title.View())
	b.WriteString("\n\n")

	b.WriteString(label("Description:", e.focusIndex == editFocusDescription))
	b.WriteString("\n")
	b.WriteString(e.description.View())
	b.WriteString("\n\n")

	b.WriteString(label("Assignee:", e.focusIndex == editFocusAssignee))
	b.WriteString("  ")
	b.WriteString(e.assignee.View())
	b.WriteString("\n\n")

	b.WriteString(label("Stage:", e.focusIndex == editFocusStage))
	b.WriteString("  ")
	stageStyle := e.styles.MenuItem
	if e.focusIndex == editFocusStage {
		stageStyle = e.styles.MenuItemActive
	}
	b.WriteString(stageStyle.Render(fmt.Sprintf("◀ %s ▶", e.stage)))
	b.WriteString("\n\n")

	b.WriteString(label("Priority:", e.focusIndex == editFocusPriority))
	b.WriteString("  ")
	b.WriteString(e.renderPrioritySelector())
	b.WriteString("\n\n")

	b.WriteString(label("Visibility:", e.focusIndex == editFocusVisibility))
	b.WriteString("  ")
	checkbox := "[ ]"
	if e.clientVisible {
		checkbox = "[●]"
	}
	visStyle := e.styles.MenuItem
	if e.focusIndex == editFocusVisibility {
		visStyle = e.styles.MenuItemActive
	}
	b.WriteString(visStyle.Render(checkbox + " Visible to client"))
	b.WriteString("\n\n")

	b.WriteString(e.styles.Separator.Render(strings.Repeat("─", 60)))
	b.WriteString("\n\n")

	submitStyle := e.styles.MenuItem
	if e.focusIndex == editFocusSubmit {
		submitStyle = e.styles.MenuItemActive
	}
	b.WriteString(submitStyle.Render("[ Save Changes ]"))
	b.WriteString("\n\n")

	hints := []string{
		e.styles.MenuKey.Render("Tab") + " " + e.styles.Footer.Render("Switch fields"),
		e.styles.MenuKey.Render("Ctrl+S") + " " + e.styles.Footer.Render("Save"),
		e.styles.MenuKey.Render("Esc") + " " + e.styles.Footer.Render("Cancel"),
	}
	b.WriteString(e.styles.Footer.Render(strings.Join(hints, " • ")))

	return b.String()
}

func (e *EditTaskOverlay) renderPrioritySelector() string {
	priorities := []struct {
		key string
		pri domain.Priority
	}{
		{"u", domain.PriorityUrgent},
		{"h", domain.PriorityHigh},
		{"m", domain.PriorityMedium},
		{"l", domain.PriorityLow},
	}

	var parts []string
	for _, p := range priorities {
		style := e.styles.MenuItem
		indicator := " "
		if p.pri == e.priority {
			style = e.styles.MenuItemActive
			indicator = "●"
		}
		parts = append(parts, style.Render(fmt.Sprintf("[%s%s]", indicator, p.key)))
	}

	return strings.Join(parts, " ")
}

// submit emits a TaskEditedMsg and closes the overlay
func (e *EditTaskOverlay) submit() tea.Cmd {
	title := strings.TrimSpace(e.title.Value())
	if title == "" {
		return nil
	}

	return tea.Batch(
		func() tea.Msg {
			return TaskEditedMsg{
				ID:            e.taskID,
				Title:         title,
				Description:   strings.TrimSpace(e.description.Value()),
				Stage:         e.stage,
				Priority:      e.priority,
				Assignee:      strings.TrimSpace(e.assignee.Value()),
				ClientVisible: e.clientVisible,
			}
		},
		func() tea.Msg { return CloseOverlayMsg{} },
	)
}

// Title returns the overlay title
func (e *EditTaskOverlay) Title() string {
	return "Edit Task"
}

// Size returns the overlay dimensions
func (e *EditTaskOverlay) Size() (width, height int) {
	return 70, 30
}

// prevStage steps one stage back in the pipeline, stopping at the first
func prevStage(s domain.Stage) domain.Stage {
	stages := domain.Stages()
	if i := s.Index(); i > 0 {
		return stages[i-1]
	}
	return stages[0]
}

// nextStage steps one stage forward in the pipeline, stopping at the last
func nextStage(s domain.Stage) domain.Stage {
	stages := domain.Stages()
	if i := s.Index(); i >= 0 && i < len(stages)-1 {
		return stages[i+1]
	}
	return stages[len(stages)-1]
}
