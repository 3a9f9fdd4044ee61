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

// TaskCreatedMsg is emitted when a new task is submitted
type TaskCreatedMsg struct {
	Title         string
	Description   string
	Priority      domain.Priority
	Assignee      string
	ClientVisible bool
}

// CreateTaskOverlay provides a form to create a new task in the active stage
type CreateTaskOverlay struct {
	title         textinput.Model
	description   textarea.Model
	assignee      textinput.Model
	priority      domain.Priority
	clientVisible bool
	stage         domain.Stage
	focusIndex    int
	styles        *Styles
}

const (
	focusTitle = iota
	focusDescription
	focusAssignee
	focusPriority
	focusVisibility
	focusSubmit
	focusCount
)

// NewCreateTaskOverlay creates a task creation form for the given stage
func NewCreateTaskOverlay(stage domain.Stage) *CreateTaskOverlay {
	// Initialize title input
	ti := textinput.New()
	ti.Placeholder = "Task title..."
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 60

	// Initialize description textarea
	ta := textarea.New()
	ta.Placeholder = "Task description (optional)..."
	ta.CharLimit = 2000
	ta.SetWidth(60)
	ta.SetHeight(5)

	// Initialize assignee input
	ai := textinput.New()
	ai.Placeholder = domain.Unassigned
	ai.CharLimit = 100
	ai.Width = 40

	return &CreateTaskOverlay{
		title:       ti,
		description: ta,
		assignee:    ai,
		priority:    domain.PriorityMedium,
		stage:       stage,
		focusIndex:  focusTitle,
		styles:      New(),
	}
}

// Init initializes the overlay
func (c *CreateTaskOverlay) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (c *CreateTaskOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return c, func() tea.Msg { return CloseOverlayMsg{} }

		case "ctrl+s":
			// Submit the form
			return c, c.submit()

		case "tab", "shift+tab":
			// Tab through fields
			if msg.String() == "tab" {
				c.focusIndex = (c.focusIndex + 1) % focusCount
			} else {
				c.focusIndex = (c.focusIndex - 1 + focusCount) % focusCount
			}
			c.refocus()
			return c, nil

		case "enter":
			// Submit if on submit button, otherwise handle in active field
			if c.focusIndex == focusSubmit {
				return c, c.submit()
			}
			// Let the active field handle enter
		}

		// Handle priority selection when focused
		if c.focusIndex == focusPriority {
			switch msg.String() {
			case "u":
				c.priority = domain.PriorityUrgent
				return c, nil
			case "h":
				c.priority = domain.PriorityHigh
				return c, nil
			case "m":
				c.priority = domain.PriorityMedium
				return c, nil
			case "l":
				c.priority = domain.PriorityLow
				return c, nil
			}
		}

		// Handle visibility toggle when focused
		if c.focusIndex == focusVisibility && msg.String() == " " {
			c.clientVisible = !c.clientVisible
			return c, nil
		}
	}

	// Update active field
	var cmd tea.Cmd
	switch c.focusIndex {
	case focusTitle:
		c.title, cmd = c.title.Update(msg)
		cmds = append(cmds, cmd)
	case focusDescription:
		c.description, cmd = c.description.Update(msg)
		cmds = append(cmds, cmd)
	case focusAssignee:
		c.assignee, cmd = c.assignee.Update(msg)
		cmds = append(cmds, cmd)
	}

	return c, tea.Batch(cmds...)
}

// refocus moves text component focus to the field under the focus index
func (c *CreateTaskOverlay) refocus() {
	c.title.Blur()
	c.description.Blur()
	c.assignee.Blur()

	switch c.focusIndex {
	case focusTitle:
		c.title.Focus()
	case focusDescription:
		c.description.Focus()
	case focusAssignee:
		c.assignee.Focus()
	}
}

// View renders the form
func (c *CreateTaskOverlay) View() string {
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

	// Title field
	b.WriteString(label("Title:", c.focusIndex == focusTitle))
	b.WriteString("  ")
	b.WriteString(c.title.View())
	b.WriteString("\n\n")

	// Description field
	b.WriteString(label("Description:", c.focusIndex == focusDescription))
	b.WriteString("\n")
	b.WriteString(c.description.View())
	b.WriteString("\n\n")

	// Assignee field
	b.WriteString(label("Assignee:", c.focusIndex == focusAssignee))
	b.WriteString("  ")
	b.WriteString(c.assignee.View())
	b.WriteString("\n\n")

	// Priority selector
	b.WriteString(label("Priority:", c.focusIndex == focusPriority))
	b.WriteString("  ")
	b.WriteString(c.renderPrioritySelector())
	b.WriteString("\n\n")

	// Client visibility toggle
	b.WriteString(label("Visibility:", c.focusIndex == focusVisibility))
	b.WriteString("  ")
	checkbox := "[ ]"
	if c.clientVisible {
		checkbox = "[●]"
	}
	visStyle := c.styles.MenuItem
	if c.focusIndex == focusVisibility {
		visStyle = c.styles.MenuItemActive
	}
	b.WriteString(visStyle.Render(checkbox + " Visible to client"))
	b.WriteString("\n\n")

	// Separator
	b.WriteString(c.styles.Separator.Render(strings.Repeat("─", 60)))
	b.WriteString("\n\n")

	// Submit button
	submitStyle := c.styles.MenuItem
	if c.focusIndex == focusSubmit {
		submitStyle = c.styles.MenuItemActive
	}
	b.WriteString(submitStyle.Render("[ Create Task ]"))
	b.WriteString("\n\n")

	// Footer hints
	hints := []string{
		c.styles.MenuKey.Render("Tab") + " " + c.styles.Footer.Render("Switch fields"),
		c.styles.MenuKey.Render("Ctrl+S") + " " + c.styles.Footer.Render("Submit"),
		c.styles.MenuKey.Render("Esc") + " " + c.styles.Footer.Render("Cancel"),
	}
	b.WriteString(c.styles.Footer.Render(strings.Join(hints, " • ")))

	return b.String()
}

// renderPrioritySelector renders the priority selector with current selection
func (c *CreateTaskOverlay) renderPrioritySelector() string {
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
		style := c.styles.MenuItem
		indicator := " "
		if p.pri == c.priority {
			style = c.styles.MenuItemActive
			indicator = "●"
		}

		parts = append(parts, style.Render(fmt.Sprintf("[%s%s]", indicator, p.key)))
	}

	return strings.Join(parts, " ")
}

// submit emits a TaskCreatedMsg and closes the overlay
func (c *CreateTaskOverlay) submit() tea.Cmd {
	// Validate title is not empty
	title := strings.TrimSpace(c.title.Value())
	if title == "" {
		return nil // Don't submit if title is empty
	}

	assignee := strings.TrimSpace(c.assignee.Value())

	return tea.Batch(
		func() tea.Msg {
			return TaskCreatedMsg{
				Title:         title,
				Description:   strings.TrimSpace(c.description.Value()),
				Priority:      c.priority,
				Assignee:      assignee,
				ClientVisible: c.clientVisible,
			}
		},
		func() tea.Msg { return CloseOverlayMsg{} },
	)
}

// Title returns the overlay title
func (c *CreateTaskOverlay) Title() string {
	return fmt.Sprintf("New Task · %s", c.stage)
}

// Size returns the overlay dimensions
func (c *CreateTaskOverlay) Size() (width, height int) {
	return 70, 28
}
