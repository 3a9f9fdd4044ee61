package overlay

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jthornberg/stageboard/internal/domain"
)

// ProjectSelectedMsg is sent when a project is selected
type ProjectSelectedMsg struct {
	ID string
}

// ProjectSelector is an overlay for switching between stored projects
type ProjectSelector struct {
	projects  []domain.Project
	cursor    int
	searching bool
	search    textinput.Model
	styles    *Styles
}

// NewProjectSelector creates a new project selector overlay
func NewProjectSelector(projects []domain.Project) *ProjectSelector {
	ti := textinput.New()
	ti.Placeholder = "Search projects..."
	ti.CharLimit = 100
	ti.Width = 40

	return &ProjectSelector{
		projects: projects,
		search:   ti,
		styles:   New(),
	}
}

// Init initializes the overlay
func (m *ProjectSelector) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *ProjectSelector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.searching {
			switch msg.String() {
			case "esc":
				m.searching = false
				m.search.Blur()
				m.search.Reset()
				m.cursor = 0
				return m, nil
			case "enter":
				m.searching = false
				m.search.Blur()
				m.cursor = 0
				return m, nil
			}
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "esc", "q":
			return m, func() tea.Msg { return CloseOverlayMsg{} }

		case "/":
			m.searching = true
			m.search.Focus()
			return m, textinput.Blink

		case "j", "down":
			if m.cursor < len(m.visible())-1 {
				m.cursor++
			}
			return m, nil

		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "enter":
			return m, m.selectProject()
		}
	}

	return m, nil
}

// visible returns the projects matching the search query
func (m *ProjectSelector) visible() []domain.Project {
	query := strings.TrimSpace(m.search.Value())
	if query == "" {
		return m.projects
	}

	var matched []domain.Project
	for _, p := range m.projects {
		if domain.MatchesProject(p, query) {
			matched = append(matched, p)
		}
	}
	return matched
}

// View renders the project selector
func (m *ProjectSelector) View() string {
	var b strings.Builder

	if m.searching || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n\n")
	}

	visible := m.visible()
	if len(visible) == 0 {
		b.WriteString(m.styles.MenuItemDisabled.Render("No matching projects"))
		b.WriteString("\n\n")
		b.WriteString(m.styles.Footer.Render("/: search • esc: close"))
		return b.String()
	}

	for i, project := range visible {
		style := m.styles.MenuItem
		if i == m.cursor && !m.searching {
			style = m.styles.MenuItemActive
		}

		line := project.Name
		if project.Status != domain.ProjectActive {
			line += " " + m.styles.MenuItemDisabled.Render("["+string(project.Status)+"]")
		}

		b.WriteString(style.Render(line))
		b.WriteString("\n")
		detail := fmt.Sprintf("  %s · %s", project.Client, project.Developer)
		b.WriteString(m.styles.Footer.Render(detail))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render("enter: open • /: search • esc: close"))

	return b.String()
}

// Title returns the overlay title
func (m *ProjectSelector) Title() string {
	return "Projects"
}

// Size returns the overlay dimensions
func (m *ProjectSelector) Size() (width, height int) {
	// Dynamic height based on number of projects
	height = len(m.visible())*2 + 8
	if height < 10 {
		height = 10
	}
	if height > 30 {
		height = 30
	}
	return 70, height
}

// selectProject opens the project under the cursor
func (m *ProjectSelector) selectProject() tea.Cmd {
	visible := m.visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return nil
	}

	id := visible[m.cursor].ID
	return tea.Batch(
		func() tea.Msg { return ProjectSelectedMsg{ID: id} },
		func() tea.Msg { return CloseOverlayMsg{} },
	)
}
