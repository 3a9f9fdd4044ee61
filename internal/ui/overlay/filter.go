package overlay

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jthornberg/stageboard/internal/domain"
)

// filterMode represents the current selection mode
type filterMode string

const (
	filterModeNormal   filterMode = "normal"
	filterModeStatus   filterMode = "status"
	filterModePriority filterMode = "priority"
)

// FilterMenu is a menu overlay for task filtering
type FilterMenu struct {
	filter *domain.Filter
	styles *Styles
	mode   filterMode
}

// NewFilterMenu creates a new filter menu for the given filter
func NewFilterMenu(filter *domain.Filter) *FilterMenu {
	return &FilterMenu{
		filter: filter,
		styles: New(),
		mode:   filterModeNormal,
	}
}

// Init initializes the menu
func (m *FilterMenu) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *FilterMenu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case filterModeNormal:
			return m.handleNormalMode(msg)
		case filterModeStatus:
			return m.handleStatusMode(msg)
		case filterModePriority:
			return m.handlePriorityMode(msg)
		}
	}

	return m, nil
}

// handleNormalMode handles keys in normal mode
func (m *FilterMenu) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		return m, func() tea.Msg { return CloseOverlayMsg{} }

	case "s":
		m.mode = filterModeStatus
		return m, nil

	case "p":
		m.mode = filterModePriority
		return m, nil

	case "v":
		// Cycle client visibility: all -> client-only -> internal-only
		switch {
		case m.filter.ClientVisible == nil:
			visible := true
			m.filter.ClientVisible = &visible
		case *m.filter.ClientVisible:
			visible := false
			m.filter.ClientVisible = &visible
		default:
			m.filter.ClientVisible = nil
		}
		return m, nil

	case "c":
		m.filter.Clear()
		return m, nil
	}

	return m, nil
}

// handleStatusMode handles keys in status selection mode
func (m *FilterMenu) handleStatusMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = filterModeNormal
		return m, nil

	case "b":
		m.filter.ToggleStatus(domain.StatusBacklog)
		m.mode = filterModeNormal
		return m, nil

	case "i":
		m.filter.ToggleStatus(domain.StatusInProgress)
		m.mode = filterModeNormal
		return m, nil

	case "k":
		m.filter.ToggleStatus(domain.StatusBlocked)
		m.mode = filterModeNormal
		return m, nil

	case "r":
		m.filter.ToggleStatus(domain.StatusInReview)
		m.mode = filterModeNormal
		return m, nil

	case "d":
		m.filter.ToggleStatus(domain.StatusCompleted)
		m.mode = filterModeNormal
		return m, nil
	}

	return m, nil
}

// handlePriorityMode handles keys in priority selection mode
func (m *FilterMenu) handlePriorityMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = filterModeNormal
		return m, nil

	case "u":
		m.filter.TogglePriority(domain.PriorityUrgent)
		m.mode = filterModeNormal
		return m, nil

	case "h":
		m.filter.TogglePriority(domain.PriorityHigh)
		m.mode = filterModeNormal
		return m, nil

	case "m":
		m.filter.TogglePriority(domain.PriorityMedium)
		m.mode = filterModeNormal
		return m, nil

	case "l":
		m.filter.TogglePriority(domain.PriorityLow)
		m.mode = filterModeNormal
		return m, nil
	}

	return m, nil
}

// View renders the menu
func (m *FilterMenu) View() string {
	var b strings.Builder

	// Status filter line
	b.WriteString(m.renderFilterLine("Status", "s", []filterOption{
		{key: "b", label: "Backlog", active: m.filter.Status[domain.StatusBacklog]},
		{key: "i", label: "In Progress", active: m.filter.Status[domain.StatusInProgress]},
		{key: "k", label: "Blocked", active: m.filter.Status[domain.StatusBlocked]},
		{key: "r", label: "In Review", active: m.filter.Status[domain.StatusInReview]},
		{key: "d", label: "Completed", active: m.filter.Status[domain.StatusCompleted]},
	}, m.mode == filterModeStatus))

	// Priority filter line
	b.WriteString(m.renderFilterLine("Priority", "p", []filterOption{
		{key: "u", label: "Urgent", active: m.filter.Priority[domain.PriorityUrgent]},
		{key: "h", label: "High", active: m.filter.Priority[domain.PriorityHigh]},
		{key: "m", label: "Medium", active: m.filter.Priority[domain.PriorityMedium]},
		{key: "l", label: "Low", active: m.filter.Priority[domain.PriorityLow]},
	}, m.mode == filterModePriority))

	// Separator
	b.WriteString(m.styles.Separator.Render("───────────────────────────────────────"))
	b.WriteString("\n")

	// Client visibility line
	b.WriteString(m.renderVisibilityFilter())

	// Separator
	b.WriteString(m.styles.Separator.Render("───────────────────────────────────────"))
	b.WriteString("\n")

	// Clear all
	line := m.styles.MenuKey.Render("[c]") + " " +
		m.styles.MenuItem.Render("Clear all filters")
	b.WriteString(line)
	b.WriteString("\n")

	// Footer hint based on mode
	if m.mode != filterModeNormal {
		hint := m.styles.Footer.Render("Press key to toggle filter, Esc to cancel")
		b.WriteString("\n")
		b.WriteString(hint)
	}

	return b.String()
}

// filterOption represents a single filter option
type filterOption struct {
	key    string
	label  string
	active bool
}

// renderFilterLine renders a filter category line
func (m *FilterMenu) renderFilterLine(category string, categoryKey string, options []filterOption, selecting bool) string {
	var b strings.Builder

	// Category with key hint
	keyStyle := m.styles.MenuKey
	if selecting {
		keyStyle = m.styles.MenuItemActive
	}
	b.WriteString(keyStyle.Render(fmt.Sprintf("[%s]", categoryKey)))
	b.WriteString(" ")
	b.WriteString(m.styles.MenuItem.Render(category + ":"))
	b.WriteString(" ")

	// Options
	for i, opt := range options {
		if i > 0 {
			b.WriteString(" ")
		}

		indicator := " "
		style := m.styles.MenuItem
		if opt.active {
			indicator = "●"
			style = m.styles.MenuItemActive
		}

		optStr := fmt.Sprintf("%s=%s", opt.key, opt.label)
		b.WriteString(style.Render(fmt.Sprintf("[%s%s]", indicator, optStr)))
	}

	b.WriteString("\n")
	return b.String()
}

// renderVisibilityFilter renders the client visibility line
func (m *FilterMenu) renderVisibilityFilter() string {
	var b strings.Builder

	b.WriteString(m.styles.MenuKey.Render("[v]"))
	b.WriteString(" ")
	b.WriteString(m.styles.MenuItem.Render("Visibility:"))
	b.WriteString(" ")

	options := []struct {
		label   string
		visible *bool
	}{
		{label: "All", visible: nil},
		{label: "Client", visible: boolPtr(true)},
		{label: "Internal", visible: boolPtr(false)},
	}

	for i, opt := range options {
		if i > 0 {
			b.WriteString(" ")
		}

		active := false
		if opt.visible == nil && m.filter.ClientVisible == nil {
			active = true
		} else if opt.visible != nil && m.filter.ClientVisible != nil && *opt.visible == *m.filter.ClientVisible {
			active = true
		}

		indicator := " "
		style := m.styles.MenuItem
		if active {
			indicator = "●"
			style = m.styles.MenuItemActive
		}

		b.WriteString(style.Render(fmt.Sprintf("[%s%s]", indicator, opt.label)))
	}

	b.WriteString("\n")
	return b.String()
}

// Title returns the overlay title
func (m *FilterMenu) Title() string {
	return "Filter Tasks"
}

// Size returns the overlay dimensions
func (m *FilterMenu) Size() (width, height int) {
	// Width: enough for filter options
	// Height: 2 filter lines + visibility + clear + separators + padding
	return 72, 10
}

// boolPtr returns a pointer to a bool
func boolPtr(b bool) *bool {
	return &b
}
