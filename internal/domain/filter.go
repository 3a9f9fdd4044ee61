package domain

import "strings"

// Filter represents board filtering state. Filtering is presentation policy:
// it narrows what the board shows and never mutates the store.
type Filter struct {
	Status        map[Status]bool
	Priority      map[Priority]bool
	Assignee      map[string]bool
	ClientVisible *bool
	SearchQuery   string
}

// NewFilter creates a new empty filter
func NewFilter() *Filter {
	return &Filter{
		Status:   make(map[Status]bool),
		Priority: make(map[Priority]bool),
		Assignee: make(map[string]bool),
	}
}

// IsActive returns true if any filter is active
func (f *Filter) IsActive() bool {
	return len(f.Status) > 0 ||
		len(f.Priority) > 0 ||
		len(f.Assignee) > 0 ||
		f.ClientVisible != nil ||
		f.SearchQuery != ""
}

// Apply filters a list of tasks
func (f *Filter) Apply(tasks []Task) []Task {
	if !f.IsActive() {
		return tasks
	}

	result := make([]Task, 0, len(tasks))
	for _, task := range tasks {
		if f.Matches(task) {
			result = append(result, task)
		}
	}
	return result
}

// Matches returns true if the task passes all active filters
// Uses AND logic between filter types, OR logic within filter types
func (f *Filter) Matches(t Task) bool {
	// Status filter (OR within)
	if len(f.Status) > 0 {
		if !f.Status[t.Status] {
			return false
		}
	}

	// Priority filter (OR within)
	if len(f.Priority) > 0 {
		if !f.Priority[t.Priority] {
			return false
		}
	}

	// Assignee filter (OR within)
	if len(f.Assignee) > 0 {
		if !f.Assignee[t.Assignee] {
			return false
		}
	}

	// Client visibility filter
	if f.ClientVisible != nil {
		if t.ClientVisible != *f.ClientVisible {
			return false
		}
	}

	// Search query (case-insensitive, matches title, description, or assignee)
	if f.SearchQuery != "" {
		query := strings.ToLower(f.SearchQuery)
		title := strings.ToLower(t.Title)
		description := strings.ToLower(t.Description)
		assignee := strings.ToLower(t.Assignee)

		if !strings.Contains(title, query) &&
			!strings.Contains(description, query) &&
			!strings.Contains(assignee, query) {
			return false
		}
	}

	return true
}

// Clear resets all filters
func (f *Filter) Clear() {
	f.Status = make(map[Status]bool)
	f.Priority = make(map[Priority]bool)
	f.Assignee = make(map[string]bool)
	f.ClientVisible = nil
	f.SearchQuery = ""
}

// ToggleStatus toggles a status filter
func (f *Filter) ToggleStatus(s Status) {
	if f.Status[s] {
		delete(f.Status, s)
	} else {
		f.Status[s] = true
	}
}

// TogglePriority toggles a priority filter
func (f *Filter) TogglePriority(p Priority) {
	if f.Priority[p] {
		delete(f.Priority, p)
	} else {
		f.Priority[p] = true
	}
}

// ToggleAssignee toggles an assignee filter
func (f *Filter) ToggleAssignee(name string) {
	if f.Assignee[name] {
		delete(f.Assignee, name)
	} else {
		f.Assignee[name] = true
	}
}

// MatchesProject reports whether a project matches the search query on name,
// client, or developer, for the dashboard project list.
func MatchesProject(p Project, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Client), q) ||
		strings.Contains(strings.ToLower(p.Developer), q)
}
