package overlay

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jthornberg/stageboard/internal/domain"
)

func typeString(m tea.Model, s string) tea.Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

// runCmd executes a command and collects all messages, flattening batches
func runCmd(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}

	var msgs []tea.Msg
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		msg := next()
		if batch, ok := msg.(tea.BatchMsg); ok {
			queue = append(queue, batch...)
			continue
		}
		msgs = append(msgs, msg)
	}
	return msgs
}

func TestNewCreateTaskOverlay_Defaults(t *testing.T) {
	c := NewCreateTaskOverlay(domain.StageDesign)

	if c.priority != domain.PriorityMedium {
		t.Errorf("expected default priority medium, got %s", c.priority)
	}
	if c.clientVisible {
		t.Error("expected client visibility to default to false")
	}
	if c.focusIndex != focusTitle {
		t.Error("expected initial focus on title")
	}
	if c.Title() != "New Task · Design" {
		t.Errorf("unexpected overlay title %q", c.Title())
	}
}

func TestCreateTaskOverlay_SubmitRequiresTitle(t *testing.T) {
	c := NewCreateTaskOverlay(domain.StageDesign)

	_, cmd := c.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd != nil {
		t.Error("expected no command when title is empty")
	}
}

func TestCreateTaskOverlay_Submit(t *testing.T) {
	var m tea.Model = NewCreateTaskOverlay(domain.StageDesign)
	m = typeString(m, "Create wireframes")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	msgs := runCmd(t, cmd)

	var created *TaskCreatedMsg
	var closed bool
	for _, msg := range msgs {
		switch msg := msg.(type) {
		case TaskCreatedMsg:
			created = &msg
		case CloseOverlayMsg:
			closed = true
		}
	}

	if created == nil {
		t.Fatal("expected TaskCreatedMsg")
	}
	if created.Title != "Create wireframes" {
		t.Errorf("unexpected title %q", created.Title)
	}
	if created.Priority != domain.PriorityMedium {
		t.Errorf("unexpected priority %s", created.Priority)
	}
	if !closed {
		t.Error("expected overlay to close on submit")
	}
}

func TestCreateTaskOverlay_PrioritySelection(t *testing.T) {
	c := NewCreateTaskOverlay(domain.StageTesting)
	c.focusIndex = focusPriority
	c.refocus()

	var m tea.Model = c
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'u'}})

	if m.(*CreateTaskOverlay).priority != domain.PriorityUrgent {
		t.Error("expected priority to switch to urgent")
	}
}

func TestCreateTaskOverlay_VisibilityToggle(t *testing.T) {
	c := NewCreateTaskOverlay(domain.StageTesting)
	c.focusIndex = focusVisibility
	c.refocus()

	var m tea.Model = c
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	if !m.(*CreateTaskOverlay).clientVisible {
		t.Error("expected visibility toggle to flip on")
	}
}

func TestCreateTaskOverlay_TabCyclesFocus(t *testing.T) {
	var m tea.Model = NewCreateTaskOverlay(domain.StageTesting)

	for i := 0; i < focusCount; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	}

	if m.(*CreateTaskOverlay).focusIndex != focusTitle {
		t.Error("expected focus to wrap around to the title field")
	}
}

func TestCreateTaskOverlay_Escape(t *testing.T) {
	c := NewCreateTaskOverlay(domain.StageTesting)

	_, cmd := c.Update(tea.KeyMsg{Type: tea.KeyEscape})
	msgs := runCmd(t, cmd)

	if len(msgs) != 1 {
		t.Fatalf("expected one message, got %d", len(msgs))
	}
	if _, ok := msgs[0].(CloseOverlayMsg); !ok {
		t.Errorf("expected CloseOverlayMsg, got %T", msgs[0])
	}
}
