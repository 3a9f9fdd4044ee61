package overlay

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jthornberg/stageboard/internal/domain"
)

// CommentAddedMsg is emitted when a new comment is submitted
type CommentAddedMsg struct {
	TaskID  string
	Author  string
	Content string
}

// CommentsOverlay shows a task's comment thread and an input to extend it
type CommentsOverlay struct {
	task   domain.Task
	author string
	input  textinput.Model
	styles *Styles
}

// NewCommentsOverlay creates a comments overlay for the given task
func NewCommentsOverlay(task domain.Task, author string) *CommentsOverlay {
	ti := textinput.New()
	ti.Placeholder = "Add a comment..."
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 56

	return &CommentsOverlay{
		task:   task,
		author: author,
		input:  ti,
		styles: New(),
	}
}

// Init initializes the overlay
func (c *CommentsOverlay) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (c *CommentsOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return c, func() tea.Msg { return CloseOverlayMsg{} }

		case "enter":
			content := strings.TrimSpace(c.input.Value())
			if content == "" {
				return c, nil
			}
			taskID := c.task.ID
			author := c.author
			// Keep the thread open; the model refreshes it after the add.
			c.input.Reset()
			return c, func() tea.Msg {
				return CommentAddedMsg{TaskID: taskID, Author: author, Content: content}
			}
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

// SetTask replaces the displayed task after the thread changes
func (c *CommentsOverlay) SetTask(task domain.Task) {
	c.task = task
}

// View renders the comment thread and input
func (c *CommentsOverlay) View() string {
	var b strings.Builder

	b.WriteString(c.styles.MenuItem.Render(c.task.Title))
	b.WriteString("\n")
	b.WriteString(c.styles.Separator.Render(strings.Repeat("─", 56)))
	b.WriteString("\n\n")

	if len(c.task.Comments) == 0 {
		b.WriteString(c.styles.MenuItemDisabled.Render("No comments yet."))
		b.WriteString("\n")
	}

	for _, comment := range c.task.Comments {
		header := fmt.Sprintf("%s · %s", comment.Author, comment.CreatedAt.Format("Jan 2 15:04"))
		b.WriteString(c.styles.MenuHeader.Render(header))
		b.WriteString("\n")
		b.WriteString(c.styles.MenuItem.Render(comment.Content))
		b.WriteString("\n\n")
	}

	b.WriteString(c.styles.Separator.Render(strings.Repeat("─", 56)))
	b.WriteString("\n")
	b.WriteString(c.input.View())
	b.WriteString("\n\n")

	hints := []string{
		c.styles.MenuKey.Render("Enter") + " " + c.styles.Footer.Render("Post"),
		c.styles.MenuKey.Render("Esc") + " " + c.styles.Footer.Render("Close"),
	}
	b.WriteString(c.styles.Footer.Render(strings.Join(hints, " • ")))

	return b.String()
}

// Title returns the overlay title
func (c *CommentsOverlay) Title() string {
	return fmt.Sprintf("Comments (%d)", len(c.task.Comments))
}

// Size returns the overlay dimensions
func (c *CommentsOverlay) Size() (width, height int) {
	height = 10 + 3*len(c.task.Comments)
	if height > 30 {
		height = 30
	}
	return 64, height
}
