// Package progress renders completion bars for the board header.
package progress

import (
	"fmt"

	bar "github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/jthornberg/stageboard/internal/domain"
	"github.com/jthornberg/stageboard/internal/ui/styles"
)

// Renderer draws static percentage bars. The bars are display-only; the
// percentages are recomputed from the task store on every render.
type Renderer struct {
	bar bar.Model
}

// New creates a renderer with bars of the given width
func New(width int) *Renderer {
	b := bar.New(
		bar.WithGradient(string(styles.Blue), string(styles.Green)),
		bar.WithoutPercentage(),
	)
	b.Width = width
	return &Renderer{bar: b}
}

// Overall renders the project-wide completion bar with its label
func (r *Renderer) Overall(p domain.Project, s *styles.Styles) string {
	pct := p.OverallProgress()
	label := s.StageProgress.Render(fmt.Sprintf(" Overall %3d%%", pct))
	return lipgloss.JoinHorizontal(lipgloss.Center, r.bar.ViewAs(float64(pct)/100), label)
}

// Stage renders the completion bar for one stage with its label
func (r *Renderer) Stage(p domain.Project, stage domain.Stage, s *styles.Styles) string {
	pct := p.StageProgress(stage)
	label := s.StageProgress.Render(fmt.Sprintf(" %s %3d%%", stage, pct))
	return lipgloss.JoinHorizontal(lipgloss.Center, r.bar.ViewAs(float64(pct)/100), label)
}
