package stagebar

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/jthornberg/stageboard/internal/domain"
	"github.com/jthornberg/stageboard/internal/ui/styles"
)

// Render renders the stage tab strip across the top of the board. Each tab
// shows the stage name, its completion percentage, a ✓ when the stage is
// marked complete, and a warning badge when the mark disagrees with the
// tasks underneath it (or any earlier stage's mark does).
func Render(p domain.Project, active domain.Stage, s *styles.Styles, width int) string {
	var tabs []string
	for _, stage := range domain.Stages() {
		tabs = append(tabs, renderTab(p, stage, stage == active, s))
	}

	strip := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	return lipgloss.NewStyle().MaxWidth(width).Render(strip)
}

func renderTab(p domain.Project, stage domain.Stage, isActive bool, s *styles.Styles) string {
	label := fmt.Sprintf("%s %d%%", stage, p.StageProgress(stage))

	if p.IsStageCompleted(stage) {
		label = "✓ " + label
	}
	if p.StageWarning(stage) {
		label += " " + s.StageWarning.Render("!")
	} else if p.UpstreamWarning(stage) {
		label += " " + s.StageWarning.Render("↟")
	}

	style := s.StageTab
	switch {
	case isActive:
		style = s.StageTabActive
	case p.IsStageCompleted(stage):
		style = s.StageTabCompleted
	}
	return style.Render(label)
}

// RenderProgress renders the overall completion line shown under the tabs.
func RenderProgress(p domain.Project, s *styles.Styles) string {
	return s.StageProgress.Render(fmt.Sprintf("Overall: %d%% · %d/%d stages marked complete",
		p.OverallProgress(), len(p.CompletedStages), len(domain.Stages())))
}
