package stagebar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jthornberg/stageboard/internal/domain"
	"github.com/jthornberg/stageboard/internal/ui/styles"
)

func sampleProject() domain.Project {
	return domain.Project{
		ID:   "p1",
		Name: "Website Redesign",
		CompletedStages: []domain.Stage{
			domain.StagePreparation,
		},
		Tasks: []domain.Task{
			{ID: "t1", Stage: domain.StagePreparation, Status: domain.StatusCompleted},
			{ID: "t2", Stage: domain.StageAnalysis, Status: domain.StatusInProgress},
			{ID: "t3", Stage: domain.StageAnalysis, Status: domain.StatusCompleted},
		},
	}
}

func TestRender_ShowsAllStages(t *testing.T) {
	out := Render(sampleProject(), domain.StageAnalysis, styles.New(), 300)

	for _, stage := range domain.Stages() {
		assert.Contains(t, out, string(stage))
	}
}

func TestRender_CompletedStageCheckmark(t *testing.T) {
	out := Render(sampleProject(), domain.StageAnalysis, styles.New(), 300)
	assert.Contains(t, out, "✓ Preparation")
}

func TestRender_StagePercentages(t *testing.T) {
	out := Render(sampleProject(), domain.StageAnalysis, styles.New(), 300)
	assert.Contains(t, out, "Preparation 100%")
	assert.Contains(t, out, "Analysis 50%")
	assert.Contains(t, out, "Design 0%")
}

func TestRender_WarningOnStaleMark(t *testing.T) {
	p := sampleProject()
	// Preparation is marked complete but now has an open task again.
	p.Tasks = append(p.Tasks, domain.Task{ID: "t4", Stage: domain.StagePreparation, Status: domain.StatusBacklog})

	out := Render(p, domain.StagePreparation, styles.New(), 300)
	assert.Contains(t, out, "!")
}

func TestRender_NoWarningWhenUnmarked(t *testing.T) {
	p := sampleProject()
	p.CompletedStages = nil

	out := Render(p, domain.StagePreparation, styles.New(), 300)
	assert.NotContains(t, out, "!")
	assert.NotContains(t, out, "↟")
}

func TestRender_UpstreamWarningBadge(t *testing.T) {
	p := sampleProject()
	p.Tasks = append(p.Tasks, domain.Task{ID: "t4", Stage: domain.StagePreparation, Status: domain.StatusBacklog})

	out := Render(p, domain.StageDesign, styles.New(), 400)
	// Stages after the stale Preparation mark inherit an upstream badge.
	assert.Contains(t, out, "↟")
}

func TestRenderProgress(t *testing.T) {
	out := RenderProgress(sampleProject(), styles.New())
	// 2 of 3 tasks are done, rounded half up.
	assert.Contains(t, out, "Overall: 67%")
	assert.Contains(t, out, "1/7 stages")
}
