package progress

import (
	"strings"
	"testing"

	"github.com/jthornberg/stageboard/internal/domain"
	"github.com/jthornberg/stageboard/internal/ui/styles"
)

func project() domain.Project {
	return domain.Project{
		ID:   "p1",
		Name: "Test",
		Tasks: []domain.Task{
			{ID: "t1", Stage: domain.StageDesign, Status: domain.StatusCompleted},
			{ID: "t2", Stage: domain.StageDesign, Status: domain.StatusBacklog},
			{ID: "t3", Stage: domain.StageTesting, Status: domain.StatusBacklog},
		},
	}
}

func TestOverallLabel(t *testing.T) {
	r := New(20)
	out := r.Overall(project(), styles.New())

	// 1 of 3 tasks completed rounds to 33
	if !strings.Contains(out, "Overall  33%") {
		t.Errorf("expected overall label in output, got %q", out)
	}
}

func TestStageLabel(t *testing.T) {
	r := New(20)
	out := r.Stage(project(), domain.StageDesign, styles.New())

	if !strings.Contains(out, "Design  50%") {
		t.Errorf("expected stage label in output, got %q", out)
	}
}

func TestEmptyProjectIsZero(t *testing.T) {
	r := New(20)
	out := r.Overall(domain.Project{}, styles.New())

	if !strings.Contains(out, "0%") {
		t.Errorf("expected zero percent, got %q", out)
	}
}
