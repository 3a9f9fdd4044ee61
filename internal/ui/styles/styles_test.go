package styles

import (
	"testing"

	"github.com/jthornberg/stageboard/internal/domain"
)

func TestNew(t *testing.T) {
	s := New()
	if s == nil {
		t.Fatal("New() returned nil")
	}
}

func TestPriorityBadge(t *testing.T) {
	s := New()

	tests := []struct {
		priority domain.Priority
		name     string
	}{
		{domain.PriorityUrgent, "Urgent"},
		{domain.PriorityHigh, "High"},
		{domain.PriorityMedium, "Medium"},
		{domain.PriorityLow, "Low"},
		{domain.Priority("nonsense"), "Unknown (should use last color)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := s.PriorityBadge(tt.priority)
			rendered := style.Render(tt.priority.Short())
			if len(rendered) == 0 {
				t.Error("PriorityBadge rendered empty string")
			}
		})
	}
}

func TestStageAccent_CoversAllStages(t *testing.T) {
	for _, stage := range domain.Stages() {
		if _, ok := StageColors[stage]; !ok {
			t.Errorf("no accent color for stage %s", stage)
		}
	}
}

func TestStatusAccent_CoversAllStatuses(t *testing.T) {
	for _, status := range domain.Statuses() {
		if _, ok := StatusColors[status]; !ok {
			t.Errorf("no accent color for status %s", status)
		}
	}
}

func TestThemeColors(t *testing.T) {
	// Verify colors are defined
	colors := []struct {
		name  string
		color string
	}{
		{"Base", string(Base)},
		{"Blue", string(Blue)},
		{"Red", string(Red)},
		{"Green", string(Green)},
		{"Yellow", string(Yellow)},
	}

	for _, c := range colors {
		t.Run(c.name, func(t *testing.T) {
			if c.color == "" {
				t.Errorf("%s color is empty", c.name)
			}
			// Catppuccin colors start with #
			if c.color[0] != '#' {
				t.Errorf("%s color doesn't start with #: %s", c.name, c.color)
			}
		})
	}
}
