package domain

import (
	"errors"
	"testing"
)

func TestStage_Index(t *testing.T) {
	tests := []struct {
		stage Stage
		want  int
	}{
		{StagePreparation, 0},
		{StageAnalysis, 1},
		{StageDesign, 2},
		{StageDevelopment, 3},
		{StageTesting, 4},
		{StageUAT, 5},
		{StageGoLive, 6},
		{Stage("unknown"), -1},
	}

	for _, tt := range tests {
		t.Run(string(tt.stage), func(t *testing.T) {
			if got := tt.stage.Index(); got != tt.want {
				t.Errorf("Stage.Index() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStage_Before(t *testing.T) {
	if !StagePreparation.Before(StageGoLive) {
		t.Error("Preparation should come before Go Live")
	}
	if StageUAT.Before(StageDesign) {
		t.Error("UAT should not come before Design")
	}
	if StageTesting.Before(StageTesting) {
		t.Error("a stage should not come before itself")
	}
}

func TestStages_Order(t *testing.T) {
	stages := Stages()
	if len(stages) != 7 {
		t.Fatalf("expected 7 stages, got %d", len(stages))
	}
	for i, s := range stages {
		if s.Index() != i {
			t.Errorf("stage %s at position %d has index %d", s, i, s.Index())
		}
	}

	// Mutating the returned slice must not affect the pipeline.
	stages[0] = StageGoLive
	if Stages()[0] != StagePreparation {
		t.Error("Stages() must return a copy")
	}
}

func TestStatus_Column(t *testing.T) {
	tests := []struct {
		status Status
		want   int
	}{
		{StatusBacklog, 0},
		{StatusInProgress, 1},
		{StatusBlocked, 2},
		{StatusInReview, 3},
		{StatusCompleted, 4},
		{Status("unknown"), 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.Column(); got != tt.want {
				t.Errorf("Status.Column() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatus_Terminal(t *testing.T) {
	for _, s := range Statuses() {
		want := s == StatusCompleted
		if got := s.Terminal(); got != want {
			t.Errorf("Status(%s).Terminal() = %v, want %v", s, got, want)
		}
	}
}

func TestParseStage(t *testing.T) {
	got, err := ParseStage("Go Live")
	if err != nil {
		t.Fatalf("ParseStage(Go Live) error: %v", err)
	}
	if got != StageGoLive {
		t.Errorf("ParseStage(Go Live) = %v", got)
	}

	_, err = ParseStage("Shipping")
	if err == nil {
		t.Fatal("expected error for unknown stage")
	}
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestParseStatus(t *testing.T) {
	got, err := ParseStatus("In Review")
	if err != nil {
		t.Fatalf("ParseStatus(In Review) error: %v", err)
	}
	if got != StatusInReview {
		t.Errorf("ParseStatus(In Review) = %v", got)
	}

	if _, err := ParseStatus("Doing"); !errors.Is(err, ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestPriority_Rank(t *testing.T) {
	tests := []struct {
		priority Priority
		want     int
	}{
		{PriorityUrgent, 0},
		{PriorityHigh, 1},
		{PriorityMedium, 2},
		{PriorityLow, 3},
		{Priority("unknown"), 4},
	}

	for _, tt := range tests {
		t.Run(string(tt.priority), func(t *testing.T) {
			if got := tt.priority.Rank(); got != tt.want {
				t.Errorf("Priority.Rank() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPriority_Short(t *testing.T) {
	tests := []struct {
		priority Priority
		want     string
	}{
		{PriorityUrgent, "U"},
		{PriorityHigh, "H"},
		{PriorityMedium, "M"},
		{PriorityLow, "L"},
		{Priority("unknown"), "?"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.priority.Short(); got != tt.want {
				t.Errorf("Priority.Short() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParsePriority(t *testing.T) {
	if _, err := ParsePriority("urgent"); err != nil {
		t.Errorf("ParsePriority(urgent) error: %v", err)
	}
	if _, err := ParsePriority("critical"); !errors.Is(err, ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}
