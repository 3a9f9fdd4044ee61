package domain

import "time"

// Project is one client engagement. It owns its task store exclusively; the
// Tasks slice order is the store's ambient order.
type Project struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Client          string        `json:"client"`
	Developer       string        `json:"developer"`
	Manager         string        `json:"manager,omitempty"`
	StartDate       time.Time     `json:"start_date"`
	EndDate         time.Time     `json:"end_date"`
	Status          ProjectStatus `json:"status"`
	Description     string        `json:"description,omitempty"`
	CompletedStages []Stage       `json:"completed_stages,omitempty"`
	Tasks           []Task        `json:"tasks,omitempty"`
}

// OverallProgress returns the completion percentage across every task in the
// project.
func (p Project) OverallProgress() int {
	return Percentage(p.Tasks)
}

// StageProgress returns the completion percentage for one stage.
func (p Project) StageProgress(stage Stage) int {
	return StagePercentage(p.Tasks, stage)
}

// IsStageCompleted reports whether the stage carries the user's completion
// marker.
func (p Project) IsStageCompleted(stage Stage) bool {
	return StageCompleted(p.CompletedStages, stage)
}

// StageWarning reports whether the stage was claimed complete while it still
// has unfinished tasks.
func (p Project) StageWarning(stage Stage) bool {
	return StageHasWarning(p.CompletedStages, p.Tasks, stage)
}

// UpstreamWarning reports whether a strictly earlier stage carries a warning.
func (p Project) UpstreamWarning(stage Stage) bool {
	return StageHasUpstreamWarning(p.CompletedStages, p.Tasks, stage)
}

// ToggleStageCompletion returns a copy of the project with the stage's
// completion marker flipped, and whether the stage was marked (rather than
// unmarked). Only the mark transition warrants a notification.
func (p Project) ToggleStageCompletion(stage Stage) (Project, bool) {
	out := p
	completed, marked := ToggleStageCompletion(p.CompletedStages, stage)
	out.CompletedStages = completed
	return out, marked
}
