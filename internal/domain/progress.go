package domain

import "math"

// Percentage returns the share of tasks in the terminal status as a whole
// number in [0,100]. Ties round away from zero for a deterministic value.
// An empty slice is 0, never NaN or an error.
func Percentage(tasks []Task) int {
	if len(tasks) == 0 {
		return 0
	}
	done := 0
	for _, t := range tasks {
		if t.Status.Terminal() {
			done++
		}
	}
	return int(math.Round(100 * float64(done) / float64(len(tasks))))
}

// StagePercentage returns the completion percentage for the subset of tasks
// in one stage.
func StagePercentage(tasks []Task, stage Stage) int {
	return Percentage(TasksByStage(tasks, stage))
}
