package domain

// TasksByStage returns the tasks in the given stage regardless of status, in
// store order. The result is always a fresh slice; an empty stage is a valid,
// empty result.
func TasksByStage(tasks []Task, stage Stage) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Stage == stage {
			out = append(out, t)
		}
	}
	return out
}

// TasksByCell returns the tasks occupying one (stage, status) cell of the
// board grid, in store order. No additional sort is imposed here; display
// ordering is the caller's policy.
func TasksByCell(tasks []Task, stage Stage, status Status) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Stage == stage && t.Status == status {
			out = append(out, t)
		}
	}
	return out
}

// StageCounts returns the number of tasks per stage, keyed by stage.
func StageCounts(tasks []Task) map[Stage]int {
	counts := make(map[Stage]int, len(stageOrder))
	for _, t := range tasks {
		counts[t.Stage]++
	}
	return counts
}
