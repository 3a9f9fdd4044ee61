package domain

import "sort"

// ToggleStageCompletion flips the completion marker for stage. It returns the
// updated set, ordered by pipeline sequence regardless of toggle order, and
// whether the stage was marked (as opposed to unmarked).
//
// Toggling is always legal: marking a stage that still has unfinished tasks
// is allowed and surfaces as a warning rather than being blocked, so a user
// can claim a stage done for reporting before cleanup is finished.
func ToggleStageCompletion(completed []Stage, stage Stage) ([]Stage, bool) {
	out := make([]Stage, 0, len(completed)+1)
	marked := true
	for _, s := range completed {
		if s == stage {
			marked = false
			continue
		}
		out = append(out, s)
	}
	if marked {
		out = append(out, stage)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Index() < out[j].Index()
	})
	return out, marked
}

// StageCompleted reports whether stage carries the completion marker.
func StageCompleted(completed []Stage, stage Stage) bool {
	for _, s := range completed {
		if s == stage {
			return true
		}
	}
	return false
}

// StageHasWarning reports whether stage was marked complete while at least
// one of its tasks is not in the terminal status. A stage never claimed
// complete has no warning; the warning flags a false claim, not slow work.
func StageHasWarning(completed []Stage, tasks []Task, stage Stage) bool {
	if !StageCompleted(completed, stage) {
		return false
	}
	for _, t := range tasks {
		if t.Stage == stage && !t.Status.Terminal() {
			return true
		}
	}
	return false
}

// StageHasUpstreamWarning reports whether some stage strictly earlier in the
// pipeline carries a warning. Later and equal stages never contribute.
func StageHasUpstreamWarning(completed []Stage, tasks []Task, stage Stage) bool {
	idx := stage.Index()
	for _, s := range stageOrder {
		if s.Index() >= idx {
			break
		}
		if StageHasWarning(completed, tasks, s) {
			return true
		}
	}
	return false
}
