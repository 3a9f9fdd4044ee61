package domain

import (
	"reflect"
	"testing"

	"pgregory.net/rapid"
)

// Repeating a move to the same status is always a success and a no-op.
func TestProperty_MoveTaskIdempotent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		engine := newTestEngine()
		tasks := taskSliceGen().Draw(rt, "tasks")
		if len(tasks) == 0 {
			return
		}
		idx := rapid.IntRange(0, len(tasks)-1).Draw(rt, "idx")
		id := tasks[idx].ID
		status := statusGen().Draw(rt, "status")

		once, _, err := engine.MoveTask(tasks, id, status)
		if err != nil {
			t.Fatalf("MoveTask: %v", err)
		}
		twice, moved, err := engine.MoveTask(once, id, status)
		if err != nil {
			t.Fatalf("repeat MoveTask: %v", err)
		}

		if moved.Status != status {
			t.Fatalf("status = %s, want %s", moved.Status, status)
		}
		if !reflect.DeepEqual(once, twice) {
			t.Fatal("repeated move changed the store")
		}
	})
}

// Failed mutations never change the store: unknown ids and invalid fields
// leave it field-for-field intact.
func TestProperty_FailedMutationsLeaveStoreIntact(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		engine := newTestEngine()
		tasks := taskSliceGen().Draw(rt, "tasks")
		before := make([]Task, len(tasks))
		copy(before, tasks)

		unknown := "no-such-" + rapid.StringMatching(`[a-z]{4}`).Draw(rt, "suffix")

		if got, _, err := engine.MoveTask(tasks, unknown, statusGen().Draw(rt, "status")); err == nil {
			t.Fatal("expected not-found error")
		} else if !reflect.DeepEqual(got, before) {
			t.Fatal("failed move changed the store")
		}

		if got, err := engine.DeleteTask(tasks, unknown); err == nil {
			t.Fatal("expected not-found error")
		} else if !reflect.DeepEqual(got, before) {
			t.Fatal("failed delete changed the store")
		}

		if got, _, err := engine.AddTask(tasks, stageGen().Draw(rt, "stage"), "   ", "", PriorityLow, "", false); err == nil {
			t.Fatal("expected validation error")
		} else if !reflect.DeepEqual(got, before) {
			t.Fatal("failed add changed the store")
		}
	})
}

// AddTask grows the store by exactly one and never disturbs existing tasks.
func TestProperty_AddTaskAppends(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		engine := newTestEngine()
		tasks := taskSliceGen().Draw(rt, "tasks")
		title := rapid.StringMatching(`[A-Za-z][A-Za-z ]{0,30}`).Draw(rt, "title")

		out, created, err := engine.AddTask(tasks, stageGen().Draw(rt, "stage"), title, "", PriorityMedium, "", false)
		if err != nil {
			t.Fatalf("AddTask(%q): %v", title, err)
		}
		if len(out) != len(tasks)+1 {
			t.Fatalf("store grew by %d", len(out)-len(tasks))
		}
		if !reflect.DeepEqual(out[:len(tasks)], tasks) {
			t.Fatal("existing tasks disturbed by add")
		}
		if out[len(out)-1].ID != created.ID {
			t.Fatal("created task not appended last")
		}
	})
}
