package domain

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"
)

// fixedClock returns a clock that advances one second per call, so timestamp
// refreshes are observable.
func fixedClock() func() time.Time {
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	calls := 0
	return func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Second)
	}
}

// sequenceIDs returns a deterministic id source: prefix-1, prefix-2, ...
func sequenceIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func newTestEngine() *Engine {
	return NewEngineWith(fixedClock(), sequenceIDs("t"))
}

func TestEngine_AddTask(t *testing.T) {
	engine := newTestEngine()

	tasks, task, err := engine.AddTask(nil, StageDesign, "Create wireframes", "Homepage first", PriorityHigh, "Jane Smith", true)
	if err != nil {
		t.Fatalf("AddTask: %v", err)
	}

	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	if task.ID != "t-1" {
		t.Errorf("ID = %q", task.ID)
	}
	if task.Status != StatusBacklog {
		t.Errorf("new tasks must start in Backlog, got %s", task.Status)
	}
	if task.Stage != StageDesign {
		t.Errorf("Stage = %s", task.Stage)
	}
	if !task.ClientVisible {
		t.Error("ClientVisible not carried")
	}
	if !task.CreatedAt.Equal(task.UpdatedAt) {
		t.Error("fresh task should have equal timestamps")
	}
	if len(task.Comments) != 0 {
		t.Error("fresh task should have no comments")
	}
}

func TestEngine_AddTask_DefaultsAssignee(t *testing.T) {
	engine := newTestEngine()

	_, task, err := engine.AddTask(nil, StageAnalysis, "Survey", "", PriorityLow, "", false)
	if err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if task.Assignee != Unassigned {
		t.Errorf("Assignee = %q, want %q", task.Assignee, Unassigned)
	}
	if task.Assigned() {
		t.Error("sentinel assignee should not count as assigned")
	}
}

func TestEngine_AddTask_EmptyTitle(t *testing.T) {
	engine := newTestEngine()
	existing := []Task{{ID: "t0", Title: "Existing", Stage: StageDesign, Status: StatusBacklog}}

	for _, title := range []string{"", "   ", "\t\n"} {
		got, _, err := engine.AddTask(existing, StageDesign, title, "", PriorityMedium, "", false)
		if !errors.Is(err, ErrValidation) {
			t.Errorf("AddTask(%q) error = %v, want validation error", title, err)
		}
		if len(got) != len(existing) {
			t.Errorf("task count changed on failed add: %d", len(got))
		}
	}
}

func TestEngine_EditTask(t *testing.T) {
	engine := newTestEngine()
	tasks, created, err := engine.AddTask(nil, StageDesign, "Wireframes", "v1", PriorityMedium, "Jane", false)
	if err != nil {
		t.Fatalf("AddTask: %v", err)
	}

	title := "  Wireframes v2  "
	priority := PriorityUrgent
	tasks, edited, err := engine.EditTask(tasks, created.ID, TaskUpdate{Title: &title, Priority: &priority})
	if err != nil {
		t.Fatalf("EditTask: %v", err)
	}

	if edited.Title != "Wireframes v2" {
		t.Errorf("Title = %q", edited.Title)
	}
	if edited.Priority != PriorityUrgent {
		t.Errorf("Priority = %s", edited.Priority)
	}
	// Omitted fields stay put.
	if edited.Description != "v1" || edited.Assignee != "Jane" {
		t.Error("partial update touched omitted fields")
	}
	if !edited.UpdatedAt.After(created.UpdatedAt) {
		t.Error("edit must refresh the updated timestamp")
	}
	if tasks[0].Title != "Wireframes v2" {
		t.Error("edit not reflected in returned store")
	}
}

func TestEngine_EditTask_Failures(t *testing.T) {
	engine := newTestEngine()
	tasks, created, _ := engine.AddTask(nil, StageDesign, "Wireframes", "", PriorityMedium, "", false)

	_, _, err := engine.EditTask(tasks, "missing", TaskUpdate{})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown id error = %v, want not-found", err)
	}

	empty := " "
	got, _, err := engine.EditTask(tasks, created.ID, TaskUpdate{Title: &empty})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("empty title error = %v, want validation error", err)
	}
	if got[0].Title != "Wireframes" {
		t.Error("failed edit must leave the store unchanged")
	}
}

func TestEngine_DeleteTask(t *testing.T) {
	engine := newTestEngine()
	tasks, a, _ := engine.AddTask(nil, StageDesign, "First", "", PriorityLow, "", false)
	tasks, b, _ := engine.AddTask(tasks, StageDesign, "Second", "", PriorityLow, "", false)
	tasks, _, err := engine.AddComment(tasks, a.ID, "John", "note")
	if err != nil {
		t.Fatalf("AddComment: %v", err)
	}

	tasks, err = engine.DeleteTask(tasks, a.ID)
	if err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != b.ID {
		t.Errorf("unexpected store after delete: %+v", tasks)
	}
}

func TestEngine_DeleteTask_UnknownID(t *testing.T) {
	engine := newTestEngine()
	tasks, _, _ := engine.AddTask(nil, StageDesign, "Keep me", "", PriorityLow, "Jane", false)
	before := make([]Task, len(tasks))
	copy(before, tasks)

	got, err := engine.DeleteTask(tasks, "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want not-found", err)
	}
	if !reflect.DeepEqual(got, before) {
		t.Error("failed delete must leave the store field-for-field unchanged")
	}
}

func TestEngine_MoveTask(t *testing.T) {
	engine := newTestEngine()
	tasks, created, _ := engine.AddTask(nil, StageDevelopment, "API integration", "", PriorityHigh, "", false)

	tasks, moved, err := engine.MoveTask(tasks, created.ID, StatusInProgress)
	if err != nil {
		t.Fatalf("MoveTask: %v", err)
	}
	if moved.Status != StatusInProgress {
		t.Errorf("Status = %s", moved.Status)
	}
	if !moved.UpdatedAt.After(created.UpdatedAt) {
		t.Error("status change must refresh the timestamp")
	}

	// Backward moves are legal: the board is a free graph.
	tasks, _, err = engine.MoveTask(tasks, created.ID, StatusCompleted)
	if err != nil {
		t.Fatalf("MoveTask: %v", err)
	}
	_, moved, err = engine.MoveTask(tasks, created.ID, StatusBlocked)
	if err != nil {
		t.Fatalf("MoveTask backwards: %v", err)
	}
	if moved.Status != StatusBlocked {
		t.Errorf("Status = %s", moved.Status)
	}
}

func TestEngine_MoveTask_SameStatusNoOp(t *testing.T) {
	engine := newTestEngine()
	tasks, created, _ := engine.AddTask(nil, StageDevelopment, "API integration", "", PriorityHigh, "", false)
	tasks, moved, _ := engine.MoveTask(tasks, created.ID, StatusInProgress)

	// Re-dropping on the same column succeeds but is a value and timestamp
	// no-op, so "updated" never churns.
	got, again, err := engine.MoveTask(tasks, created.ID, StatusInProgress)
	if err != nil {
		t.Fatalf("same-status move should not error: %v", err)
	}
	if again.Status != StatusInProgress {
		t.Errorf("Status = %s", again.Status)
	}
	if !again.UpdatedAt.Equal(moved.UpdatedAt) {
		t.Error("same-status move must not refresh the timestamp")
	}
	if !reflect.DeepEqual(got, tasks) {
		t.Error("same-status move must leave the store unchanged")
	}
}

func TestEngine_MoveTask_UnknownID(t *testing.T) {
	engine := newTestEngine()
	_, _, err := engine.MoveTask(nil, "missing", StatusBlocked)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want not-found", err)
	}
}

func TestEngine_AddComment(t *testing.T) {
	engine := newTestEngine()
	tasks, created, _ := engine.AddTask(nil, StageDesign, "Wireframes", "", PriorityMedium, "", false)

	tasks, c1, err := engine.AddComment(tasks, created.ID, "John Doe", "Looks good!")
	if err != nil {
		t.Fatalf("AddComment: %v", err)
	}
	tasks, c2, err := engine.AddComment(tasks, created.ID, "Jane Smith", "Adding testimonials next.")
	if err != nil {
		t.Fatalf("AddComment: %v", err)
	}

	got := tasks[0].Comments
	if len(got) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(got))
	}
	// Strict append order.
	if got[0].ID != c1.ID || got[1].ID != c2.ID {
		t.Errorf("comment order wrong: %v %v", got[0].ID, got[1].ID)
	}
	if got[0].Author != "John Doe" || got[1].Author != "Jane Smith" {
		t.Error("authors not carried")
	}
	if !tasks[0].UpdatedAt.After(created.UpdatedAt) {
		t.Error("comment must refresh the task timestamp")
	}
}

func TestEngine_AddComment_Failures(t *testing.T) {
	engine := newTestEngine()
	tasks, created, _ := engine.AddTask(nil, StageDesign, "Wireframes", "", PriorityMedium, "", false)

	got, _, err := engine.AddComment(tasks, "missing", "Alice", "hello")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown task error = %v, want not-found", err)
	}
	if len(got[0].Comments) != 0 {
		t.Error("failed comment must not change comment counts")
	}

	got, _, err = engine.AddComment(tasks, created.ID, "Alice", "   ")
	if !errors.Is(err, ErrValidation) {
		t.Errorf("blank content error = %v, want validation error", err)
	}
	if len(got[0].Comments) != 0 {
		t.Error("failed comment must not change comment counts")
	}
}

func TestEngine_MutationsDoNotAliasInput(t *testing.T) {
	engine := newTestEngine()
	tasks, created, _ := engine.AddTask(nil, StageDesign, "Wireframes", "", PriorityMedium, "", false)
	tasks, _, _ = engine.AddComment(tasks, created.ID, "John", "first")

	before := tasks[0].UpdatedAt
	commentsBefore := len(tasks[0].Comments)

	moved, _, _ := engine.MoveTask(tasks, created.ID, StatusInReview)
	_, _, _ = engine.AddComment(moved, created.ID, "Jane", "second")

	if !tasks[0].UpdatedAt.Equal(before) {
		t.Error("input store timestamp mutated")
	}
	if len(tasks[0].Comments) != commentsBefore {
		t.Error("input store comments mutated")
	}
	if tasks[0].Status != StatusBacklog {
		t.Error("input store status mutated")
	}
}
