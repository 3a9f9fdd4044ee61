// Package domain contains core business types for the Stageboard application.
package domain

import "fmt"

// Stage is one phase of the fixed delivery pipeline. The pipeline order is
// significant: it defines "earlier than" for upstream warning checks.
type Stage string

const (
	StagePreparation Stage = "Preparation"
	StageAnalysis    Stage = "Analysis"
	StageDesign      Stage = "Design"
	StageDevelopment Stage = "Development"
	StageTesting     Stage = "Testing"
	StageUAT         Stage = "UAT"
	StageGoLive      Stage = "Go Live"
)

// stageOrder is the authoritative pipeline sequence.
var stageOrder = []Stage{
	StagePreparation,
	StageAnalysis,
	StageDesign,
	StageDevelopment,
	StageTesting,
	StageUAT,
	StageGoLive,
}

// Stages returns the pipeline stages in order.
func Stages() []Stage {
	out := make([]Stage, len(stageOrder))
	copy(out, stageOrder)
	return out
}

// Index returns the position of the stage in the pipeline, or -1 for an
// unknown stage.
func (s Stage) Index() int {
	for i, stage := range stageOrder {
		if stage == s {
			return i
		}
	}
	return -1
}

// Before reports whether s comes strictly earlier in the pipeline than other.
func (s Stage) Before(other Stage) bool {
	return s.Index() < other.Index()
}

// String returns the display string
func (s Stage) String() string {
	return string(s)
}

// ParseStage validates a raw stage value at the input boundary.
func ParseStage(v string) (Stage, error) {
	for _, stage := range stageOrder {
		if string(stage) == v {
			return stage, nil
		}
	}
	return "", &ValidationError{Field: "stage", Reason: fmt.Sprintf("unknown stage %q", v)}
}

// Status is one work state a task occupies within a stage. Statuses are
// unordered and any status-to-status move is legal.
type Status string

const (
	StatusBacklog    Status = "Backlog"
	StatusInProgress Status = "In Progress"
	StatusBlocked    Status = "Blocked"
	StatusInReview   Status = "In Review"
	StatusCompleted  Status = "Completed"
)

// statusOrder is the board column layout, not a workflow ordering.
var statusOrder = []Status{
	StatusBacklog,
	StatusInProgress,
	StatusBlocked,
	StatusInReview,
	StatusCompleted,
}

// Statuses returns all statuses in board column order.
func Statuses() []Status {
	out := make([]Status, len(statusOrder))
	copy(out, statusOrder)
	return out
}

// Column returns the kanban column index for this status
func (s Status) Column() int {
	switch s {
	case StatusBacklog:
		return 0
	case StatusInProgress:
		return 1
	case StatusBlocked:
		return 2
	case StatusInReview:
		return 3
	case StatusCompleted:
		return 4
	default:
		return 0
	}
}

// Terminal reports whether the status counts as done for completion
// percentages. Only Completed is terminal; terminal-ness is a progress
// policy, never a transition constraint.
func (s Status) Terminal() bool {
	return s == StatusCompleted
}

// String returns the display string
func (s Status) String() string {
	return string(s)
}

// ParseStatus validates a raw status value at the input boundary.
func ParseStatus(v string) (Status, error) {
	for _, status := range statusOrder {
		if string(status) == v {
			return status, nil
		}
	}
	return "", &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown status %q", v)}
}

// Priority represents task priority
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Rank returns the sort weight for the priority (0 = most urgent).
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

// Short returns single character representation
func (p Priority) Short() string {
	switch p {
	case PriorityUrgent:
		return "U"
	case PriorityHigh:
		return "H"
	case PriorityMedium:
		return "M"
	case PriorityLow:
		return "L"
	default:
		return "?"
	}
}

// String returns the display string
func (p Priority) String() string {
	return string(p)
}

// ParsePriority validates a raw priority value at the input boundary.
func ParsePriority(v string) (Priority, error) {
	switch Priority(v) {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return Priority(v), nil
	}
	return "", &ValidationError{Field: "priority", Reason: fmt.Sprintf("unknown priority %q", v)}
}

// ProjectStatus represents the overall state of a project
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectOnHold    ProjectStatus = "on-hold"
)

// String returns the display string
func (s ProjectStatus) String() string {
	return string(s)
}
