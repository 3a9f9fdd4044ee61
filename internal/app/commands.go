package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jthornberg/stageboard/internal/domain"
)

// Messages

type projectsLoadedMsg struct {
	projects []domain.Project
}

type projectLoadedMsg struct {
	project domain.Project
}

type storeErrorMsg struct {
	op  string
	err error
}

type persistResultMsg struct {
	op  string
	err error
}

type tickMsg time.Time

// Commands

func (m Model) loadProjectsCmd() tea.Cmd {
	return func() tea.Msg {
		projects, err := m.store.LoadProjects(context.Background())
		if err != nil {
			return storeErrorMsg{op: "load projects", err: err}
		}
		return projectsLoadedMsg{projects: projects}
	}
}

func (m Model) loadProjectCmd(id string) tea.Cmd {
	return func() tea.Msg {
		project, err := m.store.LoadProject(context.Background(), id)
		if err != nil {
			return storeErrorMsg{op: "load project", err: err}
		}
		return projectLoadedMsg{project: project}
	}
}

func (m Model) persistTaskCmd(task domain.Task) tea.Cmd {
	projectID := m.project.ID
	return func() tea.Msg {
		err := m.store.SaveTask(context.Background(), projectID, task)
		return persistResultMsg{op: "save task", err: err}
	}
}

func (m Model) persistStatusCmd(task domain.Task) tea.Cmd {
	return func() tea.Msg {
		err := m.store.UpdateTaskStatus(context.Background(), task.ID, task.Status, task.UpdatedAt)
		return persistResultMsg{op: "move task", err: err}
	}
}

func (m Model) deleteTaskCmd(id string) tea.Cmd {
	return func() tea.Msg {
		err := m.store.DeleteTask(context.Background(), id)
		return persistResultMsg{op: "delete task", err: err}
	}
}

func (m Model) persistCommentCmd(taskID string, comment domain.Comment) tea.Cmd {
	return func() tea.Msg {
		err := m.store.AddComment(context.Background(), taskID, comment)
		return persistResultMsg{op: "add comment", err: err}
	}
}

func (m Model) persistStagesCmd(stages []domain.Stage) tea.Cmd {
	projectID := m.project.ID
	return func() tea.Msg {
		err := m.store.UpdateCompletedStages(context.Background(), projectID, stages)
		return persistResultMsg{op: "update stages", err: err}
	}
}

func tickEvery(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
