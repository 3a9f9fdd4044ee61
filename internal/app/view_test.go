package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jthornberg/stageboard/internal/domain"
)

func TestViewEmptyBeforeSize(t *testing.T) {
	m := newTestModel(t, newFakeStore())
	m.width = 0
	m.height = 0

	assert.Empty(t, m.View())
}

func TestViewLoading(t *testing.T) {
	m := newTestModel(t, newFakeStore())

	assert.Contains(t, m.View(), "Loading projects")
}

func TestViewShowsBoard(t *testing.T) {
	m := loadedModel(t, newFakeStore(), testProject())
	m.activeStage = domain.StageDesign
	m.width = 200
	m.height = 50

	view := m.View()
	assert.Contains(t, view, "Design")
	assert.Contains(t, view, "Wireframes")
	assert.Contains(t, view, "Backlog")
	assert.Contains(t, view, "NORMAL")
}

func TestViewShowsOverlayTitle(t *testing.T) {
	m := loadedModel(t, newFakeStore(), testProject())
	m.width = 200
	m.height = 50

	m, _ = press(t, m, '?')
	require.False(t, m.overlayStack.IsEmpty())

	assert.Contains(t, m.View(), "Help")
}

func TestViewShowsToasts(t *testing.T) {
	m := loadedModel(t, newFakeStore(), testProject())
	m.width = 200
	m.height = 50
	m.toasts = []Toast{{Level: ToastSuccess, Message: "Task created", Expires: time.Now().Add(time.Minute)}}

	assert.Contains(t, m.View(), "Task created")
}

func TestStatusInfoIncludesFilterState(t *testing.T) {
	m := loadedModel(t, newFakeStore(), testProject())

	assert.Equal(t, "Website Redesign · Design", func() string {
		m.activeStage = domain.StageDesign
		return m.statusInfo()
	}())

	m.filter.SearchQuery = "wire"
	assert.Contains(t, m.statusInfo(), "filtered")
}
