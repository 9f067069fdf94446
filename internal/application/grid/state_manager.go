package grid

import (
	"sync"
	"time"

	"github.com/penwyp/go-portfolio-grid/internal/core/filter"
	"github.com/penwyp/go-portfolio-grid/internal/core/model"
)

// StateManager owns the project list, the selected year and the interaction
// state. Every change to the projects or the selection re-derives the view,
// so the selection always names a year that exists.
type StateManager struct {
	mu sync.RWMutex

	projects []model.Project
	view     filter.View

	// requested year held until a load produces years to resolve it against
	pending *model.Selection

	interactionState model.InteractionState

	lastDataUpdate int64
}

// NewStateManager creates a state manager starting on initial.
func NewStateManager(initial model.Selection) *StateManager {
	return &StateManager{
		view:    filter.Derive(nil, initial),
		pending: &initial,
	}
}

func (sm *StateManager) derive(selection model.Selection) {
	sm.view = filter.Derive(sm.projects, selection)
}

// SetProjects replaces the project list, keeping the selected year when it
// still exists.
func (sm *StateManager) SetProjects(projects []model.Project) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.projects = projects
	if sm.pending != nil {
		sm.derive(*sm.pending)
		if len(sm.view.Years) > 0 {
			sm.pending = nil
		}
	} else {
		sm.derive(sm.view.Active)
	}
	sm.lastDataUpdate = time.Now().Unix()
}

// GetProjects returns a copy of the unfiltered project list
func (sm *StateManager) GetProjects() []model.Project {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	projects := make([]model.Project, len(sm.projects))
	copy(projects, sm.projects)
	return projects
}

// GetView returns the current derived view
func (sm *StateManager) GetView() filter.View {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.view
}

// SelectYear switches the year tab. A year with no projects falls back to
// the newest one.
func (sm *StateManager) SelectYear(selection model.Selection) filter.View {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.pending = nil
	sm.derive(selection)
	return sm.view
}

// SelectIndex switches to the tab at index. It reports false and leaves the
// selection alone when there is no such tab.
func (sm *StateManager) SelectIndex(index int) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if index < 0 || index >= len(sm.view.Years) {
		return false
	}
	sm.derive(model.SelectYear(sm.view.Years[index]))
	return true
}

// NextYear moves one tab towards older years. It stops at the last tab.
func (sm *StateManager) NextYear() bool {
	return sm.step(1)
}

// PrevYear moves one tab towards newer years. It stops at the first tab.
func (sm *StateManager) PrevYear() bool {
	return sm.step(-1)
}

func (sm *StateManager) step(delta int) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	current := sm.view.TabIndex()
	if current < 0 {
		return false
	}
	next := current + delta
	if next < 0 || next >= len(sm.view.Years) {
		return false
	}
	sm.derive(model.SelectYear(sm.view.Years[next]))
	return true
}

// GetInteractionState returns current interaction state
func (sm *StateManager) GetInteractionState() model.InteractionState {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.interactionState
}

// UpdateInteractionState updates specific fields of interaction state
func (sm *StateManager) UpdateInteractionState(updateFunc func(*model.InteractionState)) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	updateFunc(&sm.interactionState)
}

// SetLoadingState updates loading state and message
func (sm *StateManager) SetLoadingState(isLoading bool, message string) {
	sm.UpdateInteractionState(func(s *model.InteractionState) {
		s.IsLoading = isLoading
		s.LoadingMessage = message
	})
}

// SetStatusMessage sets the message shown on the status line
func (sm *StateManager) SetStatusMessage(message string) {
	sm.UpdateInteractionState(func(s *model.InteractionState) {
		s.StatusMessage = message
	})
}

// GetLastDataUpdate returns timestamp of last successful data update
func (sm *StateManager) GetLastDataUpdate() int64 {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.lastDataUpdate
}
