package navigation

import (
	"sync"

	"github.com/poofware/pm-dashboard/internal/models"
	"github.com/poofware/pm-dashboard/internal/utils"
)

// Machine owns the current drawer State and applies transitions to it.
type Machine struct {
	mu    sync.Mutex
	state State
}

func NewMachine() *Machine {
	return &Machine{state: ClosedState()}
}

// State returns the current state value.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Machine) OpenProperty(id models.ID) State {
	return m.apply("open_property", func(s State) State { return s.OpenProperty(id) })
}

func (m *Machine) CloseDrawer() State {
	return m.apply("close_drawer", State.CloseDrawer)
}

func (m *Machine) OpenUnitDetail(unitID models.ID) State {
	return m.apply("open_unit_detail", func(s State) State { return s.OpenUnitDetail(unitID) })
}

func (m *Machine) GoBackToUnits() State {
	return m.apply("go_back_to_units", State.GoBackToUnits)
}

// CloseIfShowing closes the drawer when it shows property id and reports
// whether it did.
func (m *Machine) CloseIfShowing(id models.ID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.state.ShowsProperty(id) {
		return false
	}
	m.state = m.state.CloseDrawer()
	return true
}

func (m *Machine) apply(name string, fn func(State) State) State {
	m.mu.Lock()
	defer m.mu.Unlock()
	next := fn(m.state)
	if next == m.state {
		utils.Logger.Debugf("navigation: %s ignored in %s", name, m.state)
	} else {
		utils.Logger.Debugf("navigation: %s %s -> %s", name, m.state, next)
	}
	m.state = next
	return next
}
