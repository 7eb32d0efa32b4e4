package navigation

import (
	"fmt"

	"github.com/poofware/pm-dashboard/internal/models"
	"github.com/poofware/pm-dashboard/internal/store"
)

// Mode is the drawer mode.
type Mode int

const (
	Closed Mode = iota
	PropertyView
	UnitDetailView
)

func (m Mode) String() string {
	switch m {
	case Closed:
		return "closed"
	case PropertyView:
		return "property"
	case UnitDetailView:
		return "unit_detail"
	default:
		return "unknown"
	}
}

// State is an immutable drawer state. It stores identifiers only; the
// selected entities are looked up in the current snapshot on each read.
type State struct {
	mode       Mode
	propertyID models.ID
	unitID     models.ID
}

// ClosedState is the initial state.
func ClosedState() State { return State{} }

func (s State) Mode() Mode            { return s.mode }
func (s State) PropertyID() models.ID { return s.propertyID }
func (s State) UnitID() models.ID     { return s.unitID }

func (s State) String() string {
	switch s.mode {
	case PropertyView:
		return fmt.Sprintf("PropertyView(%s)", s.propertyID)
	case UnitDetailView:
		return fmt.Sprintf("UnitDetailView(%s, %s)", s.propertyID, s.unitID)
	default:
		return "Closed"
	}
}

// OpenProperty moves to PropertyView(id) from any state.
func (s State) OpenProperty(id models.ID) State {
	return State{mode: PropertyView, propertyID: id}
}

// CloseDrawer moves to Closed from any state.
func (s State) CloseDrawer() State {
	return ClosedState()
}

// OpenUnitDetail is only valid from PropertyView; elsewhere it is a no-op.
func (s State) OpenUnitDetail(unitID models.ID) State {
	if s.mode != PropertyView {
		return s
	}
	return State{mode: UnitDetailView, propertyID: s.propertyID, unitID: unitID}
}

// GoBackToUnits is only valid from UnitDetailView; elsewhere it is a no-op.
func (s State) GoBackToUnits() State {
	if s.mode != UnitDetailView {
		return s
	}
	return State{mode: PropertyView, propertyID: s.propertyID}
}

// ShowsProperty reports whether the drawer is open on property id, in
// either sub-view.
func (s State) ShowsProperty(id models.ID) bool {
	return s.mode != Closed && id.Valid && s.propertyID.Valid && s.propertyID.Value == id.Value
}

// SelectedProperty resolves the drawer's property against snap. ok is
// false when the drawer is closed or the id no longer exists.
func (s State) SelectedProperty(snap *store.Snapshot) (*models.Property, bool) {
	if s.mode == Closed {
		return nil, false
	}
	return snap.PropertyByID(s.propertyID)
}

// SelectedUnit resolves the drawer's unit against snap. The unit must
// still exist and still belong to the selected property.
func (s State) SelectedUnit(snap *store.Snapshot) (*models.Unit, bool) {
	if s.mode != UnitDetailView {
		return nil, false
	}
	u, ok := snap.UnitByID(s.unitID)
	if !ok || !u.PropertyID.Valid || u.PropertyID.Value != s.propertyID.Value {
		return nil, false
	}
	return u, true
}
