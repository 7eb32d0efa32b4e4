package store

import (
	"time"

	"github.com/poofware/pm-dashboard/internal/models"
)

// Snapshot is one complete fetch of the four collections. A Snapshot is
// never modified after it is published; a reload produces a new one, so a
// *Snapshot pointer doubles as the identity key for derived-state memos.
type Snapshot struct {
	Version    uint64
	LoadedAt   time.Time
	Properties []models.Property
	Units      []models.Unit
	Leases     []models.Lease
	Tenants    []models.Tenant
}

var empty = &Snapshot{}

// Empty is the snapshot in effect before the first successful load.
func Empty() *Snapshot { return empty }

// PropertyByID resolves a property in this snapshot.
func (s *Snapshot) PropertyByID(id models.ID) (*models.Property, bool) {
	if s == nil || !id.Valid {
		return nil, false
	}
	for i := range s.Properties {
		if p := &s.Properties[i]; p.ID.Valid && p.ID.Value == id.Value {
			return p, true
		}
	}
	return nil, false
}

// UnitByID resolves a unit in this snapshot.
func (s *Snapshot) UnitByID(id models.ID) (*models.Unit, bool) {
	if s == nil || !id.Valid {
		return nil, false
	}
	for i := range s.Units {
		if u := &s.Units[i]; u.ID.Valid && u.ID.Value == id.Value {
			return u, true
		}
	}
	return nil, false
}
