package portfolio

import (
	"sort"
	"strings"
	"time"

	"github.com/poofware/pm-dashboard/internal/models"
	"github.com/poofware/pm-dashboard/internal/store"
)

// Index holds the relationships rebuilt from one snapshot. Keys are the
// integer identifiers; entities with invalid identifiers are absent.
type Index struct {
	UnitsByProperty    map[int64][]*models.Unit
	TenantsByID        map[int64]*models.Tenant
	ActiveLeasesByUnit map[int64][]*models.Lease
}

// BuildIndex derives every lookup from scratch. Pointers refer into the
// snapshot's slices, which are never modified after publication.
func BuildIndex(snap *store.Snapshot) *Index {
	idx := &Index{
		UnitsByProperty:    make(map[int64][]*models.Unit),
		TenantsByID:        make(map[int64]*models.Tenant),
		ActiveLeasesByUnit: make(map[int64][]*models.Lease),
	}
	if snap == nil {
		return idx
	}

	for i := range snap.Units {
		u := &snap.Units[i]
		if !u.PropertyID.Valid {
			continue
		}
		idx.UnitsByProperty[u.PropertyID.Value] = append(idx.UnitsByProperty[u.PropertyID.Value], u)
	}

	for i := range snap.Tenants {
		t := &snap.Tenants[i]
		if !t.ID.Valid {
			continue
		}
		idx.TenantsByID[t.ID.Value] = t
	}

	for i := range snap.Leases {
		l := &snap.Leases[i]
		if !l.IsActive || !l.UnitID.Valid {
			continue
		}
		idx.ActiveLeasesByUnit[l.UnitID.Value] = append(idx.ActiveLeasesByUnit[l.UnitID.Value], l)
	}
	for _, leases := range idx.ActiveLeasesByUnit {
		SortLeasesByRecency(leases)
	}

	return idx
}

// UnitsFor returns the units of a property in fetch order.
func (idx *Index) UnitsFor(propertyID models.ID) []*models.Unit {
	if idx == nil || !propertyID.Valid {
		return nil
	}
	return idx.UnitsByProperty[propertyID.Value]
}

// CurrentLease returns the unit's current lease, if any.
func (idx *Index) CurrentLease(unitID models.ID) (*models.Lease, bool) {
	if idx == nil || !unitID.Valid {
		return nil, false
	}
	leases := idx.ActiveLeasesByUnit[unitID.Value]
	if len(leases) == 0 {
		return nil, false
	}
	return leases[0], true
}

// Tenant resolves a tenant reference.
func (idx *Index) Tenant(id models.ID) (*models.Tenant, bool) {
	if idx == nil || !id.Valid {
		return nil, false
	}
	t, ok := idx.TenantsByID[id.Value]
	return t, ok
}

// SortLeasesByRecency orders leases newest first by LeaseTimestamp. Leases
// without a usable timestamp go last; ties keep their incoming order.
func SortLeasesByRecency(leases []*models.Lease) {
	sort.SliceStable(leases, func(i, j int) bool {
		ti, okI := LeaseTimestamp(leases[i])
		tj, okJ := LeaseTimestamp(leases[j])
		switch {
		case okI && okJ:
			return ti.After(tj)
		case okI:
			return true
		default:
			return false
		}
	})
}

// LeaseTimestamp is the later of updated_at and created_at among the ones
// that parse. ok is false when neither does.
func LeaseTimestamp(l *models.Lease) (time.Time, bool) {
	updated, okU := parseTimestamp(l.UpdatedAt)
	created, okC := parseTimestamp(l.CreatedAt)
	switch {
	case okU && okC:
		if created.After(updated) {
			return created, true
		}
		return updated, true
	case okU:
		return updated, true
	case okC:
		return created, true
	default:
		return time.Time{}, false
	}
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

func parseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
