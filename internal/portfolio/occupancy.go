package portfolio

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/poofware/pm-dashboard/internal/models"
)

// Stats summarizes occupancy and revenue for a set of units.
type Stats struct {
	Total          int             `json:"total"`
	Occupied       int             `json:"occupied"`
	Vacant         int             `json:"vacant"`
	OccupancyPct   int             `json:"occupancy_pct"`
	MonthlyRevenue decimal.Decimal `json:"monthly_revenue"`
}

// IsOccupied applies the occupancy precedence; the first signal that
// matches decides:
//  1. lease_status is exactly "active"
//  2. current_tenant is non-null
//  3. the unit has at least one active lease
//  4. otherwise, occupied iff the unit is not available
//
// The signals may disagree; the order is kept as-is on purpose.
func IsOccupied(u *models.Unit, idx *Index) bool {
	if u == nil {
		return false
	}
	if u.HasActiveLeaseStatus() {
		return true
	}
	if u.HasCurrentTenant() {
		return true
	}
	if _, ok := idx.CurrentLease(u.ID); ok {
		return true
	}
	return !u.IsAvailable
}

// StatsFor computes totals over units. Revenue counts occupied units only;
// invalid rent reads as 0 and negative rent is clamped to 0.
func StatsFor(units []*models.Unit, idx *Index) Stats {
	st := Stats{MonthlyRevenue: decimal.Zero}
	for _, u := range units {
		if u == nil {
			continue
		}
		st.Total++
		if IsOccupied(u, idx) {
			st.Occupied++
			st.MonthlyRevenue = st.MonthlyRevenue.Add(u.RentAmount.NonNegative())
		}
	}
	st.Vacant = st.Total - st.Occupied
	if st.Total > 0 {
		st.OccupancyPct = int(math.Round(float64(st.Occupied) / float64(st.Total) * 100))
	}
	return st
}

// AllUnits returns pointers to every unit of the snapshot slice, including
// units whose property does not resolve.
func AllUnits(units []models.Unit) []*models.Unit {
	out := make([]*models.Unit, len(units))
	for i := range units {
		out[i] = &units[i]
	}
	return out
}
