package portfolio

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/poofware/pm-dashboard/internal/models"
	"github.com/poofware/pm-dashboard/internal/testhelpers"
)

func TestIsOccupiedPrecedence(t *testing.T) {
	withLease := BuildIndex(snapshotOf(testhelpers.Portfolio{
		Leases: []models.Lease{testhelpers.NewLease(1, 50, 501, true, "2026-01-01")},
	}))
	empty := BuildIndex(snapshotOf(testhelpers.Portfolio{}))

	available := testhelpers.NewUnit(50, 1, "A", 1000, true)
	unavailable := testhelpers.NewUnit(50, 1, "A", 1000, false)

	cases := []struct {
		name string
		unit models.Unit
		idx  *Index
		want bool
	}{
		{"lease_status active wins over availability", testhelpers.WithLeaseStatus(available, "active"), empty, true},
		{"lease_status is case-sensitive", testhelpers.WithLeaseStatus(available, "Active"), empty, false},
		{"current_tenant non-null", testhelpers.WithCurrentTenant(available, 501), empty, true},
		{"current_tenant null falls through", withRawTenant(available, "null"), empty, false},
		{"active lease in index", available, withLease, true},
		{"fallback unavailable", unavailable, empty, true},
		{"fallback available", available, empty, false},
		{"expired lease_status on unavailable unit", testhelpers.WithLeaseStatus(unavailable, "expired"), empty, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u := tc.unit
			require.Equal(t, tc.want, IsOccupied(&u, tc.idx))
		})
	}
}

func withRawTenant(u models.Unit, raw string) models.Unit {
	u.CurrentTenant = json.RawMessage(raw)
	return u
}

func TestStatsForEmpty(t *testing.T) {
	st := StatsFor(nil, BuildIndex(nil))
	require.Equal(t, 0, st.Total)
	require.Equal(t, 0, st.OccupancyPct)
	require.True(t, st.MonthlyRevenue.IsZero())
}

func TestStatsForSampleProperty(t *testing.T) {
	snap := snapshotOf(testhelpers.SamplePortfolio())
	idx := BuildIndex(snap)

	st := StatsFor(idx.UnitsFor(models.NewID(1)), idx)
	require.Equal(t, 2, st.Total)
	require.Equal(t, 1, st.Occupied)
	require.Equal(t, 1, st.Vacant)
	require.Equal(t, 50, st.OccupancyPct)
	require.Equal(t, "1000", st.MonthlyRevenue.String())
}

func TestStatsRevenueIgnoresInvalidAndNegativeRent(t *testing.T) {
	a := testhelpers.NewUnit(1, 1, "A", 1000, false)
	b := testhelpers.NewUnit(2, 1, "B", -200, false)
	c := testhelpers.NewUnit(3, 1, "C", 0, false)
	c.RentAmount = models.Amount{}
	d := testhelpers.NewUnit(4, 1, "D", 5000, true)

	st := StatsFor([]*models.Unit{&a, &b, &c, &d}, BuildIndex(nil))
	require.Equal(t, 4, st.Total)
	require.Equal(t, 3, st.Occupied)
	require.Equal(t, 75, st.OccupancyPct)
	require.Equal(t, "1000", st.MonthlyRevenue.String())
}

func TestStatsRoundsPercentage(t *testing.T) {
	a := testhelpers.NewUnit(1, 1, "A", 100, false)
	b := testhelpers.NewUnit(2, 1, "B", 100, true)
	c := testhelpers.NewUnit(3, 1, "C", 100, true)

	st := StatsFor([]*models.Unit{&a, &b, &c}, BuildIndex(nil))
	require.Equal(t, 33, st.OccupancyPct)

	b.IsAvailable = false
	st = StatsFor([]*models.Unit{&a, &b, &c}, BuildIndex(nil))
	require.Equal(t, 67, st.OccupancyPct)
}

func TestPortfolioStatsIncludeUnresolvedProperties(t *testing.T) {
	p := testhelpers.SamplePortfolio()
	p.Units = append(p.Units, testhelpers.NewUnit(40, 99, "Z", 700, false))
	snap := snapshotOf(p)
	idx := BuildIndex(snap)

	st := StatsFor(AllUnits(snap.Units), idx)
	require.Equal(t, 4, st.Total)
	require.Equal(t, "1700", st.MonthlyRevenue.String())

	_, ok := snap.PropertyByID(models.NewID(99))
	require.False(t, ok)
}
