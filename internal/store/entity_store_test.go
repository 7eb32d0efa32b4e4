package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/poofware/pm-dashboard/internal/models"
	"github.com/poofware/pm-dashboard/internal/testhelpers"
	"github.com/poofware/pm-dashboard/internal/utils"
)

func newTestStore(fake *testhelpers.FakeClient) *EntityStore {
	s := NewEntityStore(fake)
	s.now = func() time.Time { return time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC) }
	return s
}

func TestReloadSwapsSnapshot(t *testing.T) {
	fake := testhelpers.NewFakeClient(testhelpers.SamplePortfolio())
	s := newTestStore(fake)

	before := s.Snapshot()
	require.Same(t, Empty(), before)

	snap, err := s.Reload(context.Background())
	require.NoError(t, err)
	require.Same(t, snap, s.Snapshot())
	require.NotSame(t, before, snap)
	require.Equal(t, uint64(1), snap.Version)
	require.Len(t, snap.Properties, 2)
	require.Len(t, snap.Units, 3)
	require.Len(t, snap.Leases, 1)
	require.Len(t, snap.Tenants, 2)

	for _, op := range []string{
		testhelpers.OpListProperties, testhelpers.OpListUnits,
		testhelpers.OpListLeases, testhelpers.OpListTenants,
	} {
		require.Equal(t, 1, fake.CallCount(op), op)
	}

	again, err := s.Reload(context.Background())
	require.NoError(t, err)
	require.NotSame(t, snap, again)
	require.Equal(t, uint64(2), again.Version)
}

func TestReloadFailureKeepsPreviousSnapshot(t *testing.T) {
	for _, op := range []string{
		testhelpers.OpListProperties, testhelpers.OpListUnits,
		testhelpers.OpListLeases, testhelpers.OpListTenants,
	} {
		t.Run(op, func(t *testing.T) {
			fake := testhelpers.NewFakeClient(testhelpers.SamplePortfolio())
			s := newTestStore(fake)

			good, err := s.Reload(context.Background())
			require.NoError(t, err)

			fake.FailOn(op, testhelpers.ErrInjected)
			snap, err := s.Reload(context.Background())
			require.Error(t, err)
			require.Nil(t, snap)
			require.True(t, errors.Is(err, utils.ErrLoadFailed))
			require.True(t, errors.Is(err, testhelpers.ErrInjected))
			require.Same(t, good, s.Snapshot())
		})
	}
}

func TestFirstLoadFailureLeavesEmptySnapshot(t *testing.T) {
	fake := testhelpers.NewFakeClient(testhelpers.SamplePortfolio())
	fake.FailOn(testhelpers.OpListLeases, testhelpers.ErrInjected)
	s := newTestStore(fake)

	_, err := s.Reload(context.Background())
	require.Error(t, err)
	require.Same(t, Empty(), s.Snapshot())
	require.Empty(t, s.Snapshot().Properties)
}

func TestSnapshotLookups(t *testing.T) {
	fake := testhelpers.NewFakeClient(testhelpers.SamplePortfolio())
	s := newTestStore(fake)
	snap, err := s.Reload(context.Background())
	require.NoError(t, err)

	p, ok := snap.PropertyByID(models.NewID(2))
	require.True(t, ok)
	require.Equal(t, "Harbor Plaza", p.Name)

	u, ok := snap.UnitByID(models.NewID(12))
	require.True(t, ok)
	require.Equal(t, "U2", u.UnitNumber)

	_, ok = snap.PropertyByID(models.NewID(99))
	require.False(t, ok)
	_, ok = snap.UnitByID(models.ID{})
	require.False(t, ok)
}

// heldPropertiesClient fetches properties on the first call, then holds the
// result until release is closed.
type heldPropertiesClient struct {
	*testhelpers.FakeClient
	held    chan struct{}
	release chan struct{}
	once    sync.Once
}

func (c *heldPropertiesClient) ListProperties(ctx context.Context) ([]models.Property, error) {
	props, err := c.FakeClient.ListProperties(ctx)
	first := false
	c.once.Do(func() { first = true })
	if first {
		close(c.held)
		<-c.release
	}
	return props, err
}

func TestOvertakenReloadIsDiscarded(t *testing.T) {
	fake := testhelpers.NewFakeClient(testhelpers.SamplePortfolio())
	client := &heldPropertiesClient{
		FakeClient: fake,
		held:       make(chan struct{}),
		release:    make(chan struct{}),
	}
	s := NewEntityStore(client)

	type result struct {
		snap *Snapshot
		err  error
	}
	done := make(chan result, 1)
	go func() {
		snap, err := s.Reload(context.Background())
		done <- result{snap, err}
	}()
	<-client.held

	require.NoError(t, fake.DeleteProperty(context.Background(), models.NewID(2)))
	newer, err := s.Reload(context.Background())
	require.NoError(t, err)
	require.Len(t, newer.Properties, 1)

	close(client.release)
	stale := <-done
	require.NoError(t, stale.err)
	require.Same(t, newer, stale.snap)
	require.Same(t, newer, s.Snapshot())
	require.Equal(t, uint64(1), s.Snapshot().Version)
	require.Len(t, s.Snapshot().Properties, 1)
}
