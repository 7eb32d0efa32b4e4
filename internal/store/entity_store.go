package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/poofware/pm-dashboard/internal/api"
	"github.com/poofware/pm-dashboard/internal/models"
	"github.com/poofware/pm-dashboard/internal/utils"
)

// EntityStore holds the current Snapshot. It is swapped wholesale on a
// successful reload and never patched. When reloads overlap, a result is
// applied only if no reload that started later has been applied already.
type EntityStore struct {
	client api.Client

	mu      sync.RWMutex
	current *Snapshot
	version uint64
	started uint64 // reloads begun
	applied uint64 // start sequence of the reload behind current

	now func() time.Time
}

func NewEntityStore(client api.Client) *EntityStore {
	return &EntityStore{
		client:  client,
		current: Empty(),
		now:     time.Now,
	}
}

// Snapshot returns the snapshot currently in effect.
func (s *EntityStore) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Reload fetches all four collections concurrently. The store is swapped
// only when every fetch succeeds; on any failure the previous snapshot
// stays in place and the first error is returned. A result overtaken by a
// newer reload is discarded and the newer snapshot returned.
func (s *EntityStore) Reload(ctx context.Context) (*Snapshot, error) {
	s.mu.Lock()
	s.started++
	seq := s.started
	s.mu.Unlock()

	var (
		properties []models.Property
		units      []models.Unit
		leases     []models.Lease
		tenants    []models.Tenant
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		properties, err = s.client.ListProperties(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		units, err = s.client.ListUnits(gctx, nil)
		return err
	})
	g.Go(func() error {
		var err error
		leases, err = s.client.ListLeases(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		tenants, err = s.client.ListTenants(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		utils.Logger.WithError(err).Error("Portfolio reload failed; keeping previous snapshot")
		return nil, fmt.Errorf("%w: %w", utils.ErrLoadFailed, err)
	}

	s.mu.Lock()
	if seq < s.applied {
		current := s.current
		s.mu.Unlock()
		utils.Logger.WithFields(logrus.Fields{
			"reload":  seq,
			"applied": current.Version,
		}).Debug("Discarding reload overtaken by a newer one")
		return current, nil
	}
	s.applied = seq
	s.version++
	snap := &Snapshot{
		Version:    s.version,
		LoadedAt:   s.now(),
		Properties: properties,
		Units:      units,
		Leases:     leases,
		Tenants:    tenants,
	}
	s.current = snap
	s.mu.Unlock()

	utils.Logger.WithFields(logrus.Fields{
		"version":    snap.Version,
		"properties": len(properties),
		"units":      len(units),
		"leases":     len(leases),
		"tenants":    len(tenants),
	}).Info("Portfolio snapshot loaded")

	return snap, nil
}
