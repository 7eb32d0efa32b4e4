package portfolio

import (
	"sync"

	"github.com/poofware/pm-dashboard/internal/store"
)

// Memo caches the Index of exactly one snapshot. A different snapshot
// pointer always rebuilds; nothing is carried across snapshots.
type Memo struct {
	mu   sync.Mutex
	snap *store.Snapshot
	idx  *Index
}

// IndexFor returns the Index of snap, building it on first use.
func (m *Memo) IndexFor(snap *store.Snapshot) *Index {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.idx == nil || m.snap != snap {
		m.snap = snap
		m.idx = BuildIndex(snap)
	}
	return m.idx
}
