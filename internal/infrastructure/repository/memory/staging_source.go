package memory

import (
	"context"
	"sync"

	"github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/staging"
)

// StagingSource holds staged batches in memory. It doubles as the staging
// write target for the CSV intake, so a whole run can go through without a
// database.
type StagingSource struct {
	mu   sync.RWMutex
	rows map[staging.Entity][]staging.Row
}

func NewStagingSource() *StagingSource {
	return &StagingSource{rows: make(map[staging.Entity][]staging.Row)}
}

func (s *StagingSource) Rows(_ context.Context, entity staging.Entity) ([]staging.Row, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]staging.Row, len(s.rows[entity]))
	copy(out, s.rows[entity])
	return out, nil
}

func (s *StagingSource) WriteBatch(_ context.Context, entity staging.Entity, rows []staging.Row) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rows[entity] = append(s.rows[entity], rows...)
	return nil
}
