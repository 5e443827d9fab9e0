package postgres

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cityweather/backend/internal/domain"
)

const maxMockLookups = 500

// MockRepository implements domain.LookupRepository in memory for tests and demo mode
type MockRepository struct {
	mu      sync.RWMutex
	lookups []domain.Lookup
}

// NewMockRepository creates a new mock repository
func NewMockRepository() *MockRepository {
	return &MockRepository{}
}

// SaveLookup keeps the lookup in memory, dropping the oldest past the cap
func (r *MockRepository) SaveLookup(ctx context.Context, l domain.Lookup) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lookups = append(r.lookups, l)
	if len(r.lookups) > maxMockLookups {
		r.lookups = r.lookups[len(r.lookups)-maxMockLookups:]
	}
	return nil
}

// RecentLookups returns stored lookups in [from, to], newest first
func (r *MockRepository) RecentLookups(ctx context.Context, from, to time.Time) ([]domain.Lookup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Lookup
	for _, l := range r.lookups {
		if l.Timestamp.Before(from) || l.Timestamp.After(to) {
			continue
		}
		out = append(out, l)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	if len(out) > historyLimit {
		out = out[:historyLimit]
	}
	return out, nil
}

// Health always returns nil in mock mode
func (r *MockRepository) Health(ctx context.Context) error {
	return nil
}
