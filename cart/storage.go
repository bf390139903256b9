package cart

import (
	"sync"

	"github.com/emberhollow/storefront/models"
)

// Storage persists cart snapshots keyed by the shopper's cart key. The
// store is the only writer; adapters never mutate snapshots themselves.
//
// Load must treat absent or unreadable data as an empty cart rather than a
// hard failure: the worst outcome of losing a snapshot is an empty cart on
// the next visit.
type Storage interface {
	Load(cartKey string) (models.CartSnapshot, error)
	Save(cartKey string, snapshot models.CartSnapshot) error
}

// MemoryStorage keeps snapshots in process memory. Used in tests and as
// the fallback backend when no persistence is configured.
type MemoryStorage struct {
	mu        sync.Mutex
	snapshots map[string]models.CartSnapshot
}

// NewMemoryStorage creates an empty in-memory snapshot store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{snapshots: make(map[string]models.CartSnapshot)}
}

func (s *MemoryStorage) Load(cartKey string) (models.CartSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, ok := s.snapshots[cartKey]
	if !ok {
		return models.CartSnapshot{Version: models.SnapshotVersion}, nil
	}
	return snap, nil
}

func (s *MemoryStorage) Save(cartKey string, snapshot models.CartSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]models.CartItem, len(snapshot.Items))
	copy(items, snapshot.Items)
	snapshot.Items = items
	s.snapshots[cartKey] = snapshot
	return nil
}
