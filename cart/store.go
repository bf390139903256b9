package cart

import (
	"sync"

	"github.com/emberhollow/storefront/models"
	"github.com/emberhollow/storefront/utils"
)

// Store owns one shopper's cart. All mutations go through the store, are
// serialized by its mutex, and persist the resulting snapshot before
// returning. Totals are recomputed on demand and never cached.
type Store struct {
	mu      sync.Mutex
	cartKey string
	storage Storage
	items   []models.CartItem
	subs    []func()
}

// NewStore hydrates a store from the storage adapter. A missing or corrupt
// snapshot yields an empty cart; hydration never fails hard.
func NewStore(cartKey string, storage Storage) *Store {
	s := &Store{cartKey: cartKey, storage: storage}

	snap, err := storage.Load(cartKey)
	if err != nil {
		utils.LogError("Failed to load cart snapshot for key %s, starting empty: %v", cartKey, err)
		return s
	}
	if snap.Version != models.SnapshotVersion {
		if len(snap.Items) > 0 {
			utils.LogError("Cart snapshot for key %s has version %d, want %d, starting empty", cartKey, snap.Version, models.SnapshotVersion)
		}
		return s
	}
	for _, item := range snap.Items {
		if item.Quantity <= 0 {
			continue
		}
		s.items = append(s.items, item)
	}
	return s
}

// Subscribe registers a hook invoked after every successful cart mutation.
// Hooks run outside the store lock, in registration order.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// AddItem upserts a cart line. It succeeds only when the existing quantity
// plus the requested quantity stays within the item's stock ceiling; on
// failure the cart is left untouched and false is returned. A stock-limit
// refusal is an expected outcome, not an error.
func (s *Store) AddItem(item models.CartItem, requestedQty int) bool {
	if requestedQty < 1 {
		requestedQty = 1
	}

	s.mu.Lock()
	idx := s.indexOf(item.ProductSlug, item.VariantID)

	current := 0
	if idx >= 0 {
		current = s.items[idx].Quantity
	}
	if current+requestedQty > item.MaxStock {
		s.mu.Unlock()
		utils.LogInfo("Stock limit hit for %s: have %d, requested %d, ceiling %d", item.Key(), current, requestedQty, item.MaxStock)
		return false
	}

	if idx >= 0 {
		// Refresh the captured price, ceiling and labels on every add.
		item.Quantity = current + requestedQty
		s.items[idx] = item
	} else {
		item.Quantity = requestedQty
		s.items = append(s.items, item)
	}
	s.persistLocked()
	s.mu.Unlock()

	s.notify()
	return true
}

// UpdateQuantity clamps newQty into [0, maxStock] for the identified line
// and returns the resulting quantity. A result of zero removes the line.
// Unknown identities are a no-op returning zero.
func (s *Store) UpdateQuantity(productSlug, variantID string, newQty int) int {
	s.mu.Lock()
	idx := s.indexOf(productSlug, variantID)
	if idx < 0 {
		s.mu.Unlock()
		return 0
	}

	if newQty < 0 {
		newQty = 0
	}
	if max := s.items[idx].MaxStock; newQty > max {
		newQty = max
	}

	if newQty == 0 {
		s.items = append(s.items[:idx], s.items[idx+1:]...)
	} else {
		s.items[idx].Quantity = newQty
	}
	s.persistLocked()
	s.mu.Unlock()

	s.notify()
	return newQty
}

// RemoveItem deletes the identified line. Removing an absent identity is a
// no-op, and no change event fires for it.
func (s *Store) RemoveItem(productSlug, variantID string) {
	s.mu.Lock()
	idx := s.indexOf(productSlug, variantID)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	s.persistLocked()
	s.mu.Unlock()

	s.notify()
}

// Clear empties the cart unconditionally.
func (s *Store) Clear() {
	s.mu.Lock()
	s.items = nil
	s.persistLocked()
	s.mu.Unlock()

	s.notify()
}

// Items returns a copy of the cart lines in insertion order.
func (s *Store) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]models.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

// TotalPriceCents is the cart subtotal, recomputed on every call.
func (s *Store) TotalPriceCents() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int64
	for _, item := range s.items {
		total += item.LineTotalCents()
	}
	return total
}

// TotalItems is the summed quantity across all lines.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// ItemQuantity reports the quantity held for an identity, zero if absent.
func (s *Store) ItemQuantity(productSlug, variantID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.indexOf(productSlug, variantID); idx >= 0 {
		return s.items[idx].Quantity
	}
	return 0
}

// PromoLines converts the cart into the line shape the promotion
// validation endpoint expects.
func (s *Store) PromoLines() []models.PromoLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := make([]models.PromoLine, 0, len(s.items))
	for _, item := range s.items {
		lines = append(lines, models.PromoLine{
			Slug:           item.ProductSlug,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
		})
	}
	return lines
}

func (s *Store) indexOf(productSlug, variantID string) int {
	for i, item := range s.items {
		if item.ProductSlug == productSlug && item.VariantID == variantID {
			return i
		}
	}
	return -1
}

// persistLocked writes the current snapshot through the adapter. A failed
// write keeps the in-memory cart authoritative for this session.
func (s *Store) persistLocked() {
	snap := models.CartSnapshot{Version: models.SnapshotVersion, Items: s.items}
	if err := s.storage.Save(s.cartKey, snap); err != nil {
		utils.LogError("Failed to persist cart snapshot for key %s: %v", s.cartKey, err)
	}
}

func (s *Store) notify() {
	s.mu.Lock()
	subs := make([]func(), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}
