package cart

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/dxlr/storefront/internal/catalog"
)

// SnapshotVersion is written into every persisted snapshot so a future
// layout change can migrate instead of silently discarding data.
const SnapshotVersion = 1

type snapshot struct {
	Version int    `json:"version"`
	Items   []Item `json:"items"`
}

// Snapshotter is the durable key-value slot the cart persists to.
type Snapshotter interface {
	Save(ctx context.Context, key string, payload []byte) error
	Load(ctx context.Context, key string) ([]byte, error)
}

// Store owns one session's cart state and is its only mutation surface.
// Every change to the line items is written through to the snapshot
// slot; the open flag is session-only and never persisted.
type Store struct {
	mu    sync.Mutex
	key   string
	state State
	snaps Snapshotter
	log   *slog.Logger
}

// NewStore loads the snapshot under key and returns a ready store.
// A missing or malformed snapshot degrades to an empty cart.
func NewStore(ctx context.Context, key string, snaps Snapshotter, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	s := &Store{key: key, snaps: snaps, log: log.With("cart", key)}

	if snaps == nil {
		return s
	}
	payload, err := snaps.Load(ctx, key)
	if err != nil || len(payload) == 0 {
		if err != nil {
			s.log.Warn("snapshot_load_failed", "error", err)
		}
		return s
	}
	var snap snapshot
	if err := json.Unmarshal(payload, &snap); err != nil || snap.Version != SnapshotVersion {
		s.log.Warn("snapshot_discarded", "error", err, "version", snap.Version)
		return s
	}
	s.state = Reduce(s.state, Load{Items: snap.Items})
	return s
}

// AddItem merges into an existing line with the same (product, size,
// color) key or appends a new one, and opens the cart panel.
func (s *Store) AddItem(ctx context.Context, p catalog.Product, size, color string, quantity int) Item {
	if quantity < 1 {
		quantity = 1
	}
	key := ItemKey(p.ID, size, color)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, Add{Item: Item{
		Key:      key,
		Product:  p,
		Size:     size,
		Color:    color,
		Quantity: quantity,
	}})
	s.persist(ctx)
	return s.state.Items[s.state.indexOf(key)]
}

// RemoveItem deletes the line with the given key. Unknown keys are a
// no-op, not an error.
func (s *Store) RemoveItem(ctx context.Context, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, Remove{Key: key})
	s.persist(ctx)
}

// UpdateQuantity sets the quantity of an existing line; a quantity of
// zero or below removes it.
func (s *Store) UpdateQuantity(ctx context.Context, key string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, UpdateQuantity{Key: key, Quantity: quantity})
	s.persist(ctx)
}

// Clear empties the cart. The panel flag is left as it was.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, Clear{})
	s.persist(ctx)
}

func (s *Store) Toggle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, Toggle{})
}

func (s *Store) Open() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, Open{})
}

func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, Close{})
}

// Items returns a copy of the line items in insertion order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyItems(s.state.Items)
}

func (s *Store) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Subtotal()
}

func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.ItemCount()
}

func (s *Store) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.IsOpen
}

// persist writes the current line items through to the snapshot slot.
// Write failures are logged, never surfaced: the in-memory state stays
// the source of truth for the session.
func (s *Store) persist(ctx context.Context) {
	if s.snaps == nil {
		return
	}
	payload, err := json.Marshal(snapshot{Version: SnapshotVersion, Items: s.state.Items})
	if err != nil {
		s.log.Error("snapshot_encode_failed", "error", err)
		return
	}
	if err := s.snaps.Save(ctx, s.key, payload); err != nil {
		s.log.Error("snapshot_save_failed", "error", err)
	}
}
