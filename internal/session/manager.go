package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/dxlr/storefront/internal/cart"
	"github.com/dxlr/storefront/internal/checkout"
)

// Session is one visitor: their cart store and, once entered, their
// checkout flow.
type Session struct {
	ID   string
	Cart *cart.Store

	mu   sync.Mutex
	flow *checkout.Flow
}

// Checkout returns the session's flow, creating it on first use.
func (s *Session) Checkout(delay time.Duration) *checkout.Flow {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.flow == nil {
		s.flow = checkout.NewFlow(s.Cart, delay)
	}
	return s.flow
}

// ResetCheckout discards a completed flow so the visitor can start a
// new order in the same session.
func (s *Session) ResetCheckout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flow = nil
}

// Manager hands out sessions by id. Each session's cart loads its
// snapshot slot once, on first touch.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	snaps    cart.Snapshotter
	log      *slog.Logger
}

func NewManager(snaps cart.Snapshotter, log *slog.Logger) *Manager {
	if log == nil {
		log = slog.Default()
	}
	return &Manager{
		sessions: make(map[string]*Session),
		snaps:    snaps,
		log:      log,
	}
}

// Get returns the session for id, creating it (and loading its cart
// snapshot) when unseen.
func (m *Manager) Get(ctx context.Context, id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok {
		return s
	}
	s := &Session{
		ID:   id,
		Cart: cart.NewStore(ctx, id, m.snaps, m.log),
	}
	m.sessions[id] = s
	return s
}
