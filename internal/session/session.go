// Package session maps session ids to the live cart, checkout machine, and
// order log owned by that shopper. Within a session, mutations are
// serialized by the session mutex; the core packages stay lock-free.
package session

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"stitchkart.in/storefront/api/pkg/cart"
	"stitchkart.in/storefront/api/pkg/checkout"
	"stitchkart.in/storefront/api/pkg/orderlog"
)

// Session holds one shopper's state. Lock Mu around any use of Cart or
// Checkout; the order log both guards its own key and has this session as
// its only writer.
type Session struct {
	ID       string
	Mu       sync.Mutex
	Cart     *cart.Cart
	Checkout *checkout.Machine
	Orders   *orderlog.Log
}

// ResetCheckout discards the current checkout attempt and starts a fresh
// one over the same order log. Called after an order is placed, or when the
// shopper abandons checkout and returns to the cart.
func (s *Session) ResetCheckout() {
	s.Checkout = checkout.NewMachine(s.Orders)
}

// Registry hands out sessions keyed by id, creating them on first use.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	store    orderlog.Store
}

func NewRegistry(store orderlog.Store) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		store:    store,
	}
}

// GetOrCreate returns the session for id, creating it if unknown. An empty
// id gets a freshly generated one.
func (r *Registry) GetOrCreate(id string) *Session {
	if id == "" {
		id = uuid.NewString()
	}

	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if ok {
		return s
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[id]; ok {
		return s
	}

	orders := orderlog.New(r.store, fmt.Sprintf("%s:%s", orderlog.DefaultKey, id))
	s = &Session{
		ID:     id,
		Cart:   cart.New(),
		Orders: orders,
	}
	s.Checkout = checkout.NewMachine(orders)
	r.sessions[id] = s
	return s
}

// Drop forgets a session's in-memory state. Persisted orders survive.
func (r *Registry) Drop(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}
