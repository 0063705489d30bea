// Package form holds the user-editable dashboard fields.
package form

import (
	"sync"

	"github.com/goodnatureofminers/paychain-dashboard/internal/model"
)

// Fields is a copy of the store contents.
type Fields struct {
	From   string
	To     string
	Amount int64
	// User is the account whose balance is being viewed.
	User string
}

// Store is a plain value holder: it never validates, the ledger does.
type Store struct {
	mu     sync.RWMutex
	fields Fields
}

// NewStore creates a Store seeded with initial.
func NewStore(initial Fields) *Store {
	return &Store{fields: initial}
}

// Snapshot returns every field at once.
func (s *Store) Snapshot() Fields {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fields
}

func (s *Store) From() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fields.From
}

func (s *Store) SetFrom(v string) {
	s.mu.Lock()
	s.fields.From = v
	s.mu.Unlock()
}

func (s *Store) To() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fields.To
}

func (s *Store) SetTo(v string) {
	s.mu.Lock()
	s.fields.To = v
	s.mu.Unlock()
}

func (s *Store) Amount() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fields.Amount
}

func (s *Store) SetAmount(v int64) {
	s.mu.Lock()
	s.fields.Amount = v
	s.mu.Unlock()
}

func (s *Store) User() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fields.User
}

func (s *Store) SetUser(v string) {
	s.mu.Lock()
	s.fields.User = v
	s.mu.Unlock()
}

// TransferRequest builds a transfer from the current contents.
func (s *Store) TransferRequest() model.TransferRequest {
	f := s.Snapshot()
	return model.TransferRequest{From: f.From, To: f.To, Amount: f.Amount}
}

// FaucetRequest builds a grant of the form amount to the viewed user.
func (s *Store) FaucetRequest() model.FaucetRequest {
	f := s.Snapshot()
	return model.FaucetRequest{To: f.User, Amount: f.Amount}
}
