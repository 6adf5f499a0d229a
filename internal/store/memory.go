package store

import "github.com/hance08/cashbook/internal/model"

// MemoryStore is a slice-backed Repository. It lives for one session and is
// never written anywhere on exit.
type MemoryStore struct {
	transactions []model.Transaction
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Add(tx model.Transaction) {
	s.transactions = append(s.transactions, tx)
}

func (s *MemoryStore) All() []model.Transaction {
	out := make([]model.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

func (s *MemoryStore) Len() int {
	return len(s.transactions)
}
