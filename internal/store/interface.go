package store

import "github.com/hance08/cashbook/internal/model"

// Repository holds the session's transactions in insertion order.
type Repository interface {
	// Add appends tx to the end of the sequence. No validation happens here.
	Add(tx model.Transaction)
	// All returns a copy of every transaction in insertion order.
	All() []model.Transaction
	Len() int
}
