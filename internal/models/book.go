package models

import "time"

// Book is a named container of transactions, analogous to a ledger or
// journal for a period. The book owns its transactions exclusively;
// deleting a book deletes all of them.
type Book struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	CreatedAt    time.Time     `json:"createdAt"`
	Transactions []Transaction `json:"transactions"`
}

// Clone returns a copy of the book with its own transaction slice, so that
// callers holding a snapshot cannot mutate the canonical collection.
func (b Book) Clone() Book {
	out := b
	out.Transactions = make([]Transaction, len(b.Transactions))
	copy(out.Transactions, b.Transactions)
	return out
}
