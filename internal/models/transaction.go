package models

import "time"

// TransactionType represents the direction of a transaction.
type TransactionType string

const (
	TransactionTypeIn  TransactionType = "IN"
	TransactionTypeOut TransactionType = "OUT"
)

// Transaction represents a single dated income or expense entry.
// A transaction belongs to exactly one book; the amount is a positive
// magnitude and the sign is carried by Type, never by the stored value.
type Transaction struct {
	ID          string          `json:"id"`
	Amount      float64         `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	Type        TransactionType `json:"type"`
}
