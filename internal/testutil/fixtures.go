package testutil

import (
	"fmt"
	"time"

	"kanakubook/internal/models"
)

// MakeTransaction builds a transaction with a unique id for use in tests.
func MakeTransaction(amount float64, category string, txType models.TransactionType, date time.Time) models.Transaction {
	return models.Transaction{
		ID:       fmt.Sprintf("tx-%d", counter.Add(1)),
		Amount:   amount,
		Category: category,
		Date:     date,
		Type:     txType,
	}
}

// MakeBook builds a book owning the given transactions.
func MakeBook(name string, transactions ...models.Transaction) models.Book {
	if transactions == nil {
		transactions = []models.Transaction{}
	}
	return models.Book{
		ID:           fmt.Sprintf("book-%d", counter.Add(1)),
		Name:         name,
		CreatedAt:    time.Now(),
		Transactions: transactions,
	}
}
