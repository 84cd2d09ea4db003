package services

import (
	"time"

	"kanakubook/internal/models"
)

// LedgerServicer owns the canonical book and category collections and is
// the only writer to them. Every mutation is followed by a save-back to the
// persistence adapter. The transaction mutators rebuild the owning book's
// transaction list and swap it in under the ledger lock, so a concurrent
// caller can never overwrite another's change with a stale snapshot.
type LedgerServicer interface {
	ListBooks() []models.Book
	GetBook(id string) (*models.Book, error)
	CreateBook(name string) *models.Book
	UpdateBook(book models.Book)
	DeleteBook(id string)
	AddTransaction(bookID string, tx models.Transaction) (*models.Transaction, error)
	ReplaceTransaction(bookID string, tx models.Transaction) error
	RemoveTransaction(bookID, txID string) error
	ListCategories() []models.Category
	AddCategory(name string) (*models.Category, bool)
}

// QueryServicer is a read-only pass over a book snapshot.
type QueryServicer interface {
	QueryTransactions(book models.Book, filter models.FilterSpec, now time.Time) QueryResult
}

// ExportServicer renders a book as a delimited text report.
type ExportServicer interface {
	ExportBook(book models.Book) Document
}
