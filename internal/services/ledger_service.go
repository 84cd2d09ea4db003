package services

import (
	"strings"
	"sync"
	"time"

	apperrors "kanakubook/internal/errors"
	"kanakubook/internal/models"
	"kanakubook/internal/storage"
	"kanakubook/internal/uuid"
)

// ledgerService holds the in-memory collections and funnels every mutation
// through a single lock so concurrent HTTP callers cannot lose updates
// during the read-modify-write cycle. The service trusts well-formed input
// from the boundary; validation happens in the handlers.
type ledgerService struct {
	mu    sync.Mutex
	store *storage.Store

	books      []models.Book
	categories []models.Category
}

// NewLedgerService loads the persisted state and returns a ledger around it.
func NewLedgerService(store *storage.Store) LedgerServicer {
	return &ledgerService{
		store:      store,
		books:      store.LoadBooks(),
		categories: store.LoadCategories(),
	}
}

// ListBooks returns a snapshot copy of the book collection, newest first.
func (s *ledgerService) ListBooks() []models.Book {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Book, len(s.books))
	for i, b := range s.books {
		out[i] = b.Clone()
	}
	return out
}

// GetBook returns a snapshot copy of the book with the given id.
func (s *ledgerService) GetBook(id string) (*models.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.books {
		if b.ID == id {
			clone := b.Clone()
			return &clone, nil
		}
	}
	return nil, apperrors.ErrBookNotFound
}

// CreateBook allocates a fresh book with no transactions and prepends it to
// the collection, so new books list first by default.
func (s *ledgerService) CreateBook(name string) *models.Book {
	s.mu.Lock()
	defer s.mu.Unlock()

	book := models.Book{
		ID:           uuid.New(),
		Name:         name,
		CreatedAt:    time.Now(),
		Transactions: []models.Transaction{},
	}
	s.books = append([]models.Book{book}, s.books...)
	s.store.SaveBooks(s.books)

	clone := book.Clone()
	return &clone
}

// UpdateBook replaces the book matching book.ID wholesale. Unknown ids are
// a silent no-op; callers are expected to only update books they hold a
// valid reference to.
func (s *ledgerService) UpdateBook(book models.Book) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, b := range s.books {
		if b.ID == book.ID {
			s.books[i] = book.Clone()
			s.store.SaveBooks(s.books)
			return
		}
	}
}

// DeleteBook removes the book and, implicitly, all of its transactions.
// Deleting an absent book is a no-op, so the call is idempotent.
func (s *ledgerService) DeleteBook(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, b := range s.books {
		if b.ID == id {
			s.books = append(s.books[:i], s.books[i+1:]...)
			s.store.SaveBooks(s.books)
			return
		}
	}
}

// mutateBook runs fn against the stored book while the ledger lock is
// held, so the whole read-modify-write cycle is one critical section. The
// collection is persisted only when fn reports a change.
func (s *ledgerService) mutateBook(id string, fn func(book *models.Book) bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.books {
		if s.books[i].ID == id {
			if fn(&s.books[i]) {
				s.store.SaveBooks(s.books)
			}
			return nil
		}
	}
	return apperrors.ErrBookNotFound
}

// AddTransaction appends a transaction to the book, assigning it a fresh
// id. The append happens under the ledger lock, so concurrent adds to the
// same book all survive.
func (s *ledgerService) AddTransaction(bookID string, tx models.Transaction) (*models.Transaction, error) {
	tx.ID = uuid.New()
	err := s.mutateBook(bookID, func(book *models.Book) bool {
		book.Transactions = append(book.Transactions, tx)
		return true
	})
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

// ReplaceTransaction replaces the transaction matching tx.ID in place,
// keeping its position in the stored order.
func (s *ledgerService) ReplaceTransaction(bookID string, tx models.Transaction) error {
	found := false
	err := s.mutateBook(bookID, func(book *models.Book) bool {
		for i := range book.Transactions {
			if book.Transactions[i].ID == tx.ID {
				book.Transactions[i] = tx
				found = true
				return true
			}
		}
		return false
	})
	if err != nil {
		return err
	}
	if !found {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}

// RemoveTransaction filters the transaction out of the book. Removing an
// absent transaction is a no-op, so the call is idempotent.
func (s *ledgerService) RemoveTransaction(bookID, txID string) error {
	return s.mutateBook(bookID, func(book *models.Book) bool {
		kept := book.Transactions[:0]
		for _, tx := range book.Transactions {
			if tx.ID != txID {
				kept = append(kept, tx)
			}
		}
		changed := len(kept) != len(book.Transactions)
		book.Transactions = kept
		return changed
	})
}

// ListCategories returns a snapshot copy of the category collection.
func (s *ledgerService) ListCategories() []models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// AddCategory appends a new category usable for both income and expense.
// If a category with the same name already exists (case-insensitive) the
// collection is left unchanged and ok is false.
func (s *ledgerService) AddCategory(name string) (category *models.Category, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.categories {
		if strings.EqualFold(c.Name, name) {
			return nil, false
		}
	}

	created := models.Category{
		ID:        uuid.New(),
		Name:      name,
		AppliesTo: models.CategoryScopeBoth,
	}
	s.categories = append(s.categories, created)
	s.store.SaveCategories(s.categories)

	return &created, true
}
