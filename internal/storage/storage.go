// Package storage is the persistence adapter for the ledger. Collections
// are stored whole as JSON blobs in a key-value table, one key per
// collection. Load failures fall back to an empty or default collection and
// save failures are swallowed; both paths are reported through the
// structured log rather than surfaced to callers, so a broken store never
// takes the application down.
package storage

import (
	"encoding/json"
	"errors"
	"time"

	"kanakubook/internal/logger"
	"kanakubook/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Storage keys. Each key holds one whole collection; there is no
// incremental write and no migration versioning beyond the key suffix.
const (
	BooksKey      = "app-books-v1"
	CategoriesKey = "app-categories-v1"
)

// record is a row in the kv_records table.
type record struct {
	Key       string `gorm:"primaryKey;column:key"`
	Value     string `gorm:"column:value"`
	UpdatedAt time.Time
}

// TableName overrides the GORM table name.
func (record) TableName() string { return "kv_records" }

// Store reads and writes the ledger collections.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store backed by the given database.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// LoadBooks returns the persisted book collection, or an empty collection
// if none exists or the stored payload is unreadable.
func (s *Store) LoadBooks() []models.Book {
	var rec record
	if err := s.db.First(&rec, "key = ?", BooksKey).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Get().Warnw("failed to read books from storage", "key", BooksKey, "error", err.Error())
		}
		return []models.Book{}
	}

	var books []models.Book
	if err := json.Unmarshal([]byte(rec.Value), &books); err != nil {
		logger.Get().Warnw("corrupt books payload, falling back to empty collection", "key", BooksKey, "error", err.Error())
		return []models.Book{}
	}
	if books == nil {
		books = []models.Book{}
	}
	return books
}

// SaveBooks overwrites the persisted book collection. Failures are logged
// and never raised to the caller.
func (s *Store) SaveBooks(books []models.Book) {
	s.save(BooksKey, books)
}

// LoadCategories returns the persisted category collection, falling back to
// the default set when no data exists or the payload is unreadable.
func (s *Store) LoadCategories() []models.Category {
	var rec record
	if err := s.db.First(&rec, "key = ?", CategoriesKey).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Get().Warnw("failed to read categories from storage", "key", CategoriesKey, "error", err.Error())
		}
		return DefaultCategories()
	}

	var categories []models.Category
	if err := json.Unmarshal([]byte(rec.Value), &categories); err != nil {
		logger.Get().Warnw("corrupt categories payload, falling back to defaults", "key", CategoriesKey, "error", err.Error())
		return DefaultCategories()
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories
}

// SaveCategories overwrites the persisted category collection. Failures are
// logged and never raised to the caller.
func (s *Store) SaveCategories(categories []models.Category) {
	s.save(CategoriesKey, categories)
}

func (s *Store) save(key string, collection interface{}) {
	payload, err := json.Marshal(collection)
	if err != nil {
		logger.Get().Errorw("failed to encode collection for storage", "key", key, "error", err.Error())
		return
	}

	rec := record{Key: key, Value: string(payload), UpdatedAt: time.Now()}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		logger.Get().Errorw("failed to save collection to storage", "key", key, "error", err.Error())
	}
}
