package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "kanakubook/internal/errors"
	"kanakubook/internal/models"
	"kanakubook/internal/services"
	"kanakubook/internal/uuid"
)

// BookHandler handles book, transaction, query, and export requests.
type BookHandler struct {
	ledger services.LedgerServicer
	query  services.QueryServicer
	export services.ExportServicer
}

// NewBookHandler creates a new BookHandler.
func NewBookHandler(ledger services.LedgerServicer, query services.QueryServicer, export services.ExportServicer) *BookHandler {
	return &BookHandler{ledger: ledger, query: query, export: export}
}

// CreateBookRequest represents the request payload for creating a book.
type CreateBookRequest struct {
	Name string `json:"name" binding:"required"`
}

// TransactionRequest represents one transaction in a create, update, or
// whole-book replace payload. The date defaults to the time of the request.
type TransactionRequest struct {
	ID          string     `json:"id"`
	Amount      float64    `json:"amount" binding:"required,gt=0"`
	Category    string     `json:"category" binding:"required"`
	Description string     `json:"description"`
	Date        *time.Time `json:"date"`
	Type        string     `json:"type" binding:"required,transaction_type"`
}

// UpdateBookRequest represents a whole-record replace of a book. The book's
// complete transaction list must be supplied; entries without an id are
// treated as new and assigned one.
type UpdateBookRequest struct {
	Name         string               `json:"name" binding:"required"`
	Transactions []TransactionRequest `json:"transactions" binding:"dive"`
}

func (r TransactionRequest) toModel(fallbackNow time.Time) models.Transaction {
	date := fallbackNow
	if r.Date != nil {
		date = *r.Date
	}
	id := r.ID
	if id == "" {
		id = uuid.New()
	}
	return models.Transaction{
		ID:          id,
		Amount:      r.Amount,
		Category:    r.Category,
		Description: r.Description,
		Date:        date,
		Type:        models.TransactionType(r.Type),
	}
}

// ListBooks returns all books, newest first.
func (h *BookHandler) ListBooks(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"books": h.ledger.ListBooks()})
}

// GetBook returns a single book by id.
func (h *BookHandler) GetBook(c *gin.Context) {
	book, err := h.ledger.GetBook(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"book": book})
}

// CreateBook creates a new, empty book.
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	book := h.ledger.CreateBook(req.Name)
	c.JSON(http.StatusCreated, gin.H{"book": book})
}

// UpdateBook replaces the book wholesale with the supplied record.
func (h *BookHandler) UpdateBook(c *gin.Context) {
	current, err := h.ledger.GetBook(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	now := time.Now()
	transactions := make([]models.Transaction, len(req.Transactions))
	for i, tr := range req.Transactions {
		transactions[i] = tr.toModel(now)
	}

	updated := models.Book{
		ID:           current.ID,
		Name:         req.Name,
		CreatedAt:    current.CreatedAt,
		Transactions: transactions,
	}
	h.ledger.UpdateBook(updated)
	c.JSON(http.StatusOK, gin.H{"book": updated})
}

// DeleteBook removes a book and all of its transactions. Deleting an
// already-deleted book succeeds, keeping the operation idempotent.
func (h *BookHandler) DeleteBook(c *gin.Context) {
	h.ledger.DeleteBook(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// CreateTransaction appends a transaction to a book. The ledger assigns
// the id and applies the append atomically, so concurrent creates against
// the same book cannot clobber each other.
func (h *BookHandler) CreateTransaction(c *gin.Context) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	tx, err := h.ledger.AddTransaction(c.Param("id"), req.toModel(time.Now()))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": tx})
}

// UpdateTransaction replaces a single transaction by id, keeping its id.
func (h *BookHandler) UpdateTransaction(c *gin.Context) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	req.ID = c.Param("txID")
	tx := req.toModel(time.Now())
	if err := h.ledger.ReplaceTransaction(c.Param("id"), tx); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": tx})
}

// DeleteTransaction removes a single transaction by id. Removing an absent
// transaction succeeds.
func (h *BookHandler) DeleteTransaction(c *gin.Context) {
	if err := h.ledger.RemoveTransaction(c.Param("id"), c.Param("txID")); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// TransactionQuery represents the filter query parameters.
type TransactionQuery struct {
	Time     string `form:"time" binding:"omitempty,filter_time"`
	Type     string `form:"type" binding:"omitempty,filter_type"`
	Category string `form:"category"`
	Search   string `form:"search"`
}

// QueryTransactions returns the filtered, date-sorted transaction view of a
// book with its aggregates and day grouping.
func (h *BookHandler) QueryTransactions(c *gin.Context) {
	book, err := h.ledger.GetBook(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	var q TransactionQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter := models.NewFilterSpec()
	if q.Time != "" {
		filter.Time = models.FilterTime(q.Time)
	}
	if q.Type != "" {
		filter.Type = models.FilterType(q.Type)
	}
	if q.Category != "" {
		filter.Category = q.Category
	}
	filter.Search = q.Search

	result := h.query.QueryTransactions(*book, filter, time.Now())
	c.JSON(http.StatusOK, result)
}

// ExportBook renders the whole book as a CSV download.
func (h *BookHandler) ExportBook(c *gin.Context) {
	book, err := h.ledger.GetBook(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	doc := h.export.ExportBook(*book)
	c.Header("Content-Disposition", `attachment; filename="`+doc.Filename+`"`)
	c.Data(http.StatusOK, services.ContentType, []byte(doc.Content))
}
