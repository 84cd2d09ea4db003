package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "kanakubook/internal/errors"
	"kanakubook/internal/services"
)

// CategoryHandler handles category-related requests.
type CategoryHandler struct {
	ledger services.LedgerServicer
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(ledger services.LedgerServicer) *CategoryHandler {
	return &CategoryHandler{ledger: ledger}
}

// AddCategoryRequest represents the request payload for adding a category.
type AddCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// ListCategories returns the full category collection.
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.ledger.ListCategories()})
}

// AddCategory creates a user-defined category. The ledger treats a
// case-insensitive duplicate as a no-op; the boundary reports it as a
// conflict so clients get feedback.
func (h *CategoryHandler) AddCategory(c *gin.Context) {
	var req AddCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	category, ok := h.ledger.AddCategory(req.Name)
	if !ok {
		respondWithError(c, apperrors.ErrDuplicateCategory)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"category": category})
}
