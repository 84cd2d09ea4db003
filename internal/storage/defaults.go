package storage

import "kanakubook/internal/models"

// DefaultCategories returns the fixed starter vocabulary used when no
// category data has been persisted yet. Callers receive a fresh slice.
func DefaultCategories() []models.Category {
	return []models.Category{
		{ID: "1", Name: "Food", AppliesTo: models.CategoryScopeOut},
		{ID: "2", Name: "Transport", AppliesTo: models.CategoryScopeOut},
		{ID: "3", Name: "Salary", AppliesTo: models.CategoryScopeIn},
		{ID: "4", Name: "Shopping", AppliesTo: models.CategoryScopeOut},
		{ID: "5", Name: "Entertainment", AppliesTo: models.CategoryScopeOut},
		{ID: "6", Name: "Health", AppliesTo: models.CategoryScopeOut},
		{ID: "7", Name: "Business", AppliesTo: models.CategoryScopeIn},
		{ID: "8", Name: "Loan", AppliesTo: models.CategoryScopeBoth},
		{ID: "9", Name: "Rent", AppliesTo: models.CategoryScopeOut},
		{ID: "10", Name: "Other", AppliesTo: models.CategoryScopeBoth},
	}
}
