package models

// CategoryScope constrains which transaction types a category is meant for.
// The scope is advisory: transactions reference categories by name and the
// engine never rejects a transaction whose type falls outside the scope.
type CategoryScope string

const (
	CategoryScopeIn   CategoryScope = "IN"
	CategoryScopeOut  CategoryScope = "OUT"
	CategoryScopeBoth CategoryScope = "BOTH"
)

// Category is a user-facing label classifying transactions.
// Names are unique case-insensitively within the collection.
type Category struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	AppliesTo CategoryScope `json:"appliesTo"`
}
