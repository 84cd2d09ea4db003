package models

// FilterTime selects the time window of a query.
type FilterTime string

const (
	FilterTimeAll       FilterTime = "ALL"
	FilterTimeToday     FilterTime = "TODAY"
	FilterTimeThisMonth FilterTime = "THIS_MONTH"
)

// FilterType selects the transaction direction of a query.
type FilterType string

const (
	FilterTypeAll FilterType = "ALL"
	FilterTypeIn  FilterType = "IN"
	FilterTypeOut FilterType = "OUT"
)

// FilterCategoryAll matches every category.
const FilterCategoryAll = "ALL"

// FilterSpec is a read-only query over a book's transactions. A transaction
// is retained only if it matches every predicate.
type FilterSpec struct {
	Time     FilterTime
	Type     FilterType
	Category string
	Search   string
}

// NewFilterSpec returns a FilterSpec that matches all transactions.
func NewFilterSpec() FilterSpec {
	return FilterSpec{
		Time:     FilterTimeAll,
		Type:     FilterTypeAll,
		Category: FilterCategoryAll,
	}
}
