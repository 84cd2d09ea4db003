package services

import (
	"sort"
	"strings"
	"time"

	"kanakubook/internal/models"
)

// dayGroupLayout is the label format for date-grouped views,
// e.g. "Mon, 02 Oct 2024".
const dayGroupLayout = "Mon, 02 Jan 2006"

// Totals are the aggregates over a filtered transaction set. They reflect
// the retained set, not the whole book.
type Totals struct {
	TotalIn  float64 `json:"totalIn"`
	TotalOut float64 `json:"totalOut"`
	Balance  float64 `json:"balance"`
}

// DayGroup is one calendar day of transactions, newest day first in the
// enclosing result.
type DayGroup struct {
	Label        string               `json:"label"`
	Transactions []models.Transaction `json:"transactions"`
}

// QueryResult is the filtered, date-sorted view of a book together with its
// aggregates and a per-day grouping for display.
type QueryResult struct {
	Transactions []models.Transaction `json:"transactions"`
	Groups       []DayGroup           `json:"groups"`
	Totals       Totals               `json:"totals"`
}

type queryService struct{}

// NewQueryService creates a new QueryServicer.
func NewQueryService() QueryServicer {
	return &queryService{}
}

// QueryTransactions is a pure function of (book snapshot, filter, now): it
// sorts the book's transactions descending by date, retains those matching
// every filter predicate, and derives totals and a day-grouped view.
// Transactions sharing a timestamp keep their original relative order.
func (q *queryService) QueryTransactions(book models.Book, filter models.FilterSpec, now time.Time) QueryResult {
	sorted := make([]models.Transaction, len(book.Transactions))
	copy(sorted, book.Transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	retained := make([]models.Transaction, 0, len(sorted))
	for _, tx := range sorted {
		if matches(tx, filter, now) {
			retained = append(retained, tx)
		}
	}

	var totals Totals
	for _, tx := range retained {
		if tx.Type == models.TransactionTypeIn {
			totals.TotalIn += tx.Amount
		} else {
			totals.TotalOut += tx.Amount
		}
	}
	totals.Balance = totals.TotalIn - totals.TotalOut

	return QueryResult{
		Transactions: retained,
		Groups:       groupByDay(retained, now.Location()),
		Totals:       totals,
	}
}

func matches(tx models.Transaction, filter models.FilterSpec, now time.Time) bool {
	return matchesTime(tx, filter.Time, now) &&
		matchesType(tx, filter.Type) &&
		matchesCategory(tx, filter.Category) &&
		matchesSearch(tx, filter.Search)
}

func matchesTime(tx models.Transaction, window models.FilterTime, now time.Time) bool {
	date := tx.Date.In(now.Location())
	switch window {
	case models.FilterTimeToday:
		return date.Year() == now.Year() && date.YearDay() == now.YearDay()
	case models.FilterTimeThisMonth:
		return date.Year() == now.Year() && date.Month() == now.Month()
	default:
		return true
	}
}

func matchesType(tx models.Transaction, filterType models.FilterType) bool {
	if filterType == models.FilterTypeAll {
		return true
	}
	return string(tx.Type) == string(filterType)
}

func matchesCategory(tx models.Transaction, category string) bool {
	if category == "" || category == models.FilterCategoryAll {
		return true
	}
	return tx.Category == category
}

func matchesSearch(tx models.Transaction, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(tx.Category), needle) ||
		strings.Contains(strings.ToLower(tx.Description), needle)
}

// groupByDay buckets the retained transactions by calendar day, preserving
// the descending date order of both groups and members.
func groupByDay(transactions []models.Transaction, loc *time.Location) []DayGroup {
	groups := make([]DayGroup, 0)
	index := make(map[string]int)
	for _, tx := range transactions {
		label := tx.Date.In(loc).Format(dayGroupLayout)
		i, seen := index[label]
		if !seen {
			i = len(groups)
			index[label] = i
			groups = append(groups, DayGroup{Label: label})
		}
		groups[i].Transactions = append(groups[i].Transactions, tx)
	}
	return groups
}
