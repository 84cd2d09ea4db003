package services

import (
	"strings"
	"testing"
	"time"

	"kanakubook/internal/models"
	"kanakubook/internal/testutil"
)

func TestExportBook(t *testing.T) {
	export := NewExportService()

	t.Run("quotes fields and renders amount with two decimals", func(t *testing.T) {
		tx := testutil.MakeTransaction(45.5, "Food", models.TransactionTypeOut,
			time.Date(2024, 10, 15, 13, 45, 10, 0, time.UTC))
		tx.Description = "lunch, fries"
		book := testutil.MakeBook("Oct 2024", tx)

		doc := export.ExportBook(book)
		lines := strings.Split(doc.Content, "\n")
		if len(lines) != 2 {
			t.Fatalf("expected header plus one row, got %d lines", len(lines))
		}
		if lines[0] != "Date,Time,Type,Category,Description,Amount" {
			t.Errorf("unexpected header: %q", lines[0])
		}
		if lines[1] != `15/10/2024,13:45:10,OUT,"Food","lunch, fries",45.50` {
			t.Errorf("unexpected row: %q", lines[1])
		}
	})

	t.Run("exports the whole book in natural stored order", func(t *testing.T) {
		older := testutil.MakeTransaction(1, "Food", models.TransactionTypeOut,
			time.Date(2024, 10, 1, 8, 0, 0, 0, time.UTC))
		newer := testutil.MakeTransaction(2, "Rent", models.TransactionTypeOut,
			time.Date(2024, 10, 10, 8, 0, 0, 0, time.UTC))
		// Stored newest-first on purpose: export must not re-sort.
		book := testutil.MakeBook("Oct 2024", newer, older)

		doc := export.ExportBook(book)
		lines := strings.Split(doc.Content, "\n")
		if len(lines) != 3 {
			t.Fatalf("expected 3 lines, got %d", len(lines))
		}
		if !strings.Contains(lines[1], `"Rent"`) || !strings.Contains(lines[2], `"Food"`) {
			t.Errorf("expected stored order preserved, got %q then %q", lines[1], lines[2])
		}
	})

	t.Run("empty book exports only the header", func(t *testing.T) {
		doc := export.ExportBook(testutil.MakeBook("empty"))
		if doc.Content != "Date,Time,Type,Category,Description,Amount" {
			t.Errorf("expected bare header, got %q", doc.Content)
		}
	})
}

func TestExportFilename(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Oct 2024", "Oct_2024_Report.csv"},
		{"My  Trip   Budget", "My_Trip_Budget_Report.csv"},
		{"Household", "Household_Report.csv"},
		{"tabs\tand\nnewlines", "tabs_and_newlines_Report.csv"},
	}
	for _, tc := range cases {
		if got := ExportFilename(tc.name); got != tc.want {
			t.Errorf("ExportFilename(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}
