package services

import (
	"fmt"
	"regexp"
	"strings"

	"kanakubook/internal/models"
)

// Document is a rendered export: the suggested download filename and the
// delimited text content.
type Document struct {
	Filename string
	Content  string
}

// ContentType is the MIME type of exported documents.
const ContentType = "text/csv"

var exportHeaders = []string{"Date", "Time", "Type", "Category", "Description", "Amount"}

var whitespaceRun = regexp.MustCompile(`\s+`)

type exportService struct{}

// NewExportService creates a new ExportServicer.
func NewExportService() ExportServicer {
	return &exportService{}
}

// ExportBook renders the whole book, unfiltered, one row per transaction in
// its natural stored order. Category and description are quoted to tolerate
// embedded commas; embedded quote characters are not escaped, which is a
// known limitation of the format.
func (e *exportService) ExportBook(book models.Book) Document {
	lines := make([]string, 0, len(book.Transactions)+1)
	lines = append(lines, strings.Join(exportHeaders, ","))

	for _, tx := range book.Transactions {
		row := []string{
			tx.Date.Format("02/01/2006"),
			tx.Date.Format("15:04:05"),
			string(tx.Type),
			`"` + tx.Category + `"`,
			`"` + tx.Description + `"`,
			fmt.Sprintf("%.2f", tx.Amount),
		}
		lines = append(lines, strings.Join(row, ","))
	}

	return Document{
		Filename: ExportFilename(book.Name),
		Content:  strings.Join(lines, "\n"),
	}
}

// ExportFilename derives the suggested download name from a book name,
// replacing whitespace runs with underscores.
func ExportFilename(bookName string) string {
	return whitespaceRun.ReplaceAllString(bookName, "_") + "_Report.csv"
}
