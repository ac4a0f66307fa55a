// Package data provides the book record model and the in-memory store
// that owns every record.
package data

import (
	"time"

	"github.com/mizzcode/bookshelf-api/internal/validator"
)

// Book represents a single book record held by the store.
type Book struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Year       int       `json:"year"`
	Author     string    `json:"author"`
	Summary    string    `json:"summary"`
	Publisher  string    `json:"publisher"`
	PageCount  int       `json:"pageCount"`
	ReadPage   int       `json:"readPage"`
	Finished   bool      `json:"finished"` // readPage == pageCount when the record was created
	Reading    bool      `json:"reading"`
	InsertedAt time.Time `json:"insertedAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// BookSummary is the projection of a Book returned by list queries.
type BookSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Publisher string `json:"publisher"`
}

// BookInput holds the client-supplied fields for both create and update.
// Name is a pointer so an absent name can be told apart from a present one.
// ReadPage is declared before PageCount so its cross-field rule is reported
// before the sign check on PageCount.
type BookInput struct {
	Name      *string `json:"name"      validate:"required,min=1"`
	Year      int     `json:"year"`
	Author    string  `json:"author"`
	Summary   string  `json:"summary"`
	Publisher string  `json:"publisher"`
	ReadPage  int     `json:"readPage"  validate:"ltefield=PageCount,gte=0"`
	PageCount int     `json:"pageCount" validate:"gte=0"`
	Reading   bool    `json:"reading"`
}

// Validation messages reported by the store.
const (
	MsgMissingName          = "missing name"
	MsgReadPageExceedsCount = "readPage exceeds pageCount"
	MsgNegativePageCount    = "pageCount must not be negative"
	MsgNegativeReadPage     = "readPage must not be negative"
)

var bookMessages = map[string]string{
	"name.required":     MsgMissingName,
	"name.min":          MsgMissingName,
	"readPage.ltefield": MsgReadPageExceedsCount,
	"readPage.gte":      MsgNegativeReadPage,
	"pageCount.gte":     MsgNegativePageCount,
}

// ValidateBook checks input in order: name present, readPage not above
// pageCount, then non-negative page counts.
func ValidateBook(v *validator.Validator, input BookInput) {
	v.Struct(input, bookMessages)
}

// Filters selects which records a list query returns. At most one filter
// applies; Name wins over Reading, which wins over Finished.
type Filters struct {
	Name     *string
	Reading  *bool
	Finished *bool
}

// summary projects b onto the fields returned by list queries.
func (b *Book) summary() BookSummary {
	return BookSummary{ID: b.ID, Name: b.Name, Publisher: b.Publisher}
}

// apply overwrites every client-editable field of b with input.
func (b *Book) apply(input BookInput) {
	b.Name = *input.Name
	b.Year = input.Year
	b.Author = input.Author
	b.Summary = input.Summary
	b.Publisher = input.Publisher
	b.PageCount = input.PageCount
	b.ReadPage = input.ReadPage
	b.Reading = input.Reading
}
