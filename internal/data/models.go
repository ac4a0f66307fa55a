package data

import (
	"slices"
	"strings"
	"sync"
	"time"

	domainerrors "github.com/mizzcode/bookshelf-api/internal/errors"
	"github.com/mizzcode/bookshelf-api/internal/id"
	"github.com/mizzcode/bookshelf-api/internal/validator"
)

// Models is a top-level container that groups all model types together.
// It is passed around the application via applicationDependencies.
type Models struct {
	Books *BookModel
}

// NewModels constructs a Models value with an empty book store.
func NewModels(opts ...Option) Models {
	return Models{
		Books: NewBookModel(opts...),
	}
}

// Errors returned by the book store.
var (
	ErrBookNotFound = domainerrors.NotFound("book not found")
	ErrIDNotFound   = domainerrors.NotFound("id not found")
)

// maxIDAttempts bounds retries when a generated id collides with a live one.
const maxIDAttempts = 3

// Option configures a BookModel.
type Option func(*BookModel)

// WithClock sets the time source used for insertedAt and updatedAt.
func WithClock(now func() time.Time) Option {
	return func(m *BookModel) { m.now = now }
}

// WithIDGenerator sets the function used to generate new book ids.
func WithIDGenerator(gen func() (string, error)) Option {
	return func(m *BookModel) { m.newID = gen }
}

// BookModel owns the ordered sequence of book records. Every operation holds
// mu for its whole duration, so each one applies fully or not at all.
type BookModel struct {
	mu    sync.Mutex
	books []Book

	now   func() time.Time
	newID func() (string, error)
}

// NewBookModel returns an empty store.
func NewBookModel(opts ...Option) *BookModel {
	m := &BookModel{
		now:   func() time.Time { return time.Now().UTC() },
		newID: id.Generate,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Insert validates input, appends a new record and returns its id.
func (m *BookModel) Insert(input BookInput) (string, error) {
	if err := validateInput(input); err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	bookID, err := m.uniqueID()
	if err != nil {
		return "", err
	}

	now := m.now()
	book := Book{
		ID:         bookID,
		Finished:   input.ReadPage == input.PageCount,
		InsertedAt: now,
		UpdatedAt:  now,
	}
	book.apply(input)

	m.books = append(m.books, book)
	return bookID, nil
}

// GetAll returns the summaries of every record matching filters, in
// insertion order. The result is never nil.
func (m *BookModel) GetAll(filters Filters) []BookSummary {
	m.mu.Lock()
	defer m.mu.Unlock()

	match := filters.matcher()
	summaries := []BookSummary{}
	for i := range m.books {
		if match(&m.books[i]) {
			summaries = append(summaries, m.books[i].summary())
		}
	}
	return summaries
}

// Get returns a copy of the record with the given id.
// Returns ErrBookNotFound if no such record exists.
func (m *BookModel) Get(bookID string) (*Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(bookID)
	if i == -1 {
		return nil, ErrBookNotFound
	}
	book := m.books[i]
	return &book, nil
}

// Update replaces every field except id and insertedAt and refreshes
// updatedAt. finished keeps the value computed at creation.
// Validation runs before the lookup, so an invalid payload for an unknown id
// is a validation error. Returns ErrIDNotFound if no such record exists.
func (m *BookModel) Update(bookID string, input BookInput) error {
	if err := validateInput(input); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(bookID)
	if i == -1 {
		return ErrIDNotFound
	}

	m.books[i].apply(input)
	m.books[i].UpdatedAt = m.now()
	return nil
}

// Delete removes the record with the given id, keeping the order of the rest.
// Returns ErrIDNotFound if no such record exists.
func (m *BookModel) Delete(bookID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(bookID)
	if i == -1 {
		return ErrIDNotFound
	}

	m.books = slices.Delete(m.books, i, i+1)
	return nil
}

// Len returns the number of live records.
func (m *BookModel) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.books)
}

// indexOf must be called with mu held.
func (m *BookModel) indexOf(bookID string) int {
	return slices.IndexFunc(m.books, func(b Book) bool { return b.ID == bookID })
}

// uniqueID must be called with mu held.
func (m *BookModel) uniqueID() (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		bookID, err := m.newID()
		if err != nil {
			return "", domainerrors.Wrap(err, domainerrors.CodeInternal, "generate book id")
		}
		if m.indexOf(bookID) == -1 {
			return bookID, nil
		}
	}
	return "", domainerrors.Internal("generate book id: too many collisions")
}

func validateInput(input BookInput) error {
	v := validator.New()
	ValidateBook(v, input)
	if _, msg, failed := v.First(); failed {
		return domainerrors.Validation(msg)
	}
	return nil
}

// matcher returns the predicate for the highest-priority filter that is set.
func (f Filters) matcher() func(*Book) bool {
	switch {
	case f.Name != nil:
		query := strings.ToLower(*f.Name)
		return func(b *Book) bool { return strings.Contains(strings.ToLower(b.Name), query) }
	case f.Reading != nil:
		reading := *f.Reading
		return func(b *Book) bool { return b.Reading == reading }
	case f.Finished != nil:
		finished := *f.Finished
		return func(b *Book) bool { return b.Finished == finished }
	default:
		return func(*Book) bool { return true }
	}
}
