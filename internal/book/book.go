package book

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrValidation is the class of all client input errors.
	ErrValidation = errors.New("validation failed")
	// ErrMissingName is returned when a book is submitted without a name.
	ErrMissingName = validationError("missing name")
	// ErrReadPageExceedsPageCount is returned when readPage violates the page count bound.
	ErrReadPageExceedsPageCount = validationError("readPage exceeds pageCount")
	// ErrNotFound is returned when a book is not found.
	ErrNotFound = errors.New("book not found")
	// ErrInsertionNotVerified is returned when a created book cannot be read back.
	ErrInsertionNotVerified = errors.New("book insertion could not be verified")
)

func validationError(msg string) error {
	return &wrappedError{msg: msg, cause: ErrValidation}
}

type wrappedError struct {
	msg   string
	cause error
}

func (e *wrappedError) Error() string { return e.msg }
func (e *wrappedError) Unwrap() error { return e.cause }

// Book represents a book and the reader's progress through it.
type Book struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Year       int       `json:"year"`
	Author     string    `json:"author"`
	Summary    string    `json:"summary"`
	Publisher  string    `json:"publisher"`
	PageCount  int       `json:"pageCount"`
	ReadPage   int       `json:"readPage"`
	Finished   bool      `json:"finished"`
	Reading    bool      `json:"reading"`
	InsertedAt time.Time `json:"insertedAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Input holds the client-supplied fields of a book.
type Input struct {
	Name      string `json:"name"`
	Year      int    `json:"year"`
	Author    string `json:"author"`
	Summary   string `json:"summary"`
	Publisher string `json:"publisher"`
	PageCount int    `json:"pageCount"`
	ReadPage  int    `json:"readPage"`
	Reading   bool   `json:"reading"`
}

// apply copies the mutable fields of in onto b and re-derives Finished.
func (b *Book) apply(in Input) {
	b.Name = in.Name
	b.Year = in.Year
	b.Author = in.Author
	b.Summary = in.Summary
	b.Publisher = in.Publisher
	b.PageCount = in.PageCount
	b.ReadPage = in.ReadPage
	b.Reading = in.Reading
	b.Finished = in.ReadPage == in.PageCount
}

// Summary is the list projection of a book.
type Summary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Publisher string `json:"publisher"`
}

// Filter selects books for listing. Nil and empty fields match everything.
type Filter struct {
	Name     string
	Reading  *bool
	Finished *bool
}

// Match reports whether b satisfies every set field of f.
func (f Filter) Match(b Book) bool {
	if f.Name != "" && !strings.Contains(strings.ToLower(b.Name), strings.ToLower(f.Name)) {
		return false
	}
	if f.Reading != nil && b.Reading != *f.Reading {
		return false
	}
	if f.Finished != nil && b.Finished != *f.Finished {
		return false
	}
	return true
}
