package book

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// IDLength is the length of generated book IDs.
const IDLength = 16

// createRules rejects a read page that reaches the page count.
type createRules struct {
	Name      string `validate:"required"`
	PageCount int
	ReadPage  int `validate:"ltfield=PageCount"`
}

// updateRules only rejects a read page past the page count.
type updateRules struct {
	Name      string `validate:"required"`
	PageCount int
	ReadPage  int `validate:"ltefield=PageCount"`
}

// Service provides the book store operations.
type Service struct {
	repo     Repository
	validate *validator.Validate
	now      func() time.Time
	newID    func() (string, error)
}

// Option customizes a Service.
type Option func(*Service)

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator overrides how book IDs are generated.
func WithIDGenerator(newID func() (string, error)) Option {
	return func(s *Service) { s.newID = newID }
}

// NewService creates a new book service.
func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo:     repo,
		validate: validator.New(),
		now:      func() time.Time { return time.Now().UTC() },
		newID:    func() (string, error) { return gonanoid.New(IDLength) },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create stores a new book and returns its ID.
func (s *Service) Create(ctx context.Context, in Input) (string, error) {
	err := s.check(createRules{Name: in.Name, PageCount: in.PageCount, ReadPage: in.ReadPage})
	if err != nil {
		return "", err
	}

	id, err := s.newID()
	if err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	now := s.now()
	b := Book{ID: id, InsertedAt: now, UpdatedAt: now}
	b.apply(in)

	if err := s.repo.Create(ctx, b); err != nil {
		return "", fmt.Errorf("create book: %w", err)
	}

	if _, err := s.repo.Get(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", ErrInsertionNotVerified
		}
		return "", fmt.Errorf("verify book: %w", err)
	}
	return id, nil
}

// List returns the summaries of all books matching f.
func (s *Service) List(ctx context.Context, f Filter) ([]Summary, error) {
	books, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	out := make([]Summary, 0, len(books))
	for _, b := range books {
		out = append(out, Summary{ID: b.ID, Name: b.Name, Publisher: b.Publisher})
	}
	return out, nil
}

// Get returns the book with the given ID.
func (s *Service) Get(ctx context.Context, id string) (Book, error) {
	return s.repo.Get(ctx, id)
}

// Update replaces the mutable fields of the book with the given ID.
func (s *Service) Update(ctx context.Context, id string, in Input) (Book, error) {
	err := s.check(updateRules{Name: in.Name, PageCount: in.PageCount, ReadPage: in.ReadPage})
	if err != nil {
		return Book{}, err
	}

	b := Book{UpdatedAt: s.now()}
	b.apply(in)
	return s.repo.Update(ctx, id, b)
}

// Delete removes the book with the given ID.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// check reports the missing name before any page count violation.
func (s *Service) check(rules any) error {
	err := s.validate.Struct(rules)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate book: %w", err)
	}
	for _, fe := range fieldErrs {
		if fe.Field() == "Name" {
			return ErrMissingName
		}
	}
	return ErrReadPageExceedsPageCount
}
