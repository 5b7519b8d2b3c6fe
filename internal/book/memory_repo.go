package book

import (
	"context"
	"errors"
	"slices"
	"sync"
)

// ErrDuplicateID is returned when a book is created with an ID that is already stored.
var ErrDuplicateID = errors.New("book id already exists")

// MemoryRepository is an in-memory Repository. Books are listed in insertion order.
type MemoryRepository struct {
	mu    sync.RWMutex
	books map[string]Book
	order []string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{books: make(map[string]Book)}
}

func (r *MemoryRepository) Create(_ context.Context, b Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.books[b.ID]; exists {
		return ErrDuplicateID
	}
	r.books[b.ID] = b
	r.order = append(r.order, b.ID)
	return nil
}

func (r *MemoryRepository) List(_ context.Context, f Filter) ([]Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Book, 0, len(r.order))
	for _, id := range r.order {
		if b := r.books[id]; f.Match(b) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *MemoryRepository) Get(_ context.Context, id string) (Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.books[id]
	if !ok {
		return Book{}, ErrNotFound
	}
	return b, nil
}

func (r *MemoryRepository) Update(_ context.Context, id string, b Book) (Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.books[id]
	if !ok {
		return Book{}, ErrNotFound
	}
	b.ID = existing.ID
	b.InsertedAt = existing.InsertedAt
	r.books[id] = b
	return b, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.books[id]; !ok {
		return ErrNotFound
	}
	delete(r.books, id)
	r.order = slices.DeleteFunc(r.order, func(v string) bool { return v == id })
	return nil
}

// Len returns the number of stored books.
func (r *MemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.books)
}
