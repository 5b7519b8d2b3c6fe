package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository_test.go -package=book

// Repository defines the contract for book storage.
type Repository interface {
	Create(ctx context.Context, b Book) error
	List(ctx context.Context, f Filter) ([]Book, error)
	Get(ctx context.Context, id string) (Book, error)
	// Update replaces the mutable fields of the stored book, keeping its ID and InsertedAt.
	Update(ctx context.Context, id string, b Book) (Book, error)
	Delete(ctx context.Context, id string) error
}
