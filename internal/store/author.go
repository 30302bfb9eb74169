package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/authors-api/internal/domain"
)

// AuthorStore defines the interface for author data persistence.
type AuthorStore interface {
	// List returns every stored author ordered by ID.
	// Returns an empty, non-nil slice when there are none.
	List(ctx context.Context) ([]*domain.Author, error)

	// GetByID retrieves an author by its ID.
	// Returns ErrAuthorNotFound if the author does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Author, error)

	// Create stores a new author and sets author.ID to the ID assigned
	// by the store. IDs are never reused.
	Create(ctx context.Context, author *domain.Author) error

	// Update overwrites the first and last name of the author with
	// author.ID. Returns ErrAuthorNotFound if the author does not exist,
	// in which case nothing is written.
	Update(ctx context.Context, author *domain.Author) error

	// Delete removes the author with the given ID and returns the row as
	// it was before removal.
	// Returns ErrAuthorNotFound if the author does not exist.
	Delete(ctx context.Context, id int64) (*domain.Author, error)

	// Count returns the number of stored authors.
	Count(ctx context.Context) (int, error)

	// WithTx returns an AuthorStore that runs its queries on tx.
	// Implementations without transactions may return themselves.
	WithTx(tx *sql.Tx) AuthorStore
}
