// Package memory provides an in-memory implementation of store.AuthorStore.
// It backs the server when no database is configured and is the store used
// by service and handler tests.
package memory

import (
	"context"
	"database/sql"
	"sort"
	"sync"

	"github.com/phrazzld/authors-api/internal/domain"
	"github.com/phrazzld/authors-api/internal/store"
)

// AuthorStore keeps authors in a map guarded by a RWMutex. IDs come from
// a counter that only grows, so deleted IDs are never handed out again.
type AuthorStore struct {
	mu      sync.RWMutex
	authors map[int64]domain.Author
	lastID  int64
}

// NewAuthorStore creates an empty in-memory author store.
func NewAuthorStore() *AuthorStore {
	return &AuthorStore{
		authors: make(map[int64]domain.Author),
	}
}

var _ store.AuthorStore = (*AuthorStore)(nil)

// List implements store.AuthorStore.List
func (s *AuthorStore) List(ctx context.Context) ([]*domain.Author, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	authors := make([]*domain.Author, 0, len(s.authors))
	for _, a := range s.authors {
		author := a
		authors = append(authors, &author)
	}
	sort.Slice(authors, func(i, j int) bool { return authors[i].ID < authors[j].ID })

	return authors, nil
}

// GetByID implements store.AuthorStore.GetByID
func (s *AuthorStore) GetByID(ctx context.Context, id int64) (*domain.Author, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	author, ok := s.authors[id]
	if !ok {
		return nil, store.ErrAuthorNotFound
	}
	return &author, nil
}

// Create implements store.AuthorStore.Create
func (s *AuthorStore) Create(ctx context.Context, author *domain.Author) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := author.Validate(); err != nil {
		return store.NewStoreError("author", "create", err.Error(), store.ErrInvalidEntity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	author.ID = s.lastID
	s.authors[author.ID] = *author
	return nil
}

// Update implements store.AuthorStore.Update
func (s *AuthorStore) Update(ctx context.Context, author *domain.Author) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := author.Validate(); err != nil {
		return store.NewStoreError("author", "update", err.Error(), store.ErrInvalidEntity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.authors[author.ID]; !ok {
		return store.ErrAuthorNotFound
	}
	s.authors[author.ID] = *author
	return nil
}

// Delete implements store.AuthorStore.Delete
func (s *AuthorStore) Delete(ctx context.Context, id int64) (*domain.Author, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	author, ok := s.authors[id]
	if !ok {
		return nil, store.ErrAuthorNotFound
	}
	delete(s.authors, id)
	return &author, nil
}

// Count implements store.AuthorStore.Count
func (s *AuthorStore) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.authors), nil
}

// WithTx returns the store itself; single operations are already atomic
// under the mutex.
func (s *AuthorStore) WithTx(*sql.Tx) store.AuthorStore {
	return s
}
