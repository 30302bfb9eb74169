package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/authors-api/internal/domain"
	"github.com/phrazzld/authors-api/internal/platform/logger"
	"github.com/phrazzld/authors-api/internal/store"
)

// AuthorService provides the list/get/create/update/delete operations of
// the author resource.
type AuthorService interface {
	// List returns all authors. The result is never nil.
	List(ctx context.Context) ([]*domain.Author, error)

	// Get returns the author with the given ID or store.ErrAuthorNotFound.
	Get(ctx context.Context, id int64) (*domain.Author, error)

	// Create validates and stores a new author, returning it with its
	// assigned ID. Invalid names yield an error matching domain.ErrValidation.
	Create(ctx context.Context, firstName, lastName string) (*domain.Author, error)

	// Update replaces both names of an existing author. The ID never
	// changes. Returns store.ErrAuthorNotFound if the author does not exist.
	Update(ctx context.Context, id int64, firstName, lastName string) (*domain.Author, error)

	// Delete removes an author and returns the removed record.
	// Returns store.ErrAuthorNotFound if the author does not exist.
	Delete(ctx context.Context, id int64) (*domain.Author, error)

	// Count returns the number of stored authors.
	Count(ctx context.Context) (int, error)
}

// authorServiceImpl implements the AuthorService interface
type authorServiceImpl struct {
	authors store.AuthorStore
	db      *sql.DB
	logger  *slog.Logger
}

// NewAuthorService creates a new AuthorService.
// db is optional: when set, read-modify-write operations run inside a
// database transaction; when nil (the in-memory store) they run directly.
func NewAuthorService(authors store.AuthorStore, db *sql.DB, logger *slog.Logger) (AuthorService, error) {
	if authors == nil {
		return nil, fmt.Errorf("%w: author store cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &authorServiceImpl{
		authors: authors,
		db:      db,
		logger:  logger.With(slog.String("component", "author_service")),
	}, nil
}

// List implements AuthorService.List
func (s *authorServiceImpl) List(ctx context.Context) ([]*domain.Author, error) {
	authors, err := s.authors.List(ctx)
	if err != nil {
		return nil, NewAuthorServiceError("list", "failed to list authors", err)
	}
	if authors == nil {
		authors = []*domain.Author{}
	}
	return authors, nil
}

// Get implements AuthorService.Get
func (s *authorServiceImpl) Get(ctx context.Context, id int64) (*domain.Author, error) {
	author, err := s.authors.GetByID(ctx, id)
	if err != nil {
		return nil, s.wrapError(ctx, "get", id, err)
	}
	return author, nil
}

// Create implements AuthorService.Create
func (s *authorServiceImpl) Create(ctx context.Context, firstName, lastName string) (*domain.Author, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	author, err := domain.NewAuthor(firstName, lastName)
	if err != nil {
		log.Debug("invalid author data", slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.authors.Create(ctx, author); err != nil {
		return nil, NewAuthorServiceError("create", "failed to store author", err)
	}

	log.Info("author created", slog.Int64("author_id", author.ID))
	return author, nil
}

// Update implements AuthorService.Update
func (s *authorServiceImpl) Update(
	ctx context.Context,
	id int64,
	firstName, lastName string,
) (*domain.Author, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var updated *domain.Author
	err := s.inTx(ctx, func(ctx context.Context, authors store.AuthorStore) error {
		author, err := authors.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if err := author.Rename(firstName, lastName); err != nil {
			return err
		}

		if err := authors.Update(ctx, author); err != nil {
			return err
		}

		updated = author
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return nil, err
		}
		return nil, s.wrapError(ctx, "update", id, err)
	}

	log.Info("author updated", slog.Int64("author_id", id))
	return updated, nil
}

// Delete implements AuthorService.Delete
func (s *authorServiceImpl) Delete(ctx context.Context, id int64) (*domain.Author, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	author, err := s.authors.Delete(ctx, id)
	if err != nil {
		return nil, s.wrapError(ctx, "delete", id, err)
	}

	log.Info("author deleted", slog.Int64("author_id", id))
	return author, nil
}

// Count implements AuthorService.Count
func (s *authorServiceImpl) Count(ctx context.Context) (int, error) {
	count, err := s.authors.Count(ctx)
	if err != nil {
		return 0, NewAuthorServiceError("count", "failed to count authors", err)
	}
	return count, nil
}

// inTx runs fn against a transactional store when a database is
// configured, and against the plain store otherwise.
func (s *authorServiceImpl) inTx(
	ctx context.Context,
	fn func(ctx context.Context, authors store.AuthorStore) error,
) error {
	if s.db == nil {
		return fn(ctx, s.authors)
	}

	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return fn(ctx, s.authors.WithTx(tx))
	})
}

// wrapError passes not-found errors through unchanged and wraps the rest
// in an AuthorServiceError after logging them.
func (s *authorServiceImpl) wrapError(ctx context.Context, operation string, id int64, err error) error {
	if store.IsNotFoundError(err) {
		return err
	}

	logger.FromContextOrDefault(ctx, s.logger).Error("author operation failed",
		slog.String("operation", operation),
		slog.Int64("author_id", id),
		slog.String("error", err.Error()))
	return NewAuthorServiceError(operation, "failed to "+operation+" author", err)
}
