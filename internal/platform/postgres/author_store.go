package postgres

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

const (
	listAuthorsQuery  = `SELECT id, first_name, last_name FROM authors ORDER BY id`
	getAuthorQuery    = `SELECT id, first_name, last_name FROM authors WHERE id = $1`
	countAuthorsQuery = `SELECT COUNT(*) FROM authors`
	insertAuthorQuery = `INSERT INTO authors (first_name, last_name) VALUES ($1, $2) RETURNING id`
	updateAuthorQuery = `UPDATE authors SET first_name = $1, last_name = $2, updated_at = NOW() WHERE id = $3`
	deleteAuthorQuery = `DELETE FROM authors WHERE id = $1 RETURNING id, first_name, last_name`
)

// PostgresAuthorStore implements the store.AuthorStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAuthorStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAuthorStore creates a new PostgreSQL implementation of the AuthorStore interface.
// It accepts a database connection or transaction that is managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresAuthorStore(db store.DBTX, logger *slog.Logger) *PostgresAuthorStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAuthorStore{
		db:     db,
		logger: logger.With(slog.String("component", "author_store")),
	}
}

// Ensure PostgresAuthorStore implements store.AuthorStore interface
var _ store.AuthorStore = (*PostgresAuthorStore)(nil)

// List implements store.AuthorStore.List
func (s *PostgresAuthorStore) List(ctx context.Context) ([]*domain.Author, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, listAuthorsQuery)
	if err != nil {
		log.Error("failed to list authors", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list authors: %w", MapError(err))
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	authors := make([]*domain.Author, 0)
	for rows.Next() {
		var author domain.Author
		if err := rows.Scan(&author.ID, &author.FirstName, &author.LastName); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, &author)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate authors: %w", MapError(err))
	}

	return authors, nil
}

// GetByID implements store.AuthorStore.GetByID
func (s *PostgresAuthorStore) GetByID(ctx context.Context, id int64) (*domain.Author, error) {
	var author domain.Author
	err := s.db.QueryRowContext(ctx, getAuthorQuery, id).
		Scan(&author.ID, &author.FirstName, &author.LastName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author: %w", MapError(err))
	}

	return &author, nil
}

// Create implements store.AuthorStore.Create
func (s *PostgresAuthorStore) Create(ctx context.Context, author *domain.Author) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := author.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	var id int64
	err := s.db.QueryRowContext(ctx, insertAuthorQuery, author.FirstName, author.LastName).Scan(&id)
	if err != nil {
		log.Error("failed to insert author", slog.String("error", err.Error()))
		return fmt.Errorf("failed to create author: %w", MapError(err))
	}

	author.ID = id
	log.Debug("author created", slog.Int64("author_id", id))
	return nil
}

// Update implements store.AuthorStore.Update
func (s *PostgresAuthorStore) Update(ctx context.Context, author *domain.Author) error {
	if err := author.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	result, err := s.db.ExecContext(ctx, updateAuthorQuery, author.FirstName, author.LastName, author.ID)
	if err != nil {
		return fmt.Errorf("failed to update author: %w", MapError(err))
	}

	return CheckRowsAffected(result, store.ErrAuthorNotFound)
}

// Delete implements store.AuthorStore.Delete
func (s *PostgresAuthorStore) Delete(ctx context.Context, id int64) (*domain.Author, error) {
	var author domain.Author
	err := s.db.QueryRowContext(ctx, deleteAuthorQuery, id).
		Scan(&author.ID, &author.FirstName, &author.LastName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to delete author: %w", MapError(err))
	}

	return &author, nil
}

// Count implements store.AuthorStore.Count
func (s *PostgresAuthorStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, countAuthorsQuery).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count authors: %w", MapError(err))
	}
	return count, nil
}

// WithTx implements store.AuthorStore.WithTx
func (s *PostgresAuthorStore) WithTx(tx *sql.Tx) store.AuthorStore {
	return &PostgresAuthorStore{
		db:     tx,
		logger: s.logger,
	}
}
