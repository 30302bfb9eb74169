package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/authors-api/internal/domain"
	"github.com/phrazzld/authors-api/internal/platform/postgres"
	"github.com/phrazzld/authors-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var authorColumns = []string{"id", "first_name", "last_name"}

func newMockStore(t *testing.T) (*postgres.PostgresAuthorStore, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return postgres.NewPostgresAuthorStore(db, nil), mock, db
}

func TestNewPostgresAuthorStore_NilDBPanics(t *testing.T) {
	assert.Panics(t, func() {
		postgres.NewPostgresAuthorStore(nil, nil)
	})
}

func TestPostgresAuthorStore_List(t *testing.T) {
	s, mock, _ := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, first_name, last_name FROM authors ORDER BY id`)).
		WillReturnRows(sqlmock.NewRows(authorColumns).
			AddRow(int64(1), "Riley", "Taylor").
			AddRow(int64(2), "Kevin", "Makker"))

	got, err := s.List(context.Background())
	require.NoError(t, err)

	want := []*domain.Author{
		{ID: 1, FirstName: "Riley", LastName: "Taylor"},
		{ID: 2, FirstName: "Kevin", LastName: "Makker"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresAuthorStore_ListEmpty(t *testing.T) {
	s, mock, _ := newMockStore(t)

	mock.ExpectQuery(`FROM authors`).WillReturnRows(sqlmock.NewRows(authorColumns))

	got, err := s.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got, "empty list must be non-nil so it encodes as []")
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresAuthorStore_ListQueryError(t *testing.T) {
	s, mock, _ := newMockStore(t)

	mock.ExpectQuery(`FROM authors`).WillReturnError(errors.New("connection reset"))

	got, err := s.List(context.Background())
	assert.Nil(t, got)
	assert.ErrorContains(t, err, "failed to list authors")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresAuthorStore_GetByID(t *testing.T) {
	s, mock, _ := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, first_name, last_name FROM authors WHERE id = $1`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(authorColumns).AddRow(int64(1), "Riley", "Taylor"))

	got, err := s.GetByID(context.Background(), 1)
	require.NoError(t, err)

	want := &domain.Author{ID: 1, FirstName: "Riley", LastName: "Taylor"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresAuthorStore_GetByIDNotFound(t *testing.T) {
	s, mock, _ := newMockStore(t)

	mock.ExpectQuery(`FROM authors WHERE id`).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(authorColumns))

	got, err := s.GetByID(context.Background(), 99)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, store.ErrAuthorNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresAuthorStore_Create(t *testing.T) {
	s, mock, _ := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO authors (first_name, last_name) VALUES ($1, $2) RETURNING id`)).
		WithArgs("Kevin", "Makker").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(2)))

	author := &domain.Author{FirstName: "Kevin", LastName: "Makker"}
	require.NoError(t, s.Create(context.Background(), author))
	assert.Equal(t, int64(2), author.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresAuthorStore_CreateInvalid(t *testing.T) {
	s, mock, _ := newMockStore(t)

	err := s.Create(context.Background(), &domain.Author{FirstName: "", LastName: "Makker"})
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
	assert.NoError(t, mock.ExpectationsWereMet(), "no query should run for an invalid author")
}

func TestPostgresAuthorStore_CreateCheckViolation(t *testing.T) {
	s, mock, _ := newMockStore(t)

	mock.ExpectQuery(`INSERT INTO authors`).
		WithArgs("Kevin", "Makker").
		WillReturnError(&pgconn.PgError{Code: "23514", ConstraintName: "authors_last_name_not_blank"})

	err := s.Create(context.Background(), &domain.Author{FirstName: "Kevin", LastName: "Makker"})
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresAuthorStore_UpdateUntranslatableCharacter(t *testing.T) {
	s, mock, _ := newMockStore(t)

	mock.ExpectExec(`UPDATE authors`).
		WithArgs("Kevin", "Makker", int64(1)).
		WillReturnError(&pgconn.PgError{Code: "22021", Message: "invalid byte sequence for encoding \"UTF8\": 0x00"})

	err := s.Update(context.Background(), &domain.Author{ID: 1, FirstName: "Kevin", LastName: "Makker"})
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresAuthorStore_Update(t *testing.T) {
	s, mock, _ := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE authors SET first_name = $1, last_name = $2, updated_at = NOW() WHERE id = $3`)).
		WithArgs("Kevin", "Makker", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := s.Update(context.Background(), &domain.Author{ID: 1, FirstName: "Kevin", LastName: "Makker"})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresAuthorStore_UpdateNotFound(t *testing.T) {
	s, mock, _ := newMockStore(t)

	mock.ExpectExec(`UPDATE authors`).
		WithArgs("Kevin", "Makker", int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.Update(context.Background(), &domain.Author{ID: 2, FirstName: "Kevin", LastName: "Makker"})
	assert.ErrorIs(t, err, store.ErrAuthorNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresAuthorStore_Delete(t *testing.T) {
	s, mock, _ := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`DELETE FROM authors WHERE id = $1 RETURNING id, first_name, last_name`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(authorColumns).AddRow(int64(1), "Riley", "Taylor"))

	got, err := s.Delete(context.Background(), 1)
	require.NoError(t, err)

	want := &domain.Author{ID: 1, FirstName: "Riley", LastName: "Taylor"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresAuthorStore_DeleteNotFound(t *testing.T) {
	s, mock, _ := newMockStore(t)

	mock.ExpectQuery(`DELETE FROM authors`).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(authorColumns))

	got, err := s.Delete(context.Background(), 2)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, store.ErrAuthorNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresAuthorStore_Count(t *testing.T) {
	s, mock, _ := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM authors`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := s.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresAuthorStore_WithTx(t *testing.T) {
	s, mock, db := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT`).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)

	count, err := s.WithTx(tx).Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}
