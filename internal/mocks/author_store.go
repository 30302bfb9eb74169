package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/phrazzld/authors-api/internal/domain"
	"github.com/phrazzld/authors-api/internal/store"
)

// MockAuthorStore implements store.AuthorStore for testing. Every method
// returns Err unless its function field is set.
type MockAuthorStore struct {
	GetByIDFn func(ctx context.Context, id int64) (*domain.Author, error)
	UpdateFn  func(ctx context.Context, author *domain.Author) error

	Err error

	mu        sync.Mutex
	CallCount map[string]int
}

var _ store.AuthorStore = (*MockAuthorStore)(nil)

// NewMockAuthorStore returns a store whose methods all fail with err.
func NewMockAuthorStore(err error) *MockAuthorStore {
	return &MockAuthorStore{Err: err, CallCount: make(map[string]int)}
}

func (m *MockAuthorStore) record(method string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CallCount == nil {
		m.CallCount = make(map[string]int)
	}
	m.CallCount[method]++
}

// List implements store.AuthorStore
func (m *MockAuthorStore) List(ctx context.Context) ([]*domain.Author, error) {
	m.record("List")
	return nil, m.Err
}

// GetByID implements store.AuthorStore
func (m *MockAuthorStore) GetByID(ctx context.Context, id int64) (*domain.Author, error) {
	m.record("GetByID")
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, m.Err
}

// Create implements store.AuthorStore
func (m *MockAuthorStore) Create(ctx context.Context, author *domain.Author) error {
	m.record("Create")
	return m.Err
}

// Update implements store.AuthorStore
func (m *MockAuthorStore) Update(ctx context.Context, author *domain.Author) error {
	m.record("Update")
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, author)
	}
	return m.Err
}

// Delete implements store.AuthorStore
func (m *MockAuthorStore) Delete(ctx context.Context, id int64) (*domain.Author, error) {
	m.record("Delete")
	return nil, m.Err
}

// Count implements store.AuthorStore
func (m *MockAuthorStore) Count(ctx context.Context) (int, error) {
	m.record("Count")
	return 0, m.Err
}

// WithTx implements store.AuthorStore. The mock has no transaction state,
// so it returns itself.
func (m *MockAuthorStore) WithTx(tx *sql.Tx) store.AuthorStore {
	return m
}
