package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/authors-api/internal/domain"
)

// MockAuthorService implements service.AuthorService for testing.
// This package must not import internal/service; its tests import mocks.
type MockAuthorService struct {
	ListFn   func(ctx context.Context) ([]*domain.Author, error)
	GetFn    func(ctx context.Context, id int64) (*domain.Author, error)
	CreateFn func(ctx context.Context, firstName, lastName string) (*domain.Author, error)
	UpdateFn func(ctx context.Context, id int64, firstName, lastName string) (*domain.Author, error)
	DeleteFn func(ctx context.Context, id int64) (*domain.Author, error)
	CountFn  func(ctx context.Context) (int, error)

	// Default response values, used when the matching Fn is nil
	Author  *domain.Author
	Authors []*domain.Author
	Err     error

	mu    sync.Mutex
	calls []string
}

func (m *MockAuthorService) record(method string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, method)
}

// Calls returns the names of the methods called so far, in order.
func (m *MockAuthorService) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// List implements service.AuthorService
func (m *MockAuthorService) List(ctx context.Context) ([]*domain.Author, error) {
	m.record("List")
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Authors, m.Err
}

// Get implements service.AuthorService
func (m *MockAuthorService) Get(ctx context.Context, id int64) (*domain.Author, error) {
	m.record("Get")
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return m.Author, m.Err
}

// Create implements service.AuthorService
func (m *MockAuthorService) Create(ctx context.Context, firstName, lastName string) (*domain.Author, error) {
	m.record("Create")
	if m.CreateFn != nil {
		return m.CreateFn(ctx, firstName, lastName)
	}
	return m.Author, m.Err
}

// Update implements service.AuthorService
func (m *MockAuthorService) Update(
	ctx context.Context,
	id int64,
	firstName, lastName string,
) (*domain.Author, error) {
	m.record("Update")
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, firstName, lastName)
	}
	return m.Author, m.Err
}

// Delete implements service.AuthorService
func (m *MockAuthorService) Delete(ctx context.Context, id int64) (*domain.Author, error) {
	m.record("Delete")
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Author, m.Err
}

// Count implements service.AuthorService
func (m *MockAuthorService) Count(ctx context.Context) (int, error) {
	m.record("Count")
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return len(m.Authors), m.Err
}
