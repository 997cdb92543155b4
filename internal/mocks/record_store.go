package mocks

import (
	"context"

	"github.com/phrazzld/sarisari-api/internal/domain"
	"github.com/phrazzld/sarisari-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockRecordStore is a testify mock of store.RecordStore.
type MockRecordStore[T any] struct {
	mock.Mock
	kind domain.Kind
}

// NewMockRecordStore creates a mock store serving kind.
func NewMockRecordStore[T any](kind domain.Kind) *MockRecordStore[T] {
	return &MockRecordStore[T]{kind: kind}
}

// Kind implements store.RecordStore.Kind
func (m *MockRecordStore[T]) Kind() domain.Kind {
	return m.kind
}

// List is a mock implementation of store.RecordStore.List
func (m *MockRecordStore[T]) List(ctx context.Context, q store.ListQuery) ([]T, error) {
	args := m.Called(ctx, q)
	if records, ok := args.Get(0).([]T); ok {
		return records, args.Error(1)
	}
	return nil, args.Error(1)
}

// Get is a mock implementation of store.RecordStore.Get
func (m *MockRecordStore[T]) Get(ctx context.Context, id int64) (*T, error) {
	args := m.Called(ctx, id)
	if rec, ok := args.Get(0).(*T); ok {
		return rec, args.Error(1)
	}
	return nil, args.Error(1)
}

// Create is a mock implementation of store.RecordStore.Create
func (m *MockRecordStore[T]) Create(ctx context.Context, values domain.Values) (int64, error) {
	args := m.Called(ctx, values)
	return args.Get(0).(int64), args.Error(1)
}

// Update is a mock implementation of store.RecordStore.Update
func (m *MockRecordStore[T]) Update(ctx context.Context, id int64, values domain.Values) error {
	args := m.Called(ctx, id, values)
	return args.Error(0)
}

// Delete is a mock implementation of store.RecordStore.Delete
func (m *MockRecordStore[T]) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ store.RecordStore[domain.Student] = (*MockRecordStore[domain.Student])(nil)
