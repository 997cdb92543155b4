package store

import (
	"context"

	"github.com/phrazzld/sarisari-api/internal/domain"
)

// ListQuery narrows a List call. An empty Search returns every record.
type ListQuery struct {
	Search string
}

// RecordStore persists the records of one entity kind. T is the record
// struct, e.g. domain.Student.
//
// Implementations return errors wrapping ErrNotFound for missing ids,
// ErrDuplicate for uniqueness violations and ErrNoFields for an empty
// update. Any other failure is a *StoreError.
type RecordStore[T any] interface {
	// Kind returns the entity kind this store serves.
	Kind() domain.Kind

	// List returns records ordered by id. When q.Search is non-empty only
	// records whose search columns contain it, case-insensitively, are
	// returned.
	List(ctx context.Context, q ListQuery) ([]T, error)

	// Get returns the record with the given id.
	Get(ctx context.Context, id int64) (*T, error)

	// Create inserts a record from validated values and returns its id.
	Create(ctx context.Context, values domain.Values) (int64, error)

	// Update writes the given columns of an existing record. The
	// existence check and the write are atomic.
	Update(ctx context.Context, id int64, values domain.Values) error

	// Delete removes the record with the given id.
	Delete(ctx context.Context, id int64) error
}
