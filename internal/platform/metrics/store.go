package metrics

import (
	"context"
	"time"

	"github.com/phrazzld/sarisari-api/internal/domain"
	"github.com/phrazzld/sarisari-api/internal/store"
)

// instrumentedStore times every call of the wrapped store.
type instrumentedStore[T any] struct {
	next    store.RecordStore[T]
	metrics *Metrics
	kind    string
}

// InstrumentStore wraps s so each operation is recorded in StoreDuration.
func InstrumentStore[T any](s store.RecordStore[T], m *Metrics) store.RecordStore[T] {
	return &instrumentedStore[T]{next: s, metrics: m, kind: s.Kind().Name}
}

func (s *instrumentedStore[T]) Kind() domain.Kind {
	return s.next.Kind()
}

func (s *instrumentedStore[T]) List(ctx context.Context, q store.ListQuery) (records []T, err error) {
	defer s.observe("list", time.Now(), &err)
	return s.next.List(ctx, q)
}

func (s *instrumentedStore[T]) Get(ctx context.Context, id int64) (record *T, err error) {
	defer s.observe("get", time.Now(), &err)
	return s.next.Get(ctx, id)
}

func (s *instrumentedStore[T]) Create(ctx context.Context, values domain.Values) (id int64, err error) {
	defer s.observe("create", time.Now(), &err)
	return s.next.Create(ctx, values)
}

func (s *instrumentedStore[T]) Update(ctx context.Context, id int64, values domain.Values) (err error) {
	defer s.observe("update", time.Now(), &err)
	return s.next.Update(ctx, id, values)
}

func (s *instrumentedStore[T]) Delete(ctx context.Context, id int64) (err error) {
	defer s.observe("delete", time.Now(), &err)
	return s.next.Delete(ctx, id)
}

func (s *instrumentedStore[T]) observe(operation string, start time.Time, err *error) {
	s.metrics.ObserveStore(s.kind, operation, start, *err)
}
