package database

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/phrazzld/sarisari-api/internal/domain"
	"github.com/phrazzld/sarisari-api/internal/platform/logger"
	"github.com/phrazzld/sarisari-api/internal/redact"
	"github.com/phrazzld/sarisari-api/internal/store"
)

// recordPtr is satisfied by *T when *T knows its scan targets.
type recordPtr[T any] interface {
	*T
	domain.Record
}

// TableStore implements store.RecordStore for one entity kind. Every
// operation runs on a connection acquired from the pool for the duration of
// the call and released on return.
type TableStore[T any, P recordPtr[T]] struct {
	db      store.ConnProvider
	dialect Dialect
	kind    domain.Kind
	logger  *slog.Logger
}

// NewTableStore creates a store for kind backed by db.
// If logger is nil, a default logger will be used.
func NewTableStore[T any, P recordPtr[T]](
	db store.ConnProvider,
	dialect Dialect,
	kind domain.Kind,
	logger *slog.Logger,
) *TableStore[T, P] {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &TableStore[T, P]{
		db:      db,
		dialect: dialect,
		kind:    kind,
		logger:  logger.With(slog.String("component", kind.Name+"_store")),
	}
}

// Kind implements store.RecordStore.Kind.
func (s *TableStore[T, P]) Kind() domain.Kind {
	return s.kind
}

// withConn runs fn on a dedicated connection and releases it afterwards.
func (s *TableStore[T, P]) withConn(
	ctx context.Context,
	op string,
	fn func(conn *sql.Conn) error,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	conn, err := s.db.Conn(ctx)
	if err != nil {
		log.Error("failed to acquire database connection",
			slog.String("operation", op),
			slog.String("error", redact.Error(err)))
		return store.NewStoreError(s.kind.Name, op, "failed to acquire connection", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil && !errors.Is(cerr, sql.ErrConnDone) {
			log.Warn("failed to release database connection",
				slog.String("operation", op),
				slog.String("error", redact.Error(cerr)))
		}
	}()

	return fn(conn)
}

// fail classifies err, logs it at a level matching its class and wraps it
// in a StoreError.
func (s *TableStore[T, P]) fail(ctx context.Context, op, message string, err error, attrs ...any) error {
	log := logger.FromContextOrDefault(ctx, s.logger)
	mapped := MapError(err)
	attrs = append(attrs, slog.String("operation", op), slog.String("error", redact.Error(err)))

	switch {
	case errors.Is(mapped, store.ErrNotFound):
		log.Debug(s.kind.Name+" not found", attrs...)
	case errors.Is(mapped, store.ErrDuplicate), errors.Is(mapped, store.ErrInvalidEntity):
		log.Warn(message, attrs...)
	default:
		log.Error(message, attrs...)
	}

	return store.NewStoreError(s.kind.Name, op, message, mapped)
}

func (s *TableStore[T, P]) scanRow(scan func(dest ...any) error) (*T, error) {
	var rec T
	if err := scan(P(&rec).ScanTargets()...); err != nil {
		return nil, err
	}
	return &rec, nil
}

// List implements store.RecordStore.List.
func (s *TableStore[T, P]) List(ctx context.Context, q store.ListQuery) ([]T, error) {
	st := buildList(s.dialect, s.kind, q.Search)
	records := make([]T, 0)

	err := s.withConn(ctx, "list", func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, st.String(), st.args...)
		if err != nil {
			return s.fail(ctx, "list", "failed to query records", err)
		}
		defer func() { _ = rows.Close() }()

		for rows.Next() {
			rec, err := s.scanRow(rows.Scan)
			if err != nil {
				return s.fail(ctx, "list", "failed to scan record", err)
			}
			records = append(records, *rec)
		}
		if err := rows.Err(); err != nil {
			return s.fail(ctx, "list", "failed to iterate records", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("listed records",
		slog.Int("count", len(records)),
		slog.Bool("filtered", q.Search != ""))
	return records, nil
}

// Get implements store.RecordStore.Get.
// Returns an error wrapping store.ErrNotFound if no record has the id.
func (s *TableStore[T, P]) Get(ctx context.Context, id int64) (*T, error) {
	st := buildGet(s.dialect, s.kind, id)
	var rec *T

	err := s.withConn(ctx, "get", func(conn *sql.Conn) error {
		var err error
		rec, err = s.scanRow(conn.QueryRowContext(ctx, st.String(), st.args...).Scan)
		if err != nil {
			return s.fail(ctx, "get", "failed to fetch record", err, slog.Int64("id", id))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// Create implements store.RecordStore.Create.
// Returns an error wrapping store.ErrDuplicate on a uniqueness violation.
func (s *TableStore[T, P]) Create(ctx context.Context, values domain.Values) (int64, error) {
	if len(values.Columns(s.kind)) == 0 {
		return 0, store.NewStoreError(s.kind.Name, "create", "no columns supplied", store.ErrNoFields)
	}
	st := buildInsert(s.dialect, s.kind, values)
	var id int64

	err := s.withConn(ctx, "create", func(conn *sql.Conn) error {
		if s.dialect.ReturningID {
			if err := conn.QueryRowContext(ctx, st.String(), st.args...).Scan(&id); err != nil {
				return s.fail(ctx, "create", "failed to insert record", err)
			}
			return nil
		}

		result, err := conn.ExecContext(ctx, st.String(), st.args...)
		if err != nil {
			return s.fail(ctx, "create", "failed to insert record", err)
		}
		id, err = result.LastInsertId()
		if err != nil {
			return s.fail(ctx, "create", "failed to read inserted id", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	logger.FromContextOrDefault(ctx, s.logger).Info(s.kind.Name+" created", slog.Int64("id", id))
	return id, nil
}

// Update implements store.RecordStore.Update.
// The existence check and the UPDATE share one transaction, so a missing id
// never results in a write and the answer reflects the row the write saw.
func (s *TableStore[T, P]) Update(ctx context.Context, id int64, values domain.Values) error {
	if len(values.Columns(s.kind)) == 0 {
		return store.NewStoreError(s.kind.Name, "update", "no columns supplied", store.ErrNoFields)
	}
	exists := buildExists(s.dialect, s.kind, id)
	update := buildUpdate(s.dialect, s.kind, id, values)

	err := s.withConn(ctx, "update", func(conn *sql.Conn) error {
		return store.RunInTransaction(ctx, conn, func(ctx context.Context, tx *sql.Tx) error {
			var one int
			if err := tx.QueryRowContext(ctx, exists.String(), exists.args...).Scan(&one); err != nil {
				return s.fail(ctx, "update", "failed to check record", err, slog.Int64("id", id))
			}
			if _, err := tx.ExecContext(ctx, update.String(), update.args...); err != nil {
				return s.fail(ctx, "update", "failed to update record", err, slog.Int64("id", id))
			}
			return nil
		})
	})
	if err != nil {
		var storeErr *store.StoreError
		if !errors.As(err, &storeErr) {
			return store.NewStoreError(s.kind.Name, "update", "transaction failed", err)
		}
		return err
	}

	logger.FromContextOrDefault(ctx, s.logger).Info(s.kind.Name+" updated",
		slog.Int64("id", id),
		slog.Any("columns", values.Columns(s.kind)))
	return nil
}

// Delete implements store.RecordStore.Delete.
// Returns an error wrapping store.ErrNotFound if no record has the id.
func (s *TableStore[T, P]) Delete(ctx context.Context, id int64) error {
	st := buildDelete(s.dialect, s.kind, id)

	err := s.withConn(ctx, "delete", func(conn *sql.Conn) error {
		result, err := conn.ExecContext(ctx, st.String(), st.args...)
		if err != nil {
			return s.fail(ctx, "delete", "failed to delete record", err, slog.Int64("id", id))
		}
		if err := CheckRowsAffected(result, s.kind.Name); err != nil {
			return s.fail(ctx, "delete", "failed to delete record", err, slog.Int64("id", id))
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.FromContextOrDefault(ctx, s.logger).Info(s.kind.Name+" deleted", slog.Int64("id", id))
	return nil
}
