package database

import (
	"log/slog"

	"github.com/phrazzld/sarisari-api/internal/domain"
	"github.com/phrazzld/sarisari-api/internal/store"
)

// Stores bundles the record store of every entity kind.
type Stores struct {
	Students  store.RecordStore[domain.Student]
	Products  store.RecordStore[domain.Product]
	Suppliers store.RecordStore[domain.Supplier]
	IceCreams store.RecordStore[domain.IceCream]
}

// NewStores creates all record stores over one connection pool.
func NewStores(db store.ConnProvider, dialect Dialect, logger *slog.Logger) Stores {
	return Stores{
		Students:  NewTableStore[domain.Student](db, dialect, domain.Students, logger),
		Products:  NewTableStore[domain.Product](db, dialect, domain.Products, logger),
		Suppliers: NewTableStore[domain.Supplier](db, dialect, domain.Suppliers, logger),
		IceCreams: NewTableStore[domain.IceCream](db, dialect, domain.IceCreams, logger),
	}
}

var (
	_ store.RecordStore[domain.Student]  = (*TableStore[domain.Student, *domain.Student])(nil)
	_ store.RecordStore[domain.Product]  = (*TableStore[domain.Product, *domain.Product])(nil)
	_ store.RecordStore[domain.Supplier] = (*TableStore[domain.Supplier, *domain.Supplier])(nil)
	_ store.RecordStore[domain.IceCream] = (*TableStore[domain.IceCream, *domain.IceCream])(nil)
)
