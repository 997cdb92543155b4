package database

import (
	"context"
	"sync"
	"testing"

	"github.com/phrazzld/sarisari-api/internal/domain"
	"github.com/phrazzld/sarisari-api/internal/platform/logger"
	"github.com/phrazzld/sarisari-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStores(t *testing.T) Stores {
	t.Helper()
	db, dialect := openSQLite(t)
	log, _ := logger.NewTestLogger()
	return NewStores(db, dialect, log)
}

func student(name, email string, gpa float64) domain.Values {
	return domain.Values{"name": name, "email": email, "major": "Math", "gpa": gpa}
}

func TestTableStore_CreateAndGet(t *testing.T) {
	t.Parallel()
	stores := newSQLiteStores(t)
	ctx := context.Background()

	values := student("Cathy", "c@x.io", 3.9)
	values["enrollment_date"] = domain.NewDate(2023, 8, 14)

	id, err := stores.Students.Create(ctx, values)
	require.NoError(t, err)
	assert.Positive(t, id)

	got, err := stores.Students.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "Cathy", got.Name)
	assert.Equal(t, "c@x.io", got.Email)
	assert.Equal(t, 3.9, got.GPA)
	require.NotNil(t, got.EnrollmentDate)
	assert.Equal(t, "2023-08-14", got.EnrollmentDate.String())
}

func TestTableStore_CreateAppliesDefaults(t *testing.T) {
	t.Parallel()
	stores := newSQLiteStores(t)
	ctx := context.Background()

	id, err := stores.Products.Create(ctx, domain.Values{
		"product_name": "Chips", "category": "Snacks", "unit": "pc",
	})
	require.NoError(t, err)

	got, err := stores.Products.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.Price)
	assert.Equal(t, int64(0), got.Quantity)
	assert.Equal(t, "", got.Description)

	sid, err := stores.Students.Create(ctx, student("Ben", "b@x.io", 2.5))
	require.NoError(t, err)
	s, err := stores.Students.Get(ctx, sid)
	require.NoError(t, err)
	assert.Nil(t, s.EnrollmentDate)
}

func TestTableStore_CreateDuplicate(t *testing.T) {
	t.Parallel()
	stores := newSQLiteStores(t)
	ctx := context.Background()

	_, err := stores.Students.Create(ctx, student("Cathy", "c@x.io", 3.9))
	require.NoError(t, err)

	_, err = stores.Students.Create(ctx, student("Other", "c@x.io", 1.0))
	assert.ErrorIs(t, err, store.ErrDuplicate)

	var storeErr *store.StoreError
	assert.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "student", storeErr.Entity)
	assert.Equal(t, "create", storeErr.Operation)
}

func TestTableStore_IceCreamCompositeUnique(t *testing.T) {
	t.Parallel()
	stores := newSQLiteStores(t)
	ctx := context.Background()

	_, err := stores.IceCreams.Create(ctx, domain.Values{"flavor": "Ube", "size": "L", "price": 80.0})
	require.NoError(t, err)
	_, err = stores.IceCreams.Create(ctx, domain.Values{"flavor": "Ube", "size": "S", "price": 40.0})
	require.NoError(t, err)

	_, err = stores.IceCreams.Create(ctx, domain.Values{"flavor": "Ube", "size": "L", "price": 99.0})
	assert.ErrorIs(t, err, store.ErrDuplicate)
}

func TestTableStore_GetNotFound(t *testing.T) {
	t.Parallel()
	stores := newSQLiteStores(t)

	got, err := stores.Suppliers.Get(context.Background(), 42)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.True(t, store.IsNotFoundError(err))
}

func TestTableStore_List(t *testing.T) {
	t.Parallel()
	stores := newSQLiteStores(t)
	ctx := context.Background()

	for _, v := range []domain.Values{
		student("Cathy Cruz", "cathy@school.edu", 3.9),
		student("Ben", "ben@school.edu", 2.5),
		student("Ana 100% Real", "ana_r@school.edu", 3.1),
		student("Émile Ñúñez", "emile@school.edu", 3.4),
	} {
		_, err := stores.Students.Create(ctx, v)
		require.NoError(t, err)
	}

	t.Run("all ordered by id", func(t *testing.T) {
		all, err := stores.Students.List(ctx, store.ListQuery{})
		require.NoError(t, err)
		require.Len(t, all, 4)
		assert.Equal(t, "Cathy Cruz", all[0].Name)
		assert.Equal(t, "Ben", all[1].Name)
		assert.Less(t, all[0].ID, all[1].ID)
	})

	t.Run("case-insensitive search over name and email", func(t *testing.T) {
		found, err := stores.Students.List(ctx, store.ListQuery{Search: "CATH"})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Cathy Cruz", found[0].Name)

		found, err = stores.Students.List(ctx, store.ListQuery{Search: "school.edu"})
		require.NoError(t, err)
		assert.Len(t, found, 4)
	})

	t.Run("case-insensitive search over non-ASCII letters", func(t *testing.T) {
		for _, q := range []string{"Émile", "émile", "éMILE Ñú", "ÑÚÑEZ"} {
			found, err := stores.Students.List(ctx, store.ListQuery{Search: q})
			require.NoError(t, err, q)
			require.Len(t, found, 1, q)
			assert.Equal(t, "Émile Ñúñez", found[0].Name)
		}
	})

	t.Run("percent is literal", func(t *testing.T) {
		found, err := stores.Students.List(ctx, store.ListQuery{Search: "100%"})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Ana 100% Real", found[0].Name)

		found, err = stores.Students.List(ctx, store.ListQuery{Search: "%"})
		require.NoError(t, err)
		assert.Len(t, found, 1)
	})

	t.Run("underscore is literal", func(t *testing.T) {
		found, err := stores.Students.List(ctx, store.ListQuery{Search: "a_r"})
		require.NoError(t, err)
		assert.Len(t, found, 1)
	})

	t.Run("no match returns empty slice", func(t *testing.T) {
		found, err := stores.Students.List(ctx, store.ListQuery{Search: "zzz"})
		require.NoError(t, err)
		assert.NotNil(t, found)
		assert.Empty(t, found)
	})
}

func TestTableStore_Update(t *testing.T) {
	t.Parallel()
	stores := newSQLiteStores(t)
	ctx := context.Background()

	id, err := stores.Students.Create(ctx, student("Cathy", "c@x.io", 3.9))
	require.NoError(t, err)
	_, err = stores.Students.Create(ctx, student("Ben", "b@x.io", 2.0))
	require.NoError(t, err)

	t.Run("partial update keeps other columns", func(t *testing.T) {
		require.NoError(t, stores.Students.Update(ctx, id, domain.Values{"gpa": 3.5}))
		got, err := stores.Students.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 3.5, got.GPA)
		assert.Equal(t, "Cathy", got.Name)
	})

	t.Run("same values still succeed", func(t *testing.T) {
		assert.NoError(t, stores.Students.Update(ctx, id, domain.Values{"gpa": 3.5}))
	})

	t.Run("clearing nullable date", func(t *testing.T) {
		require.NoError(t, stores.Students.Update(ctx, id, domain.Values{"enrollment_date": domain.NewDate(2020, 1, 1)}))
		require.NoError(t, stores.Students.Update(ctx, id, domain.Values{"enrollment_date": nil}))
		got, err := stores.Students.Get(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, got.EnrollmentDate)
	})

	t.Run("missing id", func(t *testing.T) {
		err := stores.Students.Update(ctx, 9999, domain.Values{"gpa": 1.0})
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("duplicate email", func(t *testing.T) {
		err := stores.Students.Update(ctx, id, domain.Values{"email": "b@x.io"})
		assert.ErrorIs(t, err, store.ErrDuplicate)
		got, err := stores.Students.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "c@x.io", got.Email)
	})

	t.Run("no fields", func(t *testing.T) {
		err := stores.Students.Update(ctx, id, domain.Values{})
		assert.ErrorIs(t, err, store.ErrNoFields)
	})

	t.Run("unknown columns ignored", func(t *testing.T) {
		err := stores.Students.Update(ctx, id, domain.Values{"id": int64(5), "drop": "x"})
		assert.ErrorIs(t, err, store.ErrNoFields)
	})
}

func TestTableStore_Delete(t *testing.T) {
	t.Parallel()
	stores := newSQLiteStores(t)
	ctx := context.Background()

	id, err := stores.Suppliers.Create(ctx, domain.Values{
		"supplier_name": "Acme", "contact_number": "0917", "address": "Cebu",
	})
	require.NoError(t, err)

	require.NoError(t, stores.Suppliers.Delete(ctx, id))

	_, err = stores.Suppliers.Get(ctx, id)
	assert.ErrorIs(t, err, store.ErrNotFound)

	err = stores.Suppliers.Delete(ctx, id)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestTableStore_ConcurrentRequests(t *testing.T) {
	t.Parallel()
	stores := newSQLiteStores(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := stores.IceCreams.Create(ctx, domain.Values{
				"flavor": "Flavor", "size": string(rune('A' + i)), "price": 10.0,
			})
			if err == nil {
				_, err = stores.IceCreams.List(ctx, store.ListQuery{})
			}
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}

	all, err := stores.IceCreams.List(ctx, store.ListQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 20)
}
