package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindColumns(t *testing.T) {
	t.Parallel()
	assert.Equal(t,
		[]string{"id", "name", "email", "major", "gpa", "enrollment_date"},
		Students.Columns())
}

func TestKindColumnsMatchScanTargets(t *testing.T) {
	t.Parallel()
	records := map[string]Record{
		Students.Name:  &Student{},
		Products.Name:  &Product{},
		Suppliers.Name: &Supplier{},
		IceCreams.Name: &IceCream{},
	}
	for _, k := range Kinds {
		rec, ok := records[k.Name]
		if assert.True(t, ok, k.Name) {
			assert.Len(t, rec.ScanTargets(), len(k.Columns()), k.Name)
		}
	}
}

func TestKindFilter(t *testing.T) {
	t.Parallel()
	got := Products.Filter(map[string]any{
		"product_name": "Chips",
		"id":           4,
		"drop table":   "x",
	})
	assert.Equal(t, map[string]any{"product_name": "Chips"}, got)
}

func TestKindMessages(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Ice cream not found", IceCreams.NotFoundMessage())
	assert.Equal(t, "Supplier deleted", Suppliers.DeletedMessage())
}

func TestValuesColumns(t *testing.T) {
	t.Parallel()
	v := Values{"description": "", "product_name": "Chips", "price": 1.0}
	assert.Equal(t, []string{"product_name", "price", "description"}, v.Columns(Products))
}

func TestValidationError(t *testing.T) {
	t.Parallel()
	err := NewValidationError("student", []string{"name is required", "gpa must be a number"})
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Contains(t, err.Error(), "name is required; gpa must be a number")
}
