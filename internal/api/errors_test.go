package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/sarisari-api/internal/domain"
	"github.com/phrazzld/sarisari-api/internal/service/auth"
	"github.com/phrazzld/sarisari-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"expired token", fmt.Errorf("validate: %w", auth.ErrExpiredToken), http.StatusUnauthorized},
		{"bad credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"not found", store.NotFoundFor("student"), http.StatusNotFound},
		{"not found in store error", store.NewStoreError("student", "get", "missing", store.ErrNotFound), http.StatusNotFound},
		{"invalid id", domain.ErrInvalidID, http.StatusNotFound},
		{"duplicate", store.DuplicateFor("product"), http.StatusConflict},
		{"validation", domain.NewValidationError("student", []string{"gpa must be a number"}), http.StatusBadRequest},
		{"no fields", store.ErrNoFields, http.StatusBadRequest},
		{"constraint rejection", store.ErrInvalidEntity, http.StatusInternalServerError},
		{"transaction", store.ErrTransactionFailed, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, "Database error"},
		{"bad credentials", auth.ErrInvalidCredentials, "Bad credentials"},
		{"invalid token", auth.ErrExpiredToken, "Invalid token"},
		{"not found", store.NotFoundFor("student"), "Not found"},
		{"duplicate", store.DuplicateFor("student"), "Already exists"},
		{"no fields", store.ErrNoFields, "No valid fields provided for update"},
		{"constraint rejection", store.ErrInvalidEntity, "Database error"},
		{"validation", domain.NewValidationError("student", nil), "Validation error"},
		{"leaky driver error", errors.New("pq: password authentication failed for user app"), "Database error"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GetSafeErrorMessage(tc.err))
		})
	}
}

func TestKindErrorMessage(t *testing.T) {
	assert.Equal(t, "Product not found", kindErrorMessage(domain.Products, store.NotFoundFor("product")))
	assert.Equal(t, "Supplier name already exists", kindErrorMessage(domain.Suppliers, store.DuplicateFor("supplier")))
	assert.Equal(t, "Database error", kindErrorMessage(domain.Suppliers, errors.New("boom")))
}

func TestValidationMessages(t *testing.T) {
	err := validator.New().Struct(LoginRequest{Username: "admin"})
	assert.Equal(t, []string{"password is required"}, validationMessages(err))

	assert.Equal(t, []string{"Validation error"}, validationMessages(errors.New("other")))
}

func TestGetPathID(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{"1", 1, false},
		{"0042", 42, false},
		{"", 0, true},
		{"abc", 0, true},
		{"-3", 0, true},
		{"99999999999999999999", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			id, err := getPathID(requestWithID(tc.raw))
			if tc.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidID)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, id)
		})
	}
}

func requestWithID(raw string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(idParam, raw)
	req := httptest.NewRequest(http.MethodGet, "/api/students/x", nil)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
