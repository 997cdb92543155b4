package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/phrazzld/sarisari-api/internal/api/shared"
	"github.com/phrazzld/sarisari-api/internal/mocks"
	"github.com/phrazzld/sarisari-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func subjectRecorder(captured *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if subject, ok := GetSubject(r); ok {
			*captured = subject
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		authHeader      string
		validateErr     error
		claims          *auth.Claims
		expectedStatus  int
		expectedSubject string
		expectedError   string
	}{
		{
			name:            "valid token",
			authHeader:      "Bearer valid-token",
			claims:          &auth.Claims{Subject: "admin"},
			expectedStatus:  http.StatusOK,
			expectedSubject: "admin",
		},
		{
			name:           "missing auth header",
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Authorization header required",
		},
		{
			name:           "invalid auth format",
			authHeader:     "InvalidFormat",
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Invalid authorization format",
		},
		{
			name:           "wrong scheme",
			authHeader:     "Basic abc",
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Invalid authorization format",
		},
		{
			name:           "empty token",
			authHeader:     "Bearer ",
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Invalid authorization format",
		},
		{
			name:           "expired token",
			authHeader:     "Bearer expired-token",
			validateErr:    auth.ErrExpiredToken,
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Token expired",
		},
		{
			name:           "invalid token",
			authHeader:     "Bearer invalid-token",
			validateErr:    auth.ErrInvalidToken,
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Invalid token",
		},
		{
			name:           "token not yet valid",
			authHeader:     "Bearer future-token",
			validateErr:    auth.ErrTokenNotYetValid,
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Invalid token",
		},
		{
			name:           "unexpected validation failure",
			authHeader:     "Bearer some-token",
			validateErr:    errors.New("keystore offline"),
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Authentication error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			jwtService := &mocks.MockJWTService{
				ValidateErr: tt.validateErr,
				Claims:      tt.claims,
			}
			mw := NewAuthMiddleware(jwtService)

			var captured string
			req := httptest.NewRequest(http.MethodDelete, "/api/students/1", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			recorder := httptest.NewRecorder()

			mw.Authenticate(subjectRecorder(&captured)).ServeHTTP(recorder, req)

			assert.Equal(t, tt.expectedStatus, recorder.Code)
			assert.Equal(t, tt.expectedSubject, captured)
			if tt.expectedError != "" {
				assert.JSONEq(t, `{"error":"`+tt.expectedError+`"}`, recorder.Body.String())
			}
		})
	}
}

func TestAuthMiddleware_OptionalAuthenticate(t *testing.T) {
	t.Parallel()

	t.Run("absent header passes without subject", func(t *testing.T) {
		t.Parallel()

		mw := NewAuthMiddleware(&mocks.MockJWTService{ValidateErr: auth.ErrInvalidToken})
		var captured string
		recorder := httptest.NewRecorder()

		mw.OptionalAuthenticate(subjectRecorder(&captured)).
			ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/students", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Empty(t, captured)
	})

	t.Run("valid header sets subject", func(t *testing.T) {
		t.Parallel()

		mw := NewAuthMiddleware(&mocks.MockJWTService{Claims: &auth.Claims{Subject: "admin"}})
		var captured string
		req := httptest.NewRequest(http.MethodGet, "/api/students", nil)
		req.Header.Set("Authorization", "Bearer good")
		recorder := httptest.NewRecorder()

		mw.OptionalAuthenticate(subjectRecorder(&captured)).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "admin", captured)
	})

	t.Run("present but invalid header is rejected", func(t *testing.T) {
		t.Parallel()

		mw := NewAuthMiddleware(&mocks.MockJWTService{ValidateErr: auth.ErrInvalidToken})
		called := false
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })
		req := httptest.NewRequest(http.MethodGet, "/api/students", nil)
		req.Header.Set("Authorization", "Bearer forged")
		recorder := httptest.NewRecorder()

		mw.OptionalAuthenticate(next).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.False(t, called)
	})
}

func TestAuthMiddleware_RealTokens(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := now
	svc := auth.NewTestJWTService(auth.TestJWTSecret, time.Hour, func() time.Time { return clock })
	token, err := svc.GenerateToken(context.Background(), "admin")
	require.NoError(t, err)

	other := auth.NewTestJWTService("a-completely-different-secret-of-32+", time.Hour, func() time.Time { return now })
	forged, err := other.GenerateToken(context.Background(), "admin")
	require.NoError(t, err)

	mw := NewAuthMiddleware(svc)

	serve := func(token string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/products", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		recorder := httptest.NewRecorder()
		mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})).ServeHTTP(recorder, req)
		return recorder.Code
	}

	assert.Equal(t, http.StatusNoContent, serve(token))
	assert.Equal(t, http.StatusUnauthorized, serve(forged), "wrong signing key")

	clock = now.Add(2 * time.Hour)
	assert.Equal(t, http.StatusUnauthorized, serve(token), "expired")
}

func TestGetSubject(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := GetSubject(req)
	assert.False(t, ok)

	req = req.WithContext(shared.WithSubject(req.Context(), "admin"))
	subject, ok := GetSubject(req)
	assert.True(t, ok)
	assert.Equal(t, "admin", subject)
}
