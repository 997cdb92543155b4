package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/phrazzld/sarisari-api/internal/config"
	"github.com/phrazzld/sarisari-api/internal/mocks"
	"github.com/phrazzld/sarisari-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		verifyErr      error
		tokenErr       error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "success",
			body:           `{"username":"admin","password":"secret"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"access_token":"signed-token"}`,
		},
		{
			name:           "bad credentials",
			body:           `{"username":"admin","password":"wrong"}`,
			verifyErr:      auth.ErrInvalidCredentials,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Bad credentials"}`,
		},
		{
			name:           "malformed body",
			body:           `{"username":`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid request format"}`,
		},
		{
			name:           "missing password",
			body:           `{"username":"admin"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"password is required"}`,
		},
		{
			name:           "missing both",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"errors":["username is required","password is required"]}`,
		},
		{
			name:           "verifier failure",
			body:           `{"username":"admin","password":"secret"}`,
			verifyErr:      errors.New("directory unavailable"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Failed to authenticate user"}`,
		},
		{
			name:           "token failure",
			body:           `{"username":"admin","password":"secret"}`,
			tokenErr:       errors.New("signing failed"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Failed to generate authentication token"}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			verifier := &mocks.MockCredentialVerifier{
				VerifyFn: func(_ context.Context, username, _ string) (string, error) {
					if tc.verifyErr != nil {
						return "", tc.verifyErr
					}
					return username, nil
				},
			}
			jwtService := &mocks.MockJWTService{Token: "signed-token", Err: tc.tokenErr}
			h := NewAuthHandler(verifier, jwtService, nil)

			rec := serve(http.HandlerFunc(h.Login), http.MethodPost, "/login", tc.body)

			assert.Equal(t, tc.expectedStatus, rec.Code)
			assert.JSONEq(t, tc.expectedBody, rec.Body.String())
		})
	}
}

func TestAuthHandler_LoginXML(t *testing.T) {
	h := NewAuthHandler(
		&mocks.MockCredentialVerifier{Username: "admin", Password: "secret"},
		&mocks.MockJWTService{Token: "signed-token"},
		nil,
	)

	rec := serve(http.HandlerFunc(h.Login), http.MethodPost, "/login?format=xml",
		`{"username":"admin","password":"secret"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/xml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "<response><access_token>signed-token</access_token></response>")
}

func TestAuthHandler_LoginIssuesUsableToken(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	verifier, err := auth.NewStaticCredentialVerifier(config.AuthConfig{
		Username:     "admin",
		PasswordHash: string(hash),
	}, nil)
	require.NoError(t, err)
	jwtService := auth.NewTestJWTService(auth.TestJWTSecret, time.Hour, nil)
	h := NewAuthHandler(verifier, jwtService, nil)

	rec := serve(http.HandlerFunc(h.Login), http.MethodPost, "/login", `{"username":"admin","password":"s3cret"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	claims, err := jwtService.ValidateToken(context.Background(), resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)

	rec = serve(http.HandlerFunc(h.Login), http.MethodPost, "/login", `{"username":"admin","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
