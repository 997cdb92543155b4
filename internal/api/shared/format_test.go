package shared

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestFormat(t *testing.T) {
	tests := []struct {
		target string
		want   Format
	}{
		{"/api/students", FormatJSON},
		{"/api/students?format=json", FormatJSON},
		{"/api/students?format=xml", FormatXML},
		{"/api/students?format=XML", FormatXML},
		{"/api/students?format=Xml&q=a", FormatXML},
		{"/api/students?format=yaml", FormatJSON},
		{"/api/students?format=", FormatJSON},
	}

	for _, tc := range tests {
		t.Run(tc.target, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			assert.Equal(t, tc.want, RequestFormat(req))
		})
	}
}

func TestRespond(t *testing.T) {
	payload := map[string]any{"status": "ok"}

	t.Run("json by default", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()

		Respond(w, req, http.StatusOK, payload)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	})

	t.Run("xml on request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health?format=xml", nil)
		w := httptest.NewRecorder()

		Respond(w, req, http.StatusCreated, payload)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "application/xml", w.Header().Get("Content-Type"))
		body := w.Body.String()
		assert.True(t, strings.HasPrefix(body, XMLDeclaration))
		assert.Contains(t, body, "<response><status>ok</status></response>")
	})
}

func TestRespondWithJSON(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		data         interface{}
		expectedBody string
	}{
		{
			name:   "struct keeps field order",
			status: http.StatusOK,
			data: struct {
				B string `json:"b"`
				A int    `json:"a"`
			}{B: "x", A: 1},
			expectedBody: `{"b":"x","a":1}`,
		},
		{
			name:         "empty response",
			status:       http.StatusOK,
			data:         map[string]interface{}{},
			expectedBody: `{}`,
		},
		{
			name:         "nil response",
			status:       http.StatusOK,
			data:         nil,
			expectedBody: `null`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()

			RespondWithJSON(w, req, tc.status, tc.data)

			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, tc.expectedBody+"\n", w.Body.String())
		})
	}
}

func TestRespondEncodingFailure(t *testing.T) {
	unencodable := map[string]any{"ch": make(chan int)}

	t.Run("json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()

		Respond(w, req, http.StatusOK, unencodable)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Internal server error", body["error"])
	})

	t.Run("xml", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test?format=xml", nil)
		w := httptest.NewRecorder()

		Respond(w, req, http.StatusOK, unencodable)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "application/xml", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Body.String(), "<error>Internal server error</error>")
	})
}
