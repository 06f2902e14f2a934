//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// Request describes one call against a router. Zero fields are omitted.
type Request struct {
	Method    string
	Path      string
	Body      any
	RawBody   []byte
	AuthToken string
	Headers   map[string]string
	Cookies   []*http.Cookie
}

func Do(t *testing.T, handler http.Handler, r Request) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	switch {
	case r.RawBody != nil:
		reqBody = bytes.NewBuffer(r.RawBody)
	case r.Body != nil:
		jsonBody, err := json.Marshal(r.Body)
		require.NoError(t, err, "Failed to encode request body to JSON")
		reqBody = bytes.NewBuffer(jsonBody)
	default:
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(r.Method, r.Path, reqBody)
	if r.Body != nil || r.RawBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.AuthToken != "" {
		req.Header.Set("Authorization", "Bearer "+r.AuthToken)
	}
	for k, v := range r.Headers {
		req.Header.Set(k, v)
	}
	for _, c := range r.Cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}
