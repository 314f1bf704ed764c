// Package testkit provides JSON request/response helpers for handler
// tests: fire a request at an http.Handler and decode the response
// envelope without boilerplate.
package testkit

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Envelope mirrors the JSON response envelope.
type Envelope struct {
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

// DoJSON sends a JSON request to the handler and records the response.
// body may be nil, a raw JSON string, or any marshalable value.
func DoJSON(t *testing.T, handler http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

// Decode unmarshals the recorded response into an Envelope.
func Decode(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()

	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env),
		"response is not valid JSON: %s", rec.Body.String())
	return env
}

// DataMap decodes the envelope's data field as an object.
func DataMap(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	env := Decode(t, rec)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &out),
		"data is not an object: %s", string(env.Data))
	return out
}

// DataList decodes the envelope's data field as an array.
func DataList(t *testing.T, rec *httptest.ResponseRecorder) []interface{} {
	t.Helper()

	env := Decode(t, rec)
	var out []interface{}
	require.NoError(t, json.Unmarshal(env.Data, &out),
		"data is not an array: %s", string(env.Data))
	return out
}
