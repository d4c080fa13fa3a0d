// Package test contains helpers for HTTP and database tests.
package test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theo886/weekly-time-allocation/internal/editor"
	"github.com/theo886/weekly-time-allocation/internal/models"
	"github.com/theo886/weekly-time-allocation/internal/router"
)

// Editors is the editor registry used by Request. The router is built for
// every request, the registry keeps the editor sessions between them.
var Editors = editor.NewRegistry(models.TimesheetStore{})

// defaultURL is used as the API URL when API_URL is not set.
const defaultURL = "http://example.com"

// body converts a request body. Strings and byte slices are sent as they
// are, readers are streamed and everything else is encoded as JSON.
func body(t *testing.T, b any) io.Reader {
	switch v := b.(type) {
	case nil:
		return http.NoBody
	case string:
		return bytes.NewBufferString(v)
	case []byte:
		return bytes.NewBuffer(v)
	case io.Reader:
		return v
	}

	encoded, err := json.Marshal(b)
	require.Nil(t, err, "Request body could not be encoded")

	return bytes.NewBuffer(encoded)
}

// Request sends a request to a freshly configured router and returns the
// recorded response.
func Request(t *testing.T, method, reqURL string, b any, headers ...map[string]string) httptest.ResponseRecorder {
	apiURL, ok := os.LookupEnv("API_URL")
	if !ok {
		apiURL = defaultURL
	}

	baseURL, err := url.Parse(apiURL)
	require.Nil(t, err, "API_URL must be a valid URL")

	r, teardown, err := router.Config(baseURL)
	require.Nil(t, err, "Router could not be initialized")
	defer teardown()

	router.AttachRoutes(r.Group("/"), Editors)

	req, err := http.NewRequest(method, reqURL, body(t, b))
	require.Nil(t, err)

	for _, headerMap := range headers {
		for header, value := range headerMap {
			req.Header.Set(header, value)
		}
	}

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)

	return *recorder
}

// DecodeResponse decodes an HTTP response into a target struct.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target any) {
	err := json.Unmarshal(r.Body.Bytes(), target)
	if err != nil {
		assert.FailNow(t, "Parsing error", "Response %q could not be decoded into %T: %v. Request ID: %s", r.Body, target, err, r.Result().Header.Get("x-request-id"))
	}
}

// AssertHTTPStatus fails the test if the status is not one of the
// expected ones.
func AssertHTTPStatus(t *testing.T, r *httptest.ResponseRecorder, expectedStatus ...int) {
	require.Contains(t, expectedStatus, r.Code, "Unexpected HTTP status. Request ID: '%s', body: %s", r.Result().Header.Get("x-request-id"), r.Body.String())
}
