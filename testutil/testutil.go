// Package testutil provides a fake Merge API server for client tests.
// It does not import the client package, so it can be used from any test.
package testutil

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/gorilla/schema"

	"github.com/merge-api/merge-go-client/config"
	"github.com/merge-api/merge-go-client/value"
)

const (
	// APIKey is the key Config sets and the server expects.
	APIKey = "test-api-key"

	// AccountToken is the linked account token Config sets.
	AccountToken = "test-account-token"
)

var queryDecoder = schema.NewDecoder()

func init() {
	queryDecoder.SetAliasTag("url")
	queryDecoder.IgnoreUnknownKeys(true)
}

// RecordedRequest is a request as the server received it.
type RecordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
	Vars   map[string]string
}

// JSON parses the request body.
func (r RecordedRequest) JSON(t testing.TB) value.Value {
	t.Helper()
	v, err := value.Parse(r.Body)
	if err != nil {
		t.Fatalf("request body is not JSON: %v\nBody: %s", err, r.Body)
	}
	return v
}

// Server is a fake Merge API backed by httptest and a mux.Router. Routes are
// registered relative to /api, matching Config().BaseURL.
type Server struct {
	*httptest.Server

	router *mux.Router
	api    *mux.Router

	mu       sync.Mutex
	requests []RecordedRequest
}

// NewServer starts a server that is closed when the test ends.
func NewServer(t testing.TB) *Server {
	t.Helper()
	s := &Server{router: mux.NewRouter()}
	s.api = s.router.PathPrefix("/api").Subrouter()
	s.router.Use(s.record)
	s.router.NotFoundHandler = s.record(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusNotFound, `{"detail":"Not found."}`)
	}))
	s.Server = httptest.NewServer(s.router)
	t.Cleanup(s.Close)
	return s
}

// Config returns a client configuration pointing at the server.
func (s *Server) Config() config.Config {
	return config.Config{
		BaseURL:      s.URL + "/api",
		APIKey:       APIKey,
		AccountToken: AccountToken,
	}
}

// Handle registers h for method and pattern, e.g.
// Handle("GET", "/hris/v1/employees/{id}", h).
func (s *Server) Handle(method, pattern string, h http.HandlerFunc) *Server {
	s.api.HandleFunc(pattern, h).Methods(method)
	return s
}

// JSON registers a handler answering with a fixed JSON body.
func (s *Server) JSON(method, pattern string, status int, body string) *Server {
	return s.Handle(method, pattern, func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, status, body)
	})
}

// Requests returns the requests received so far.
func (s *Server) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]RecordedRequest(nil), s.requests...)
}

// LastRequest returns the most recent request, failing the test if there
// was none.
func (s *Server) LastRequest(t testing.TB) RecordedRequest {
	t.Helper()
	reqs := s.Requests()
	if len(reqs) == 0 {
		t.Fatal("server received no requests")
	}
	return reqs[len(reqs)-1]
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))
		s.mu.Lock()
		s.requests = append(s.requests, RecordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
			Body:   body,
			Vars:   mux.Vars(r),
		})
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

// WriteJSON writes body with the given status.
func WriteJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	io.WriteString(w, body)
}

// DecodeQuery decodes the request's query string into dst, a pointer to a
// struct with `url` tags.
func DecodeQuery(t testing.TB, r RecordedRequest, dst any) {
	t.Helper()
	if err := queryDecoder.Decode(dst, r.Query); err != nil {
		t.Fatalf("failed to decode query %q: %v", r.Query.Encode(), err)
	}
}

// AssertHeader checks that a request header has the expected value.
func AssertHeader(t testing.TB, r RecordedRequest, key, expectedValue string) {
	t.Helper()
	actual := r.Header.Get(key)
	if actual != expectedValue {
		t.Errorf("expected header %s=%s, got %s", key, expectedValue, actual)
	}
}

// AssertQuery checks that a query parameter has the expected value.
func AssertQuery(t testing.TB, r RecordedRequest, key, expectedValue string) {
	t.Helper()
	actual := r.Query.Get(key)
	if actual != expectedValue {
		t.Errorf("expected query %s=%s, got %s", key, expectedValue, actual)
	}
}

// AssertJSONBody compares the request body with expected as JSON values,
// ignoring formatting and object key order.
func AssertJSONBody(t testing.TB, r RecordedRequest, expected string) {
	t.Helper()
	want, err := value.ParseString(expected)
	if err != nil {
		t.Fatalf("invalid expected JSON: %v", err)
	}
	got := r.JSON(t)
	if !value.Equal(got, want) {
		t.Errorf("request body mismatch:\nExpected:\n%s\nActual:\n%s", want, got)
	}
}
