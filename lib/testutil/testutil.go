package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

// ServeHTML spins up a throwaway server that answers every request
// with the given markup. The server is torn down with the test.
func ServeHTML(t testing.TB, markup string) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		io.WriteString(w, markup)
	}))
	t.Cleanup(server.Close)
	return server
}

// ServeStatus spins up a throwaway server that always answers with
// the given status code and no body.
func ServeStatus(t testing.TB, status int) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))
	t.Cleanup(server.Close)
	return server
}
