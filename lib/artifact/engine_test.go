// Copyright 2026 The NumerBay Authors
// SPDX-License-Identifier: Apache-2.0

package artifact

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/numerbay/numerbay-go/lib/api"
)

// newTestEngine creates an Engine backed by an httptest server running the
// given handler. Logs are discarded.
func newTestEngine(t *testing.T, handler http.Handler) (*Engine, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	client, err := api.NewClient(api.Config{
		BaseURL:    server.URL,
		Token:      "test-token",
		HTTPClient: server.Client(),
		Logger:     quiet,
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return NewEngine(client, WithLogger(quiet)), server
}

// failingHandler fails the test on any request; used to prove an
// operation completes without touching the backend.
func failingHandler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		t.Errorf("unexpected backend request: %s %s", request.Method, request.URL.Path)
		writer.WriteHeader(http.StatusInternalServerError)
	})
}
