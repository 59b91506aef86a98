// Copyright 2026 The NumerBay Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newTestClient creates a Client backed by the given httptest.Server with
// a pre-set bearer token.
func newTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()
	client, err := NewClient(Config{
		BaseURL:    server.URL,
		Token:      "test-token",
		HTTPClient: server.Client(),
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func TestClient_AuthHeaderInjection(t *testing.T) {
	var receivedAuth string
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		receivedAuth = request.Header.Get("Authorization")
		json.NewEncoder(writer).Encode(Account{ID: 2, Username: "myusername"})
	}))
	defer server.Close()

	client := newTestClient(t, server)
	if _, err := client.Account(context.Background()); err != nil {
		t.Fatalf("Account: %v", err)
	}
	if receivedAuth != "Bearer test-token" {
		t.Errorf("Authorization = %q, want %q", receivedAuth, "Bearer test-token")
	}
}

func TestClient_DetailStringRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusForbidden)
		json.NewEncoder(writer).Encode(map[string]string{"detail": "Could not validate credentials"})
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.Account(context.Background())
	var apiError *APIError
	if !errors.As(err, &apiError) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiError.Message != "Could not validate credentials" {
		t.Errorf("Message = %q, want backend detail verbatim", apiError.Message)
	}
	if apiError.StatusCode != 403 {
		t.Errorf("StatusCode = %d, want 403", apiError.StatusCode)
	}
	if !IsUnauthorized(err) {
		t.Error("IsUnauthorized = false, want true")
	}
}

func TestClient_DetailOn2xxShortCircuits(t *testing.T) {
	// A 200 body carrying "detail" is still a backend failure and must
	// not be decoded as data.
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		json.NewEncoder(writer).Encode(map[string]string{"detail": "Product not found"})
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.SearchProducts(context.Background(), ProductSearch{ID: 99})
	if !IsBackendRejection(err) {
		t.Fatalf("error = %v, want backend rejection", err)
	}
}

func TestClient_DetailListForm(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusUnprocessableEntity)
		writer.Write([]byte(`{"detail": [{"message": "field required"}, {"message": "value invalid"}]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.Account(context.Background())
	var apiError *APIError
	if !errors.As(err, &apiError) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiError.Message != "field required; value invalid" {
		t.Errorf("Message = %q, want joined list messages", apiError.Message)
	}
}

func TestClient_DetailNestedObjectForm(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusBadRequest)
		writer.Write([]byte(`{"detail": {"code": 42, "reason": "round closed"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.Account(context.Background())
	var apiError *APIError
	if !errors.As(err, &apiError) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiError.Message != `{"code": 42, "reason": "round closed"}` {
		t.Errorf("Message = %q, want raw nested object", apiError.Message)
	}
}

func TestClient_Non2xxWithoutDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusBadGateway)
		writer.Write([]byte("upstream unavailable"))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.Account(context.Background())
	var apiError *APIError
	if !errors.As(err, &apiError) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiError.StatusCode != 502 {
		t.Errorf("StatusCode = %d, want 502", apiError.StatusCode)
	}
}

func TestClient_NetworkErrorWrapped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // connection refused from here on

	client, err := NewClient(Config{BaseURL: server.URL, Token: "test-token"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if _, err := client.Account(context.Background()); err == nil {
		t.Fatal("expected network error")
	} else if IsBackendRejection(err) {
		t.Error("network failure classified as backend rejection")
	}
}

func TestLogin(t *testing.T) {
	var receivedContentType, receivedBody string
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.Path != "/login/access-token" {
			t.Errorf("unexpected path: %s", request.URL.Path)
		}
		receivedContentType = request.Header.Get("Content-Type")
		body, _ := io.ReadAll(request.Body)
		receivedBody = string(body)
		json.NewEncoder(writer).Encode(map[string]string{"access_token": "fresh-token"})
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL, HTTPClient: server.Client()})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if err := client.Login(context.Background(), "myusername", "mypassword"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	if receivedContentType != "application/x-www-form-urlencoded" {
		t.Errorf("Content-Type = %q, want form encoding", receivedContentType)
	}
	if receivedBody != "password=mypassword&username=myusername" {
		t.Errorf("body = %q, want encoded credentials", receivedBody)
	}
	if client.Token() != "fresh-token" {
		t.Errorf("Token() = %q, want fresh-token", client.Token())
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(writer).Encode(map[string]string{"detail": "Incorrect email or password"})
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL, HTTPClient: server.Client()})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	loginErr := client.Login(context.Background(), "myusername", "wrong")
	var apiError *APIError
	if !errors.As(loginErr, &apiError) {
		t.Fatalf("error = %v, want *APIError", loginErr)
	}
	if apiError.Message != "Incorrect email or password" {
		t.Errorf("Message = %q, want backend detail verbatim", apiError.Message)
	}
}

func TestLogin_MissingCredentials(t *testing.T) {
	client, err := NewClient(Config{})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if err := client.Login(context.Background(), "myusername", ""); err == nil {
		t.Error("Login with empty password succeeded, want error")
	}
	if err := client.Login(context.Background(), "", "mypassword"); err == nil {
		t.Error("Login with empty username succeeded, want error")
	}
}
