// Copyright 2026 The NumerBay Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// defaultBaseURL is the production NumerBay backend API root.
const defaultBaseURL = "https://numerbay.ai/backend-api/v1"

// maxResponseSize bounds JSON API response body reads: 64 MB. Search
// responses are paginated and far smaller; the limit only guards against a
// pathological response exhausting memory. Raw artifact downloads do not go
// through this path — they are streamed with io.Copy.
const maxResponseSize int64 = 64 << 20

// Config holds configuration for creating a Client. The zero value plus a
// Token (or a later Login call) is a working production configuration.
type Config struct {
	// BaseURL is the root URL for backend API requests. Defaults to the
	// production endpoint. Pre-signed storage URLs returned by the
	// backend are absolute and are not resolved against BaseURL.
	BaseURL string

	// Token is a bearer token for authenticated calls. Leave empty and
	// call Login to exchange credentials for a token instead.
	Token string

	// HTTPClient is used for all HTTP requests, including raw transfers
	// to pre-signed URLs. Defaults to a client with Timeout applied.
	HTTPClient *http.Client

	// Timeout applies to each individual request when HTTPClient is not
	// supplied. Zero means no timeout.
	Timeout time.Duration

	// Logger is used for structured logging. Defaults to slog.Default().
	Logger *slog.Logger
}

// Client is a typed NumerBay backend API client.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a backend API client from the given configuration.
func NewClient(config Config) (*Client, error) {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("numerbay: invalid base URL %q: %w", baseURL, err)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: config.Timeout}
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    baseURL,
		token:      config.Token,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// Token returns the bearer token currently held by the client. Empty until
// configured or obtained through Login.
func (client *Client) Token() string {
	return client.token
}

// do executes a backend API request. The path is relative to the base URL
// (e.g. "/orders/search"). A non-nil requestBody is JSON-encoded. Returns
// the raw response body bytes; responses carrying a "detail" field — on any
// status code — come back as an *APIError instead.
func (client *Client) do(ctx context.Context, method, path string, requestBody any) ([]byte, error) {
	var bodyReader io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return nil, fmt.Errorf("numerbay: encoding request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, client.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("numerbay: creating request: %w", err)
	}
	request.Header.Set("Accept", "application/json")
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if client.token != "" {
		request.Header.Set("Authorization", "Bearer "+client.token)
	}

	response, err := client.httpClient.Do(request)
	if err != nil {
		client.logger.Error("backend request failed", "method", method, "path", path, "error", err)
		return nil, fmt.Errorf("numerbay: %s %s: %w", method, path, err)
	}
	defer response.Body.Close()

	body, err := readBounded(response.Body)
	if err != nil {
		return nil, fmt.Errorf("numerbay: reading response body: %w", err)
	}

	// A "detail" field marks a backend-reported failure even on a 2xx
	// status; it must short-circuit rather than be decoded as data.
	if detail := extractDetail(body); detail != "" {
		return nil, &APIError{StatusCode: response.StatusCode, Message: detail}
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, &APIError{
			StatusCode: response.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}
	return body, nil
}

// readBounded reads a JSON API response body up to maxResponseSize bytes.
// Use instead of io.ReadAll when reading backend response bodies.
func readBounded(body io.Reader) ([]byte, error) {
	return io.ReadAll(io.LimitReader(body, maxResponseSize))
}

// get executes a GET request and decodes the JSON response into result.
func (client *Client) get(ctx context.Context, path string, result any) error {
	body, err := client.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}
	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("numerbay: decoding GET %s response: %w", path, err)
	}
	return nil
}

// post executes a POST request with a JSON body and decodes the JSON
// response into result (pass nil to discard).
func (client *Client) post(ctx context.Context, path string, requestBody, result any) error {
	body, err := client.do(ctx, http.MethodPost, path, requestBody)
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}
	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("numerbay: decoding POST %s response: %w", path, err)
	}
	return nil
}
