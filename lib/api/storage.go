// Copyright 2026 The NumerBay Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// PutObject streams bytes to a pre-signed storage URL. The URL comes from
// a generate-upload-url call and is absolute — it points at the storage
// provider, not the backend API, so no bearer token is attached.
func (client *Client) PutObject(ctx context.Context, url string, body io.Reader) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodPut, url, body)
	if err != nil {
		return fmt.Errorf("numerbay: creating storage upload request: %w", err)
	}
	request.Header.Set("Content-Type", "application/octet-stream")

	response, err := client.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("numerbay: storage upload: %w", err)
	}
	defer response.Body.Close()
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		snippet, _ := readBounded(io.LimitReader(response.Body, 1024))
		return fmt.Errorf("numerbay: storage upload: HTTP %d: %s",
			response.StatusCode, strings.TrimSpace(string(snippet)))
	}
	return nil
}

// GetObject opens a streaming GET against a pre-signed storage URL. A
// non-zero offset issues a ranged request continuing from that byte. The
// caller owns the returned response and must close its Body; the body is
// intentionally not buffered so large artifacts stream straight to disk.
func (client *Client) GetObject(ctx context.Context, url string, offset int64) (*http.Response, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("numerbay: creating storage download request: %w", err)
	}
	if offset > 0 {
		request.Header.Set("Range", fmt.Sprintf("bytes=%d-", offset))
	}

	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("numerbay: storage download: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		snippet, _ := readBounded(io.LimitReader(response.Body, 1024))
		response.Body.Close()
		return nil, fmt.Errorf("numerbay: storage download: HTTP %d: %s",
			response.StatusCode, strings.TrimSpace(string(snippet)))
	}
	return response, nil
}
