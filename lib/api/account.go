// Copyright 2026 The NumerBay Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Login exchanges a username and password for a bearer token and stores it
// on the client for subsequent authenticated calls. The token endpoint is
// the one backend call that takes a form-encoded body rather than JSON.
func (client *Client) Login(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("numerbay: login requires both a username and a password")
	}

	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	request, err := http.NewRequestWithContext(ctx, http.MethodPost,
		client.baseURL+"/login/access-token", strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("numerbay: creating login request: %w", err)
	}
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	request.Header.Set("Accept", "application/json")

	response, err := client.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("numerbay: login: %w", err)
	}
	defer response.Body.Close()

	body, err := readBounded(response.Body)
	if err != nil {
		return fmt.Errorf("numerbay: reading login response: %w", err)
	}
	if detail := extractDetail(body); detail != "" {
		return &APIError{StatusCode: response.StatusCode, Message: detail}
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return &APIError{StatusCode: response.StatusCode, Message: strings.TrimSpace(string(body))}
	}

	var tokenResponse struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(body, &tokenResponse); err != nil {
		return fmt.Errorf("numerbay: decoding login response: %w", err)
	}
	if tokenResponse.AccessToken == "" {
		return fmt.Errorf("numerbay: login response carried no access token")
	}
	client.token = tokenResponse.AccessToken
	return nil
}

// Account fetches the authenticated user's profile.
func (client *Client) Account(ctx context.Context) (*Account, error) {
	var account Account
	if err := client.get(ctx, "/users/me", &account); err != nil {
		return nil, err
	}
	return &account, nil
}
