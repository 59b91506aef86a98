// Copyright 2026 The NumerBay Authors
// SPDX-License-Identifier: Apache-2.0

// Package api provides a typed client for the NumerBay marketplace
// backend API.
//
// The client issues authenticated JSON requests against the backend
// (account lookup, order and product search, artifact endpoints) and raw
// byte transfers against pre-signed storage URLs. One method exists per
// backend call; response shapes are decoded into the wire types in
// types.go.
//
// Error handling follows a single rule: any response whose body carries a
// "detail" field is a backend-reported failure, regardless of HTTP status,
// and is returned as an *APIError carrying the backend's message verbatim.
// Network-level failures are returned wrapped, never swallowed — callers
// branch with errors.As rather than inspecting sentinel payloads.
package api
