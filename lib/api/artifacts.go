// Copyright 2026 The NumerBay Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"
)

// ProductArtifacts lists the unencrypted artifacts attached to a product,
// in backend list order (oldest first; the most recently produced artifact
// is last).
func (client *Client) ProductArtifacts(ctx context.Context, productID int64) ([]Artifact, error) {
	var envelope searchEnvelope[Artifact]
	path := fmt.Sprintf("/products/%d/artifacts", productID)
	if err := client.get(ctx, path, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// OrderArtifact fetches a single order-scoped artifact by its global
// string ID.
func (client *Client) OrderArtifact(ctx context.Context, artifactID string) (*Artifact, error) {
	var artifact Artifact
	if err := client.get(ctx, "/artifacts/"+artifactID, &artifact); err != nil {
		return nil, err
	}
	return &artifact, nil
}

// GenerateProductUploadURL allocates a product-scoped artifact and returns
// the pre-signed destination its bytes must be PUT to. Every call
// allocates a fresh artifact ID.
func (client *Client) GenerateProductUploadURL(ctx context.Context, productID int64, filename string) (*UploadDestination, error) {
	request := struct {
		Filename string `json:"filename"`
	}{Filename: filename}

	var destination UploadDestination
	path := fmt.Sprintf("/products/%d/artifacts/generate-upload-url", productID)
	if err := client.post(ctx, path, request, &destination); err != nil {
		return nil, err
	}
	return &destination, nil
}

// GenerateOrderUploadURL allocates an order-scoped artifact and returns
// its pre-signed upload destination. Set numeraiDirect for the copy that
// is submitted straight to the Numerai tournament rather than delivered to
// the buyer.
func (client *Client) GenerateOrderUploadURL(ctx context.Context, orderID int64, filename string, numeraiDirect bool) (*UploadDestination, error) {
	request := struct {
		OrderID         int64  `json:"order_id"`
		Filename        string `json:"filename"`
		IsNumeraiDirect bool   `json:"is_numerai_direct"`
	}{OrderID: orderID, Filename: filename, IsNumeraiDirect: numeraiDirect}

	var destination UploadDestination
	if err := client.post(ctx, "/artifacts/generate-upload-url", request, &destination); err != nil {
		return nil, err
	}
	return &destination, nil
}

// ValidateProductUpload finalizes a product-scoped upload and returns the
// committed artifact record.
func (client *Client) ValidateProductUpload(ctx context.Context, productID int64, artifactID ArtifactID) (*Artifact, error) {
	var artifact Artifact
	path := fmt.Sprintf("/products/%d/artifacts/%s/validate-upload", productID, artifactID)
	if err := client.post(ctx, path, nil, &artifact); err != nil {
		return nil, err
	}
	return &artifact, nil
}

// ValidateOrderUpload finalizes an order-scoped upload and returns the
// committed artifact record.
func (client *Client) ValidateOrderUpload(ctx context.Context, artifactID ArtifactID) (*Artifact, error) {
	var artifact Artifact
	path := fmt.Sprintf("/artifacts/%s/validate-upload", artifactID)
	if err := client.post(ctx, path, nil, &artifact); err != nil {
		return nil, err
	}
	return &artifact, nil
}

// GenerateProductDownloadURL returns a time-limited download URL for a
// product-scoped (numeric-ID) artifact.
func (client *Client) GenerateProductDownloadURL(ctx context.Context, productID int64, artifactID ArtifactID) (string, error) {
	var downloadURL string
	path := fmt.Sprintf("/products/%d/artifacts/%s/generate-download-url", productID, artifactID)
	if err := client.get(ctx, path, &downloadURL); err != nil {
		return "", err
	}
	return downloadURL, nil
}

// GenerateOrderDownloadURL returns a time-limited download URL for an
// order-scoped (string-ID) artifact.
func (client *Client) GenerateOrderDownloadURL(ctx context.Context, artifactID ArtifactID) (string, error) {
	var downloadURL string
	path := fmt.Sprintf("/artifacts/%s/generate-download-url", artifactID)
	if err := client.get(ctx, path, &downloadURL); err != nil {
		return "", err
	}
	return downloadURL, nil
}
