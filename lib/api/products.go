// Copyright 2026 The NumerBay Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"strconv"
)

// ProductSearch narrows an authenticated product search. Zero fields are
// omitted from the request; the backend then returns the latest listings.
type ProductSearch struct {
	// ID restricts the search to a single product.
	ID int64

	// Term is a free-text search term matched against listing names.
	Term string

	// OwnerID restricts results to listings owned by the given user.
	OwnerID int64
}

// SearchProducts runs an authenticated product search sorted by latest.
func (client *Client) SearchProducts(ctx context.Context, search ProductSearch) ([]Product, error) {
	type userFilter struct {
		In []string `json:"in"`
	}
	type filters struct {
		User *userFilter `json:"user,omitempty"`
	}
	request := struct {
		ID      int64    `json:"id,omitempty"`
		Term    string   `json:"term,omitempty"`
		Filters *filters `json:"filters,omitempty"`
		Sort    string   `json:"sort"`
	}{
		ID:   search.ID,
		Term: search.Term,
		Sort: "latest",
	}
	if search.OwnerID != 0 {
		request.Filters = &filters{
			User: &userFilter{In: []string{strconv.FormatInt(search.OwnerID, 10)}},
		}
	}

	var envelope searchEnvelope[Product]
	if err := client.post(ctx, "/products/search-authenticated", request, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}
