// Copyright 2026 The NumerBay Authors
// SPDX-License-Identifier: Apache-2.0

package api

import "context"

// OrderRole selects which side of an order the search returns.
type OrderRole string

const (
	// RoleBuyer returns orders where the caller is the buyer
	// (purchases).
	RoleBuyer OrderRole = "buyer"

	// RoleSeller returns orders where the caller is the seller (sales).
	RoleSeller OrderRole = "seller"
)

// SearchOrders returns the caller's orders for the given role, in backend
// list order. All states are returned (confirmed, pending, expired);
// callers filter for the states they care about.
func (client *Client) SearchOrders(ctx context.Context, role OrderRole) ([]Order, error) {
	request := struct {
		Role OrderRole `json:"role"`
	}{Role: role}

	var envelope searchEnvelope[Order]
	if err := client.post(ctx, "/orders/search", request, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}
