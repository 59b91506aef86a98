// Copyright 2026 The NumerBay Authors
// SPDX-License-Identifier: Apache-2.0

package artifact

import (
	"context"
	"strings"

	"github.com/numerbay/numerbay-go/lib/api"
)

// ResolveProduct resolves the product named by a reference. A numeric
// ProductID is looked up directly; otherwise ProductFullName is searched
// by its trailing name token and matched on exact SKU equality — partial
// matches in the search results are never accepted.
func (engine *Engine) ResolveProduct(ctx context.Context, reference Reference) (*api.Product, error) {
	if reference.ProductID != 0 {
		products, err := engine.client.SearchProducts(ctx, api.ProductSearch{ID: reference.ProductID})
		if err != nil {
			return nil, err
		}
		if len(products) == 0 {
			return nil, &ResolutionError{
				Resource: "product",
				Hint:     "a valid product ID is required",
			}
		}
		return &products[0], nil
	}

	if reference.ProductFullName != "" {
		// Search by the token after the last separator (the model
		// name), then insist on exact SKU equality: several listings
		// can share a name substring.
		term := reference.ProductFullName
		if index := strings.LastIndex(term, "-"); index >= 0 {
			term = term[index+1:]
		}
		products, err := engine.client.SearchProducts(ctx, api.ProductSearch{Term: term})
		if err != nil {
			return nil, err
		}
		for index := range products {
			if products[index].Sku == reference.ProductFullName {
				return &products[index], nil
			}
		}
	}

	return nil, &ResolutionError{
		Resource: "product",
		Hint:     "a valid product ID or product full name is required",
	}
}

// ResolveOrder finds the confirmed order matching a reference among the
// caller's orders for the given role (buyer for downloads, seller for
// uploads). An encrypted ArtifactID in the reference is authoritative: it
// matches the order carrying that artifact regardless of product or order
// hints. Otherwise the first confirmed order matching OrderID or
// ProductID wins, in backend list order — when several confirmed orders
// exist for the same product the pick follows that order and is not
// otherwise tie-broken.
//
// Returns (nil, nil) when no order matches: an absent order is a normal
// outcome for unencrypted flows, not a failure.
func (engine *Engine) ResolveOrder(ctx context.Context, role api.OrderRole, reference Reference) (*api.Order, error) {
	orders, err := engine.client.SearchOrders(ctx, role)
	if err != nil {
		return nil, err
	}

	for index := range orders {
		order := &orders[index]
		if order.State != api.OrderStateConfirmed {
			continue
		}
		if reference.ArtifactID.IsEncrypted() {
			for _, candidate := range order.Artifacts {
				if candidate.ID == reference.ArtifactID {
					return order, nil
				}
			}
			continue
		}
		if reference.OrderID != 0 && order.ID == reference.OrderID {
			return order, nil
		}
		if reference.ProductID != 0 && order.Product.ID == reference.ProductID {
			return order, nil
		}
	}
	return nil, nil
}

// ResolveArtifactID determines which artifact a reference points at. An
// explicit ArtifactID passes through unchanged. Otherwise, for an order
// that requires encryption the last active non-direct artifact on the
// order wins; for the unencrypted flow the last active artifact listed on
// the product wins. "Last" is deliberate: the most recently produced
// artifact supersedes earlier ones.
//
// Returns the zero ArtifactID when nothing qualifies; callers decide
// whether that is fatal.
func (engine *Engine) ResolveArtifactID(ctx context.Context, reference Reference, order *api.Order) (api.ArtifactID, error) {
	if !reference.ArtifactID.IsZero() {
		return reference.ArtifactID, nil
	}

	if order != nil && order.BuyerPublicKey != "" {
		var resolved api.ArtifactID
		for _, candidate := range order.Artifacts {
			// The direct-submission copy belongs to the Numerai
			// tournament, not the buyer.
			if candidate.State == api.ArtifactStateActive && !candidate.IsNumeraiDirect {
				resolved = candidate.ID
			}
		}
		return resolved, nil
	}

	if reference.ProductID == 0 {
		return api.ArtifactID{}, nil
	}
	artifacts, err := engine.client.ProductArtifacts(ctx, reference.ProductID)
	if err != nil {
		return api.ArtifactID{}, err
	}
	var resolved api.ArtifactID
	for _, candidate := range artifacts {
		if candidate.State == api.ArtifactStateActive {
			resolved = candidate.ID
		}
	}
	return resolved, nil
}

// ResolveArtifactName returns the artifact's object name, used as the
// default download filename. Numeric IDs are looked up in the product's
// artifact list; encrypted IDs are fetched directly by their global ID.
func (engine *Engine) ResolveArtifactName(ctx context.Context, productID int64, artifactID api.ArtifactID) (string, error) {
	if artifactID.IsEncrypted() {
		record, err := engine.client.OrderArtifact(ctx, artifactID.Encrypted())
		if err != nil {
			return "", err
		}
		return record.ObjectName, nil
	}

	artifacts, err := engine.client.ProductArtifacts(ctx, productID)
	if err != nil {
		return "", err
	}
	for _, candidate := range artifacts {
		if candidate.ID == artifactID {
			return candidate.ObjectName, nil
		}
	}
	return "", &ResolutionError{
		Resource: "artifact",
		Hint:     "no artifact with this ID is listed for the product",
	}
}
