// Copyright 2026 The NumerBay Authors
// SPDX-License-Identifier: Apache-2.0

package artifact

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/numerbay/numerbay-go/lib/api"
)

func TestResolveProduct_ByID(t *testing.T) {
	var receivedBody map[string]any
	engine, _ := newTestEngine(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		json.NewDecoder(request.Body).Decode(&receivedBody)
		writer.Write([]byte(`{"total": 1, "data": [{"id": 2, "name": "mymodel", "sku": "numerai-predictions-mymodel"}]}`))
	}))

	product, err := engine.ResolveProduct(context.Background(), Reference{ProductID: 2})
	if err != nil {
		t.Fatalf("ResolveProduct: %v", err)
	}
	if product.ID != 2 || product.Sku != "numerai-predictions-mymodel" {
		t.Errorf("product = %+v", product)
	}
	if receivedBody["id"] != float64(2) {
		t.Errorf("search request id = %v, want 2", receivedBody["id"])
	}
}

func TestResolveProduct_ByID_NotFound(t *testing.T) {
	engine, _ := newTestEngine(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Write([]byte(`{"total": 0, "data": []}`))
	}))

	_, err := engine.ResolveProduct(context.Background(), Reference{ProductID: 99})
	if !IsResolutionFailure(err) {
		t.Fatalf("error = %v, want resolution failure", err)
	}
}

func TestResolveProduct_ByFullName(t *testing.T) {
	var receivedBody map[string]any
	engine, _ := newTestEngine(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		json.NewDecoder(request.Body).Decode(&receivedBody)
		// Several listings share the search token; only exact SKU
		// equality may win.
		writer.Write([]byte(`{"total": 3, "data": [
			{"id": 7, "name": "mymodel2", "sku": "numerai-predictions-mymodel2"},
			{"id": 8, "name": "mymodel", "sku": "signals-predictions-mymodel"},
			{"id": 2, "name": "mymodel", "sku": "numerai-predictions-mymodel"}
		]}`))
	}))

	product, err := engine.ResolveProduct(context.Background(), Reference{ProductFullName: "numerai-predictions-mymodel"})
	if err != nil {
		t.Fatalf("ResolveProduct: %v", err)
	}
	if product.ID != 2 {
		t.Errorf("product.ID = %d, want exact SKU match 2", product.ID)
	}
	// The search uses the token after the last separator.
	if receivedBody["term"] != "mymodel" {
		t.Errorf("search term = %v, want mymodel", receivedBody["term"])
	}
}

func TestResolveProduct_ByFullName_NoExactMatch(t *testing.T) {
	engine, _ := newTestEngine(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Write([]byte(`{"total": 1, "data": [{"id": 7, "sku": "numerai-predictions-mymodel2"}]}`))
	}))

	_, err := engine.ResolveProduct(context.Background(), Reference{ProductFullName: "numerai-predictions-mymodel"})
	if !IsResolutionFailure(err) {
		t.Fatalf("error = %v, want resolution failure on partial match", err)
	}
}

func TestResolveProduct_NoReference(t *testing.T) {
	engine, _ := newTestEngine(t, failingHandler(t))
	_, err := engine.ResolveProduct(context.Background(), Reference{})
	if !IsResolutionFailure(err) {
		t.Fatalf("error = %v, want resolution failure", err)
	}
}

// ordersHandler serves a fixed order list for /orders/search.
func ordersHandler(t *testing.T, ordersJSON string) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.Path != "/orders/search" {
			t.Errorf("unexpected path: %s", request.URL.Path)
		}
		writer.Write([]byte(ordersJSON))
	})
}

func TestResolveOrder_FiltersToConfirmed(t *testing.T) {
	engine, _ := newTestEngine(t, ordersHandler(t, `{"total": 3, "data": [
		{"id": 1, "state": "pending", "product": {"id": 4}},
		{"id": 2, "state": "expired", "product": {"id": 4}},
		{"id": 3, "state": "confirmed", "product": {"id": 4}}
	]}`))

	order, err := engine.ResolveOrder(context.Background(), api.RoleBuyer, Reference{ProductID: 4})
	if err != nil {
		t.Fatalf("ResolveOrder: %v", err)
	}
	if order == nil || order.ID != 3 {
		t.Fatalf("order = %+v, want confirmed order 3", order)
	}
}

func TestResolveOrder_EncryptedArtifactIDIsAuthoritative(t *testing.T) {
	// An encrypted artifact ID matches its carrying order even when the
	// product hint points elsewhere.
	engine, _ := newTestEngine(t, ordersHandler(t, `{"total": 2, "data": [
		{"id": 1, "state": "confirmed", "product": {"id": 999}},
		{"id": 2, "state": "confirmed", "product": {"id": 4},
		 "artifacts": [{"id": "abc", "state": "active"}]}
	]}`))

	order, err := engine.ResolveOrder(context.Background(), api.RoleBuyer, Reference{
		ProductID:  999,
		ArtifactID: api.EncryptedArtifactID("abc"),
	})
	if err != nil {
		t.Fatalf("ResolveOrder: %v", err)
	}
	if order == nil || order.ID != 2 {
		t.Fatalf("order = %+v, want order 2 carrying artifact abc", order)
	}
}

func TestResolveOrder_ByOrderID(t *testing.T) {
	engine, _ := newTestEngine(t, ordersHandler(t, `{"total": 2, "data": [
		{"id": 10, "state": "confirmed", "product": {"id": 4}},
		{"id": 11, "state": "confirmed", "product": {"id": 4}}
	]}`))

	order, err := engine.ResolveOrder(context.Background(), api.RoleBuyer, Reference{OrderID: 11})
	if err != nil {
		t.Fatalf("ResolveOrder: %v", err)
	}
	if order == nil || order.ID != 11 {
		t.Fatalf("order = %+v, want order 11", order)
	}
}

func TestResolveOrder_FirstMatchWins(t *testing.T) {
	// Two confirmed orders for the same product: backend list order
	// decides, no further tie-break.
	engine, _ := newTestEngine(t, ordersHandler(t, `{"total": 2, "data": [
		{"id": 20, "state": "confirmed", "product": {"id": 4}},
		{"id": 21, "state": "confirmed", "product": {"id": 4}}
	]}`))

	order, err := engine.ResolveOrder(context.Background(), api.RoleBuyer, Reference{ProductID: 4})
	if err != nil {
		t.Fatalf("ResolveOrder: %v", err)
	}
	if order == nil || order.ID != 20 {
		t.Fatalf("order = %+v, want first listed order 20", order)
	}
}

func TestResolveOrder_NoMatch(t *testing.T) {
	engine, _ := newTestEngine(t, ordersHandler(t, `{"total": 1, "data": [
		{"id": 1, "state": "confirmed", "product": {"id": 5}}
	]}`))

	order, err := engine.ResolveOrder(context.Background(), api.RoleBuyer, Reference{ProductID: 4})
	if err != nil {
		t.Fatalf("ResolveOrder: %v", err)
	}
	if order != nil {
		t.Fatalf("order = %+v, want nil for no match", order)
	}
}

func TestResolveArtifactID_Passthrough(t *testing.T) {
	// An explicit artifact ID is returned unchanged without touching
	// the backend, whatever else the reference carries.
	engine, _ := newTestEngine(t, failingHandler(t))

	for _, explicit := range []api.ArtifactID{
		api.NumericArtifactID(744),
		api.EncryptedArtifactID("abc"),
	} {
		resolved, err := engine.ResolveArtifactID(context.Background(), Reference{
			ProductID:  4,
			OrderID:    126,
			ArtifactID: explicit,
		}, &api.Order{ID: 126, BuyerPublicKey: "cGs="})
		if err != nil {
			t.Fatalf("ResolveArtifactID(%v): %v", explicit, err)
		}
		if resolved != explicit {
			t.Errorf("ResolveArtifactID(%v) = %v, want identity", explicit, resolved)
		}
	}
}

func TestResolveArtifactID_EncryptedOrder(t *testing.T) {
	engine, _ := newTestEngine(t, failingHandler(t))

	order := &api.Order{
		ID:             126,
		BuyerPublicKey: "cGs=",
		Artifacts: []api.Artifact{
			{ID: api.EncryptedArtifactID("old"), State: "active"},
			{ID: api.EncryptedArtifactID("direct"), State: "active", IsNumeraiDirect: true},
			{ID: api.EncryptedArtifactID("new"), State: "active"},
			{ID: api.EncryptedArtifactID("inactive"), State: "inactive"},
		},
	}

	resolved, err := engine.ResolveArtifactID(context.Background(), Reference{ProductID: 4}, order)
	if err != nil {
		t.Fatalf("ResolveArtifactID: %v", err)
	}
	// Last active non-direct wins: the direct-submission copy belongs
	// to the tournament, and inactive artifacts are never served.
	if resolved != api.EncryptedArtifactID("new") {
		t.Errorf("resolved = %v, want new", resolved)
	}
}

func TestResolveArtifactID_ProductScoped(t *testing.T) {
	engine, _ := newTestEngine(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.Path != "/products/4/artifacts" {
			t.Errorf("unexpected path: %s", request.URL.Path)
		}
		writer.Write([]byte(`{"total": 3, "data": [
			{"id": 1, "state": "active"},
			{"id": 2, "state": "active"},
			{"id": 3, "state": "inactive"}
		]}`))
	}))

	resolved, err := engine.ResolveArtifactID(context.Background(), Reference{ProductID: 4}, nil)
	if err != nil {
		t.Fatalf("ResolveArtifactID: %v", err)
	}
	if resolved != api.NumericArtifactID(2) {
		t.Errorf("resolved = %v, want last active artifact 2", resolved)
	}
}

func TestResolveArtifactID_NothingQualifies(t *testing.T) {
	engine, _ := newTestEngine(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Write([]byte(`{"total": 0, "data": []}`))
	}))

	resolved, err := engine.ResolveArtifactID(context.Background(), Reference{ProductID: 4}, nil)
	if err != nil {
		t.Fatalf("ResolveArtifactID: %v", err)
	}
	if !resolved.IsZero() {
		t.Errorf("resolved = %v, want zero", resolved)
	}
}

func TestResolveArtifactName(t *testing.T) {
	engine, _ := newTestEngine(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch request.URL.Path {
		case "/products/4/artifacts":
			writer.Write([]byte(`{"total": 1, "data": [{"id": 3, "object_name": "predictions.csv", "state": "active"}]}`))
		case "/artifacts/abc":
			writer.Write([]byte(`{"id": "abc", "object_name": "predictions.csv.enc"}`))
		default:
			t.Errorf("unexpected path: %s", request.URL.Path)
		}
	}))

	name, err := engine.ResolveArtifactName(context.Background(), 4, api.NumericArtifactID(3))
	if err != nil {
		t.Fatalf("ResolveArtifactName(numeric): %v", err)
	}
	if name != "predictions.csv" {
		t.Errorf("name = %q, want predictions.csv", name)
	}

	name, err = engine.ResolveArtifactName(context.Background(), 4, api.EncryptedArtifactID("abc"))
	if err != nil {
		t.Fatalf("ResolveArtifactName(encrypted): %v", err)
	}
	if name != "predictions.csv.enc" {
		t.Errorf("name = %q, want predictions.csv.enc", name)
	}
}
