// Copyright 2026 The NumerBay Authors
// SPDX-License-Identifier: Apache-2.0

package api

// Account is the authenticated user's profile as returned by /users/me.
type Account struct {
	ID            int64   `json:"id"`
	Username      string  `json:"username"`
	Email         string  `json:"email"`
	IsActive      bool    `json:"is_active"`
	PublicAddress string  `json:"public_address"`
	WalletAddress string  `json:"numerai_wallet_address"`
	PublicKey     string  `json:"public_key"`
	Models        []Model `json:"models"`
}

// Model is a tournament model attached to an account.
type Model struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Tournament int    `json:"tournament"`
	StartDate  string `json:"start_date"`
}

// User is a minimal user reference embedded in orders and products.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Category describes where a product is listed.
type Category struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Tournament   int    `json:"tournament"`
	IsPerRound   bool   `json:"is_per_round"`
	IsSubmission bool   `json:"is_submission"`
}

// ProductOption is one purchasable configuration of a product.
type ProductOption struct {
	ID           int64  `json:"id"`
	IsOnPlatform bool   `json:"is_on_platform"`
	Quantity     int    `json:"quantity"`
	Mode         string `json:"mode"`
	IsActive     bool   `json:"is_active"`
	ProductID    int64  `json:"product_id"`
}

// Product is a marketplace listing. Products are never cached client-side:
// every operation re-fetches so encryption policy always reflects the
// latest listing state.
type Product struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Sku           string          `json:"sku"`
	UseEncryption bool            `json:"use_encryption"`
	IsActive      bool            `json:"is_active"`
	Category      *Category       `json:"category"`
	Owner         *User           `json:"owner"`
	Options       []ProductOption `json:"options"`
}

// Order states used by the client. The backend owns the state machine;
// the client only ever filters on confirmed.
const (
	OrderStateConfirmed = "confirmed"
	OrderStatePending   = "pending"
	OrderStateExpired   = "expired"
)

// Delivery modes.
const (
	OrderModeFile  = "file"
	OrderModeStake = "stake"
)

// OrderProduct is the product reference embedded in an order.
type OrderProduct struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Sku  string `json:"sku"`
}

// Order is one buyer's purchase of one product option. An order with a
// BuyerPublicKey requires per-buyer encrypted delivery; an order with a
// SubmitModelID additionally requires an unencrypted copy submitted
// directly to the Numerai tournament on the buyer's behalf.
type Order struct {
	ID              int64        `json:"id"`
	State           string       `json:"state"`
	Mode            string       `json:"mode"`
	RoundOrder      int          `json:"round_order"`
	Quantity        int          `json:"quantity"`
	Currency        string       `json:"currency"`
	DateOrder       string       `json:"date_order"`
	BuyerPublicKey  string       `json:"buyer_public_key"`
	SubmitModelID   string       `json:"submit_model_id"`
	SubmitModelName string       `json:"submit_model_name"`
	SubmitState     string       `json:"submit_state"`
	Product         OrderProduct `json:"product"`
	Buyer           *User        `json:"buyer"`
	Artifacts       []Artifact   `json:"artifacts"`
}

// Artifact states used by the client.
const ArtifactStateActive = "active"

// Artifact is one uploaded file object, tied either to a product (numeric
// ID, unencrypted) or to a specific order (string ID, encrypted for that
// order's buyer).
type Artifact struct {
	ID              ArtifactID `json:"id"`
	ObjectName      string     `json:"object_name"`
	State           string     `json:"state"`
	IsNumeraiDirect bool       `json:"is_numerai_direct"`
}

// UploadDestination is the backend's answer to a generate-upload-url call:
// a pre-signed PUT URL and the freshly allocated artifact ID the bytes
// will be validated under. Each call allocates a new ID — destinations are
// single-use and must not be retried blindly.
type UploadDestination struct {
	URL string     `json:"url"`
	ID  ArtifactID `json:"id"`
}

// searchEnvelope is the paged wrapper around search and list responses.
type searchEnvelope[T any] struct {
	Total int `json:"total"`
	Data  []T `json:"data"`
}
