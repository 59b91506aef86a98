// Copyright 2026 The NumerBay Authors
// SPDX-License-Identifier: Apache-2.0

package artifact

import (
	"bytes"
	"context"
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/numerbay/numerbay-go/lib/api"
	"github.com/numerbay/numerbay-go/lib/sealedbox"
)

// UploadResult is the outcome of an Upload call. The shape follows the
// product's encryption policy, so callers branch on the policy they asked
// about rather than on a runtime type:
//
//   - Products without encryption produce exactly one artifact; Single is
//     set and PerSale is nil.
//   - Products with encryption produce one entry per uploaded copy in
//     sale order, with the shared unencrypted fallback (if any) appended
//     last; PerSale is set and Single is nil.
type UploadResult struct {
	Single  *api.Artifact
	PerSale []api.Artifact
}

// Upload delivers a payload to every relevant active sale of a product.
//
// For an encrypted product, each confirmed sale (optionally narrowed by
// Reference.OrderID) is inspected in backend list order:
//
//   - A sale carrying a submit model gets a direct Numerai submission
//     copy — plaintext bytes under the tournament's own trust boundary.
//   - A file-mode sale with a buyer public key gets a copy sealed to that
//     key. A single sale can therefore yield both a direct and an
//     encrypted artifact.
//   - A sale with no buyer key yet is covered by one shared unencrypted
//     upload performed after the loop.
//
// Individual uploads run the three-step protocol (allocate destination,
// PUT bytes, validate) with no retries: the first step allocates a fresh
// artifact ID every time, so a blind retry would strand a half-made
// artifact. A failed upload aborts the whole call.
func (engine *Engine) Upload(ctx context.Context, source Source, reference Reference) (*UploadResult, error) {
	product, err := engine.ResolveProduct(ctx, reference)
	if err != nil {
		return nil, err
	}

	data, err := source.Bytes()
	if err != nil {
		return nil, err
	}
	filename := source.Filename()

	engine.logger.Info("uploading artifact",
		"product", product.Sku,
		"filename", filename,
		"size", humanize.IBytes(uint64(len(data))),
		"encrypted", product.UseEncryption,
	)

	if !product.UseEncryption {
		uploaded, err := engine.uploadProductArtifact(ctx, product.ID, filename, data)
		if err != nil {
			return nil, err
		}
		return &UploadResult{Single: uploaded}, nil
	}

	sales, err := engine.client.SearchOrders(ctx, api.RoleSeller)
	if err != nil {
		return nil, err
	}

	var uploaded []api.Artifact
	hasUnencryptedSale := false
	for index := range sales {
		sale := &sales[index]
		if sale.State != api.OrderStateConfirmed || sale.Product.ID != product.ID {
			continue
		}
		if reference.OrderID != 0 && sale.ID != reference.OrderID {
			continue
		}

		if sale.BuyerPublicKey == "" {
			// Buyer has not supplied a key yet; covered by the
			// shared unencrypted upload below.
			hasUnencryptedSale = true
			continue
		}

		if sale.SubmitModelID != "" {
			direct, err := engine.uploadOrderArtifact(ctx, sale.ID, filename, data, true)
			if err != nil {
				return nil, fmt.Errorf("order %d: direct submission upload: %w", sale.ID, err)
			}
			uploaded = append(uploaded, *direct)
		}

		if sale.Mode == api.OrderModeFile {
			sealed, err := sealedbox.Seal(data, sale.BuyerPublicKey)
			if err != nil {
				return nil, fmt.Errorf("order %d: %w", sale.ID, err)
			}
			encrypted, err := engine.uploadOrderArtifact(ctx, sale.ID, filename, sealed, false)
			if err != nil {
				return nil, fmt.Errorf("order %d: encrypted upload: %w", sale.ID, err)
			}
			uploaded = append(uploaded, *encrypted)
		}
	}

	if hasUnencryptedSale {
		// One upload covers every unkeyed buyer at once.
		fallback, err := engine.uploadProductArtifact(ctx, product.ID, filename, data)
		if err != nil {
			return nil, fmt.Errorf("unencrypted fallback upload: %w", err)
		}
		uploaded = append(uploaded, *fallback)
	}

	return &UploadResult{PerSale: uploaded}, nil
}

// uploadProductArtifact runs the three-step protocol against the
// product-scoped endpoints.
func (engine *Engine) uploadProductArtifact(ctx context.Context, productID int64, filename string, data []byte) (*api.Artifact, error) {
	destination, err := engine.client.GenerateProductUploadURL(ctx, productID, filename)
	if err != nil {
		return nil, err
	}
	if err := engine.client.PutObject(ctx, destination.URL, bytes.NewReader(data)); err != nil {
		return nil, err
	}
	artifact, err := engine.client.ValidateProductUpload(ctx, productID, destination.ID)
	if err != nil {
		return nil, err
	}
	engine.logger.Info("uploaded product artifact", "product", productID, "artifact", artifact.ID)
	return artifact, nil
}

// uploadOrderArtifact runs the three-step protocol against the
// order-scoped endpoints.
func (engine *Engine) uploadOrderArtifact(ctx context.Context, orderID int64, filename string, data []byte, numeraiDirect bool) (*api.Artifact, error) {
	destination, err := engine.client.GenerateOrderUploadURL(ctx, orderID, filename, numeraiDirect)
	if err != nil {
		return nil, err
	}
	if err := engine.client.PutObject(ctx, destination.URL, bytes.NewReader(data)); err != nil {
		return nil, err
	}
	artifact, err := engine.client.ValidateOrderUpload(ctx, destination.ID)
	if err != nil {
		return nil, err
	}
	engine.logger.Info("uploaded order artifact",
		"order", orderID,
		"artifact", artifact.ID,
		"numerai_direct", numeraiDirect,
	)
	return artifact, nil
}
