// Copyright 2026 The NumerBay Authors
// SPDX-License-Identifier: Apache-2.0

package artifact

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"

	"github.com/numerbay/numerbay-go/lib/api"
	"github.com/numerbay/numerbay-go/lib/sealedbox"
)

// maxResumeRetries bounds how many times a download interrupted
// mid-stream is resumed with a ranged request before giving up.
const maxResumeRetries = 3

// Download resolves a reference and produces a plaintext file at
// destPath. When destPath is empty the artifact's object name is used.
//
// Whether the artifact is decrypted is decided solely by the resolved
// ArtifactID variant: encrypted (string) IDs are fetched from the
// order-scoped endpoint and decrypted in place with privateKey after the
// bytes land; numeric IDs are fetched from the product-scoped endpoint
// and never decrypted. privateKey is the buyer's base64 private key and
// is only consulted on the encrypted path.
//
// Partial files at destPath are resumed with a ranged request; a file
// already at the full size is left untouched.
func (engine *Engine) Download(ctx context.Context, destPath string, reference Reference, privateKey string) error {
	var productID int64
	if reference.ProductID != 0 || reference.ProductFullName != "" {
		product, err := engine.ResolveProduct(ctx, reference)
		if err != nil {
			return err
		}
		productID = product.ID
		reference.ProductID = productID
	}

	order, err := engine.ResolveOrder(ctx, api.RoleBuyer, reference)
	if err != nil {
		return err
	}
	if productID == 0 && order != nil {
		productID = order.Product.ID
		reference.ProductID = productID
	}

	artifactID, err := engine.ResolveArtifactID(ctx, reference, order)
	if err != nil {
		return err
	}
	if artifactID.IsZero() {
		return &ResolutionError{
			Resource: "artifact",
			Hint: "make sure you have an active order for this product " +
				"and an active artifact is available for download",
		}
	}

	if destPath == "" {
		objectName, err := engine.ResolveArtifactName(ctx, productID, artifactID)
		if err != nil {
			return err
		}
		destPath = objectName
	}

	var downloadURL string
	if artifactID.IsEncrypted() {
		downloadURL, err = engine.client.GenerateOrderDownloadURL(ctx, artifactID)
	} else {
		downloadURL, err = engine.client.GenerateProductDownloadURL(ctx, productID, artifactID)
	}
	if err != nil {
		return err
	}

	if err := engine.downloadFile(ctx, downloadURL, destPath); err != nil {
		return err
	}

	if artifactID.IsEncrypted() {
		if privateKey == "" {
			return fmt.Errorf("artifact %s is encrypted: a buyer private key is required to decrypt it", artifactID)
		}
		return engine.decryptFile(destPath, privateKey)
	}
	return nil
}

// downloadFile streams a pre-signed URL to destPath, resuming any
// existing partial file. Resume decisions compare the local size against
// the server-reported total: shorter continues with a ranged request,
// equal skips the transfer, longer discards the local file and restarts.
// A stream interrupted mid-copy is retried from the current offset, up to
// maxResumeRetries times.
func (engine *Engine) downloadFile(ctx context.Context, url, destPath string) error {
	response, err := engine.client.GetObject(ctx, url, 0)
	if err != nil {
		return err
	}
	total := response.ContentLength

	var offset int64
	if info, statErr := os.Stat(destPath); statErr == nil {
		size := info.Size()
		switch {
		case total >= 0 && size == total:
			response.Body.Close()
			engine.logger.Info("download already complete", "path", destPath,
				"size", humanize.IBytes(uint64(total)))
			return nil
		case total >= 0 && size < total:
			response.Body.Close()
			engine.logger.Info("resuming download", "path", destPath,
				"offset", humanize.IBytes(uint64(size)))
			response, err = engine.client.GetObject(ctx, url, size)
			if err != nil {
				return err
			}
			offset = size
		default:
			// Larger than the remote object, or remote size
			// unknown: the local bytes cannot be trusted.
			response.Body.Close()
			engine.logger.Warn("discarding stale partial download", "path", destPath)
			if err := os.Remove(destPath); err != nil {
				return fmt.Errorf("removing stale partial file: %w", err)
			}
			response, err = engine.client.GetObject(ctx, url, 0)
			if err != nil {
				return err
			}
		}
	}

	flags := os.O_CREATE | os.O_WRONLY | os.O_APPEND
	if offset == 0 {
		flags |= os.O_TRUNC
	}
	file, err := os.OpenFile(destPath, flags, 0o644)
	if err != nil {
		response.Body.Close()
		return fmt.Errorf("opening destination file: %w", err)
	}
	defer file.Close()

	var bar *pb.ProgressBar
	if engine.showProgress && total > 0 {
		bar = pb.Full.Start64(total)
		bar.SetCurrent(offset)
		defer bar.Finish()
	}

	for attempt := 0; ; attempt++ {
		var reader io.Reader = response.Body
		if bar != nil {
			reader = bar.NewProxyReader(response.Body)
		}
		written, copyErr := io.Copy(file, reader)
		offset += written
		response.Body.Close()

		if copyErr == nil {
			break
		}
		if attempt >= maxResumeRetries || total < 0 || ctx.Err() != nil {
			return fmt.Errorf("downloading to %s: %w", destPath, copyErr)
		}
		engine.logger.Warn("download interrupted, resuming",
			"path", destPath, "offset", offset, "error", copyErr)
		response, err = engine.client.GetObject(ctx, url, offset)
		if err != nil {
			return err
		}
	}

	if err := file.Sync(); err != nil {
		return fmt.Errorf("syncing destination file: %w", err)
	}
	engine.logger.Info("download complete", "path", destPath,
		"size", humanize.IBytes(uint64(offset)))
	return nil
}

// decryptFile opens the sealed box at path and overwrites the file with
// the recovered plaintext. On failure the downloaded ciphertext is left
// in place for inspection.
func (engine *Engine) decryptFile(path, privateKey string) error {
	ciphertext, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading downloaded artifact: %w", err)
	}
	plaintext, err := sealedbox.Open(ciphertext, privateKey)
	if err != nil {
		return fmt.Errorf("decrypting %s (encrypted file left in place): %w", path, err)
	}
	if err := os.WriteFile(path, plaintext, 0o644); err != nil {
		return fmt.Errorf("writing decrypted artifact: %w", err)
	}
	engine.logger.Info("decrypted artifact", "path", path,
		"size", humanize.IBytes(uint64(len(plaintext))))
	return nil
}
