// Copyright 2026 The NumerBay Authors
// SPDX-License-Identifier: Apache-2.0

// Package artifact resolves loose marketplace references into concrete
// product, order, and artifact IDs, and transfers artifact bytes in both
// directions.
//
// Callers rarely hold a fully qualified (product, order, artifact) tuple —
// they have a product full name, or an order ID, or nothing beyond "my
// latest artifact for this product". The Engine resolves whatever partial
// Reference it is given against live backend state (nothing is cached;
// encryption policy always reflects the latest listing) and then runs the
// transfer protocol:
//
//   - Upload: one unencrypted product-scoped upload for products without
//     encryption, or one upload per qualifying confirmed sale — sealed to
//     each buyer's public key, plus a direct Numerai submission copy where
//     the order requires it, plus a single unencrypted fallback when any
//     sale has no buyer key yet.
//   - Download: resolve the artifact, fetch its time-limited URL, stream
//     to disk with byte-range resume, and decrypt in place when (and only
//     when) the artifact ID is the encrypted variant.
//
// Resolution never guesses: any step that cannot produce a single
// confident result returns a *ResolutionError with an actionable hint.
package artifact
