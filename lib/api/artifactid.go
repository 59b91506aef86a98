// Copyright 2026 The NumerBay Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ArtifactID identifies an artifact on the marketplace. It is a tagged
// union with two variants:
//
//   - Numeric: a product-scoped, unencrypted artifact (integer ID on the
//     wire).
//   - Encrypted: an order-scoped, per-buyer encrypted artifact (string ID
//     on the wire).
//
// The variant is the sole discriminator between the encrypted and plain
// transfer paths: numeric artifacts are uploaded and downloaded as-is,
// string artifacts are sealed to the buyer's public key and decrypted
// after download. Making the distinction a typed variant (rather than a
// runtime type test on a decoded any value) keeps that branch
// compile-time checked.
//
// The zero value is the absent ID: IsZero reports true and both variant
// predicates report false.
type ArtifactID struct {
	numeric   int64
	encrypted string
}

// NumericArtifactID returns the ID of a product-scoped, unencrypted
// artifact.
func NumericArtifactID(id int64) ArtifactID {
	return ArtifactID{numeric: id}
}

// EncryptedArtifactID returns the ID of an order-scoped, per-buyer
// encrypted artifact.
func EncryptedArtifactID(id string) ArtifactID {
	return ArtifactID{encrypted: id}
}

// IsZero reports whether the ID is absent.
func (id ArtifactID) IsZero() bool {
	return id.numeric == 0 && id.encrypted == ""
}

// IsNumeric reports whether the ID names an unencrypted, product-scoped
// artifact.
func (id ArtifactID) IsNumeric() bool {
	return id.numeric != 0
}

// IsEncrypted reports whether the ID names an encrypted, order-scoped
// artifact.
func (id ArtifactID) IsEncrypted() bool {
	return id.encrypted != ""
}

// Numeric returns the integer value of a numeric ID (zero otherwise).
func (id ArtifactID) Numeric() int64 {
	return id.numeric
}

// Encrypted returns the string value of an encrypted ID ("" otherwise).
func (id ArtifactID) Encrypted() string {
	return id.encrypted
}

// String renders the ID as it appears in backend URL paths.
func (id ArtifactID) String() string {
	if id.IsEncrypted() {
		return id.encrypted
	}
	if id.IsNumeric() {
		return strconv.FormatInt(id.numeric, 10)
	}
	return ""
}

// MarshalJSON writes the wire form: a JSON number for numeric IDs, a JSON
// string for encrypted IDs, null when absent.
func (id ArtifactID) MarshalJSON() ([]byte, error) {
	switch {
	case id.IsEncrypted():
		return json.Marshal(id.encrypted)
	case id.IsNumeric():
		return json.Marshal(id.numeric)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON reads the wire form. The JSON type is authoritative:
// numbers become the Numeric variant, strings the Encrypted variant.
func (id *ArtifactID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*id = ArtifactID{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return fmt.Errorf("artifact id: %w", err)
		}
		*id = EncryptedArtifactID(value)
		return nil
	}
	var value int64
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("artifact id: %w", err)
	}
	*id = NumericArtifactID(value)
	return nil
}
