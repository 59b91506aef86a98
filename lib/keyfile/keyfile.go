// Copyright 2026 The NumerBay Authors
// SPDX-License-Identifier: Apache-2.0

// Package keyfile reads and writes exported NumerBay key files.
//
// A key file is the JSON document the marketplace web client exports for a
// buyer: {"public_key": "...", "private_key": "..."} with both keys as
// base64 Curve25519 values. The private key decrypts artifacts sealed to
// the buyer, so files are written owner-read-only.
package keyfile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/numerbay/numerbay-go/lib/sealedbox"
)

// EnvPath is the environment variable consulted by DefaultPath.
const EnvPath = "NUMERBAY_KEY_PATH"

// DefaultPath returns the key file path from the NUMERBAY_KEY_PATH
// environment variable, or "" when unset.
func DefaultPath() string {
	return os.Getenv(EnvPath)
}

// Load reads a key pair from an exported key file.
func Load(path string) (*sealedbox.KeyPair, error) {
	if path == "" {
		return nil, fmt.Errorf("keyfile: no path given (set %s or pass --key-path)", EnvPath)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("keyfile: reading %s: %w", path, err)
	}

	var keyPair sealedbox.KeyPair
	if err := json.Unmarshal(raw, &keyPair); err != nil {
		return nil, fmt.Errorf("keyfile: parsing %s: %w", path, err)
	}
	if keyPair.PrivateKey == "" {
		return nil, fmt.Errorf("keyfile: %s carries no private_key", path)
	}
	return &keyPair, nil
}

// Save writes a key pair to path with owner-read-only permissions.
func Save(path string, keyPair *sealedbox.KeyPair) error {
	encoded, err := json.MarshalIndent(keyPair, "", "  ")
	if err != nil {
		return fmt.Errorf("keyfile: encoding key pair: %w", err)
	}
	if err := os.WriteFile(path, append(encoded, '\n'), 0o600); err != nil {
		return fmt.Errorf("keyfile: writing %s: %w", path, err)
	}
	return nil
}
