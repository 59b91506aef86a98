// Copyright 2026 The NumerBay Authors
// SPDX-License-Identifier: Apache-2.0

// Package sealedbox implements the anonymous public-key encryption used
// for per-buyer artifact delivery: NaCl sealed boxes over Curve25519.
//
// A sealed box encrypts a whole message to a recipient's public key with a
// fresh ephemeral sender key, so ciphertexts carry no sender identity and
// any seller can encrypt to a buyer whose public key is published on an
// order. Keys are 32-byte Curve25519 values exchanged as standard base64
// text — the same format buyers export from the marketplace web client, so
// ciphertexts produced here are readable by their existing keys.
//
// Messages are sealed and opened whole, with no chunking: an artifact is
// one sealed box. This bounds in-memory buffering to one artifact at a
// time, an accepted trade-off at marketplace file sizes.
package sealedbox

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/nacl/box"
)

// KeySize is the length in bytes of both public and private keys.
const KeySize = 32

// Overhead is the number of bytes a sealed box adds to the plaintext: the
// 32-byte ephemeral public key plus the 16-byte authentication tag.
const Overhead = box.AnonymousOverhead

// ErrDecrypt is returned when a ciphertext was not sealed to the matching
// key pair or has been corrupted. The two cases are cryptographically
// indistinguishable.
var ErrDecrypt = errors.New("sealedbox: decryption failed")

// KeyPair holds a Curve25519 key pair as base64 strings. The public key is
// safe to publish on orders; the private key must stay with the buyer.
type KeyPair struct {
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key"`
}

// GenerateKeyPair generates a new random key pair.
func GenerateKeyPair() (*KeyPair, error) {
	publicKey, privateKey, err := box.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("sealedbox: generating key pair: %w", err)
	}
	return &KeyPair{
		PublicKey:  base64.StdEncoding.EncodeToString(publicKey[:]),
		PrivateKey: base64.StdEncoding.EncodeToString(privateKey[:]),
	}, nil
}

// Seal encrypts plaintext to the recipient's base64 public key. The whole
// plaintext is treated as one message.
func Seal(plaintext []byte, recipientPublicKey string) ([]byte, error) {
	publicKey, err := decodeKey(recipientPublicKey)
	if err != nil {
		return nil, fmt.Errorf("sealedbox: recipient public key: %w", err)
	}
	ciphertext, err := box.SealAnonymous(nil, plaintext, publicKey, rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("sealedbox: sealing: %w", err)
	}
	return ciphertext, nil
}

// Open decrypts a sealed box with the recipient's base64 private key.
// Returns ErrDecrypt if the ciphertext was sealed to a different key or is
// corrupted.
func Open(ciphertext []byte, privateKey string) ([]byte, error) {
	secretKey, err := decodeKey(privateKey)
	if err != nil {
		return nil, fmt.Errorf("sealedbox: private key: %w", err)
	}

	// Sealed boxes bind the recipient's public key into the nonce, so
	// opening needs both halves of the key pair. Derive the public key
	// rather than requiring callers to carry it alongside.
	publicKey, err := derivePublicKey(secretKey)
	if err != nil {
		return nil, err
	}

	plaintext, ok := box.OpenAnonymous(nil, ciphertext, publicKey, secretKey)
	if !ok {
		return nil, ErrDecrypt
	}
	return plaintext, nil
}

// decodeKey decodes and length-checks a base64 key string.
func decodeKey(encoded string) (*[KeySize]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decoding base64: %w", err)
	}
	if len(raw) != KeySize {
		return nil, fmt.Errorf("key is %d bytes, want %d", len(raw), KeySize)
	}
	var key [KeySize]byte
	copy(key[:], raw)
	return &key, nil
}

// derivePublicKey computes the Curve25519 public key for a private key.
func derivePublicKey(privateKey *[KeySize]byte) (*[KeySize]byte, error) {
	raw, err := curve25519.X25519(privateKey[:], curve25519.Basepoint)
	if err != nil {
		return nil, fmt.Errorf("sealedbox: deriving public key: %w", err)
	}
	var publicKey [KeySize]byte
	copy(publicKey[:], raw)
	return &publicKey, nil
}
