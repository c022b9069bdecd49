// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets seals and opens the stored service credential with a
// symmetric key persisted in a local key file. The key is created on
// first use and reused on every later run, so a sealed credential
// survives restarts but is useless without the key file next to it.
package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
	"strings"
)

// keySize is the AES-256 key length in bytes.
const keySize = 32

// LoadKey returns the encryption key stored at keyPath. When the file does
// not exist a fresh random key is generated, written with owner-only
// permissions, and returned.
func LoadKey(keyPath string) ([]byte, error) {
	data, err := os.ReadFile(keyPath)
	if os.IsNotExist(err) {
		return generateKey(keyPath)
	}
	if err != nil {
		return nil, fmt.Errorf("reading key file %s: %w", keyPath, err)
	}

	key, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, fmt.Errorf("decoding key file %s: %w", keyPath, err)
	}
	if len(key) != keySize {
		return nil, fmt.Errorf("key file %s holds %d bytes, want %d", keyPath, len(key), keySize)
	}
	return key, nil
}

func generateKey(keyPath string) ([]byte, error) {
	key := make([]byte, keySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("generating key: %w", err)
	}

	encoded := base64.StdEncoding.EncodeToString(key)
	if err := os.WriteFile(keyPath, []byte(encoded+"\n"), 0o600); err != nil {
		return nil, fmt.Errorf("writing key file %s: %w", keyPath, err)
	}
	return key, nil
}

// Seal encrypts plaintext with AES-256-GCM under key and returns a base64
// token embedding the nonce. An empty plaintext seals to the empty string.
func Seal(key []byte, plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("generating nonce: %w", err)
	}

	sealed := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Open decrypts a token produced by Seal. An empty token opens to the
// empty string. A token sealed under a different key, or tampered with,
// fails authentication.
func Open(key []byte, token string) (string, error) {
	if token == "" {
		return "", nil
	}

	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", fmt.Errorf("decoding sealed credential: %w", err)
	}
	if len(raw) < gcm.NonceSize() {
		return "", fmt.Errorf("sealed credential too short")
	}

	nonce, ciphertext := raw[:gcm.NonceSize()], raw[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("opening sealed credential: %w", err)
	}
	return string(plaintext), nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("initializing cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("initializing GCM: %w", err)
	}
	return gcm, nil
}
