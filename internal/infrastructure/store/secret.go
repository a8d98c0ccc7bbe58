package store

import (
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/crypto/nacl/secretbox"
)

const keyFileName = "remember.key"

// rememberKey loads the machine-local sealing key, generating it on
// first use. The key file is 0600 next to the database, so the sealed
// credential is useless without also reading the key.
func (s *Store) rememberKey() (*[32]byte, error) {
	path := filepath.Join(s.dir, keyFileName)

	var key [32]byte
	data, err := os.ReadFile(path)
	if err == nil && len(data) == len(key) {
		copy(key[:], data)
		return &key, nil
	}

	if _, err := io.ReadFull(rand.Reader, key[:]); err != nil {
		return nil, fmt.Errorf("generate sealing key: %w", err)
	}
	if err := os.WriteFile(path, key[:], 0o600); err != nil {
		return nil, fmt.Errorf("write sealing key: %w", err)
	}
	return &key, nil
}

func seal(key *[32]byte, plaintext []byte) ([]byte, error) {
	var nonce [24]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}
	return secretbox.Seal(nonce[:], plaintext, &nonce, key), nil
}

func open(key *[32]byte, sealed []byte) ([]byte, error) {
	var nonce [24]byte
	if len(sealed) < len(nonce) {
		return nil, fmt.Errorf("sealed value too short")
	}
	copy(nonce[:], sealed[:len(nonce)])
	plain, ok := secretbox.Open(nil, sealed[len(nonce):], &nonce, key)
	if !ok {
		return nil, fmt.Errorf("sealed value does not open with the current key")
	}
	return plain, nil
}
