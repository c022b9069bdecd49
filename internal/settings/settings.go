// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package settings persists the user configuration record to a YAML file.
// The service credential is the one field stored encrypted; everything
// else is plain text. The conversion pipeline never reads or writes this
// store, it only consumes a request the caller assembles from it.
package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/docwiki/internal/secrets"
	"github.com/pdiddy/docwiki/pkg/types"
)

const (
	configFile = "docwiki.yaml"
	keyFile    = "docwiki.key"
)

// Store loads and saves the configuration record in one directory,
// sealing the credential with the key file beside it.
type Store struct {
	configPath string
	keyPath    string
}

// NewStore creates a store rooted at dir; the config and key files live
// directly inside it.
func NewStore(dir string) *Store {
	return &Store{
		configPath: filepath.Join(dir, configFile),
		keyPath:    filepath.Join(dir, keyFile),
	}
}

// Path returns the config file location, for display.
func (s *Store) Path() string {
	return s.configPath
}

// Load reads the persisted record and returns it along with the decrypted
// credential. A missing config file is not an error; it yields a zero
// record and an empty credential.
func (s *Store) Load() (types.ConfigRecord, string, error) {
	var record types.ConfigRecord

	data, err := os.ReadFile(s.configPath)
	if os.IsNotExist(err) {
		return record, "", nil
	}
	if err != nil {
		return record, "", fmt.Errorf("reading config %s: %w", s.configPath, err)
	}

	if err := yaml.Unmarshal(data, &record); err != nil {
		return record, "", fmt.Errorf("parsing config %s: %w", s.configPath, err)
	}

	key, err := secrets.LoadKey(s.keyPath)
	if err != nil {
		return record, "", err
	}
	credential, err := secrets.Open(key, record.EncryptedCredential)
	if err != nil {
		return record, "", fmt.Errorf("decrypting stored credential: %w", err)
	}
	return record, credential, nil
}

// Save seals credential into the record and writes it out, creating the
// config directory when needed.
func (s *Store) Save(record types.ConfigRecord, credential string) error {
	if err := os.MkdirAll(filepath.Dir(s.configPath), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	key, err := secrets.LoadKey(s.keyPath)
	if err != nil {
		return err
	}
	sealed, err := secrets.Seal(key, credential)
	if err != nil {
		return err
	}
	record.EncryptedCredential = sealed

	data, err := yaml.Marshal(record)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(s.configPath, data, 0o644); err != nil {
		return fmt.Errorf("writing config %s: %w", s.configPath, err)
	}
	return nil
}
