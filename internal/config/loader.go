package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Load initializes the store from the file at path. A missing file is
// created holding the current values. An existing file is decoded and
// merged strictly; on any error the store keeps its previous values.
//
// Creation is not atomic: a crash between create and write leaves an empty
// file, which the next Load reports as malformed.
func (s *Store) Load(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s.create(path)
		}
		return fmt.Errorf("%w: %s: %w", ErrFileUnreadable, path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrFileUnreadable, path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrFileUnreadable, path, err)
	}

	raw, err := decode(data)
	if err != nil {
		return err
	}
	return s.Import(raw)
}

// Save writes the current values to path, replacing any existing file.
// Nothing calls it implicitly.
func (s *Store) Save(path string) error {
	data, err := s.encode()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func (s *Store) create(path string) error {
	data, err := s.encode()
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return fmt.Errorf("create config %s: %w", path, err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write config %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close config %s: %w", path, err)
	}
	return nil
}

func (s *Store) encode() ([]byte, error) {
	data, err := json.MarshalIndent(s.Export(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return append(data, '\n'), nil
}

// decode parses data as a single JSON object. Numbers are kept as
// json.Number so integers survive without a float round trip.
func decode(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %v", ErrMalformedConfig, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after config object", ErrMalformedConfig)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: config must be a JSON object", ErrMalformedConfig)
	}
	return raw, nil
}
