package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// fileKV keeps every key in one JSON file, the session equivalent of browser
// local storage. Reads tolerate a missing file; a corrupt file surfaces as an
// error so the caller can decide to start empty.
type fileKV struct {
	path string
}

func NewFileKV(path string) KV {
	return &fileKV{path: path}
}

func (f *fileKV) Get(ctx context.Context, key string, value any) (bool, error) {

	entries, err := f.read()
	if err != nil {
		return false, err
	}

	raw, ok := entries[key]
	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(raw, value); err != nil {
		return false, fmt.Errorf("failed to unmarshal stored data for key %s: %w", key, err)
	}

	return true, nil
}

func (f *fileKV) Set(ctx context.Context, key string, value any) error {

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %s: %w", key, err)
	}

	entries, err := f.read()
	if err != nil {
		// overwrite a corrupt file rather than fail every write after it
		entries = map[string]json.RawMessage{}
	}

	entries[key] = data

	return f.write(entries)
}

func (f *fileKV) Delete(ctx context.Context, key string) error {

	entries, err := f.read()
	if err != nil {
		return nil
	}

	delete(entries, key)

	return f.write(entries)
}

func (f *fileKV) Close() error {
	return nil
}

func (f *fileKV) read() (map[string]json.RawMessage, error) {

	entries := map[string]json.RawMessage{}

	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return entries, nil
		}

		return nil, fmt.Errorf("failed to read storage file %s: %w", f.path, err)
	}

	if len(data) == 0 {
		return entries, nil
	}

	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("storage file %s is corrupt: %w", f.path, err)
	}

	return entries, nil
}

func (f *fileKV) write(entries map[string]json.RawMessage) error {

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal storage file: %w", err)
	}

	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write storage file %s: %w", f.path, err)
	}

	return nil
}
