package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/natefinch/atomic"
)

// fileStore keeps every key in one JSON document and replaces the file
// atomically on each write.
type fileStore struct {
	File string
	mu   sync.Mutex
}

var _ KV = &fileStore{}

func NewFile(file string) KV {
	return &fileStore{File: file}
}

func (fs *fileStore) String() string {
	return fmt.Sprintf("file '%s'", fs.File)
}

func (fs *fileStore) load() (map[string]json.RawMessage, error) {
	entries := map[string]json.RawMessage{}
	data, err := os.ReadFile(fs.File)
	if os.IsNotExist(err) {
		return entries, nil
	}
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return entries, nil
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode %s: %w", fs.File, err)
	}
	return entries, nil
}

func (fs *fileStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	entries, err := fs.load()
	if err != nil {
		return nil, false, err
	}
	v, found := entries[key]
	if !found {
		return nil, false, nil
	}
	return []byte(v), true, nil
}

// Put only accepts JSON values, the document stays valid JSON.
func (fs *fileStore) Put(_ context.Context, key string, value []byte) error {
	if !json.Valid(value) {
		return fmt.Errorf("value for %q is not valid JSON", key)
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	entries, err := fs.load()
	if err != nil {
		return err
	}
	entries[key] = json.RawMessage(value)

	// Create the path to the file if it doesn't exist.
	dir := filepath.Dir(fs.File)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return err
		}
	}

	buf := bytes.NewBuffer(nil)
	enc := json.NewEncoder(buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return err
	}
	return atomic.WriteFile(fs.File, buf)
}
