package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// File is a KV backed by a JSON object on disk. Every Set rewrites the
// whole file through a temp file and rename, so readers never see a
// partial write.
type File struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// DefaultPath returns the per-user progress file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("store: locate config dir: %w", err)
	}
	return filepath.Join(dir, "umbrella-glide", "progress.json"), nil
}

// Open loads the store at path. A missing file yields an empty store. A
// file that cannot be decoded also yields a usable empty store, together
// with an error wrapping ErrCorrupt; the next Set overwrites it.
func Open(path string) (*File, error) {
	f := &File{path: path, values: map[string]string{}}
	if err := f.Reload(); err != nil {
		return f, err
	}
	return f, nil
}

// Path returns the backing file path.
func (f *File) Path() string { return f.path }

// Reload re-reads the backing file, replacing the cached values.
func (f *File) Reload() error {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		f.mu.Lock()
		f.values = map[string]string{}
		f.mu.Unlock()
		return nil
	}
	if err != nil {
		return fmt.Errorf("store: read %s: %w", f.path, err)
	}
	values := map[string]string{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &values); err != nil {
			f.mu.Lock()
			f.values = map[string]string{}
			f.mu.Unlock()
			return fmt.Errorf("%w: %s: %v", ErrCorrupt, f.path, err)
		}
	}
	f.mu.Lock()
	f.values = values
	f.mu.Unlock()
	return nil
}

// Get returns the cached value stored under key.
func (f *File) Get(key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[key]
	return v, ok, nil
}

// Set stores value under key and writes the file. On a write error the
// value stays cached for this process.
func (f *File) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value
	return f.writeLocked()
}

// Snapshot returns a copy of all cached values.
func (f *File) Snapshot() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]string, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

func (f *File) writeLocked() error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("store: create %s: %w", dir, err)
	}
	data, err := json.MarshalIndent(f.values, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".progress-*.json")
	if err != nil {
		return fmt.Errorf("store: temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("store: write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("store: close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("store: replace %s: %w", f.path, err)
	}
	return nil
}
