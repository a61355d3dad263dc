package cachestore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persists cache entries as files beneath a base directory, one
// subdirectory per source endpoint. Safe for concurrent use by multiple
// goroutines; concurrent writers to the same descriptor race benignly (last
// rename wins).
type FileStore struct {
	dir string
}

// NewFileStore creates a file-backed store rooted at dir, creating it if
// needed.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("cache directory cannot be empty")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the base directory of the store.
func (s *FileStore) Dir() string {
	return s.dir
}

// Load returns the cached payload, or ErrNotFound when no file exists.
func (s *FileStore) Load(_ context.Context, d Descriptor) ([]byte, error) {
	data, err := os.ReadFile(s.payloadPath(d))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cached catalog: %w", err)
	}
	return data, nil
}

// Save atomically persists the payload via a temp file and rename.
func (s *FileStore) Save(_ context.Context, d Descriptor, data []byte) error {
	if len(data) == 0 {
		return ErrEmptyPayload
	}
	return s.writeFile(s.payloadPath(d), data)
}

// LoadEtag returns the last saved validation token, or ErrNotFound.
func (s *FileStore) LoadEtag(_ context.Context, d EtagDescriptor) (string, error) {
	data, err := os.ReadFile(s.etagPath(d))
	if os.IsNotExist(err) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read cached etag: %w", err)
	}
	return string(data), nil
}

// SaveEtag atomically persists the validation token.
func (s *FileStore) SaveEtag(_ context.Context, d EtagDescriptor, etag string) error {
	return s.writeFile(s.etagPath(d), []byte(etag))
}

// Version returns the app-version marker for a language, or ErrNotFound.
func (s *FileStore) Version(_ context.Context, endpoint, language string) (string, error) {
	path := filepath.Join(s.endpointDir(endpoint), sanitize(language)+".version")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read version marker: %w", err)
	}
	return string(data), nil
}

// SetVersion records the app-version marker for a language.
func (s *FileStore) SetVersion(_ context.Context, endpoint, language, version string) error {
	path := filepath.Join(s.endpointDir(endpoint), sanitize(language)+".version")
	return s.writeFile(path, []byte(version))
}

// ClearAll removes the whole endpoint subtree.
func (s *FileStore) ClearAll(_ context.Context, endpoint string) error {
	if err := os.RemoveAll(s.endpointDir(endpoint)); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	return nil
}

func (s *FileStore) endpointDir(endpoint string) string {
	return filepath.Join(s.dir, endpointKey(endpoint))
}

func (s *FileStore) payloadPath(d Descriptor) string {
	name := fmt.Sprintf("%s_%s_%s.json", tableName(d.Namespace), sanitize(d.Language), versionHash(d.AppVersion))
	return filepath.Join(s.endpointDir(d.Endpoint), name)
}

func (s *FileStore) etagPath(d EtagDescriptor) string {
	name := fmt.Sprintf("%s_%s.etag", tableName(d.Namespace), sanitize(d.Language))
	return filepath.Join(s.endpointDir(d.Endpoint), name)
}

// writeFile writes data to path via a private temp file and rename, so
// readers never observe a partial write and concurrent writers to the same
// path cannot publish each other's partial content.
func (s *FileStore) writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp")
	if err != nil {
		return fmt.Errorf("failed to create cache temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to write cache file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name()) // Best effort cleanup
		return fmt.Errorf("failed to finalize cache file: %w", err)
	}

	return nil
}

var _ Store = (*FileStore)(nil)
