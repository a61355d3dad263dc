package cachestore

import (
	"context"
	"strings"
	"sync"
)

// Ensure MemoryStore satisfies the Store interface.
var _ Store = (*MemoryStore)(nil)

// MemoryStore implements Store with in-process maps. Nothing survives a
// restart, which makes it suitable for tests and for deployments that treat
// the catalog as a pure runtime cache.
type MemoryStore struct {
	mu       sync.RWMutex
	payloads map[string][]byte
	etags    map[string]string
	versions map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		payloads: make(map[string][]byte),
		etags:    make(map[string]string),
		versions: make(map[string]string),
	}
}

func (s *MemoryStore) payloadKey(d Descriptor) string {
	return endpointKey(d.Endpoint) + ":" + tableName(d.Namespace) + ":" + sanitize(d.Language) + ":" + versionHash(d.AppVersion)
}

func (s *MemoryStore) etagKey(d EtagDescriptor) string {
	return endpointKey(d.Endpoint) + ":" + tableName(d.Namespace) + ":" + sanitize(d.Language)
}

func (s *MemoryStore) versionKey(endpoint, language string) string {
	return endpointKey(endpoint) + ":" + sanitize(language)
}

// Load implements Store.
func (s *MemoryStore) Load(_ context.Context, d Descriptor) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.payloads[s.payloadKey(d)]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Save implements Store.
func (s *MemoryStore) Save(_ context.Context, d Descriptor, data []byte) error {
	if len(data) == 0 {
		return ErrEmptyPayload
	}

	stored := make([]byte, len(data))
	copy(stored, data)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.payloads[s.payloadKey(d)] = stored
	return nil
}

// LoadEtag implements Store.
func (s *MemoryStore) LoadEtag(_ context.Context, d EtagDescriptor) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	etag, ok := s.etags[s.etagKey(d)]
	if !ok {
		return "", ErrNotFound
	}
	return etag, nil
}

// SaveEtag implements Store.
func (s *MemoryStore) SaveEtag(_ context.Context, d EtagDescriptor, etag string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.etags[s.etagKey(d)] = etag
	return nil
}

// Version implements Store.
func (s *MemoryStore) Version(_ context.Context, endpoint, language string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	version, ok := s.versions[s.versionKey(endpoint, language)]
	if !ok {
		return "", ErrNotFound
	}
	return version, nil
}

// SetVersion implements Store.
func (s *MemoryStore) SetVersion(_ context.Context, endpoint, language, version string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.versions[s.versionKey(endpoint, language)] = version
	return nil
}

// ClearAll implements Store.
func (s *MemoryStore) ClearAll(_ context.Context, endpoint string) error {
	prefix := endpointKey(endpoint) + ":"

	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.payloads {
		if strings.HasPrefix(key, prefix) {
			delete(s.payloads, key)
		}
	}
	for key := range s.etags {
		if strings.HasPrefix(key, prefix) {
			delete(s.etags, key)
		}
	}
	for key := range s.versions {
		if strings.HasPrefix(key, prefix) {
			delete(s.versions, key)
		}
	}
	return nil
}
