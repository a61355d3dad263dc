package cachestore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// redisScanBatch bounds SCAN page size during ClearAll.
const redisScanBatch = 1000

// RedisStore persists cache entries in a Redis-compatible server, for
// server-side deployments where the catalog cache is shared across instances.
// The client's lifecycle belongs to the caller.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisStore creates a redis-backed store. keyPrefix namespaces all keys
// and defaults to "localize".
func NewRedisStore(client redis.UniversalClient, keyPrefix string) (*RedisStore, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client cannot be nil")
	}
	if keyPrefix == "" {
		keyPrefix = "localize"
	}
	return &RedisStore{client: client, prefix: keyPrefix}, nil
}

// Load returns the cached payload, or ErrNotFound.
func (s *RedisStore) Load(ctx context.Context, d Descriptor) ([]byte, error) {
	data, err := s.client.Get(ctx, s.payloadKey(d)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cached catalog: %w", err)
	}
	return data, nil
}

// Save persists the payload. Entries never expire; invalidation happens via
// ClearAll and the version marker.
func (s *RedisStore) Save(ctx context.Context, d Descriptor, data []byte) error {
	if len(data) == 0 {
		return ErrEmptyPayload
	}
	if err := s.client.Set(ctx, s.payloadKey(d), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save cached catalog: %w", err)
	}
	return nil
}

// LoadEtag returns the last saved validation token, or ErrNotFound.
func (s *RedisStore) LoadEtag(ctx context.Context, d EtagDescriptor) (string, error) {
	etag, err := s.client.Get(ctx, s.etagKey(d)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read cached etag: %w", err)
	}
	return etag, nil
}

// SaveEtag persists the validation token.
func (s *RedisStore) SaveEtag(ctx context.Context, d EtagDescriptor, etag string) error {
	if err := s.client.Set(ctx, s.etagKey(d), etag, 0).Err(); err != nil {
		return fmt.Errorf("failed to save cached etag: %w", err)
	}
	return nil
}

// Version returns the app-version marker for a language, or ErrNotFound.
func (s *RedisStore) Version(ctx context.Context, endpoint, language string) (string, error) {
	version, err := s.client.Get(ctx, s.versionKey(endpoint, language)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read version marker: %w", err)
	}
	return version, nil
}

// SetVersion records the app-version marker for a language.
func (s *RedisStore) SetVersion(ctx context.Context, endpoint, language, version string) error {
	if err := s.client.Set(ctx, s.versionKey(endpoint, language), version, 0).Err(); err != nil {
		return fmt.Errorf("failed to save version marker: %w", err)
	}
	return nil
}

// ClearAll removes every key under the endpoint via SCAN+DEL batches.
func (s *RedisStore) ClearAll(ctx context.Context, endpoint string) error {
	pattern := s.endpointPrefix(endpoint) + ":*"

	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, pattern, redisScanBatch).Result()
		if err != nil {
			return fmt.Errorf("failed to scan cache keys: %w", err)
		}
		if len(keys) > 0 {
			if err := s.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("failed to delete cache keys: %w", err)
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

func (s *RedisStore) endpointPrefix(endpoint string) string {
	return s.prefix + ":" + endpointKey(endpoint)
}

func (s *RedisStore) payloadKey(d Descriptor) string {
	return fmt.Sprintf("%s:table:%s:%s:%s",
		s.endpointPrefix(d.Endpoint), tableName(d.Namespace), sanitize(d.Language), versionHash(d.AppVersion))
}

func (s *RedisStore) etagKey(d EtagDescriptor) string {
	return fmt.Sprintf("%s:etag:%s:%s",
		s.endpointPrefix(d.Endpoint), tableName(d.Namespace), sanitize(d.Language))
}

func (s *RedisStore) versionKey(endpoint, language string) string {
	return fmt.Sprintf("%s:version:%s", s.endpointPrefix(endpoint), sanitize(language))
}

var _ Store = (*RedisStore)(nil)
