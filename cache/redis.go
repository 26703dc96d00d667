package cache

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/veracomply/sdk/evidence"
)

// keyPrefix namespaces classification entries in a shared Redis instance.
const keyPrefix = "evidence:classification:"

// RedisOptions configures the Redis connection.
type RedisOptions struct {
	// URL is the Redis connection string (e.g., "redis://localhost:6379")
	URL string

	// TLS configuration for secure connections
	TLS *tls.Config

	// TTL is the entry time-to-live. Defaults to DefaultTTL.
	TTL time.Duration

	// ConnectTimeout is the maximum time to wait for connection establishment
	ConnectTimeout time.Duration

	// ReadTimeout is the maximum time to wait for read operations
	ReadTimeout time.Duration

	// WriteTimeout is the maximum time to wait for write operations
	WriteTimeout time.Duration
}

// Redis implements Cache on a shared Redis instance, for deployments where
// several workers classify documents and must agree on cached results.
// Expiry is delegated to Redis key TTLs.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a Redis-backed cache with the given options and verifies
// connectivity.
func NewRedis(opts RedisOptions) (*Redis, error) {
	if opts.URL == "" {
		opts.URL = "redis://localhost:6379"
	}

	if opts.TTL == 0 {
		opts.TTL = DefaultTTL
	}

	if opts.ConnectTimeout == 0 {
		opts.ConnectTimeout = 5 * time.Second
	}

	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 30 * time.Second
	}

	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = 5 * time.Second
	}

	redisOpts, err := redis.ParseURL(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	redisOpts.TLSConfig = opts.TLS
	redisOpts.DialTimeout = opts.ConnectTimeout
	redisOpts.ReadTimeout = opts.ReadTimeout
	redisOpts.WriteTimeout = opts.WriteTimeout

	client := redis.NewClient(redisOpts)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), opts.ConnectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Redis{client: client, ttl: opts.TTL}, nil
}

// Get retrieves the cached result for a document.
func (r *Redis) Get(ctx context.Context, documentID string) (*evidence.Result, error) {
	if documentID == "" {
		return nil, ErrInvalidKey
	}

	data, err := r.client.Get(ctx, keyPrefix+documentID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailed, err)
	}

	var result evidence.Result
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("%w: corrupt entry: %v", ErrStorageFailed, err)
	}
	return &result, nil
}

// Set stores a result for a document with the configured TTL.
func (r *Redis) Set(ctx context.Context, documentID string, result evidence.Result) error {
	if documentID == "" {
		return ErrInvalidKey
	}

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if err := r.client.Set(ctx, keyPrefix+documentID, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageFailed, err)
	}
	return nil
}

// Invalidate removes the entry for a document.
func (r *Redis) Invalidate(ctx context.Context, documentID string) error {
	if documentID == "" {
		return ErrInvalidKey
	}

	if err := r.client.Del(ctx, keyPrefix+documentID).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageFailed, err)
	}
	return nil
}

// Ping verifies the Redis connection is alive.
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the Redis connection.
func (r *Redis) Close() error {
	return r.client.Close()
}
