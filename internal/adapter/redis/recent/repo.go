// Package recent stores the recency list as a JSON document in Redis.
package recent

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/wordoftheday/internal/domain"
	"github.com/heartmarshall/wordoftheday/pkg/recentjson"
)

const (
	keyPrefix         = "wordoftheday:recent:"
	connectionTimeout = 5 * time.Second
)

// Options contains configuration for the Redis connection.
type Options struct {
	// Addr is host:port or a redis:// URL.
	Addr     string
	Password string
	DB       int
}

// Repo keeps one named list under a single key, in the same JSON format as
// the file backend.
type Repo struct {
	client *redis.Client
	key    string
}

// New connects to Redis and returns a repo for list.
func New(ctx context.Context, opts Options, list string) (*Repo, error) {
	redisOpts := &redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	}
	if u, err := url.Parse(opts.Addr); err == nil && (u.Scheme == "redis" || u.Scheme == "rediss") {
		parsed, err := redis.ParseURL(opts.Addr)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		if opts.Password != "" {
			parsed.Password = opts.Password
		}
		redisOpts = parsed
	}

	client := redis.NewClient(redisOpts)

	pingCtx, cancel := context.WithTimeout(ctx, connectionTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return NewWithClient(client, list), nil
}

// NewWithClient wraps an existing client.
func NewWithClient(client *redis.Client, list string) *Repo {
	return &Repo{client: client, key: keyPrefix + list}
}

// Key returns the Redis key holding the list.
func (r *Repo) Key() string { return r.key }

// Read returns the stored list; a missing key is an empty list.
func (r *Repo) Read(ctx context.Context) ([]domain.RecencyRecord, error) {
	val, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []domain.RecencyRecord{}, nil
		}
		return nil, fmt.Errorf("redis get %s: %w", r.key, err)
	}
	return recentjson.Decode(val)
}

// Write replaces the stored list.
func (r *Repo) Write(ctx context.Context, records []domain.RecencyRecord) error {
	data, err := recentjson.Encode(records)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", r.key, err)
	}
	return nil
}

// Close closes the Redis connection.
func (r *Repo) Close() error {
	return r.client.Close()
}
