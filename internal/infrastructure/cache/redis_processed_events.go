package cache

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"marketplace_payments/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const (
	defaultKeyPrefix    = "marketplace_payments:processed_event"
	defaultProcessedTTL = 72 * time.Hour
)

// ProcessedEventStore remembers handled webhook deliveries for a bounded
// window. A lost key means the event is applied again as a no-op.
type ProcessedEventStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

var _ interfaces.IProcessedEventStore = (*ProcessedEventStore)(nil)

func NewProcessedEventStore(client redis.UniversalClient, prefix string, ttl time.Duration) *ProcessedEventStore {
	prefix = strings.TrimSuffix(strings.TrimSpace(prefix), ":")
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	if ttl <= 0 {
		ttl = defaultProcessedTTL
	}
	return &ProcessedEventStore{client: client, prefix: prefix, ttl: ttl}
}

// NewRedisClient parses a redis:// URL and pings the server once.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	if strings.TrimSpace(redisURL) == "" {
		return nil, errors.New("redis url is empty")
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	log.Printf("[cache][redis] connected addr=%s db=%d", opts.Addr, opts.DB)
	return client, nil
}

func (s *ProcessedEventStore) key(eventKey string) string {
	return s.prefix + ":" + eventKey
}

func (s *ProcessedEventStore) Seen(ctx context.Context, eventKey string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(eventKey)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *ProcessedEventStore) MarkProcessed(ctx context.Context, eventKey string) error {
	return s.client.Set(ctx, s.key(eventKey), time.Now().UTC().Format(time.RFC3339), s.ttl).Err()
}
