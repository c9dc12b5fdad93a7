// Package session keeps the per-requester result sets that power
// search-in-results. Entries expire on their own; nothing else about a turn
// is persisted.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gigwork/jobchat/pkg/repository"
)

const keyPrefix = "jobchat:results:"

// DefaultTTL bounds how long a result set stays searchable.
const DefaultTTL = 30 * time.Minute

// RedisResultStore implements repository.ResultStore on a shared Redis
// client.
type RedisResultStore struct {
	rdb *redis.Client
	ttl time.Duration
}

var _ repository.ResultStore = (*RedisResultStore)(nil)

func New(rdb *redis.Client, ttl time.Duration) *RedisResultStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisResultStore{rdb: rdb, ttl: ttl}
}

// SaveResults overwrites the requester's last result set.
func (s *RedisResultStore) SaveResults(ctx context.Context, requesterID string, ids []int64) error {
	b, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("marshal result ids: %w", err)
	}
	if err := s.rdb.Set(ctx, keyPrefix+requesterID, b, s.ttl).Err(); err != nil {
		return fmt.Errorf("store result ids: %w", err)
	}
	return nil
}

// LastResults returns the requester's previous result set; nil when none is
// stored or it has expired.
func (s *RedisResultStore) LastResults(ctx context.Context, requesterID string) ([]int64, error) {
	b, err := s.rdb.Get(ctx, keyPrefix+requesterID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load result ids: %w", err)
	}

	var ids []int64
	if err := json.Unmarshal(b, &ids); err != nil {
		return nil, fmt.Errorf("unmarshal result ids: %w", err)
	}
	return ids, nil
}
