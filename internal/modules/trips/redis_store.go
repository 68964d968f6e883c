package trips

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	tripKeyPrefix = "trips:%s"
	tripIndexKey  = "trips:index"
)

// RedisStore keeps each trip as a JSON string and orders them with a sorted set scored by
// creation time in milliseconds.
type RedisStore struct {
	redis *redis.Client
}

func NewRedisStore(redis *redis.Client) *RedisStore {
	return &RedisStore{redis: redis}
}

func (s *RedisStore) Create(ctx context.Context, t *Trip) error {
	raw, err := json.Marshal(t)
	if err != nil {
		return errors.Wrap(err, "marshal trip")
	}
	pipe := s.redis.TxPipeline()
	pipe.Set(ctx, tripKey(t.ID), raw, 0)
	pipe.ZAdd(ctx, tripIndexKey, redis.Z{Score: float64(t.CreatedAt.UnixMilli()), Member: t.ID})
	_, err = pipe.Exec(ctx)
	return errors.Wrap(err, "store trip")
}

func (s *RedisStore) Get(ctx context.Context, id string) (*Trip, error) {
	raw, err := s.redis.Get(ctx, tripKey(id)).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "get trip")
	}
	var t Trip
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, errors.Wrapf(err, "decode trip %s", id)
	}
	return &t, nil
}

func (s *RedisStore) List(ctx context.Context, limit int) ([]*Trip, error) {
	ids, err := s.redis.ZRevRange(ctx, tripIndexKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "read trip index")
	}
	if len(ids) == 0 {
		return []*Trip{}, nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = tripKey(id)
	}
	vals, err := s.redis.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrap(err, "read trips")
	}

	out := make([]*Trip, 0, len(vals))
	for i, v := range vals {
		str, ok := v.(string)
		if !ok {
			// indexed id whose body is gone
			continue
		}
		var t Trip
		if err := json.Unmarshal([]byte(str), &t); err != nil {
			return nil, errors.Wrapf(err, "decode trip %s", ids[i])
		}
		out = append(out, &t)
	}
	return out, nil
}

func tripKey(id string) string {
	return fmt.Sprintf(tripKeyPrefix, id)
}
