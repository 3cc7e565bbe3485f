package credentials

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"golang.org/x/oauth2"
)

type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func key(providerID uint) string {
	return fmt.Sprintf("calendar:token:%d", providerID)
}

func (s *RedisStore) Get(ctx context.Context, providerID uint) (*oauth2.Token, error) {
	b, err := s.rdb.Get(ctx, key(providerID)).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var tok oauth2.Token
	if err := json.Unmarshal(b, &tok); err != nil {
		return nil, err
	}
	return &tok, nil
}

func (s *RedisStore) Put(ctx context.Context, providerID uint, tok *oauth2.Token) error {
	b, err := json.Marshal(tok)
	if err != nil {
		return err
	}
	// No TTL: the bundle carries a refresh token and stays valid until
	// the provider re-authorizes.
	return s.rdb.Set(ctx, key(providerID), b, 0).Err()
}

// Compile-time check
var _ Store = (*RedisStore)(nil)
