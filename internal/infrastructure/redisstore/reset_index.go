package redisstore

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

func keyResetToken(t string) string { return "pwd:reset:token:" + t }

// ResetIndex maps reset tokens to user ids so a reset does not need to scan every user.
// Entries expire together with the token they index.
type ResetIndex struct {
	rdb *redis.Client
}

func NewResetIndex(rdb *redis.Client) *ResetIndex {
	return &ResetIndex{rdb: rdb}
}

func (i *ResetIndex) Put(ctx context.Context, token string, userID int, ttl time.Duration) error {
	return i.rdb.Set(ctx, keyResetToken(token), userID, ttl).Err()
}

// Lookup returns the user id for token; ok is false when the token is unknown.
func (i *ResetIndex) Lookup(ctx context.Context, token string) (userID int, ok bool, err error) {
	v, err := i.rdb.Get(ctx, keyResetToken(token)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	id, err := strconv.Atoi(v)
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}

func (i *ResetIndex) Delete(ctx context.Context, token string) error {
	return i.rdb.Del(ctx, keyResetToken(token)).Err()
}
