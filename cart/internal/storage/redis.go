package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	commonErrors "github.com/Alturino/salon/internal/errors"
)

type Redis struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) Redis {
	return Redis{client: client}
}

func (r Redis) Load(c context.Context) ([]byte, error) {
	value, err := r.client.Get(c, SnapshotKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, commonErrors.ErrSnapshotMissing
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (r Redis) Save(c context.Context, value []byte) error {
	// no TTL, the cart persists until cleared
	return r.client.Set(c, SnapshotKey, value, 0).Err()
}

func (r Redis) Delete(c context.Context) error {
	return r.client.Del(c, SnapshotKey).Err()
}
