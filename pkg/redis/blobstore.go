package redis

import (
	"context"
	"errors"
	"fmt"

	redisclient "github.com/redis/go-redis/v9"
)

// BlobStore adapts Redis string keys to the durable get/set collaborator the
// order log persists through. Values are opaque serialized payloads and are
// stored without a TTL; order history must outlive the session.
type BlobStore struct{}

func NewBlobStore() *BlobStore {
	return &BlobStore{}
}

func (s *BlobStore) Get(ctx context.Context, key string) (string, bool, error) {
	client := RedisClient()
	defer client.Close()

	value, err := client.Get(ctx, key).Result()
	if errors.Is(err, redisclient.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read blob %s: %w", key, err)
	}
	return value, true, nil
}

func (s *BlobStore) Set(ctx context.Context, key, value string) error {
	client := RedisClient()
	defer client.Close()

	if err := client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to write blob %s: %w", key, err)
	}
	return nil
}
