package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "session:"

// RedisStore keeps sessions in Redis with a TTL matching the session
// lifetime, so a restart does not log everyone out. NewRedisStore returns
// nil when Redis is unreachable; callers fall back to the memory store.
type RedisStore struct {
	client *redis.Client
	logger *log.Logger
}

func NewRedisStore(logger *log.Logger) *RedisStore {
	host := strings.TrimSpace(os.Getenv("REDIS_HOST"))
	if host == "" {
		return nil
	}
	port := strings.TrimSpace(os.Getenv("REDIS_PORT"))
	if port == "" {
		port = "6379"
	}
	pass := strings.TrimSpace(os.Getenv("REDIS_PASSWORD"))

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: pass,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		if logger != nil {
			logger.Printf("[Session] Redis unavailable, using in-memory sessions: %v", err)
		}
		_ = client.Close()
		return nil
	}

	return &RedisStore{client: client, logger: logger}
}

func (r *RedisStore) Put(ctx context.Context, s Session) error {
	if r == nil || r.client == nil {
		return errors.New("redis unavailable")
	}
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	return r.client.Set(ctx, redisKeyPrefix+s.Token, b, ttl).Err()
}

func (r *RedisStore) Get(ctx context.Context, token string) (Session, error) {
	if r == nil || r.client == nil {
		return Session{}, errors.New("redis unavailable")
	}
	b, err := r.client.Get(ctx, redisKeyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Session{}, ErrNotFound
		}
		return Session{}, err
	}
	var s Session
	if err := json.Unmarshal(b, &s); err != nil {
		return Session{}, err
	}
	return s, nil
}

func (r *RedisStore) Delete(ctx context.Context, token string) error {
	if r == nil || r.client == nil {
		return errors.New("redis unavailable")
	}
	return r.client.Del(ctx, redisKeyPrefix+token).Err()
}

func (r *RedisStore) Close() error {
	if r == nil || r.client == nil {
		return nil
	}
	return r.client.Close()
}

var _ Store = (*RedisStore)(nil)
