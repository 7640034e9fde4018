package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Abandoned carts are kept for 30 days, refreshed on every write.
const cartTTL = 30 * 24 * time.Hour

// RedisStorage persists one cart session under a Redis key and
// broadcasts every save over pub/sub so sibling sessions (other tabs
// or devices sharing the cart token) converge.
type RedisStorage struct {
	rdb       *redis.Client
	sessionID string
}

func NewRedisStorage(rdb *redis.Client, sessionID string) *RedisStorage {
	return &RedisStorage{rdb: rdb, sessionID: sessionID}
}

func (s *RedisStorage) key() string     { return "cart:" + s.sessionID }
func (s *RedisStorage) channel() string { return "cart:changes:" + s.sessionID }

func (s *RedisStorage) Load(ctx context.Context) ([]Line, error) {
	raw, err := s.rdb.Get(ctx, s.key()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart %s: %w", s.sessionID, err)
	}
	var lines []Line
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, fmt.Errorf("decode cart %s: %w", s.sessionID, err)
	}
	return lines, nil
}

func (s *RedisStorage) Save(ctx context.Context, lines []Line) error {
	payload, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, s.key(), payload, cartTTL).Err(); err != nil {
		return fmt.Errorf("save cart %s: %w", s.sessionID, err)
	}
	if err := s.rdb.Publish(ctx, s.channel(), payload).Err(); err != nil {
		// The write is durable; only cross-session convergence is delayed.
		log.Printf("[cart] broadcast failed for session %s: %v", s.sessionID, err)
	}
	return nil
}

func (s *RedisStorage) Watch(ctx context.Context) (<-chan []Line, func(), error) {
	sub := s.rdb.Subscribe(ctx, s.channel())
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, nil, err
	}

	ch := make(chan []Line, 4)
	go func() {
		defer close(ch)
		for msg := range sub.Channel() {
			var lines []Line
			if err := json.Unmarshal([]byte(msg.Payload), &lines); err != nil {
				log.Printf("[cart] bad broadcast payload for session %s: %v", s.sessionID, err)
				continue
			}
			select {
			case ch <- lines:
			default:
			}
		}
	}()

	cancel := func() { _ = sub.Close() }
	return ch, cancel, nil
}
