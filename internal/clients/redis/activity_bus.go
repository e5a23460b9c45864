package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/skillforge/dashboard-backend/internal/logger"
	"github.com/skillforge/dashboard-backend/internal/sse"
)

// ActivityBus carries insert events between processes: the seeder (or any
// future writer) publishes, the API server forwards to its SSE hub. Push is
// best effort and independent of the pull-based polling loop.
type ActivityBus interface {
	Publish(ctx context.Context, ev sse.Event) error
	StartForwarder(ctx context.Context, onEvent func(ev sse.Event)) error
	Close() error
}

type activityBus struct {
	log     *logger.Logger
	rdb     *goredis.Client
	channel string
}

func NewActivityBus(log *logger.Logger) (ActivityBus, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}
	ch := strings.TrimSpace(os.Getenv("REDIS_CHANNEL"))
	if ch == "" {
		ch = "activity"
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &activityBus{
		log:     log.With("service", "RedisActivityBus"),
		rdb:     rdb,
		channel: ch,
	}, nil
}

func (b *activityBus) Publish(ctx context.Context, ev sse.Event) error {
	if b == nil || b.rdb == nil {
		return fmt.Errorf("activity bus not initialized")
	}
	raw, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return b.rdb.Publish(ctx, b.channel, raw).Err()
}

func (b *activityBus) StartForwarder(ctx context.Context, onEvent func(ev sse.Event)) error {
	if b == nil || b.rdb == nil {
		return fmt.Errorf("activity bus not initialized")
	}
	pubsub := b.rdb.Subscribe(ctx, b.channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return fmt.Errorf("redis subscribe: %w", err)
	}

	go func() {
		defer pubsub.Close()
		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var ev sse.Event
				if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
					b.log.Warn("Dropping malformed activity event", "error", err)
					continue
				}
				onEvent(ev)
			}
		}
	}()
	return nil
}

func (b *activityBus) Close() error {
	if b == nil || b.rdb == nil {
		return nil
	}
	return b.rdb.Close()
}
