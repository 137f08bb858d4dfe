package utils

import (
	"context"
	"csrfdemo/models"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	publishTimeout   = 5 * time.Second
	publishQueueSize = 64
)

// OpenRedisPool initializes a Redis connection pool
func OpenRedisPool(dsn string) (*redis.Client, error) {
	opt, err := redis.ParseURL(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse redis dsn: %w", err)
	}

	opt.PoolSize = 10
	opt.MinIdleConns = 1
	opt.DialTimeout = 5 * time.Second
	opt.ConnMaxIdleTime = 5 * time.Minute
	// honour context deadlines on socket I/O
	opt.ContextTimeoutEnabled = true

	client := redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return client, nil
}

// StatePublisher fans simulation snapshots out on a Redis channel so viewers
// in other processes can follow along. Nothing is stored. Observe only
// queues; Run does the publishing.
type StatePublisher struct {
	client  *redis.Client
	channel string
	logger  *zap.SugaredLogger
	queue   chan models.State
}

func NewStatePublisher(client *redis.Client, channel string, logger *zap.SugaredLogger) *StatePublisher {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &StatePublisher{
		client:  client,
		channel: channel,
		logger:  logger,
		queue:   make(chan models.State, publishQueueSize),
	}
}

// Publish sends one snapshot
func (p *StatePublisher) Publish(ctx context.Context, state models.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	if err := p.client.Publish(ctx, p.channel, data).Err(); err != nil {
		return fmt.Errorf("publish state to %s: %w", p.channel, err)
	}
	return nil
}

// Observe matches the simulator subscriber signature. It never blocks: when
// the queue is full the snapshot is dropped.
func (p *StatePublisher) Observe(state models.State) {
	select {
	case p.queue <- state:
	default:
		p.logger.Warnw("state publish queue full, dropping state", "channel", p.channel)
	}
}

// Run publishes queued snapshots until ctx is done
func (p *StatePublisher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case state := <-p.queue:
			pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
			if err := p.Publish(pubCtx, state); err != nil && ctx.Err() == nil {
				p.logger.Warnw("state publish failed", "channel", p.channel, "error", err)
			}
			cancel()
		}
	}
}

// SubscribeStates streams snapshots published on channel until ctx is done.
// Malformed payloads are skipped.
func SubscribeStates(ctx context.Context, client *redis.Client, channel string) (<-chan models.State, error) {
	sub := client.Subscribe(ctx, channel)
	// wait for the subscription to be confirmed before returning
	if _, err := sub.Receive(ctx); err != nil {
		sub.Close()
		return nil, fmt.Errorf("subscribe %s: %w", channel, err)
	}

	out := make(chan models.State)
	go func() {
		defer close(out)
		defer sub.Close()

		msgs := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var state models.State
				if err := json.Unmarshal([]byte(msg.Payload), &state); err != nil {
					continue
				}
				select {
				case out <- state:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
