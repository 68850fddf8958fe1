package notifier

import (
	"context"
	"encoding/json"
	"time"

	"hotel-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Lifecycle event names published on the booking channel.
const (
	EventBookingCreated    = "booking.created"
	EventBookingApproved   = "booking.approved"
	EventBookingRejected   = "booking.rejected"
	EventBookingPaid       = "booking.paid"
	EventBookingExtended   = "booking.extended"
	EventBookingCheckedOut = "booking.checkedOut"
)

// EventPublisher emits booking lifecycle events. Delivery is best-effort:
// a publish failure is logged and never fails the transition that caused it.
type EventPublisher interface {
	Publish(event string, payload map[string]any)
	Close() error
}

type redisPublisher struct {
	client  *redis.Client
	channel string
	log     *zap.Logger
}

func NewRedisPublisher(cfg utils.RedisConfig, log *zap.Logger) (EventPublisher, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return &redisPublisher{
		client:  client,
		channel: cfg.EventChannel,
		log:     log.With(zap.String("component", "notifier")),
	}, nil
}

// Publish serializes the event and fires it on the pub/sub channel from a
// goroutine so the calling transition never blocks on delivery.
func (p *redisPublisher) Publish(event string, payload map[string]any) {
	body := map[string]any{
		"event":       event,
		"occurred_at": time.Now().UTC().Format(time.RFC3339),
	}
	for k, v := range payload {
		body[k] = v
	}

	data, err := json.Marshal(body)
	if err != nil {
		p.log.Error("Failed to marshal event", zap.Error(err), zap.String("event", event))
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := p.client.Publish(ctx, p.channel, data).Err(); err != nil {
			p.log.Warn("Failed to publish event",
				zap.Error(err),
				zap.String("event", event),
				zap.String("channel", p.channel),
			)
		}
	}()
}

func (p *redisPublisher) Close() error {
	return p.client.Close()
}

// NopPublisher drops every event. Used when redis is not configured and in
// tests.
type NopPublisher struct{}

func (NopPublisher) Publish(string, map[string]any) {}
func (NopPublisher) Close() error                   { return nil }
