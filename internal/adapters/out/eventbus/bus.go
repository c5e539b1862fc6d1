// Package eventbus is an in-process event bus used when no Kafka brokers are
// configured. Events live only in memory: a crash after the outbox relay
// marked them sent loses them.
package eventbus

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"marketplace/internal/core/ports"
)

var ErrClosed = errors.New("eventbus: closed")

type event struct {
	topic   string
	key     string
	payload []byte
}

// Bus implements ports.EventPublisher. Each subscribed topic is drained by a
// single goroutine, which keeps per-topic ordering.
type Bus struct {
	mu       sync.RWMutex
	queues   map[string]chan event
	handlers map[string]ports.EventHandler
	closed   bool

	backoff time.Duration
	wg      sync.WaitGroup
	logger  *slog.Logger
}

func New(logger *slog.Logger) *Bus {
	return &Bus{
		queues:   make(map[string]chan event),
		handlers: make(map[string]ports.EventHandler),
		backoff:  100 * time.Millisecond,
		logger:   logger.With("component", "eventbus.Bus"),
	}
}

// Subscribe registers the only handler of topic. It must be called before Run.
func (b *Bus) Subscribe(topic string, handler ports.EventHandler, buffer int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[topic] = handler
	b.queues[topic] = make(chan event, buffer)
}

// Publish blocks until the event is queued or ctx ends. Events of a topic
// without subscriber are dropped.
func (b *Bus) Publish(ctx context.Context, topic, key string, payload []byte) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return ErrClosed
	}
	queue, ok := b.queues[topic]
	if !ok {
		b.logger.WarnContext(ctx, "no subscriber, event dropped", "topic", topic, "key", key)
		return nil
	}
	select {
	case queue <- event{topic: topic, key: key, payload: payload}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run starts one worker per topic and returns immediately.
func (b *Bus) Run(ctx context.Context) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for topic, queue := range b.queues {
		b.wg.Add(1)
		go b.drain(ctx, queue, b.handlers[topic])
	}
}

// Close stops accepting events and waits for queued ones to be handled.
func (b *Bus) Close() {
	b.mu.Lock()
	if !b.closed {
		b.closed = true
		for _, queue := range b.queues {
			close(queue)
		}
	}
	b.mu.Unlock()
	b.wg.Wait()
}

func (b *Bus) drain(ctx context.Context, queue <-chan event, handler ports.EventHandler) {
	defer b.wg.Done()
	for e := range queue {
		for attempt := 1; ; attempt++ {
			err := handler(ctx, e.payload)
			if err == nil {
				break
			}
			b.logger.ErrorContext(ctx, "event handler failed",
				"topic", e.topic, "key", e.key, "attempt", attempt, "error", err)
			if ctx.Err() != nil {
				return
			}
			time.Sleep(b.backoff)
		}
	}
}
