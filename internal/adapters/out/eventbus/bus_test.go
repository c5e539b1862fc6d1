package eventbus_test

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"marketplace/internal/adapters/out/eventbus"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_DeliversInOrderAndRetriesFailures(t *testing.T) {
	ctx := t.Context()
	bus := eventbus.New(slog.New(slog.DiscardHandler))

	var (
		mu       sync.Mutex
		received []string
		failures = 1
	)
	bus.Subscribe("order.delivered", func(_ context.Context, payload []byte) error {
		mu.Lock()
		defer mu.Unlock()
		if string(payload) == "b" && failures > 0 {
			failures--
			return errors.New("transient")
		}
		received = append(received, string(payload))
		return nil
	}, 8)
	bus.Run(ctx)

	for _, p := range []string{"a", "b", "c"} {
		require.NoError(t, bus.Publish(ctx, "order.delivered", "order-1", []byte(p)))
	}
	bus.Close()

	assert.Equal(t, []string{"a", "b", "c"}, received)
	assert.ErrorIs(t, bus.Publish(ctx, "order.delivered", "order-1", []byte("d")), eventbus.ErrClosed)
}

func TestBus_TopicWithoutSubscriberIsDropped(t *testing.T) {
	bus := eventbus.New(slog.New(slog.DiscardHandler))
	bus.Run(t.Context())

	assert.NoError(t, bus.Publish(t.Context(), "nobody.listens", "k", []byte("x")))
	bus.Close()
}
