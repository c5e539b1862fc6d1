package push_test

import (
	"log/slog"
	"strings"
	"testing"

	"marketplace/internal/adapters/out/push"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidToken(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"ExponentPushToken[xxxxxxxxxxxxxxxxxxxxxx]", true},
		{"ExpoPushToken[abc-123_DEF]", true},
		{"dQw4w9WgXcQ:APA91bHun4MxP5egoKMwt2KZFBaFUH-1RYqx", true},
		{strings.Repeat("a1", 32), true},
		{"ExponentPushToken[]", false},
		{"short", false},
		{"", false},
		{"has spaces in the middle of a long enough token", false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, push.ValidToken(tt.token))
		})
	}
}

func TestLogTransport_ReturnsMalformedTokens(t *testing.T) {
	transport := push.NewLogTransport(slog.New(slog.DiscardHandler))

	invalid, err := transport.Send(t.Context(),
		[]string{"ExponentPushToken[ok]", "garbage", ""},
		ports.PushMessage{Title: "Order shipped"})

	require.NoError(t, err)
	assert.Equal(t, []string{"garbage", ""}, invalid)
}
