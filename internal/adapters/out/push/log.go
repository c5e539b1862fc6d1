package push

import (
	"context"
	"log/slog"

	"marketplace/internal/core/ports"
)

// LogTransport only logs pushes. It is used when no broker is configured.
type LogTransport struct {
	logger *slog.Logger
}

func NewLogTransport(logger *slog.Logger) LogTransport {
	return LogTransport{logger: logger.With("component", "push.LogTransport")}
}

func (t LogTransport) Send(ctx context.Context, tokens []string, msg ports.PushMessage) ([]string, error) {
	valid, invalid := partition(tokens)
	if len(valid) > 0 {
		t.logger.InfoContext(ctx, "push", "devices", len(valid), "title", msg.Title, "type", msg.Data["type"])
	}
	return invalid, nil
}
