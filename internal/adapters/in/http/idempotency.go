package http

import (
	"encoding/json"
	"log/slog"
	"time"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// IdempotencyTTL is how long a remembered response is replayed.
const IdempotencyTTL = 24 * time.Hour

const replayedHeader = "Idempotent-Replayed"

type rememberedResponse struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

// idempotent runs write at most once per (route, caller, key) while the key
// is remembered, replaying the first successful response to retries. Errors
// are not remembered, so a failed attempt can be retried with the same key.
// Without a key or a store, write simply runs.
func (s *Server) idempotent(
	ctx echo.Context,
	actor kernel.Actor,
	key *string,
	write func() (int, any, error),
) error {
	if s.idempotency == nil || key == nil || *key == "" {
		return s.respond(ctx, write)
	}

	reqCtx := ctx.Request().Context()
	storeKey := ctx.Path() + ":" + actor.ID().String() + ":" + *key
	log := s.logger.With(slog.String("idempotency_key", *key))

	raw, found, err := s.idempotency.Lookup(reqCtx, storeKey)
	switch {
	case err != nil:
		log.WarnContext(reqCtx, "idempotency lookup failed, running request", slog.Any("error", err))
	case found:
		var remembered rememberedResponse
		if err = json.Unmarshal([]byte(raw), &remembered); err == nil {
			ctx.Response().Header().Set(replayedHeader, "true")
			return ctx.JSONBlob(remembered.Status, remembered.Body)
		}
		log.WarnContext(reqCtx, "discarding unreadable remembered response", slog.Any("error", err))
	}

	status, body, err := write()
	if err != nil {
		return s.fail(ctx, err)
	}
	encoded, err := json.Marshal(body)
	if err != nil {
		return s.fail(ctx, err)
	}

	remembered, err := json.Marshal(rememberedResponse{Status: status, Body: encoded})
	if err == nil {
		err = s.idempotency.Remember(reqCtx, storeKey, string(remembered), IdempotencyTTL)
	}
	if err != nil {
		log.WarnContext(reqCtx, "failed to remember response", slog.Any("error", err))
	}
	return ctx.JSONBlob(status, encoded)
}

func (s *Server) respond(ctx echo.Context, write func() (int, any, error)) error {
	status, body, err := write()
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(status, body)
}
