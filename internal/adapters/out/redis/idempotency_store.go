// Package redis keeps short-lived request state in Redis.
package redis

import (
	"context"
	"time"

	radix "github.com/mediocregopher/radix/v3"
)

const keyPrefix = "marketplace:idempotency:"

// IdempotencyStore implements ports.IdempotencyStore. The first response
// remembered for a key wins; later writes for the same key are ignored until
// it expires.
type IdempotencyStore struct {
	client radix.Client
}

// NewIdempotencyStore opens a connection pool of size connections to addr.
func NewIdempotencyStore(addr string, size int) (*IdempotencyStore, error) {
	pool, err := radix.NewPool("tcp", addr, size)
	if err != nil {
		return nil, err
	}
	return &IdempotencyStore{client: pool}, nil
}

func (s *IdempotencyStore) Lookup(_ context.Context, key string) (string, bool, error) {
	var value string
	reply := radix.MaybeNil{Rcv: &value}
	if err := s.client.Do(radix.Cmd(&reply, "GET", keyPrefix+key)); err != nil {
		return "", false, err
	}
	if reply.Nil {
		return "", false, nil
	}
	return value, true, nil
}

func (s *IdempotencyStore) Remember(_ context.Context, key, value string, ttl time.Duration) error {
	seconds := int64(ttl / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	return s.client.Do(radix.FlatCmd(nil, "SET", keyPrefix+key, value, "EX", seconds, "NX"))
}

func (s *IdempotencyStore) Close() error {
	return s.client.Close()
}
