// Package kv holds short-lived flags with a TTL: row busy markers and revoked
// session tokens.
package kv

import (
	"context"
	"time"
)

type Store interface {
	// SetNX sets key to value if it is absent and reports whether it did.
	SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	Del(ctx context.Context, key string) error
	// DelIfValue deletes key only while it still holds value.
	DelIfValue(ctx context.Context, key, value string) (bool, error)
	Exists(ctx context.Context, key string) (bool, error)
}
