// Package rowlock marks list rows busy while a write to them is in flight.
package rowlock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/frontdesk/internal/httperr"
	"github.com/BruksfildServices01/frontdesk/internal/infra/kv"
)

var ErrBusy = httperr.BusinessError{
	Code:    httperr.CodeRowBusy,
	Message: "This appointment is being updated. Try again in a moment.",
}

const defaultReleaseTimeout = 3 * time.Second

type Locker struct {
	store          kv.Store
	ttl            time.Duration
	releaseTimeout time.Duration
	log            zerolog.Logger
}

func New(store kv.Store, ttl time.Duration, log zerolog.Logger) *Locker {
	return &Locker{store: store, ttl: ttl, releaseTimeout: defaultReleaseTimeout, log: log}
}

func key(id uuid.UUID) string {
	return "busy:appointment:" + id.String()
}

// Acquire marks id busy. The returned release must be called once the write
// completes; ErrBusy means another write holds the row.
func (l *Locker) Acquire(ctx context.Context, id uuid.UUID) (func(), error) {
	token := uuid.NewString()
	ok, err := l.store.SetNX(ctx, key(id), token, l.ttl)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrBusy
	}

	return func() {
		// release outlives the request context
		ctx, cancel := context.WithTimeout(context.Background(), l.releaseTimeout)
		defer cancel()

		released, err := l.store.DelIfValue(ctx, key(id), token)
		if err != nil {
			l.log.Warn().Err(err).Str("appointment_id", id.String()).Msg("row lock release failed")
			return
		}
		if !released {
			l.log.Warn().Str("appointment_id", id.String()).Msg("row lock expired before release")
		}
	}, nil
}

// Busy reports whether a write is in flight for id. Lookup failures read as
// not busy.
func (l *Locker) Busy(ctx context.Context, id uuid.UUID) bool {
	busy, err := l.store.Exists(ctx, key(id))
	if err != nil {
		l.log.Warn().Err(err).Str("appointment_id", id.String()).Msg("row lock lookup failed")
		return false
	}
	return busy
}
