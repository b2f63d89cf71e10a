package audit

import (
	"context"

	"github.com/google/uuid"
)

type actorKey struct{}

// WithActor records the signed-in staff member on ctx.
func WithActor(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, actorKey{}, userID)
}

// ActorFrom returns the staff member recorded by WithActor, or nil.
func ActorFrom(ctx context.Context) *uuid.UUID {
	id, ok := ctx.Value(actorKey{}).(uuid.UUID)
	if !ok {
		return nil
	}
	return &id
}
