package auth

import "context"

type contextKey string

const actorContextKey contextKey = "actor"

// WithActor stores the actor in ctx.
func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorContextKey, actor)
}

// ActorFromContext returns the actor stored by the interceptor or middleware.
func ActorFromContext(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(actorContextKey).(Actor)
	return actor, ok
}

// ActorID returns the id of the actor in ctx, or "" for anonymous calls.
func ActorID(ctx context.Context) string {
	actor, _ := ActorFromContext(ctx)
	return actor.ID
}
