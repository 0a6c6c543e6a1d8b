package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/sitebazaar/sitebazaar-api/internal/usecase"
)

type actorKeyType struct{}

var actorKey actorKeyType

// Actor maps the identity headers set by the authenticating gateway
// into an ActorContext. The core never sees a token; X-User-ID and
// X-Admin arrive already verified upstream. Missing headers mean an
// anonymous caller, which is fine for the public endpoints.
func Actor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor := usecase.ActorContext{
			UserID:  strings.TrimSpace(r.Header.Get("X-User-ID")),
			IsAdmin: strings.EqualFold(r.Header.Get("X-Admin"), "true"),
		}
		ctx := context.WithValue(r.Context(), actorKey, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ActorFrom returns the actor put there by the middleware, or
// Anonymous when the middleware never ran.
func ActorFrom(ctx context.Context) usecase.ActorContext {
	if a, ok := ctx.Value(actorKey).(usecase.ActorContext); ok {
		return a
	}
	return usecase.Anonymous
}
