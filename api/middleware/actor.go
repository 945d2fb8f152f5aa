package middleware

import (
	"context"
	"net/http"

	"github.com/neonmart/neonmart-backend/api/responses"
	"github.com/neonmart/neonmart-backend/internal/team"
	pkgerrors "github.com/neonmart/neonmart-backend/pkg/errors"
	"github.com/neonmart/neonmart-backend/pkg/logger"
)

type contextKey string

const ctxActor contextKey = "actor"

type sessionResolver interface {
	Current(ctx context.Context) (*team.Member, error)
}

// ActorFromContext returns the authenticated member, or nil.
func ActorFromContext(ctx context.Context) *team.Member {
	if ctx == nil {
		return nil
	}
	if actor, ok := ctx.Value(ctxActor).(*team.Member); ok {
		return actor
	}
	return nil
}

// WithActor injects the authenticated member into the context.
func WithActor(ctx context.Context, actor *team.Member) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxActor, actor)
}

// RequireActor resolves the persisted session and rejects requests that have
// no authenticated member behind them.
func RequireActor(sessions sessionResolver, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, err := sessions.Current(r.Context())
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			if actor == nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "login required"))
				return
			}

			ctx := WithActor(r.Context(), actor)
			if logg != nil {
				ctx = logg.WithActor(ctx, actor.Username)
				ctx = logg.WithActorRole(ctx, actor.Role.String())
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
