// Package auth определяет вызывающего по bearer-токену и кладет его профиль в контекст запроса.
package auth

import (
	"context"
	"net/http"

	"freight/internal/entities"
	"freight/internal/handlers/rest/response"
	"freight/pkg/logger"
)

type callerKey struct{}

func WithCaller(ctx context.Context, caller entities.User) context.Context {
	return context.WithValue(ctx, callerKey{}, caller)
}

func CallerFromContext(ctx context.Context) (entities.User, bool) {
	caller, ok := ctx.Value(callerKey{}).(entities.User)
	return caller, ok
}

func Middleware(log handlerLogger, verifier Verifier, resolver IdentityResolver) func(http.Handler) http.Handler {
	authLog := log.With(
		logger.NewField("middleware", "auth"),
	)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := verifier.Verify(r.Context(), r.Header.Get("Authorization"))
			if err != nil {
				authLog.With(
					logger.NewField("path", r.URL.Path),
					logger.NewField("remote_addr", r.RemoteAddr),
					logger.NewField("error", err),
				).Warn("request rejected, bad credential")
				response.WriteError(w, authLog, err)
				return
			}

			caller, err := resolver.ResolveIdentity(r.Context(), *identity)
			if err != nil {
				response.WriteError(w, authLog, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithCaller(r.Context(), *caller)))
		})
	}
}
