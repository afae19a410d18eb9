package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/budjb/things-we-make/internal/session"
)

type contextKey string

// SessionContextKey is the context key for the visitor session.
const SessionContextKey contextKey = "session"

// Session returns a middleware that loads the visitor session into the request context.
func Session(store *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			data, err := store.Get(r)
			if err == nil && data != nil {
				r = r.WithContext(WithSession(r.Context(), data))
			}

			next.ServeHTTP(w, r)
		})
	}
}

// EnsureVisitor issues a new visitor cookie when the request carries none.
// It must run after Session.
func EnsureVisitor(store *session.Store, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if GetSession(r.Context()) == nil {
				data := session.New()
				if err := store.Set(w, data); err != nil {
					logger.Error("failed to set visitor cookie", "error", err)
				} else {
					r = r.WithContext(WithSession(r.Context(), data))
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// WithSession returns a copy of ctx carrying data.
func WithSession(ctx context.Context, data *session.Data) context.Context {
	return context.WithValue(ctx, SessionContextKey, data)
}

// GetSession retrieves the visitor session from context.
func GetSession(ctx context.Context) *session.Data {
	data, ok := ctx.Value(SessionContextKey).(*session.Data)
	if !ok {
		return nil
	}
	return data
}
