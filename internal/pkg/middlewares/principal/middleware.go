package principal

import (
	"context"
	"net/http"
	"strconv"

	"freightmarket/internal/entities"
)

const (
	headerID   = "X-Principal-Id"
	headerRole = "X-Principal-Role"
)

type ctxKey struct{}

// Middleware resolves the authenticated caller from the gateway headers.
// Requests without a valid principal never reach the handlers.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(r.Header.Get(headerID), 10, 64)
		if err != nil || id <= 0 {
			http.Error(w, "missing or invalid principal", http.StatusUnauthorized)
			return
		}

		role := entities.Role(r.Header.Get(headerRole))
		if !role.Known() {
			http.Error(w, "missing or invalid principal role", http.StatusUnauthorized)
			return
		}

		p := entities.Principal{ID: id, Role: role}
		next.ServeHTTP(w, r.WithContext(ToContext(r.Context(), p)))
	})
}

func ToContext(ctx context.Context, p entities.Principal) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// FromContext returns the principal placed by Middleware. The second
// return is false only for requests that bypassed it.
func FromContext(ctx context.Context) (entities.Principal, bool) {
	p, ok := ctx.Value(ctxKey{}).(entities.Principal)
	return p, ok
}
