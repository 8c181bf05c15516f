package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/hirokishimizu39/ThisIsJapan/internal/httpx"
	"github.com/hirokishimizu39/ThisIsJapan/internal/router"
	"github.com/hirokishimizu39/ThisIsJapan/internal/session"
)

type ctxKey struct{}

var accountIDKey ctxKey

// RequireSession rejects requests that do not carry a valid session cookie.
// On success the authenticated account id is stored on the request context.
func RequireSession(sessions session.Store) router.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(session.CookieName)
			if err != nil {
				httpx.WriteError(w, http.StatusUnauthorized, "not authenticated")
				return
			}

			accountID, err := sessions.AccountID(r.Context(), cookie.Value)
			if err != nil {
				if errors.Is(err, session.ErrNotFound) {
					httpx.WriteError(w, http.StatusUnauthorized, "not authenticated")
					return
				}

				httpx.HandleErr(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), accountIDKey, accountID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func AccountIDFromContext(ctx context.Context) int64 {
	id, _ := ctx.Value(accountIDKey).(int64)
	return id
}
