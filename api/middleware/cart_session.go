package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/nettoria/storefront-backend/pkg/logger"
)

// CartSessionOptions configures the anonymous session cookie that scopes
// every cart to a browser.
type CartSessionOptions struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
}

// CartSession resolves the session token from the cart cookie, minting a new
// token (and setting the cookie) when the request carries none. The token is
// placed on the request context for handlers and on the logger for tracing.
func CartSession(opts CartSessionOptions, logg *logger.Logger) func(http.Handler) http.Handler {
	cookieName := opts.CookieName
	if cookieName == "" {
		cookieName = "nt_cart"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ""
			if cookie, err := r.Cookie(cookieName); err == nil {
				if _, parseErr := uuid.Parse(cookie.Value); parseErr == nil {
					token = cookie.Value
				}
			}

			if token == "" {
				token = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     cookieName,
					Value:    token,
					Path:     "/",
					MaxAge:   int(opts.TTL.Seconds()),
					HttpOnly: true,
					Secure:   opts.Secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := WithCartToken(r.Context(), token)
			if logg != nil {
				ctx = logg.WithCartToken(ctx, token)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
