package main

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/google/uuid"
	"github.com/yuhyam95/meenos-menu/internal/auth"
	"github.com/yuhyam95/meenos-menu/internal/domain"
)

type sessionKey string

const sessionCtxKey sessionKey = "session"

const cartCookieName = "cart_id"

func (app *application) RateLimiterMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if app.config.rateLimiter.Enabled {
			if allow, retryAfter := app.rateLimiter.Allow(r.RemoteAddr); !allow {
				app.rateLimitExceededResponse(w, r, retryAfter.String())
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

// AdminSessionMiddleware gates the back office on a valid Admin session
// cookie.
func (app *application) AdminSessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(auth.CookieName)
		if err != nil {
			app.unauthorizedErrorResponse(w, r, errors.New("missing session cookie"))
			return
		}

		claims, err := app.sessions.Verify(cookie.Value)
		if err != nil {
			app.unauthorizedErrorResponse(w, r, err)
			return
		}

		if claims.Role != domain.RoleAdmin {
			app.forbiddenResponse(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), sessionCtxKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (app *application) MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		pattern := chi.RouteContext(r.Context()).RoutePattern()
		if pattern == "" {
			pattern = r.URL.Path
		}

		app.metrics.Requests.WithLabelValues(pattern, strconv.Itoa(ww.Status())).Inc()
		app.metrics.LatencyMS.WithLabelValues(pattern).Observe(float64(time.Since(start).Milliseconds()))
	})
}

func sessionFromContext(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(sessionCtxKey).(*auth.Claims)
	return claims
}

// cartID returns the caller's cart identifier, minting the cookie on
// first contact.
func (app *application) cartID(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(cartCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     cartCookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int((30 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		Secure:   app.config.auth.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	return id
}
