package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuhyam95/meenos-menu/internal/auth"
	"github.com/yuhyam95/meenos-menu/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newTestApp() *application {
	return &application{
		config: config{
			auth: authConfig{secret: "test-secret", ttl: time.Hour},
		},
		logger:   zap.NewNop().Sugar(),
		sessions: auth.NewSessionManager("test-secret", time.Hour, false),
	}
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAdminSessionMiddlewareNoCookie(t *testing.T) {
	app := newTestApp()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)

	app.AdminSessionMiddleware(okHandler()).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAdminSessionMiddlewareBadToken(t *testing.T) {
	app := newTestApp()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "garbage"})

	app.AdminSessionMiddleware(okHandler()).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAdminSessionMiddlewareRejectsNonAdmin(t *testing.T) {
	app := newTestApp()

	token, err := app.sessions.Issue(&domain.User{
		ID:   primitive.NewObjectID(),
		Name: "Ada",
		Role: domain.RoleUser,
	})
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})

	app.AdminSessionMiddleware(okHandler()).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestAdminSessionMiddlewarePassesClaims(t *testing.T) {
	app := newTestApp()
	user := &domain.User{
		ID:   primitive.NewObjectID(),
		Name: "Ada",
		Role: domain.RoleAdmin,
	}

	token, err := app.sessions.Issue(user)
	require.NoError(t, err)

	var got *auth.Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = sessionFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})

	app.AdminSessionMiddleware(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, got)
	assert.Equal(t, user.ID.Hex(), got.Subject)
}

func TestCartIDMintsCookieOnce(t *testing.T) {
	app := newTestApp()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)

	id := app.cartID(rr, req)
	require.NotEmpty(t, id)

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, cartCookieName, cookies[0].Name)
	assert.Equal(t, id, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)

	// a caller presenting the cookie keeps the same cart
	rr2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req2.AddCookie(&http.Cookie{Name: cartCookieName, Value: id})

	assert.Equal(t, id, app.cartID(rr2, req2))
	assert.Empty(t, rr2.Result().Cookies(), "no new cookie when one is presented")
}
