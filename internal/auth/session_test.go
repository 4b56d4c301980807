package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuhyam95/meenos-menu/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testUser() *domain.User {
	return &domain.User{
		ID:    primitive.NewObjectID(),
		Name:  "Ada",
		Email: "ada@example.com",
		Role:  domain.RoleAdmin,
	}
}

func TestIssueAndVerify(t *testing.T) {
	m := NewSessionManager("test-secret", time.Hour, false)
	user := testUser()

	token, err := m.Issue(user)
	require.NoError(t, err)

	claims, err := m.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, user.ID.Hex(), claims.Subject)
	assert.Equal(t, "Ada", claims.Name)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewSessionManager("secret-a", time.Hour, false).Issue(testUser())
	require.NoError(t, err)

	_, err = NewSessionManager("secret-b", time.Hour, false).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	m := NewSessionManager("test-secret", -time.Minute, false)

	token, err := m.Issue(testUser())
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := NewSessionManager("test-secret", time.Hour, false)

	_, err := m.Verify("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestCookieLifecycle(t *testing.T) {
	m := NewSessionManager("test-secret", time.Hour, true)

	cookie := m.Cookie("token-value")
	assert.Equal(t, CookieName, cookie.Name)
	assert.Equal(t, "token-value", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, int(time.Hour.Seconds()), cookie.MaxAge)

	cleared := m.ClearCookie()
	assert.Equal(t, CookieName, cleared.Name)
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2-hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2-hunter2", hash)

	assert.NoError(t, CheckPassword(hash, "hunter2-hunter2"))
	assert.Error(t, CheckPassword(hash, "wrong-password"))
}
