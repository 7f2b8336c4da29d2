package sec

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/potluckapp/potluck/internal/storage"
	"github.com/potluckapp/potluck/internal/storage/db"
)

// fakeUsers is an in-memory storage.Users for authentication tests.
type fakeUsers struct {
	users map[uint64]db.User
	err   error
}

func (f *fakeUsers) CreateUser(_ context.Context, name string, hash []byte) (db.User, error) {
	panic("not used")
}

func (f *fakeUsers) GetUser(_ context.Context, userID uint64) (db.User, error) {
	if f.err != nil {
		return db.User{}, f.err
	}
	user, ok := f.users[userID]
	if !ok {
		return db.User{}, storage.ErrNotFound
	}
	return user, nil
}

func (f *fakeUsers) GetUserByName(_ context.Context, name string) (db.User, error) {
	panic("not used")
}

func (f *fakeUsers) DeleteUser(_ context.Context, userID uint64) error {
	panic("not used")
}

var _ storage.Users = (*fakeUsers)(nil)

func requestWithToken(t *testing.T, token string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/my_recipes", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	}
	return req
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	alice := db.User{ID: 1, Name: "alice"}

	t.Run("resolves a live session", func(t *testing.T) {
		t.Parallel()
		sessions := NewSessions(0)
		users := &fakeUsers{users: map[uint64]db.User{alice.ID: alice}}

		token, err := sessions.Create(alice.ID)
		require.NoError(t, err)

		user, ok, err := Authenticate(t.Context(), requestWithToken(t, token), sessions, users)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, alice, user)
	})

	t.Run("no cookie is anonymous", func(t *testing.T) {
		t.Parallel()
		sessions := NewSessions(0)
		users := &fakeUsers{users: map[uint64]db.User{alice.ID: alice}}

		_, ok, err := Authenticate(t.Context(), requestWithToken(t, ""), sessions, users)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unknown token is anonymous", func(t *testing.T) {
		t.Parallel()
		sessions := NewSessions(0)
		users := &fakeUsers{users: map[uint64]db.User{alice.ID: alice}}

		_, ok, err := Authenticate(t.Context(), requestWithToken(t, "bogus"), sessions, users)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("deleted account is anonymous and the session is destroyed", func(t *testing.T) {
		t.Parallel()
		sessions := NewSessions(0)
		users := &fakeUsers{users: map[uint64]db.User{}}

		token, err := sessions.Create(alice.ID)
		require.NoError(t, err)

		_, ok, err := Authenticate(t.Context(), requestWithToken(t, token), sessions, users)
		require.NoError(t, err)
		assert.False(t, ok)

		_, ok = sessions.Resolve(token)
		assert.False(t, ok)
	})

	t.Run("storage failure is an error, not anonymous", func(t *testing.T) {
		t.Parallel()
		sessions := NewSessions(0)
		users := &fakeUsers{err: storage.ErrInternal}

		token, err := sessions.Create(alice.ID)
		require.NoError(t, err)

		_, ok, err := Authenticate(t.Context(), requestWithToken(t, token), sessions, users)
		require.ErrorIs(t, err, storage.ErrInternal)
		assert.False(t, ok)
	})
}

func TestSessionCookies(t *testing.T) {
	t.Parallel()

	t.Run("session cookie", func(t *testing.T) {
		t.Parallel()
		cookie := NewSessionCookie("tok", 0, false)
		assert.Equal(t, CookieName, cookie.Name)
		assert.Equal(t, "tok", cookie.Value)
		assert.True(t, cookie.HttpOnly)
		assert.Zero(t, cookie.MaxAge)
	})

	t.Run("ttl bounds cookie lifetime", func(t *testing.T) {
		t.Parallel()
		cookie := NewSessionCookie("tok", time.Hour, true)
		assert.Equal(t, 3600, cookie.MaxAge)
		assert.True(t, cookie.Secure)
	})

	t.Run("clear cookie", func(t *testing.T) {
		t.Parallel()
		cookie := ClearSessionCookie(false)
		assert.Equal(t, CookieName, cookie.Name)
		assert.Empty(t, cookie.Value)
		assert.Equal(t, -1, cookie.MaxAge)
	})
}

func TestUserContext(t *testing.T) {
	t.Parallel()

	_, ok := UserFrom(t.Context())
	assert.False(t, ok)

	alice := db.User{ID: 1, Name: "alice"}
	ctx := WithUser(t.Context(), alice)
	user, ok := UserFrom(ctx)
	require.True(t, ok)
	assert.Equal(t, alice, user)
}
