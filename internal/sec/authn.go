package sec

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/potluckapp/potluck/internal/storage"
	"github.com/potluckapp/potluck/internal/storage/db"
)

// CookieName is the cookie that carries the session token on every request.
const CookieName = "potluck_session"

// ErrUnauthenticated is the failure reported when a protected operation is
// attempted without a resolvable session.
var ErrUnauthenticated = errors.New("unauthenticated")

// Authenticate resolves the logged-in user for a request. The boolean reports
// whether a user was resolved; a missing cookie, an unknown or expired token,
// and a session whose user was deleted all resolve as anonymous rather than
// as errors. Only storage failures are reported as errors.
//
// This is the decide step only. Callers translate an anonymous result into a
// redirect or a 401 depending on the kind of operation.
func Authenticate(
	ctx context.Context,
	r *http.Request,
	sessions *Sessions,
	users storage.Users,
) (db.User, bool, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return db.User{}, false, nil
	}

	userID, ok := sessions.Resolve(cookie.Value)
	if !ok {
		return db.User{}, false, nil
	}

	user, err := users.GetUser(ctx, userID)
	if errors.Is(err, storage.ErrNotFound) {
		// The account vanished out from under the session.
		sessions.Destroy(cookie.Value)
		return db.User{}, false, nil
	}
	if err != nil {
		return db.User{}, false, err
	}
	return user, true, nil
}

// NewSessionCookie builds the cookie carrying a freshly created session
// token. A positive ttl caps the cookie lifetime to match the server-side
// session; zero leaves it as a browser-session cookie.
func NewSessionCookie(token string, ttl time.Duration, secure bool) *http.Cookie {
	cookie := &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	if ttl > 0 {
		cookie.MaxAge = int(ttl.Seconds())
	}
	return cookie
}

// ClearSessionCookie builds the cookie that instructs the client to drop its
// session token.
func ClearSessionCookie(secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

type userContextKey struct{}

// WithUser attaches the authenticated user to a context. The user travels as
// an explicit parameter from the middleware to handlers; there is no other
// side channel.
func WithUser(ctx context.Context, user db.User) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// UserFrom returns the authenticated user attached to the context, if any.
func UserFrom(ctx context.Context) (db.User, bool) {
	user, ok := ctx.Value(userContextKey{}).(db.User)
	return user, ok
}
