// Package session maps opaque tokens handed to browsers onto logged-in user
// ids. A session is created at login and destroyed at logout; tokens past
// their expiry are treated as absent.
package session

import (
	"errors"
	"time"
)

// CookieName is the cookie carrying the session token.
const CookieName = "session_id"

// DefaultTTL matches the lifetime the login session is issued with when the
// caller does not configure one.
const DefaultTTL = 7 * 24 * time.Hour

var ErrNotFound = errors.New("session not found")

// Store is the backing for session state. MemoryStore serves a single
// process; GormStore keeps sessions in the database so multiple processes
// can share them.
type Store interface {
	// Create issues a new token for the user, valid for ttl.
	Create(userID uint, ttl time.Duration) (string, error)
	// Get resolves a token to a user id. Expired or unknown tokens return
	// ErrNotFound.
	Get(token string) (uint, error)
	// Destroy removes the session. Destroying an unknown token returns
	// ErrNotFound.
	Destroy(token string) error
}
