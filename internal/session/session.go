package session

import (
	"context"
	"errors"
)

// CookieName is the cookie carrying the opaque session token.
const CookieName = "tij_session"

var ErrNotFound = errors.New("session not found")

// Store maps opaque session tokens to the authenticated account. Tokens are
// generated server side; clients only ever see them as cookie values.
type Store interface {
	Create(ctx context.Context, accountID int64) (string, error)
	AccountID(ctx context.Context, token string) (int64, error)
	Delete(ctx context.Context, token string) error
}
