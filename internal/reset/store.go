// Package reset owns the short-lived password-reset tokens. A token proves
// the owner passed security-answer verification; at most one token is live
// per user and every token dies on use or after the expiry window.
package reset

import (
	"context"
	"crypto/rand"
	"encoding/hex"
)

// Store is the durable, self-expiring mapping from opaque token to owning user.
type Store interface {
	// Issue invalidates any live token for the user and returns a fresh one.
	Issue(ctx context.Context, userID string) (string, error)
	// Resolve returns the owning user, or shared.ErrNotFound when the token
	// was never issued, was consumed, or aged out past the window.
	Resolve(ctx context.Context, token string) (string, error)
	// Consume deletes all tokens for the user. Idempotent.
	Consume(ctx context.Context, userID string) error
}

const tokenBytes = 16 // 128 bits of entropy

func generateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
