package interfaces

import (
	"context"
	"time"
)

// ISessionStore keeps hashed refresh and password-reset tokens.
//
// Lookups return an empty builder id when the token is unknown or expired.
type ISessionStore interface {
	SaveRefreshToken(ctx context.Context, tokenHash, builderID string, ttl time.Duration) error
	GetRefreshToken(ctx context.Context, tokenHash string) (string, error)
	// ConsumeRefreshToken atomically resolves and deletes a refresh token.
	ConsumeRefreshToken(ctx context.Context, tokenHash string) (string, error)
	DeleteRefreshToken(ctx context.Context, tokenHash string) error
	SavePasswordReset(ctx context.Context, tokenHash, builderID string, ttl time.Duration) error
	ConsumePasswordReset(ctx context.Context, tokenHash string) (string, error)
}
