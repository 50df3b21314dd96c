package interfaces

import (
	"errors"
	"estimatepro/internal/domain/entities"
	"time"
)

var ErrInvalidAccessToken = errors.New("invalid access token")

type AccessClaims struct {
	BuilderID string
	Role      entities.Role
}

// ITokenIssuer signs and verifies short-lived access tokens.
type ITokenIssuer interface {
	IssueAccessToken(builderID string, role entities.Role) (token string, expiresAt time.Time, err error)
	ParseAccessToken(token string) (AccessClaims, error)
}
