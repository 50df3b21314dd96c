package token

import (
	"errors"
	"fmt"
	"time"

	"estimatepro/internal/domain/entities"
	"estimatepro/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const issuer = "estimatepro"

var ErrEmptySigningKey = errors.New("jwt signing key cannot be empty")

type accessClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTIssuer signs HS256 access tokens carrying the builder id (sub) and role.
type JWTIssuer struct {
	signingKey []byte
	ttl        time.Duration
	now        func() time.Time
}

var _ interfaces.ITokenIssuer = (*JWTIssuer)(nil)

func NewJWTIssuer(signingKey string, ttl time.Duration) (*JWTIssuer, error) {
	if signingKey == "" {
		return nil, ErrEmptySigningKey
	}
	return &JWTIssuer{signingKey: []byte(signingKey), ttl: ttl, now: time.Now}, nil
}

func (s *JWTIssuer) IssueAccessToken(builderID string, role entities.Role) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := &accessClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   builderID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// ParseAccessToken verifies the signature and expiry. Every failure maps to
// interfaces.ErrInvalidAccessToken.
func (s *JWTIssuer) ParseAccessToken(tokenString string) (interfaces.AccessClaims, error) {
	claims := &accessClaims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.signingKey, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.now),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		if !errors.Is(err, jwt.ErrTokenExpired) {
			zap.S().Warnf("[auth][token] rejected access token err=%v", err)
		}
		return interfaces.AccessClaims{}, interfaces.ErrInvalidAccessToken
	}
	if !tok.Valid || claims.Subject == "" {
		return interfaces.AccessClaims{}, interfaces.ErrInvalidAccessToken
	}
	return interfaces.AccessClaims{BuilderID: claims.Subject, Role: entities.Role(claims.Role)}, nil
}
