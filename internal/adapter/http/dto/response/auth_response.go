package response

import (
	"time"

	"estimatepro/internal/usecase"
)

type AuthResponse struct {
	Builder      BuilderResponse `json:"builder"`
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	ExpiresAt    time.Time       `json:"expires_at"`
}

func FromAuthResult(r usecase.AuthResult) AuthResponse {
	return AuthResponse{
		Builder:      FromBuilder(r.Builder),
		AccessToken:  r.Tokens.AccessToken,
		RefreshToken: r.Tokens.RefreshToken,
		ExpiresAt:    r.Tokens.ExpiresAt,
	}
}

type MessageResponse struct {
	Message string `json:"message"`
}
