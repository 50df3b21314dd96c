package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"strings"
	"time"

	"estimatepro/internal/domain/entities"
	"estimatepro/internal/seed"
	"estimatepro/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidEmail           = errors.New("invalid email")
	ErrWeakPassword           = errors.New("password must be at least 8 characters")
	ErrMissingBusinessName    = errors.New("business name is required")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrAccessDisabled         = errors.New("account access disabled")
	ErrInvalidRefreshToken    = errors.New("invalid refresh token")
	ErrInvalidResetToken      = errors.New("invalid or expired reset token")
	ErrUnauthenticated        = errors.New("unauthenticated")
)

const MinPasswordLength = 8

type RegisterInput struct {
	Email        string
	Password     string
	BusinessName string
	ContactName  string
	Phone        string
	ABN          string
}

type Tokens struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

type AuthResult struct {
	Builder entities.Builder
	Tokens  Tokens
}

// AuthSettings carries the account policy read from configuration.
type AuthSettings struct {
	AdminEmail       string
	FrontendURL      string
	TrialPeriodDays  int
	RefreshTokenTTL  time.Duration
	PasswordResetTTL time.Duration
	BcryptCost       int
}

// IAuthUseCase covers account registration and session management.
//
// Refresh tokens are opaque and rotated on every refresh; access tokens are signed JWTs.
type IAuthUseCase interface {
	Register(ctx context.Context, in RegisterInput) (AuthResult, error)
	Login(ctx context.Context, email, password string) (AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (AuthResult, error)
	Logout(ctx context.Context, refreshToken string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, token, newPassword string) error
	Authenticate(ctx context.Context, accessToken string) (entities.Builder, error)
}

type AuthUseCase struct {
	builders interfaces.IBuilderRepository
	sessions interfaces.ISessionStore
	tokens   interfaces.ITokenIssuer
	mailer   interfaces.IMailer
	settings AuthSettings
	now      func() time.Time
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(builders interfaces.IBuilderRepository, sessions interfaces.ISessionStore, tokens interfaces.ITokenIssuer, mailer interfaces.IMailer, settings AuthSettings) *AuthUseCase {
	if settings.BcryptCost == 0 {
		settings.BcryptCost = bcrypt.DefaultCost
	}
	if settings.TrialPeriodDays <= 0 {
		settings.TrialPeriodDays = 90
	}
	if settings.RefreshTokenTTL <= 0 {
		settings.RefreshTokenTTL = 30 * 24 * time.Hour
	}
	if settings.PasswordResetTTL <= 0 {
		settings.PasswordResetTTL = time.Hour
	}
	settings.AdminEmail = normalizeEmail(settings.AdminEmail)
	return &AuthUseCase{
		builders: builders,
		sessions: sessions,
		tokens:   tokens,
		mailer:   mailer,
		settings: settings,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *AuthUseCase) Register(ctx context.Context, in RegisterInput) (AuthResult, error) {
	email := normalizeEmail(in.Email)
	if !isValidEmail(email) {
		return AuthResult{}, ErrInvalidEmail
	}
	if len(in.Password) < MinPasswordLength {
		return AuthResult{}, ErrWeakPassword
	}
	businessName := strings.TrimSpace(in.BusinessName)
	if businessName == "" {
		return AuthResult{}, ErrMissingBusinessName
	}

	existing, err := u.builders.GetByEmail(ctx, email)
	if err != nil {
		return AuthResult{}, err
	}
	if existing.ID != "" {
		return AuthResult{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), u.settings.BcryptCost)
	if err != nil {
		return AuthResult{}, fmt.Errorf("hash password: %w", err)
	}
	now := u.now()
	role := entities.RoleBuilder
	if u.settings.AdminEmail != "" && email == u.settings.AdminEmail {
		role = entities.RoleAdmin
	}
	b := entities.Builder{
		ID:                 uuid.NewString(),
		BusinessName:       businessName,
		ContactName:        strings.TrimSpace(in.ContactName),
		Email:              email,
		Phone:              strings.TrimSpace(in.Phone),
		ABN:                strings.TrimSpace(in.ABN),
		PasswordHash:       string(hash),
		Role:               role,
		PricingMode:        entities.PricingModeFinal,
		PricingItems:       seed.DefaultCatalog(),
		TrialEndsAt:        now.AddDate(0, 0, u.settings.TrialPeriodDays),
		SubscriptionStatus: entities.SubscriptionStatusTrialing,
		Notifications:      entities.NotificationSettings{LeadEmails: true},
		LastLoginAt:        now,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	var created entities.Builder
	err = claimSurveySlug(ctx, u.builders, businessName, func(slug string) error {
		b.SurveySlug = slug
		var err error
		created, err = u.builders.Create(ctx, b)
		return err
	})
	if errors.Is(err, interfaces.ErrEmailTaken) {
		return AuthResult{}, ErrEmailAlreadyRegistered
	}
	if err != nil {
		return AuthResult{}, err
	}
	zap.S().Infof("[auth][usecase] builder registered builder_id=%s role=%s", created.ID, created.Role)

	tokens, err := u.issueTokens(ctx, created)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Builder: created, Tokens: tokens}, nil
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (AuthResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return AuthResult{}, ErrInvalidCredentials
	}

	b, err := u.builders.GetByEmail(ctx, email)
	if err != nil {
		return AuthResult{}, err
	}
	if b.ID == "" {
		return AuthResult{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(b.PasswordHash), []byte(password)); err != nil {
		zap.S().Infof("[auth][usecase] login rejected builder_id=%s", b.ID)
		return AuthResult{}, ErrInvalidCredentials
	}
	if b.IsAccessDisabled && !b.IsAdmin() {
		return AuthResult{}, ErrAccessDisabled
	}

	b.LastLoginAt = u.now()
	b.UpdatedAt = b.LastLoginAt
	updated, err := u.builders.Update(ctx, b)
	if err != nil {
		return AuthResult{}, err
	}
	if updated.ID == "" {
		return AuthResult{}, ErrInvalidCredentials
	}

	tokens, err := u.issueTokens(ctx, updated)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Builder: updated, Tokens: tokens}, nil
}

func (u *AuthUseCase) Refresh(ctx context.Context, refreshToken string) (AuthResult, error) {
	refreshToken = strings.TrimSpace(refreshToken)
	if refreshToken == "" {
		return AuthResult{}, ErrInvalidRefreshToken
	}
	builderID, err := u.sessions.ConsumeRefreshToken(ctx, hashToken(refreshToken))
	if err != nil {
		return AuthResult{}, err
	}
	if builderID == "" {
		return AuthResult{}, ErrInvalidRefreshToken
	}

	b, err := u.builders.GetByID(ctx, builderID)
	if err != nil {
		return AuthResult{}, err
	}
	if b.ID == "" {
		return AuthResult{}, ErrInvalidRefreshToken
	}
	if b.IsAccessDisabled && !b.IsAdmin() {
		return AuthResult{}, ErrAccessDisabled
	}

	tokens, err := u.issueTokens(ctx, b)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Builder: b, Tokens: tokens}, nil
}

func (u *AuthUseCase) Logout(ctx context.Context, refreshToken string) error {
	refreshToken = strings.TrimSpace(refreshToken)
	if refreshToken == "" {
		return nil
	}
	return u.sessions.DeleteRefreshToken(ctx, hashToken(refreshToken))
}

// RequestPasswordReset emails a one-time reset link. Unknown emails succeed silently.
func (u *AuthUseCase) RequestPasswordReset(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if !isValidEmail(email) {
		return ErrInvalidEmail
	}

	b, err := u.builders.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if b.ID == "" {
		zap.S().Infof("[auth][usecase] password reset requested for unknown email")
		return nil
	}

	token, err := newOpaqueToken()
	if err != nil {
		return err
	}
	if err := u.sessions.SavePasswordReset(ctx, hashToken(token), b.ID, u.settings.PasswordResetTTL); err != nil {
		return err
	}

	q := url.Values{}
	q.Set("token", token)
	q.Set("email", b.Email)
	data := interfaces.PasswordResetEmail{
		ResetURL: u.settings.FrontendURL + "/reset-password?" + q.Encode(),
		TTL:      u.settings.PasswordResetTTL,
	}
	if err := u.mailer.SendPasswordReset(ctx, b.Email, data); err != nil {
		zap.S().Errorf("[auth][usecase] password reset email failed builder_id=%s err=%v", b.ID, err)
		return err
	}
	return nil
}

func (u *AuthUseCase) ResetPassword(ctx context.Context, email, token, newPassword string) error {
	email = normalizeEmail(email)
	token = strings.TrimSpace(token)
	if email == "" || token == "" {
		return ErrInvalidResetToken
	}
	if len(newPassword) < MinPasswordLength {
		return ErrWeakPassword
	}

	builderID, err := u.sessions.ConsumePasswordReset(ctx, hashToken(token))
	if err != nil {
		return err
	}
	if builderID == "" {
		return ErrInvalidResetToken
	}
	b, err := u.builders.GetByID(ctx, builderID)
	if err != nil {
		return err
	}
	if b.ID == "" || b.Email != email {
		return ErrInvalidResetToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), u.settings.BcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	b.PasswordHash = string(hash)
	b.UpdatedAt = u.now()
	if _, err := u.builders.Update(ctx, b); err != nil {
		return err
	}
	zap.S().Infof("[auth][usecase] password reset builder_id=%s", b.ID)
	return nil
}

// Authenticate resolves a bearer token to the current builder record.
func (u *AuthUseCase) Authenticate(ctx context.Context, accessToken string) (entities.Builder, error) {
	claims, err := u.tokens.ParseAccessToken(accessToken)
	if err != nil {
		return entities.Builder{}, ErrUnauthenticated
	}
	b, err := u.builders.GetByID(ctx, claims.BuilderID)
	if err != nil {
		return entities.Builder{}, err
	}
	if b.ID == "" {
		return entities.Builder{}, ErrUnauthenticated
	}
	if b.IsAccessDisabled && !b.IsAdmin() {
		return entities.Builder{}, ErrAccessDisabled
	}
	return b, nil
}

func (u *AuthUseCase) issueTokens(ctx context.Context, b entities.Builder) (Tokens, error) {
	access, expiresAt, err := u.tokens.IssueAccessToken(b.ID, b.Role)
	if err != nil {
		return Tokens{}, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := newOpaqueToken()
	if err != nil {
		return Tokens{}, err
	}
	if err := u.sessions.SaveRefreshToken(ctx, hashToken(refresh), b.ID, u.settings.RefreshTokenTTL); err != nil {
		return Tokens{}, err
	}
	return Tokens{AccessToken: access, RefreshToken: refresh, ExpiresAt: expiresAt}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isValidEmail(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
