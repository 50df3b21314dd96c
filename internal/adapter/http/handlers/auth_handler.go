package handlers

import (
	"errors"
	"net/http"

	"estimatepro/internal/adapter/http/dto/request"
	"estimatepro/internal/adapter/http/dto/response"
	"estimatepro/internal/adapter/http/middleware"
	"estimatepro/internal/usecase"
	"estimatepro/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const passwordResetReply = "If the email is registered, a reset link has been sent."

var errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// AuthHandler exposes registration, login and session endpoints.
type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Register godoc
// @Summary Register a builder account
// @Tags auth
// @Accept json
// @Produce json
// @Param body body request.RegisterRequest true "Account"
// @Success 201 {object} response.AuthResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	res, err := h.usecase.Register(c.Request.Context(), usecase.RegisterInput{
		Email:        req.Email,
		Password:     req.Password,
		BusinessName: req.BusinessName,
		ContactName:  req.ContactName,
		Phone:        req.Phone,
		ABN:          req.ABN,
	})
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	zap.S().Infof("[auth][handler] register success builder_id=%s", res.Builder.ID)

	c.JSON(http.StatusCreated, response.FromAuthResult(res))
}

// Login godoc
// @Summary Sign in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param body body request.LoginRequest true "Credentials"
// @Success 200 {object} response.AuthResponse
// @Failure 401 {object} pkg.HTTPError
// @Failure 403 {object} pkg.HTTPError
// @Router /v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	res, err := h.usecase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAuthResult(res))
}

// Refresh godoc
// @Summary Rotate the refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body request.RefreshRequest true "Refresh token"
// @Success 200 {object} response.AuthResponse
// @Failure 401 {object} pkg.HTTPError
// @Router /v1/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req request.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	res, err := h.usecase.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAuthResult(res))
}

// Logout godoc
// @Summary Revoke a refresh token
// @Tags auth
// @Accept json
// @Param body body request.RefreshRequest true "Refresh token"
// @Success 204
// @Router /v1/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	var req request.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	if err := h.usecase.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// RequestPasswordReset godoc
// @Summary Email a password reset link
// @Description Always answers with the same message so registered emails cannot be probed.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body request.PasswordResetRequest true "Email"
// @Success 200 {object} response.MessageResponse
// @Router /v1/auth/password/forgot [post]
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req request.PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	if err := h.usecase.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		zap.S().Errorf("[auth][handler] password reset request failed err=%v", err)
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: passwordResetReply})
}

// ResetPassword godoc
// @Summary Set a new password with a reset token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body request.ResetPasswordRequest true "Reset"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /v1/auth/password/reset [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req request.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	if err := h.usecase.ResetPassword(c.Request.Context(), req.Email, req.Token, req.Password); err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Password updated"})
}

// Me godoc
// @Summary Current builder
// @Tags auth
// @Produce json
// @Security Bearer
// @Success 200 {object} response.BuilderResponse
// @Failure 401 {object} pkg.HTTPError
// @Router /v1/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	b, ok := middleware.CurrentBuilder(c)
	if !ok {
		appErr := mapAuthError(usecase.ErrUnauthenticated)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBuilder(b))
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEmail):
		return pkg.NewDomainErrorSimple("INVALID_EMAIL", "Invalid email", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWeakPassword):
		return pkg.NewDomainErrorSimple("WEAK_PASSWORD", "Password must be at least 8 characters", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingBusinessName):
		return pkg.NewDomainErrorSimple("MISSING_BUSINESS_NAME", "Business name is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmailAlreadyRegistered):
		return pkg.NewDomainErrorSimple("EMAIL_ALREADY_REGISTERED", "Email already registered", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid email or password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrAccessDisabled):
		return pkg.NewDomainErrorSimple("ACCESS_DISABLED", "Account access disabled", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvalidRefreshToken):
		return pkg.NewDomainErrorSimple("INVALID_REFRESH_TOKEN", "Invalid or expired refresh token", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidResetToken):
		return pkg.NewDomainErrorSimple("INVALID_RESET_TOKEN", "Invalid or expired reset token", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnauthenticated):
		return pkg.NewDomainErrorSimple("AUTHENTICATION_REQUIRED", "Authentication required", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
