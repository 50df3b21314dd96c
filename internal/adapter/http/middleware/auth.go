package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"estimatepro/internal/domain/entities"
	"estimatepro/internal/usecase"
	"estimatepro/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const builderContextKey = "current_builder"

var (
	errAuthRequired        = pkg.NewDomainErrorSimple("AUTHENTICATION_REQUIRED", "Authentication required", http.StatusUnauthorized)
	errInvalidToken        = pkg.NewDomainErrorSimple("INVALID_TOKEN", "Invalid or expired token", http.StatusUnauthorized)
	errAccountUnavailable  = pkg.NewDomainErrorSimple("ACCOUNT_UNAVAILABLE", "Account unavailable", http.StatusUnauthorized)
	errForbidden           = pkg.NewDomainErrorSimple("FORBIDDEN", "Forbidden", http.StatusForbidden)
	errSubscriptionPayment = pkg.NewDomainErrorSimple("SUBSCRIPTION_INACTIVE", "Subscription inactive. Please add a payment method.", http.StatusPaymentRequired)
)

// Auth resolves the bearer token to a builder and stores it on the context.
func Auth(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := bearerToken(header)
		if !ok {
			abort(c, errAuthRequired)
			return
		}

		b, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, usecase.ErrAccessDisabled):
				abort(c, errAccountUnavailable)
			case errors.Is(err, usecase.ErrUnauthenticated):
				abort(c, errInvalidToken)
			default:
				zap.S().Errorf("[auth][middleware] authenticate failed err=%v", err)
				abort(c, pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError))
			}
			return
		}

		c.Set(builderContextKey, b)
		c.Next()
	}
}

// RequireRole answers 403 unless the current builder has one of the roles.
func RequireRole(roles ...entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		b, ok := CurrentBuilder(c)
		if !ok {
			abort(c, errAuthRequired)
			return
		}
		for _, r := range roles {
			if b.Role == r {
				c.Next()
				return
			}
		}
		abort(c, errForbidden)
	}
}

// RequireActiveSubscription answers 402 unless the builder is an admin, active,
// or still inside the trial.
func RequireActiveSubscription(now func() time.Time) gin.HandlerFunc {
	if now == nil {
		now = time.Now
	}
	return func(c *gin.Context) {
		b, ok := CurrentBuilder(c)
		if !ok {
			abort(c, errAuthRequired)
			return
		}
		if !b.HasActiveAccess(now()) {
			abort(c, errSubscriptionPayment)
			return
		}
		c.Next()
	}
}

// CurrentBuilder returns the builder stored by Auth.
func CurrentBuilder(c *gin.Context) (entities.Builder, bool) {
	v, ok := c.Get(builderContextKey)
	if !ok {
		return entities.Builder{}, false
	}
	b, ok := v.(entities.Builder)
	return b, ok
}

// SetCurrentBuilder is used by tests and internal routes to inject a builder.
func SetCurrentBuilder(c *gin.Context, b entities.Builder) {
	c.Set(builderContextKey, b)
}

func bearerToken(header string) (string, bool) {
	const prefix = "bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}

func abort(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
