package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"estimatepro/internal/adapter/http/handlers/mocks"
	"estimatepro/internal/domain/entities"
	"estimatepro/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newRouter(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	r.GET("/x", func(c *gin.Context) {
		b, _ := CurrentBuilder(c)
		c.String(http.StatusOK, b.ID)
	})
	return r
}

func do(r http.Handler, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newRouter(Auth(mocks.NewMockIAuthUseCase(ctrl)))

		if w := do(r, ""); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if w := do(r, "Basic abc"); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mocks.NewMockIAuthUseCase(ctrl)
		auth.EXPECT().Authenticate(gomock.Any(), "tok").Return(entities.Builder{ID: "b-1"}, nil)
		r := newRouter(Auth(auth))

		w := do(r, "Bearer tok")
		if w.Code != http.StatusOK || w.Body.String() != "b-1" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("error mapping", func(t *testing.T) {
		cases := []struct {
			err  error
			want int
		}{
			{usecase.ErrUnauthenticated, http.StatusUnauthorized},
			{usecase.ErrAccessDisabled, http.StatusUnauthorized},
			{errors.New("dynamo down"), http.StatusInternalServerError},
		}
		for _, tc := range cases {
			ctrl := gomock.NewController(t)
			auth := mocks.NewMockIAuthUseCase(ctrl)
			auth.EXPECT().Authenticate(gomock.Any(), "tok").Return(entities.Builder{}, tc.err)
			r := newRouter(Auth(auth))

			if w := do(r, "bearer tok"); w.Code != tc.want {
				t.Fatalf("%v: expected %d, got %d", tc.err, tc.want, w.Code)
			}
			ctrl.Finish()
		}
	})
}

func inject(b entities.Builder) gin.HandlerFunc {
	return func(c *gin.Context) {
		SetCurrentBuilder(c, b)
		c.Next()
	}
}

func TestRequireRole(t *testing.T) {
	r := newRouter(inject(entities.Builder{ID: "b-1", Role: entities.RoleBuilder}), RequireRole(entities.RoleAdmin))
	if w := do(r, ""); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}

	r = newRouter(inject(entities.Builder{ID: "a-1", Role: entities.RoleAdmin}), RequireRole(entities.RoleAdmin))
	if w := do(r, ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	r = newRouter(RequireRole(entities.RoleAdmin))
	if w := do(r, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without builder, got %d", w.Code)
	}
}

func TestRequireActiveSubscription(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	cases := []struct {
		name string
		b    entities.Builder
		want int
	}{
		{"active", entities.Builder{SubscriptionStatus: entities.SubscriptionStatusActive}, http.StatusOK},
		{"trial running", entities.Builder{SubscriptionStatus: entities.SubscriptionStatusTrialing, TrialEndsAt: now.Add(time.Hour)}, http.StatusOK},
		{"trial over", entities.Builder{SubscriptionStatus: entities.SubscriptionStatusTrialing, TrialEndsAt: now.Add(-time.Hour)}, http.StatusPaymentRequired},
		{"past due", entities.Builder{SubscriptionStatus: entities.SubscriptionStatusPastDue}, http.StatusPaymentRequired},
		{"inactive admin", entities.Builder{Role: entities.RoleAdmin, SubscriptionStatus: entities.SubscriptionStatusInactive}, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newRouter(inject(tc.b), RequireActiveSubscription(clock))
			if w := do(r, ""); w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS([]string{"https://app.example.com/"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://app.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent || w.Header().Get("Access-Control-Allow-Origin") != "https://app.example.com" {
		t.Fatalf("unexpected preflight response %d %v", w.Code, w.Header())
	}

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Fatalf("unexpected allow origin for foreign site")
	}
}

func TestRequestLogger_SetsRequestID(t *testing.T) {
	r := newRouter(RequestLogger())
	w := do(r, "")
	if w.Header().Get(requestIDHeader) == "" {
		t.Fatalf("expected request id header")
	}
	_ = context.Background()
}
