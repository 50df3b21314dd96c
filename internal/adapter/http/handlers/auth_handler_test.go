package handlers

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"estimatepro/internal/adapter/http/handlers/mocks"
	"estimatepro/internal/domain/entities"
	"estimatepro/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func authRouter(uc *mocks.MockIAuthUseCase, b entities.Builder) *gin.Engine {
	h := NewAuthHandler(uc)
	r := newTestRouter(b)
	r.POST("/v1/auth/register", h.Register)
	r.POST("/v1/auth/login", h.Login)
	r.POST("/v1/auth/refresh", h.Refresh)
	r.POST("/v1/auth/logout", h.Logout)
	r.POST("/v1/auth/password/forgot", h.RequestPasswordReset)
	r.POST("/v1/auth/password/reset", h.ResetPassword)
	r.GET("/v1/auth/me", h.Me)
	return r
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := authRouter(mocks.NewMockIAuthUseCase(ctrl), entities.Builder{})

		w := doJSON(r, http.MethodPost, "/v1/auth/register", `{"email":"a@b.co"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		uc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(usecase.AuthResult{}, usecase.ErrEmailAlreadyRegistered)
		r := authRouter(uc, entities.Builder{})

		w := doJSON(r, http.MethodPost, "/v1/auth/register", `{"email":"a@b.co","password":"secret123","business_name":"Acme"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "EMAIL_ALREADY_REGISTERED" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		uc.EXPECT().Register(gomock.Any(), usecase.RegisterInput{
			Email:        "a@b.co",
			Password:     "secret123",
			BusinessName: "Acme",
			Phone:        "0400 000 000",
		}).Return(usecase.AuthResult{
			Builder: entities.Builder{ID: "b-1", Email: "a@b.co", PasswordHash: "hash"},
			Tokens:  usecase.Tokens{AccessToken: "access", RefreshToken: "refresh", ExpiresAt: time.Now().Add(time.Minute)},
		}, nil)
		r := authRouter(uc, entities.Builder{})

		w := doJSON(r, http.MethodPost, "/v1/auth/register", `{"email":"a@b.co","password":"secret123","business_name":"Acme","phone":"0400 000 000"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["access_token"] != "access" || body["refresh_token"] != "refresh" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		builder, _ := body["builder"].(map[string]any)
		if _, leaked := builder["password_hash"]; leaked {
			t.Fatalf("password hash leaked: %s", w.Body.String())
		}
	})
}

func TestAuthHandler_Login(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"bad credentials", usecase.ErrInvalidCredentials, http.StatusUnauthorized},
		{"disabled", usecase.ErrAccessDisabled, http.StatusForbidden},
		{"store down", errors.New("dynamo down"), http.StatusInternalServerError},
		{"success", nil, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIAuthUseCase(ctrl)
			uc.EXPECT().Login(gomock.Any(), "a@b.co", "secret123").Return(usecase.AuthResult{Builder: entities.Builder{ID: "b-1"}}, tc.err)
			r := authRouter(uc, entities.Builder{})

			w := doJSON(r, http.MethodPost, "/v1/auth/login", `{"email":"a@b.co","password":"secret123"}`)
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}
}

func TestAuthHandler_RefreshAndLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIAuthUseCase(ctrl)
	r := authRouter(uc, entities.Builder{})

	uc.EXPECT().Refresh(gomock.Any(), "old").Return(usecase.AuthResult{}, usecase.ErrInvalidRefreshToken)
	if w := doJSON(r, http.MethodPost, "/v1/auth/refresh", `{"refresh_token":"old"}`); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}

	uc.EXPECT().Refresh(gomock.Any(), "good").Return(usecase.AuthResult{Tokens: usecase.Tokens{AccessToken: "a2", RefreshToken: "r2"}}, nil)
	w := doJSON(r, http.MethodPost, "/v1/auth/refresh", `{"refresh_token":"good"}`)
	if w.Code != http.StatusOK || decodeBody(t, w)["refresh_token"] != "r2" {
		t.Fatalf("unexpected refresh response %d %s", w.Code, w.Body.String())
	}

	uc.EXPECT().Logout(gomock.Any(), "r2").Return(nil)
	if w := doJSON(r, http.MethodPost, "/v1/auth/logout", `{"refresh_token":"r2"}`); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestAuthHandler_PasswordReset(t *testing.T) {
	t.Run("request always answers the same", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		uc.EXPECT().RequestPasswordReset(gomock.Any(), "ghost@b.co").Return(errors.New("smtp down"))
		r := authRouter(uc, entities.Builder{})

		w := doJSON(r, http.MethodPost, "/v1/auth/password/forgot", `{"email":"ghost@b.co"}`)
		if w.Code != http.StatusOK || decodeBody(t, w)["message"] != passwordResetReply {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("reset with bad token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		uc.EXPECT().ResetPassword(gomock.Any(), "a@b.co", "tok", "newsecret1").Return(usecase.ErrInvalidResetToken)
		r := authRouter(uc, entities.Builder{})

		w := doJSON(r, http.MethodPost, "/v1/auth/password/reset", `{"email":"a@b.co","token":"tok","password":"newsecret1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("reset success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		uc.EXPECT().ResetPassword(gomock.Any(), "a@b.co", "tok", "newsecret1").Return(nil)
		r := authRouter(uc, entities.Builder{})

		w := doJSON(r, http.MethodPost, "/v1/auth/password/reset", `{"email":"a@b.co","token":"tok","password":"newsecret1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestAuthHandler_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := authRouter(mocks.NewMockIAuthUseCase(ctrl), testBuilder)
	w := doJSON(r, http.MethodGet, "/v1/auth/me", "")
	if w.Code != http.StatusOK || decodeBody(t, w)["id"] != "b-1" {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}

	r = authRouter(mocks.NewMockIAuthUseCase(ctrl), entities.Builder{})
	if w := doJSON(r, http.MethodGet, "/v1/auth/me", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
