package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"estimatepro/internal/domain/entities"
	mock_interfaces "estimatepro/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newSubscriptionUseCase(ctrl *gomock.Controller, settings SubscriptionSettings) (*SubscriptionPaymentUseCase, *mock_interfaces.MockISubscriptionPaymentRepository, *mock_interfaces.MockIBuilderRepository, *mock_interfaces.MockIPaymentGateway) {
	repo := mock_interfaces.NewMockISubscriptionPaymentRepository(ctrl)
	builders := mock_interfaces.NewMockIBuilderRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewSubscriptionPaymentUseCase(repo, builders, gateway, settings)
	uc.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return uc, repo, builders, gateway
}

func TestSubscriptionPaymentUseCase_CreateAndApprove_Validations(t *testing.T) {
	t.Run("empty builder id", func(t *testing.T) {
		uc := NewSubscriptionPaymentUseCase(nil, nil, nil, SubscriptionSettings{})
		_, err := uc.CreateAndApprove(context.Background(), " ", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidBuilderID) {
			t.Fatalf("expected ErrInvalidBuilderID, got %v", err)
		}
	})

	t.Run("empty payload", func(t *testing.T) {
		uc := NewSubscriptionPaymentUseCase(nil, nil, nil, SubscriptionSettings{})
		_, err := uc.CreateAndApprove(context.Background(), "b-1", nil)
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		uc := NewSubscriptionPaymentUseCase(nil, nil, nil, SubscriptionSettings{})
		_, err := uc.CreateAndApprove(context.Background(), "b-1", json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewSubscriptionPaymentUseCase(nil, nil, nil, SubscriptionSettings{})
		_, err := uc.CreateAndApprove(context.Background(), "b-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("builder repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, builders, _ := newSubscriptionUseCase(ctrl, SubscriptionSettings{})
		builders.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Builder{}, errors.New("db"))

		_, err := uc.CreateAndApprove(context.Background(), "b-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("builder not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, builders, _ := newSubscriptionUseCase(ctrl, SubscriptionSettings{})
		builders.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Builder{}, nil)

		_, err := uc.CreateAndApprove(context.Background(), "b-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrBuilderNotFound) {
			t.Fatalf("expected ErrBuilderNotFound, got %v", err)
		}
	})

	t.Run("missing payment method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, builders, _ := newSubscriptionUseCase(ctrl, SubscriptionSettings{})
		builders.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Builder{ID: "b-1"}, nil)

		_, err := uc.CreateAndApprove(context.Background(), "b-1", json.RawMessage(`{"payer":{"email":"x@test.com"}}`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})
}

func TestSubscriptionPaymentUseCase_CreateAndApprove_GatewayErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{name: "customer not found", err: errors.New(`{"code":2002}`), want: ErrPaymentGatewayCustomerNotFound},
		{name: "invalid users", err: errors.New(`invalid users involved`), want: ErrPaymentGatewayInvalidUsers},
		{name: "unauthorized", err: errors.New(`{"error":"unauthorized"}`), want: ErrPaymentGatewayUnauthorized},
		{name: "bad request", err: errors.New(`{"status":400}`), want: ErrPaymentGatewayBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc, _, builders, gateway := newSubscriptionUseCase(ctrl, SubscriptionSettings{Price: 49})

			builders.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Builder{ID: "b-1"}, nil)
			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, tc.err)

			_, err := uc.CreateAndApprove(context.Background(), "b-1", json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("unknown gateway error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, builders, gateway := newSubscriptionUseCase(ctrl, SubscriptionSettings{Price: 49})

		builders.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Builder{ID: "b-1"}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("boom"))

		_, err := uc.CreateAndApprove(context.Background(), "b-1", json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
		if err == nil || err.Error() != "boom" {
			t.Fatalf("expected boom, got %v", err)
		}
	})
}

func TestSubscriptionPaymentUseCase_CreateAndApprove_SuccessAndStatuses(t *testing.T) {
	cases := []struct {
		name           string
		builderStatus  entities.SubscriptionStatus
		providerStatus string
		want           entities.PaymentStatus
		wantBuilder    entities.SubscriptionStatus
		builderUpdated bool
	}{
		{name: "approved activates", builderStatus: entities.SubscriptionStatusTrialing, providerStatus: "approved", want: entities.PaymentStatusApproved, wantBuilder: entities.SubscriptionStatusActive, builderUpdated: true},
		{name: "rejected marks active builder past due", builderStatus: entities.SubscriptionStatusActive, providerStatus: "rejected", want: entities.PaymentStatusRejected, wantBuilder: entities.SubscriptionStatusPastDue, builderUpdated: true},
		{name: "rejected keeps trial", builderStatus: entities.SubscriptionStatusTrialing, providerStatus: "rejected", want: entities.PaymentStatusRejected},
		{name: "pending leaves builder", builderStatus: entities.SubscriptionStatusInactive, providerStatus: "in_process", want: entities.PaymentStatusPending},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc, repo, builders, gateway := newSubscriptionUseCase(ctrl, SubscriptionSettings{
				Price:           77.2,
				AccessToken:     "TEST-token",
				TestPayerUserID: "123",
				TestPayerEmail:  "sandbox@test.com",
			})

			builders.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Builder{ID: "b-1", BusinessName: "Acme", SubscriptionStatus: tc.builderStatus, IsAccessDisabled: true}, nil)

			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
					var body map[string]any
					if err := json.Unmarshal(payload, &body); err != nil {
						t.Fatalf("payload should be valid json: %v", err)
					}
					if body["external_reference"] != "b-1" {
						t.Fatalf("external_reference must be the builder id, got %v", body["external_reference"])
					}
					if body["description"] != "EstiMate Pro subscription - Acme" {
						t.Fatalf("description not set: %v", body["description"])
					}
					if body["transaction_amount"] != float64(77.2) {
						t.Fatalf("transaction_amount should come from settings")
					}
					payer := body["payer"].(map[string]any)
					if payer["email"] != "sandbox@test.com" {
						t.Fatalf("expected sandbox payer mapping, got %v", payer)
					}
					return "pay-1", tc.providerStatus, json.RawMessage(`{"id":123}`), nil
				},
			)

			repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.SubscriptionPayment{})).DoAndReturn(
				func(_ context.Context, p entities.SubscriptionPayment) (entities.SubscriptionPayment, error) {
					if p.ID != "pay-1" || p.BuilderID != "b-1" || p.Status != tc.want || p.Amount != 77.2 {
						t.Fatalf("unexpected payment: %+v", p)
					}
					if p.Date.IsZero() {
						t.Fatalf("date must be set")
					}
					return p, nil
				},
			)

			if tc.builderUpdated {
				builders.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, b entities.Builder) (entities.Builder, error) {
						if b.SubscriptionStatus != tc.wantBuilder {
							t.Fatalf("expected builder status %s, got %s", tc.wantBuilder, b.SubscriptionStatus)
						}
						if tc.want == entities.PaymentStatusApproved && (!b.HasPaymentMethod || b.IsAccessDisabled) {
							t.Fatalf("approved payment must restore access: %+v", b)
						}
						return b, nil
					},
				)
			}

			res, err := uc.CreateAndApprove(context.Background(), "b-1", json.RawMessage(`{"payment_method_id":"pix","payer":{"id":"123"},"transaction_amount":1}`))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tc.want {
				t.Fatalf("expected status %s, got %s", tc.want, res.Status)
			}
		})
	}

	t.Run("mock mode accepts empty payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, builders, gateway := newSubscriptionUseCase(ctrl, SubscriptionSettings{Price: 49, MockMode: true})

		builders.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Builder{ID: "b-1"}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("pay-1", "approved", json.RawMessage(`{"id":"pay-1"}`), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.SubscriptionPayment) (entities.SubscriptionPayment, error) {
			return p, nil
		})
		builders.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b entities.Builder) (entities.Builder, error) {
			return b, nil
		})

		res, err := uc.CreateAndApprove(context.Background(), "b-1", nil)
		if err != nil || res.Status != entities.PaymentStatusApproved {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
		if res.MPPayload["id"] != "pay-1" {
			t.Fatalf("expected parsed provider payload, got %+v", res.MPPayload)
		}
	})

	t.Run("repository create error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, builders, gateway := newSubscriptionUseCase(ctrl, SubscriptionSettings{Price: 49})

		builders.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Builder{ID: "b-1"}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("pay-1", "approved", json.RawMessage(`{"id":123}`), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.SubscriptionPayment{}, errors.New("db-create"))

		_, err := uc.CreateAndApprove(context.Background(), "b-1", json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
		if err == nil || err.Error() != "db-create" {
			t.Fatalf("expected db-create error, got %v", err)
		}
	})
}

func TestSubscriptionPaymentUseCase_HandleNotification(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewSubscriptionPaymentUseCase(nil, nil, nil, SubscriptionSettings{})
		_, err := uc.HandleNotification(context.Background(), " ")
		if !errors.Is(err, ErrInvalidPaymentID) {
			t.Fatalf("expected ErrInvalidPaymentID, got %v", err)
		}
	})

	t.Run("known payment is updated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, builders, gateway := newSubscriptionUseCase(ctrl, SubscriptionSettings{})

		gateway.EXPECT().GetPayment(gomock.Any(), "pay-1").Return("charged_back", json.RawMessage(`{"id":1}`), nil)
		repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.SubscriptionPayment{ID: "pay-1", BuilderID: "b-1"}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "pay-1", entities.PaymentStatusRejected).Return(entities.SubscriptionPayment{ID: "pay-1", BuilderID: "b-1", Status: entities.PaymentStatusRejected}, nil)
		builders.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Builder{ID: "b-1", SubscriptionStatus: entities.SubscriptionStatusActive}, nil)
		builders.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b entities.Builder) (entities.Builder, error) {
			if b.SubscriptionStatus != entities.SubscriptionStatusPastDue {
				t.Fatalf("expected past_due, got %s", b.SubscriptionStatus)
			}
			return b, nil
		})

		res, err := uc.HandleNotification(context.Background(), "pay-1")
		if err != nil || res.Status != entities.PaymentStatusRejected {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})

	t.Run("unknown payment recorded from external reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, builders, gateway := newSubscriptionUseCase(ctrl, SubscriptionSettings{})

		gateway.EXPECT().GetPayment(gomock.Any(), "pay-2").Return("approved", json.RawMessage(`{"id":2,"external_reference":"b-2","transaction_amount":49}`), nil)
		repo.EXPECT().GetByID(gomock.Any(), "pay-2").Return(entities.SubscriptionPayment{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.SubscriptionPayment) (entities.SubscriptionPayment, error) {
			if p.BuilderID != "b-2" || p.Amount != 49 || p.Status != entities.PaymentStatusApproved {
				t.Fatalf("unexpected payment: %+v", p)
			}
			return p, nil
		})
		builders.EXPECT().GetByID(gomock.Any(), "b-2").Return(entities.Builder{ID: "b-2", SubscriptionStatus: entities.SubscriptionStatusInactive}, nil)
		builders.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b entities.Builder) (entities.Builder, error) {
			if b.SubscriptionStatus != entities.SubscriptionStatusActive {
				t.Fatalf("expected active, got %s", b.SubscriptionStatus)
			}
			return b, nil
		})

		if _, err := uc.HandleNotification(context.Background(), "pay-2"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown payment without reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, gateway := newSubscriptionUseCase(ctrl, SubscriptionSettings{})

		gateway.EXPECT().GetPayment(gomock.Any(), "pay-3").Return("approved", json.RawMessage(`{"id":3}`), nil)
		repo.EXPECT().GetByID(gomock.Any(), "pay-3").Return(entities.SubscriptionPayment{}, nil)

		_, err := uc.HandleNotification(context.Background(), "pay-3")
		if !errors.Is(err, ErrUnknownPaymentReference) {
			t.Fatalf("expected ErrUnknownPaymentReference, got %v", err)
		}
	})

	t.Run("gateway error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, gateway := newSubscriptionUseCase(ctrl, SubscriptionSettings{})

		gateway.EXPECT().GetPayment(gomock.Any(), "pay-4").Return("", nil, errors.New(`{"status":401}`))

		_, err := uc.HandleNotification(context.Background(), "pay-4")
		if !errors.Is(err, ErrPaymentGatewayUnauthorized) {
			t.Fatalf("expected ErrPaymentGatewayUnauthorized, got %v", err)
		}
	})
}

func TestSubscriptionPaymentUseCase_Getters(t *testing.T) {
	t.Run("GetByID invalid", func(t *testing.T) {
		uc := NewSubscriptionPaymentUseCase(nil, nil, nil, SubscriptionSettings{})
		_, err := uc.GetByID(context.Background(), "b-1", "")
		if !errors.Is(err, ErrInvalidPaymentID) {
			t.Fatalf("expected ErrInvalidPaymentID, got %v", err)
		}
	})

	t.Run("GetByID other builder", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newSubscriptionUseCase(ctrl, SubscriptionSettings{})
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.SubscriptionPayment{ID: "id-1", BuilderID: "b-2"}, nil)

		_, err := uc.GetByID(context.Background(), "b-1", "id-1")
		if !errors.Is(err, ErrSubscriptionPaymentNotFound) {
			t.Fatalf("expected ErrSubscriptionPaymentNotFound, got %v", err)
		}
	})

	t.Run("GetByID success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newSubscriptionUseCase(ctrl, SubscriptionSettings{})
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.SubscriptionPayment{ID: "id-1", BuilderID: "b-1"}, nil)

		res, err := uc.GetByID(context.Background(), "b-1", " id-1 ")
		if err != nil || res.ID != "id-1" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})

	t.Run("ListByBuilderID invalid", func(t *testing.T) {
		uc := NewSubscriptionPaymentUseCase(nil, nil, nil, SubscriptionSettings{})
		_, err := uc.ListByBuilderID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidBuilderID) {
			t.Fatalf("expected ErrInvalidBuilderID, got %v", err)
		}
	})

	t.Run("ListByBuilderID success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newSubscriptionUseCase(ctrl, SubscriptionSettings{})
		expected := []entities.SubscriptionPayment{{ID: "p1", Date: time.Now()}}
		repo.EXPECT().ListByBuilderID(gomock.Any(), "b-1").Return(expected, nil)

		res, err := uc.ListByBuilderID(context.Background(), " b-1 ")
		if err != nil || len(res) != 1 || res[0].ID != "p1" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})
}

func TestSubscriptionPaymentUseCase_HelperFunctions(t *testing.T) {
	t.Run("hasNonEmptyString", func(t *testing.T) {
		if hasNonEmptyString(map[string]any{}, "x") {
			t.Fatalf("expected false")
		}
		if hasNonEmptyString(map[string]any{"x": 1}, "x") {
			t.Fatalf("expected false for non-string")
		}
		if hasNonEmptyString(map[string]any{"x": "   "}, "x") {
			t.Fatalf("expected false for empty string")
		}
		if !hasNonEmptyString(map[string]any{"x": "ok"}, "x") {
			t.Fatalf("expected true")
		}
	})

	t.Run("hasPayer and hasPayerID", func(t *testing.T) {
		if hasPayer(map[string]any{"payer": "x"}) {
			t.Fatalf("expected false")
		}
		if !hasPayer(map[string]any{"payer": map[string]any{"email": "a@b.com"}}) {
			t.Fatalf("expected true with email")
		}
		if !hasPayer(map[string]any{"payer": map[string]any{"id": 10}}) {
			t.Fatalf("expected true with id")
		}
		if hasPayerID(map[string]any{"id": nil}) {
			t.Fatalf("expected false for nil id")
		}
	})

	t.Run("ensurePayerDefaults outside sandbox uses builder email", func(t *testing.T) {
		uc := NewSubscriptionPaymentUseCase(nil, nil, nil, SubscriptionSettings{AccessToken: "APP_USR-1"})
		m := map[string]any{}
		uc.ensurePayerDefaults(m, "owner@acme.test")
		payer := m["payer"].(map[string]any)
		if payer["type"] != "customer" || payer["email"] != "owner@acme.test" {
			t.Fatalf("unexpected payer: %+v", payer)
		}
	})

	t.Run("ensurePayerDefaults sandbox fallback", func(t *testing.T) {
		uc := NewSubscriptionPaymentUseCase(nil, nil, nil, SubscriptionSettings{AccessToken: "TEST-1"})
		m := map[string]any{"payer": map[string]any{}}
		uc.ensurePayerDefaults(m, "owner@acme.test")
		if m["payer"].(map[string]any)["email"] != "test_user_br@testuser.com" {
			t.Fatalf("expected sandbox email fallback")
		}
	})

	t.Run("mapProviderStatus", func(t *testing.T) {
		cases := map[string]entities.PaymentStatus{
			"approved":     entities.PaymentStatusApproved,
			" Approved ":   entities.PaymentStatusApproved,
			"refunded":     entities.PaymentStatusRejected,
			"cancelled":    entities.PaymentStatusRejected,
			"in_mediation": entities.PaymentStatusPending,
			"":             entities.PaymentStatusPending,
		}
		for in, want := range cases {
			if got := mapProviderStatus(in); got != want {
				t.Fatalf("mapProviderStatus(%q) = %s, want %s", in, got, want)
			}
		}
	})
}
