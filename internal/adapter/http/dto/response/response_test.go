package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"estimatepro/internal/domain/entities"
	"estimatepro/internal/usecase"
)

func TestFromSubscriptionPayment(t *testing.T) {
	now := time.Now().UTC()
	p := entities.SubscriptionPayment{
		ID:           "pay-1",
		BuilderID:    "b-1",
		Date:         now,
		Status:       entities.PaymentStatusApproved,
		Amount:       49,
		MPPayloadRaw: json.RawMessage(`{"id":123}`),
		MPPayload:    map[string]interface{}{"a": "b"},
	}

	res := FromSubscriptionPayment(p)
	if res.ID != "pay-1" || res.PaymentID != "pay-1" || res.BuilderID != "b-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Status != "approved" || res.Amount != 49 || !res.Date.Equal(now) {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.MPPayloadRaw != `{"id":123}` || res.MPPayload["a"] != "b" {
		t.Fatalf("unexpected payload: %+v", res)
	}
}

func TestFromBuilder_HidesPasswordHash(t *testing.T) {
	b := entities.Builder{ID: "b-1", Email: "a@b.test", PasswordHash: "secret-hash", Role: entities.RoleBuilder}

	raw, err := json.Marshal(FromBuilder(b))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(string(raw), "secret-hash") {
		t.Fatalf("password hash leaked: %s", raw)
	}
	if strings.Contains(string(raw), "last_login_at") {
		t.Fatalf("expected zero last_login_at to be omitted: %s", raw)
	}
}

func TestFromPricingCatalog_NonNilItems(t *testing.T) {
	raw, err := json.Marshal(FromPricingCatalog(usecase.PricingCatalog{Mode: entities.PricingModeFinal}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(raw), `"pricing_items":[]`) {
		t.Fatalf("expected empty list, got %s", raw)
	}
}

func TestFromLead_Defaults(t *testing.T) {
	res := FromLead(entities.Lead{ID: "l-1", Status: entities.LeadStatusNew})
	if res.PhotoPaths == nil || res.Estimate.LineItems == nil {
		t.Fatalf("expected non-nil slices: %+v", res)
	}
	if res.Status != "New" {
		t.Fatalf("unexpected status %q", res.Status)
	}
}

func TestFromSubmitResult(t *testing.T) {
	res := FromSubmitResult(usecase.SubmitSurveyResult{LeadID: "l-1", BaseEstimate: 100, HighEstimate: 130})
	if res.LeadID != "l-1" || res.Estimate.HighEstimate != 130 || res.Message == "" {
		t.Fatalf("unexpected response: %+v", res)
	}
}
