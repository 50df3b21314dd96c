package response

import (
	"time"

	"estimatepro/internal/domain/entities"
)

type SubscriptionPaymentResponse struct {
	PaymentID   string    `json:"payment_id"`
	ID          string    `json:"id"`
	BuilderID   string    `json:"builder_id"`
	PaymentDate time.Time `json:"payment_date"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`
	Amount      float64   `json:"amount"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromSubscriptionPayment(p entities.SubscriptionPayment) SubscriptionPaymentResponse {
	return SubscriptionPaymentResponse{
		PaymentID:    p.ID,
		ID:           p.ID,
		BuilderID:    p.BuilderID,
		PaymentDate:  p.Date,
		Date:         p.Date,
		Status:       string(p.Status),
		Amount:       p.Amount,
		MPPayloadRaw: string(p.MPPayloadRaw),
		MPPayload:    p.MPPayload,
	}
}

func FromSubscriptionPayments(ps []entities.SubscriptionPayment) []SubscriptionPaymentResponse {
	out := make([]SubscriptionPaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromSubscriptionPayment(p))
	}
	return out
}
