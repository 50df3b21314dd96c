package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the provider outcome of a subscription payment.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusRejected PaymentStatus = "rejected"
)

// SubscriptionPayment is a builder's subscription charge.
//
// Storage model (DynamoDB):
//   - PK: id (provider payment id)
//   - GSI (builder_id-index): builder_id
//
// MercadoPago payload:
//   - MPPayloadRaw keeps the provider response body for audit.
//   - MPPayload is the parsed representation.
type SubscriptionPayment struct {
	ID        string        `json:"id"`
	BuilderID string        `json:"builder_id"`
	Date      time.Time     `json:"date"`
	Status    PaymentStatus `json:"status"`
	Amount    float64       `json:"amount"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}
