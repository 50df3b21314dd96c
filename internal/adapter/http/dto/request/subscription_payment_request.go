package request

import (
	"encoding/json"
	"net/url"
	"strings"
)

// SubscriptionPaymentCreateRequest wraps the Mercado Pago payment payload.
//
// `mp_payload` is forwarded as raw JSON to support varying Mercado Pago schemas.
// A bare payload without the envelope is accepted too.
type SubscriptionPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}

// MercadoPagoNotification is the webhook body. The legacy IPN form sends the
// same information as query parameters (topic, id).
type MercadoPagoNotification struct {
	Action string `json:"action"`
	Type   string `json:"type"`
	Data   struct {
		ID json.RawMessage `json:"id"`
	} `json:"data"`
}

// ResolvePaymentID returns the provider payment id when the notification is about
// a payment. Other topics (merchant_order, plan...) yield "".
func (n MercadoPagoNotification) ResolvePaymentID(query url.Values) string {
	kind := strings.ToLower(strings.TrimSpace(n.Type))
	if kind == "" {
		kind = strings.ToLower(strings.TrimSpace(firstNonEmpty(query.Get("type"), query.Get("topic"))))
	}
	if kind == "" && strings.HasPrefix(n.Action, "payment.") {
		kind = "payment"
	}
	if kind != "payment" {
		return ""
	}

	if id := rawID(n.Data.ID); id != "" {
		return id
	}
	return strings.TrimSpace(firstNonEmpty(query.Get("data.id"), query.Get("id")))
}

func rawID(raw json.RawMessage) string {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return ""
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return strings.TrimSpace(str)
	}
	var num json.Number
	if err := json.Unmarshal(raw, &num); err == nil {
		return num.String()
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
