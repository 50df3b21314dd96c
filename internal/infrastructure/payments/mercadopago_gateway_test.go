package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsMockEnabled(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")
	assert.False(t, IsMockEnabled())

	t.Setenv("MERCADOPAGO_MOCK", " Mock ")
	assert.True(t, IsMockEnabled())

	t.Setenv("MERCADOPAGO_MOCK", "")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "1")
	assert.True(t, IsMockEnabled())
}

func TestNewMercadoPagoGateway_MissingToken(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")

	_, err := NewMercadoPagoGateway("")
	assert.True(t, errors.Is(err, ErrMissingMercadoPagoAccessToken))
}

func TestMercadoPagoGateway_MockMode(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")

	g, err := NewMercadoPagoGateway("")
	require.NoError(t, err)

	id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":49,"external_reference":"b-1"}`))
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, "approved", status)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "b-1", body["external_reference"])
	assert.Equal(t, "accredited", body["status_detail"])

	status, raw, err = g.GetPayment(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "approved", status)
	assert.Contains(t, string(raw), id)
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway

	_, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`))
	assert.True(t, errors.Is(err, ErrMercadoPagoGatewayNotConfigured))

	_, _, err = g.GetPayment(context.Background(), "1")
	assert.True(t, errors.Is(err, ErrMercadoPagoGatewayNotConfigured))
}
