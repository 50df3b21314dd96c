package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"estimatepro/internal/adapter/http/dto/request"
	"estimatepro/internal/adapter/http/dto/response"
	"estimatepro/internal/usecase"
	"estimatepro/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SubscriptionPaymentHandler handles the monthly subscription payments and
// the Mercado Pago notifications about them.
type SubscriptionPaymentHandler struct {
	usecase  usecase.ISubscriptionPaymentUseCase
	mockMode bool
}

func NewSubscriptionPaymentHandler(uc usecase.ISubscriptionPaymentUseCase, mockMode bool) *SubscriptionPaymentHandler {
	return &SubscriptionPaymentHandler{usecase: uc, mockMode: mockMode}
}

// CreatePayment godoc
// @Summary Pay the subscription
// @Description Forwards the Mercado Pago payload. Amount and external_reference are set by the server.
// @Tags billing
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body request.SubscriptionPaymentCreateRequest true "Mercado Pago payload"
// @Success 200 {object} response.SubscriptionPaymentResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /v1/billing/payments [post]
func (h *SubscriptionPaymentHandler) CreatePayment(c *gin.Context) {
	id := builderID(c)
	zap.S().Infof("[billing][handler] create start builder_id=%s", id)
	mpPayload, err := readMPPayload(c)
	if err != nil {
		if h.mockMode {
			zap.S().Infof("[billing][handler] payload invalid in mock mode; fallback to empty payload builder_id=%s err=%v", id, err)
			mpPayload = json.RawMessage("{}")
		} else {
			zap.S().Warnf("[billing][handler] invalid payload builder_id=%s err=%v", id, err)
			c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), id, mpPayload)
	if err != nil {
		zap.S().Errorf("[billing][handler] create failed builder_id=%s err=%v", id, err)
		appErr := mapSubscriptionPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	zap.S().Infof("[billing][handler] create success builder_id=%s payment_id=%s status=%s", id, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromSubscriptionPayment(created))
}

// ListPayments godoc
// @Summary Own subscription payments, newest first
// @Tags billing
// @Produce json
// @Security Bearer
// @Success 200 {array} response.SubscriptionPaymentResponse
// @Router /v1/billing/payments [get]
func (h *SubscriptionPaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListByBuilderID(c.Request.Context(), builderID(c))
	if err != nil {
		appErr := mapSubscriptionPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSubscriptionPayments(payments))
}

// GetPayment godoc
// @Summary One subscription payment
// @Tags billing
// @Produce json
// @Security Bearer
// @Param id path string true "Payment ID"
// @Success 200 {object} response.SubscriptionPaymentResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /v1/billing/payments/{id} [get]
func (h *SubscriptionPaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), builderID(c), c.Param("id"))
	if err != nil {
		appErr := mapSubscriptionPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSubscriptionPayment(p))
}

// MercadoPagoWebhook godoc
// @Summary Mercado Pago payment notification
// @Description Non-payment topics and payments not linked to a builder are acknowledged and ignored.
// @Tags billing
// @Accept json
// @Produce json
// @Success 200 {object} response.MessageResponse
// @Router /v1/webhooks/mercadopago [post]
func (h *SubscriptionPaymentHandler) MercadoPagoWebhook(c *gin.Context) {
	var n request.MercadoPagoNotification
	if raw, err := c.GetRawData(); err == nil && len(strings.TrimSpace(string(raw))) > 0 {
		if err := json.Unmarshal(raw, &n); err != nil {
			zap.S().Warnf("[billing][webhook] unreadable notification err=%v", err)
		}
	}

	paymentID := n.ResolvePaymentID(c.Request.URL.Query())
	if paymentID == "" {
		c.JSON(http.StatusOK, response.MessageResponse{Message: "ignored"})
		return
	}

	p, err := h.usecase.HandleNotification(c.Request.Context(), paymentID)
	if err != nil {
		if errors.Is(err, usecase.ErrUnknownPaymentReference) {
			zap.S().Warnf("[billing][webhook] ignored provider_payment_id=%s err=%v", paymentID, err)
			c.JSON(http.StatusOK, response.MessageResponse{Message: "ignored"})
			return
		}
		appErr := mapSubscriptionPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	zap.S().Infof("[billing][webhook] processed payment_id=%s status=%s builder_id=%s", p.ID, p.Status, p.BuilderID)

	c.JSON(http.StatusOK, response.MessageResponse{Message: "processed"})
}

// readMPPayload accepts either {"mp_payload": {...}} or the bare payload.
func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if s := strings.TrimSpace(string(wrapped)); s == "" || s == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapSubscriptionPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBuilderID), errors.Is(err, usecase.ErrInvalidPaymentID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrBuilderNotFound):
		return pkg.NewDomainErrorSimple("BUILDER_NOT_FOUND", "Builder not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSubscriptionPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
