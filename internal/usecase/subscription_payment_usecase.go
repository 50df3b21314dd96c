package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"estimatepro/internal/domain/entities"
	"estimatepro/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrSubscriptionPaymentNotFound    = errors.New("subscription payment not found")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrUnknownPaymentReference        = errors.New("payment is not linked to a builder")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// SubscriptionSettings is the billing policy read from configuration.
type SubscriptionSettings struct {
	Price float64
	// MockMode relaxes payload validation; the gateway approves every payment.
	MockMode        bool
	AccessToken     string
	TestPayerEmail  string
	TestPayerUserID string
}

// ISubscriptionPaymentUseCase charges the monthly subscription and keeps the
// builder's subscription status in line with the provider outcome.
//
//   - approved: builder becomes active and regains access
//   - rejected / cancelled / refunded / charged_back: an active builder becomes past_due
type ISubscriptionPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, builderID string, mpPayload json.RawMessage) (entities.SubscriptionPayment, error)
	GetByID(ctx context.Context, builderID, id string) (entities.SubscriptionPayment, error)
	ListByBuilderID(ctx context.Context, builderID string) ([]entities.SubscriptionPayment, error)
	HandleNotification(ctx context.Context, providerPaymentID string) (entities.SubscriptionPayment, error)
}

type SubscriptionPaymentUseCase struct {
	repo        interfaces.ISubscriptionPaymentRepository
	builderRepo interfaces.IBuilderRepository
	gateway     interfaces.IPaymentGateway
	settings    SubscriptionSettings
	now         func() time.Time
}

var _ ISubscriptionPaymentUseCase = (*SubscriptionPaymentUseCase)(nil)

func NewSubscriptionPaymentUseCase(repo interfaces.ISubscriptionPaymentRepository, builderRepo interfaces.IBuilderRepository, gateway interfaces.IPaymentGateway, settings SubscriptionSettings) *SubscriptionPaymentUseCase {
	return &SubscriptionPaymentUseCase{
		repo:        repo,
		builderRepo: builderRepo,
		gateway:     gateway,
		settings:    settings,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (u *SubscriptionPaymentUseCase) CreateAndApprove(ctx context.Context, builderID string, mpPayload json.RawMessage) (entities.SubscriptionPayment, error) {
	zap.S().Infof("[billing][usecase] create start builder_id=%q payload_len=%d", builderID, len(mpPayload))
	mockMode := u.settings.MockMode
	builderID = strings.TrimSpace(builderID)
	if builderID == "" {
		return entities.SubscriptionPayment{}, ErrInvalidBuilderID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			zap.S().Warnf("[billing][usecase] invalid payload builder_id=%s", builderID)
			return entities.SubscriptionPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.SubscriptionPayment{}, ErrPaymentGatewayNotConfigured
	}

	b, err := u.builderRepo.GetByID(ctx, builderID)
	if err != nil {
		zap.S().Errorf("[billing][usecase] failed loading builder builder_id=%s err=%v", builderID, err)
		return entities.SubscriptionPayment{}, err
	}
	if b.ID == "" {
		return entities.SubscriptionPayment{}, ErrBuilderNotFound
	}

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		if !mockMode {
			return entities.SubscriptionPayment{}, ErrInvalidMPPayload
		}
		reqMap = map[string]any{}
	}
	if !mockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			zap.S().Warnf("[billing][usecase] missing payment_method_id builder_id=%s", builderID)
			return entities.SubscriptionPayment{}, ErrInvalidMPPayload
		}
		u.normalizeSandboxPayerFromUserID(reqMap)
		u.ensurePayerDefaults(reqMap, b.Email)
		if !hasPayer(reqMap) {
			zap.S().Warnf("[billing][usecase] missing/invalid payer builder_id=%s", builderID)
			return entities.SubscriptionPayment{}, ErrInvalidMPPayload
		}
	}

	// Amount and reconciliation reference are always decided server-side.
	reqMap["external_reference"] = builderID
	reqMap["transaction_amount"] = u.settings.Price
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("EstiMate Pro subscription - %s", b.BusinessName)
	}
	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return entities.SubscriptionPayment{}, err
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		zap.S().Errorf("[billing][usecase] payment gateway failed builder_id=%s err=%v", builderID, err)
		return entities.SubscriptionPayment{}, classifyGatewayError(err)
	}
	zap.S().Infof("[billing][usecase] payment gateway success builder_id=%s provider_payment_id=%s provider_status=%s", builderID, providerPaymentID, providerStatus)

	p := entities.SubscriptionPayment{
		ID:           providerPaymentID,
		BuilderID:    builderID,
		Date:         u.now(),
		Status:       mapProviderStatus(providerStatus),
		Amount:       u.settings.Price,
		MPPayloadRaw: providerResp,
		MPPayload:    parseProviderResponse(providerResp),
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		zap.S().Errorf("[billing][usecase] payment repository create failed builder_id=%s payment_id=%s err=%v", builderID, p.ID, err)
		return entities.SubscriptionPayment{}, err
	}

	if err := u.applyToBuilder(ctx, b, providerStatus); err != nil {
		return entities.SubscriptionPayment{}, err
	}
	zap.S().Infof("[billing][usecase] create success builder_id=%s payment_id=%s status=%s", builderID, created.ID, created.Status)
	return created, nil
}

// HandleNotification re-reads a payment from the provider and applies its status.
// Unknown payments are recorded when the provider response references a builder.
func (u *SubscriptionPaymentUseCase) HandleNotification(ctx context.Context, providerPaymentID string) (entities.SubscriptionPayment, error) {
	providerPaymentID = strings.TrimSpace(providerPaymentID)
	if providerPaymentID == "" {
		return entities.SubscriptionPayment{}, ErrInvalidPaymentID
	}
	if u.gateway == nil {
		return entities.SubscriptionPayment{}, ErrPaymentGatewayNotConfigured
	}

	providerStatus, providerResp, err := u.gateway.GetPayment(ctx, providerPaymentID)
	if err != nil {
		zap.S().Errorf("[billing][webhook] provider lookup failed provider_payment_id=%s err=%v", providerPaymentID, err)
		return entities.SubscriptionPayment{}, classifyGatewayError(err)
	}
	parsed := parseProviderResponse(providerResp)
	status := mapProviderStatus(providerStatus)

	existing, err := u.repo.GetByID(ctx, providerPaymentID)
	if err != nil {
		return entities.SubscriptionPayment{}, err
	}

	var saved entities.SubscriptionPayment
	builderID := existing.BuilderID
	if existing.ID == "" {
		builderID = stringField(parsed, "external_reference")
		if builderID == "" {
			zap.S().Warnf("[billing][webhook] payment without external_reference provider_payment_id=%s", providerPaymentID)
			return entities.SubscriptionPayment{}, ErrUnknownPaymentReference
		}
		saved, err = u.repo.Create(ctx, entities.SubscriptionPayment{
			ID:           providerPaymentID,
			BuilderID:    builderID,
			Date:         u.now(),
			Status:       status,
			Amount:       floatField(parsed, "transaction_amount"),
			MPPayloadRaw: providerResp,
			MPPayload:    parsed,
		})
	} else {
		saved, err = u.repo.UpdateStatus(ctx, providerPaymentID, status)
	}
	if err != nil {
		return entities.SubscriptionPayment{}, err
	}
	if saved.ID == "" {
		return entities.SubscriptionPayment{}, ErrSubscriptionPaymentNotFound
	}

	b, err := u.builderRepo.GetByID(ctx, builderID)
	if err != nil {
		return entities.SubscriptionPayment{}, err
	}
	if b.ID == "" {
		zap.S().Warnf("[billing][webhook] builder missing builder_id=%s provider_payment_id=%s", builderID, providerPaymentID)
		return saved, nil
	}
	if err := u.applyToBuilder(ctx, b, providerStatus); err != nil {
		return entities.SubscriptionPayment{}, err
	}
	zap.S().Infof("[billing][webhook] processed provider_payment_id=%s provider_status=%s builder_id=%s", providerPaymentID, providerStatus, builderID)
	return saved, nil
}

func (u *SubscriptionPaymentUseCase) GetByID(ctx context.Context, builderID, id string) (entities.SubscriptionPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.SubscriptionPayment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.SubscriptionPayment{}, err
	}
	if p.ID == "" || p.BuilderID != builderID {
		return entities.SubscriptionPayment{}, ErrSubscriptionPaymentNotFound
	}
	return p, nil
}

func (u *SubscriptionPaymentUseCase) ListByBuilderID(ctx context.Context, builderID string) ([]entities.SubscriptionPayment, error) {
	builderID = strings.TrimSpace(builderID)
	if builderID == "" {
		return nil, ErrInvalidBuilderID
	}
	return u.repo.ListByBuilderID(ctx, builderID)
}

func (u *SubscriptionPaymentUseCase) applyToBuilder(ctx context.Context, b entities.Builder, providerStatus string) error {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved":
		b.SubscriptionStatus = entities.SubscriptionStatusActive
		b.HasPaymentMethod = true
		b.IsAccessDisabled = false
	case "rejected", "cancelled", "refunded", "charged_back":
		if b.SubscriptionStatus != entities.SubscriptionStatusActive {
			return nil
		}
		b.SubscriptionStatus = entities.SubscriptionStatusPastDue
	default:
		return nil
	}
	b.UpdatedAt = u.now()
	if _, err := u.builderRepo.Update(ctx, b); err != nil {
		zap.S().Errorf("[billing][usecase] builder update failed builder_id=%s err=%v", b.ID, err)
		return err
	}
	zap.S().Infof("[billing][usecase] builder subscription updated builder_id=%s status=%s", b.ID, b.SubscriptionStatus)
	return nil
}

func mapProviderStatus(providerStatus string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusRejected
	}
	return entities.PaymentStatusPending
}

func parseProviderResponse(raw json.RawMessage) map[string]any {
	if len(raw) == 0 {
		return nil
	}
	var parsed map[string]any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		zap.S().Warnf("[billing][usecase] provider response unmarshal failed err=%v", err)
		return nil
	}
	return parsed
}

func stringField(m map[string]any, key string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprintf("%v", v))
}

func floatField(m map[string]any, key string) float64 {
	if f, ok := m[key].(float64); ok {
		return f
	}
	return 0
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func (u *SubscriptionPaymentUseCase) isSandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(u.settings.AccessToken), "TEST-")
}

// ensurePayerDefaults fills payer.type and, when neither id nor email is given,
// the payer email: the sandbox test payer in test mode, else the builder's own email.
func (u *SubscriptionPaymentUseCase) ensurePayerDefaults(m map[string]any, builderEmail string) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	switch {
	case u.isSandbox() && u.settings.TestPayerEmail != "":
		payer["email"] = u.settings.TestPayerEmail
	case u.isSandbox():
		payer["email"] = "test_user_br@testuser.com"
	case builderEmail != "":
		payer["email"] = builderEmail
	}
}

// normalizeSandboxPayerFromUserID swaps the configured sandbox payer user id for its email.
func (u *SubscriptionPaymentUseCase) normalizeSandboxPayerFromUserID(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok || !u.isSandbox() {
		return
	}
	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if u.settings.TestPayerUserID == "" || u.settings.TestPayerEmail == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != u.settings.TestPayerUserID {
		return
	}
	payer["email"] = u.settings.TestPayerEmail
	delete(payer, "id")
	zap.S().Infof("[billing][usecase] mapped sandbox payer user_id to payer.email")
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	}
	return err
}
