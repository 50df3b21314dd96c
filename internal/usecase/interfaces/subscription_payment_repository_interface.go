package interfaces

import (
	"context"
	"estimatepro/internal/domain/entities"
)

// ISubscriptionPaymentRepository abstracts DynamoDB persistence for SubscriptionPayment.

type ISubscriptionPaymentRepository interface {
	Create(ctx context.Context, p entities.SubscriptionPayment) (entities.SubscriptionPayment, error)
	GetByID(ctx context.Context, id string) (entities.SubscriptionPayment, error)
	ListByBuilderID(ctx context.Context, builderID string) ([]entities.SubscriptionPayment, error)
	UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus) (entities.SubscriptionPayment, error)
}
