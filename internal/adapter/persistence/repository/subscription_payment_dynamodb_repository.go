package repository

import (
	"context"
	"time"

	"estimatepro/internal/domain/entities"
	"estimatepro/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSubscriptionPaymentsTableName = "subscription_payments"
	paymentsBuilderIDIndex               = "builder_id-index"
)

type subscriptionPaymentItem struct {
	ID           string                 `dynamodbav:"id"`
	BuilderID    string                 `dynamodbav:"builder_id"`
	Date         string                 `dynamodbav:"date"`
	Status       string                 `dynamodbav:"status"`
	Amount       float64                `dynamodbav:"amount"`
	MPPayload    map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw string                 `dynamodbav:"mp_payload_raw,omitempty"`
	UpdatedAt    string                 `dynamodbav:"updated_at,omitempty"`
}

// SubscriptionPaymentDynamoRepository persists SubscriptionPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: builder_id-index (PK: builder_id)

type SubscriptionPaymentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ISubscriptionPaymentRepository = (*SubscriptionPaymentDynamoRepository)(nil)

func NewSubscriptionPaymentDynamoRepository(ddb DynamoAPI) *SubscriptionPaymentDynamoRepository {
	return &SubscriptionPaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SUBSCRIPTION_PAYMENTS_TABLE", defaultSubscriptionPaymentsTableName),
	}
}

func (r *SubscriptionPaymentDynamoRepository) Create(ctx context.Context, p entities.SubscriptionPayment) (entities.SubscriptionPayment, error) {
	av, err := attributevalue.MarshalMap(toSubscriptionPaymentItem(p))
	if err != nil {
		return entities.SubscriptionPayment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.SubscriptionPayment{}, err
	}
	return p, nil
}

func (r *SubscriptionPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.SubscriptionPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.SubscriptionPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.SubscriptionPayment{}, nil
	}

	var it subscriptionPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.SubscriptionPayment{}, err
	}
	return fromSubscriptionPaymentItem(it), nil
}

func (r *SubscriptionPaymentDynamoRepository) ListByBuilderID(ctx context.Context, builderID string) ([]entities.SubscriptionPayment, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsBuilderIDIndex),
		KeyConditionExpression: aws.String("builder_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: builderID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.SubscriptionPayment, 0, len(raw))
	for _, av := range raw {
		var it subscriptionPaymentItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		items = append(items, fromSubscriptionPaymentItem(it))
	}
	return items, nil
}

func (r *SubscriptionPaymentDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus) (entities.SubscriptionPayment, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *SubscriptionPaymentDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.SubscriptionPayment, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.SubscriptionPayment{}, nil
		}
		return entities.SubscriptionPayment{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.SubscriptionPayment{}, nil
	}
	var it subscriptionPaymentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.SubscriptionPayment{}, err
	}
	return fromSubscriptionPaymentItem(it), nil
}

func toSubscriptionPaymentItem(p entities.SubscriptionPayment) subscriptionPaymentItem {
	return subscriptionPaymentItem{
		ID:           p.ID,
		BuilderID:    p.BuilderID,
		Date:         formatTime(p.Date),
		Status:       string(p.Status),
		Amount:       p.Amount,
		MPPayload:    p.MPPayload,
		MPPayloadRaw: string(p.MPPayloadRaw),
	}
}

func fromSubscriptionPaymentItem(it subscriptionPaymentItem) entities.SubscriptionPayment {
	p := entities.SubscriptionPayment{
		ID:        it.ID,
		BuilderID: it.BuilderID,
		Date:      parseTime(it.Date),
		Status:    entities.PaymentStatus(it.Status),
		Amount:    it.Amount,
		MPPayload: it.MPPayload,
	}
	if it.MPPayloadRaw != "" {
		p.MPPayloadRaw = []byte(it.MPPayloadRaw)
	}
	return p
}
