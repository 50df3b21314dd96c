package repository

import (
	"context"
	"errors"
	"fmt"

	"estimatepro/internal/domain/entities"
	"estimatepro/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBuildersTableName = "builders"
	buildersEmailIndex       = "email-index"
	buildersSurveySlugIndex  = "survey_slug-index"

	emailMarkerPrefix = "email#"
	slugMarkerPrefix  = "survey_slug#"
)

type pricingItemAttr struct {
	ItemName      string  `dynamodbav:"item_name"`
	Applicability string  `dynamodbav:"applicability"`
	PriceType     string  `dynamodbav:"price_type"`
	FinalPrice    float64 `dynamodbav:"final_price"`
	BaseCost      float64 `dynamodbav:"base_cost"`
	MarkupPercent float64 `dynamodbav:"markup_percent"`
	IsActive      bool    `dynamodbav:"is_active"`
	RuleTag       string  `dynamodbav:"rule_tag,omitempty"`
	RuleSource    string  `dynamodbav:"rule_source,omitempty"`
}

type builderItem struct {
	ID                 string            `dynamodbav:"id"`
	BusinessName       string            `dynamodbav:"business_name"`
	ContactName        string            `dynamodbav:"contact_name,omitempty"`
	Email              string            `dynamodbav:"email"`
	Phone              string            `dynamodbav:"phone,omitempty"`
	ABN                string            `dynamodbav:"abn,omitempty"`
	PasswordHash       string            `dynamodbav:"password_hash"`
	Role               string            `dynamodbav:"role"`
	SurveySlug         string            `dynamodbav:"survey_slug"`
	PricingMode        string            `dynamodbav:"pricing_mode"`
	PricingItems       []pricingItemAttr `dynamodbav:"pricing_items"`
	TrialEndsAt        string            `dynamodbav:"trial_ends_at,omitempty"`
	SubscriptionStatus string            `dynamodbav:"subscription_status"`
	PaymentCustomerRef string            `dynamodbav:"payment_customer_ref,omitempty"`
	HasPaymentMethod   bool              `dynamodbav:"has_payment_method"`
	LeadEmails         bool              `dynamodbav:"lead_emails"`
	IsAccessDisabled   bool              `dynamodbav:"is_access_disabled"`
	LastLoginAt        string            `dynamodbav:"last_login_at,omitempty"`
	CreatedAt          string            `dynamodbav:"created_at"`
	UpdatedAt          string            `dynamodbav:"updated_at"`
}

// uniqueMarkerItem reserves an email or survey slug in the builders table.
// Markers carry builder_id instead of email/survey_slug, so they stay out of the GSIs.
type uniqueMarkerItem struct {
	ID        string `dynamodbav:"id"`
	BuilderID string `dynamodbav:"builder_id"`
}

// BuilderDynamoRepository persists Builder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: email-index (PK: email)
//   - GSI: survey_slug-index (PK: survey_slug)
//
// Emails and survey slugs are reserved with marker items ("email#<addr>",
// "survey_slug#<slug>") written in the same transaction as the builder.

type BuilderDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IBuilderRepository = (*BuilderDynamoRepository)(nil)

func NewBuilderDynamoRepository(ddb DynamoAPI) *BuilderDynamoRepository {
	return &BuilderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BUILDERS_TABLE", defaultBuildersTableName),
	}
}

func (r *BuilderDynamoRepository) Create(ctx context.Context, b entities.Builder) (entities.Builder, error) {
	av, err := attributevalue.MarshalMap(toBuilderItem(b))
	if err != nil {
		return entities.Builder{}, err
	}
	emailMarker, err := r.markerPut(emailMarkerPrefix+b.Email, b.ID)
	if err != nil {
		return entities.Builder{}, err
	}
	slugMarker, err := r.markerPut(slugMarkerPrefix+b.SurveySlug, b.ID)
	if err != nil {
		return entities.Builder{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:           aws.String(r.tableName),
				Item:                av,
				ConditionExpression: aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			}},
			{Put: emailMarker},
			{Put: slugMarker},
		},
	})
	if err != nil {
		switch failedCondition(err) {
		case 1:
			return entities.Builder{}, interfaces.ErrEmailTaken
		case 2:
			return entities.Builder{}, interfaces.ErrSurveySlugTaken
		}
		return entities.Builder{}, fmt.Errorf("create builder: %w", err)
	}
	return b, nil
}

func (r *BuilderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Builder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Builder{}, err
	}
	if len(out.Item) == 0 {
		return entities.Builder{}, nil
	}
	return unmarshalBuilder(out.Item)
}

func (r *BuilderDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.Builder, error) {
	return r.getByIndex(ctx, buildersEmailIndex, "email", email)
}

func (r *BuilderDynamoRepository) GetBySurveySlug(ctx context.Context, slug string) (entities.Builder, error) {
	return r.getByIndex(ctx, buildersSurveySlugIndex, "survey_slug", slug)
}

// Update replaces the stored builder. A builder that no longer exists yields an empty entity.
func (r *BuilderDynamoRepository) Update(ctx context.Context, b entities.Builder) (entities.Builder, error) {
	av, err := attributevalue.MarshalMap(toBuilderItem(b))
	if err != nil {
		return entities.Builder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Builder{}, nil
		}
		return entities.Builder{}, err
	}
	return b, nil
}

// UpdateSurveySlug saves b with its new slug, moving the slug reservation from
// previousSlug. A builder that is gone or whose slug changed meanwhile yields an empty entity.
func (r *BuilderDynamoRepository) UpdateSurveySlug(ctx context.Context, b entities.Builder, previousSlug string) (entities.Builder, error) {
	if b.SurveySlug == previousSlug {
		return r.Update(ctx, b)
	}

	av, err := attributevalue.MarshalMap(toBuilderItem(b))
	if err != nil {
		return entities.Builder{}, err
	}
	slugMarker, err := r.markerPut(slugMarkerPrefix+b.SurveySlug, b.ID)
	if err != nil {
		return entities.Builder{}, err
	}

	items := []types.TransactWriteItem{
		{Put: &types.Put{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_exists(#id) AND #slug = :prev"),
			ExpressionAttributeNames: map[string]string{
				"#id":   "id",
				"#slug": "survey_slug",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":prev": &types.AttributeValueMemberS{Value: previousSlug},
			},
		}},
		{Put: slugMarker},
	}
	if previousSlug != "" {
		items = append(items, types.TransactWriteItem{Delete: &types.Delete{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: slugMarkerPrefix + previousSlug},
			},
		}})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		switch failedCondition(err) {
		case 0:
			return entities.Builder{}, nil
		case 1:
			return entities.Builder{}, interfaces.ErrSurveySlugTaken
		}
		return entities.Builder{}, fmt.Errorf("update survey slug: %w", err)
	}
	return b, nil
}

// List returns every builder; uniqueness markers are filtered out.
func (r *BuilderDynamoRepository) List(ctx context.Context) ([]entities.Builder, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("attribute_not_exists(#owner)"),
		ExpressionAttributeNames: map[string]string{
			"#owner": "builder_id",
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalBuilders(raw)
}

func (r *BuilderDynamoRepository) ListBySubscriptionStatus(ctx context.Context, status entities.SubscriptionStatus) ([]entities.Builder, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "subscription_status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalBuilders(raw)
}

func (r *BuilderDynamoRepository) getByIndex(ctx context.Context, index, attr, value string) (entities.Builder, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Builder{}, err
	}
	if len(out.Items) == 0 {
		return entities.Builder{}, nil
	}
	return unmarshalBuilder(out.Items[0])
}

func (r *BuilderDynamoRepository) markerPut(id, builderID string) (*types.Put, error) {
	av, err := attributevalue.MarshalMap(uniqueMarkerItem{ID: id, BuilderID: builderID})
	if err != nil {
		return nil, err
	}
	return &types.Put{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	}, nil
}

// failedCondition returns the index of the transaction item whose condition
// check cancelled the transaction, or -1.
func failedCondition(err error) int {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return -1
	}
	for i, reason := range tce.CancellationReasons {
		if aws.ToString(reason.Code) == "ConditionalCheckFailed" {
			return i
		}
	}
	return -1
}

func unmarshalBuilder(raw map[string]types.AttributeValue) (entities.Builder, error) {
	var it builderItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Builder{}, err
	}
	return fromBuilderItem(it), nil
}

func unmarshalBuilders(raw []map[string]types.AttributeValue) ([]entities.Builder, error) {
	out := make([]entities.Builder, 0, len(raw))
	for _, item := range raw {
		b, err := unmarshalBuilder(item)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func toBuilderItem(b entities.Builder) builderItem {
	items := make([]pricingItemAttr, 0, len(b.PricingItems))
	for _, p := range b.PricingItems {
		items = append(items, pricingItemAttr{
			ItemName:      p.ItemName,
			Applicability: p.Applicability,
			PriceType:     string(p.PriceType),
			FinalPrice:    p.FinalPrice,
			BaseCost:      p.BaseCost,
			MarkupPercent: p.MarkupPercent,
			IsActive:      p.IsActive,
			RuleTag:       p.RuleTag,
			RuleSource:    p.RuleSource,
		})
	}
	return builderItem{
		ID:                 b.ID,
		BusinessName:       b.BusinessName,
		ContactName:        b.ContactName,
		Email:              b.Email,
		Phone:              b.Phone,
		ABN:                b.ABN,
		PasswordHash:       b.PasswordHash,
		Role:               string(b.Role),
		SurveySlug:         b.SurveySlug,
		PricingMode:        string(b.PricingMode),
		PricingItems:       items,
		TrialEndsAt:        formatTime(b.TrialEndsAt),
		SubscriptionStatus: string(b.SubscriptionStatus),
		PaymentCustomerRef: b.PaymentCustomerRef,
		HasPaymentMethod:   b.HasPaymentMethod,
		LeadEmails:         b.Notifications.LeadEmails,
		IsAccessDisabled:   b.IsAccessDisabled,
		LastLoginAt:        formatTime(b.LastLoginAt),
		CreatedAt:          formatTime(b.CreatedAt),
		UpdatedAt:          formatTime(b.UpdatedAt),
	}
}

func fromBuilderItem(it builderItem) entities.Builder {
	items := make([]entities.PricingItem, 0, len(it.PricingItems))
	for _, p := range it.PricingItems {
		items = append(items, entities.PricingItem{
			ItemName:      p.ItemName,
			Applicability: p.Applicability,
			PriceType:     entities.PriceType(p.PriceType),
			FinalPrice:    p.FinalPrice,
			BaseCost:      p.BaseCost,
			MarkupPercent: p.MarkupPercent,
			IsActive:      p.IsActive,
			RuleTag:       p.RuleTag,
			RuleSource:    p.RuleSource,
		})
	}
	return entities.Builder{
		ID:                 it.ID,
		BusinessName:       it.BusinessName,
		ContactName:        it.ContactName,
		Email:              it.Email,
		Phone:              it.Phone,
		ABN:                it.ABN,
		PasswordHash:       it.PasswordHash,
		Role:               entities.Role(it.Role),
		SurveySlug:         it.SurveySlug,
		PricingMode:        entities.PricingMode(it.PricingMode),
		PricingItems:       items,
		TrialEndsAt:        parseTime(it.TrialEndsAt),
		SubscriptionStatus: entities.SubscriptionStatus(it.SubscriptionStatus),
		PaymentCustomerRef: it.PaymentCustomerRef,
		HasPaymentMethod:   it.HasPaymentMethod,
		Notifications:      entities.NotificationSettings{LeadEmails: it.LeadEmails},
		IsAccessDisabled:   it.IsAccessDisabled,
		LastLoginAt:        parseTime(it.LastLoginAt),
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
}
