package repository

import (
	"context"

	"estimatepro/internal/domain/entities"
	"estimatepro/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultLeadsTableName = "leads"
	leadsBuilderIDIndex   = "builder_id-index"
)

type measurementsAttr struct {
	TotalArea   float64 `dynamodbav:"total_area"`
	FloorLength float64 `dynamodbav:"floor_length"`
	FloorWidth  float64 `dynamodbav:"floor_width"`
	WallHeight  float64 `dynamodbav:"wall_height"`
}

type calculatedAreasAttr struct {
	FloorArea    float64 `dynamodbav:"floor_area"`
	WallArea     float64 `dynamodbav:"wall_area"`
	TotalArea    float64 `dynamodbav:"total_area"`
	BudgetArea   float64 `dynamodbav:"budget_area"`
	StandardArea float64 `dynamodbav:"standard_area"`
	PremiumArea  float64 `dynamodbav:"premium_area"`
}

type lineItemAttr struct {
	ItemName      string  `dynamodbav:"item_name"`
	Applicability string  `dynamodbav:"applicability"`
	PriceType     string  `dynamodbav:"price_type"`
	Quantity      float64 `dynamodbav:"quantity"`
	UnitPrice     float64 `dynamodbav:"unit_price"`
	Total         float64 `dynamodbav:"total"`
}

type leadItem struct {
	ID              string              `dynamodbav:"id"`
	BuilderID       string              `dynamodbav:"builder_id"`
	SurveySlug      string              `dynamodbav:"survey_slug"`
	ClientName      string              `dynamodbav:"client_name"`
	ClientPhone     string              `dynamodbav:"client_phone,omitempty"`
	ClientEmail     string              `dynamodbav:"client_email,omitempty"`
	BathroomType    string              `dynamodbav:"bathroom_type,omitempty"`
	TilingLevel     string              `dynamodbav:"tiling_level,omitempty"`
	DesignStyle     string              `dynamodbav:"design_style,omitempty"`
	HomeAgeCategory string              `dynamodbav:"home_age_category,omitempty"`
	Measurements    measurementsAttr    `dynamodbav:"measurements"`
	CalculatedAreas calculatedAreasAttr `dynamodbav:"calculated_areas"`
	BaseEstimate    float64             `dynamodbav:"base_estimate"`
	HighEstimate    float64             `dynamodbav:"high_estimate"`
	LineItems       []lineItemAttr      `dynamodbav:"line_items"`
	Answers         map[string]any      `dynamodbav:"answers,omitempty"`
	PhotoPaths      []string            `dynamodbav:"photo_paths"`
	Status          string              `dynamodbav:"status"`
	Notes           string              `dynamodbav:"notes,omitempty"`
	SubmittedAt     string              `dynamodbav:"submitted_at"`
	CreatedAt       string              `dynamodbav:"created_at"`
	UpdatedAt       string              `dynamodbav:"updated_at"`
}

// LeadDynamoRepository persists Lead entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: builder_id-index (PK: builder_id)

type LeadDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ILeadRepository = (*LeadDynamoRepository)(nil)

func NewLeadDynamoRepository(ddb DynamoAPI) *LeadDynamoRepository {
	return &LeadDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LEADS_TABLE", defaultLeadsTableName),
	}
}

func (r *LeadDynamoRepository) Create(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	av, err := attributevalue.MarshalMap(toLeadItem(l))
	if err != nil {
		return entities.Lead{}, err
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
		return entities.Lead{}, err
	}
	return l, nil
}

func (r *LeadDynamoRepository) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Lead{}, err
	}
	if len(out.Item) == 0 {
		return entities.Lead{}, nil
	}
	return unmarshalLead(out.Item)
}

func (r *LeadDynamoRepository) ListByBuilderID(ctx context.Context, builderID string) ([]entities.Lead, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(leadsBuilderIDIndex),
		KeyConditionExpression: aws.String("builder_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: builderID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalLeads(raw)
}

func (r *LeadDynamoRepository) ListAll(ctx context.Context) ([]entities.Lead, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	return unmarshalLeads(raw)
}

// Update replaces the stored lead. A lead that no longer exists yields an empty entity.
func (r *LeadDynamoRepository) Update(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	av, err := attributevalue.MarshalMap(toLeadItem(l))
	if err != nil {
		return entities.Lead{}, err
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
			return entities.Lead{}, nil
		}
		return entities.Lead{}, err
	}
	return l, nil
}

func (r *LeadDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *LeadDynamoRepository) Count(ctx context.Context) (int, error) {
	total := 0
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
		Select:    types.SelectCount,
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		total += int(page.Count)
	}
	return total, nil
}

func unmarshalLead(raw map[string]types.AttributeValue) (entities.Lead, error) {
	var it leadItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Lead{}, err
	}
	return fromLeadItem(it), nil
}

func unmarshalLeads(raw []map[string]types.AttributeValue) ([]entities.Lead, error) {
	out := make([]entities.Lead, 0, len(raw))
	for _, item := range raw {
		l, err := unmarshalLead(item)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

func toLeadItem(l entities.Lead) leadItem {
	lines := make([]lineItemAttr, 0, len(l.Estimate.LineItems))
	for _, li := range l.Estimate.LineItems {
		lines = append(lines, lineItemAttr{
			ItemName:      li.ItemName,
			Applicability: li.Applicability,
			PriceType:     string(li.PriceType),
			Quantity:      li.Quantity,
			UnitPrice:     li.UnitPrice,
			Total:         li.Total,
		})
	}
	photos := l.PhotoPaths
	if photos == nil {
		photos = []string{}
	}
	return leadItem{
		ID:              l.ID,
		BuilderID:       l.BuilderID,
		SurveySlug:      l.SurveySlug,
		ClientName:      l.ClientName,
		ClientPhone:     l.ClientPhone,
		ClientEmail:     l.ClientEmail,
		BathroomType:    l.BathroomType,
		TilingLevel:     l.TilingLevel,
		DesignStyle:     l.DesignStyle,
		HomeAgeCategory: l.HomeAgeCategory,
		Measurements:    measurementsAttr(l.Measurements),
		CalculatedAreas: calculatedAreasAttr(l.CalculatedAreas),
		BaseEstimate:    l.Estimate.BaseEstimate,
		HighEstimate:    l.Estimate.HighEstimate,
		LineItems:       lines,
		Answers:         l.Answers,
		PhotoPaths:      photos,
		Status:          string(l.Status),
		Notes:           l.Notes,
		SubmittedAt:     formatTime(l.SubmittedAt),
		CreatedAt:       formatTime(l.CreatedAt),
		UpdatedAt:       formatTime(l.UpdatedAt),
	}
}

func fromLeadItem(it leadItem) entities.Lead {
	lines := make([]entities.LineItem, 0, len(it.LineItems))
	for _, li := range it.LineItems {
		lines = append(lines, entities.LineItem{
			ItemName:      li.ItemName,
			Applicability: li.Applicability,
			PriceType:     entities.PriceType(li.PriceType),
			Quantity:      li.Quantity,
			UnitPrice:     li.UnitPrice,
			Total:         li.Total,
		})
	}
	photos := it.PhotoPaths
	if photos == nil {
		photos = []string{}
	}
	return entities.Lead{
		ID:              it.ID,
		BuilderID:       it.BuilderID,
		SurveySlug:      it.SurveySlug,
		ClientName:      it.ClientName,
		ClientPhone:     it.ClientPhone,
		ClientEmail:     it.ClientEmail,
		BathroomType:    it.BathroomType,
		TilingLevel:     it.TilingLevel,
		DesignStyle:     it.DesignStyle,
		HomeAgeCategory: it.HomeAgeCategory,
		Measurements:    entities.Measurements(it.Measurements),
		CalculatedAreas: entities.CalculatedAreas(it.CalculatedAreas),
		Estimate: entities.LeadEstimate{
			BaseEstimate: it.BaseEstimate,
			HighEstimate: it.HighEstimate,
			LineItems:    lines,
		},
		Answers:     it.Answers,
		PhotoPaths:  photos,
		Status:      entities.LeadStatus(it.Status),
		Notes:       it.Notes,
		SubmittedAt: parseTime(it.SubmittedAt),
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
