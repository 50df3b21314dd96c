package repository

import (
	"context"
	"testing"
	"time"

	"estimatepro/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleLead() entities.Lead {
	now := time.Date(2026, 4, 2, 8, 30, 0, 0, time.UTC)
	return entities.Lead{
		ID:           "l-1",
		BuilderID:    "b-1",
		SurveySlug:   "acme-bathrooms",
		ClientName:   "Jane",
		Measurements: entities.Measurements{TotalArea: 4},
		CalculatedAreas: entities.CalculatedAreas{
			FloorArea: 4, WallArea: 4, TotalArea: 4, StandardArea: 4,
		},
		Estimate: entities.LeadEstimate{
			BaseEstimate: 1900,
			HighEstimate: 2470,
			LineItems: []entities.LineItem{
				{ItemName: "Demolition", Applicability: "all", PriceType: entities.PriceTypeFixed, Quantity: 1, UnitPrice: 1500, Total: 1500},
			},
		},
		Answers:     map[string]any{"bathroom_type": "ensuite"},
		Status:      entities.LeadStatusNew,
		SubmittedAt: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestLeadDynamoRepository_CreateAndGetRoundTrip(t *testing.T) {
	fake := &fakeDynamo{}
	repo := NewLeadDynamoRepository(fake)

	l := sampleLead()
	_, err := repo.Create(context.Background(), l)
	require.NoError(t, err)
	assert.Equal(t, "attribute_not_exists(#id)", aws.ToString(fake.putIn.ConditionExpression))

	fake.getOut = &dynamodb.GetItemOutput{Item: fake.putIn.Item}
	got, err := repo.GetByID(context.Background(), "l-1")
	require.NoError(t, err)
	assert.Equal(t, l.Estimate, got.Estimate)
	assert.Equal(t, l.CalculatedAreas, got.CalculatedAreas)
	assert.Equal(t, "ensuite", got.Answers["bathroom_type"])
	assert.Equal(t, []string{}, got.PhotoPaths)
	assert.True(t, l.SubmittedAt.Equal(got.SubmittedAt))
}

func TestLeadDynamoRepository_ListByBuilderIDUsesIndex(t *testing.T) {
	av, err := attributevalue.MarshalMap(toLeadItem(sampleLead()))
	require.NoError(t, err)
	fake := &fakeDynamo{queryPages: []*dynamodb.QueryOutput{{Items: []map[string]types.AttributeValue{av}}}}
	repo := NewLeadDynamoRepository(fake)

	got, err := repo.ListByBuilderID(context.Background(), "b-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, leadsBuilderIDIndex, aws.ToString(fake.queryIn[0].IndexName))
	assert.Equal(t, strAttr("b-1"), fake.queryIn[0].ExpressionAttributeValues[":bid"])
}

func TestLeadDynamoRepository_UpdateMissingReturnsEmpty(t *testing.T) {
	fake := &fakeDynamo{putErr: &types.ConditionalCheckFailedException{}}
	repo := NewLeadDynamoRepository(fake)

	got, err := repo.Update(context.Background(), sampleLead())
	require.NoError(t, err)
	assert.Empty(t, got.ID)
}

func TestLeadDynamoRepository_Delete(t *testing.T) {
	fake := &fakeDynamo{}
	repo := NewLeadDynamoRepository(fake)

	require.NoError(t, repo.Delete(context.Background(), "l-1"))
	assert.Equal(t, strAttr("l-1"), fake.deleteIn.Key["id"])
}

func TestLeadDynamoRepository_CountSumsPages(t *testing.T) {
	fake := &fakeDynamo{scanPages: []*dynamodb.ScanOutput{
		{Count: 3, LastEvaluatedKey: pageKey("l-3")},
		{Count: 2},
	}}
	repo := NewLeadDynamoRepository(fake)

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, types.SelectCount, fake.scanIn[0].Select)
}
