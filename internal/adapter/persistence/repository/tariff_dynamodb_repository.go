package repository

import (
	"context"
	"strconv"

	"logiportal/internal/domain/entities"
	"logiportal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTariffsTableName = "tariffs"

	// Reference row holding catalog-wide parameters, not a priced tariff.
	averageWeightTariffID = "_reference"
)

type tariffItem struct {
	ID              string `dynamodbav:"id"`
	Name            string `dynamodbav:"name"`
	Cost            string `dynamodbav:"cost"`
	AverageWeightKG string `dynamodbav:"average_weight_kg,omitempty"`
}

// TariffDynamoRepository serves the tariff catalog from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Transport tariffs and additional-service tariffs share the table. The
// _reference row carries the representative average weight used when pricing
// an order whose real weight is not known yet.

type TariffDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITariffCatalog = (*TariffDynamoRepository)(nil)

func NewTariffDynamoRepository(ddb *dynamodb.Client) *TariffDynamoRepository {
	return &TariffDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TARIFFS_TABLE", defaultTariffsTableName),
	}
}

func (r *TariffDynamoRepository) GetTariff(ctx context.Context, id string) (entities.ServiceTariff, error) {
	it, err := r.getItem(ctx, id)
	if err != nil {
		return entities.ServiceTariff{}, err
	}
	if it == nil {
		return entities.ServiceTariff{}, nil
	}

	cost, _ := strconv.ParseFloat(it.Cost, 64)
	return entities.ServiceTariff{
		ID:   it.ID,
		Name: it.Name,
		Cost: cost,
	}, nil
}

func (r *TariffDynamoRepository) GetAverageWeightKG(ctx context.Context) (float64, error) {
	it, err := r.getItem(ctx, averageWeightTariffID)
	if err != nil {
		return 0, err
	}
	if it == nil || it.AverageWeightKG == "" {
		return 0, nil
	}

	avg, err := strconv.ParseFloat(it.AverageWeightKG, 64)
	if err != nil {
		return 0, err
	}
	return avg, nil
}

func (r *TariffDynamoRepository) getItem(ctx context.Context, id string) (*tariffItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it tariffItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return &it, nil
}
