package repository

import (
	"context"

	"logiportal/internal/domain/entities"
	"logiportal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCommercesTableName = "commerces"
	defaultContractsTableName = "contracts"
	contractsCommerceIDIndex  = "commerce_id-index"
)

type commerceItem struct {
	ID   string `dynamodbav:"id"`
	Name string `dynamodbav:"name"`
}

type contractItem struct {
	ID              string  `dynamodbav:"id"`
	CommerceID      string  `dynamodbav:"commerce_id"`
	Cadence         string  `dynamodbav:"cadence"`
	DiscountPercent float64 `dynamodbav:"discount_percent"`
	State           string  `dynamodbav:"state"`
}

// CommerceDynamoRepository resolves billing terms from the commerces and
// contracts tables.
//
// Table requirements:
//   - commerces: PK id (string)
//   - contracts: PK id (string), GSI commerce_id-index (PK: commerce_id)
//
// A commerce may have historical contracts; only an active one contributes
// cadence and discount. No active contract is not an error, the billing core
// applies the documented defaults.

type CommerceDynamoRepository struct {
	ddb            *dynamodb.Client
	commercesTable string
	contractsTable string
}

var _ interfaces.ICommerceDirectory = (*CommerceDynamoRepository)(nil)

func NewCommerceDynamoRepository(ddb *dynamodb.Client) *CommerceDynamoRepository {
	return &CommerceDynamoRepository{
		ddb:            ddb,
		commercesTable: getenvDefault("COMMERCES_TABLE", defaultCommercesTableName),
		contractsTable: getenvDefault("CONTRACTS_TABLE", defaultContractsTableName),
	}
}

func (r *CommerceDynamoRepository) GetBillingTerms(ctx context.Context, commerceID string) (entities.BillingTerms, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.commercesTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: commerceID},
		},
	})
	if err != nil {
		return entities.BillingTerms{}, err
	}
	if len(out.Item) == 0 {
		return entities.BillingTerms{}, nil
	}

	var com commerceItem
	if err := attributevalue.UnmarshalMap(out.Item, &com); err != nil {
		return entities.BillingTerms{}, err
	}

	terms := entities.BillingTerms{CommerceID: com.ID}

	contract, err := r.activeContract(ctx, commerceID)
	if err != nil {
		return entities.BillingTerms{}, err
	}
	if contract != nil {
		discount := contract.DiscountPercent
		terms.Cadence = entities.BillingCadence(contract.Cadence)
		terms.DiscountPercent = &discount
	}
	return terms, nil
}

func (r *CommerceDynamoRepository) activeContract(ctx context.Context, commerceID string) (*contractItem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.contractsTable),
		IndexName:              aws.String(contractsCommerceIDIndex),
		KeyConditionExpression: aws.String("commerce_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: commerceID},
		},
	})
	if err != nil {
		return nil, err
	}

	for _, raw := range out.Items {
		var it contractItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		if entities.ContractState(it.State) == entities.ContractStateActive {
			return &it, nil
		}
	}
	return nil, nil
}
