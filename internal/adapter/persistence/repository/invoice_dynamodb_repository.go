package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"logiportal/internal/domain/entities"
	"logiportal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultInvoicesTableName = "invoices"
	invoicesCommerceIDIndex  = "commerce_id-index"
)

type invoiceItem struct {
	ID          string `dynamodbav:"id"`
	Number      string `dynamodbav:"number"`
	CommerceID  string `dynamodbav:"commerce_id"`
	PeriodStart string `dynamodbav:"period_start"`
	PeriodEnd   string `dynamodbav:"period_end"`
	State       string `dynamodbav:"state"`
	Amount      string `dynamodbav:"amount"`
	IssuedAt    string `dynamodbav:"issued_at"`
	PaidAt      string `dynamodbav:"paid_at,omitempty"`
	PaymentRef  string `dynamodbav:"payment_ref,omitempty"`
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: commerce_id-index (PK: commerce_id, SK: period_end)
//
// We purposely use the commerce+period key as PK (invoice ID) to guarantee
// 1 invoice per billing period. Two concurrent resolutions of the same lapsed
// period race on the conditional put and the loser adopts the winner's row.

type InvoiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
	}
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	it := toInvoiceItem(inv)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Invoice{}, err
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return r.GetByID(ctx, inv.ID)
		}
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) GetLatestByCommerceID(ctx context.Context, commerceID string) (entities.Invoice, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(invoicesCommerceIDIndex),
		KeyConditionExpression: aws.String("commerce_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: commerceID},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(1),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Items) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) UpdateAmountByID(ctx context.Context, id string, newAmount float64) (entities.Invoice, error) {
	return r.update(ctx, id, func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #amount = :amount"
		vals := map[string]types.AttributeValue{
			":amount": &types.AttributeValueMemberS{Value: floatToString(newAmount)},
		}
		names := map[string]string{
			"#amount": "amount",
		}
		return expr, vals, names
	})
}

func (r *InvoiceDynamoRepository) SettleByID(ctx context.Context, id string, state entities.PaymentState, paidAt *time.Time, paymentRef string) (entities.Invoice, error) {
	return r.update(ctx, id, func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #state = :state"
		vals := map[string]types.AttributeValue{
			":state": &types.AttributeValueMemberS{Value: string(state)},
		}
		names := map[string]string{
			"#state": "state",
		}
		if paidAt != nil {
			expr += ", #paid_at = :paid_at"
			vals[":paid_at"] = &types.AttributeValueMemberS{Value: paidAt.UTC().Format(time.RFC3339Nano)}
			names["#paid_at"] = "paid_at"
		}
		if paymentRef != "" {
			expr += ", #payment_ref = :payment_ref"
			vals[":payment_ref"] = &types.AttributeValueMemberS{Value: paymentRef}
			names["#payment_ref"] = "payment_ref"
		}
		return expr, vals, names
	})
}

func (r *InvoiceDynamoRepository) update(
	ctx context.Context,
	id string,
	build func() (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Invoice, error) {
	updateExpr, values, names := build()

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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Invoice{}, nil
		}
		return entities.Invoice{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Invoice{}, nil
	}
	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	it := invoiceItem{
		ID:          inv.ID,
		Number:      inv.Number,
		CommerceID:  inv.CommerceID,
		PeriodStart: inv.PeriodStart.Format(entities.DateLayout),
		PeriodEnd:   inv.PeriodEnd.Format(entities.DateLayout),
		State:       string(inv.State),
		Amount:      floatToString(inv.Amount),
		IssuedAt:    inv.IssuedAt.UTC().Format(time.RFC3339Nano),
		PaymentRef:  inv.PaymentRef,
	}
	if inv.PaidAt != nil {
		it.PaidAt = inv.PaidAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	periodStart, _ := time.ParseInLocation(entities.DateLayout, it.PeriodStart, time.UTC)
	periodEnd, _ := time.ParseInLocation(entities.DateLayout, it.PeriodEnd, time.UTC)
	issuedAt, _ := time.Parse(time.RFC3339Nano, it.IssuedAt)
	amount, _ := strconv.ParseFloat(it.Amount, 64)

	inv := entities.Invoice{
		ID:          it.ID,
		Number:      it.Number,
		CommerceID:  it.CommerceID,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		State:       entities.PaymentState(it.State),
		Amount:      amount,
		IssuedAt:    issuedAt,
		PaymentRef:  it.PaymentRef,
	}
	if it.PaidAt != "" {
		paidAt, _ := time.Parse(time.RFC3339Nano, it.PaidAt)
		inv.PaidAt = &paidAt
	}
	return inv
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
