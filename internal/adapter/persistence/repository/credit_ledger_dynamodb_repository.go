package repository

import (
	"context"
	"time"

	"swapcred/internal/domain/entities"
	"swapcred/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCreditLedgerTableName = "credit_ledger"
	creditLedgerUserIDIndex      = "user_id-index"
)

type creditLedgerItem struct {
	ID                    string `dynamodbav:"id"`
	ExchangeRequestID     string `dynamodbav:"exchange_request_id"`
	UserID                string `dynamodbav:"user_id"`
	Amount                int64  `dynamodbav:"amount"`
	Currency              string `dynamodbav:"currency"`
	Type                  string `dynamodbav:"type"`
	Success               bool   `dynamodbav:"success"`
	FailureReason         string `dynamodbav:"failure_reason,omitempty"`
	ExternalTransactionID string `dynamodbav:"external_transaction_id,omitempty"`
	CreatedAt             string `dynamodbav:"created_at"`
}

// CreditLedgerDynamoRepository persists the append-only credit audit trail.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
type CreditLedgerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICreditLedgerRepository = (*CreditLedgerDynamoRepository)(nil)

func NewCreditLedgerDynamoRepository(ddb *dynamodb.Client) *CreditLedgerDynamoRepository {
	return &CreditLedgerDynamoRepository{
		ddb:       ddb,
		tableName: resolveTableName("CREDIT_LEDGER_TABLE", defaultCreditLedgerTableName),
	}
}

func (r *CreditLedgerDynamoRepository) Create(ctx context.Context, entry entities.CreditLedgerEntry) (entities.CreditLedgerEntry, error) {
	av, err := attributevalue.MarshalMap(toCreditLedgerItem(entry))
	if err != nil {
		return entities.CreditLedgerEntry{}, err
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
		return entities.CreditLedgerEntry{}, err
	}
	return entry, nil
}

func (r *CreditLedgerDynamoRepository) List(ctx context.Context) ([]entities.CreditLedgerEntry, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	return unmarshalCreditLedgerItems(out.Items)
}

func (r *CreditLedgerDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.CreditLedgerEntry, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(creditLedgerUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalCreditLedgerItems(out.Items)
}

func unmarshalCreditLedgerItems(raw []map[string]types.AttributeValue) ([]entities.CreditLedgerEntry, error) {
	items := make([]entities.CreditLedgerEntry, 0, len(raw))
	for _, m := range raw {
		var it creditLedgerItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromCreditLedgerItem(it))
	}
	return items, nil
}

func toCreditLedgerItem(e entities.CreditLedgerEntry) creditLedgerItem {
	return creditLedgerItem{
		ID:                    e.ID,
		ExchangeRequestID:     e.ExchangeRequestID,
		UserID:                e.UserID,
		Amount:                e.Amount,
		Currency:              e.Currency,
		Type:                  e.Type,
		Success:               e.Success,
		FailureReason:         e.FailureReason,
		ExternalTransactionID: e.ExternalTransactionID,
		CreatedAt:             e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromCreditLedgerItem(it creditLedgerItem) entities.CreditLedgerEntry {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.CreditLedgerEntry{
		ID:                    it.ID,
		ExchangeRequestID:     it.ExchangeRequestID,
		UserID:                it.UserID,
		Amount:                it.Amount,
		Currency:              it.Currency,
		Type:                  it.Type,
		Success:               it.Success,
		FailureReason:         it.FailureReason,
		ExternalTransactionID: it.ExternalTransactionID,
		CreatedAt:             createdAt,
	}
}
