package repository

import (
	"context"
	"errors"

	"oficina_xyz/internal/domain/entities"
	"oficina_xyz/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultTransactionsTableName = "financial_transactions"

type transactionItem struct {
	OficinaID     string `dynamodbav:"oficina_id"`
	ID            string `dynamodbav:"id"`
	Description   string `dynamodbav:"description"`
	Category      string `dynamodbav:"category,omitempty"`
	Type          string `dynamodbav:"type"`
	Value         string `dynamodbav:"value"`
	Date          string `dynamodbav:"date"`
	ReferenceID   string `dynamodbav:"reference_id,omitempty"`
	ReferenceType string `dynamodbav:"reference_type,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// TransactionDynamoRepository persists FinancialTransaction entities in
// DynamoDB.
//
// Table requirements:
//   - PK: oficina_id (string)
//   - SK: id (string)

type TransactionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITransactionRepository = (*TransactionDynamoRepository)(nil)

func NewTransactionDynamoRepository(ddb *dynamodb.Client) *TransactionDynamoRepository {
	return &TransactionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TRANSACTIONS_TABLE", defaultTransactionsTableName),
	}
}

func (r *TransactionDynamoRepository) Create(ctx context.Context, t entities.FinancialTransaction) (entities.FinancialTransaction, error) {
	av, err := attributevalue.MarshalMap(toTransactionItem(t))
	if err != nil {
		return entities.FinancialTransaction{}, err
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
		return entities.FinancialTransaction{}, err
	}
	return t, nil
}

func (r *TransactionDynamoRepository) GetByID(ctx context.Context, oficinaID, id string) (entities.FinancialTransaction, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            transactionKey(oficinaID, id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.FinancialTransaction{}, err
	}
	if len(out.Item) == 0 {
		return entities.FinancialTransaction{}, nil
	}

	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.FinancialTransaction{}, err
	}
	return fromTransactionItem(it), nil
}

func (r *TransactionDynamoRepository) ListByOficina(ctx context.Context, oficinaID string) ([]entities.FinancialTransaction, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("oficina_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: oficinaID},
		},
	})
	if err != nil {
		return nil, err
	}

	txs := make([]entities.FinancialTransaction, 0, len(out.Items))
	for _, raw := range out.Items {
		var it transactionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		txs = append(txs, fromTransactionItem(it))
	}
	return txs, nil
}

func (r *TransactionDynamoRepository) Update(ctx context.Context, t entities.FinancialTransaction) (entities.FinancialTransaction, error) {
	av, err := attributevalue.MarshalMap(toTransactionItem(t))
	if err != nil {
		return entities.FinancialTransaction{}, err
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.FinancialTransaction{}, interfaces.ErrConditionalCheckFailed
		}
		return entities.FinancialTransaction{}, err
	}
	return t, nil
}

func (r *TransactionDynamoRepository) Delete(ctx context.Context, oficinaID, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       transactionKey(oficinaID, id),
	})
	return err
}

func transactionKey(oficinaID, id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"oficina_id": &types.AttributeValueMemberS{Value: oficinaID},
		"id":         &types.AttributeValueMemberS{Value: id},
	}
}

func toTransactionItem(t entities.FinancialTransaction) transactionItem {
	return transactionItem{
		OficinaID:     t.OficinaID,
		ID:            t.ID,
		Description:   t.Description,
		Category:      t.Category,
		Type:          string(t.Type),
		Value:         floatToString(t.Value),
		Date:          formatTime(t.Date),
		ReferenceID:   t.ReferenceID,
		ReferenceType: t.ReferenceType,
		CreatedAt:     formatTime(t.CreatedAt),
		UpdatedAt:     formatTime(t.UpdatedAt),
	}
}

func fromTransactionItem(it transactionItem) entities.FinancialTransaction {
	return entities.FinancialTransaction{
		OficinaID:     it.OficinaID,
		ID:            it.ID,
		Description:   it.Description,
		Category:      it.Category,
		Type:          entities.TransactionType(it.Type),
		Value:         stringToFloat(it.Value),
		Date:          parseTime(it.Date),
		ReferenceID:   it.ReferenceID,
		ReferenceType: it.ReferenceType,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
