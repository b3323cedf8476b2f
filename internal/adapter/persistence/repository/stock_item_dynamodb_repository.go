package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"oficina_xyz/internal/domain/entities"
	"oficina_xyz/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultStockItemsTableName = "stock_items"

type stockItem struct {
	OficinaID   string `dynamodbav:"oficina_id"`
	ID          string `dynamodbav:"id"`
	Code        string `dynamodbav:"code"`
	Name        string `dynamodbav:"name"`
	Category    string `dynamodbav:"category"`
	Quantity    int    `dynamodbav:"quantity"`
	MinQuantity int    `dynamodbav:"min_quantity"`
	CostPrice   string `dynamodbav:"cost_price"`
	SalePrice   string `dynamodbav:"sale_price"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// StockItemDynamoRepository persists StockItem entities in DynamoDB.
//
// Table requirements:
//   - PK: oficina_id (string)
//   - SK: id (string)
//
// Quantity is stored as a native number so decrements run as arithmetic
// update expressions with a quantity >= :q condition; the condition is the
// single serialization point for concurrent consumers.

type StockItemDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IStockItemRepository = (*StockItemDynamoRepository)(nil)

func NewStockItemDynamoRepository(ddb *dynamodb.Client) *StockItemDynamoRepository {
	return &StockItemDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("STOCK_ITEMS_TABLE", defaultStockItemsTableName),
	}
}

func (r *StockItemDynamoRepository) Create(ctx context.Context, item entities.StockItem) (entities.StockItem, error) {
	av, err := attributevalue.MarshalMap(toStockItem(item))
	if err != nil {
		return entities.StockItem{}, err
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
		return entities.StockItem{}, err
	}
	return item, nil
}

func (r *StockItemDynamoRepository) GetByID(ctx context.Context, oficinaID, id string) (entities.StockItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stockItemKey(oficinaID, id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.StockItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.StockItem{}, nil
	}

	var it stockItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.StockItem{}, err
	}
	return fromStockItem(it), nil
}

func (r *StockItemDynamoRepository) ListByOficina(ctx context.Context, oficinaID string) ([]entities.StockItem, error) {
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

	items := make([]entities.StockItem, 0, len(out.Items))
	for _, raw := range out.Items {
		var it stockItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromStockItem(it))
	}
	return items, nil
}

func (r *StockItemDynamoRepository) Update(ctx context.Context, item entities.StockItem) (entities.StockItem, error) {
	av, err := attributevalue.MarshalMap(toStockItem(item))
	if err != nil {
		return entities.StockItem{}, err
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
			return entities.StockItem{}, interfaces.ErrConditionalCheckFailed
		}
		return entities.StockItem{}, err
	}
	return item, nil
}

func (r *StockItemDynamoRepository) Delete(ctx context.Context, oficinaID, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       stockItemKey(oficinaID, id),
	})
	return err
}

// AdjustQuantity applies quantity += delta as one conditional update. A
// negative delta additionally requires quantity >= -delta, so an OUT movement
// that lost a race observes ErrConditionalCheckFailed and no change.
func (r *StockItemDynamoRepository) AdjustQuantity(ctx context.Context, oficinaID, id string, delta int) (entities.StockItem, error) {
	condition := "attribute_exists(#id)"
	values := map[string]types.AttributeValue{
		":delta": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", delta)},
		":now":   &types.AttributeValueMemberS{Value: formatTime(time.Now())},
	}
	if delta < 0 {
		condition = "attribute_exists(#id) AND #qty >= :need"
		values[":need"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", -delta)}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       stockItemKey(oficinaID, id),
		ConditionExpression:       aws.String(condition),
		UpdateExpression:          aws.String("SET #qty = #qty + :delta, #updated = :now"),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#qty":     "quantity",
			"#updated": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.StockItem{}, interfaces.ErrConditionalCheckFailed
		}
		return entities.StockItem{}, err
	}

	var it stockItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.StockItem{}, err
	}
	return fromStockItem(it), nil
}

// DecrementBatch consumes stock for an order completion as one transaction.
// Every entry carries its own quantity >= :q condition; DynamoDB cancels the
// whole transaction when any condition fails, so either all parts are
// decremented or none are.
func (r *StockItemDynamoRepository) DecrementBatch(ctx context.Context, oficinaID string, decrements []interfaces.StockDecrement) error {
	if len(decrements) == 0 {
		return nil
	}

	now := formatTime(time.Now())
	writes := make([]types.TransactWriteItem, 0, len(decrements))
	for _, d := range decrements {
		writes = append(writes, types.TransactWriteItem{
			Update: &types.Update{
				TableName:           aws.String(r.tableName),
				Key:                 stockItemKey(oficinaID, d.ItemID),
				ConditionExpression: aws.String("attribute_exists(#id) AND #qty >= :q"),
				UpdateExpression:    aws.String("SET #qty = #qty - :q, #updated = :now"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":q":   &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", d.Quantity)},
					":now": &types.AttributeValueMemberS{Value: now},
				},
				ExpressionAttributeNames: map[string]string{
					"#id":      "id",
					"#qty":     "quantity",
					"#updated": "updated_at",
				},
			},
		})
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: writes,
	})
	if err != nil {
		var canceled *types.TransactionCanceledException
		if errors.As(err, &canceled) {
			// Cancellation reasons align with the request order.
			for i, reason := range canceled.CancellationReasons {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" && i < len(decrements) {
					return fmt.Errorf("%w: %v", &interfaces.InsufficientStockError{ItemID: decrements[i].ItemID}, err)
				}
			}
		}
		return err
	}
	return nil
}

func stockItemKey(oficinaID, id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"oficina_id": &types.AttributeValueMemberS{Value: oficinaID},
		"id":         &types.AttributeValueMemberS{Value: id},
	}
}

func toStockItem(e entities.StockItem) stockItem {
	return stockItem{
		OficinaID:   e.OficinaID,
		ID:          e.ID,
		Code:        e.Code,
		Name:        e.Name,
		Category:    e.Category,
		Quantity:    e.Quantity,
		MinQuantity: e.MinQuantity,
		CostPrice:   floatToString(e.CostPrice),
		SalePrice:   floatToString(e.SalePrice),
		CreatedAt:   formatTime(e.CreatedAt),
		UpdatedAt:   formatTime(e.UpdatedAt),
	}
}

func fromStockItem(it stockItem) entities.StockItem {
	return entities.StockItem{
		OficinaID:   it.OficinaID,
		ID:          it.ID,
		Code:        it.Code,
		Name:        it.Name,
		Category:    it.Category,
		Quantity:    it.Quantity,
		MinQuantity: it.MinQuantity,
		CostPrice:   stringToFloat(it.CostPrice),
		SalePrice:   stringToFloat(it.SalePrice),
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
