package repository

import (
	"context"

	"oficina_xyz/internal/domain/entities"
	"oficina_xyz/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOrdersTableName = "orders"

type orderCustomer struct {
	Name     string `dynamodbav:"name"`
	Document string `dynamodbav:"document,omitempty"`
	Phone    string `dynamodbav:"phone,omitempty"`
}

type orderVehicle struct {
	Make  string `dynamodbav:"make"`
	Model string `dynamodbav:"model"`
	Year  int    `dynamodbav:"year"`
	Plate string `dynamodbav:"plate"`
	Color string `dynamodbav:"color,omitempty"`
}

type orderServiceLine struct {
	Description string  `dynamodbav:"description"`
	Quantity    int     `dynamodbav:"quantity"`
	UnitPrice   float64 `dynamodbav:"unit_price"`
}

type orderPartLine struct {
	ItemID    string  `dynamodbav:"item_id"`
	Code      string  `dynamodbav:"code"`
	Name      string  `dynamodbav:"name"`
	Quantity  int     `dynamodbav:"quantity"`
	SalePrice float64 `dynamodbav:"sale_price"`
}

type orderItem struct {
	OficinaID       string             `dynamodbav:"oficina_id"`
	ID              string             `dynamodbav:"id"`
	DisplayID       string             `dynamodbav:"display_id"`
	Customer        orderCustomer      `dynamodbav:"customer"`
	Vehicle         orderVehicle       `dynamodbav:"vehicle"`
	MechanicID      string             `dynamodbav:"mechanic_id,omitempty"`
	StartDate       string             `dynamodbav:"start_date"`
	Status          string             `dynamodbav:"status"`
	Symptoms        string             `dynamodbav:"symptoms,omitempty"`
	Diagnosis       string             `dynamodbav:"diagnosis,omitempty"`
	Services        []orderServiceLine `dynamodbav:"services"`
	Parts           []orderPartLine    `dynamodbav:"parts"`
	Total           float64            `dynamodbav:"total"`
	DiscountPercent float64            `dynamodbav:"discount_percent,omitempty"`
	Subtotal        float64            `dynamodbav:"subtotal,omitempty"`
	PaymentMethod   string             `dynamodbav:"payment_method,omitempty"`
	CreatedAt       string             `dynamodbav:"created_at"`
	UpdatedAt       string             `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: oficina_id (string)
//   - SK: id (string)
//
// The whole order document (part/price snapshots included) lives in one item;
// single-item writes keep each order internally consistent.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

// Save is an unconditional upsert: the lifecycle persists the order whether or
// not the stock step succeeded.
func (r *OrderDynamoRepository) Save(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, oficinaID, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            orderKey(oficinaID, id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) ListByOficina(ctx context.Context, oficinaID string) ([]entities.Order, error) {
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

	orders := make([]entities.Order, 0, len(out.Items))
	for _, raw := range out.Items {
		var it orderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		orders = append(orders, fromOrderItem(it))
	}
	return orders, nil
}

func (r *OrderDynamoRepository) Delete(ctx context.Context, oficinaID, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       orderKey(oficinaID, id),
	})
	return err
}

func orderKey(oficinaID, id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"oficina_id": &types.AttributeValueMemberS{Value: oficinaID},
		"id":         &types.AttributeValueMemberS{Value: id},
	}
}

func toOrderItem(o entities.Order) orderItem {
	services := make([]orderServiceLine, 0, len(o.Services))
	for _, s := range o.Services {
		services = append(services, orderServiceLine(s))
	}
	parts := make([]orderPartLine, 0, len(o.Parts))
	for _, p := range o.Parts {
		parts = append(parts, orderPartLine(p))
	}
	return orderItem{
		OficinaID:       o.OficinaID,
		ID:              o.ID,
		DisplayID:       o.DisplayID,
		Customer:        orderCustomer(o.Customer),
		Vehicle:         orderVehicle(o.Vehicle),
		MechanicID:      o.MechanicID,
		StartDate:       formatTime(o.StartDate),
		Status:          string(o.Status),
		Symptoms:        o.Symptoms,
		Diagnosis:       o.Diagnosis,
		Services:        services,
		Parts:           parts,
		Total:           o.Total,
		DiscountPercent: o.DiscountPercent,
		Subtotal:        o.Subtotal,
		PaymentMethod:   o.PaymentMethod,
		CreatedAt:       formatTime(o.CreatedAt),
		UpdatedAt:       formatTime(o.UpdatedAt),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	services := make([]entities.OrderService, 0, len(it.Services))
	for _, s := range it.Services {
		services = append(services, entities.OrderService(s))
	}
	parts := make([]entities.OrderPart, 0, len(it.Parts))
	for _, p := range it.Parts {
		parts = append(parts, entities.OrderPart(p))
	}
	return entities.Order{
		OficinaID:       it.OficinaID,
		ID:              it.ID,
		DisplayID:       it.DisplayID,
		Customer:        entities.Customer(it.Customer),
		Vehicle:         entities.Vehicle(it.Vehicle),
		MechanicID:      it.MechanicID,
		StartDate:       parseTime(it.StartDate),
		Status:          entities.OrderStatus(it.Status),
		Symptoms:        it.Symptoms,
		Diagnosis:       it.Diagnosis,
		Services:        services,
		Parts:           parts,
		Total:           it.Total,
		DiscountPercent: it.DiscountPercent,
		Subtotal:        it.Subtotal,
		PaymentMethod:   it.PaymentMethod,
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}
