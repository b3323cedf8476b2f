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

const defaultMechanicsTableName = "mechanics"

type mechanicItem struct {
	OficinaID string `dynamodbav:"oficina_id"`
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Specialty string `dynamodbav:"specialty,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// MechanicDynamoRepository persists Mechanic entities in DynamoDB.
//
// Table requirements:
//   - PK: oficina_id (string)
//   - SK: id (string)

type MechanicDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMechanicRepository = (*MechanicDynamoRepository)(nil)

func NewMechanicDynamoRepository(ddb *dynamodb.Client) *MechanicDynamoRepository {
	return &MechanicDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MECHANICS_TABLE", defaultMechanicsTableName),
	}
}

func (r *MechanicDynamoRepository) Create(ctx context.Context, m entities.Mechanic) (entities.Mechanic, error) {
	av, err := attributevalue.MarshalMap(toMechanicItem(m))
	if err != nil {
		return entities.Mechanic{}, err
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
		return entities.Mechanic{}, err
	}
	return m, nil
}

func (r *MechanicDynamoRepository) GetByID(ctx context.Context, oficinaID, id string) (entities.Mechanic, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            mechanicKey(oficinaID, id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Mechanic{}, err
	}
	if len(out.Item) == 0 {
		return entities.Mechanic{}, nil
	}

	var it mechanicItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Mechanic{}, err
	}
	return fromMechanicItem(it), nil
}

func (r *MechanicDynamoRepository) ListByOficina(ctx context.Context, oficinaID string) ([]entities.Mechanic, error) {
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

	mechanics := make([]entities.Mechanic, 0, len(out.Items))
	for _, raw := range out.Items {
		var it mechanicItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		mechanics = append(mechanics, fromMechanicItem(it))
	}
	return mechanics, nil
}

func (r *MechanicDynamoRepository) Update(ctx context.Context, m entities.Mechanic) (entities.Mechanic, error) {
	av, err := attributevalue.MarshalMap(toMechanicItem(m))
	if err != nil {
		return entities.Mechanic{}, err
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
			return entities.Mechanic{}, interfaces.ErrConditionalCheckFailed
		}
		return entities.Mechanic{}, err
	}
	return m, nil
}

func (r *MechanicDynamoRepository) Delete(ctx context.Context, oficinaID, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       mechanicKey(oficinaID, id),
	})
	return err
}

func mechanicKey(oficinaID, id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"oficina_id": &types.AttributeValueMemberS{Value: oficinaID},
		"id":         &types.AttributeValueMemberS{Value: id},
	}
}

func toMechanicItem(m entities.Mechanic) mechanicItem {
	return mechanicItem{
		OficinaID: m.OficinaID,
		ID:        m.ID,
		Name:      m.Name,
		Specialty: m.Specialty,
		CreatedAt: formatTime(m.CreatedAt),
		UpdatedAt: formatTime(m.UpdatedAt),
	}
}

func fromMechanicItem(it mechanicItem) entities.Mechanic {
	return entities.Mechanic{
		OficinaID: it.OficinaID,
		ID:        it.ID,
		Name:      it.Name,
		Specialty: it.Specialty,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
