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

const defaultProfilesTableName = "profiles"

type profileItem struct {
	OficinaID string `dynamodbav:"oficina_id"`
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name,omitempty"`
	Role      string `dynamodbav:"role"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ProfileDynamoRepository persists the per-tenant profile document.
//
// Table requirements:
//   - PK: oficina_id (string), one document per workshop.

type ProfileDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProfileRepository = (*ProfileDynamoRepository)(nil)

func NewProfileDynamoRepository(ddb *dynamodb.Client) *ProfileDynamoRepository {
	return &ProfileDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROFILES_TABLE", defaultProfilesTableName),
	}
}

func (r *ProfileDynamoRepository) GetByOficinaID(ctx context.Context, oficinaID string) (entities.UserProfile, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"oficina_id": &types.AttributeValueMemberS{Value: oficinaID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.UserProfile{}, err
	}
	if len(out.Item) == 0 {
		return entities.UserProfile{}, nil
	}

	var it profileItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.UserProfile{}, err
	}
	return fromProfileItem(it), nil
}

func (r *ProfileDynamoRepository) Put(ctx context.Context, p entities.UserProfile) (entities.UserProfile, error) {
	av, err := attributevalue.MarshalMap(toProfileItem(p))
	if err != nil {
		return entities.UserProfile{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.UserProfile{}, err
	}
	return p, nil
}

func toProfileItem(p entities.UserProfile) profileItem {
	return profileItem{
		OficinaID: p.OficinaID,
		ID:        p.ID,
		Name:      p.Name,
		Role:      string(p.Role),
		CreatedAt: formatTime(p.CreatedAt),
		UpdatedAt: formatTime(p.UpdatedAt),
	}
}

func fromProfileItem(it profileItem) entities.UserProfile {
	return entities.UserProfile{
		OficinaID: it.OficinaID,
		ID:        it.ID,
		Name:      it.Name,
		Role:      entities.Role(it.Role),
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
