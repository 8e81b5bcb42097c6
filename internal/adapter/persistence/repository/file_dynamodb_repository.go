package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"servineta/internal/domain/entities"
	"servineta/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultFilesTableName = "files"
	filesOwnerIndex       = "owner-index"
)

type fileItem struct {
	ID           string `dynamodbav:"id"`
	Path         string `dynamodbav:"path"`
	OriginalName string `dynamodbav:"original_name"`
	MimeType     string `dynamodbav:"mime_type"`
	Size         string `dynamodbav:"size"`
	OwnerType    string `dynamodbav:"owner_type"`
	OwnerID      string `dynamodbav:"owner_id"`
	OwnerKey     string `dynamodbav:"owner_key"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// FileDynamoRepository persists StoredFile records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: owner-index (PK: owner_key, SK: created_at)
//
// owner_key is the composite "owner_type#owner_id", so one query fetches
// all files attached to an entity.

type FileDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IFileRepository = (*FileDynamoRepository)(nil)

func NewFileDynamoRepository(ddb *dynamodb.Client) *FileDynamoRepository {
	return &FileDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FILES_TABLE", defaultFilesTableName),
	}
}

func (r *FileDynamoRepository) Create(ctx context.Context, f entities.StoredFile) (entities.StoredFile, error) {
	av, err := attributevalue.MarshalMap(toFileItem(f))
	if err != nil {
		return entities.StoredFile{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.StoredFile{}, err
	}
	return f, nil
}

func (r *FileDynamoRepository) GetByID(ctx context.Context, id string) (entities.StoredFile, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.StoredFile{}, err
	}
	if len(out.Item) == 0 {
		return entities.StoredFile{}, nil
	}

	var it fileItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.StoredFile{}, err
	}
	return fromFileItem(it), nil
}

func (r *FileDynamoRepository) ListByOwner(ctx context.Context, ownerType entities.FileOwner, ownerID string) ([]entities.StoredFile, error) {
	var (
		items    []entities.StoredFile
		startKey map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(filesOwnerIndex),
			KeyConditionExpression: aws.String("owner_key = :ok"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":ok": &types.AttributeValueMemberS{Value: ownerKey(ownerType, ownerID)},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it fileItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromFileItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return items, nil
}

func (r *FileDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func ownerKey(ownerType entities.FileOwner, ownerID string) string {
	return fmt.Sprintf("%s#%s", ownerType, ownerID)
}

func toFileItem(f entities.StoredFile) fileItem {
	return fileItem{
		ID:           f.ID,
		Path:         f.Path,
		OriginalName: f.OriginalName,
		MimeType:     f.MimeType,
		Size:         strconv.FormatInt(f.Size, 10),
		OwnerType:    string(f.OwnerType),
		OwnerID:      f.OwnerID,
		OwnerKey:     ownerKey(f.OwnerType, f.OwnerID),
		CreatedAt:    f.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    f.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromFileItem(it fileItem) entities.StoredFile {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	size, _ := strconv.ParseInt(it.Size, 10, 64)
	return entities.StoredFile{
		ID:           it.ID,
		Path:         it.Path,
		OriginalName: it.OriginalName,
		MimeType:     it.MimeType,
		Size:         size,
		OwnerType:    entities.FileOwner(it.OwnerType),
		OwnerID:      it.OwnerID,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}
