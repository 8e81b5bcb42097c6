package repository

import (
	"context"
	"errors"
	"time"

	"servineta/internal/domain/entities"
	"servineta/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultServicesTableName = "services"
	servicesOwnerIDIndex     = "owner_id-index"
	servicesNameIndex        = "name-index"
)

type serviceItem struct {
	ID          string `dynamodbav:"id"`
	OwnerID     string `dynamodbav:"owner_id"`
	CategoryID  string `dynamodbav:"category_id,omitempty"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description,omitempty"`
	Price       string `dynamodbav:"price"`
	Gender      string `dynamodbav:"gender,omitempty"`
	Active      bool   `dynamodbav:"active"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// ServiceDynamoRepository persists Service entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: owner_id-index (PK: owner_id, SK: created_at)
//   - GSI: name-index (PK: name, SK: created_at)

type ServiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceRepository = (*ServiceDynamoRepository)(nil)

func NewServiceDynamoRepository(ddb *dynamodb.Client) *ServiceDynamoRepository {
	return &ServiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICES_TABLE", defaultServicesTableName),
	}
}

func (r *ServiceDynamoRepository) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	av, err := attributevalue.MarshalMap(toServiceItem(s))
	if err != nil {
		return entities.Service{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Service{}, err
	}
	return s, nil
}

func (r *ServiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Service, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Service{}, err
	}
	if len(out.Item) == 0 {
		return entities.Service{}, nil
	}

	var it serviceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Service{}, err
	}
	return fromServiceItem(it), nil
}

func (r *ServiceDynamoRepository) Update(ctx context.Context, s entities.Service) (entities.Service, error) {
	s.UpdatedAt = time.Now().UTC()
	av, err := attributevalue.MarshalMap(toServiceItem(s))
	if err != nil {
		return entities.Service{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Service{}, interfaces.ErrConditionFailed
		}
		return entities.Service{}, err
	}
	return s, nil
}

func (r *ServiceDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *ServiceDynamoRepository) SetActive(ctx context.Context, id string, active bool) (entities.Service, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #active = :active, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":active":     &types.AttributeValueMemberBOOL{Value: active},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#active":     "active",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Service{}, interfaces.ErrConditionFailed
		}
		return entities.Service{}, err
	}

	var it serviceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Service{}, err
	}
	return fromServiceItem(it), nil
}

func (r *ServiceDynamoRepository) ListByOwnerID(ctx context.Context, ownerID string, f interfaces.ServiceFilter) ([]entities.Service, string, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(servicesOwnerIDIndex),
		KeyConditionExpression: aws.String("owner_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: ownerID},
		},
		Limit:             aws.Int32(defaultLimit(f.Limit)),
		ScanIndexForward:  aws.Bool(false),
		ExclusiveStartKey: decodeCursor(f.Cursor),
	}
	filter, names := serviceFilterExpression(f, input.ExpressionAttributeValues)
	if filter != "" {
		input.FilterExpression = aws.String(filter)
		input.ExpressionAttributeNames = names
	}

	out, err := r.ddb.Query(ctx, input)
	if err != nil {
		return nil, "", err
	}
	items, err := unmarshalServiceItems(out.Items)
	if err != nil {
		return nil, "", err
	}
	return items, encodeCursor(out.LastEvaluatedKey), nil
}

// ListActive serves the public catalog. There is no index over all active
// services, so this scans with a filter; the catalog table stays small
// enough for that to be acceptable.
func (r *ServiceDynamoRepository) ListActive(ctx context.Context, f interfaces.ServiceFilter) ([]entities.Service, string, error) {
	values := map[string]types.AttributeValue{
		":active": &types.AttributeValueMemberBOOL{Value: true},
	}
	filter := "#active = :active"
	names := map[string]string{"#active": "active"}

	extra, extraNames := serviceFilterExpression(interfaces.ServiceFilter{
		Search:     f.Search,
		CategoryID: f.CategoryID,
		Gender:     f.Gender,
	}, values)
	if extra != "" {
		filter += " AND " + extra
		names = mergeNames(names, extraNames)
	}

	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:                 aws.String(r.tableName),
		FilterExpression:          aws.String(filter),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  names,
		Limit:                     aws.Int32(defaultLimit(f.Limit)),
		ExclusiveStartKey:         decodeCursor(f.Cursor),
	})
	if err != nil {
		return nil, "", err
	}
	items, err := unmarshalServiceItems(out.Items)
	if err != nil {
		return nil, "", err
	}
	return items, encodeCursor(out.LastEvaluatedKey), nil
}

// ListActiveByName resolves the providers eligible for a request: every
// active service whose name matches exactly. Pages through the name index
// so no provider is missed.
func (r *ServiceDynamoRepository) ListActiveByName(ctx context.Context, name string) ([]entities.Service, error) {
	var (
		items    []entities.Service
		startKey map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(servicesNameIndex),
			KeyConditionExpression: aws.String("#name = :name"),
			FilterExpression:       aws.String("#active = :active"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":name":   &types.AttributeValueMemberS{Value: name},
				":active": &types.AttributeValueMemberBOOL{Value: true},
			},
			ExpressionAttributeNames: map[string]string{
				"#name":   "name",
				"#active": "active",
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		page, err := unmarshalServiceItems(out.Items)
		if err != nil {
			return nil, err
		}
		items = append(items, page...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return items, nil
}

func serviceFilterExpression(f interfaces.ServiceFilter, values map[string]types.AttributeValue) (string, map[string]string) {
	filter := ""
	names := map[string]string{}
	and := func(expr string) {
		if filter != "" {
			filter += " AND "
		}
		filter += expr
	}

	if f.Search != "" {
		and("contains(#name, :search)")
		names["#name"] = "name"
		values[":search"] = &types.AttributeValueMemberS{Value: f.Search}
	}
	if f.CategoryID != "" {
		and("#category_id = :category_id")
		names["#category_id"] = "category_id"
		values[":category_id"] = &types.AttributeValueMemberS{Value: f.CategoryID}
	}
	if f.Gender != "" {
		and("#gender = :gender")
		names["#gender"] = "gender"
		values[":gender"] = &types.AttributeValueMemberS{Value: f.Gender}
	}
	switch f.Active {
	case "active":
		and("#active = :filter_active")
		names["#active"] = "active"
		values[":filter_active"] = &types.AttributeValueMemberBOOL{Value: true}
	case "inactive":
		and("#active = :filter_active")
		names["#active"] = "active"
		values[":filter_active"] = &types.AttributeValueMemberBOOL{Value: false}
	}
	return filter, names
}

func unmarshalServiceItems(raw []map[string]types.AttributeValue) ([]entities.Service, error) {
	items := make([]entities.Service, 0, len(raw))
	for _, m := range raw {
		var it serviceItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromServiceItem(it))
	}
	return items, nil
}

func toServiceItem(s entities.Service) serviceItem {
	return serviceItem{
		ID:          s.ID,
		OwnerID:     s.OwnerID,
		CategoryID:  s.CategoryID,
		Name:        s.Name,
		Description: s.Description,
		Price:       floatToString(s.Price),
		Gender:      string(s.Gender),
		Active:      s.Active,
		CreatedAt:   s.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromServiceItem(it serviceItem) entities.Service {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	price, _ := parseFloat(it.Price)
	return entities.Service{
		ID:          it.ID,
		OwnerID:     it.OwnerID,
		CategoryID:  it.CategoryID,
		Name:        it.Name,
		Description: it.Description,
		Price:       price,
		Gender:      entities.Gender(it.Gender),
		Active:      it.Active,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}
