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
	defaultServiceRequestsTableName = "service_requests"
	serviceRequestsClientIDIndex    = "client_id-index"
)

type serviceRequestItem struct {
	ID               string `dynamodbav:"id"`
	ClientID         string `dynamodbav:"client_id"`
	ServiceID        string `dynamodbav:"service_id"`
	Date             string `dynamodbav:"date"`
	Time             string `dynamodbav:"time"`
	Location         string `dynamodbav:"location"`
	Observations     string `dynamodbav:"observations,omitempty"`
	ReferenceImageID string `dynamodbav:"reference_image_id,omitempty"`
	Status           string `dynamodbav:"status"`
	Validity         string `dynamodbav:"validity_status"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// ServiceRequestDynamoRepository persists ServiceRequest entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_id-index (PK: client_id, SK: created_at)
//
// The fan-out creation also writes into the quotations table, so both table
// names are resolved here.

type ServiceRequestDynamoRepository struct {
	ddb             *dynamodb.Client
	tableName       string
	quotationsTable string
}

var _ interfaces.IServiceRequestRepository = (*ServiceRequestDynamoRepository)(nil)

func NewServiceRequestDynamoRepository(ddb *dynamodb.Client) *ServiceRequestDynamoRepository {
	return &ServiceRequestDynamoRepository{
		ddb:             ddb,
		tableName:       getenvDefault("SERVICE_REQUESTS_TABLE", defaultServiceRequestsTableName),
		quotationsTable: getenvDefault("QUOTATIONS_TABLE", defaultQuotationsTableName),
	}
}

// CreateWithQuotations writes the aggregate root and its quotations in one
// TransactWriteItems call. Every put is conditioned on the id not existing,
// so a replayed creation cannot overwrite anything.
func (r *ServiceRequestDynamoRepository) CreateWithQuotations(ctx context.Context, req entities.ServiceRequest, quotations []entities.Quotation) error {
	reqAV, err := attributevalue.MarshalMap(toServiceRequestItem(req))
	if err != nil {
		return err
	}

	items := make([]types.TransactWriteItem, 0, len(quotations)+1)
	items = append(items, types.TransactWriteItem{
		Put: &types.Put{
			TableName:                aws.String(r.tableName),
			Item:                     reqAV,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		},
	})
	for _, q := range quotations {
		qAV, err := attributevalue.MarshalMap(toQuotationItem(q))
		if err != nil {
			return err
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{
				TableName:                aws.String(r.quotationsTable),
				Item:                     qAV,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		var canceled *types.TransactionCanceledException
		if errors.As(err, &canceled) {
			return interfaces.ErrConditionFailed
		}
		return err
	}
	return nil
}

func (r *ServiceRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceRequest{}, nil
	}

	var it serviceRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceRequest{}, err
	}
	return fromServiceRequestItem(it), nil
}

func (r *ServiceRequestDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.RequestStatus) (entities.ServiceRequest, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ServiceRequest{}, interfaces.ErrConditionFailed
		}
		return entities.ServiceRequest{}, err
	}

	var it serviceRequestItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ServiceRequest{}, err
	}
	return fromServiceRequestItem(it), nil
}

func (r *ServiceRequestDynamoRepository) ListByClientID(ctx context.Context, clientID string, f interfaces.ListFilter) ([]entities.ServiceRequest, string, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(serviceRequestsClientIDIndex),
		KeyConditionExpression: aws.String("client_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: clientID},
		},
		Limit:             aws.Int32(defaultLimit(f.Limit)),
		ScanIndexForward:  aws.Bool(false),
		ExclusiveStartKey: decodeCursor(f.Cursor),
	}

	filter := ""
	names := map[string]string{}
	if f.Status != "" {
		filter = "#status = :status"
		names["#status"] = "status"
		input.ExpressionAttributeValues[":status"] = &types.AttributeValueMemberS{Value: f.Status}
	}
	if f.Validity != "" {
		if filter != "" {
			filter += " AND "
		}
		filter += "#validity = :validity"
		names["#validity"] = "validity_status"
		input.ExpressionAttributeValues[":validity"] = &types.AttributeValueMemberS{Value: f.Validity}
	}
	if filter != "" {
		input.FilterExpression = aws.String(filter)
		input.ExpressionAttributeNames = names
	}

	out, err := r.ddb.Query(ctx, input)
	if err != nil {
		return nil, "", err
	}

	items := make([]entities.ServiceRequest, 0, len(out.Items))
	for _, raw := range out.Items {
		var it serviceRequestItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, "", err
		}
		items = append(items, fromServiceRequestItem(it))
	}
	return items, encodeCursor(out.LastEvaluatedKey), nil
}

func toServiceRequestItem(r entities.ServiceRequest) serviceRequestItem {
	return serviceRequestItem{
		ID:               r.ID,
		ClientID:         r.ClientID,
		ServiceID:        r.ServiceID,
		Date:             r.Date,
		Time:             r.Time,
		Location:         r.Location,
		Observations:     r.Observations,
		ReferenceImageID: r.ReferenceImageID,
		Status:           string(r.Status),
		Validity:         string(r.Validity),
		CreatedAt:        r.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        r.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromServiceRequestItem(it serviceRequestItem) entities.ServiceRequest {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.ServiceRequest{
		ID:               it.ID,
		ClientID:         it.ClientID,
		ServiceID:        it.ServiceID,
		Date:             it.Date,
		Time:             it.Time,
		Location:         it.Location,
		Observations:     it.Observations,
		ReferenceImageID: it.ReferenceImageID,
		Status:           entities.RequestStatus(it.Status),
		Validity:         entities.Validity(it.Validity),
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
}
