package repository

import (
	"context"
	"errors"
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
	defaultQuotationsTableName      = "quotations"
	quotationsServiceRequestIDIndex = "service_request_id-index"
	quotationsProviderIDIndex       = "provider_id-index"
)

type quotationItem struct {
	ID                   string `dynamodbav:"id"`
	ServiceRequestID     string `dynamodbav:"service_request_id"`
	ProviderID           string `dynamodbav:"provider_id"`
	Price                string `dynamodbav:"price,omitempty"`
	ProviderObservations string `dynamodbav:"provider_observations,omitempty"`
	Status               string `dynamodbav:"status"`
	Rating               string `dynamodbav:"rating,omitempty"`
	RatingComment        string `dynamodbav:"rating_comment,omitempty"`
	CreatedAt            string `dynamodbav:"created_at"`
	UpdatedAt            string `dynamodbav:"updated_at"`
}

// QuotationDynamoRepository persists Quotation entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: service_request_id-index (PK: service_request_id, SK: created_at)
//   - GSI: provider_id-index (PK: provider_id, SK: created_at)

type QuotationDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	requestsTable string
}

var _ interfaces.IQuotationRepository = (*QuotationDynamoRepository)(nil)

func NewQuotationDynamoRepository(ddb *dynamodb.Client) *QuotationDynamoRepository {
	return &QuotationDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("QUOTATIONS_TABLE", defaultQuotationsTableName),
		requestsTable: getenvDefault("SERVICE_REQUESTS_TABLE", defaultServiceRequestsTableName),
	}
}

func (r *QuotationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quotation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quotation{}, nil
	}

	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

func (r *QuotationDynamoRepository) ListByRequestID(ctx context.Context, requestID string) ([]entities.Quotation, error) {
	var (
		items    []entities.Quotation
		startKey map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(quotationsServiceRequestIDIndex),
			KeyConditionExpression: aws.String("service_request_id = :rid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":rid": &types.AttributeValueMemberS{Value: requestID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it quotationItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromQuotationItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return items, nil
}

func (r *QuotationDynamoRepository) ListByProviderID(ctx context.Context, providerID string, f interfaces.ListFilter) ([]entities.Quotation, string, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotationsProviderIDIndex),
		KeyConditionExpression: aws.String("provider_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: providerID},
		},
		Limit:             aws.Int32(defaultLimit(f.Limit)),
		ScanIndexForward:  aws.Bool(false),
		ExclusiveStartKey: decodeCursor(f.Cursor),
	}
	if f.Status != "" {
		input.FilterExpression = aws.String("#status = :status")
		input.ExpressionAttributeNames = map[string]string{"#status": "status"}
		input.ExpressionAttributeValues[":status"] = &types.AttributeValueMemberS{Value: f.Status}
	}

	out, err := r.ddb.Query(ctx, input)
	if err != nil {
		return nil, "", err
	}

	items := make([]entities.Quotation, 0, len(out.Items))
	for _, raw := range out.Items {
		var it quotationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, "", err
		}
		items = append(items, fromQuotationItem(it))
	}
	return items, encodeCursor(out.LastEvaluatedKey), nil
}

// SubmitPrice records the provider's offer and moves the quotation to quoted.
// The write is conditioned on the quotation still being open, so an offer on
// an already decided quotation fails with ErrConditionFailed.
func (r *QuotationDynamoRepository) SubmitPrice(ctx context.Context, id string, price float64, observations string) (entities.Quotation, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status IN (:pending, :quoted)"),
		UpdateExpression:    aws.String("SET #price = :price, #obs = :obs, #status = :new_status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":price":      &types.AttributeValueMemberS{Value: floatToString(price)},
			":obs":        &types.AttributeValueMemberS{Value: observations},
			":new_status": &types.AttributeValueMemberS{Value: string(entities.QuotationStatusQuoted)},
			":pending":    &types.AttributeValueMemberS{Value: string(entities.QuotationStatusPending)},
			":quoted":     &types.AttributeValueMemberS{Value: string(entities.QuotationStatusQuoted)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#price":      "price",
			"#obs":        "provider_observations",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quotation{}, interfaces.ErrConditionFailed
		}
		return entities.Quotation{}, err
	}

	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

func (r *QuotationDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.QuotationStatus) (entities.Quotation, error) {
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
			return entities.Quotation{}, interfaces.ErrConditionFailed
		}
		return entities.Quotation{}, err
	}

	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

// Rate stores the one-time rating on an accepted quotation. The condition
// rejects a second rating of the same quotation.
func (r *QuotationDynamoRepository) Rate(ctx context.Context, id string, rating int, comment string) (entities.Quotation, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("#status = :accepted AND attribute_not_exists(#rating)"),
		UpdateExpression:    aws.String("SET #rating = :rating, #comment = :comment, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":accepted":   &types.AttributeValueMemberS{Value: string(entities.QuotationStatusAccepted)},
			":rating":     &types.AttributeValueMemberS{Value: strconv.Itoa(rating)},
			":comment":    &types.AttributeValueMemberS{Value: comment},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#status":     "status",
			"#rating":     "rating",
			"#comment":    "rating_comment",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quotation{}, interfaces.ErrConditionFailed
		}
		return entities.Quotation{}, err
	}

	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

// Accept commits the whole accept transition in one transaction: the target
// quotation to accepted (conditioned on it still being quoted), every sibling
// to rejected and the parent request to hired (conditioned on the request
// still being quoted, so a cancelled request never comes back as hired).
func (r *QuotationDynamoRepository) Accept(ctx context.Context, requestID, quotationID string, siblingIDs []string) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	items := make([]types.TransactWriteItem, 0, len(siblingIDs)+2)
	items = append(items, types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: quotationID},
			},
			ConditionExpression: aws.String("#status = :quoted"),
			UpdateExpression:    aws.String("SET #status = :accepted, #updated_at = :updated_at"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":quoted":     &types.AttributeValueMemberS{Value: string(entities.QuotationStatusQuoted)},
				":accepted":   &types.AttributeValueMemberS{Value: string(entities.QuotationStatusAccepted)},
				":updated_at": &types.AttributeValueMemberS{Value: now},
			},
			ExpressionAttributeNames: map[string]string{
				"#status":     "status",
				"#updated_at": "updated_at",
			},
		},
	})
	for _, siblingID := range siblingIDs {
		items = append(items, types.TransactWriteItem{
			Update: &types.Update{
				TableName: aws.String(r.tableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: siblingID},
				},
				UpdateExpression: aws.String("SET #status = :rejected, #updated_at = :updated_at"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":rejected":   &types.AttributeValueMemberS{Value: string(entities.QuotationStatusRejected)},
					":updated_at": &types.AttributeValueMemberS{Value: now},
				},
				ExpressionAttributeNames: map[string]string{
					"#status":     "status",
					"#updated_at": "updated_at",
				},
			},
		})
	}
	items = append(items, types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(r.requestsTable),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: requestID},
			},
			ConditionExpression: aws.String("#status = :req_quoted"),
			UpdateExpression:    aws.String("SET #status = :hired, #updated_at = :updated_at"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":req_quoted": &types.AttributeValueMemberS{Value: string(entities.RequestStatusQuoted)},
				":hired":      &types.AttributeValueMemberS{Value: string(entities.RequestStatusHired)},
				":updated_at": &types.AttributeValueMemberS{Value: now},
			},
			ExpressionAttributeNames: map[string]string{
				"#status":     "status",
				"#updated_at": "updated_at",
			},
		},
	})

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		var canceled *types.TransactionCanceledException
		if errors.As(err, &canceled) {
			return interfaces.ErrConditionFailed
		}
		return err
	}
	return nil
}

func toQuotationItem(q entities.Quotation) quotationItem {
	it := quotationItem{
		ID:                   q.ID,
		ServiceRequestID:     q.ServiceRequestID,
		ProviderID:           q.ProviderID,
		ProviderObservations: q.ProviderObservations,
		Status:               string(q.Status),
		RatingComment:        q.RatingComment,
		CreatedAt:            q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:            q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if q.Price != nil {
		it.Price = floatToString(*q.Price)
	}
	if q.Rating != nil {
		it.Rating = strconv.Itoa(*q.Rating)
	}
	return it
}

func fromQuotationItem(it quotationItem) entities.Quotation {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	q := entities.Quotation{
		ID:                   it.ID,
		ServiceRequestID:     it.ServiceRequestID,
		ProviderID:           it.ProviderID,
		ProviderObservations: it.ProviderObservations,
		Status:               entities.QuotationStatus(it.Status),
		RatingComment:        it.RatingComment,
		CreatedAt:            createdAt,
		UpdatedAt:            updatedAt,
	}
	if it.Price != "" {
		if v, err := strconv.ParseFloat(it.Price, 64); err == nil {
			q.Price = &v
		}
	}
	if it.Rating != "" {
		if v, err := strconv.Atoi(it.Rating); err == nil {
			q.Rating = &v
		}
	}
	return q
}
