package repository

import (
	"context"
	"encoding/json"
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
	defaultNotificationsTableName = "notifications"
	notificationsUserIDIndex      = "user_id-index"
)

type notificationItem struct {
	ID             string `dynamodbav:"id"`
	UserID         string `dynamodbav:"user_id"`
	Title          string `dynamodbav:"title"`
	Message        string `dynamodbav:"message"`
	AdditionalData string `dynamodbav:"additional_data,omitempty"`
	IsRead         bool   `dynamodbav:"is_read"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// NotificationDynamoRepository persists Notification entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id, SK: created_at)
//
// AdditionalData is stored as a JSON string to keep the item flat.

type NotificationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.INotificationRepository = (*NotificationDynamoRepository)(nil)

func NewNotificationDynamoRepository(ddb *dynamodb.Client) *NotificationDynamoRepository {
	return &NotificationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("NOTIFICATIONS_TABLE", defaultNotificationsTableName),
	}
}

func (r *NotificationDynamoRepository) Create(ctx context.Context, n entities.Notification) (entities.Notification, error) {
	it, err := toNotificationItem(n)
	if err != nil {
		return entities.Notification{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Notification{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Notification{}, err
	}
	return n, nil
}

func (r *NotificationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Notification, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Notification{}, err
	}
	if len(out.Item) == 0 {
		return entities.Notification{}, nil
	}

	var it notificationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Notification{}, err
	}
	return fromNotificationItem(it), nil
}

func (r *NotificationDynamoRepository) ListByUserID(ctx context.Context, userID string, f interfaces.NotificationFilter) ([]entities.Notification, string, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(notificationsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
		Limit:             aws.Int32(defaultLimit(f.Limit)),
		ScanIndexForward:  aws.Bool(false),
		ExclusiveStartKey: decodeCursor(f.Cursor),
	}

	filter := ""
	names := map[string]string{}
	if f.IsRead != nil {
		filter = "#is_read = :is_read"
		names["#is_read"] = "is_read"
		input.ExpressionAttributeValues[":is_read"] = &types.AttributeValueMemberBOOL{Value: *f.IsRead}
	}
	if f.Search != "" {
		if filter != "" {
			filter += " AND "
		}
		filter += "(contains(#title, :search) OR contains(#message, :search))"
		names["#title"] = "title"
		names["#message"] = "message"
		input.ExpressionAttributeValues[":search"] = &types.AttributeValueMemberS{Value: f.Search}
	}
	if filter != "" {
		input.FilterExpression = aws.String(filter)
		input.ExpressionAttributeNames = names
	}

	out, err := r.ddb.Query(ctx, input)
	if err != nil {
		return nil, "", err
	}

	items := make([]entities.Notification, 0, len(out.Items))
	for _, raw := range out.Items {
		var it notificationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, "", err
		}
		items = append(items, fromNotificationItem(it))
	}
	return items, encodeCursor(out.LastEvaluatedKey), nil
}

func (r *NotificationDynamoRepository) CountUnread(ctx context.Context, userID string) (int, error) {
	var (
		count    int
		startKey map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(notificationsUserIDIndex),
			KeyConditionExpression: aws.String("user_id = :uid"),
			FilterExpression:       aws.String("#is_read = :unread"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":uid":    &types.AttributeValueMemberS{Value: userID},
				":unread": &types.AttributeValueMemberBOOL{Value: false},
			},
			ExpressionAttributeNames: map[string]string{"#is_read": "is_read"},
			Select:                   types.SelectCount,
			ExclusiveStartKey:        startKey,
		})
		if err != nil {
			return 0, err
		}
		count += int(out.Count)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return count, nil
}

func (r *NotificationDynamoRepository) MarkRead(ctx context.Context, id string) (entities.Notification, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #is_read = :read, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":read":       &types.AttributeValueMemberBOOL{Value: true},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#is_read":    "is_read",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Notification{}, interfaces.ErrConditionFailed
		}
		return entities.Notification{}, err
	}

	var it notificationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Notification{}, err
	}
	return fromNotificationItem(it), nil
}

// MarkAllRead flips every unread notification of the user and returns how
// many it touched. The per-item writes are not transactional; a partial
// failure leaves the remainder unread, which a retry fixes.
func (r *NotificationDynamoRepository) MarkAllRead(ctx context.Context, userID string) (int, error) {
	ids, err := r.idsByReadState(ctx, userID, false)
	if err != nil {
		return 0, err
	}
	for _, id := range ids {
		if _, err := r.MarkRead(ctx, id); err != nil {
			return 0, err
		}
	}
	return len(ids), nil
}

func (r *NotificationDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *NotificationDynamoRepository) DeleteAllRead(ctx context.Context, userID string) (int, error) {
	ids, err := r.idsByReadState(ctx, userID, true)
	if err != nil {
		return 0, err
	}
	for _, id := range ids {
		if err := r.Delete(ctx, id); err != nil {
			return 0, err
		}
	}
	return len(ids), nil
}

func (r *NotificationDynamoRepository) idsByReadState(ctx context.Context, userID string, isRead bool) ([]string, error) {
	var (
		ids      []string
		startKey map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(notificationsUserIDIndex),
			KeyConditionExpression: aws.String("user_id = :uid"),
			FilterExpression:       aws.String("#is_read = :is_read"),
			ProjectionExpression:   aws.String("#id"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":uid":     &types.AttributeValueMemberS{Value: userID},
				":is_read": &types.AttributeValueMemberBOOL{Value: isRead},
			},
			ExpressionAttributeNames: map[string]string{
				"#id":      "id",
				"#is_read": "is_read",
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			if s, ok := raw["id"].(*types.AttributeValueMemberS); ok {
				ids = append(ids, s.Value)
			}
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return ids, nil
}

func toNotificationItem(n entities.Notification) (notificationItem, error) {
	it := notificationItem{
		ID:        n.ID,
		UserID:    n.UserID,
		Title:     n.Title,
		Message:   n.Message,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: n.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if n.AdditionalData != nil {
		raw, err := json.Marshal(n.AdditionalData)
		if err != nil {
			return notificationItem{}, err
		}
		it.AdditionalData = string(raw)
	}
	return it, nil
}

func fromNotificationItem(it notificationItem) entities.Notification {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	n := entities.Notification{
		ID:        it.ID,
		UserID:    it.UserID,
		Title:     it.Title,
		Message:   it.Message,
		IsRead:    it.IsRead,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
	if it.AdditionalData != "" {
		var notice entities.QuotationNotice
		if err := json.Unmarshal([]byte(it.AdditionalData), &notice); err == nil {
			n.AdditionalData = &notice
		}
	}
	return n
}
