package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"activity-feed/internal/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	attrUserID = "user_id"
	attrSK     = "sk"
	attrID     = "id"

	insertOnlyCondition = "attribute_not_exists(sk)"
)

// transactionItem is the DynamoDB layout of a transaction.
type transactionItem struct {
	UserID        string          `dynamodbav:"user_id"`
	SK            string          `dynamodbav:"sk"`
	ID            string          `dynamodbav:"id"`
	Product       string          `dynamodbav:"product,omitempty"`
	Type          string          `dynamodbav:"type,omitempty"`
	Status        string          `dynamodbav:"status,omitempty"`
	Amount        amountAttribute `dynamodbav:"amount"`
	Currency      string          `dynamodbav:"currency,omitempty"`
	Description   string          `dynamodbav:"description,omitempty"`
	OccurredAt    time.Time       `dynamodbav:"occurred_at"`
	CreatedAt     time.Time       `dynamodbav:"created_at"`
	SourceService string          `dynamodbav:"source_service,omitempty"`
	EventID       string          `dynamodbav:"event_id,omitempty"`
	TransactionID string          `dynamodbav:"transaction_id,omitempty"`
	Metadata      string          `dynamodbav:"metadata,omitempty"`
}

// amountAttribute stores a decimal amount as a DynamoDB number without
// going through float64.
type amountAttribute decimal.Decimal

func (a amountAttribute) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	return &types.AttributeValueMemberN{Value: decimal.Decimal(a).String()}, nil
}

func (a *amountAttribute) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	var raw string
	switch v := av.(type) {
	case *types.AttributeValueMemberN:
		raw = v.Value
	case *types.AttributeValueMemberS:
		raw = v.Value
	case *types.AttributeValueMemberNULL:
		*a = amountAttribute(decimal.Zero)
		return nil
	default:
		return fmt.Errorf("unsupported attribute type %T for amount", av)
	}
	parsed, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	*a = amountAttribute(parsed)
	return nil
}

func newTransactionItem(tx *models.Transaction) transactionItem {
	return transactionItem{
		UserID:        tx.UserID,
		SK:            tx.SK,
		ID:            tx.ID,
		Product:       string(tx.Product),
		Type:          string(tx.Type),
		Status:        string(tx.Status),
		Amount:        amountAttribute(tx.Amount),
		Currency:      string(tx.Currency),
		Description:   tx.Description,
		OccurredAt:    tx.OccurredAt.UTC(),
		CreatedAt:     tx.CreatedAt.UTC(),
		SourceService: tx.SourceService,
		EventID:       tx.EventID,
		TransactionID: tx.TransactionID,
		Metadata:      tx.Metadata,
	}
}

func (i transactionItem) toModel() models.Transaction {
	return models.Transaction{
		UserID:        i.UserID,
		SK:            i.SK,
		ID:            i.ID,
		Product:       models.Product(i.Product),
		Type:          models.TransactionType(i.Type),
		Status:        models.TransactionStatus(i.Status),
		Amount:        decimal.Decimal(i.Amount),
		Currency:      models.Currency(i.Currency),
		Description:   i.Description,
		OccurredAt:    i.OccurredAt,
		CreatedAt:     i.CreatedAt,
		SourceService: i.SourceService,
		EventID:       i.EventID,
		TransactionID: i.TransactionID,
		Metadata:      i.Metadata,
	}
}

// DynamoDBTransactionRepository keeps transactions partitioned by user and
// ordered by sort key, with a global secondary index on the transaction id.
type DynamoDBTransactionRepository struct {
	client      DynamoDBClientInterface
	tableName   string
	idIndexName string
}

func NewDynamoDBTransactionRepository(client DynamoDBClientInterface, tableName, idIndexName string) TransactionStoreRepositoryInterface {
	return &DynamoDBTransactionRepository{
		client:      client,
		tableName:   tableName,
		idIndexName: idIndexName,
	}
}

// Put inserts the transaction unless a record with the same key exists, in
// which case ErrTransactionAlreadyExists is returned.
func (r *DynamoDBTransactionRepository) Put(ctx context.Context, transaction *models.Transaction) error {
	item, err := attributevalue.MarshalMap(newTransactionItem(transaction))
	if err != nil {
		return fmt.Errorf("failed to marshal transaction: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                item,
		ConditionExpression: aws.String(insertOnlyCondition),
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return ErrTransactionAlreadyExists
		}
		return fmt.Errorf("PutItem operation failed: %w", err)
	}

	return nil
}

func (r *DynamoDBTransactionRepository) GetByTransactionID(ctx context.Context, transactionID string) (*models.Transaction, error) {
	result, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(r.idIndexName),
		KeyConditionExpression: aws.String("#id = :id"),
		ExpressionAttributeNames: map[string]string{
			"#id": attrID,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberS{Value: transactionID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return nil, fmt.Errorf("Query operation failed: %w", err)
	}

	if len(result.Items) == 0 {
		return nil, ErrTransactionNotFound
	}

	var item transactionItem
	if err := attributevalue.UnmarshalMap(result.Items[0], &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal transaction: %w", err)
	}

	transaction := item.toModel()
	return &transaction, nil
}

// QueryByOwner reads the user's partition newest first. It keeps following
// LastEvaluatedKey until FetchLimit items are collected or the partition ends.
func (r *DynamoDBTransactionRepository) QueryByOwner(ctx context.Context, query OwnerQuery) (*OwnerQueryResult, error) {
	if query.UserID == "" {
		return nil, errors.New("user id is required")
	}
	if query.FetchLimit <= 0 {
		return nil, errors.New("fetch limit must be positive")
	}

	keyCondition := "#uid = :uid"
	names := map[string]string{"#uid": attrUserID}
	values := map[string]types.AttributeValue{
		":uid": &types.AttributeValueMemberS{Value: query.UserID},
	}
	if query.LowerSK != "" && query.UpperSK != "" {
		keyCondition += " AND #sk BETWEEN :lower AND :upper"
		names["#sk"] = attrSK
		values[":lower"] = &types.AttributeValueMemberS{Value: query.LowerSK}
		values[":upper"] = &types.AttributeValueMemberS{Value: query.UpperSK}
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		KeyConditionExpression:    aws.String(keyCondition),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ScanIndexForward:          aws.Bool(false),
	}
	if query.ExclusiveStartKey != nil {
		input.ExclusiveStartKey = storeKeyToAttributes(*query.ExclusiveStartKey)
	}

	result := &OwnerQueryResult{Items: make([]models.Transaction, 0, query.FetchLimit)}
	for {
		input.Limit = aws.Int32(int32(query.FetchLimit - len(result.Items)))

		output, err := r.client.Query(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("Query operation failed: %w", err)
		}

		var items []transactionItem
		if err := attributevalue.UnmarshalListOfMaps(output.Items, &items); err != nil {
			return nil, fmt.Errorf("failed to unmarshal transactions: %w", err)
		}
		for _, item := range items {
			result.Items = append(result.Items, item.toModel())
		}

		result.LastEvaluatedKey = nil
		if len(output.LastEvaluatedKey) > 0 {
			key, err := storeKeyFromAttributes(output.LastEvaluatedKey)
			if err != nil {
				return nil, err
			}
			result.LastEvaluatedKey = &key
		}

		if len(result.Items) >= query.FetchLimit || len(output.LastEvaluatedKey) == 0 {
			return result, nil
		}
		input.ExclusiveStartKey = output.LastEvaluatedKey
	}
}

func (r *DynamoDBTransactionRepository) Ping(ctx context.Context) error {
	_, err := r.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		var notFoundErr *types.ResourceNotFoundException
		if errors.As(err, &notFoundErr) {
			return fmt.Errorf("table %s does not exist", r.tableName)
		}
		return fmt.Errorf("error checking table: %w", err)
	}
	return nil
}

func storeKeyToAttributes(key StoreKey) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		attrUserID: &types.AttributeValueMemberS{Value: key.UserID},
		attrSK:     &types.AttributeValueMemberS{Value: key.SK},
	}
}

func storeKeyFromAttributes(attrs map[string]types.AttributeValue) (StoreKey, error) {
	userID, okUser := attrs[attrUserID].(*types.AttributeValueMemberS)
	sk, okSK := attrs[attrSK].(*types.AttributeValueMemberS)
	if !okUser || !okSK {
		return StoreKey{}, errors.New("unexpected last evaluated key shape")
	}
	return StoreKey{UserID: userID.Value, SK: sk.Value}, nil
}
