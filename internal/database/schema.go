package database

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"
)

var (
	maxRetries    = 30
	retryInterval = 2 * time.Second
	tableWaitTime = 2 * time.Minute
)

// TableAdminInterface is the subset of the DynamoDB client needed to create the table
type TableAdminInterface interface {
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

// QueueAdminInterface is the subset of the SQS client needed to create the queue
type QueueAdminInterface interface {
	CreateQueue(ctx context.Context, params *sqs.CreateQueueInput, optFns ...func(*sqs.Options)) (*sqs.CreateQueueOutput, error)
	GetQueueUrl(ctx context.Context, params *sqs.GetQueueUrlInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error)
}

type SchemaConfig struct {
	TableName         string
	IDIndexName       string
	QueueName         string
	VisibilityTimeout time.Duration
	IndexName         string
}

// SchemaBootstrapper creates the table, queue and search index the service
// needs. Every step is safe to repeat against resources that already exist.
type SchemaBootstrapper struct {
	clients SchemaClients
	config  SchemaConfig
	logger  *slog.Logger
}

type SchemaClients struct {
	DynamoDB   TableAdminInterface
	SQS        QueueAdminInterface
	OpenSearch opensearchapi.Transport
}

func NewSchemaBootstrapper(clients SchemaClients, config SchemaConfig) *SchemaBootstrapper {
	return &SchemaBootstrapper{
		clients: clients,
		config:  config,
		logger:  slog.Default(),
	}
}

// Bootstrap waits for the backends and creates every missing resource. It
// returns the queue URL.
func (b *SchemaBootstrapper) Bootstrap(ctx context.Context) (string, error) {
	if err := b.WaitForDynamoDB(ctx); err != nil {
		return "", err
	}
	if err := b.EnsureTable(ctx); err != nil {
		return "", err
	}
	queueURL, err := b.EnsureQueue(ctx)
	if err != nil {
		return "", err
	}
	if err := b.EnsureIndex(ctx); err != nil {
		return "", err
	}
	return queueURL, nil
}

// WaitForDynamoDB polls DescribeTable until DynamoDB answers. A missing table
// counts as ready.
func (b *SchemaBootstrapper) WaitForDynamoDB(ctx context.Context) error {
	b.logger.Info("waiting for dynamodb to be ready")

	var nf *types.ResourceNotFoundException
	for i := 0; i < maxRetries; i++ {
		_, err := b.clients.DynamoDB.DescribeTable(ctx, &dynamodb.DescribeTableInput{
			TableName: aws.String(b.config.TableName),
		})
		if err == nil || errors.As(err, &nf) {
			b.logger.Info("dynamodb is ready")
			return nil
		}

		b.logger.Warn("dynamodb not ready",
			slog.Int("attempt", i+1),
			slog.Int("max_attempts", maxRetries),
			slog.String("error", err.Error()),
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryInterval):
		}
	}

	return fmt.Errorf("dynamodb not ready after %d attempts", maxRetries)
}

// EnsureTable creates the transactions table with its id index.
func (b *SchemaBootstrapper) EnsureTable(ctx context.Context) error {
	_, err := b.clients.DynamoDB.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName:   aws.String(b.config.TableName),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("user_id"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("sk"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("user_id"), KeyType: types.KeyTypeHash},
			{AttributeName: aws.String("sk"), KeyType: types.KeyTypeRange},
		},
		GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
			{
				IndexName: aws.String(b.config.IDIndexName),
				KeySchema: []types.KeySchemaElement{
					{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
				},
				Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
			},
		},
	})

	var inUse *types.ResourceInUseException
	switch {
	case err == nil:
		b.logger.Info("dynamodb table created", slog.String("table", b.config.TableName))
	case errors.As(err, &inUse):
		b.logger.Info("dynamodb table already exists", slog.String("table", b.config.TableName))
		return nil
	default:
		return fmt.Errorf("failed to create table %s: %w", b.config.TableName, err)
	}

	waiter := dynamodb.NewTableExistsWaiter(b.clients.DynamoDB)
	if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(b.config.TableName)}, tableWaitTime); err != nil {
		return fmt.Errorf("table %s did not become active: %w", b.config.TableName, err)
	}
	return nil
}

// EnsureQueue creates the event queue and returns its URL.
func (b *SchemaBootstrapper) EnsureQueue(ctx context.Context) (string, error) {
	output, err := b.clients.SQS.CreateQueue(ctx, &sqs.CreateQueueInput{
		QueueName: aws.String(b.config.QueueName),
		Attributes: map[string]string{
			"VisibilityTimeout": strconv.Itoa(int(b.config.VisibilityTimeout.Seconds())),
		},
	})
	if err == nil {
		b.logger.Info("sqs queue ready", slog.String("queue_url", aws.ToString(output.QueueUrl)))
		return aws.ToString(output.QueueUrl), nil
	}

	// A queue created earlier with other attributes is reused as is.
	existing, lookupErr := b.clients.SQS.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{QueueName: aws.String(b.config.QueueName)})
	if lookupErr != nil {
		return "", fmt.Errorf("failed to create queue %s: %w", b.config.QueueName, err)
	}
	b.logger.Warn("reusing existing sqs queue",
		slog.String("queue_url", aws.ToString(existing.QueueUrl)),
		slog.String("create_error", err.Error()),
	)
	return aws.ToString(existing.QueueUrl), nil
}

// EnsureIndex creates the search index with an explicit mapping.
func (b *SchemaBootstrapper) EnsureIndex(ctx context.Context) error {
	exists, err := opensearchapi.IndicesExistsRequest{Index: []string{b.config.IndexName}}.Do(ctx, b.clients.OpenSearch)
	if err != nil {
		return fmt.Errorf("failed to check index %s: %w", b.config.IndexName, err)
	}
	defer exists.Body.Close()

	if exists.StatusCode == http.StatusOK {
		b.logger.Info("search index already exists", slog.String("index", b.config.IndexName))
		return nil
	}

	created, err := opensearchapi.IndicesCreateRequest{
		Index: b.config.IndexName,
		Body:  strings.NewReader(IndexMapping),
	}.Do(ctx, b.clients.OpenSearch)
	if err != nil {
		return fmt.Errorf("failed to create index %s: %w", b.config.IndexName, err)
	}
	defer created.Body.Close()

	if created.IsError() {
		body, _ := io.ReadAll(created.Body)
		if strings.Contains(string(body), "resource_already_exists_exception") {
			return nil
		}
		return fmt.Errorf("failed to create index %s: status %d: %s", b.config.IndexName, created.StatusCode, body)
	}

	b.logger.Info("search index created", slog.String("index", b.config.IndexName))
	return nil
}

// IndexMapping types every sortable field as keyword, date or number.
// Metadata stays dynamic so each key gets a .keyword sub-field.
const IndexMapping = `{
  "settings": {"number_of_shards": 1, "number_of_replicas": 0},
  "mappings": {
    "properties": {
      "userId":        {"type": "keyword"},
      "sk":            {"type": "keyword"},
      "id":            {"type": "keyword"},
      "product":       {"type": "keyword"},
      "type":          {"type": "keyword"},
      "status":        {"type": "keyword"},
      "currency":      {"type": "keyword"},
      "amount":        {"type": "double"},
      "description":   {"type": "text"},
      "occurredAt":    {"type": "date"},
      "createdAt":     {"type": "date"},
      "sourceService": {"type": "keyword"},
      "eventId":       {"type": "keyword"},
      "transactionId": {"type": "keyword"},
      "metadata":      {"type": "object", "dynamic": true}
    }
  }
}`

// ResolveQueueURL returns queueURL when set and otherwise looks the queue up
// by name.
func ResolveQueueURL(ctx context.Context, client QueueAdminInterface, queueURL, queueName string) (string, error) {
	if queueURL != "" {
		return queueURL, nil
	}
	if queueName == "" {
		return "", errors.New("queue url or queue name is required")
	}

	output, err := client.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{QueueName: aws.String(queueName)})
	if err != nil {
		return "", fmt.Errorf("failed to resolve queue %s: %w", queueName, err)
	}
	return aws.ToString(output.QueueUrl), nil
}
