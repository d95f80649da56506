package database

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTableAdmin struct {
	describeErrs []error
	describes    int
	createErr    error
	created      *dynamodb.CreateTableInput
}

func (f *fakeTableAdmin) CreateTable(_ context.Context, params *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	f.created = params
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &dynamodb.CreateTableOutput{}, nil
}

func (f *fakeTableAdmin) DescribeTable(_ context.Context, _ *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	f.describes++
	if len(f.describeErrs) > 0 {
		err := f.describeErrs[0]
		f.describeErrs = f.describeErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	return &dynamodb.DescribeTableOutput{
		Table: &types.TableDescription{TableStatus: types.TableStatusActive},
	}, nil
}

type fakeQueueAdmin struct {
	createErr error
	lookupErr error
	createdIn *sqs.CreateQueueInput
}

func (f *fakeQueueAdmin) CreateQueue(_ context.Context, params *sqs.CreateQueueInput, _ ...func(*sqs.Options)) (*sqs.CreateQueueOutput, error) {
	f.createdIn = params
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &sqs.CreateQueueOutput{QueueUrl: aws.String("http://localhost:4566/000000000000/" + *params.QueueName)}, nil
}

func (f *fakeQueueAdmin) GetQueueUrl(_ context.Context, params *sqs.GetQueueUrlInput, _ ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	return &sqs.GetQueueUrlOutput{QueueUrl: aws.String("http://localhost:4566/000000000000/" + *params.QueueName)}, nil
}

type transportFunc func(req *http.Request) (*http.Response, error)

func (f transportFunc) Perform(req *http.Request) (*http.Response, error) {
	return f(req)
}

func response(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func testSchemaConfig() SchemaConfig {
	return SchemaConfig{
		TableName:         "activity_feed",
		IDIndexName:       "id-index",
		QueueName:         "transaction-events",
		VisibilityTimeout: 30 * time.Second,
		IndexName:         "activity_items",
	}
}

func withFastRetries(t *testing.T) {
	t.Helper()
	originalRetries, originalInterval := maxRetries, retryInterval
	maxRetries = 3
	retryInterval = 5 * time.Millisecond
	t.Cleanup(func() {
		maxRetries = originalRetries
		retryInterval = originalInterval
	})
}

func TestWaitForDynamoDB_FailureThenSuccess(t *testing.T) {
	withFastRetries(t)
	tables := &fakeTableAdmin{describeErrs: []error{errors.New("connection refused"), nil}}
	bootstrapper := NewSchemaBootstrapper(SchemaClients{DynamoDB: tables}, testSchemaConfig())

	err := bootstrapper.WaitForDynamoDB(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 2, tables.describes)
}

func TestWaitForDynamoDB_MissingTableCountsAsReady(t *testing.T) {
	withFastRetries(t)
	tables := &fakeTableAdmin{describeErrs: []error{&types.ResourceNotFoundException{Message: aws.String("not found")}}}
	bootstrapper := NewSchemaBootstrapper(SchemaClients{DynamoDB: tables}, testSchemaConfig())

	assert.NoError(t, bootstrapper.WaitForDynamoDB(context.Background()))
	assert.Equal(t, 1, tables.describes)
}

func TestWaitForDynamoDB_AlwaysFails(t *testing.T) {
	withFastRetries(t)
	failure := errors.New("connection refused")
	tables := &fakeTableAdmin{describeErrs: []error{failure, failure, failure}}
	bootstrapper := NewSchemaBootstrapper(SchemaClients{DynamoDB: tables}, testSchemaConfig())

	err := bootstrapper.WaitForDynamoDB(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not ready after 3 attempts")
}

func TestEnsureTable_CreatesTableWithIDIndex(t *testing.T) {
	tables := &fakeTableAdmin{}
	bootstrapper := NewSchemaBootstrapper(SchemaClients{DynamoDB: tables}, testSchemaConfig())

	require.NoError(t, bootstrapper.EnsureTable(context.Background()))

	require.NotNil(t, tables.created)
	assert.Equal(t, "activity_feed", aws.ToString(tables.created.TableName))
	assert.Equal(t, types.BillingModePayPerRequest, tables.created.BillingMode)
	require.Len(t, tables.created.KeySchema, 2)
	assert.Equal(t, "user_id", aws.ToString(tables.created.KeySchema[0].AttributeName))
	assert.Equal(t, "sk", aws.ToString(tables.created.KeySchema[1].AttributeName))
	require.Len(t, tables.created.GlobalSecondaryIndexes, 1)
	assert.Equal(t, "id-index", aws.ToString(tables.created.GlobalSecondaryIndexes[0].IndexName))
}

func TestEnsureTable_ExistingTable_IsNotAnError(t *testing.T) {
	tables := &fakeTableAdmin{createErr: &types.ResourceInUseException{Message: aws.String("exists")}}
	bootstrapper := NewSchemaBootstrapper(SchemaClients{DynamoDB: tables}, testSchemaConfig())

	assert.NoError(t, bootstrapper.EnsureTable(context.Background()))
	assert.Zero(t, tables.describes)
}

func TestEnsureTable_OtherError_IsReturned(t *testing.T) {
	tables := &fakeTableAdmin{createErr: errors.New("access denied")}
	bootstrapper := NewSchemaBootstrapper(SchemaClients{DynamoDB: tables}, testSchemaConfig())

	err := bootstrapper.EnsureTable(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}

func TestEnsureQueue_ReturnsQueueURL(t *testing.T) {
	queues := &fakeQueueAdmin{}
	bootstrapper := NewSchemaBootstrapper(SchemaClients{SQS: queues}, testSchemaConfig())

	url, err := bootstrapper.EnsureQueue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:4566/000000000000/transaction-events", url)
	assert.Equal(t, "30", queues.createdIn.Attributes["VisibilityTimeout"])
}

func TestEnsureQueue_AttributeConflict_ReusesExistingQueue(t *testing.T) {
	queues := &fakeQueueAdmin{createErr: errors.New("QueueAlreadyExists")}
	bootstrapper := NewSchemaBootstrapper(SchemaClients{SQS: queues}, testSchemaConfig())

	url, err := bootstrapper.EnsureQueue(context.Background())

	require.NoError(t, err)
	assert.Contains(t, url, "transaction-events")
}

func TestEnsureQueue_Failure(t *testing.T) {
	queues := &fakeQueueAdmin{createErr: errors.New("access denied"), lookupErr: errors.New("does not exist")}
	bootstrapper := NewSchemaBootstrapper(SchemaClients{SQS: queues}, testSchemaConfig())

	_, err := bootstrapper.EnsureQueue(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}

func TestEnsureIndex_CreatesMissingIndex(t *testing.T) {
	var methods []string
	var createdBody string
	transport := transportFunc(func(req *http.Request) (*http.Response, error) {
		methods = append(methods, req.Method+" "+req.URL.Path)
		if req.Method == http.MethodHead {
			return response(http.StatusNotFound, ``), nil
		}
		raw, _ := io.ReadAll(req.Body)
		createdBody = string(raw)
		return response(http.StatusOK, `{"acknowledged":true}`), nil
	})
	bootstrapper := NewSchemaBootstrapper(SchemaClients{OpenSearch: transport}, testSchemaConfig())

	require.NoError(t, bootstrapper.EnsureIndex(context.Background()))

	assert.Equal(t, []string{"HEAD /activity_items", "PUT /activity_items"}, methods)
	assert.JSONEq(t, IndexMapping, createdBody)
}

func TestEnsureIndex_ExistingIndex_IsLeftAlone(t *testing.T) {
	calls := 0
	transport := transportFunc(func(req *http.Request) (*http.Response, error) {
		calls++
		return response(http.StatusOK, ``), nil
	})
	bootstrapper := NewSchemaBootstrapper(SchemaClients{OpenSearch: transport}, testSchemaConfig())

	require.NoError(t, bootstrapper.EnsureIndex(context.Background()))
	assert.Equal(t, 1, calls)
}

func TestEnsureIndex_ConcurrentCreate_IsNotAnError(t *testing.T) {
	transport := transportFunc(func(req *http.Request) (*http.Response, error) {
		if req.Method == http.MethodHead {
			return response(http.StatusNotFound, ``), nil
		}
		return response(http.StatusBadRequest, `{"error":{"type":"resource_already_exists_exception"}}`), nil
	})
	bootstrapper := NewSchemaBootstrapper(SchemaClients{OpenSearch: transport}, testSchemaConfig())

	assert.NoError(t, bootstrapper.EnsureIndex(context.Background()))
}

func TestEnsureIndex_CreateFailure(t *testing.T) {
	transport := transportFunc(func(req *http.Request) (*http.Response, error) {
		if req.Method == http.MethodHead {
			return response(http.StatusNotFound, ``), nil
		}
		return response(http.StatusForbidden, `{"error":"forbidden"}`), nil
	})
	bootstrapper := NewSchemaBootstrapper(SchemaClients{OpenSearch: transport}, testSchemaConfig())

	err := bootstrapper.EnsureIndex(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
}

func TestBootstrap_RunsEveryStep(t *testing.T) {
	tables := &fakeTableAdmin{createErr: &types.ResourceInUseException{Message: aws.String("exists")}}
	queues := &fakeQueueAdmin{}
	transport := transportFunc(func(req *http.Request) (*http.Response, error) {
		return response(http.StatusOK, ``), nil
	})
	bootstrapper := NewSchemaBootstrapper(SchemaClients{DynamoDB: tables, SQS: queues, OpenSearch: transport}, testSchemaConfig())

	url, err := bootstrapper.Bootstrap(context.Background())

	require.NoError(t, err)
	assert.Contains(t, url, "transaction-events")
	assert.NotNil(t, tables.created)
}

func TestResolveQueueURL(t *testing.T) {
	queues := &fakeQueueAdmin{}

	url, err := ResolveQueueURL(context.Background(), queues, "http://configured/queue", "ignored")
	require.NoError(t, err)
	assert.Equal(t, "http://configured/queue", url)

	url, err = ResolveQueueURL(context.Background(), queues, "", "transaction-events")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:4566/000000000000/transaction-events", url)

	_, err = ResolveQueueURL(context.Background(), queues, "", "")
	assert.Error(t, err)

	_, err = ResolveQueueURL(context.Background(), &fakeQueueAdmin{lookupErr: errors.New("NonExistentQueue")}, "", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}
