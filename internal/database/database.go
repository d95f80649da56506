package database

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"activity-feed/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/opensearch-project/opensearch-go/v2"
)

// Clients bundles the SDK clients of every backend the service talks to.
type Clients struct {
	DynamoDB   *dynamodb.Client
	SQS        *sqs.Client
	OpenSearch *opensearch.Client
}

// NewClients builds the DynamoDB, SQS and OpenSearch clients from cfg.
func NewClients(ctx context.Context, cfg *config.Config) (*Clients, error) {
	awsCfg, err := LoadAWSConfig(ctx, &cfg.AWS)
	if err != nil {
		return nil, err
	}

	dynamoClient := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.DynamoDB.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.DynamoDB.Endpoint)
		}
	})

	sqsClient := sqs.NewFromConfig(awsCfg, func(o *sqs.Options) {
		if cfg.Queue.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Queue.Endpoint)
		}
	})

	searchClient, err := opensearch.NewClient(opensearch.Config{
		Addresses: cfg.OpenSearch.URLs,
		Username:  cfg.OpenSearch.Username,
		Password:  cfg.OpenSearch.Password,
		Transport: &http.Transport{
			MaxIdleConnsPerHost:   10,
			ResponseHeaderTimeout: 10 * time.Second,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create opensearch client: %w", err)
	}

	slog.Debug("backend clients created",
		slog.String("region", cfg.AWS.Region),
		slog.String("dynamodb_endpoint", cfg.DynamoDB.Endpoint),
		slog.String("sqs_endpoint", cfg.Queue.Endpoint),
		slog.Any("opensearch_urls", cfg.OpenSearch.URLs),
	)

	return &Clients{
		DynamoDB:   dynamoClient,
		SQS:        sqsClient,
		OpenSearch: searchClient,
	}, nil
}

// LoadAWSConfig resolves the shared AWS configuration. Static credentials
// override the default chain when both halves are set.
func LoadAWSConfig(ctx context.Context, cfg *config.AWSConfig) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load aws config: %w", err)
	}
	return awsCfg, nil
}
