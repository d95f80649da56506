package main

import (
	"fmt"

	"activity-feed/internal/database"

	"github.com/spf13/cobra"
)

func setupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Create the DynamoDB table, SQS queue and OpenSearch index if missing",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			clients, err := database.NewClients(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			bootstrapper := database.NewSchemaBootstrapper(database.SchemaClients{
				DynamoDB:   clients.DynamoDB,
				SQS:        clients.SQS,
				OpenSearch: clients.OpenSearch,
			}, database.SchemaConfig{
				TableName:         cfg.DynamoDB.Table,
				IDIndexName:       cfg.DynamoDB.IDIndexName,
				QueueName:         cfg.Queue.Name,
				VisibilityTimeout: cfg.Queue.VisibilityTimeout,
				IndexName:         cfg.OpenSearch.Index,
			})

			queueURL, err := bootstrapper.Bootstrap(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "SQS_QUEUE_URL=%s\n", queueURL)
			return nil
		},
	}
}
