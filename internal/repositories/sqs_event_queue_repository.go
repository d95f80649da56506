package repositories

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

const (
	maxReceiveBatch = 10
	maxWaitTime     = 20 * time.Second
)

// SQSEventQueueRepository reads transaction events from an SQS queue.
type SQSEventQueueRepository struct {
	client   SQSClientInterface
	queueURL string
}

func NewSQSEventQueueRepository(client SQSClientInterface, queueURL string) EventQueueRepositoryInterface {
	return &SQSEventQueueRepository{
		client:   client,
		queueURL: queueURL,
	}
}

// Receive long-polls the queue. Cancelling ctx interrupts the wait.
func (r *SQSEventQueueRepository) Receive(ctx context.Context, opts ReceiveOptions) ([]QueueMessage, error) {
	maxMessages := opts.MaxMessages
	if maxMessages < 1 || maxMessages > maxReceiveBatch {
		maxMessages = maxReceiveBatch
	}
	waitTime := opts.WaitTime
	if waitTime < 0 {
		waitTime = 0
	}
	if waitTime > maxWaitTime {
		waitTime = maxWaitTime
	}

	input := &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(r.queueURL),
		MaxNumberOfMessages: int32(maxMessages),
		WaitTimeSeconds:     int32(waitTime / time.Second),
	}
	if opts.VisibilityTimeout > 0 {
		input.VisibilityTimeout = int32(opts.VisibilityTimeout / time.Second)
	}

	output, err := r.client.ReceiveMessage(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("ReceiveMessage operation failed: %w", err)
	}

	messages := make([]QueueMessage, 0, len(output.Messages))
	for _, m := range output.Messages {
		messages = append(messages, QueueMessage{
			MessageID:     aws.ToString(m.MessageId),
			ReceiptHandle: aws.ToString(m.ReceiptHandle),
			Body:          aws.ToString(m.Body),
		})
	}
	return messages, nil
}

// Delete acknowledges a message so it is not redelivered.
func (r *SQSEventQueueRepository) Delete(ctx context.Context, receiptHandle string) error {
	if receiptHandle == "" {
		return errors.New("receipt handle is required")
	}
	_, err := r.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(r.queueURL),
		ReceiptHandle: aws.String(receiptHandle),
	})
	if err != nil {
		return fmt.Errorf("DeleteMessage operation failed: %w", err)
	}
	return nil
}

func (r *SQSEventQueueRepository) Publish(ctx context.Context, body string) (string, error) {
	output, err := r.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(r.queueURL),
		MessageBody: aws.String(body),
	})
	if err != nil {
		return "", fmt.Errorf("SendMessage operation failed: %w", err)
	}
	return aws.ToString(output.MessageId), nil
}

// ApproximateDepth returns the number of messages visible in the queue.
func (r *SQSEventQueueRepository) ApproximateDepth(ctx context.Context) (int64, error) {
	output, err := r.client.GetQueueAttributes(ctx, &sqs.GetQueueAttributesInput{
		QueueUrl:       aws.String(r.queueURL),
		AttributeNames: []types.QueueAttributeName{types.QueueAttributeNameApproximateNumberOfMessages},
	})
	if err != nil {
		return 0, fmt.Errorf("GetQueueAttributes operation failed: %w", err)
	}

	raw, ok := output.Attributes[string(types.QueueAttributeNameApproximateNumberOfMessages)]
	if !ok {
		return 0, nil
	}
	depth, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid queue depth %q: %w", raw, err)
	}
	return depth, nil
}
