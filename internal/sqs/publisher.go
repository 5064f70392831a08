package sqs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/shopspring/decimal"
)

// Product actions carried by ProductMessage.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// ActionAttribute is the message attribute repeating ProductMessage.Action so subscribers can filter
// without decoding the body.
const ActionAttribute = "action"

// PublisherAPI is the subset of the SQS client the publisher needs.
type PublisherAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// Publisher sends product notifications to one queue.
type Publisher struct {
	client   PublisherAPI
	queueURL string
}

func NewPublisher(client PublisherAPI, queueURL string) *Publisher {
	return &Publisher{client: client, queueURL: queueURL}
}

// ProductMessage is the body of a product notification. Price is encoded as a decimal string.
type ProductMessage struct {
	Action    string          `json:"action"`
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
}

// PublishProductMessage sends msg and returns once SQS accepted it.
func (p *Publisher) PublishProductMessage(ctx context.Context, msg ProductMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	input := &sqs.SendMessageInput{
		QueueUrl:    aws.String(p.queueURL),
		MessageBody: aws.String(string(body)),
	}
	if msg.Action != "" {
		input.MessageAttributes = map[string]types.MessageAttributeValue{
			ActionAttribute: {DataType: aws.String("String"), StringValue: aws.String(msg.Action)},
		}
	}

	if _, err := p.client.SendMessage(ctx, input); err != nil {
		return fmt.Errorf("failed to send message to SQS: %w", err)
	}
	return nil
}
