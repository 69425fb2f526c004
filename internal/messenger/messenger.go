package messenger

import (
	"fmt"

	"github.com/NftDex/marketplace-ledger/internal/config"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sqs"
	"go.uber.org/zap"
)

type MessageService interface {
	SendMessage(item Item, body []byte) error
	PollMessages(item Item, messages chan<- *sqs.Message)
	DeleteMessage(item Item, msg *sqs.Message) error
}

type Messenger struct {
	sqs *sqs.SQS
}

type Item string

var (
	ItemPurchased     Item = "item.purchased"
	ProceedsWithdrawn Item = "proceeds.withdrawn"
)

func (i Item) queue() string {
	return fmt.Sprintf("%s.%s", config.Get().Index, i)
}

func NewMessenger() MessageService {
	awsConfig := config.Get().Aws

	sess := session.Must(session.NewSession(&aws.Config{
		Region:      aws.String(awsConfig.Region),
		Credentials: credentials.NewStaticCredentials(awsConfig.AccessKey, awsConfig.SecretKey, ""),
	}))

	return &Messenger{sqs: sqs.New(sess)}
}

func (m Messenger) SendMessage(item Item, body []byte) error {
	queueUrl, err := m.queueUrl(item)
	if err != nil {
		return err
	}

	_, err = m.sqs.SendMessage(&sqs.SendMessageInput{
		QueueUrl:    queueUrl,
		MessageBody: aws.String(string(body)),
	})
	if err != nil {
		zap.L().With(zap.Error(err), zap.String("queue", item.queue())).Error("Messenger: Failed to send message")
	}

	return err
}

func (m Messenger) PollMessages(item Item, messages chan<- *sqs.Message) {
	queueUrl, err := m.queueUrl(item)
	if err != nil {
		zap.L().With(zap.Error(err), zap.String("queue", item.queue())).Error("Messenger: Failed to resolve queue")
		return
	}

	for {
		output, err := m.sqs.ReceiveMessage(&sqs.ReceiveMessageInput{
			QueueUrl:            queueUrl,
			MaxNumberOfMessages: aws.Int64(10),
			WaitTimeSeconds:     aws.Int64(20),
		})
		if err != nil {
			zap.L().With(zap.Error(err), zap.String("queue", item.queue())).Error("Messenger: Failed to poll messages")
			continue
		}

		for _, message := range output.Messages {
			messages <- message
		}
	}
}

func (m Messenger) DeleteMessage(item Item, msg *sqs.Message) error {
	queueUrl, err := m.queueUrl(item)
	if err != nil {
		return err
	}

	_, err = m.sqs.DeleteMessage(&sqs.DeleteMessageInput{
		QueueUrl:      queueUrl,
		ReceiptHandle: msg.ReceiptHandle,
	})

	return err
}

func (m Messenger) queueUrl(item Item) (*string, error) {
	output, err := m.sqs.GetQueueUrl(&sqs.GetQueueUrlInput{
		QueueName: aws.String(item.queue()),
	})
	if err != nil {
		return nil, err
	}

	return output.QueueUrl, nil
}
