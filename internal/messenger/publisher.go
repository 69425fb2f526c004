package messenger

import (
	"encoding/json"

	"go.uber.org/zap"
)

// Publisher forwards marketplace notifications onto the queues for
// downstream consumers. Handlers match the event listener signature.
type Publisher struct {
	service MessageService
}

func NewPublisher(service MessageService) Publisher {
	return Publisher{service}
}

func (p Publisher) PublishItemPurchased(msg interface{}) {
	p.publish(ItemPurchased, msg)
}

func (p Publisher) PublishProceedsWithdrawn(msg interface{}) {
	p.publish(ProceedsWithdrawn, msg)
}

func (p Publisher) publish(item Item, msg interface{}) {
	body, err := json.Marshal(msg)
	if err != nil {
		zap.L().With(zap.Error(err), zap.String("queue", string(item))).Error("Publisher: Failed to encode message")
		return
	}

	if err := p.service.SendMessage(item, body); err != nil {
		zap.L().With(zap.Error(err), zap.String("queue", string(item))).Error("Publisher: Failed to publish message")
	}
}
