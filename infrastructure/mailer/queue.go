package mailer

import (
	"context"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/orbit-api/infrastructure/messaging"
	"github.com/vfg2006/orbit-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Publisher é implementado por messaging.Client
type Publisher interface {
	Publish(ctx context.Context, body []byte) error
}

// QueueSender publica a mensagem na fila; o mailer-worker faz a entrega via SMTP
type QueueSender struct {
	publisher Publisher
}

func NewQueueSender(publisher Publisher) *QueueSender {
	return &QueueSender{publisher: publisher}
}

func (q *QueueSender) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	if err := q.publisher.Publish(ctx, body); err != nil {
		return err
	}

	log.ForContext(ctx).WithField("user_email", msg.To).Debug("E-mail enfileirado")
	return nil
}

// DecodeMessage lê e valida uma mensagem vinda da fila
func DecodeMessage(body []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(body, &msg); err != nil {
		return Message{}, err
	}
	if err := msg.Validate(); err != nil {
		return Message{}, err
	}
	return msg, nil
}

// NewDeliveryHandler consome mensagens da fila e entrega via sender. Mensagens
// ilegíveis são descartadas; falhas de envio voltam para a fila.
func NewDeliveryHandler(sender Sender) messaging.Handler {
	return func(ctx context.Context, body []byte) error {
		msg, err := DecodeMessage(body)
		if err != nil {
			return messaging.Permanent(err)
		}

		if err := sender.Send(ctx, msg); err != nil {
			return err
		}

		log.ForContext(ctx).WithField("user_email", msg.To).Info("E-mail entregue")
		return nil
	}
}
