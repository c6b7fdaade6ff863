package messaging

import (
	"context"
	"errors"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/vfg2006/orbit-api/internal/config"
	"github.com/vfg2006/orbit-api/pkg/log"
)

const publishTimeout = 5 * time.Second

// ErrPermanent marca falhas de handler que não devem voltar para a fila
var ErrPermanent = errors.New("mensagem descartada")

// Handler processa o corpo de uma mensagem. Erros que embrulham ErrPermanent descartam a
// mensagem; outros erros devolvem a mensagem para a fila.
type Handler func(ctx context.Context, body []byte) error

type Client struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	queue      string
	routingKey string
}

func NewClient(cfg config.AMQP) (*Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	client := &Client{
		conn:       conn,
		channel:    channel,
		exchange:   cfg.Exchange,
		queue:      cfg.Queue,
		routingKey: cfg.RoutingKey,
	}

	if err := client.setup(); err != nil {
		client.Close()
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}

	return client, nil
}

func (c *Client) setup() error {
	if err := c.channel.ExchangeDeclare(c.exchange, "direct", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	if _, err := c.channel.QueueDeclare(c.queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	if err := c.channel.QueueBind(c.queue, c.routingKey, c.exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}

	// uma mensagem por vez por consumidor
	return c.channel.Qos(1, 0, false)
}

// Publish envia uma mensagem JSON persistente para o exchange configurado
func (c *Client) Publish(ctx context.Context, body []byte) error {
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err := c.channel.PublishWithContext(ctx, c.exchange, c.routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"exchange": c.exchange,
		"queue":    c.queue,
	}).Debug("Mensagem publicada")

	return nil
}

// Consume bloqueia processando mensagens até o contexto ser cancelado
func (c *Client) Consume(ctx context.Context, handler Handler) error {
	msgs, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("start consuming: %w", err)
	}

	log.L.WithField("queue", c.queue).Info("Consumindo mensagens")

	for {
		select {
		case <-ctx.Done():
			log.L.Info("Consumo de mensagens encerrado")
			return ctx.Err()
		case delivery, ok := <-msgs:
			if !ok {
				return fmt.Errorf("message channel closed")
			}
			dispatch(ctx, delivery, handler)
		}
	}
}

// dispatch executa o handler e decide entre ack, nack sem requeue e nack com requeue
func dispatch(ctx context.Context, d amqp.Delivery, handler Handler) {
	err := handler(ctx, d.Body)
	switch {
	case err == nil:
		_ = d.Ack(false)
	case isPermanent(err):
		log.L.WithError(err).Error("Mensagem inválida descartada")
		_ = d.Nack(false, false)
	default:
		log.L.WithError(err).Warn("Falha ao processar mensagem, devolvendo para a fila")
		_ = d.Nack(false, true)
	}
}

func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
