package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// DefaultExchange is the topic exchange audit messages are published to.
const DefaultExchange = "artrights.audit"

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher forwards audit messages to a RabbitMQ topic exchange with the
// routing key "audit.<msgid>".
type Publisher struct {
	conn     *amqp.Connection
	ch       channel
	exchange string
	timeout  time.Duration
}

var _ Sink = (*Publisher)(nil)

// NewPublisher dials url and declares a durable topic exchange.
func NewPublisher(url, exchange string) (*Publisher, error) {
	if exchange == "" {
		exchange = DefaultExchange
	}
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return &Publisher{conn: conn, ch: ch, exchange: exchange, timeout: 5 * time.Second}, nil
}

// Save publishes event as a persistent JSON message.
func (p *Publisher) Save(event Event) error {
	body, err := json.Marshal(NewMessage(event))
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()
	return p.ch.PublishWithContext(ctx, p.exchange, RoutingKey(event), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Type:         event.MessageID(),
		Body:         body,
	})
}

// Close closes the channel and the connection.
func (p *Publisher) Close() error {
	if err := p.ch.Close(); err != nil {
		return err
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// RoutingKey is the topic an event is published under.
func RoutingKey(event Event) string {
	return "audit." + event.MessageID()
}
