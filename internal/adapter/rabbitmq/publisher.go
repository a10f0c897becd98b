// Package rabbitmq publishes recorded measurements to a queue for
// downstream consumers.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"bmistation/internal/domain"
)

// Publisher pushes one JSON message per measurement onto a named queue.
type Publisher struct {
	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
}

var _ domain.MeasurementPublisher = (*Publisher)(nil)

// Dial connects to the broker at addr and declares the queue.
func Dial(addr, queue string) (*Publisher, error) {
	conn, err := amqp.Dial(addr)
	if err != nil {
		return nil, fmt.Errorf("amqp dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("amqp channel: %w", err)
	}
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("amqp queue declare: %w", err)
	}
	return &Publisher{conn: conn, channel: ch, queue: queue}, nil
}

// PublishMeasurement sends the measurement as a JSON message.
func (p *Publisher) PublishMeasurement(ctx context.Context, m *domain.Measurement) error {
	body, err := json.Marshal(m)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.channel.PublishWithContext(ctx,
		"",      // exchange
		p.queue, // routing key
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		})
}

// Close shuts down the channel and connection.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.channel.Close(); err != nil {
		_ = p.conn.Close()
		return err
	}
	return p.conn.Close()
}
