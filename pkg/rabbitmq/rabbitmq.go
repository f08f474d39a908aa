package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"inventory/internal/models"

	amqp "github.com/streadway/amqp"
)

// ErrChannelClosed is returned when the client has no usable channel.
var ErrChannelClosed = errors.New("RabbitMQ channel is not available")

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	mu      sync.Mutex
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL   string
	Queue string
}

// NewClient connects to RabbitMQ, opens a channel and declares the event queue.
func NewClient(cfg Config) (*Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if _, err := declareQueue(ch, cfg.Queue); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare %s: %w", cfg.Queue, err)
	}

	return &Client{
		conn:    conn,
		channel: ch,
		queue:   cfg.Queue,
	}, nil
}

func declareQueue(ch *amqp.Channel, name string) (amqp.Queue, error) {
	return ch.QueueDeclare(
		name,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
}

// Close closes the RabbitMQ channel and connection.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
		c.channel = nil
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
		c.conn = nil
	}
	return errors.Join(errs...)
}

// PublishProductEvent publishes event as a persistent JSON message on the event queue.
func (c *Client) PublishProductEvent(ctx context.Context, event models.ProductEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg, err := NewPublishing(event)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.channel == nil {
		return ErrChannelClosed
	}
	// Default exchange, routed by queue name.
	if err := c.channel.Publish("", c.queue, false, false, msg); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

// NewPublishing encodes event into an AMQP message.
func NewPublishing(event models.ProductEvent) (amqp.Publishing, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("failed to marshal product event: %w", err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		Type:         event.Type,
		MessageId:    event.ID,
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
	}, nil
}

// DecodeProductEvent parses the body of a delivered event message.
func DecodeProductEvent(body []byte) (models.ProductEvent, error) {
	var event models.ProductEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return models.ProductEvent{}, fmt.Errorf("failed to decode product event: %w", err)
	}
	return event, nil
}

// ConsumeProductEvents registers a consumer on the event queue and hands every
// delivery to handler in a background goroutine. Deliveries are acked when
// handler returns nil and nacked without requeue otherwise.
func (c *Client) ConsumeProductEvents(handler func(msg amqp.Delivery) error) error {
	c.mu.Lock()
	if c.channel == nil {
		c.mu.Unlock()
		return ErrChannelClosed
	}
	msgs, err := c.channel.Consume(
		c.queue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	c.mu.Unlock()
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	go func() {
		for msg := range msgs {
			if err := handler(msg); err != nil {
				_ = msg.Nack(false, false)
				continue
			}
			_ = msg.Ack(false)
		}
	}()
	return nil
}
