package push

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"marketplace/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

const DefaultQueue = "push.notifications"

// envelope is the message read by the push gateway worker.
type envelope struct {
	Tokens []string          `json:"tokens"`
	Title  string            `json:"title"`
	Body   string            `json:"body"`
	Data   map[string]string `json:"data,omitempty"`
	SentAt time.Time         `json:"sentAt"`
}

// AMQPTransport implements ports.PushTransport by publishing one persistent
// message per push to a durable queue.
type AMQPTransport struct {
	conn  *amqp.Connection
	queue string

	mu sync.Mutex
	ch *amqp.Channel
}

func NewAMQPTransport(url, queue string) (*AMQPTransport, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	if _, err = ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return &AMQPTransport{conn: conn, queue: queue, ch: ch}, nil
}

func (t *AMQPTransport) Send(ctx context.Context, tokens []string, msg ports.PushMessage) ([]string, error) {
	valid, invalid := partition(tokens)
	if len(valid) == 0 {
		return invalid, nil
	}

	body, err := json.Marshal(envelope{
		Tokens: valid,
		Title:  msg.Title,
		Body:   msg.Body,
		Data:   msg.Data,
		SentAt: time.Now().UTC(),
	})
	if err != nil {
		return invalid, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	err = t.ch.PublishWithContext(ctx, "", t.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	return invalid, err
}

func (t *AMQPTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	_ = t.ch.Close()
	return t.conn.Close()
}
