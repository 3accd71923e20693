// Package notifications publishes domain events to RabbitMQ. Delivery is
// fire-and-forget: a missing or broken broker never fails the request that
// produced the event.
package notifications

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/streadway/amqp"
)

const DefaultPlanQueue = "nutriplan.plan.generated"

type PlanGeneratedEvent struct {
	UserID      uint      `json:"user_id"`
	PlanDate    string    `json:"plan_date"`
	MealTypes   []string  `json:"meal_types"`
	GeneratedAt time.Time `json:"generated_at"`
}

type Publisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
}

func NewPublisher(amqpURL, queue string) (*Publisher, error) {
	if queue == "" {
		queue = DefaultPlanQueue
	}

	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if _, err := channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue %s: %w", queue, err)
	}

	return &Publisher{conn: conn, channel: channel, queue: queue}, nil
}

// PlanGenerated publishes the event. Safe to call on a nil publisher; errors
// are logged and swallowed.
func (p *Publisher) PlanGenerated(event PlanGeneratedEvent) {
	if p == nil {
		return
	}

	body, err := json.Marshal(event)
	if err != nil {
		logrus.WithError(err).Warn("failed to marshal plan generated event")
		return
	}

	err = p.channel.Publish("", p.queue, false, false, amqp.Publishing{
		ContentType: "application/json",
		Timestamp:   time.Now(),
		Body:        body,
	})
	if err != nil {
		logrus.WithError(err).WithField("user_id", event.UserID).
			Warn("failed to publish plan generated event")
	}
}

func (p *Publisher) Close() {
	if p == nil {
		return
	}
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
