package queue

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// reservationQueueName is the durable queue reservation events travel on.
const reservationQueueName = "reservation.events"

// brokerURL resolves the RabbitMQ endpoint from the environment.
func brokerURL() string {
	url := os.Getenv("RABBITMQ_URL")
	if url == "" {
		url = os.Getenv("AMQP_URL")
	}
	return url
}

// Publisher delivers reservation events to RabbitMQ.  Every publish
// opens a fresh connection so a broker restart never leaves the service
// holding a dead channel; the event volume of a front desk does not
// justify more.
type Publisher struct {
	url string
}

// NewPublisherFromEnv returns a publisher when a broker URL is
// configured via RABBITMQ_URL or AMQP_URL, nil otherwise.
func NewPublisherFromEnv() *Publisher {
	url := brokerURL()
	if url == "" {
		return nil
	}
	return &Publisher{url: url}
}

// PublishReservationEvent publishes the event to the reservation.events
// queue.  The function never panics; any error is logged and returned
// so the caller can choose to ignore it.  Messages are marked as
// persistent.
func (p *Publisher) PublishReservationEvent(ctx context.Context, event ReservationEvent) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// Ensure the queue exists (idempotent). Durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(
		reservationQueueName, // name
		true,                 // durable
		false,                // autoDelete
		false,                // exclusive
		false,                // noWait
		nil,                  // args
	); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent, // store on disk
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx,
		"",                   // default exchange
		reservationQueueName, // routing key = queue name
		false,                // mandatory
		false,                // immediate
		pub,
	); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}

	return nil
}
