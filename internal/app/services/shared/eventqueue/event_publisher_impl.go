package eventqueue

import (
	"context"

	"formgen-service/internal/app/contracts"
	"formgen-service/internal/pkg/constvars"
	"formgen-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
)

type rabbitMQPublisher struct {
	connection *amqp.Connection
}

func NewRabbitMQPublisher(connection *amqp.Connection) contracts.EventPublisher {
	return &rabbitMQPublisher{connection: connection}
}

// Publish declares the durable queue and pushes one persistent JSON message
// onto it. A channel is opened per publish since amqp channels are not safe
// for concurrent use.
func (p *rabbitMQPublisher) Publish(ctx context.Context, queueName string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	channel, err := p.connection.Channel()
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err)
	}
	defer channel.Close()

	_, err = channel.QueueDeclare(
		queueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err)
	}

	err = channel.PublishWithContext(ctx,
		"",        // exchange
		queueName, // routing key
		false,     // mandatory
		false,     // immediate
		amqp.Publishing{
			ContentType:  constvars.MIMEApplicationJSON,
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err)
	}
	return nil
}
