package queue

import (
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

// WelcomeSender is implemented by the mail adapter.
type WelcomeSender interface {
	SendWelcome(to, name string) error
}

// Worker drains the welcome queue and hands each registration to the mail
// sender. It never touches the database.
type Worker struct {
	Channel *amqp.Channel
	Sender  WelcomeSender
}

func NewWorker(ch *amqp.Channel, sender WelcomeSender) *Worker {
	return &Worker{
		Channel: ch,
		Sender:  sender,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("register RabbitMQ consumer")
	}

	for d := range msgs {
		var payload CustomerRegisteredPayload
		if err := json.Unmarshal(d.Body, &payload); err != nil {
			log.Error().Err(err).Msg("worker: malformed message")
			// Mensagem quebrada: rejeita sem requeue pra fila continuar andando.
			d.Nack(false, false)
			continue
		}

		if err := w.Sender.SendWelcome(payload.Email, payload.Name); err != nil {
			log.Error().Err(err).Str("customer_id", payload.CustomerID).Msg("worker: send welcome")
			d.Nack(false, false)
			continue
		}

		log.Info().Str("customer_id", payload.CustomerID).Msg("worker: welcome sent")
		d.Ack(false)
	}
}
