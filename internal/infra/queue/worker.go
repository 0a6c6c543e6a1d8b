package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// NotificationSender is the delivery side of the dispatcher. The
// worker only routes; how a notification reaches a person is the
// sender's problem.
type NotificationSender interface {
	SendNewSubmission(evt Event) error
	SendListingPublished(evt Event) error
	SendListingRejected(evt Event) error
	SendNewInterest(evt Event) error
}

type Worker struct {
	Channel *amqp.Channel
	Sender  NotificationSender
}

func NewWorker(ch *amqp.Channel, sender NotificationSender) *Worker {
	return &Worker{Channel: ch, Sender: sender}
}

// Start consumes the notification queue until the channel closes.
// Malformed messages are rejected without requeue so they land in the
// DLQ instead of wedging the queue.
func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer tag
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		log.Fatalf("[worker] failed to register consumer: %s", err)
	}

	log.Printf("[worker] waiting on queue %q", queueName)

	for d := range msgs {
		var evt Event
		if err := json.Unmarshal(d.Body, &evt); err != nil {
			log.Printf("[worker] invalid payload: %s", err)
			d.Nack(false, false)
			continue
		}

		if err := w.dispatch(evt); err != nil {
			log.Printf("[worker] %s dispatch failed: %s", evt.Kind, err)
			d.Nack(false, false)
			continue
		}
		d.Ack(false)
	}
}

func (w *Worker) dispatch(evt Event) error {
	switch evt.Kind {
	case EventNewSubmission:
		return w.Sender.SendNewSubmission(evt)
	case EventListingPublished:
		return w.Sender.SendListingPublished(evt)
	case EventListingRejected:
		return w.Sender.SendListingRejected(evt)
	case EventNewInterest:
		return w.Sender.SendNewInterest(evt)
	default:
		// Unknown kinds get acked and dropped; there is nobody to
		// deliver them to.
		log.Printf("[worker] unknown event kind %q, dropping", evt.Kind)
		return nil
	}
}
