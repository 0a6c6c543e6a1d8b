package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Event kinds the notification dispatcher understands.
const (
	EventNewSubmission    = "NEW_SUBMISSION"
	EventListingPublished = "LISTING_PUBLISHED"
	EventListingRejected  = "LISTING_REJECTED"
	EventNewInterest      = "NEW_INTEREST"
)

// Event is the single payload shape crossing the queue. Fields are
// filled per kind; consumers ignore what they do not need.
type Event struct {
	Kind       string    `json:"kind"`
	OccurredAt time.Time `json:"occurred_at"`

	ListingID    string `json:"listing_id,omitempty"`
	ListingTitle string `json:"listing_title,omitempty"`
	OwnerID      string `json:"owner_id,omitempty"`
	OwnerEmail   string `json:"owner_email,omitempty"`

	// moderate(REJECT)
	Comment string `json:"comment,omitempty"`

	// NEW_INTEREST
	InterestID string `json:"interest_id,omitempty"`
	BuyerName  string `json:"buyer_name,omitempty"`
	BuyerEmail string `json:"buyer_email,omitempty"`
}

type Producer struct {
	Ch *amqp.Channel
}

func NewProducer(ch *amqp.Channel) *Producer {
	return &Producer{Ch: ch}
}

func (p *Producer) Publish(ctx context.Context, evt Event) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("publish %s: %w", evt.Kind, err)
	}
	return nil
}
