// FILE: internal/service/consumer_service.go
package service

import (
	"context"

	"company-profile-be/internal/pkg/logger"
	"company-profile-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

// EventForwarder hands events to the cross-service bus (NATS JetStream).
type EventForwarder interface {
	Publish(ctx context.Context, event events.Event) error
}

// EventHandler processes an event locally.
type EventHandler interface {
	Handle(ctx context.Context, event events.Event) error
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the in-process bus. Events go to the forwarder
// when one is configured, whose subscribers then do the work; otherwise
// the local handler runs them directly.
type consumerService struct {
	subscriber message.Subscriber
	topicName  string
	forwarder  EventForwarder
	local      EventHandler
	logger     logger.ILogger
}

func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	forwarder EventForwarder,
	local EventHandler,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topicName:  topicName,
		forwarder:  forwarder,
		local:      local,
		logger:     log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	// Delivery is best effort; every message is acked so a broken sink
	// cannot wedge the bus.
	defer msg.Ack()

	event, err := events.Decode(msg.Payload)
	if err != nil {
		cs.logger.Error("Consumer", "Failed to decode event", map[string]interface{}{"error": err.Error(), "uuid": msg.UUID})
		return
	}

	if cs.forwarder != nil {
		err := cs.forwarder.Publish(ctx, event)
		if err == nil {
			return
		}
		cs.logger.Warn("Consumer", "Forwarding failed, handling locally", map[string]interface{}{"error": err.Error(), "type": event.Type})
	}

	if cs.local == nil {
		return
	}
	if err := cs.local.Handle(ctx, event); err != nil {
		cs.logger.Error("Consumer", "Local handler failed", map[string]interface{}{"error": err.Error(), "type": event.Type})
	}
}
