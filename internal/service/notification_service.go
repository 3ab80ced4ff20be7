package service

import (
	"context"
	"fmt"

	"company-profile-be/internal/pkg/logger"
	"company-profile-be/internal/pkg/mailer"
	"company-profile-be/internal/resource"
	"company-profile-be/pkg/events"
	pktNats "company-profile-be/pkg/nats"
)

// NotificationDelivery pushes real-time updates to admin sessions.
// Implemented by the WebSocket Hub.
type NotificationDelivery interface {
	Broadcast(event events.Event)
}

// NotificationService turns content events into admin notifications: a
// websocket push for every change and an e-mail for new contact messages.
type NotificationService struct {
	subscriber *pktNats.Subscriber
	delivery   NotificationDelivery
	mailer     mailer.IEmailService
	notifyTo   string
	logger     logger.ILogger
}

func NewNotificationService(
	sub *pktNats.Subscriber,
	delivery NotificationDelivery,
	mail mailer.IEmailService,
	notifyTo string,
	log logger.ILogger,
) *NotificationService {
	return &NotificationService{
		subscriber: sub,
		delivery:   delivery,
		mailer:     mail,
		notifyTo:   notifyTo,
		logger:     log,
	}
}

// Start listens on the NATS stream. Without a subscriber the service is
// driven by the in-process consumer instead.
func (s *NotificationService) Start() error {
	if s.subscriber == nil {
		return nil
	}
	if err := s.subscriber.Subscribe(pktNats.SubjectPrefix+">", "admin-notifier", s.Handle); err != nil {
		s.logger.Error("NotificationService", "Failed to start notification subscriber", map[string]interface{}{"error": err.Error()})
		return err
	}
	s.logger.Info("NotificationService", "Notification service started", nil)
	return nil
}

func (s *NotificationService) Handle(ctx context.Context, event events.Event) error {
	res, action, ok := events.SplitContentType(event.EventType())
	if !ok {
		s.logger.Warn("NotificationService", fmt.Sprintf("Ignoring event: '%s'", event.EventType()), nil)
		return nil
	}

	if s.delivery != nil {
		s.delivery.Broadcast(event)
	}

	// Mail failures are logged only; a redelivery would repeat the push.
	if res == resource.Contacts.Path && action == events.ActionCreated {
		s.mailContact(event.Payload())
	}
	return nil
}

func (s *NotificationService) mailContact(payload map[string]interface{}) {
	if s.mailer == nil || s.notifyTo == "" {
		return
	}

	record, _ := payload["record"].(map[string]interface{})
	text := func(key string) string {
		v, _ := record[key].(string)
		return v
	}

	err := s.mailer.SendContactNotification(s.notifyTo, mailer.ContactNotice{
		Name:    text("name"),
		Email:   text("email"),
		Phone:   text("phone"),
		Company: text("company"),
		Subject: text("subject"),
		Message: text("message"),
	})
	if err != nil {
		s.logger.Error("NotificationService", "Contact notification failed", map[string]interface{}{"error": err.Error()})
	}
}
