package notifications

import (
	"fmt"
	"strings"

	"nextu/pkg/logger"

	"github.com/google/uuid"
)

// RecipientDirectory resolves a console account id to an email recipient.
type RecipientDirectory interface {
	Lookup(accountID string) (email, name string, err error)
}

type Service interface {
	NotifyEventDecision(eventID uuid.UUID, submitterID, title string, approved bool, reason string)
	NotifyMembershipDecision(requestID uuid.UUID, email, name, packageName string, approved bool, note string)
	Announce(req AnnouncementRequest) (int, error)
}

type service struct {
	producer   NotificationProducer
	recipients RecipientDirectory
	log        *logger.Logger
}

// NewService builds the notification service. A nil producer disables the
// pipeline: decisions still go through, delivery is skipped with a log line.
func NewService(producer NotificationProducer, recipients RecipientDirectory, log *logger.Logger) Service {
	return &service{
		producer:   producer,
		recipients: recipients,
		log:        log,
	}
}

func (s *service) NotifyEventDecision(eventID uuid.UUID, submitterID, title string, approved bool, reason string) {
	if s.producer == nil {
		s.logSkipped("event decision", eventID.String())
		return
	}

	email, name, err := s.lookupRecipient(submitterID)
	if err != nil {
		if s.log != nil {
			s.log.Warn("skipping event decision notification, unknown submitter",
				"event_id", eventID.String(),
				"submitter_id", submitterID,
				"error", err,
			)
		}
		return
	}

	notType := NotificationTypeEventApproved
	subject := fmt.Sprintf("Your event %q has been approved", title)
	data := map[string]interface{}{"EventTitle": title}
	if !approved {
		notType = NotificationTypeEventRejected
		subject = fmt.Sprintf("Your event %q was not approved", title)
		data["Reason"] = reason
	}

	notification := NewNotificationBuilder().
		WithType(notType).
		WithRecipient(email, name).
		WithSubject(subject).
		WithTemplateData(data).
		WithEventContext(eventID).
		Build()

	s.publish(notification)
}

func (s *service) NotifyMembershipDecision(requestID uuid.UUID, email, name, packageName string, approved bool, note string) {
	if s.producer == nil {
		s.logSkipped("membership decision", requestID.String())
		return
	}

	notType := NotificationTypeMembershipApproved
	subject := "Your Next U membership request has been approved"
	data := map[string]interface{}{"PackageName": packageName}
	if !approved {
		notType = NotificationTypeMembershipRejected
		subject = "Update on your Next U membership request"
		data["Reason"] = note
	}

	notification := NewNotificationBuilder().
		WithType(notType).
		WithRecipient(email, name).
		WithSubject(subject).
		WithTemplateData(data).
		WithRequestContext(requestID).
		Build()

	s.publish(notification)
}

// Announce fans an announcement out to the given recipients and returns
// how many notifications were queued.
func (s *service) Announce(req AnnouncementRequest) (int, error) {
	if s.producer == nil {
		return 0, fmt.Errorf("notification pipeline is disabled")
	}

	subject := strings.TrimSpace(req.Subject)
	message := strings.TrimSpace(req.Message)
	if subject == "" || message == "" {
		return 0, fmt.Errorf("subject and message are required")
	}

	queued := 0
	for _, recipient := range req.Recipients {
		notification := NewNotificationBuilder().
			WithType(NotificationTypeAnnouncement).
			WithRecipient(recipient.Email, recipient.Name).
			WithSubject(subject).
			WithTemplateData(map[string]interface{}{"Message": message}).
			Build()
		if req.LocationID != nil {
			notification.LocationID = req.LocationID
		}

		if err := s.producer.Publish(notification); err != nil {
			if s.log != nil {
				s.log.Error("failed to queue announcement",
					"recipient", recipient.Email,
					"error", err,
				)
			}
			continue
		}
		queued++
	}

	if queued == 0 && len(req.Recipients) > 0 {
		return 0, fmt.Errorf("failed to queue announcement for all %d recipients", len(req.Recipients))
	}
	return queued, nil
}

func (s *service) lookupRecipient(accountID string) (string, string, error) {
	if s.recipients == nil {
		return "", "", fmt.Errorf("no recipient directory configured")
	}
	return s.recipients.Lookup(accountID)
}

func (s *service) publish(notification *Notification) {
	if err := s.producer.Publish(notification); err != nil && s.log != nil {
		s.log.Error("failed to queue notification",
			"notification_id", notification.ID.String(),
			"type", string(notification.Type),
			"error", err,
		)
	}
}

func (s *service) logSkipped(kind, id string) {
	if s.log != nil {
		s.log.Info("notification pipeline disabled, skipping", "kind", kind, "id", id)
	}
}
