package notifications

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProducer struct {
	published  []*Notification
	deadLetter []*Notification
	publishErr error
}

func (f *fakeProducer) Publish(notification *Notification) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.published = append(f.published, notification)
	return nil
}

func (f *fakeProducer) PublishToDeadLetter(notification *Notification, reason string) error {
	f.deadLetter = append(f.deadLetter, notification)
	return nil
}

func (f *fakeProducer) Close() error { return nil }

type fakeDirectory struct {
	recipients map[string][2]string
}

func (f *fakeDirectory) Lookup(accountID string) (string, string, error) {
	entry, ok := f.recipients[accountID]
	if !ok {
		return "", "", fmt.Errorf("account not found")
	}
	return entry[0], entry[1], nil
}

func TestNotifyEventDecisionApproved(t *testing.T) {
	producer := &fakeProducer{}
	directory := &fakeDirectory{recipients: map[string][2]string{
		"staff-7": {"duc.le@nextu.vn", "Duc Le"},
	}}
	svc := NewService(producer, directory, nil)

	eventID := uuid.New()
	svc.NotifyEventDecision(eventID, "staff-7", "Morning Yoga Retreat", true, "")

	require.Len(t, producer.published, 1)
	notification := producer.published[0]
	assert.Equal(t, NotificationTypeEventApproved, notification.Type)
	assert.Equal(t, "duc.le@nextu.vn", notification.RecipientEmail)
	assert.Equal(t, "Morning Yoga Retreat", notification.TemplateData["EventTitle"])
	require.NotNil(t, notification.EventID)
	assert.Equal(t, eventID, *notification.EventID)
}

func TestNotifyEventDecisionRejectedCarriesReason(t *testing.T) {
	producer := &fakeProducer{}
	directory := &fakeDirectory{recipients: map[string][2]string{
		"staff-7": {"duc.le@nextu.vn", "Duc Le"},
	}}
	svc := NewService(producer, directory, nil)

	svc.NotifyEventDecision(uuid.New(), "staff-7", "Morning Yoga Retreat", false, "overlaps with an existing class")

	require.Len(t, producer.published, 1)
	notification := producer.published[0]
	assert.Equal(t, NotificationTypeEventRejected, notification.Type)
	assert.Equal(t, "overlaps with an existing class", notification.TemplateData["Reason"])
}

func TestNotifyEventDecisionSkipsUnknownSubmitter(t *testing.T) {
	producer := &fakeProducer{}
	svc := NewService(producer, &fakeDirectory{}, nil)

	svc.NotifyEventDecision(uuid.New(), "ghost", "Morning Yoga Retreat", true, "")

	assert.Empty(t, producer.published)
}

func TestNotifyEventDecisionNilProducerIsNoop(t *testing.T) {
	svc := NewService(nil, &fakeDirectory{}, nil)

	// Must not panic when the pipeline is disabled.
	svc.NotifyEventDecision(uuid.New(), "staff-7", "Morning Yoga Retreat", true, "")
}

func TestNotifyMembershipDecision(t *testing.T) {
	producer := &fakeProducer{}
	svc := NewService(producer, nil, nil)

	requestID := uuid.New()
	svc.NotifyMembershipDecision(requestID, "lan.pham@example.com", "Lan Pham", "Premium Living", false, "waitlist is full")

	require.Len(t, producer.published, 1)
	notification := producer.published[0]
	assert.Equal(t, NotificationTypeMembershipRejected, notification.Type)
	assert.Equal(t, "lan.pham@example.com", notification.RecipientEmail)
	assert.Equal(t, "Premium Living", notification.TemplateData["PackageName"])
	assert.Equal(t, "waitlist is full", notification.TemplateData["Reason"])
	require.NotNil(t, notification.RequestID)
	assert.Equal(t, requestID, *notification.RequestID)
}

func TestAnnounceFansOut(t *testing.T) {
	producer := &fakeProducer{}
	svc := NewService(producer, nil, nil)

	queued, err := svc.Announce(AnnouncementRequest{
		Subject: "Pool maintenance",
		Message: "The pool is closed on Saturday morning.",
		Recipients: []AnnouncementRecipient{
			{Email: "lan.pham@example.com", Name: "Lan Pham"},
			{Email: "minh.tran@example.com", Name: "Minh Tran"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, queued)
	require.Len(t, producer.published, 2)
	assert.Equal(t, NotificationTypeAnnouncement, producer.published[0].Type)
}

func TestAnnounceDisabledPipeline(t *testing.T) {
	svc := NewService(nil, nil, nil)

	_, err := svc.Announce(AnnouncementRequest{
		Subject:    "Pool maintenance",
		Message:    "Closed Saturday",
		Recipients: []AnnouncementRecipient{{Email: "lan.pham@example.com", Name: "Lan Pham"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disabled")
}

func TestAnnounceAllFailures(t *testing.T) {
	producer := &fakeProducer{publishErr: fmt.Errorf("broker unavailable")}
	svc := NewService(producer, nil, nil)

	_, err := svc.Announce(AnnouncementRequest{
		Subject:    "Pool maintenance",
		Message:    "Closed Saturday",
		Recipients: []AnnouncementRecipient{{Email: "lan.pham@example.com", Name: "Lan Pham"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all 1 recipients")
}

func TestBuilderAssignsDefaultPriority(t *testing.T) {
	notification := NewNotificationBuilder().
		WithType(NotificationTypeMembershipApproved).
		WithRecipient("lan.pham@example.com", "Lan Pham").
		Build()

	assert.Equal(t, NotificationPriorityHigh, notification.Priority)
	assert.Equal(t, NotificationStatusPending, notification.Status)
	assert.Equal(t, "lan.pham@example.com", notification.GetPartitionKey())
}
