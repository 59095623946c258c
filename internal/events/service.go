package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"nextu/pkg/logger"
)

// DecisionNotifier pushes an approval/rejection notification to the
// event's author. Implemented by the notifications service; a nil
// notifier disables delivery without affecting decisions.
type DecisionNotifier interface {
	NotifyEventDecision(eventID uuid.UUID, submitterID, title string, approved bool, reason string)
}

type Service interface {
	CreateFromSubmission(req SubmitEventRequest, submittedBy string) (*PendingEventResponse, error)
	GetEvents(query EventListQuery) ([]EventResponse, error)
	GetPendingEvents(status string) ([]EventResponse, error)
	ApprovePendingEvent(id uuid.UUID, decidedBy string) (*PendingEventResponse, error)
	RejectPendingEvent(id uuid.UUID, reason string, decidedBy string) error
}

type service struct {
	repo     Repository
	notifier DecisionNotifier
	logger   *logger.Logger
}

func NewService(repo Repository, notifier DecisionNotifier, log *logger.Logger) Service {
	return &service{repo: repo, notifier: notifier, logger: log}
}

// CreateFromSubmission stores one pending event per idempotency key. A
// replay with a key we have already seen returns the original record
// instead of creating a second one, so a client retry after a
// false-negative network error cannot duplicate the event.
func (s *service) CreateFromSubmission(req SubmitEventRequest, submittedBy string) (*PendingEventResponse, error) {
	if strings.TrimSpace(req.IdempotencyKey) == "" {
		req.IdempotencyKey = uuid.New().String()
	}

	existing, err := s.repo.GetPendingByIdempotencyKey(req.IdempotencyKey)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check idempotency key: %w", err)
	}
	if existing != nil {
		resp := existing.ToResponse()
		return &resp, nil
	}

	for i := range req.ScheduleMasters {
		req.ScheduleMasters[i].RecurrenceType = RecurrenceWeekly
		if req.ScheduleMasters[i].RepeatCount < 1 {
			req.ScheduleMasters[i].RepeatCount = 1
		}
	}

	schedules, err := marshalChildren(req.ScheduleMasters)
	if err != nil {
		return nil, err
	}
	addOns, err := marshalChildren(req.AddOns)
	if err != nil {
		return nil, err
	}
	locations, err := marshalChildren(req.Locations)
	if err != nil {
		return nil, err
	}

	pending := &PendingEvent{
		Title:           strings.TrimSpace(req.Title),
		Description:     strings.TrimSpace(req.Description),
		Notes:           strings.TrimSpace(req.Notes),
		CategoryID:      req.CategoryID,
		LevelID:         req.LevelID,
		ScheduleMasters: schedules,
		AddOns:          addOns,
		Locations:       locations,
		IdempotencyKey:  req.IdempotencyKey,
		Status:          StatusPending,
		SubmittedBy:     submittedBy,
	}

	if err := s.repo.CreatePending(pending); err != nil {
		// Lost a race against a concurrent submit with the same key; the
		// unique index caught it, so hand back the winner's record.
		if strings.Contains(err.Error(), "duplicate key") || strings.Contains(err.Error(), "idempotency") {
			winner, lookupErr := s.repo.GetPendingByIdempotencyKey(req.IdempotencyKey)
			if lookupErr == nil {
				resp := winner.ToResponse()
				return &resp, nil
			}
		}
		return nil, fmt.Errorf("failed to create pending event: %w", err)
	}

	resp := pending.ToResponse()
	return &resp, nil
}

// GetEvents returns published events and pending submissions in one
// list. An explicit is_published filter narrows it to one side.
func (s *service) GetEvents(query EventListQuery) ([]EventResponse, error) {
	responses := make([]EventResponse, 0)

	if query.IsPublished == nil || *query.IsPublished {
		published, err := s.repo.GetAllPublished(query)
		if err != nil {
			return nil, fmt.Errorf("failed to get events: %w", err)
		}
		for i := range published {
			responses = append(responses, published[i].ToResponse())
		}
	}

	if query.IsPublished == nil || !*query.IsPublished {
		pendings, err := s.repo.GetAllPending(StatusPending)
		if err != nil {
			return nil, fmt.Errorf("failed to get pending events: %w", err)
		}
		for i := range pendings {
			responses = append(responses, pendings[i].ToEventResponse())
		}
	}

	return responses, nil
}

func (s *service) GetPendingEvents(status string) ([]EventResponse, error) {
	if status != "" && status != StatusPending && status != StatusApproved && status != StatusRejected {
		return nil, errors.New("invalid status filter")
	}

	pendings, err := s.repo.GetAllPending(status)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending events: %w", err)
	}

	responses := make([]EventResponse, len(pendings))
	for i := range pendings {
		responses[i] = pendings[i].ToEventResponse()
	}
	return responses, nil
}

func (s *service) ApprovePendingEvent(id uuid.UUID, decidedBy string) (*PendingEventResponse, error) {
	published, err := s.repo.ApprovePending(id, decidedBy)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("pending event not found")
		}
		return nil, err
	}

	if s.logger != nil {
		s.logger.LogPendingEventDecision(context.Background(), id.String(), StatusApproved, decidedBy)
	}

	pending, err := s.repo.GetPendingByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload pending event: %w", err)
	}

	if s.notifier != nil {
		s.notifier.NotifyEventDecision(published.ID, pending.SubmittedBy, published.Title, true, "")
	}

	resp := pending.ToResponse()
	return &resp, nil
}

func (s *service) RejectPendingEvent(id uuid.UUID, reason string, decidedBy string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return errors.New("rejection reason is required")
	}

	if err := s.repo.RejectPending(id, reason, decidedBy); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("pending event not found")
		}
		return err
	}

	if s.logger != nil {
		s.logger.LogPendingEventDecision(context.Background(), id.String(), StatusRejected, decidedBy)
	}
	if s.notifier != nil {
		if pending, lookupErr := s.repo.GetPendingByID(id); lookupErr == nil {
			s.notifier.NotifyEventDecision(id, pending.SubmittedBy, pending.Title, false, reason)
		}
	}

	return nil
}

func marshalChildren(v interface{}) (datatypes.JSON, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode event payload: %w", err)
	}
	return datatypes.JSON(data), nil
}
