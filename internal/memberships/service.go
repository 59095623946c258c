package memberships

import (
	"context"
	"strings"

	"nextu/pkg/logger"

	"github.com/google/uuid"
)

// DecisionNotifier pushes the outcome of a membership decision to the
// resident. Satisfied by the notifications service.
type DecisionNotifier interface {
	NotifyMembershipDecision(requestID uuid.UUID, email, name, packageName string, approved bool, note string)
}

type Service interface {
	CreateRequest(req CreateMembershipRequest) (*MembershipRequestResponse, error)
	GetRequests(query MembershipListQuery) ([]MembershipRequestResponse, error)
	ApproveRequest(id uuid.UUID, decidedBy string) (*MembershipRequestResponse, error)
	RejectRequest(id uuid.UUID, note, decidedBy string) (*MembershipRequestResponse, error)
}

type service struct {
	repo     Repository
	notifier DecisionNotifier
	logger   *logger.Logger
}

func NewService(repo Repository, notifier DecisionNotifier, log *logger.Logger) Service {
	return &service{
		repo:     repo,
		notifier: notifier,
		logger:   log,
	}
}

func (s *service) CreateRequest(req CreateMembershipRequest) (*MembershipRequestResponse, error) {
	request := &MembershipRequest{
		ResidentName: strings.TrimSpace(req.ResidentName),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:        strings.TrimSpace(req.Phone),
		PackageName:  strings.TrimSpace(req.PackageName),
		LocationID:   req.LocationID,
		Status:       StatusPending,
	}
	if err := s.repo.Create(request); err != nil {
		return nil, err
	}
	return request.ToResponse(), nil
}

func (s *service) GetRequests(query MembershipListQuery) ([]MembershipRequestResponse, error) {
	requests, err := s.repo.GetAll(query)
	if err != nil {
		return nil, err
	}

	responses := make([]MembershipRequestResponse, len(requests))
	for i := range requests {
		responses[i] = *requests[i].ToResponse()
	}
	return responses, nil
}

func (s *service) ApproveRequest(id uuid.UUID, decidedBy string) (*MembershipRequestResponse, error) {
	request, err := s.repo.Decide(id, StatusApproved, "", decidedBy)
	if err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.LogMembershipDecision(context.Background(), id.String(), StatusApproved, decidedBy)
	}
	if s.notifier != nil {
		s.notifier.NotifyMembershipDecision(id, request.Email, request.ResidentName, request.PackageName, true, "")
	}
	return request.ToResponse(), nil
}

func (s *service) RejectRequest(id uuid.UUID, note, decidedBy string) (*MembershipRequestResponse, error) {
	note = strings.TrimSpace(note)
	request, err := s.repo.Decide(id, StatusRejected, note, decidedBy)
	if err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.LogMembershipDecision(context.Background(), id.String(), StatusRejected, decidedBy)
	}
	if s.notifier != nil {
		s.notifier.NotifyMembershipDecision(id, request.Email, request.ResidentName, request.PackageName, false, note)
	}
	return request.ToResponse(), nil
}
