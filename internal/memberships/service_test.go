package memberships

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepository struct {
	mu       sync.Mutex
	requests map[uuid.UUID]*MembershipRequest
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{requests: make(map[uuid.UUID]*MembershipRequest)}
}

func (m *memoryRepository) Create(request *MembershipRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}
	request.CreatedAt = time.Now()
	clone := *request
	m.requests[request.ID] = &clone
	return nil
}

func (m *memoryRepository) GetByID(id uuid.UUID) (*MembershipRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	request, ok := m.requests[id]
	if !ok {
		return nil, fmt.Errorf("membership request not found")
	}
	clone := *request
	return &clone, nil
}

func (m *memoryRepository) GetAll(query MembershipListQuery) ([]MembershipRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []MembershipRequest
	for _, request := range m.requests {
		if query.Status != "" && request.Status != query.Status {
			continue
		}
		if query.LocationID > 0 && request.LocationID != query.LocationID {
			continue
		}
		out = append(out, *request)
	}
	return out, nil
}

func (m *memoryRepository) Decide(id uuid.UUID, status, note, decidedBy string) (*MembershipRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	request, ok := m.requests[id]
	if !ok {
		return nil, fmt.Errorf("membership request not found")
	}
	if request.Status != StatusPending {
		return nil, fmt.Errorf("membership request is already %s", request.Status)
	}
	now := time.Now()
	request.Status = status
	request.DecisionNote = note
	request.DecidedBy = decidedBy
	request.DecidedAt = &now
	clone := *request
	return &clone, nil
}

type recordedDecision struct {
	requestID   uuid.UUID
	email       string
	name        string
	packageName string
	approved    bool
	note        string
}

type recordingNotifier struct {
	mu        sync.Mutex
	decisions []recordedDecision
}

func (r *recordingNotifier) NotifyMembershipDecision(requestID uuid.UUID, email, name, packageName string, approved bool, note string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.decisions = append(r.decisions, recordedDecision{
		requestID:   requestID,
		email:       email,
		name:        name,
		packageName: packageName,
		approved:    approved,
		note:        note,
	})
}

func seedRequest(t *testing.T, repo *memoryRepository) *MembershipRequest {
	t.Helper()
	request := &MembershipRequest{
		ResidentName: "Lan Pham",
		Email:        "lan.pham@example.com",
		Phone:        "+84 90 123 4567",
		PackageName:  "Premium Living",
		LocationID:   3,
		Status:       StatusPending,
	}
	require.NoError(t, repo.Create(request))
	return request
}

func TestCreateRequestNormalizesEmail(t *testing.T) {
	repo := newMemoryRepository()
	svc := NewService(repo, nil, nil)

	created, err := svc.CreateRequest(CreateMembershipRequest{
		ResidentName: "  Lan Pham  ",
		Email:        "  Lan.Pham@Example.COM ",
		PackageName:  "Premium Living",
		LocationID:   3,
	})
	require.NoError(t, err)

	assert.Equal(t, "Lan Pham", created.ResidentName)
	assert.Equal(t, "lan.pham@example.com", created.Email)
	assert.Equal(t, StatusPending, created.Status)
}

func TestApproveRequestNotifiesResident(t *testing.T) {
	repo := newMemoryRepository()
	notifier := &recordingNotifier{}
	svc := NewService(repo, notifier, nil)
	request := seedRequest(t, repo)

	approved, err := svc.ApproveRequest(request.ID, "admin-1")
	require.NoError(t, err)

	assert.Equal(t, StatusApproved, approved.Status)
	assert.Equal(t, "admin-1", approved.DecidedBy)
	require.NotNil(t, approved.DecidedAt)

	require.Len(t, notifier.decisions, 1)
	decision := notifier.decisions[0]
	assert.Equal(t, request.ID, decision.requestID)
	assert.Equal(t, "lan.pham@example.com", decision.email)
	assert.Equal(t, "Premium Living", decision.packageName)
	assert.True(t, decision.approved)
}

func TestRejectRequestCarriesNote(t *testing.T) {
	repo := newMemoryRepository()
	notifier := &recordingNotifier{}
	svc := NewService(repo, notifier, nil)
	request := seedRequest(t, repo)

	rejected, err := svc.RejectRequest(request.ID, "  waitlist is full  ", "manager-2")
	require.NoError(t, err)

	assert.Equal(t, StatusRejected, rejected.Status)
	assert.Equal(t, "waitlist is full", rejected.DecisionNote)

	require.Len(t, notifier.decisions, 1)
	assert.False(t, notifier.decisions[0].approved)
	assert.Equal(t, "waitlist is full", notifier.decisions[0].note)
}

func TestDecideRejectsDoubleDecision(t *testing.T) {
	repo := newMemoryRepository()
	notifier := &recordingNotifier{}
	svc := NewService(repo, notifier, nil)
	request := seedRequest(t, repo)

	_, err := svc.ApproveRequest(request.ID, "admin-1")
	require.NoError(t, err)

	_, err = svc.RejectRequest(request.ID, "changed our mind", "admin-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already approved")

	// Only the first decision reached the resident.
	assert.Len(t, notifier.decisions, 1)
}

func TestGetRequestsFilters(t *testing.T) {
	repo := newMemoryRepository()
	svc := NewService(repo, nil, nil)

	seedRequest(t, repo)
	other := &MembershipRequest{
		ResidentName: "Minh Tran",
		Email:        "minh.tran@example.com",
		PackageName:  "Standard",
		LocationID:   7,
		Status:       StatusPending,
	}
	require.NoError(t, repo.Create(other))
	_, err := svc.ApproveRequest(other.ID, "admin-1")
	require.NoError(t, err)

	pending, err := svc.GetRequests(MembershipListQuery{Status: StatusPending})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "Lan Pham", pending[0].ResidentName)

	atLocation, err := svc.GetRequests(MembershipListQuery{LocationID: 7})
	require.NoError(t, err)
	require.Len(t, atLocation, 1)
	assert.Equal(t, StatusApproved, atLocation[0].Status)
}

func TestUnknownRequestReturnsNotFound(t *testing.T) {
	svc := NewService(newMemoryRepository(), nil, nil)

	_, err := svc.ApproveRequest(uuid.New(), "admin-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
