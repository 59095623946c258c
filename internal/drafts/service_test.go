package drafts

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nextu/internal/categories"
	"nextu/internal/events"
	"nextu/internal/levels"
)

// memoryStore is an in-memory Store with real SETNX semantics for the
// submit lock, so concurrency tests behave like the Redis store.
type memoryStore struct {
	mu     sync.Mutex
	drafts map[uuid.UUID]*EventDraft
	locks  map[uuid.UUID]bool
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		drafts: make(map[uuid.UUID]*EventDraft),
		locks:  make(map[uuid.UUID]bool),
	}
}

func (m *memoryStore) Save(ctx context.Context, draft *EventDraft) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	clone := *draft
	m.drafts[draft.ID] = &clone
	return nil
}

func (m *memoryStore) Get(ctx context.Context, id uuid.UUID) (*EventDraft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	draft, ok := m.drafts[id]
	if !ok {
		return nil, ErrDraftNotFound
	}
	clone := *draft
	return &clone, nil
}

func (m *memoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.drafts, id)
	return nil
}

func (m *memoryStore) AcquireSubmitLock(ctx context.Context, id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.locks[id] {
		return false, nil
	}
	m.locks[id] = true
	return true, nil
}

func (m *memoryStore) ReleaseSubmitLock(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.locks, id)
	return nil
}

type stubCategoryLister struct {
	items []categories.CategoryResponse
	err   error
}

func (s *stubCategoryLister) GetAllCategories() ([]categories.CategoryResponse, error) {
	return s.items, s.err
}

type stubLevelLister struct {
	items []levels.LevelResponse
	err   error
}

func (s *stubLevelLister) GetAllLevels() ([]levels.LevelResponse, error) {
	return s.items, s.err
}

// stubEventCollaborator records each submission it receives.
type stubEventCollaborator struct {
	mu        sync.Mutex
	created   []events.SubmitEventRequest
	createErr error
	listErr   error
}

func (s *stubEventCollaborator) GetEvents(query events.EventListQuery) ([]events.EventResponse, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return []events.EventResponse{}, nil
}

func (s *stubEventCollaborator) CreateFromSubmission(req events.SubmitEventRequest, submittedBy string) (*events.PendingEventResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = append(s.created, req)
	return &events.PendingEventResponse{ID: uuid.New(), Title: req.Title, Status: events.StatusPending}, nil
}

func (s *stubEventCollaborator) createdCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.created)
}

func newTestService(store Store, collaborator *stubEventCollaborator) Service {
	return NewService(store, &stubCategoryLister{}, &stubLevelLister{}, collaborator, nil)
}

func TestOpenDraftStartsAtStepOne(t *testing.T) {
	store := newMemoryStore()
	svc := newTestService(store, &stubEventCollaborator{})

	draft, err := svc.Open(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, StepBasicInfo, draft.Step)
	assert.Equal(t, StatusEditing, draft.Status)
	assert.Empty(t, draft.ScheduleMasters)
	assert.NotEqual(t, uuid.Nil, draft.ID)

	stored, err := store.Get(context.Background(), draft.ID)
	require.NoError(t, err)
	assert.Equal(t, draft.ID, stored.ID)
}

func TestAdvanceClampsAtBounds(t *testing.T) {
	store := newMemoryStore()
	svc := newTestService(store, &stubEventCollaborator{})
	ctx := context.Background()

	draft, err := svc.Open(ctx, "user-1")
	require.NoError(t, err)

	// prev at step 1 is a no-op
	draft, err = svc.Advance(ctx, draft.ID, DirectionPrev)
	require.NoError(t, err)
	assert.Equal(t, StepMin, draft.Step)

	// walk to the last step
	for i := 0; i < 10; i++ {
		draft, err = svc.Advance(ctx, draft.ID, DirectionNext)
		require.NoError(t, err)
	}
	assert.Equal(t, StepMax, draft.Step)

	draft, err = svc.Advance(ctx, draft.ID, DirectionNext)
	require.NoError(t, err)
	assert.Equal(t, StepMax, draft.Step)
}

func TestUpdateScheduleNormalizesDuration(t *testing.T) {
	store := newMemoryStore()
	svc := newTestService(store, &stubEventCollaborator{})
	ctx := context.Background()

	draft, err := svc.Open(ctx, "user-1")
	require.NoError(t, err)

	draft, err = svc.UpdateSchedule(ctx, draft.ID, UpdateScheduleRequest{
		StartDate:   "2024-02-01T09:00:00Z",
		EndDate:     "2024-02-01T11:00:00Z",
		Duration:    "2",
		RepeatCount: 0,
	})
	require.NoError(t, err)
	require.Len(t, draft.ScheduleMasters, 1)
	assert.Equal(t, "02:00:00", draft.ScheduleMasters[0].Duration)
	assert.Equal(t, RecurrenceWeekly, draft.ScheduleMasters[0].RecurrenceType)
	assert.Equal(t, 1, draft.ScheduleMasters[0].RepeatCount)
}

func TestUpdateScheduleRejectsMalformedInput(t *testing.T) {
	store := newMemoryStore()
	svc := newTestService(store, &stubEventCollaborator{})
	ctx := context.Background()

	draft, err := svc.Open(ctx, "user-1")
	require.NoError(t, err)

	_, err = svc.UpdateSchedule(ctx, draft.ID, UpdateScheduleRequest{
		StartDate: "not-a-date",
		EndDate:   "2024-02-01T11:00:00Z",
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "startDate", verr.Field)

	_, err = svc.UpdateSchedule(ctx, draft.ID, UpdateScheduleRequest{
		StartDate: "2024-02-01T09:00:00Z",
		EndDate:   "2024-02-01T11:00:00Z",
		Duration:  "one hour",
	})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "duration", verr.Field)
}

func TestUpdateScheduleIgnoredUntilBothDatesPresent(t *testing.T) {
	store := newMemoryStore()
	svc := newTestService(store, &stubEventCollaborator{})
	ctx := context.Background()

	draft, err := svc.Open(ctx, "user-1")
	require.NoError(t, err)

	draft, err = svc.UpdateSchedule(ctx, draft.ID, UpdateScheduleRequest{
		StartDate: "2024-02-01T09:00:00Z",
	})
	require.NoError(t, err)
	assert.Empty(t, draft.ScheduleMasters)
}

func TestTicketTypeStagingDoesNotTouchSchedule(t *testing.T) {
	store := newMemoryStore()
	svc := newTestService(store, &stubEventCollaborator{})
	ctx := context.Background()

	draft, err := svc.Open(ctx, "user-1")
	require.NoError(t, err)

	_, err = svc.UpdateSchedule(ctx, draft.ID, UpdateScheduleRequest{
		StartDate: "2024-02-01T09:00:00Z",
		EndDate:   "2024-02-01T11:00:00Z",
		Duration:  "2:00:00",
	})
	require.NoError(t, err)

	draft, err = svc.AddTicketType(ctx, draft.ID, TicketTypeRequest{
		Name: "Regular", Price: 100000, TotalQuantity: 20, MaxPerUser: 2, DiscountRate: 0.15,
	})
	require.NoError(t, err)

	require.Len(t, draft.StagingTicketTypes, 1)
	assert.Empty(t, draft.ScheduleMasters[0].TicketTypes, "staging edits must not leak into the schedule master before submit")
}

func TestListIndexOutOfRange(t *testing.T) {
	store := newMemoryStore()
	svc := newTestService(store, &stubEventCollaborator{})
	ctx := context.Background()

	draft, err := svc.Open(ctx, "user-1")
	require.NoError(t, err)

	_, err = svc.UpdateTicketType(ctx, draft.ID, 0, TicketTypeRequest{Name: "x"})
	assert.ErrorContains(t, err, "index out of range")

	_, err = svc.RemoveAddOn(ctx, draft.ID, 3)
	assert.ErrorContains(t, err, "index out of range")
}

func TestSubmitPayloadAssembly(t *testing.T) {
	store := newMemoryStore()
	collaborator := &stubEventCollaborator{}
	svc := newTestService(store, collaborator)
	ctx := context.Background()

	draft, err := svc.Open(ctx, "author-7")
	require.NoError(t, err)

	_, err = svc.UpdateBasicInfo(ctx, draft.ID, UpdateBasicInfoRequest{
		Title: "Yoga Retreat", Description: "d", Notes: "n", CategoryID: 3, LevelID: 1,
	})
	require.NoError(t, err)

	_, err = svc.UpdateSchedule(ctx, draft.ID, UpdateScheduleRequest{
		StartDate:   "2024-02-01T09:00:00Z",
		EndDate:     "2024-02-01T11:00:00Z",
		Duration:    "2:00:00",
		RepeatCount: 2,
	})
	require.NoError(t, err)

	_, err = svc.AddTicketType(ctx, draft.ID, TicketTypeRequest{
		Name: "Regular", Price: 100000, TotalQuantity: 20, MaxPerUser: 2, IsEarlyBird: false, DiscountRate: 0.15,
	})
	require.NoError(t, err)

	pending, err := svc.Submit(ctx, draft.ID, "author-7")
	require.NoError(t, err)
	assert.Equal(t, "Yoga Retreat", pending.Title)

	require.Equal(t, 1, collaborator.createdCount())
	payload := collaborator.created[0]
	require.Len(t, payload.ScheduleMasters, 1)
	assert.Equal(t, "02:00:00", payload.ScheduleMasters[0].Duration)
	assert.Equal(t, RecurrenceWeekly, payload.ScheduleMasters[0].RecurrenceType)
	assert.Equal(t, 2, payload.ScheduleMasters[0].RepeatCount)
	require.Len(t, payload.ScheduleMasters[0].TicketTypes, 1)
	assert.Equal(t, "Regular", payload.ScheduleMasters[0].TicketTypes[0].Name)
	assert.Equal(t, 0.15, payload.ScheduleMasters[0].TicketTypes[0].DiscountRate)
	assert.Equal(t, draft.ID.String(), payload.IdempotencyKey)

	// submitted draft is gone
	_, err = store.Get(ctx, draft.ID)
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestSubmitValidationLeavesDraftIntact(t *testing.T) {
	store := newMemoryStore()
	collaborator := &stubEventCollaborator{}
	svc := newTestService(store, collaborator)
	ctx := context.Background()

	draft, err := svc.Open(ctx, "user-1")
	require.NoError(t, err)

	_, err = svc.Submit(ctx, draft.ID, "user-1")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "title", verr.Field)
	assert.Equal(t, 0, collaborator.createdCount())

	stored, err := store.Get(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusEditing, stored.Status)
}

func TestSubmitFailureReturnsToPreviewStep(t *testing.T) {
	store := newMemoryStore()
	collaborator := &stubEventCollaborator{createErr: errors.New("category does not exist")}
	svc := newTestService(store, collaborator)
	ctx := context.Background()

	draft := validDraft()
	require.NoError(t, store.Save(ctx, draft))

	_, err := svc.Submit(ctx, draft.ID, "user-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "category does not exist")

	stored, err := store.Get(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusEditing, stored.Status)
	assert.Equal(t, StepPreview, stored.Step)
	assert.Equal(t, "Yoga Retreat", stored.Title, "failed submission must not lose user input")

	// lock released: a retry reaches the collaborator again
	collaborator.createErr = nil
	_, err = svc.Submit(ctx, draft.ID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, collaborator.createdCount())
}

func TestSubmitAtMostOneInFlight(t *testing.T) {
	store := newMemoryStore()
	collaborator := &stubEventCollaborator{}
	svc := newTestService(store, collaborator)
	ctx := context.Background()

	draft := validDraft()
	require.NoError(t, store.Save(ctx, draft))

	const attempts = 8
	results := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Submit(ctx, draft.ID, "user-1")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var succeeded int
	for err := range results {
		if err == nil {
			succeeded++
		} else {
			// losers either hit the lock or find the draft already gone
			if !errors.Is(err, ErrSubmitInFlight) && !errors.Is(err, ErrDraftNotFound) {
				t.Errorf("unexpected concurrent submit error: %v", err)
			}
		}
	}

	assert.Equal(t, 1, succeeded, "exactly one concurrent submit should win")
	assert.Equal(t, 1, collaborator.createdCount(), "collaborator must observe exactly one create")
}

func TestCancelDiscardsDraft(t *testing.T) {
	store := newMemoryStore()
	svc := newTestService(store, &stubEventCollaborator{})
	ctx := context.Background()

	draft, err := svc.Open(ctx, "user-1")
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(ctx, draft.ID))
	_, err = store.Get(ctx, draft.ID)
	assert.ErrorIs(t, err, ErrDraftNotFound)

	assert.ErrorIs(t, svc.Cancel(ctx, draft.ID), ErrDraftNotFound)
}

func TestContextSurvivesPartialFetchFailure(t *testing.T) {
	store := newMemoryStore()
	collaborator := &stubEventCollaborator{listErr: errors.New("events backend down")}
	svc := NewService(store,
		&stubCategoryLister{items: []categories.CategoryResponse{{ID: 1, Name: "Wellness"}}},
		&stubLevelLister{err: errors.New("levels backend down")},
		collaborator, nil)
	ctx := context.Background()

	draft, err := svc.Open(ctx, "user-1")
	require.NoError(t, err)

	workflowCtx, err := svc.Context(ctx, draft.ID)
	require.NoError(t, err, "partial fetch failures must not fail the context call")

	assert.Len(t, workflowCtx.Categories, 1)
	assert.Empty(t, workflowCtx.Levels)
	assert.Empty(t, workflowCtx.Events)
	assert.ElementsMatch(t, []string{"failed to load levels", "failed to load events"}, workflowCtx.Notices)
}

// Full pass through the wizard: each validation failure names its
// field, the draft keeps accumulating, and a successful submit closes
// it.
func TestEndToEndScenario(t *testing.T) {
	store := newMemoryStore()
	collaborator := &stubEventCollaborator{}
	svc := newTestService(store, collaborator)
	ctx := context.Background()

	draft, err := svc.Open(ctx, "user-1")
	require.NoError(t, err)
	id := draft.ID

	_, err = svc.Submit(ctx, id, "user-1")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "title", verr.Field)

	_, err = svc.UpdateBasicInfo(ctx, id, UpdateBasicInfoRequest{Title: "Yoga Retreat"})
	require.NoError(t, err)
	_, err = svc.Submit(ctx, id, "user-1")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "description", verr.Field)

	_, err = svc.UpdateBasicInfo(ctx, id, UpdateBasicInfoRequest{
		Title: "Yoga Retreat", Description: "d", Notes: "n", CategoryID: 3, LevelID: 1,
	})
	require.NoError(t, err)
	_, err = svc.Submit(ctx, id, "user-1")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "scheduleMasters", verr.Field)

	_, err = svc.UpdateSchedule(ctx, id, UpdateScheduleRequest{
		StartDate: "2024-02-01T09:00:00Z",
		EndDate:   "2024-02-01T11:00:00Z",
		Duration:  "2",
	})
	require.NoError(t, err)

	pending, err := svc.Submit(ctx, id, "user-1")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, pending.ID)

	_, err = store.Get(ctx, id)
	assert.ErrorIs(t, err, ErrDraftNotFound)
	assert.Equal(t, 1, collaborator.createdCount())
}
