package drafts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"nextu/internal/categories"
	"nextu/internal/events"
	"nextu/internal/levels"
	"nextu/pkg/logger"
)

// ErrSubmitInFlight means another submission for the same draft holds
// the submit lock.
var ErrSubmitInFlight = errors.New("a submission for this draft is already in flight")

// Collaborator interfaces, satisfied by the category, level and event
// services. The workflow only needs these slices of them.
type CategoryLister interface {
	GetAllCategories() ([]categories.CategoryResponse, error)
}

type LevelLister interface {
	GetAllLevels() ([]levels.LevelResponse, error)
}

type EventCollaborator interface {
	GetEvents(query events.EventListQuery) ([]events.EventResponse, error)
	CreateFromSubmission(req events.SubmitEventRequest, submittedBy string) (*events.PendingEventResponse, error)
}

type Service interface {
	Open(ctx context.Context, ownerID string) (*EventDraft, error)
	Get(ctx context.Context, id uuid.UUID) (*EventDraft, error)
	Context(ctx context.Context, id uuid.UUID) (*WorkflowContext, error)
	Advance(ctx context.Context, id uuid.UUID, direction string) (*EventDraft, error)
	UpdateBasicInfo(ctx context.Context, id uuid.UUID, req UpdateBasicInfoRequest) (*EventDraft, error)
	UpdateSchedule(ctx context.Context, id uuid.UUID, req UpdateScheduleRequest) (*EventDraft, error)
	AddTicketType(ctx context.Context, id uuid.UUID, req TicketTypeRequest) (*EventDraft, error)
	UpdateTicketType(ctx context.Context, id uuid.UUID, index int, req TicketTypeRequest) (*EventDraft, error)
	RemoveTicketType(ctx context.Context, id uuid.UUID, index int) (*EventDraft, error)
	AddAddOn(ctx context.Context, id uuid.UUID, req AddOnRequest) (*EventDraft, error)
	UpdateAddOn(ctx context.Context, id uuid.UUID, index int, req AddOnRequest) (*EventDraft, error)
	RemoveAddOn(ctx context.Context, id uuid.UUID, index int) (*EventDraft, error)
	AddLocation(ctx context.Context, id uuid.UUID, req LocationRequest) (*EventDraft, error)
	UpdateLocation(ctx context.Context, id uuid.UUID, index int, req LocationRequest) (*EventDraft, error)
	RemoveLocation(ctx context.Context, id uuid.UUID, index int) (*EventDraft, error)
	Submit(ctx context.Context, id uuid.UUID, submittedBy string) (*events.PendingEventResponse, error)
	Cancel(ctx context.Context, id uuid.UUID) error
}

type service struct {
	store      Store
	categories CategoryLister
	levels     LevelLister
	events     EventCollaborator
	logger     *logger.Logger
}

func NewService(store Store, categorySvc CategoryLister, levelSvc LevelLister, eventSvc EventCollaborator, log *logger.Logger) Service {
	return &service{
		store:      store,
		categories: categorySvc,
		levels:     levelSvc,
		events:     eventSvc,
		logger:     log,
	}
}

func (s *service) Open(ctx context.Context, ownerID string) (*EventDraft, error) {
	draft := NewEventDraft(ownerID)
	if err := s.store.Save(ctx, draft); err != nil {
		return nil, err
	}
	if s.logger != nil {
		s.logger.LogDraftOpened(ctx, draft.ID.String(), ownerID)
	}
	return draft, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*EventDraft, error) {
	return s.store.Get(ctx, id)
}

// Context loads the three reference lists the wizard needs,
// concurrently. Each fetch fails independently: a failed one
// contributes an empty list and a notice, never an error for the
// whole call.
func (s *service) Context(ctx context.Context, id uuid.UUID) (*WorkflowContext, error) {
	if _, err := s.store.Get(ctx, id); err != nil {
		return nil, err
	}

	out := &WorkflowContext{
		Categories: []categories.CategoryResponse{},
		Levels:     []levels.LevelResponse{},
		Events:     []events.EventResponse{},
		Notices:    []string{},
	}

	var mu sync.Mutex
	var wg sync.WaitGroup

	wg.Add(3)

	go func() {
		defer wg.Done()
		cats, err := s.categories.GetAllCategories()
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			out.Notices = append(out.Notices, "failed to load categories")
			return
		}
		out.Categories = cats
	}()

	go func() {
		defer wg.Done()
		lvls, err := s.levels.GetAllLevels()
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			out.Notices = append(out.Notices, "failed to load levels")
			return
		}
		out.Levels = lvls
	}()

	go func() {
		defer wg.Done()
		evts, err := s.events.GetEvents(events.EventListQuery{})
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			out.Notices = append(out.Notices, "failed to load events")
			return
		}
		out.Events = evts
	}()

	wg.Wait()
	return out, nil
}

// Advance is a pure step transition: prev at step 1 and next at step 6
// are no-ops, and no side effects happen on navigation.
func (s *service) Advance(ctx context.Context, id uuid.UUID, direction string) (*EventDraft, error) {
	draft, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	switch direction {
	case DirectionNext:
		if draft.Step < StepMax {
			draft.Step++
		}
	case DirectionPrev:
		if draft.Step > StepMin {
			draft.Step--
		}
	default:
		return nil, fmt.Errorf("invalid direction %q", direction)
	}

	if err := s.store.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (s *service) UpdateBasicInfo(ctx context.Context, id uuid.UUID, req UpdateBasicInfoRequest) (*EventDraft, error) {
	draft, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	draft.Title = req.Title
	draft.Description = req.Description
	draft.Notes = req.Notes
	draft.CategoryID = req.CategoryID
	draft.LevelID = req.LevelID

	if err := s.store.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// UpdateSchedule recomputes the single schedule master, but only once
// both dates are present; until then the inputs are ignored, matching
// a form that rebuilds the schedule per keystroke. Malformed non-empty
// dates and durations are rejected with the offending field instead of
// being silently defaulted.
func (s *service) UpdateSchedule(ctx context.Context, id uuid.UUID, req UpdateScheduleRequest) (*EventDraft, error) {
	draft, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	start := strings.TrimSpace(req.StartDate)
	end := strings.TrimSpace(req.EndDate)
	if start == "" || end == "" {
		return draft, nil
	}

	startAt, err := time.Parse(time.RFC3339, start)
	if err != nil {
		return nil, &ValidationError{Field: "startDate", Message: "start date must be a valid RFC 3339 timestamp"}
	}
	endAt, err := time.Parse(time.RFC3339, end)
	if err != nil {
		return nil, &ValidationError{Field: "endDate", Message: "end date must be a valid RFC 3339 timestamp"}
	}

	duration := DefaultDuration
	if raw := strings.TrimSpace(req.Duration); raw != "" {
		normalized, err := parseClock(raw)
		if err != nil {
			return nil, &ValidationError{Field: "duration", Message: "duration must look like H, H:MM or H:MM:SS"}
		}
		duration = normalized
	}

	repeatCount := req.RepeatCount
	if repeatCount < 1 {
		repeatCount = 1
	}

	master := ScheduleMaster{
		StartDate:         startAt.Format(time.RFC3339),
		RecurrenceEndDate: endAt.Format(time.RFC3339),
		Duration:          duration,
		RecurrenceType:    RecurrenceWeekly,
		RepeatCount:       repeatCount,
		TicketTypes:       []TicketTypeDraft{},
	}

	if len(draft.ScheduleMasters) == 0 {
		draft.ScheduleMasters = []ScheduleMaster{master}
	} else {
		master.TicketTypes = draft.ScheduleMasters[0].TicketTypes
		draft.ScheduleMasters[0] = master
	}

	if err := s.store.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (s *service) AddTicketType(ctx context.Context, id uuid.UUID, req TicketTypeRequest) (*EventDraft, error) {
	return s.mutate(ctx, id, func(draft *EventDraft) error {
		draft.StagingTicketTypes = append(draft.StagingTicketTypes, ticketTypeFromRequest(req))
		return nil
	})
}

func (s *service) UpdateTicketType(ctx context.Context, id uuid.UUID, index int, req TicketTypeRequest) (*EventDraft, error) {
	return s.mutate(ctx, id, func(draft *EventDraft) error {
		if index < 0 || index >= len(draft.StagingTicketTypes) {
			return errors.New("ticket type index out of range")
		}
		draft.StagingTicketTypes[index] = ticketTypeFromRequest(req)
		return nil
	})
}

func (s *service) RemoveTicketType(ctx context.Context, id uuid.UUID, index int) (*EventDraft, error) {
	return s.mutate(ctx, id, func(draft *EventDraft) error {
		if index < 0 || index >= len(draft.StagingTicketTypes) {
			return errors.New("ticket type index out of range")
		}
		draft.StagingTicketTypes = append(draft.StagingTicketTypes[:index], draft.StagingTicketTypes[index+1:]...)
		return nil
	})
}

func (s *service) AddAddOn(ctx context.Context, id uuid.UUID, req AddOnRequest) (*EventDraft, error) {
	return s.mutate(ctx, id, func(draft *EventDraft) error {
		draft.AddOns = append(draft.AddOns, AddOn{Name: req.Name, Price: req.Price})
		return nil
	})
}

func (s *service) UpdateAddOn(ctx context.Context, id uuid.UUID, index int, req AddOnRequest) (*EventDraft, error) {
	return s.mutate(ctx, id, func(draft *EventDraft) error {
		if index < 0 || index >= len(draft.AddOns) {
			return errors.New("add-on index out of range")
		}
		draft.AddOns[index] = AddOn{Name: req.Name, Price: req.Price}
		return nil
	})
}

func (s *service) RemoveAddOn(ctx context.Context, id uuid.UUID, index int) (*EventDraft, error) {
	return s.mutate(ctx, id, func(draft *EventDraft) error {
		if index < 0 || index >= len(draft.AddOns) {
			return errors.New("add-on index out of range")
		}
		draft.AddOns = append(draft.AddOns[:index], draft.AddOns[index+1:]...)
		return nil
	})
}

func (s *service) AddLocation(ctx context.Context, id uuid.UUID, req LocationRequest) (*EventDraft, error) {
	return s.mutate(ctx, id, func(draft *EventDraft) error {
		draft.Locations = append(draft.Locations, EventLocation{Name: req.Name, Address: req.Address})
		return nil
	})
}

func (s *service) UpdateLocation(ctx context.Context, id uuid.UUID, index int, req LocationRequest) (*EventDraft, error) {
	return s.mutate(ctx, id, func(draft *EventDraft) error {
		if index < 0 || index >= len(draft.Locations) {
			return errors.New("location index out of range")
		}
		draft.Locations[index] = EventLocation{Name: req.Name, Address: req.Address}
		return nil
	})
}

func (s *service) RemoveLocation(ctx context.Context, id uuid.UUID, index int) (*EventDraft, error) {
	return s.mutate(ctx, id, func(draft *EventDraft) error {
		if index < 0 || index >= len(draft.Locations) {
			return errors.New("location index out of range")
		}
		draft.Locations = append(draft.Locations[:index], draft.Locations[index+1:]...)
		return nil
	})
}

// Submit validates, takes the submit lock, materializes the ticket
// types and hands the assembled payload to the event service. Success
// closes the draft; failure releases the lock and puts the draft back
// on the preview step with its content intact.
func (s *service) Submit(ctx context.Context, id uuid.UUID, submittedBy string) (*events.PendingEventResponse, error) {
	draft, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if verr := Validate(draft); verr != nil {
		return nil, verr
	}

	acquired, err := s.store.AcquireSubmitLock(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire submit lock: %w", err)
	}
	if !acquired {
		return nil, ErrSubmitInFlight
	}

	draft.Status = StatusSubmitting
	if err := s.store.Save(ctx, draft); err != nil {
		_ = s.store.ReleaseSubmitLock(ctx, id)
		return nil, err
	}

	draft.Materialize()
	payload := assemblePayload(draft)

	pending, err := s.events.CreateFromSubmission(payload, submittedBy)
	if err != nil {
		draft.Status = StatusEditing
		draft.Step = StepPreview
		if saveErr := s.store.Save(ctx, draft); saveErr != nil && s.logger != nil {
			s.logger.Error("failed to restore draft after submission failure", "draft_id", id.String(), "error", saveErr)
		}
		_ = s.store.ReleaseSubmitLock(ctx, id)
		if s.logger != nil {
			s.logger.LogDraftSubmissionFailed(ctx, id.String(), err)
		}
		return nil, err
	}

	if err := s.store.Delete(ctx, id); err != nil && s.logger != nil {
		s.logger.Error("failed to delete submitted draft", "draft_id", id.String(), "error", err)
	}
	// The submit lock is left to expire on its TTL. Releasing it here
	// would let a concurrent submitter that loaded the draft before the
	// delete slip through and double-create.

	if s.logger != nil {
		s.logger.LogDraftSubmitted(ctx, id.String(), pending.ID.String())
	}
	return pending, nil
}

func (s *service) Cancel(ctx context.Context, id uuid.UUID) error {
	if _, err := s.store.Get(ctx, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}

func (s *service) mutate(ctx context.Context, id uuid.UUID, fn func(*EventDraft) error) (*EventDraft, error) {
	draft, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(draft); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func ticketTypeFromRequest(req TicketTypeRequest) TicketTypeDraft {
	tt := TicketTypeDraft{
		Name:              req.Name,
		Price:             req.Price,
		TotalQuantity:     req.TotalQuantity,
		MaxPerUser:        req.MaxPerUser,
		IsEarlyBird:       req.IsEarlyBird,
		EarlyBirdDeadline: req.EarlyBirdDeadline,
		DiscountRate:      req.DiscountRate,
	}
	if tt.MaxPerUser < 1 {
		tt.MaxPerUser = 1
	}
	return tt
}

// assemblePayload builds the wire payload from a validated,
// materialized draft. The draft id doubles as the idempotency key, so
// a retried submission of the same draft dedupes server-side.
func assemblePayload(draft *EventDraft) events.SubmitEventRequest {
	masters := make([]events.ScheduleMasterPayload, len(draft.ScheduleMasters))
	for i, master := range draft.ScheduleMasters {
		ticketTypes := make([]events.TicketTypePayload, len(master.TicketTypes))
		for j, tt := range master.TicketTypes {
			ticketTypes[j] = events.TicketTypePayload{
				Name:              tt.Name,
				Price:             tt.Price,
				TotalQuantity:     tt.TotalQuantity,
				MaxPerUser:        tt.MaxPerUser,
				IsEarlyBird:       tt.IsEarlyBird,
				EarlyBirdDeadline: tt.EarlyBirdDeadline,
				DiscountRate:      tt.DiscountRate,
			}
		}
		masters[i] = events.ScheduleMasterPayload{
			StartDate:         master.StartDate,
			RecurrenceEndDate: master.RecurrenceEndDate,
			Duration:          NormalizeDuration(master.Duration),
			RecurrenceType:    RecurrenceWeekly,
			RepeatCount:       master.RepeatCount,
			TicketTypes:       ticketTypes,
		}
	}

	addOns := make([]events.AddOnPayload, len(draft.AddOns))
	for i, addOn := range draft.AddOns {
		addOns[i] = events.AddOnPayload{Name: addOn.Name, Price: addOn.Price}
	}

	locations := make([]events.LocationPayload, len(draft.Locations))
	for i, loc := range draft.Locations {
		locations[i] = events.LocationPayload{Name: loc.Name, Address: loc.Address}
	}

	return events.SubmitEventRequest{
		Title:           strings.TrimSpace(draft.Title),
		Description:     strings.TrimSpace(draft.Description),
		Notes:           strings.TrimSpace(draft.Notes),
		CategoryID:      draft.CategoryID,
		LevelID:         draft.LevelID,
		ScheduleMasters: masters,
		AddOns:          addOns,
		Locations:       locations,
		IdempotencyKey:  draft.ID.String(),
	}
}
