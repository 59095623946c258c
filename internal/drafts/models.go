package drafts

import (
	"time"

	"github.com/google/uuid"
)

// Wizard steps, in order. Navigation clamps at both ends; step 6 is
// where submission happens.
const (
	StepBasicInfo   = 1
	StepSchedule    = 2
	StepTicketTypes = 3
	StepAddOns      = 4
	StepLocation    = 5
	StepPreview     = 6

	StepMin = StepBasicInfo
	StepMax = StepPreview
)

// Draft statuses. A closed draft is simply deleted from the store;
// "closed" never appears on a stored record.
const (
	StatusEditing    = "editing"
	StatusSubmitting = "submitting"
)

// RecurrenceWeekly is the only recurrence type the workflow produces.
const RecurrenceWeekly = 2

type TicketTypeDraft struct {
	Name              string  `json:"name"`
	Price             int64   `json:"price"`
	TotalQuantity     int     `json:"totalQuantity"`
	MaxPerUser        int     `json:"maxPerUser"`
	IsEarlyBird       bool    `json:"isEarlyBird"`
	EarlyBirdDeadline string  `json:"earlyBirdDeadline"`
	DiscountRate      float64 `json:"discountRate"`
}

type ScheduleMaster struct {
	StartDate         string            `json:"startDate"`
	RecurrenceEndDate string            `json:"recurrenceEndDate"`
	Duration          string            `json:"duration"`
	RecurrenceType    int               `json:"recurrenceType"`
	RepeatCount       int               `json:"repeatCount"`
	TicketTypes       []TicketTypeDraft `json:"ticketTypes"`
}

type AddOn struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

type EventLocation struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// EventDraft accumulates one event submission across the six wizard
// steps. Ticket types are edited on StagingTicketTypes and merged into
// the schedule master only at submit time; edits during step 3 never
// touch ScheduleMasters[0].TicketTypes.
type EventDraft struct {
	ID                 uuid.UUID         `json:"id"`
	Title              string            `json:"title"`
	Description        string            `json:"description"`
	Notes              string            `json:"notes"`
	CategoryID         int64             `json:"categoryId"`
	LevelID            int64             `json:"levelId"`
	ScheduleMasters    []ScheduleMaster  `json:"scheduleMasters"`
	AddOns             []AddOn           `json:"addOns"`
	Locations          []EventLocation   `json:"locations"`
	StagingTicketTypes []TicketTypeDraft `json:"stagingTicketTypes"`
	Step               int               `json:"step"`
	Status             string            `json:"status"`
	OwnerID            string            `json:"ownerId"`
	CreatedAt          time.Time         `json:"createdAt"`
	UpdatedAt          time.Time         `json:"updatedAt"`
}

func NewEventDraft(ownerID string) *EventDraft {
	now := time.Now()
	return &EventDraft{
		ID:                 uuid.New(),
		ScheduleMasters:    []ScheduleMaster{},
		AddOns:             []AddOn{},
		Locations:          []EventLocation{},
		StagingTicketTypes: []TicketTypeDraft{},
		Step:               StepMin,
		Status:             StatusEditing,
		OwnerID:            ownerID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// Materialize merges the staging ticket types into the schedule master.
// Called exactly once per submission attempt, after validation; until
// then the two lists stay independent.
func (d *EventDraft) Materialize() {
	if len(d.ScheduleMasters) == 0 {
		return
	}
	merged := make([]TicketTypeDraft, len(d.StagingTicketTypes))
	copy(merged, d.StagingTicketTypes)
	d.ScheduleMasters[0].TicketTypes = merged
}
