package events

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PendingEvent statuses.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// RecurrenceWeekly is the only recurrence type the submission workflow
// produces. The column is modeled as a general integer for forward
// compatibility, but every write carries this value.
const RecurrenceWeekly = 2

// PendingEvent is a submitted event awaiting an approval decision. The
// schedule, add-on and location children arrive denormalized in the
// submission payload and are stored as JSONB rather than flattened into
// their own tables; they only become queryable rows once the event is
// approved and published.
type PendingEvent struct {
	ID              uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Title           string         `json:"title" gorm:"not null;size:255"`
	Description     string         `json:"description" gorm:"not null;type:text"`
	Notes           string         `json:"notes" gorm:"not null;type:text"`
	CategoryID      int64          `json:"category_id" gorm:"not null;index"`
	LevelID         int64          `json:"level_id" gorm:"not null;index"`
	ScheduleMasters datatypes.JSON `json:"schedule_masters" gorm:"type:jsonb;not null"`
	AddOns          datatypes.JSON `json:"add_ons" gorm:"type:jsonb"`
	Locations       datatypes.JSON `json:"locations" gorm:"type:jsonb"`
	IdempotencyKey  string         `json:"idempotency_key" gorm:"not null;size:64"`
	Status          string         `json:"status" gorm:"not null;default:pending;size:20"`
	RejectionReason string         `json:"rejection_reason" gorm:"size:500"`
	SubmittedBy     string         `json:"submitted_by" gorm:"size:64"`
	DecidedBy       string         `json:"decided_by" gorm:"size:64"`
	DecidedAt       *time.Time     `json:"decided_at"`
	CreatedAt       time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

func (PendingEvent) TableName() string {
	return "pending_events"
}

func (pe *PendingEvent) BeforeCreate(tx *gorm.DB) error {
	if pe.ID == uuid.Nil {
		pe.ID = uuid.New()
	}
	return nil
}

// Event is a published event, created from an approved PendingEvent.
type Event struct {
	ID              uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Title           string         `json:"title" gorm:"not null;size:255"`
	Description     string         `json:"description" gorm:"not null;type:text"`
	Notes           string         `json:"notes" gorm:"type:text"`
	CategoryID      int64          `json:"category_id" gorm:"not null;index"`
	LevelID         int64          `json:"level_id" gorm:"not null;index"`
	ScheduleMasters datatypes.JSON `json:"schedule_masters" gorm:"type:jsonb;not null"`
	AddOns          datatypes.JSON `json:"add_ons" gorm:"type:jsonb"`
	Locations       datatypes.JSON `json:"locations" gorm:"type:jsonb"`
	IsPublished     bool           `json:"is_published" gorm:"not null;default:true;index"`
	PendingEventID  uuid.UUID      `json:"pending_event_id" gorm:"type:uuid;index"`
	CreatedAt       time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Event) TableName() string {
	return "events"
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
