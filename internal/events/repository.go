package events

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	CreatePending(pending *PendingEvent) error
	GetPendingByID(id uuid.UUID) (*PendingEvent, error)
	GetPendingByIdempotencyKey(key string) (*PendingEvent, error)
	GetAllPending(status string) ([]PendingEvent, error)
	ApprovePending(id uuid.UUID, decidedBy string) (*Event, error)
	RejectPending(id uuid.UUID, reason string, decidedBy string) error
	GetAllPublished(query EventListQuery) ([]Event, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreatePending(pending *PendingEvent) error {
	return r.db.Create(pending).Error
}

func (r *repository) GetPendingByID(id uuid.UUID) (*PendingEvent, error) {
	var pending PendingEvent
	err := r.db.Where("id = ?", id).First(&pending).Error
	if err != nil {
		return nil, err
	}
	return &pending, nil
}

func (r *repository) GetPendingByIdempotencyKey(key string) (*PendingEvent, error) {
	var pending PendingEvent
	err := r.db.Where("idempotency_key = ?", key).First(&pending).Error
	if err != nil {
		return nil, err
	}
	return &pending, nil
}

func (r *repository) GetAllPending(status string) ([]PendingEvent, error) {
	var pendings []PendingEvent

	db := r.db.Model(&PendingEvent{})
	if status != "" {
		db = db.Where("status = ?", status)
	}

	err := db.Order("created_at DESC").Find(&pendings).Error
	return pendings, err
}

// ApprovePending flips the pending record to approved and publishes the
// event in one transaction, so a crash between the two writes cannot
// leave an approved submission without its published counterpart.
func (r *repository) ApprovePending(id uuid.UUID, decidedBy string) (*Event, error) {
	var published *Event

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var pending PendingEvent
		if err := tx.Where("id = ?", id).First(&pending).Error; err != nil {
			return err
		}

		if pending.Status != StatusPending {
			return fmt.Errorf("pending event is already %s", pending.Status)
		}

		now := time.Now()
		updates := map[string]interface{}{
			"status":     StatusApproved,
			"decided_by": decidedBy,
			"decided_at": now,
		}
		if err := tx.Model(&pending).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to mark pending event approved: %w", err)
		}

		event := &Event{
			Title:           pending.Title,
			Description:     pending.Description,
			Notes:           pending.Notes,
			CategoryID:      pending.CategoryID,
			LevelID:         pending.LevelID,
			ScheduleMasters: pending.ScheduleMasters,
			AddOns:          pending.AddOns,
			Locations:       pending.Locations,
			IsPublished:     true,
			PendingEventID:  pending.ID,
		}
		if err := tx.Create(event).Error; err != nil {
			return fmt.Errorf("failed to publish event: %w", err)
		}

		published = event
		return nil
	})

	if err != nil {
		return nil, err
	}
	return published, nil
}

func (r *repository) RejectPending(id uuid.UUID, reason string, decidedBy string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var pending PendingEvent
		if err := tx.Where("id = ?", id).First(&pending).Error; err != nil {
			return err
		}

		if pending.Status != StatusPending {
			return fmt.Errorf("pending event is already %s", pending.Status)
		}

		now := time.Now()
		updates := map[string]interface{}{
			"status":           StatusRejected,
			"rejection_reason": reason,
			"decided_by":       decidedBy,
			"decided_at":       now,
		}
		return tx.Model(&pending).Updates(updates).Error
	})
}

func (r *repository) GetAllPublished(query EventListQuery) ([]Event, error) {
	var published []Event

	db := r.db.Model(&Event{})

	if query.CategoryID > 0 {
		db = db.Where("category_id = ?", query.CategoryID)
	}
	if query.LevelID > 0 {
		db = db.Where("level_id = ?", query.LevelID)
	}
	if query.Search != "" {
		searchTerm := "%" + strings.ToLower(query.Search) + "%"
		db = db.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", searchTerm, searchTerm)
	}

	err := db.Order("created_at DESC").Find(&published).Error
	return published, err
}
