package memberships

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(request *MembershipRequest) error
	GetByID(id uuid.UUID) (*MembershipRequest, error)
	GetAll(query MembershipListQuery) ([]MembershipRequest, error)
	Decide(id uuid.UUID, status, note, decidedBy string) (*MembershipRequest, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(request *MembershipRequest) error {
	if err := r.db.Create(request).Error; err != nil {
		return fmt.Errorf("failed to create membership request: %w", err)
	}
	return nil
}

func (r *repository) GetByID(id uuid.UUID) (*MembershipRequest, error) {
	var request MembershipRequest
	if err := r.db.First(&request, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("membership request not found")
		}
		return nil, fmt.Errorf("failed to get membership request: %w", err)
	}
	return &request, nil
}

func (r *repository) GetAll(query MembershipListQuery) ([]MembershipRequest, error) {
	db := r.db.Model(&MembershipRequest{})
	if query.Status != "" {
		db = db.Where("status = ?", query.Status)
	}
	if query.LocationID > 0 {
		db = db.Where("location_id = ?", query.LocationID)
	}

	var requests []MembershipRequest
	if err := db.Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, fmt.Errorf("failed to list membership requests: %w", err)
	}
	return requests, nil
}

// Decide transitions a pending request to approved or rejected. Requests
// that were already decided are left untouched.
func (r *repository) Decide(id uuid.UUID, status, note, decidedBy string) (*MembershipRequest, error) {
	var request MembershipRequest
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&request, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("membership request not found")
			}
			return fmt.Errorf("failed to get membership request: %w", err)
		}

		if request.Status != StatusPending {
			return fmt.Errorf("membership request is already %s", request.Status)
		}

		now := time.Now()
		updates := map[string]interface{}{
			"status":        status,
			"decision_note": note,
			"decided_by":    decidedBy,
			"decided_at":    now,
		}
		if err := tx.Model(&request).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update membership request: %w", err)
		}

		request.Status = status
		request.DecisionNote = note
		request.DecidedBy = decidedBy
		request.DecidedAt = &now
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &request, nil
}
