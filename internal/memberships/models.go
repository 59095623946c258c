package memberships

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// MembershipRequest is a resident's application for a membership package,
// captured from the public onboarding funnel and decided in the console.
type MembershipRequest struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ResidentName string     `gorm:"not null;size:120" json:"residentName"`
	Email        string     `gorm:"not null;size:255;index" json:"email"`
	Phone        string     `gorm:"size:32" json:"phone"`
	PackageName  string     `gorm:"not null;size:120" json:"packageName"`
	LocationID   int64      `gorm:"not null;index" json:"locationId"`
	Status       string     `gorm:"not null;default:pending;index" json:"status"`
	DecisionNote string     `gorm:"size:500" json:"decisionNote"`
	DecidedBy    string     `gorm:"size:64" json:"decidedBy"`
	DecidedAt    *time.Time `json:"decidedAt"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func (MembershipRequest) TableName() string {
	return "membership_requests"
}

func (m *MembershipRequest) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

type MembershipRequestResponse struct {
	ID           uuid.UUID  `json:"id"`
	ResidentName string     `json:"residentName"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	PackageName  string     `json:"packageName"`
	LocationID   int64      `json:"locationId"`
	Status       string     `json:"status"`
	DecisionNote string     `json:"decisionNote"`
	DecidedBy    string     `json:"decidedBy"`
	DecidedAt    *time.Time `json:"decidedAt"`
	CreatedAt    time.Time  `json:"createdAt"`
}

func (m *MembershipRequest) ToResponse() *MembershipRequestResponse {
	return &MembershipRequestResponse{
		ID:           m.ID,
		ResidentName: m.ResidentName,
		Email:        m.Email,
		Phone:        m.Phone,
		PackageName:  m.PackageName,
		LocationID:   m.LocationID,
		Status:       m.Status,
		DecisionNote: m.DecisionNote,
		DecidedBy:    m.DecidedBy,
		DecidedAt:    m.DecidedAt,
		CreatedAt:    m.CreatedAt,
	}
}

type CreateMembershipRequest struct {
	ResidentName string `json:"residentName" binding:"required,min=2,max=120"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone" binding:"omitempty,max=32"`
	PackageName  string `json:"packageName" binding:"required,max=120"`
	LocationID   int64  `json:"locationId" binding:"required,gt=0"`
}

type RejectMembershipRequest struct {
	Note string `json:"note" binding:"omitempty,max=500"`
}

type MembershipListQuery struct {
	Status     string `form:"status" binding:"omitempty,oneof=pending approved rejected"`
	LocationID int64  `form:"location_id" binding:"omitempty,gt=0"`
}
