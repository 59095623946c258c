package admins

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"nextu/internal/shared/session"
)

// Admin is a console staff account. Authentication tokens are issued by
// the identity service; this module only manages the accounts.
type Admin struct {
	ID           uuid.UUID    `json:"id" gorm:"type:uuid;primaryKey"`
	Name         string       `json:"name" gorm:"not null;size:100"`
	Email        string       `json:"email" gorm:"uniqueIndex;not null;size:255"`
	PasswordHash string       `json:"-" gorm:"not null;size:255"`
	Role         session.Role `json:"role" gorm:"not null;size:30"`
	LocationID   int64        `json:"location_id" gorm:"index"`
	IsLocked     bool         `json:"is_locked" gorm:"not null;default:false"`
	CreatedAt    time.Time    `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time    `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Admin) TableName() string {
	return "admins"
}

func (a *Admin) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

type AdminResponse struct {
	ID         uuid.UUID    `json:"id"`
	Name       string       `json:"name"`
	Email      string       `json:"email"`
	Role       session.Role `json:"role"`
	LocationID int64        `json:"location_id"`
	IsLocked   bool         `json:"is_locked"`
	CreatedAt  time.Time    `json:"created_at"`
}

func (a *Admin) ToResponse() AdminResponse {
	return AdminResponse{
		ID:         a.ID,
		Name:       a.Name,
		Email:      a.Email,
		Role:       a.Role,
		LocationID: a.LocationID,
		IsLocked:   a.IsLocked,
		CreatedAt:  a.CreatedAt,
	}
}

type CreateAdminRequest struct {
	Name       string `json:"name" binding:"required,min=2,max=100"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	Role       string `json:"role" binding:"required"`
	LocationID int64  `json:"location_id"`
}
