package admins

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(admin *Admin) error
	GetByID(id uuid.UUID) (*Admin, error)
	GetByEmail(email string) (*Admin, error)
	GetAll() ([]Admin, error)
	SetLocked(id uuid.UUID, locked bool) (*Admin, error)
	Delete(id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(admin *Admin) error {
	return r.db.Create(admin).Error
}

func (r *repository) GetByID(id uuid.UUID) (*Admin, error) {
	var admin Admin
	if err := r.db.Where("id = ?", id).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *repository) GetByEmail(email string) (*Admin, error) {
	var admin Admin
	if err := r.db.Where("email = ?", email).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *repository) GetAll() ([]Admin, error) {
	var list []Admin
	err := r.db.Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *repository) SetLocked(id uuid.UUID, locked bool) (*Admin, error) {
	var admin Admin

	if err := r.db.Where("id = ?", id).First(&admin).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&admin).Updates(map[string]interface{}{"is_locked": locked}).Error; err != nil {
		return nil, err
	}

	admin.IsLocked = locked
	return &admin, nil
}

func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Where("id = ?", id).Delete(&Admin{}).Error
}
