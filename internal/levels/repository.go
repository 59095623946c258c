package levels

import (
	"gorm.io/gorm"
)

type Repository interface {
	Create(level *Level) error
	GetByID(id int64) (*Level, error)
	GetByName(name string) (*Level, error)
	Update(id int64, updates map[string]interface{}) (*Level, error)
	Delete(id int64) error
	GetAll() ([]Level, error)
	CountEventReferences(id int64) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(level *Level) error {
	return r.db.Create(level).Error
}

func (r *repository) GetByID(id int64) (*Level, error) {
	var level Level
	err := r.db.Where("id = ?", id).First(&level).Error
	if err != nil {
		return nil, err
	}
	return &level, nil
}

func (r *repository) GetByName(name string) (*Level, error) {
	var level Level
	err := r.db.Where("name = ?", name).First(&level).Error
	if err != nil {
		return nil, err
	}
	return &level, nil
}

func (r *repository) Update(id int64, updates map[string]interface{}) (*Level, error) {
	var level Level

	if err := r.db.Where("id = ?", id).First(&level).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&level).Updates(updates).Error; err != nil {
		return nil, err
	}

	if err := r.db.Where("id = ?", id).First(&level).Error; err != nil {
		return nil, err
	}

	return &level, nil
}

func (r *repository) Delete(id int64) error {
	return r.db.Where("id = ?", id).Delete(&Level{}).Error
}

func (r *repository) GetAll() ([]Level, error) {
	var lvls []Level
	err := r.db.Order("id ASC").Find(&lvls).Error
	return lvls, err
}

func (r *repository) CountEventReferences(id int64) (int64, error) {
	var total int64

	var published int64
	if err := r.db.Table("events").Where("level_id = ?", id).Count(&published).Error; err != nil {
		return 0, err
	}
	total += published

	var pending int64
	if err := r.db.Table("pending_events").Where("level_id = ?", id).Count(&pending).Error; err != nil {
		return 0, err
	}
	total += pending

	return total, nil
}
