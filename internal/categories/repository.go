package categories

import (
	"gorm.io/gorm"
)

type Repository interface {
	Create(category *Category) error
	GetByID(id int64) (*Category, error)
	GetByName(name string) (*Category, error)
	Update(id int64, updates map[string]interface{}) (*Category, error)
	Delete(id int64) error
	GetAll() ([]Category, error)
	CountEventReferences(id int64) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(category *Category) error {
	return r.db.Create(category).Error
}

func (r *repository) GetByID(id int64) (*Category, error) {
	var category Category
	err := r.db.Where("id = ?", id).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *repository) GetByName(name string) (*Category, error) {
	var category Category
	err := r.db.Where("name = ?", name).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *repository) Update(id int64, updates map[string]interface{}) (*Category, error) {
	var category Category

	if err := r.db.Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&category).Updates(updates).Error; err != nil {
		return nil, err
	}

	if err := r.db.Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}

	return &category, nil
}

func (r *repository) Delete(id int64) error {
	return r.db.Where("id = ?", id).Delete(&Category{}).Error
}

func (r *repository) GetAll() ([]Category, error) {
	var cats []Category
	err := r.db.Order("name ASC").Find(&cats).Error
	return cats, err
}

// CountEventReferences counts published and pending events that reference
// the category.
func (r *repository) CountEventReferences(id int64) (int64, error) {
	var total int64

	var published int64
	if err := r.db.Table("events").Where("category_id = ?", id).Count(&published).Error; err != nil {
		return 0, err
	}
	total += published

	var pending int64
	if err := r.db.Table("pending_events").Where("category_id = ?", id).Count(&pending).Error; err != nil {
		return 0, err
	}
	total += pending

	return total, nil
}
