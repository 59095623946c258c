package categories

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

type Service interface {
	CreateCategory(req CreateCategoryRequest) (*CategoryResponse, error)
	GetCategoryByID(id int64) (*CategoryResponse, error)
	UpdateCategory(id int64, req UpdateCategoryRequest) (*CategoryResponse, error)
	DeleteCategory(id int64) error
	GetAllCategories() ([]CategoryResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateCategory(req CreateCategoryRequest) (*CategoryResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.New("category name cannot be empty")
	}

	existing, err := s.repo.GetByName(name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing category: %w", err)
	}
	if existing != nil {
		return nil, errors.New("a category with this name already exists")
	}

	category := &Category{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
	}

	if err := s.repo.Create(category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	resp := category.ToResponse()
	return &resp, nil
}

func (s *service) GetCategoryByID(id int64) (*CategoryResponse, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("category not found")
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	resp := category.ToResponse()
	return &resp, nil
}

func (s *service) UpdateCategory(id int64, req UpdateCategoryRequest) (*CategoryResponse, error) {
	current, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("category not found")
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	updates := make(map[string]interface{})

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, errors.New("category name cannot be empty")
		}
		if name != current.Name {
			existing, err := s.repo.GetByName(name)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("failed to check existing category: %w", err)
			}
			if existing != nil && existing.ID != current.ID {
				return nil, errors.New("a category with this name already exists")
			}
		}
		updates["name"] = name
	}

	if req.Description != nil {
		updates["description"] = strings.TrimSpace(*req.Description)
	}

	updated, err := s.repo.Update(id, updates)
	if err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	resp := updated.ToResponse()
	return &resp, nil
}

func (s *service) DeleteCategory(id int64) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("category not found")
		}
		return fmt.Errorf("failed to get category: %w", err)
	}

	refs, err := s.repo.CountEventReferences(id)
	if err != nil {
		return fmt.Errorf("failed to check category usage: %w", err)
	}
	if refs > 0 {
		return fmt.Errorf("cannot delete category as it is referenced by %d event(s)", refs)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	return nil
}

func (s *service) GetAllCategories() ([]CategoryResponse, error) {
	cats, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	responses := make([]CategoryResponse, len(cats))
	for i, c := range cats {
		responses[i] = c.ToResponse()
	}

	return responses, nil
}
