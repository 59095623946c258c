package levels

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

type Service interface {
	CreateLevel(req CreateLevelRequest) (*LevelResponse, error)
	GetLevelByID(id int64) (*LevelResponse, error)
	UpdateLevel(id int64, req UpdateLevelRequest) (*LevelResponse, error)
	DeleteLevel(id int64) error
	GetAllLevels() ([]LevelResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateLevel(req CreateLevelRequest) (*LevelResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.New("level name cannot be empty")
	}

	existing, err := s.repo.GetByName(name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing level: %w", err)
	}
	if existing != nil {
		return nil, errors.New("a level with this name already exists")
	}

	level := &Level{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
	}

	if err := s.repo.Create(level); err != nil {
		return nil, fmt.Errorf("failed to create level: %w", err)
	}

	resp := level.ToResponse()
	return &resp, nil
}

func (s *service) GetLevelByID(id int64) (*LevelResponse, error) {
	level, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("level not found")
		}
		return nil, fmt.Errorf("failed to get level: %w", err)
	}

	resp := level.ToResponse()
	return &resp, nil
}

func (s *service) UpdateLevel(id int64, req UpdateLevelRequest) (*LevelResponse, error) {
	current, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("level not found")
		}
		return nil, fmt.Errorf("failed to get level: %w", err)
	}

	updates := make(map[string]interface{})

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, errors.New("level name cannot be empty")
		}
		if name != current.Name {
			existing, err := s.repo.GetByName(name)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("failed to check existing level: %w", err)
			}
			if existing != nil && existing.ID != current.ID {
				return nil, errors.New("a level with this name already exists")
			}
		}
		updates["name"] = name
	}

	if req.Description != nil {
		updates["description"] = strings.TrimSpace(*req.Description)
	}

	updated, err := s.repo.Update(id, updates)
	if err != nil {
		return nil, fmt.Errorf("failed to update level: %w", err)
	}

	resp := updated.ToResponse()
	return &resp, nil
}

func (s *service) DeleteLevel(id int64) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("level not found")
		}
		return fmt.Errorf("failed to get level: %w", err)
	}

	refs, err := s.repo.CountEventReferences(id)
	if err != nil {
		return fmt.Errorf("failed to check level usage: %w", err)
	}
	if refs > 0 {
		return fmt.Errorf("cannot delete level as it is referenced by %d event(s)", refs)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete level: %w", err)
	}

	return nil
}

func (s *service) GetAllLevels() ([]LevelResponse, error) {
	lvls, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get levels: %w", err)
	}

	responses := make([]LevelResponse, len(lvls))
	for i, l := range lvls {
		responses[i] = l.ToResponse()
	}

	return responses, nil
}
