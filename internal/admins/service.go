package admins

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"nextu/internal/shared/session"
	"nextu/pkg/logger"
)

type Service interface {
	CreateAdmin(req CreateAdminRequest) (*AdminResponse, error)
	GetAdminByID(id uuid.UUID) (*AdminResponse, error)
	GetAllAdmins() ([]AdminResponse, error)
	LockAdmin(id uuid.UUID) (*AdminResponse, error)
	UnlockAdmin(id uuid.UUID) (*AdminResponse, error)
	DeleteAdmin(id uuid.UUID) error
}

type service struct {
	repo   Repository
	logger *logger.Logger
}

func NewService(repo Repository, log *logger.Logger) Service {
	return &service{repo: repo, logger: log}
}

func (s *service) CreateAdmin(req CreateAdminRequest) (*AdminResponse, error) {
	role := session.Role(req.Role)
	if !role.Valid() {
		return nil, fmt.Errorf("unknown role %q", req.Role)
	}
	if role == session.RoleSuperAdmin {
		return nil, errors.New("super-admin accounts cannot be created through the console")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	existing, err := s.repo.GetByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing admin: %w", err)
	}
	if existing != nil {
		return nil, errors.New("an admin with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &Admin{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		LocationID:   req.LocationID,
	}

	if err := s.repo.Create(admin); err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	resp := admin.ToResponse()
	return &resp, nil
}

func (s *service) GetAdminByID(id uuid.UUID) (*AdminResponse, error) {
	admin, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("admin not found")
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}

	resp := admin.ToResponse()
	return &resp, nil
}

func (s *service) GetAllAdmins() ([]AdminResponse, error) {
	list, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get admins: %w", err)
	}

	responses := make([]AdminResponse, len(list))
	for i := range list {
		responses[i] = list[i].ToResponse()
	}
	return responses, nil
}

func (s *service) LockAdmin(id uuid.UUID) (*AdminResponse, error) {
	return s.setLocked(id, true)
}

func (s *service) UnlockAdmin(id uuid.UUID) (*AdminResponse, error) {
	return s.setLocked(id, false)
}

func (s *service) setLocked(id uuid.UUID, locked bool) (*AdminResponse, error) {
	current, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("admin not found")
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}

	if current.Role == session.RoleSuperAdmin {
		return nil, errors.New("super-admin accounts cannot be locked")
	}

	admin, err := s.repo.SetLocked(id, locked)
	if err != nil {
		return nil, fmt.Errorf("failed to update admin lock state: %w", err)
	}

	if s.logger != nil {
		s.logger.LogAccountLockChange(context.Background(), id.String(), locked)
	}

	resp := admin.ToResponse()
	return &resp, nil
}

func (s *service) DeleteAdmin(id uuid.UUID) error {
	current, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("admin not found")
		}
		return fmt.Errorf("failed to get admin: %w", err)
	}

	if current.Role == session.RoleSuperAdmin {
		return errors.New("super-admin accounts cannot be deleted")
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete admin: %w", err)
	}
	return nil
}
