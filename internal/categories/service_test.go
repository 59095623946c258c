package categories

import (
	"strings"
	"testing"

	"gorm.io/gorm"
)

type mockRepository struct {
	nextID     int64
	categories map[int64]*Category
	eventRefs  map[int64]int64
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		nextID:     1,
		categories: make(map[int64]*Category),
		eventRefs:  make(map[int64]int64),
	}
}

func (m *mockRepository) Create(category *Category) error {
	category.ID = m.nextID
	m.nextID++
	clone := *category
	m.categories[category.ID] = &clone
	return nil
}

func (m *mockRepository) GetByID(id int64) (*Category, error) {
	category, ok := m.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *category
	return &clone, nil
}

func (m *mockRepository) GetByName(name string) (*Category, error) {
	for _, category := range m.categories {
		if strings.EqualFold(category.Name, name) {
			clone := *category
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRepository) Update(id int64, updates map[string]interface{}) (*Category, error) {
	category, ok := m.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if name, ok := updates["name"].(string); ok {
		category.Name = name
	}
	if description, ok := updates["description"].(string); ok {
		category.Description = description
	}
	clone := *category
	return &clone, nil
}

func (m *mockRepository) Delete(id int64) error {
	if _, ok := m.categories[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.categories, id)
	return nil
}

func (m *mockRepository) GetAll() ([]Category, error) {
	var out []Category
	for _, category := range m.categories {
		out = append(out, *category)
	}
	return out, nil
}

func (m *mockRepository) CountEventReferences(id int64) (int64, error) {
	return m.eventRefs[id], nil
}

func TestCreateCategory(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateCategoryRequest
		wantErr string
	}{
		{
			name: "valid category",
			req:  CreateCategoryRequest{Name: "Wellness", Description: "Yoga and fitness"},
		},
		{
			name:    "empty name",
			req:     CreateCategoryRequest{Name: "   "},
			wantErr: "name cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(newMockRepository())
			created, err := svc.CreateCategory(tt.req)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if created.Name != "Wellness" {
				t.Errorf("expected name Wellness, got %q", created.Name)
			}
		})
	}
}

func TestCreateCategoryRejectsDuplicateName(t *testing.T) {
	svc := NewService(newMockRepository())

	if _, err := svc.CreateCategory(CreateCategoryRequest{Name: "Social"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := svc.CreateCategory(CreateCategoryRequest{Name: "Social"})
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected duplicate name error, got %v", err)
	}
}

func TestCreateCategoryTrimsWhitespace(t *testing.T) {
	svc := NewService(newMockRepository())

	created, err := svc.CreateCategory(CreateCategoryRequest{Name: "  Workshop  ", Description: "  Classes  "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Name != "Workshop" {
		t.Errorf("expected trimmed name, got %q", created.Name)
	}
	if created.Description != "Classes" {
		t.Errorf("expected trimmed description, got %q", created.Description)
	}
}

func TestUpdateCategory(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)

	created, err := svc.CreateCategory(CreateCategoryRequest{Name: "Outdoor"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	newName := "Outdoor Activities"
	updated, err := svc.UpdateCategory(created.ID, UpdateCategoryRequest{Name: &newName})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "Outdoor Activities" {
		t.Errorf("expected updated name, got %q", updated.Name)
	}

	empty := "  "
	if _, err := svc.UpdateCategory(created.ID, UpdateCategoryRequest{Name: &empty}); err == nil {
		t.Error("expected error for empty name update")
	}
}

func TestUpdateCategoryKeepingOwnNameIsAllowed(t *testing.T) {
	svc := NewService(newMockRepository())

	created, err := svc.CreateCategory(CreateCategoryRequest{Name: "Wellness"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	same := "Wellness"
	description := "Updated description"
	updated, err := svc.UpdateCategory(created.ID, UpdateCategoryRequest{Name: &same, Description: &description})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Description != "Updated description" {
		t.Errorf("expected updated description, got %q", updated.Description)
	}
}

func TestDeleteCategoryBlockedWhileReferenced(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)

	created, err := svc.CreateCategory(CreateCategoryRequest{Name: "Social"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	repo.eventRefs[created.ID] = 3
	err = svc.DeleteCategory(created.ID)
	if err == nil || !strings.Contains(err.Error(), "referenced by 3 event(s)") {
		t.Fatalf("expected reference error, got %v", err)
	}

	repo.eventRefs[created.ID] = 0
	if err := svc.DeleteCategory(created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.GetCategoryByID(created.ID); err == nil {
		t.Error("expected category to be gone after delete")
	}
}

func TestGetCategoryByIDNotFound(t *testing.T) {
	svc := NewService(newMockRepository())

	_, err := svc.GetCategoryByID(42)
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not found error, got %v", err)
	}
}
