package admins

import (
	"testing"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"nextu/internal/shared/session"
)

type mockRepository struct {
	admins map[uuid.UUID]*Admin
}

func newMockRepository() *mockRepository {
	return &mockRepository{admins: make(map[uuid.UUID]*Admin)}
}

func (m *mockRepository) Create(admin *Admin) error {
	if admin.ID == uuid.Nil {
		admin.ID = uuid.New()
	}
	m.admins[admin.ID] = admin
	return nil
}

func (m *mockRepository) GetByID(id uuid.UUID) (*Admin, error) {
	admin, ok := m.admins[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return admin, nil
}

func (m *mockRepository) GetByEmail(email string) (*Admin, error) {
	for _, admin := range m.admins {
		if admin.Email == email {
			return admin, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRepository) GetAll() ([]Admin, error) {
	var out []Admin
	for _, admin := range m.admins {
		out = append(out, *admin)
	}
	return out, nil
}

func (m *mockRepository) SetLocked(id uuid.UUID, locked bool) (*Admin, error) {
	admin, ok := m.admins[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	admin.IsLocked = locked
	return admin, nil
}

func (m *mockRepository) Delete(id uuid.UUID) error {
	delete(m.admins, id)
	return nil
}

func TestCreateAdminHashesPassword(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo, nil)

	resp, err := svc.CreateAdmin(CreateAdminRequest{
		Name: "Linh Tran", Email: "Linh@NextU.vn", Password: "secret1", Role: "staff-content", LocationID: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Email != "linh@nextu.vn" {
		t.Errorf("expected normalized email, got %q", resp.Email)
	}

	stored := repo.admins[resp.ID]
	if stored.PasswordHash == "secret1" {
		t.Fatal("password must not be stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")); err != nil {
		t.Errorf("stored hash does not verify the original password: %v", err)
	}
}

func TestCreateAdminRejectsBadRole(t *testing.T) {
	svc := NewService(newMockRepository(), nil)

	_, err := svc.CreateAdmin(CreateAdminRequest{
		Name: "X", Email: "x@nextu.vn", Password: "secret1", Role: "janitor",
	})
	if err == nil {
		t.Fatal("expected unknown role error")
	}

	_, err = svc.CreateAdmin(CreateAdminRequest{
		Name: "X", Email: "x@nextu.vn", Password: "secret1", Role: "super-admin",
	})
	if err == nil {
		t.Fatal("expected super-admin creation to be rejected")
	}
}

func TestCreateAdminRejectsDuplicateEmail(t *testing.T) {
	svc := NewService(newMockRepository(), nil)

	_, err := svc.CreateAdmin(CreateAdminRequest{
		Name: "A", Email: "dup@nextu.vn", Password: "secret1", Role: "manager",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = svc.CreateAdmin(CreateAdminRequest{
		Name: "B", Email: "DUP@nextu.vn", Password: "secret2", Role: "manager",
	})
	if err == nil {
		t.Fatal("expected duplicate email error")
	}
}

func TestLockUnlockAdmin(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo, nil)

	created, err := svc.CreateAdmin(CreateAdminRequest{
		Name: "A", Email: "a@nextu.vn", Password: "secret1", Role: "staff-services",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	locked, err := svc.LockAdmin(created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !locked.IsLocked {
		t.Error("expected admin to be locked")
	}

	unlocked, err := svc.UnlockAdmin(created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if unlocked.IsLocked {
		t.Error("expected admin to be unlocked")
	}
}

func TestSuperAdminIsProtected(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo, nil)

	root := &Admin{Name: "Root", Email: "root@nextu.vn", PasswordHash: "x", Role: session.RoleSuperAdmin}
	repo.Create(root)

	if _, err := svc.LockAdmin(root.ID); err == nil {
		t.Error("expected super-admin lock to be rejected")
	}
	if err := svc.DeleteAdmin(root.ID); err == nil {
		t.Error("expected super-admin delete to be rejected")
	}
}
