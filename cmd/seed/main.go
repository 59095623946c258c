package main

import (
	"fmt"
	"log"

	"nextu/internal/admins"
	"nextu/internal/categories"
	"nextu/internal/levels"
	"nextu/internal/memberships"
	"nextu/internal/rooms"
	"nextu/internal/shared/config"
	"nextu/internal/shared/database"
	"nextu/internal/shared/session"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting Next U Database Seeder...")

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	fmt.Println("\n🎉 Database seeded successfully!")
}

func (s *Seeder) CleanDatabase() error {
	pg := s.db.GetPostgreSQL()

	tables := []string{
		"membership_requests",
		"rooms",
		"room_types",
		"room_attributes",
		"events",
		"pending_events",
		"event_levels",
		"event_categories",
		"admins",
	}
	for _, table := range tables {
		if err := pg.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)).Error; err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
	}
	return nil
}

func (s *Seeder) SeedAll() error {
	if err := s.SeedAdmins(); err != nil {
		return err
	}
	if err := s.SeedCategories(); err != nil {
		return err
	}
	if err := s.SeedLevels(); err != nil {
		return err
	}
	if err := s.SeedRoomAttributes(); err != nil {
		return err
	}
	if err := s.SeedMembershipRequests(); err != nil {
		return err
	}
	return nil
}

func (s *Seeder) SeedAdmins() error {
	fmt.Println("  👤 Seeding admin accounts...")
	pg := s.db.GetPostgreSQL()

	hash, err := bcrypt.GenerateFromPassword([]byte("ChangeMe123!"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	accounts := []admins.Admin{
		{
			ID:           uuid.New(),
			Name:         "Root Administrator",
			Email:        "root@nextu.vn",
			PasswordHash: string(hash),
			Role:         session.RoleSuperAdmin,
			LocationID:   1,
		},
		{
			ID:           uuid.New(),
			Name:         "Thao Nguyen",
			Email:        "thao.nguyen@nextu.vn",
			PasswordHash: string(hash),
			Role:         session.RoleAdmin,
			LocationID:   1,
		},
		{
			ID:           uuid.New(),
			Name:         "Duc Le",
			Email:        "duc.le@nextu.vn",
			PasswordHash: string(hash),
			Role:         session.RoleStaffContent,
			LocationID:   1,
		},
	}

	for i := range accounts {
		if err := pg.Create(&accounts[i]).Error; err != nil {
			return fmt.Errorf("failed to create admin %s: %w", accounts[i].Email, err)
		}
	}
	fmt.Printf("     Created %d admin accounts\n", len(accounts))
	return nil
}

func (s *Seeder) SeedCategories() error {
	fmt.Println("  🏷️  Seeding event categories...")
	pg := s.db.GetPostgreSQL()

	items := []categories.Category{
		{Name: "Wellness", Description: "Yoga, meditation and fitness sessions"},
		{Name: "Social", Description: "Community mixers and shared dinners"},
		{Name: "Workshop", Description: "Skill-building classes and talks"},
		{Name: "Outdoor", Description: "Trips and activities outside the property"},
	}
	for i := range items {
		if err := pg.Create(&items[i]).Error; err != nil {
			return fmt.Errorf("failed to create category %s: %w", items[i].Name, err)
		}
	}
	fmt.Printf("     Created %d categories\n", len(items))
	return nil
}

func (s *Seeder) SeedLevels() error {
	fmt.Println("  📶 Seeding event levels...")
	pg := s.db.GetPostgreSQL()

	items := []levels.Level{
		{Name: "Beginner", Description: "No prior experience needed"},
		{Name: "Intermediate", Description: "Some familiarity expected"},
		{Name: "Advanced", Description: "For experienced participants"},
	}
	for i := range items {
		if err := pg.Create(&items[i]).Error; err != nil {
			return fmt.Errorf("failed to create level %s: %w", items[i].Name, err)
		}
	}
	fmt.Printf("     Created %d levels\n", len(items))
	return nil
}

func (s *Seeder) SeedRoomAttributes() error {
	fmt.Println("  🛏️  Seeding room attributes...")
	pg := s.db.GetPostgreSQL()

	attributes := []rooms.RoomAttribute{
		{Kind: rooms.AttributeSize, Name: "Studio"},
		{Kind: rooms.AttributeSize, Name: "One Bedroom"},
		{Kind: rooms.AttributeSize, Name: "Two Bedroom"},
		{Kind: rooms.AttributeView, Name: "City View"},
		{Kind: rooms.AttributeView, Name: "Garden View"},
		{Kind: rooms.AttributeFloor, Name: "Low Floor"},
		{Kind: rooms.AttributeFloor, Name: "High Floor"},
		{Kind: rooms.AttributeBedType, Name: "Single"},
		{Kind: rooms.AttributeBedType, Name: "Queen"},
		{Kind: rooms.AttributeBedType, Name: "Twin"},
	}
	for i := range attributes {
		if err := pg.Create(&attributes[i]).Error; err != nil {
			return fmt.Errorf("failed to create room attribute %s: %w", attributes[i].Name, err)
		}
	}
	fmt.Printf("     Created %d room attributes\n", len(attributes))
	return nil
}

func (s *Seeder) SeedMembershipRequests() error {
	fmt.Println("  📨 Seeding membership requests...")
	pg := s.db.GetPostgreSQL()

	requests := []memberships.MembershipRequest{
		{
			ResidentName: "Lan Pham",
			Email:        "lan.pham@example.com",
			Phone:        "+84 90 123 4567",
			PackageName:  "Premium Living",
			LocationID:   1,
			Status:       memberships.StatusPending,
		},
		{
			ResidentName: "Minh Tran",
			Email:        "minh.tran@example.com",
			PackageName:  "Standard",
			LocationID:   1,
			Status:       memberships.StatusPending,
		},
	}
	for i := range requests {
		if err := pg.Create(&requests[i]).Error; err != nil {
			return fmt.Errorf("failed to create membership request for %s: %w", requests[i].Email, err)
		}
	}
	fmt.Printf("     Created %d membership requests\n", len(requests))
	return nil
}
