package database

import (
	"nextu/internal/admins"
	"nextu/internal/categories"
	"nextu/internal/events"
	"nextu/internal/levels"
	"nextu/internal/memberships"
	"nextu/internal/rooms"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&categories.Category{},
		&levels.Level{},
		&events.Event{},
		&events.PendingEvent{},
		&rooms.RoomAttribute{},
		&rooms.RoomType{},
		&rooms.Room{},
		&admins.Admin{},
		&memberships.MembershipRequest{},
	)
}
