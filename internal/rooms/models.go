package rooms

import "time"

// Attribute kinds. The room dashboard joins the four enumerations.
const (
	AttributeSize    = "size"
	AttributeView    = "view"
	AttributeFloor   = "floor"
	AttributeBedType = "bed_type"
)

// Room statuses.
const (
	RoomStatusAvailable   = "available"
	RoomStatusOccupied    = "occupied"
	RoomStatusMaintenance = "maintenance"
)

// RoomAttribute is one entry of an attribute enumeration (a size, a
// view, a floor or a bed type), discriminated by Kind.
type RoomAttribute struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Kind      string    `json:"kind" gorm:"not null;index;size:20"`
	Name      string    `json:"name" gorm:"not null;size:100"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (RoomAttribute) TableName() string {
	return "room_attributes"
}

type RoomType struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"not null;size:100"`
	Description string    `json:"description" gorm:"size:500"`
	SizeID      int64     `json:"size_id" gorm:"not null"`
	ViewID      int64     `json:"view_id" gorm:"not null"`
	FloorID     int64     `json:"floor_id" gorm:"not null"`
	BedTypeID   int64     `json:"bed_type_id" gorm:"not null"`
	Capacity    int       `json:"capacity" gorm:"not null;default:1"`
	Price       int64     `json:"price" gorm:"not null;default:0"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (RoomType) TableName() string {
	return "room_types"
}

// Room is a physical room instance at a location. Number is unique per
// location.
type Room struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Number     string    `json:"number" gorm:"not null;size:20"`
	RoomTypeID int64     `json:"room_type_id" gorm:"not null;index"`
	LocationID int64     `json:"location_id" gorm:"not null;index"`
	Status     string    `json:"status" gorm:"not null;default:available;size:20"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Room) TableName() string {
	return "rooms"
}

func ValidAttributeKind(kind string) bool {
	switch kind {
	case AttributeSize, AttributeView, AttributeFloor, AttributeBedType:
		return true
	}
	return false
}

func ValidRoomStatus(status string) bool {
	switch status {
	case RoomStatusAvailable, RoomStatusOccupied, RoomStatusMaintenance:
		return true
	}
	return false
}
