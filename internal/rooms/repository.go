package rooms

import (
	"gorm.io/gorm"
)

type Repository interface {
	CreateAttribute(attr *RoomAttribute) error
	GetAttributeByID(id int64) (*RoomAttribute, error)
	GetAttributesByKind(kind string) ([]RoomAttribute, error)
	UpdateAttribute(id int64, updates map[string]interface{}) (*RoomAttribute, error)
	DeleteAttribute(id int64) error
	CountRoomTypeReferences(attr *RoomAttribute) (int64, error)

	CreateRoomType(roomType *RoomType) error
	GetRoomTypeByID(id int64) (*RoomType, error)
	GetAllRoomTypes() ([]RoomType, error)
	UpdateRoomType(id int64, updates map[string]interface{}) (*RoomType, error)
	DeleteRoomType(id int64) error
	CountRoomsOfType(roomTypeID int64) (int64, error)

	CreateRoom(room *Room) error
	GetRoomByID(id int64) (*Room, error)
	GetRoomByNumber(locationID int64, number string) (*Room, error)
	GetAllRooms(query RoomListQuery) ([]Room, error)
	UpdateRoom(id int64, updates map[string]interface{}) (*Room, error)
	DeleteRoom(id int64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateAttribute(attr *RoomAttribute) error {
	return r.db.Create(attr).Error
}

func (r *repository) GetAttributeByID(id int64) (*RoomAttribute, error) {
	var attr RoomAttribute
	if err := r.db.Where("id = ?", id).First(&attr).Error; err != nil {
		return nil, err
	}
	return &attr, nil
}

func (r *repository) GetAttributesByKind(kind string) ([]RoomAttribute, error) {
	var attrs []RoomAttribute
	err := r.db.Where("kind = ?", kind).Order("id ASC").Find(&attrs).Error
	return attrs, err
}

func (r *repository) UpdateAttribute(id int64, updates map[string]interface{}) (*RoomAttribute, error) {
	var attr RoomAttribute

	if err := r.db.Where("id = ?", id).First(&attr).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&attr).Updates(updates).Error; err != nil {
		return nil, err
	}

	if err := r.db.Where("id = ?", id).First(&attr).Error; err != nil {
		return nil, err
	}

	return &attr, nil
}

func (r *repository) DeleteAttribute(id int64) error {
	return r.db.Where("id = ?", id).Delete(&RoomAttribute{}).Error
}

// CountRoomTypeReferences counts room types pointing at the attribute
// through whichever foreign key matches its kind.
func (r *repository) CountRoomTypeReferences(attr *RoomAttribute) (int64, error) {
	var column string
	switch attr.Kind {
	case AttributeSize:
		column = "size_id"
	case AttributeView:
		column = "view_id"
	case AttributeFloor:
		column = "floor_id"
	case AttributeBedType:
		column = "bed_type_id"
	default:
		return 0, nil
	}

	var count int64
	err := r.db.Model(&RoomType{}).Where(column+" = ?", attr.ID).Count(&count).Error
	return count, err
}

func (r *repository) CreateRoomType(roomType *RoomType) error {
	return r.db.Create(roomType).Error
}

func (r *repository) GetRoomTypeByID(id int64) (*RoomType, error) {
	var roomType RoomType
	if err := r.db.Where("id = ?", id).First(&roomType).Error; err != nil {
		return nil, err
	}
	return &roomType, nil
}

func (r *repository) GetAllRoomTypes() ([]RoomType, error) {
	var roomTypes []RoomType
	err := r.db.Order("id ASC").Find(&roomTypes).Error
	return roomTypes, err
}

func (r *repository) UpdateRoomType(id int64, updates map[string]interface{}) (*RoomType, error) {
	var roomType RoomType

	if err := r.db.Where("id = ?", id).First(&roomType).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&roomType).Updates(updates).Error; err != nil {
		return nil, err
	}

	if err := r.db.Where("id = ?", id).First(&roomType).Error; err != nil {
		return nil, err
	}

	return &roomType, nil
}

func (r *repository) DeleteRoomType(id int64) error {
	return r.db.Where("id = ?", id).Delete(&RoomType{}).Error
}

func (r *repository) CountRoomsOfType(roomTypeID int64) (int64, error) {
	var count int64
	err := r.db.Model(&Room{}).Where("room_type_id = ?", roomTypeID).Count(&count).Error
	return count, err
}

func (r *repository) CreateRoom(room *Room) error {
	return r.db.Create(room).Error
}

func (r *repository) GetRoomByID(id int64) (*Room, error) {
	var room Room
	if err := r.db.Where("id = ?", id).First(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *repository) GetRoomByNumber(locationID int64, number string) (*Room, error) {
	var room Room
	if err := r.db.Where("location_id = ? AND number = ?", locationID, number).First(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *repository) GetAllRooms(query RoomListQuery) ([]Room, error) {
	var list []Room

	db := r.db.Model(&Room{})
	if query.LocationID > 0 {
		db = db.Where("location_id = ?", query.LocationID)
	}
	if query.RoomTypeID > 0 {
		db = db.Where("room_type_id = ?", query.RoomTypeID)
	}
	if query.Status != "" {
		db = db.Where("status = ?", query.Status)
	}

	err := db.Order("number ASC").Find(&list).Error
	return list, err
}

func (r *repository) UpdateRoom(id int64, updates map[string]interface{}) (*Room, error) {
	var room Room

	if err := r.db.Where("id = ?", id).First(&room).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&room).Updates(updates).Error; err != nil {
		return nil, err
	}

	if err := r.db.Where("id = ?", id).First(&room).Error; err != nil {
		return nil, err
	}

	return &room, nil
}

func (r *repository) DeleteRoom(id int64) error {
	return r.db.Where("id = ?", id).Delete(&Room{}).Error
}
