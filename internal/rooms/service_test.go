package rooms

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"
)

// mockRepository is an in-memory Repository for service tests.
type mockRepository struct {
	attrs     map[int64]*RoomAttribute
	roomTypes map[int64]*RoomType
	rooms     map[int64]*Room
	nextID    int64

	attrsByKindErr map[string]error
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		attrs:          make(map[int64]*RoomAttribute),
		roomTypes:      make(map[int64]*RoomType),
		rooms:          make(map[int64]*Room),
		attrsByKindErr: make(map[string]error),
	}
}

func (m *mockRepository) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *mockRepository) CreateAttribute(attr *RoomAttribute) error {
	attr.ID = m.id()
	m.attrs[attr.ID] = attr
	return nil
}

func (m *mockRepository) GetAttributeByID(id int64) (*RoomAttribute, error) {
	attr, ok := m.attrs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return attr, nil
}

func (m *mockRepository) GetAttributesByKind(kind string) ([]RoomAttribute, error) {
	if err := m.attrsByKindErr[kind]; err != nil {
		return nil, err
	}
	var out []RoomAttribute
	for _, attr := range m.attrs {
		if attr.Kind == kind {
			out = append(out, *attr)
		}
	}
	return out, nil
}

func (m *mockRepository) UpdateAttribute(id int64, updates map[string]interface{}) (*RoomAttribute, error) {
	attr, ok := m.attrs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if name, ok := updates["name"].(string); ok {
		attr.Name = name
	}
	return attr, nil
}

func (m *mockRepository) DeleteAttribute(id int64) error {
	delete(m.attrs, id)
	return nil
}

func (m *mockRepository) CountRoomTypeReferences(attr *RoomAttribute) (int64, error) {
	var count int64
	for _, rt := range m.roomTypes {
		switch attr.Kind {
		case AttributeSize:
			if rt.SizeID == attr.ID {
				count++
			}
		case AttributeView:
			if rt.ViewID == attr.ID {
				count++
			}
		case AttributeFloor:
			if rt.FloorID == attr.ID {
				count++
			}
		case AttributeBedType:
			if rt.BedTypeID == attr.ID {
				count++
			}
		}
	}
	return count, nil
}

func (m *mockRepository) CreateRoomType(roomType *RoomType) error {
	roomType.ID = m.id()
	m.roomTypes[roomType.ID] = roomType
	return nil
}

func (m *mockRepository) GetRoomTypeByID(id int64) (*RoomType, error) {
	rt, ok := m.roomTypes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return rt, nil
}

func (m *mockRepository) GetAllRoomTypes() ([]RoomType, error) {
	var out []RoomType
	for _, rt := range m.roomTypes {
		out = append(out, *rt)
	}
	return out, nil
}

func (m *mockRepository) UpdateRoomType(id int64, updates map[string]interface{}) (*RoomType, error) {
	rt, ok := m.roomTypes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if name, ok := updates["name"].(string); ok {
		rt.Name = name
	}
	return rt, nil
}

func (m *mockRepository) DeleteRoomType(id int64) error {
	delete(m.roomTypes, id)
	return nil
}

func (m *mockRepository) CountRoomsOfType(roomTypeID int64) (int64, error) {
	var count int64
	for _, room := range m.rooms {
		if room.RoomTypeID == roomTypeID {
			count++
		}
	}
	return count, nil
}

func (m *mockRepository) CreateRoom(room *Room) error {
	room.ID = m.id()
	m.rooms[room.ID] = room
	return nil
}

func (m *mockRepository) GetRoomByID(id int64) (*Room, error) {
	room, ok := m.rooms[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return room, nil
}

func (m *mockRepository) GetRoomByNumber(locationID int64, number string) (*Room, error) {
	for _, room := range m.rooms {
		if room.LocationID == locationID && room.Number == number {
			return room, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRepository) GetAllRooms(query RoomListQuery) ([]Room, error) {
	var out []Room
	for _, room := range m.rooms {
		if query.LocationID > 0 && room.LocationID != query.LocationID {
			continue
		}
		if query.Status != "" && room.Status != query.Status {
			continue
		}
		out = append(out, *room)
	}
	return out, nil
}

func (m *mockRepository) UpdateRoom(id int64, updates map[string]interface{}) (*Room, error) {
	room, ok := m.rooms[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if number, ok := updates["number"].(string); ok {
		room.Number = number
	}
	if status, ok := updates["status"].(string); ok {
		room.Status = status
	}
	return room, nil
}

func (m *mockRepository) DeleteRoom(id int64) error {
	delete(m.rooms, id)
	return nil
}

func seedAttributes(repo *mockRepository) (size, view, floor, bed int64) {
	s := &RoomAttribute{Kind: AttributeSize, Name: "Studio"}
	v := &RoomAttribute{Kind: AttributeView, Name: "City"}
	f := &RoomAttribute{Kind: AttributeFloor, Name: "High"}
	b := &RoomAttribute{Kind: AttributeBedType, Name: "Queen"}
	repo.CreateAttribute(s)
	repo.CreateAttribute(v)
	repo.CreateAttribute(f)
	repo.CreateAttribute(b)
	return s.ID, v.ID, f.ID, b.ID
}

func TestDashboardJoinsAllKinds(t *testing.T) {
	repo := newMockRepository()
	seedAttributes(repo)
	svc := NewService(repo, nil)

	dashboard := svc.GetDashboard(context.Background())

	if len(dashboard.Sizes) != 1 || len(dashboard.Views) != 1 || len(dashboard.Floors) != 1 || len(dashboard.BedTypes) != 1 {
		t.Errorf("expected one attribute per kind, got %d/%d/%d/%d",
			len(dashboard.Sizes), len(dashboard.Views), len(dashboard.Floors), len(dashboard.BedTypes))
	}
	if len(dashboard.Notices) != 0 {
		t.Errorf("expected no notices, got %v", dashboard.Notices)
	}
}

func TestDashboardPartialFailure(t *testing.T) {
	repo := newMockRepository()
	seedAttributes(repo)
	repo.attrsByKindErr[AttributeView] = errors.New("db down")
	svc := NewService(repo, nil)

	dashboard := svc.GetDashboard(context.Background())

	if len(dashboard.Views) != 0 {
		t.Errorf("expected empty views on failure, got %d", len(dashboard.Views))
	}
	if len(dashboard.Sizes) != 1 || len(dashboard.Floors) != 1 || len(dashboard.BedTypes) != 1 {
		t.Error("a failed kind must not block the others")
	}
	if len(dashboard.Notices) != 1 || dashboard.Notices[0] != "failed to load view attributes" {
		t.Errorf("expected a single view notice, got %v", dashboard.Notices)
	}
}

func TestCreateRoomTypeChecksAttributeKinds(t *testing.T) {
	repo := newMockRepository()
	size, view, floor, bed := seedAttributes(repo)
	svc := NewService(repo, nil)

	_, err := svc.CreateRoomType(CreateRoomTypeRequest{
		Name: "Deluxe", SizeID: size, ViewID: view, FloorID: floor, BedTypeID: bed, Capacity: 2, Price: 500,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// swap in an attribute of the wrong kind
	_, err = svc.CreateRoomType(CreateRoomTypeRequest{
		Name: "Broken", SizeID: view, ViewID: view, FloorID: floor, BedTypeID: bed, Capacity: 2,
	})
	if err == nil {
		t.Fatal("expected kind mismatch error")
	}

	_, err = svc.CreateRoomType(CreateRoomTypeRequest{
		Name: "Missing", SizeID: 999, ViewID: view, FloorID: floor, BedTypeID: bed, Capacity: 2,
	})
	if err == nil {
		t.Fatal("expected missing attribute error")
	}
}

func TestDeleteAttributeBlockedWhileReferenced(t *testing.T) {
	repo := newMockRepository()
	size, view, floor, bed := seedAttributes(repo)
	svc := NewService(repo, nil)

	_, err := svc.CreateRoomType(CreateRoomTypeRequest{
		Name: "Deluxe", SizeID: size, ViewID: view, FloorID: floor, BedTypeID: bed, Capacity: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.DeleteAttribute(context.Background(), size); err == nil {
		t.Fatal("expected delete to be blocked while a room type references the attribute")
	}
}

func TestCreateRoomEnforcesUniqueNumberPerLocation(t *testing.T) {
	repo := newMockRepository()
	size, view, floor, bed := seedAttributes(repo)
	svc := NewService(repo, nil)

	roomType, err := svc.CreateRoomType(CreateRoomTypeRequest{
		Name: "Deluxe", SizeID: size, ViewID: view, FloorID: floor, BedTypeID: bed, Capacity: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = svc.CreateRoom(CreateRoomRequest{Number: "101", RoomTypeID: roomType.ID, LocationID: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = svc.CreateRoom(CreateRoomRequest{Number: "101", RoomTypeID: roomType.ID, LocationID: 1})
	if err == nil {
		t.Fatal("expected duplicate room number to be rejected")
	}

	// same number at a different location is fine
	_, err = svc.CreateRoom(CreateRoomRequest{Number: "101", RoomTypeID: roomType.ID, LocationID: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteRoomTypeBlockedWhileRoomsExist(t *testing.T) {
	repo := newMockRepository()
	size, view, floor, bed := seedAttributes(repo)
	svc := NewService(repo, nil)

	roomType, err := svc.CreateRoomType(CreateRoomTypeRequest{
		Name: "Deluxe", SizeID: size, ViewID: view, FloorID: floor, BedTypeID: bed, Capacity: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.CreateRoom(CreateRoomRequest{Number: "101", RoomTypeID: roomType.ID, LocationID: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.DeleteRoomType(roomType.ID); err == nil {
		t.Fatal("expected delete to be blocked while rooms use the type")
	}
}

func TestCreateRoomDefaultsToAvailable(t *testing.T) {
	repo := newMockRepository()
	size, view, floor, bed := seedAttributes(repo)
	svc := NewService(repo, nil)

	roomType, _ := svc.CreateRoomType(CreateRoomTypeRequest{
		Name: "Deluxe", SizeID: size, ViewID: view, FloorID: floor, BedTypeID: bed, Capacity: 2,
	})

	room, err := svc.CreateRoom(CreateRoomRequest{Number: "202", RoomTypeID: roomType.ID, LocationID: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if room.Status != RoomStatusAvailable {
		t.Errorf("expected default status %q, got %q", RoomStatusAvailable, room.Status)
	}
}
