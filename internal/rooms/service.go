package rooms

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"gorm.io/gorm"

	"nextu/internal/shared/constants"
	"nextu/pkg/cache"
)

type Service interface {
	CreateAttribute(ctx context.Context, req CreateAttributeRequest) (*AttributeResponse, error)
	GetAttributes(ctx context.Context, kind string) ([]AttributeResponse, error)
	UpdateAttribute(ctx context.Context, id int64, req UpdateAttributeRequest) (*AttributeResponse, error)
	DeleteAttribute(ctx context.Context, id int64) error
	GetDashboard(ctx context.Context) *Dashboard

	CreateRoomType(req CreateRoomTypeRequest) (*RoomType, error)
	GetAllRoomTypes() ([]RoomType, error)
	UpdateRoomType(id int64, req UpdateRoomTypeRequest) (*RoomType, error)
	DeleteRoomType(id int64) error

	CreateRoom(req CreateRoomRequest) (*Room, error)
	GetAllRooms(query RoomListQuery) ([]Room, error)
	UpdateRoom(id int64, req UpdateRoomRequest) (*Room, error)
	DeleteRoom(id int64) error
}

type service struct {
	repo  Repository
	cache cache.Service
}

func NewService(repo Repository, cacheService cache.Service) Service {
	return &service{repo: repo, cache: cacheService}
}

func (s *service) CreateAttribute(ctx context.Context, req CreateAttributeRequest) (*AttributeResponse, error) {
	attr := &RoomAttribute{
		Kind: req.Kind,
		Name: strings.TrimSpace(req.Name),
	}
	if attr.Name == "" {
		return nil, errors.New("attribute name cannot be empty")
	}

	if err := s.repo.CreateAttribute(attr); err != nil {
		return nil, fmt.Errorf("failed to create room attribute: %w", err)
	}

	s.invalidateAttributeCache(ctx, attr.Kind)

	resp := attr.ToResponse()
	return &resp, nil
}

func (s *service) GetAttributes(ctx context.Context, kind string) ([]AttributeResponse, error) {
	if !ValidAttributeKind(kind) {
		return nil, errors.New("invalid attribute kind")
	}
	return s.fetchAttributes(ctx, kind)
}

func (s *service) fetchAttributes(ctx context.Context, kind string) ([]AttributeResponse, error) {
	var responses []AttributeResponse

	if s.cache != nil {
		err := s.cache.GetOrSet(ctx, constants.BuildRoomAttributeKey(kind), constants.TTL_ROOM_ATTRIBUTES, func() (interface{}, error) {
			return s.loadAttributes(kind)
		}, &responses)
		if err == nil {
			return responses, nil
		}
		// fall through to the database on any cache trouble
	}

	return s.loadAttributes(kind)
}

func (s *service) loadAttributes(kind string) ([]AttributeResponse, error) {
	attrs, err := s.repo.GetAttributesByKind(kind)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s attributes: %w", kind, err)
	}
	responses := make([]AttributeResponse, len(attrs))
	for i := range attrs {
		responses[i] = attrs[i].ToResponse()
	}
	return responses, nil
}

func (s *service) UpdateAttribute(ctx context.Context, id int64, req UpdateAttributeRequest) (*AttributeResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.New("attribute name cannot be empty")
	}

	attr, err := s.repo.UpdateAttribute(id, map[string]interface{}{"name": name})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("room attribute not found")
		}
		return nil, fmt.Errorf("failed to update room attribute: %w", err)
	}

	s.invalidateAttributeCache(ctx, attr.Kind)

	resp := attr.ToResponse()
	return &resp, nil
}

func (s *service) DeleteAttribute(ctx context.Context, id int64) error {
	attr, err := s.repo.GetAttributeByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("room attribute not found")
		}
		return fmt.Errorf("failed to get room attribute: %w", err)
	}

	refs, err := s.repo.CountRoomTypeReferences(attr)
	if err != nil {
		return fmt.Errorf("failed to check attribute usage: %w", err)
	}
	if refs > 0 {
		return fmt.Errorf("cannot delete attribute as it is referenced by %d room type(s)", refs)
	}

	if err := s.repo.DeleteAttribute(id); err != nil {
		return fmt.Errorf("failed to delete room attribute: %w", err)
	}

	s.invalidateAttributeCache(ctx, attr.Kind)
	return nil
}

// GetDashboard loads the four attribute enumerations concurrently.
// Each one fails independently to an empty list plus a notice; the
// dashboard itself never errors.
func (s *service) GetDashboard(ctx context.Context) *Dashboard {
	dashboard := &Dashboard{
		Sizes:    []AttributeResponse{},
		Views:    []AttributeResponse{},
		Floors:   []AttributeResponse{},
		BedTypes: []AttributeResponse{},
		Notices:  []string{},
	}

	targets := []struct {
		kind string
		dest *[]AttributeResponse
	}{
		{AttributeSize, &dashboard.Sizes},
		{AttributeView, &dashboard.Views},
		{AttributeFloor, &dashboard.Floors},
		{AttributeBedType, &dashboard.BedTypes},
	}

	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, target := range targets {
		wg.Add(1)
		go func(kind string, dest *[]AttributeResponse) {
			defer wg.Done()
			attrs, err := s.fetchAttributes(ctx, kind)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				dashboard.Notices = append(dashboard.Notices, fmt.Sprintf("failed to load %s attributes", kind))
				return
			}
			*dest = attrs
		}(target.kind, target.dest)
	}

	wg.Wait()
	return dashboard
}

func (s *service) CreateRoomType(req CreateRoomTypeRequest) (*RoomType, error) {
	for _, ref := range []struct {
		id   int64
		kind string
	}{
		{req.SizeID, AttributeSize},
		{req.ViewID, AttributeView},
		{req.FloorID, AttributeFloor},
		{req.BedTypeID, AttributeBedType},
	} {
		attr, err := s.repo.GetAttributeByID(ref.id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%s attribute %d does not exist", ref.kind, ref.id)
			}
			return nil, fmt.Errorf("failed to check %s attribute: %w", ref.kind, err)
		}
		if attr.Kind != ref.kind {
			return nil, fmt.Errorf("attribute %d is a %s, not a %s", ref.id, attr.Kind, ref.kind)
		}
	}

	roomType := &RoomType{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		SizeID:      req.SizeID,
		ViewID:      req.ViewID,
		FloorID:     req.FloorID,
		BedTypeID:   req.BedTypeID,
		Capacity:    req.Capacity,
		Price:       req.Price,
	}

	if err := s.repo.CreateRoomType(roomType); err != nil {
		return nil, fmt.Errorf("failed to create room type: %w", err)
	}
	return roomType, nil
}

func (s *service) GetAllRoomTypes() ([]RoomType, error) {
	roomTypes, err := s.repo.GetAllRoomTypes()
	if err != nil {
		return nil, fmt.Errorf("failed to get room types: %w", err)
	}
	return roomTypes, nil
}

func (s *service) UpdateRoomType(id int64, req UpdateRoomTypeRequest) (*RoomType, error) {
	updates := make(map[string]interface{})

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, errors.New("room type name cannot be empty")
		}
		updates["name"] = name
	}
	if req.Description != nil {
		updates["description"] = strings.TrimSpace(*req.Description)
	}
	if req.SizeID != nil {
		updates["size_id"] = *req.SizeID
	}
	if req.ViewID != nil {
		updates["view_id"] = *req.ViewID
	}
	if req.FloorID != nil {
		updates["floor_id"] = *req.FloorID
	}
	if req.BedTypeID != nil {
		updates["bed_type_id"] = *req.BedTypeID
	}
	if req.Capacity != nil {
		updates["capacity"] = *req.Capacity
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}

	roomType, err := s.repo.UpdateRoomType(id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("room type not found")
		}
		return nil, fmt.Errorf("failed to update room type: %w", err)
	}
	return roomType, nil
}

func (s *service) DeleteRoomType(id int64) error {
	if _, err := s.repo.GetRoomTypeByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("room type not found")
		}
		return fmt.Errorf("failed to get room type: %w", err)
	}

	count, err := s.repo.CountRoomsOfType(id)
	if err != nil {
		return fmt.Errorf("failed to check room type usage: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("cannot delete room type as %d room(s) use it", count)
	}

	if err := s.repo.DeleteRoomType(id); err != nil {
		return fmt.Errorf("failed to delete room type: %w", err)
	}
	return nil
}

func (s *service) CreateRoom(req CreateRoomRequest) (*Room, error) {
	if _, err := s.repo.GetRoomTypeByID(req.RoomTypeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("room type not found")
		}
		return nil, fmt.Errorf("failed to check room type: %w", err)
	}

	number := strings.TrimSpace(req.Number)
	existing, err := s.repo.GetRoomByNumber(req.LocationID, number)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check room number: %w", err)
	}
	if existing != nil {
		return nil, errors.New("a room with this number already exists at this location")
	}

	status := req.Status
	if status == "" {
		status = RoomStatusAvailable
	}

	room := &Room{
		Number:     number,
		RoomTypeID: req.RoomTypeID,
		LocationID: req.LocationID,
		Status:     status,
	}

	if err := s.repo.CreateRoom(room); err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}
	return room, nil
}

func (s *service) GetAllRooms(query RoomListQuery) ([]Room, error) {
	if query.Status != "" && !ValidRoomStatus(query.Status) {
		return nil, errors.New("invalid room status filter")
	}

	list, err := s.repo.GetAllRooms(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}
	return list, nil
}

func (s *service) UpdateRoom(id int64, req UpdateRoomRequest) (*Room, error) {
	current, err := s.repo.GetRoomByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("room not found")
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	updates := make(map[string]interface{})

	if req.Number != nil {
		number := strings.TrimSpace(*req.Number)
		if number == "" {
			return nil, errors.New("room number cannot be empty")
		}
		if number != current.Number {
			existing, err := s.repo.GetRoomByNumber(current.LocationID, number)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("failed to check room number: %w", err)
			}
			if existing != nil {
				return nil, errors.New("a room with this number already exists at this location")
			}
		}
		updates["number"] = number
	}
	if req.RoomTypeID != nil {
		if _, err := s.repo.GetRoomTypeByID(*req.RoomTypeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errors.New("room type not found")
			}
			return nil, fmt.Errorf("failed to check room type: %w", err)
		}
		updates["room_type_id"] = *req.RoomTypeID
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	room, err := s.repo.UpdateRoom(id, updates)
	if err != nil {
		return nil, fmt.Errorf("failed to update room: %w", err)
	}
	return room, nil
}

func (s *service) DeleteRoom(id int64) error {
	if _, err := s.repo.GetRoomByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("room not found")
		}
		return fmt.Errorf("failed to get room: %w", err)
	}

	if err := s.repo.DeleteRoom(id); err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}
	return nil
}

func (s *service) invalidateAttributeCache(ctx context.Context, kind string) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Delete(ctx, constants.BuildRoomAttributeKey(kind))
}
