package rooms

type AttributeResponse struct {
	ID   int64  `json:"id"`
	Kind string `json:"kind"`
	Name string `json:"name"`
}

func (a *RoomAttribute) ToResponse() AttributeResponse {
	return AttributeResponse{ID: a.ID, Kind: a.Kind, Name: a.Name}
}

type CreateAttributeRequest struct {
	Kind string `json:"kind" binding:"required,oneof=size view floor bed_type"`
	Name string `json:"name" binding:"required,min=1,max=100"`
}

type UpdateAttributeRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

type CreateRoomTypeRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"max=500"`
	SizeID      int64  `json:"sizeId" binding:"required,gt=0"`
	ViewID      int64  `json:"viewId" binding:"required,gt=0"`
	FloorID     int64  `json:"floorId" binding:"required,gt=0"`
	BedTypeID   int64  `json:"bedTypeId" binding:"required,gt=0"`
	Capacity    int    `json:"capacity" binding:"required,min=1"`
	Price       int64  `json:"price" binding:"min=0"`
}

type UpdateRoomTypeRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	SizeID      *int64  `json:"sizeId" binding:"omitempty,gt=0"`
	ViewID      *int64  `json:"viewId" binding:"omitempty,gt=0"`
	FloorID     *int64  `json:"floorId" binding:"omitempty,gt=0"`
	BedTypeID   *int64  `json:"bedTypeId" binding:"omitempty,gt=0"`
	Capacity    *int    `json:"capacity" binding:"omitempty,min=1"`
	Price       *int64  `json:"price" binding:"omitempty,min=0"`
}

type CreateRoomRequest struct {
	Number     string `json:"number" binding:"required,min=1,max=20"`
	RoomTypeID int64  `json:"roomTypeId" binding:"required,gt=0"`
	LocationID int64  `json:"locationId" binding:"required,gt=0"`
	Status     string `json:"status" binding:"omitempty,oneof=available occupied maintenance"`
}

type UpdateRoomRequest struct {
	Number     *string `json:"number" binding:"omitempty,min=1,max=20"`
	RoomTypeID *int64  `json:"roomTypeId" binding:"omitempty,gt=0"`
	Status     *string `json:"status" binding:"omitempty,oneof=available occupied maintenance"`
}

type RoomListQuery struct {
	LocationID int64  `form:"location_id"`
	RoomTypeID int64  `form:"room_type_id"`
	Status     string `form:"status"`
}

// Dashboard joins the four attribute enumerations. Each list loads
// independently; a failed one arrives empty with a notice.
type Dashboard struct {
	Sizes    []AttributeResponse `json:"sizes"`
	Views    []AttributeResponse `json:"views"`
	Floors   []AttributeResponse `json:"floors"`
	BedTypes []AttributeResponse `json:"bedTypes"`
	Notices  []string            `json:"notices"`
}
