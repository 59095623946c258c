package events

// The submission payload mirrors the wire contract of the event
// submission workflow: camelCase keys, ISO-8601 date strings, duration
// always HH:MM:SS. The drafts service builds this struct at submit
// time; the same shape is accepted verbatim on POST /pending-events.

type TicketTypePayload struct {
	Name              string  `json:"name" binding:"required"`
	Price             int64   `json:"price" binding:"min=0"`
	TotalQuantity     int     `json:"totalQuantity" binding:"min=0"`
	MaxPerUser        int     `json:"maxPerUser" binding:"min=1"`
	IsEarlyBird       bool    `json:"isEarlyBird"`
	EarlyBirdDeadline string  `json:"earlyBirdDeadline"`
	DiscountRate      float64 `json:"discountRate" binding:"min=0,max=1"`
}

type ScheduleMasterPayload struct {
	StartDate         string              `json:"startDate" binding:"required"`
	RecurrenceEndDate string              `json:"recurrenceEndDate" binding:"required"`
	Duration          string              `json:"duration" binding:"required"`
	RecurrenceType    int                 `json:"recurrenceType" binding:"required"`
	RepeatCount       int                 `json:"repeatCount" binding:"required,min=1"`
	TicketTypes       []TicketTypePayload `json:"ticketTypes"`
}

type AddOnPayload struct {
	Name  string `json:"name" binding:"required"`
	Price int64  `json:"price" binding:"min=0"`
}

type LocationPayload struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
}

type SubmitEventRequest struct {
	Title           string                  `json:"title" binding:"required"`
	Description     string                  `json:"description" binding:"required"`
	Notes           string                  `json:"notes" binding:"required"`
	CategoryID      int64                   `json:"categoryId" binding:"required,gt=0"`
	LevelID         int64                   `json:"levelId" binding:"required,gt=0"`
	ScheduleMasters []ScheduleMasterPayload `json:"scheduleMasters" binding:"required,min=1,dive"`
	AddOns          []AddOnPayload          `json:"addOns" binding:"dive"`
	Locations       []LocationPayload       `json:"locations" binding:"dive"`
	IdempotencyKey  string                  `json:"idempotencyKey"`
}

type RejectEventRequest struct {
	Reason string `json:"reason" binding:"required,min=3,max=500"`
}

type EventListQuery struct {
	IsPublished *bool  `form:"is_published"`
	CategoryID  int64  `form:"category_id"`
	LevelID     int64  `form:"level_id"`
	Search      string `form:"search"`
}
