package drafts

import (
	"nextu/internal/categories"
	"nextu/internal/events"
	"nextu/internal/levels"
)

const (
	DirectionNext = "next"
	DirectionPrev = "prev"
)

type AdvanceRequest struct {
	Direction string `json:"direction" binding:"required,oneof=next prev"`
}

// UpdateBasicInfoRequest carries the step 1 fields. Assignment is
// direct; nothing is validated until submit.
type UpdateBasicInfoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Notes       string `json:"notes"`
	CategoryID  int64  `json:"categoryId"`
	LevelID     int64  `json:"levelId"`
}

type UpdateScheduleRequest struct {
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Duration    string `json:"duration"`
	RepeatCount int    `json:"repeatCount"`
}

type TicketTypeRequest struct {
	Name              string  `json:"name"`
	Price             int64   `json:"price"`
	TotalQuantity     int     `json:"totalQuantity"`
	MaxPerUser        int     `json:"maxPerUser"`
	IsEarlyBird       bool    `json:"isEarlyBird"`
	EarlyBirdDeadline string  `json:"earlyBirdDeadline"`
	DiscountRate      float64 `json:"discountRate"`
}

type AddOnRequest struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

type LocationRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// WorkflowContext is the initialization payload for the wizard: the
// three reference lists plus a notice per list that failed to load.
// A failed fetch never fails the whole call.
type WorkflowContext struct {
	Categories []categories.CategoryResponse `json:"categories"`
	Levels     []levels.LevelResponse        `json:"levels"`
	Events     []events.EventResponse        `json:"events"`
	Notices    []string                      `json:"notices"`
}
