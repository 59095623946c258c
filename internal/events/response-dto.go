package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EventResponse is the unified list entry for both published events and
// pending submissions; consumers distinguish them by IsPublished.
type EventResponse struct {
	ID              uuid.UUID               `json:"id"`
	Title           string                  `json:"title"`
	Description     string                  `json:"description"`
	Notes           string                  `json:"notes"`
	CategoryID      int64                   `json:"categoryId"`
	LevelID         int64                   `json:"levelId"`
	ScheduleMasters []ScheduleMasterPayload `json:"scheduleMasters"`
	AddOns          []AddOnPayload          `json:"addOns"`
	Locations       []LocationPayload       `json:"locations"`
	IsPublished     bool                    `json:"isPublished"`
	Status          string                  `json:"status"`
	CreatedAt       time.Time               `json:"createdAt"`
}

type PendingEventResponse struct {
	ID              uuid.UUID  `json:"id"`
	Title           string     `json:"title"`
	Status          string     `json:"status"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	DecidedAt       *time.Time `json:"decided_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func (e *Event) ToResponse() EventResponse {
	resp := EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Notes:       e.Notes,
		CategoryID:  e.CategoryID,
		LevelID:     e.LevelID,
		IsPublished: e.IsPublished,
		Status:      StatusApproved,
		CreatedAt:   e.CreatedAt,
	}
	// Stored JSONB came from the typed payload, so unmarshal cannot fail
	// on well-formed rows; a damaged row degrades to empty children.
	_ = json.Unmarshal(e.ScheduleMasters, &resp.ScheduleMasters)
	_ = json.Unmarshal(e.AddOns, &resp.AddOns)
	_ = json.Unmarshal(e.Locations, &resp.Locations)
	return resp
}

func (pe *PendingEvent) ToEventResponse() EventResponse {
	resp := EventResponse{
		ID:          pe.ID,
		Title:       pe.Title,
		Description: pe.Description,
		Notes:       pe.Notes,
		CategoryID:  pe.CategoryID,
		LevelID:     pe.LevelID,
		IsPublished: false,
		Status:      pe.Status,
		CreatedAt:   pe.CreatedAt,
	}
	_ = json.Unmarshal(pe.ScheduleMasters, &resp.ScheduleMasters)
	_ = json.Unmarshal(pe.AddOns, &resp.AddOns)
	_ = json.Unmarshal(pe.Locations, &resp.Locations)
	return resp
}

func (pe *PendingEvent) ToResponse() PendingEventResponse {
	return PendingEventResponse{
		ID:              pe.ID,
		Title:           pe.Title,
		Status:          pe.Status,
		RejectionReason: pe.RejectionReason,
		DecidedAt:       pe.DecidedAt,
		CreatedAt:       pe.CreatedAt,
	}
}
