package drafts

import "strings"

// ValidationError names the first field that fails pre-submit
// validation. Checks short-circuit: the caller only ever sees one.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validate runs the pre-submit checks in their fixed order and returns
// the first failure. Notes is mandatory despite reading like a
// free-text extra on the form.
func Validate(d *EventDraft) *ValidationError {
	if strings.TrimSpace(d.Title) == "" {
		return &ValidationError{Field: "title", Message: "title is required"}
	}
	if strings.TrimSpace(d.Description) == "" {
		return &ValidationError{Field: "description", Message: "description is required"}
	}
	if strings.TrimSpace(d.Notes) == "" {
		return &ValidationError{Field: "notes", Message: "notes is required"}
	}
	if d.CategoryID <= 0 {
		return &ValidationError{Field: "categoryId", Message: "category is required"}
	}
	if d.LevelID <= 0 {
		return &ValidationError{Field: "levelId", Message: "level is required"}
	}
	if len(d.ScheduleMasters) == 0 {
		return &ValidationError{Field: "scheduleMasters", Message: "at least one schedule is required"}
	}
	for _, master := range d.ScheduleMasters {
		if strings.TrimSpace(master.StartDate) == "" {
			return &ValidationError{Field: "startDate", Message: "schedule start date is required"}
		}
		if strings.TrimSpace(master.RecurrenceEndDate) == "" {
			return &ValidationError{Field: "recurrenceEndDate", Message: "schedule end date is required"}
		}
	}
	return nil
}
