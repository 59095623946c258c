package drafts

import "testing"

func validDraft() *EventDraft {
	draft := NewEventDraft("user-1")
	draft.Title = "Yoga Retreat"
	draft.Description = "d"
	draft.Notes = "n"
	draft.CategoryID = 3
	draft.LevelID = 1
	draft.ScheduleMasters = []ScheduleMaster{{
		StartDate:         "2024-02-01T09:00:00Z",
		RecurrenceEndDate: "2024-02-01T11:00:00Z",
		Duration:          "02:00:00",
		RecurrenceType:    RecurrenceWeekly,
		RepeatCount:       2,
	}}
	return draft
}

func TestValidateShortCircuitOrder(t *testing.T) {
	// Each case fixes the previous failure and nothing more, so the
	// reported field walks the check order one step at a time.
	draft := NewEventDraft("user-1")

	steps := []struct {
		fix       func()
		wantField string
	}{
		{func() {}, "title"},
		{func() { draft.Title = "Yoga Retreat" }, "description"},
		{func() { draft.Description = "d" }, "notes"},
		{func() { draft.Notes = "n" }, "categoryId"},
		{func() { draft.CategoryID = 3 }, "levelId"},
		{func() { draft.LevelID = 1 }, "scheduleMasters"},
		{func() {
			draft.ScheduleMasters = []ScheduleMaster{{RecurrenceEndDate: "2024-02-01T11:00:00Z"}}
		}, "startDate"},
		{func() { draft.ScheduleMasters[0].StartDate = "2024-02-01T09:00:00Z" }, ""},
	}

	for _, step := range steps {
		step.fix()
		verr := Validate(draft)
		if step.wantField == "" {
			if verr != nil {
				t.Fatalf("expected valid draft, got error on %q: %s", verr.Field, verr.Message)
			}
			continue
		}
		if verr == nil {
			t.Fatalf("expected error on field %q, got nil", step.wantField)
		}
		if verr.Field != step.wantField {
			t.Fatalf("expected error on field %q, got %q", step.wantField, verr.Field)
		}
	}
}

func TestValidateWhitespaceOnlyFields(t *testing.T) {
	draft := validDraft()
	draft.Notes = "   "
	verr := Validate(draft)
	if verr == nil || verr.Field != "notes" {
		t.Fatalf("expected notes error for whitespace-only notes, got %v", verr)
	}
}

func TestValidateMissingEndDate(t *testing.T) {
	draft := validDraft()
	draft.ScheduleMasters[0].RecurrenceEndDate = ""
	verr := Validate(draft)
	if verr == nil || verr.Field != "recurrenceEndDate" {
		t.Fatalf("expected recurrenceEndDate error, got %v", verr)
	}
}
