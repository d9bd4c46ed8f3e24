package validate

import (
	"testing"
	"time"

	"eventplanner/dto"
)

var testNow = time.Date(2025, 6, 1, 15, 30, 0, 0, time.UTC)

func validEvent() dto.EventRequestDTO {
	return dto.EventRequestDTO{
		Title:       "Offsite",
		Description: "Annual company offsite",
		Date:        "2099-01-01",
		StartTime:   "09:00",
		EndTime:     "17:00",
		Location:    "HQ",
	}
}

func TestEventFieldsValid(t *testing.T) {
	if errs := EventFields(validEvent(), testNow); len(errs) != 0 {
		t.Fatalf("Expected no errors for a valid event, got %v", errs)
	}
}

func TestEventFieldsSameDayIsValid(t *testing.T) {
	req := validEvent()
	req.Date = "2025-06-01"
	if errs := EventFields(req, testNow); len(errs) != 0 {
		t.Fatalf("Event later today must pass date-only comparison, got %v", errs)
	}
}

func TestEventFieldsRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*dto.EventRequestDTO)
		field  string
	}{
		{"empty title", func(r *dto.EventRequestDTO) { r.Title = "" }, "title"},
		{"whitespace title", func(r *dto.EventRequestDTO) { r.Title = "   " }, "title"},
		{"empty description", func(r *dto.EventRequestDTO) { r.Description = "" }, "description"},
		{"empty location", func(r *dto.EventRequestDTO) { r.Location = "\t" }, "location"},
		{"missing date", func(r *dto.EventRequestDTO) { r.Date = "" }, "date"},
		{"malformed date", func(r *dto.EventRequestDTO) { r.Date = "01/06/2025" }, "date"},
		{"past date", func(r *dto.EventRequestDTO) { r.Date = "2025-05-31" }, "date"},
		{"missing start time", func(r *dto.EventRequestDTO) { r.StartTime = "" }, "startTime"},
		{"malformed start time", func(r *dto.EventRequestDTO) { r.StartTime = "9am" }, "startTime"},
		{"non-padded start hour", func(r *dto.EventRequestDTO) { r.StartTime = "9:00" }, "startTime"},
		{"start time with seconds", func(r *dto.EventRequestDTO) { r.StartTime = "09:00:00" }, "startTime"},
		{"missing end time", func(r *dto.EventRequestDTO) { r.EndTime = "" }, "endTime"},
		{"non-padded end hour", func(r *dto.EventRequestDTO) { r.EndTime = "9:30" }, "endTime"},
		{"start equals end", func(r *dto.EventRequestDTO) { r.StartTime = "09:00"; r.EndTime = "09:00" }, "endTime"},
		{"start after end", func(r *dto.EventRequestDTO) { r.StartTime = "17:00"; r.EndTime = "09:00" }, "endTime"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validEvent()
			tt.mutate(&req)
			errs := EventFields(req, testNow)
			if errs[tt.field] == "" {
				t.Errorf("Expected an error on field %q, got %v", tt.field, errs)
			}
		})
	}
}

// A non-padded start hour must be reported as a start-time shape
// problem, not misread as end-before-start: "9:00" sorts after
// "17:00" lexicographically even though 9:00 is the earlier clock.
func TestEventFieldsNonPaddedHourBlamesRightField(t *testing.T) {
	req := validEvent()
	req.StartTime = "9:00"
	req.EndTime = "17:00"

	errs := EventFields(req, testNow)
	if errs["startTime"] == "" {
		t.Errorf("Expected a startTime error for %q, got %v", req.StartTime, errs)
	}
	if errs["endTime"] != "" {
		t.Errorf("End time ordering must not be judged against a malformed start time, got %v", errs)
	}
}

func TestEventFieldsReportsAllFailures(t *testing.T) {
	errs := EventFields(dto.EventRequestDTO{}, testNow)
	for _, field := range []string{"title", "description", "location", "date", "startTime", "endTime"} {
		if errs[field] == "" {
			t.Errorf("Expected error for %q in empty payload, got %v", field, errs)
		}
	}
}
