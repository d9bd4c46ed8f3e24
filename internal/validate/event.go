// Package validate holds the pre-submission field checks. A non-empty
// result means the request never reaches the store.
package validate

import (
	"strings"
	"time"

	"eventplanner/dto"
)

const dateLayout = "2006-01-02"

// EventFields checks an event create/edit payload and returns a
// field name -> message map, empty when everything passes.
//
// Date is compared date-only against now: an event later today is
// still valid. Times are zero-padded 24h "HH:MM" strings, so the
// lexicographic start < end comparison is also the chronological one.
func EventFields(req dto.EventRequestDTO, now time.Time) map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(req.Title) == "" {
		errs["title"] = "Event title is required"
	}
	if strings.TrimSpace(req.Description) == "" {
		errs["description"] = "Event description is required"
	}
	if strings.TrimSpace(req.Location) == "" {
		errs["location"] = "Event location is required"
	}

	if req.Date == "" {
		errs["date"] = "Event date is required"
	} else if _, err := time.Parse(dateLayout, req.Date); err != nil {
		errs["date"] = "Event date must be YYYY-MM-DD"
	} else if req.Date < now.Format(dateLayout) {
		errs["date"] = "Event date cannot be in the past"
	}

	if !validClock(req.StartTime) {
		errs["startTime"] = "Start time is required"
	}
	if !validClock(req.EndTime) {
		errs["endTime"] = "End time is required"
	}
	if errs["startTime"] == "" && errs["endTime"] == "" && req.StartTime >= req.EndTime {
		errs["endTime"] = "End time must be after start time"
	}

	return errs
}

// validClock accepts only the canonical zero-padded "HH:MM" shape.
// The length check matters: time.Parse alone would take "9:00", and a
// non-padded hour breaks the lexicographic start < end comparison.
func validClock(s string) bool {
	if len(s) != 5 {
		return false
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}
