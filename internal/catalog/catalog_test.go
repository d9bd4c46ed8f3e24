package catalog

import (
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"

	"eventplanner/model"
)

func makeEvents(t *testing.T, dates ...string) []model.Event {
	t.Helper()
	events := make([]model.Event, 0, len(dates))
	for _, d := range dates {
		events = append(events, model.Event{
			ID:    bson.NewObjectID(),
			Title: "Event on " + d,
			Date:  d,
		})
	}
	return events
}

func TestUpcomingFiltersPastEvents(t *testing.T) {
	events := makeEvents(t, "2025-01-15", "2025-05-31", "2025-06-01", "2025-07-04")

	got := Upcoming(events, "2025-06-01")
	if len(got) != 2 {
		t.Fatalf("Expected 2 upcoming events, got %d", len(got))
	}
	for _, e := range got {
		if e.Date < "2025-06-01" {
			t.Errorf("Event dated %s should have been filtered out", e.Date)
		}
	}
}

func TestUpcomingPreservesOrder(t *testing.T) {
	events := makeEvents(t, "2025-06-01", "2025-06-02", "2025-06-03")

	got := Upcoming(events, "2025-06-01")
	for i := 1; i < len(got); i++ {
		if got[i-1].Date > got[i].Date {
			t.Errorf("Ascending date order broken: %s before %s", got[i-1].Date, got[i].Date)
		}
	}
}

func TestUpcomingIncludesReferenceDate(t *testing.T) {
	events := makeEvents(t, "2025-06-01")
	if got := Upcoming(events, "2025-06-01"); len(got) != 1 {
		t.Fatalf("Event on the reference date itself must be upcoming, got %d events", len(got))
	}
}

func TestUpcomingEmptyInput(t *testing.T) {
	if got := Upcoming(nil, "2025-06-01"); len(got) != 0 {
		t.Fatalf("Expected no events, got %d", len(got))
	}
}

func TestFind(t *testing.T) {
	events := makeEvents(t, "2025-06-01", "2025-06-02")

	got, ok := Find(events, events[1].ID)
	if !ok || got.Date != "2025-06-02" {
		t.Fatalf("Expected to find the second event, got ok=%v event=%v", ok, got)
	}

	if _, ok := Find(events, bson.NewObjectID()); ok {
		t.Fatal("Lookup of an unknown id must report absence, not error")
	}
}
