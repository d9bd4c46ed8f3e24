package rsvp

import (
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"

	"eventplanner/model"
)

func makeRSVP(t *testing.T, eventID bson.ObjectID, userID, status string) model.RSVP {
	t.Helper()
	return model.RSVP{
		ID:      bson.NewObjectID(),
		EventID: eventID,
		UserID:  userID,
		Status:  status,
	}
}

func TestSummarizeCountsByStatus(t *testing.T) {
	eventID := bson.NewObjectID()
	otherEvent := bson.NewObjectID()
	rsvps := []model.RSVP{
		makeRSVP(t, eventID, "u1", model.RSVPStatusGoing),
		makeRSVP(t, eventID, "u2", model.RSVPStatusGoing),
		makeRSVP(t, eventID, "u3", model.RSVPStatusMaybe),
		makeRSVP(t, eventID, "u4", model.RSVPStatusDeclined),
		makeRSVP(t, otherEvent, "u5", model.RSVPStatusGoing),
	}

	got := Summarize(rsvps, eventID)
	if got.Going != 2 || got.Maybe != 1 || got.Declined != 1 || got.Total != 4 {
		t.Fatalf("Wrong summary: %+v", got)
	}
}

func TestSummarizeEmptySnapshot(t *testing.T) {
	got := Summarize(nil, bson.NewObjectID())
	if got.Going != 0 || got.Maybe != 0 || got.Declined != 0 || got.Total != 0 {
		t.Fatalf("Expected zero summary, got %+v", got)
	}
}

// An out-of-enum status never comes from a validated write, but a
// snapshot containing one must still count it in Total only.
func TestSummarizeUnknownStatus(t *testing.T) {
	eventID := bson.NewObjectID()
	rsvps := []model.RSVP{
		makeRSVP(t, eventID, "u1", model.RSVPStatusGoing),
		makeRSVP(t, eventID, "u2", "tentative"),
	}

	got := Summarize(rsvps, eventID)
	if got.Going+got.Maybe+got.Declined > got.Total {
		t.Fatalf("Named counts exceed total: %+v", got)
	}
	if got.Total != 2 || got.Going != 1 {
		t.Fatalf("Wrong summary: %+v", got)
	}
}

func TestFindUserRSVP(t *testing.T) {
	eventID := bson.NewObjectID()
	rsvps := []model.RSVP{
		makeRSVP(t, eventID, "u1", model.RSVPStatusGoing),
		makeRSVP(t, eventID, "u2", model.RSVPStatusMaybe),
	}

	got, ok := FindUserRSVP(rsvps, eventID, "u2")
	if !ok || got.Status != model.RSVPStatusMaybe {
		t.Fatalf("Expected u2's maybe RSVP, got ok=%v rsvp=%+v", ok, got)
	}

	if _, ok := FindUserRSVP(rsvps, eventID, "u3"); ok {
		t.Fatal("Absent RSVP must report a miss")
	}
	if _, ok := FindUserRSVP(rsvps, bson.NewObjectID(), "u1"); ok {
		t.Fatal("Wrong event must report a miss")
	}
}

// The resubmission scenario: after a user changes going to maybe, the
// next snapshot carries the same RSVP id with the new status and the
// summary moves the single count over.
func TestResubmissionMovesSummary(t *testing.T) {
	eventID := bson.NewObjectID()
	first := makeRSVP(t, eventID, "u1", model.RSVPStatusGoing)

	snapshot := []model.RSVP{first}
	got := Summarize(snapshot, eventID)
	if got.Going != 1 || got.Maybe != 0 || got.Total != 1 {
		t.Fatalf("After first submit: %+v", got)
	}

	// Upsert keeps the document, only status and updated_at change.
	updated := first
	updated.Status = model.RSVPStatusMaybe
	snapshot = []model.RSVP{updated}

	got = Summarize(snapshot, eventID)
	if got.Going != 0 || got.Maybe != 1 || got.Declined != 0 || got.Total != 1 {
		t.Fatalf("After resubmit: %+v", got)
	}
	own, ok := FindUserRSVP(snapshot, eventID, "u1")
	if !ok || own.ID != first.ID {
		t.Fatalf("Resubmission must keep the same RSVP id: %+v vs %+v", own.ID, first.ID)
	}
}

func TestValidRSVPStatus(t *testing.T) {
	for _, s := range []string{model.RSVPStatusGoing, model.RSVPStatusMaybe, model.RSVPStatusDeclined} {
		if !model.ValidRSVPStatus(s) {
			t.Errorf("%q should be valid", s)
		}
	}
	for _, s := range []string{"", "GOING", "yes", "tentative"} {
		if model.ValidRSVPStatus(s) {
			t.Errorf("%q should be invalid", s)
		}
	}
}
