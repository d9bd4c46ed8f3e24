package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"eventplanner/dto"
	"eventplanner/internal/catalog"
	"eventplanner/internal/rsvp"
)

// testDeps builds a catalog and aggregator over a lazy Mongo client.
// Nothing here dials the server: the paths under test are rejected
// before any store call, which is exactly the property being checked.
func testDeps(t *testing.T) (*catalog.Catalog, *rsvp.Aggregator) {
	t.Helper()
	client, err := mongo.Connect(options.Client().ApplyURI("mongodb://localhost:27017"))
	if err != nil {
		t.Fatalf("Failed to build mongo client: %v", err)
	}
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	db := client.Database("eventplanner_test")
	return catalog.New(log, db), rsvp.New(log, db)
}

// asUser injects an authenticated identity the way the auth
// middleware would.
func asUser(uid, role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("user_id", uid)
		c.Locals("role", role)
		return c.Next()
	}
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Failed to marshal body: %v", err)
	}
	req := httptest.NewRequest(fiber.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		t.Fatalf("Failed to decode response %s: %v", body, err)
	}
}

func TestCreateEventRejectsInvalidFields(t *testing.T) {
	events, _ := testDeps(t)
	app := fiber.New()
	app.Post("/events", asUser("admin1", "admin"), CreateEventHandler(events))

	resp := postJSON(t, app, "/events", dto.EventRequestDTO{
		Title:       "",
		Description: "desc",
		Date:        "2000-01-01",
		StartTime:   "17:00",
		EndTime:     "09:00",
		Location:    "HQ",
	})

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", resp.StatusCode)
	}

	var body dto.ValidationErrorResponse
	decodeBody(t, resp, &body)
	for _, field := range []string{"title", "date", "endTime"} {
		if body.Errors[field] == "" {
			t.Errorf("Expected a message for field %q, got %v", field, body.Errors)
		}
	}
}

func TestCreateEventRequiresIdentity(t *testing.T) {
	events, _ := testDeps(t)
	app := fiber.New()
	app.Post("/events", CreateEventHandler(events))

	resp := postJSON(t, app, "/events", dto.EventRequestDTO{})
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("Expected 401 without identity, got %d", resp.StatusCode)
	}
}

func TestUpdateEventRejectsBadID(t *testing.T) {
	events, _ := testDeps(t)
	app := fiber.New()
	app.Put("/events/:id", asUser("admin1", "admin"), UpdateEventHandler(events))

	payload, _ := json.Marshal(dto.EventRequestDTO{})
	req := httptest.NewRequest(fiber.MethodPut, "/events/not-an-oid", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("Expected 400 for malformed id, got %d", resp.StatusCode)
	}
}

func TestSubmitRSVPUnknownEvent(t *testing.T) {
	events, rsvps := testDeps(t)
	app := fiber.New()
	app.Post("/events/:id/rsvp", asUser("u1", "user"), SubmitRSVPHandler(events, rsvps))

	// Mirror is empty, so any id is a dangling reference: absent, not fatal.
	resp := postJSON(t, app, "/events/"+bson.NewObjectID().Hex()+"/rsvp", dto.RSVPRequestDTO{Status: "going"})
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("Expected 404 for unknown event, got %d", resp.StatusCode)
	}
}

func TestListEventsEmptyMirror(t *testing.T) {
	events, _ := testDeps(t)
	app := fiber.New()
	app.Get("/events", asUser("u1", "user"), ListEventsHandler(events))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/events", nil))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(bytes.TrimSpace(body)) != "[]" {
		t.Fatalf("Expected empty array, got %s", body)
	}
}
