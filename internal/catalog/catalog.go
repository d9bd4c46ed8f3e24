// Package catalog maintains a live, date-ordered mirror of the events
// collection and routes validated create/edit/delete actions to it.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"eventplanner/dto"
	"eventplanner/internal/repository"
	"eventplanner/internal/validate"
	"eventplanner/internal/watch"
	"eventplanner/model"
)

type Catalog struct {
	log    *slog.Logger
	events *mongo.Collection
	rsvps  *mongo.Collection

	// mirror is written only by the subscription goroutine in Start;
	// readers take a copy via Snapshot.
	mu     sync.RWMutex
	mirror []model.Event
}

func New(log *slog.Logger, db *mongo.Database) *Catalog {
	return &Catalog{
		log:    log,
		events: db.Collection("events"),
		rsvps:  db.Collection("rsvps"),
	}
}

// Subscribe opens a live query ordered by date ascending. Every change
// to the collection yields a full replacement snapshot. The stream ends
// only when ctx is cancelled.
func (c *Catalog) Subscribe(ctx context.Context) <-chan []model.Event {
	return watch.Snapshots(ctx, c.log, c.events, func(ctx context.Context) ([]model.Event, error) {
		return repository.FetchEventsByDate(ctx, c.events)
	})
}

// Start consumes its own subscription to keep the local mirror fresh.
// It blocks until ctx is cancelled, so run it on its own goroutine.
func (c *Catalog) Start(ctx context.Context) {
	for snapshot := range c.Subscribe(ctx) {
		c.mu.Lock()
		c.mirror = snapshot
		c.mu.Unlock()
		c.log.Debug("event mirror refreshed", "events", len(snapshot))
	}
}

// Snapshot returns a copy of the current mirror, date ascending.
func (c *Catalog) Snapshot() []model.Event {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.Event, len(c.mirror))
	copy(out, c.mirror)
	return out
}

// Upcoming filters to events on or after refDate ("2006-01-02"),
// preserving input order.
func Upcoming(events []model.Event, refDate string) []model.Event {
	var out []model.Event
	for _, event := range events {
		if event.Date >= refDate {
			out = append(out, event)
		}
	}
	return out
}

// Find looks an event up in a snapshot by hex id. A miss is a plain
// false, never an error: snapshots lag writes by design.
func Find(events []model.Event, id bson.ObjectID) (model.Event, bool) {
	for _, event := range events {
		if event.ID == id {
			return event, true
		}
	}
	return model.Event{}, false
}

// Create validates and inserts a new event. On validation failure the
// returned map is non-empty and the store is never called. The mirror
// is not touched either way; the live subscription reflects the write.
func (c *Catalog) Create(ctx context.Context, req dto.EventRequestDTO, createdBy string) (bson.ObjectID, map[string]string, error) {
	if errs := validate.EventFields(req, time.Now()); len(errs) > 0 {
		return bson.NilObjectID, errs, nil
	}

	id, err := repository.InsertEvent(ctx, c.events, model.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    req.Location,
		CreatedBy:   createdBy,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return bson.NilObjectID, nil, err
	}
	return id, nil, nil
}

// Update validates and applies an edit to an existing event.
func (c *Catalog) Update(ctx context.Context, id bson.ObjectID, req dto.EventRequestDTO) (map[string]string, error) {
	if errs := validate.EventFields(req, time.Now()); len(errs) > 0 {
		return errs, nil
	}

	err := repository.UpdateEvent(ctx, c.events, id, model.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    req.Location,
	})
	if err != nil {
		return nil, err
	}
	return nil, nil
}

// Delete removes the event, then every RSVP referencing it. The two
// deletes are separate store calls on separate collections, so a
// failure between them leaves orphaned RSVPs; re-issuing the delete
// reconciles, since both calls are idempotent.
func (c *Catalog) Delete(ctx context.Context, id bson.ObjectID) error {
	if err := repository.DeleteEvent(ctx, c.events, id); err != nil {
		return err
	}

	removed, err := repository.DeleteRSVPsByEvent(ctx, c.rsvps, id)
	if err != nil {
		c.log.Error("cascade delete left orphaned rsvps",
			"event_id", id.Hex(), "error", err)
		return fmt.Errorf("event deleted but rsvp cleanup failed: %w", err)
	}
	c.log.Info("event deleted", "event_id", id.Hex(), "rsvps_removed", removed)
	return nil
}
