// Package rsvp maintains a live mirror of the rsvps collection and
// computes per-event attendance summaries and per-user lookups.
package rsvp

import (
	"context"
	"log/slog"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"eventplanner/dto"
	"eventplanner/internal/repository"
	"eventplanner/internal/watch"
	"eventplanner/model"
)

type Aggregator struct {
	log   *slog.Logger
	rsvps *mongo.Collection

	mu     sync.RWMutex
	mirror []model.RSVP
}

func New(log *slog.Logger, db *mongo.Database) *Aggregator {
	return &Aggregator{
		log:   log,
		rsvps: db.Collection("rsvps"),
	}
}

// SubscribeAll delivers full replacement snapshots of every RSVP on
// each change until ctx is cancelled. Used by the admin view.
func (a *Aggregator) SubscribeAll(ctx context.Context) <-chan []model.RSVP {
	return watch.Snapshots(ctx, a.log, a.rsvps, func(ctx context.Context) ([]model.RSVP, error) {
		return repository.FetchAllRSVPs(ctx, a.rsvps)
	})
}

// SubscribeForUser is the same stream filtered server-side to one
// user's RSVPs. Used by the user view.
func (a *Aggregator) SubscribeForUser(ctx context.Context, userID string) <-chan []model.RSVP {
	return watch.Snapshots(ctx, a.log, a.rsvps, func(ctx context.Context) ([]model.RSVP, error) {
		return repository.FetchRSVPsForUser(ctx, a.rsvps, userID)
	})
}

// Start keeps the local mirror fresh from its own subscription.
// It blocks until ctx is cancelled.
func (a *Aggregator) Start(ctx context.Context) {
	for snapshot := range a.SubscribeAll(ctx) {
		a.mu.Lock()
		a.mirror = snapshot
		a.mu.Unlock()
		a.log.Debug("rsvp mirror refreshed", "rsvps", len(snapshot))
	}
}

// Snapshot returns a copy of the current mirror.
func (a *Aggregator) Snapshot() []model.RSVP {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]model.RSVP, len(a.mirror))
	copy(out, a.mirror)
	return out
}

// ForUser reads one user's RSVPs straight from the store, for request
// handlers that need a fresh filtered view without a long-lived stream.
func (a *Aggregator) ForUser(ctx context.Context, userID string) ([]model.RSVP, error) {
	return repository.FetchRSVPsForUser(ctx, a.rsvps, userID)
}

// ForEvent reads every RSVP for one event straight from the store.
func (a *Aggregator) ForEvent(ctx context.Context, eventID bson.ObjectID) ([]model.RSVP, error) {
	return repository.FetchRSVPsForEvent(ctx, a.rsvps, eventID)
}

// Summarize counts a snapshot's RSVPs for one event by status. A
// status outside the enum lands in Total but in none of the named
// counts; validated writes never produce one.
func Summarize(rsvps []model.RSVP, eventID bson.ObjectID) dto.RSVPSummary {
	var summary dto.RSVPSummary
	for _, r := range rsvps {
		if r.EventID != eventID {
			continue
		}
		summary.Total++
		switch r.Status {
		case model.RSVPStatusGoing:
			summary.Going++
		case model.RSVPStatusMaybe:
			summary.Maybe++
		case model.RSVPStatusDeclined:
			summary.Declined++
		}
	}
	return summary
}

// FindUserRSVP returns the first RSVP matching (eventID, userID); the
// unique index means at most one exists.
func FindUserRSVP(rsvps []model.RSVP, eventID bson.ObjectID, userID string) (model.RSVP, bool) {
	for _, r := range rsvps {
		if r.EventID == eventID && r.UserID == userID {
			return r, true
		}
	}
	return model.RSVP{}, false
}

// Submit records or changes the caller's RSVP for an event. The store
// upsert is keyed on the (event, user) pair, so repeated submissions
// always converge on a single document.
func (a *Aggregator) Submit(ctx context.Context, userID string, eventID bson.ObjectID, status string) error {
	if !model.ValidRSVPStatus(status) {
		return model.ErrInvalidStatus
	}
	return repository.UpsertRSVP(ctx, a.rsvps, eventID, userID, status)
}
