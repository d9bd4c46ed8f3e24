// Package watch turns Mongo change streams into live full-snapshot
// subscriptions: every relevant change re-runs the backing query and
// delivers a complete replacement view, never a diff.
package watch

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

const retryDelay = 2 * time.Second

// Snapshots opens a live subscription on col. The load function runs
// once immediately and again after every change notification; each
// result is sent on the returned channel. The subscription is infinite
// until ctx is cancelled, at which point the channel closes.
//
// A slow receiver only delays the next reload; snapshots are full
// replacements, so nothing is lost by coalescing.
func Snapshots[T any](ctx context.Context, log *slog.Logger, col *mongo.Collection, load func(context.Context) ([]T, error)) <-chan []T {
	out := make(chan []T, 1)

	go func() {
		defer close(out)
		for {
			if err := stream(ctx, log, col, load, out); err != nil {
				log.Warn("change stream interrupted, retrying",
					"collection", col.Name(), "error", err)
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(retryDelay):
			}
		}
	}()

	return out
}

func stream[T any](ctx context.Context, log *slog.Logger, col *mongo.Collection, load func(context.Context) ([]T, error), out chan<- []T) error {
	cs, err := col.Watch(ctx, mongo.Pipeline{})
	if err != nil {
		return err
	}
	defer cs.Close(context.Background())

	// Initial snapshot after the stream is open, so no change between
	// query and watch start can be missed.
	if err := deliver(ctx, log, col, load, out); err != nil {
		return err
	}

	for cs.Next(ctx) {
		if err := deliver(ctx, log, col, load, out); err != nil {
			return err
		}
	}
	return cs.Err()
}

func deliver[T any](ctx context.Context, log *slog.Logger, col *mongo.Collection, load func(context.Context) ([]T, error), out chan<- []T) error {
	snapshot, err := load(ctx)
	if err != nil {
		return err
	}
	select {
	case out <- snapshot:
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}
