package handlers

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"eventplanner/internal/authctx"
	"eventplanner/internal/catalog"
	"eventplanner/internal/rsvp"
)

// keepaliveInterval bounds how long a disconnected client can hold
// its subscription open while the collection is quiet.
const keepaliveInterval = 15 * time.Second

// @Summary      Live event stream
// @Description  Server-sent events: a full replacement snapshot of upcoming-relevant events on every change
// @Tags         events
// @Produce      text/event-stream
// @Router       /events/stream [get]
func EventStreamHandler(events *catalog.Catalog) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithCancel(context.Background())
		streamSnapshots(c, cancel, events.Subscribe(ctx))
		return nil
	}
}

// @Summary      Live RSVP stream
// @Description  Server-sent events: the caller's RSVPs as full replacement snapshots
// @Tags         rsvps
// @Produce      text/event-stream
// @Router       /rsvps/stream [get]
func RSVPStreamHandler(rsvps *rsvp.Aggregator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := authctx.UserID(c)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithCancel(context.Background())
		streamSnapshots(c, cancel, rsvps.SubscribeForUser(ctx, uid))
		return nil
	}
}

// streamSnapshots hands the response body to a writer goroutine and
// makes sure the subscription context dies with the connection.
func streamSnapshots[T any](c *fiber.Ctx, cancel context.CancelFunc, sub <-chan T) {
	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer cancel()
		ticker := time.NewTicker(keepaliveInterval)
		defer ticker.Stop()
		_ = pump(w, sub, ticker.C)
	}))
}

// pump forwards snapshots as SSE data frames and writes a comment
// frame on every keepalive tick, so a dead connection is noticed even
// while the collection sees no changes and the subscription never
// delivers. Returns when the subscription closes or a write fails;
// either way the caller cancels the subscription context.
func pump[T any](w *bufio.Writer, sub <-chan T, keepalive <-chan time.Time) error {
	for {
		select {
		case snapshot, ok := <-sub:
			if !ok {
				return nil
			}
			if err := writeSSE(w, snapshot); err != nil {
				return err
			}
		case <-keepalive:
			if _, err := w.WriteString(": ping\n\n"); err != nil {
				return err
			}
			if err := w.Flush(); err != nil {
				return err
			}
		}
	}
}

// writeSSE marshals one snapshot as a data frame. A flush error means
// the client disconnected; the caller stops and cancels the stream.
func writeSSE(w *bufio.Writer, snapshot any) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
		return err
	}
	return w.Flush()
}
