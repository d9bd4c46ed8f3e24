package handlers

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"eventplanner/model"
)

// deadClient fails every write, the way a torn-down connection does.
type deadClient struct{}

func (deadClient) Write(p []byte) (int, error) { return 0, io.ErrClosedPipe }

func TestPumpForwardsSnapshots(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)

	sub := make(chan []model.Event, 1)
	sub <- []model.Event{{Title: "Offsite", Date: "2099-01-01"}}
	close(sub)

	if err := pump(w, sub, nil); err != nil {
		t.Fatalf("Expected clean shutdown on closed subscription, got %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "data: ") || !strings.Contains(out, "Offsite") {
		t.Fatalf("Expected the snapshot as an SSE data frame, got %q", out)
	}
	if !strings.HasSuffix(out, "\n\n") {
		t.Fatalf("Expected a blank line terminating the frame, got %q", out)
	}
}

func TestPumpKeepaliveFrame(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)

	sub := make(chan []model.RSVP)
	keepalive := make(chan time.Time)
	done := make(chan error, 1)
	go func() { done <- pump(w, sub, keepalive) }()

	// Unbuffered send: once it returns, pump holds the tick and will
	// write the comment frame before it can see the closed channel.
	keepalive <- time.Now()
	close(sub)

	if err := <-done; err != nil {
		t.Fatalf("Expected clean shutdown, got %v", err)
	}
	if got := buf.String(); got != ": ping\n\n" {
		t.Fatalf("Expected a comment frame, got %q", got)
	}
}

// A client that disconnected while the collection is quiet must be
// detected by the next keepalive tick, not held until the next
// collection change.
func TestPumpKeepaliveDetectsDeadClient(t *testing.T) {
	w := bufio.NewWriter(deadClient{})

	sub := make(chan []model.Event) // never delivers: quiet collection
	keepalive := make(chan time.Time, 1)
	keepalive <- time.Now()

	if err := pump(w, sub, keepalive); err == nil {
		t.Fatal("Expected the keepalive write to surface the dead connection")
	}
}

func TestPumpDeadClientOnSnapshot(t *testing.T) {
	w := bufio.NewWriter(deadClient{})

	sub := make(chan []model.Event, 1)
	sub <- []model.Event{{Title: "Offsite"}}

	if err := pump(w, sub, nil); err == nil {
		t.Fatal("Expected the data write to surface the dead connection")
	}
}
