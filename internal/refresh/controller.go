// Package refresh re-runs the feed fetch and normalization pipeline and
// atomically swaps the event store generation.
package refresh

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Priya8975/city-events-api/internal/feed"
	"github.com/Priya8975/city-events-api/internal/normalize"
	"github.com/Priya8975/city-events-api/internal/store"
)

// Status is the health snapshot of the last completed refresh.
type Status struct {
	EventCount    int
	IsFallback    bool
	LastFetchTime time.Time
}

// Controller owns the fetch → normalize → swap cycle. Concurrent refreshes
// are allowed to race; the last store swap wins and the system always
// returns to idle because fetch failures are absorbed by the feed client.
type Controller struct {
	feed   *feed.Client
	store  *store.EventStore
	logger *slog.Logger

	mu     sync.Mutex
	status Status
}

func NewController(client *feed.Client, eventStore *store.EventStore, logger *slog.Logger) *Controller {
	return &Controller{
		feed:   client,
		store:  eventStore,
		logger: logger,
	}
}

// Refresh runs one synchronous fetch/normalize/swap cycle. It never returns
// an error to the caller: feed failures degrade to the fallback dataset (or
// an empty generation) inside the adapter, and the outcome is reported via
// Status.
func (c *Controller) Refresh(ctx context.Context) {
	records, fromFallback, err := c.feed.Fetch(ctx)
	if err != nil {
		// The adapter recovers everything today; keep the guard in case
		// that contract changes.
		c.logger.Error("refresh failed", "error", err)
		return
	}

	events := normalize.Batch(records)

	// Swap the generation and its health snapshot together so racing
	// refreshes cannot pair one run's status with another run's store
	// contents.
	c.mu.Lock()
	c.store.Replace(events)
	c.status = Status{
		EventCount:    len(events),
		IsFallback:    fromFallback,
		LastFetchTime: time.Now(),
	}
	c.mu.Unlock()

	source := "live"
	if fromFallback {
		source = "fallback"
	}
	c.logger.Info("event store refreshed", "events", len(events), "source", source)
}

// Trigger starts a refresh in the background and returns immediately. Each
// call is an independent run; no coalescing.
func (c *Controller) Trigger() {
	go c.Refresh(context.Background())
}

// Status returns the outcome of the most recent completed refresh.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}
