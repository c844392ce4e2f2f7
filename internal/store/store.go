// Package store holds the single current generation of canonical events.
// Generations are replaced wholesale; readers always see one fully
// consistent batch.
package store

import (
	"sync"

	"github.com/Priya8975/city-events-api/internal/domain"
)

// EventStore is a read-mostly snapshot holder. Replace publishes a new
// generation with a single pointer swap under the mutex; the published slice
// is never mutated afterwards, so Current can hand it out without copying.
type EventStore struct {
	mu     sync.RWMutex
	events []domain.Event
}

func New() *EventStore {
	return &EventStore{events: []domain.Event{}}
}

// Current returns the current generation. Callers must treat the returned
// slice as immutable; query operations derive new slices instead.
func (s *EventStore) Current() []domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.events
}

// Replace atomically swaps in a new generation. Only the refresh controller
// calls this.
func (s *EventStore) Replace(events []domain.Event) {
	if events == nil {
		events = []domain.Event{}
	}
	s.mu.Lock()
	s.events = events
	s.mu.Unlock()
}

// ByID looks an event up by its generation-scoped id.
func (s *EventStore) ByID(id int) (domain.Event, bool) {
	for _, ev := range s.Current() {
		if ev.ID == id {
			return ev, true
		}
	}
	return domain.Event{}, false
}

// Len reports the size of the current generation.
func (s *EventStore) Len() int {
	return len(s.Current())
}
