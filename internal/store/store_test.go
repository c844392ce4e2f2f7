package store

import (
	"testing"

	"github.com/Priya8975/city-events-api/internal/domain"
)

func TestStore_StartsEmpty(t *testing.T) {
	s := New()
	if got := s.Current(); len(got) != 0 {
		t.Errorf("new store should be empty, got %d events", len(got))
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
}

func TestStore_ReplaceSwapsGeneration(t *testing.T) {
	s := New()

	gen1 := []domain.Event{{ID: 1, Name: "First"}}
	gen2 := []domain.Event{{ID: 1, Name: "Replacement"}, {ID: 2, Name: "Second"}}

	s.Replace(gen1)
	snapshot := s.Current()

	s.Replace(gen2)

	if len(snapshot) != 1 || snapshot[0].Name != "First" {
		t.Error("a snapshot taken before Replace must keep observing its generation")
	}
	if s.Len() != 2 {
		t.Errorf("Len = %d, want 2 after swap", s.Len())
	}
}

func TestStore_ReplaceNil(t *testing.T) {
	s := New()
	s.Replace([]domain.Event{{ID: 1}})
	s.Replace(nil)

	if got := s.Current(); got == nil || len(got) != 0 {
		t.Errorf("nil replace should publish an empty generation, got %#v", got)
	}
}

func TestStore_ByID(t *testing.T) {
	s := New()
	s.Replace([]domain.Event{
		{ID: 1, Name: "A"},
		{ID: 2, Name: "B"},
	})

	ev, ok := s.ByID(2)
	if !ok || ev.Name != "B" {
		t.Errorf("ByID(2) = %+v, %v", ev, ok)
	}

	if _, ok := s.ByID(99); ok {
		t.Error("ByID(99) should report not found")
	}
}
