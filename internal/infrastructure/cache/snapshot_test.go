package cache

import (
	"testing"

	"github.com/incial/Incial/internal/domain/entities"
)

func item(id, dateKey string) *entities.CalendarItem {
	return &entities.CalendarItem{
		ID:      id,
		DateKey: dateKey,
		Type:    entities.ItemTypeTask,
		Title:   id,
	}
}

func TestSnapshot_ReplaceAndGet(t *testing.T) {
	s := NewSnapshot()

	gen := s.Begin()
	if !s.Replace(gen, []*entities.CalendarItem{item("task-a", "2024-05-10")}, entities.CompanyMap{}) {
		t.Fatalf("replace against an untouched snapshot should commit")
	}

	got, ok := s.Get("task-a")
	if !ok || got.DateKey != "2024-05-10" {
		t.Fatalf("expected task-a retrievable, got %v ok=%v", got, ok)
	}
	if s.RefreshedAt().IsZero() {
		t.Fatalf("refreshedAt should be set after a committed replace")
	}
}

func TestSnapshot_ReplaceRejectedAfterPatch(t *testing.T) {
	s := NewSnapshot()

	// A refresh begins, then an optimistic edit lands before it commits.
	gen := s.Begin()
	s.Patch(item("task-a", "2024-05-20"))

	stale := []*entities.CalendarItem{item("task-a", "2024-05-10")}
	if s.Replace(gen, stale, entities.CompanyMap{}) {
		t.Fatalf("stale replace must not commit over a newer patch")
	}

	got, _ := s.Get("task-a")
	if got.DateKey != "2024-05-20" {
		t.Fatalf("optimistic edit was clobbered: %s", got.DateKey)
	}

	// A re-run against the new generation commits.
	gen = s.Begin()
	if !s.Replace(gen, stale, entities.CompanyMap{}) {
		t.Fatalf("replace with the fresh generation should commit")
	}
}

func TestSnapshot_PatchPreservesPosition(t *testing.T) {
	s := NewSnapshot()
	gen := s.Begin()
	s.Replace(gen, []*entities.CalendarItem{
		item("task-a", "2024-05-01"),
		item("task-b", "2024-05-02"),
		item("task-c", "2024-05-03"),
	}, entities.CompanyMap{})

	s.Patch(item("task-b", "2024-05-09"))

	items := s.Items()
	if len(items) != 3 {
		t.Fatalf("patch of an existing id must not grow the list, got %d", len(items))
	}
	if items[1].ID != "task-b" || items[1].DateKey != "2024-05-09" {
		t.Fatalf("patched item should keep its slot: %+v", items[1])
	}

	s.Patch(item("task-d", "2024-05-04"))
	if got := s.Items(); len(got) != 4 || got[3].ID != "task-d" {
		t.Fatalf("new id should append, got %d items", len(got))
	}
}

func TestSnapshot_Remove(t *testing.T) {
	s := NewSnapshot()
	gen := s.Begin()
	s.Replace(gen, []*entities.CalendarItem{
		item("task-a", "2024-05-01"),
		item("task-b", "2024-05-02"),
		item("task-c", "2024-05-03"),
	}, entities.CompanyMap{})

	if !s.Remove("task-b") {
		t.Fatalf("remove of an existing id should report true")
	}
	if s.Remove("task-b") {
		t.Fatalf("second remove should report false")
	}

	if _, ok := s.Get("task-b"); ok {
		t.Fatalf("removed item still retrievable")
	}
	// Index must stay consistent for ids after the removed slot.
	got, ok := s.Get("task-c")
	if !ok || got.ID != "task-c" {
		t.Fatalf("index broken after removal: %v ok=%v", got, ok)
	}
}

func TestSnapshot_ItemsReturnsCopy(t *testing.T) {
	s := NewSnapshot()
	gen := s.Begin()
	s.Replace(gen, []*entities.CalendarItem{item("task-a", "2024-05-01")}, entities.CompanyMap{})

	items := s.Items()
	items[0] = item("task-z", "2024-05-31")

	got, _ := s.Get("task-a")
	if got == nil || got.ID != "task-a" {
		t.Fatalf("mutating the returned slice must not touch the snapshot")
	}
}
