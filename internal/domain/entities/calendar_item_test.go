package entities

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestSourceID_RoundTrip(t *testing.T) {
	id := uuid.New()

	kind, got, err := SourceID(TaskItemID(id))
	if err != nil || kind != ItemTypeTask || got != id {
		t.Fatalf("task id round trip: kind=%s id=%s err=%v", kind, got, err)
	}

	kind, got, err = SourceID(MeetingItemID(id))
	if err != nil || kind != ItemTypeMeeting || got != id {
		t.Fatalf("meeting id round trip: kind=%s id=%s err=%v", kind, got, err)
	}
}

func TestSourceID_Invalid(t *testing.T) {
	for _, itemID := range []string{"", "note-123", "task-not-a-uuid", "meeting-"} {
		if _, _, err := SourceID(itemID); !errors.Is(err, ErrInvalidItemID) {
			t.Fatalf("%q should be rejected, got %v", itemID, err)
		}
	}
}

func TestInMonth(t *testing.T) {
	item := &CalendarItem{DateKey: "2024-05-10"}
	if !item.InMonth("2024-05") {
		t.Fatalf("2024-05-10 is in 2024-05")
	}
	if item.InMonth("2024-06") {
		t.Fatalf("2024-05-10 is not in 2024-06")
	}

	invalid := &CalendarItem{DateKey: InvalidDateKey}
	if invalid.InMonth("2024-05") {
		t.Fatalf("the invalid bucket must never match a month")
	}
}

func TestTaskStatus_IsClosed(t *testing.T) {
	closed := []TaskStatus{TaskStatusCompleted, TaskStatusDone}
	open := []TaskStatus{TaskStatusNotStarted, TaskStatusInProgress, TaskStatusBlocked}

	for _, s := range closed {
		if !s.IsClosed() {
			t.Fatalf("%s should count as closed", s)
		}
	}
	for _, s := range open {
		if s.IsClosed() {
			t.Fatalf("%s should count as open", s)
		}
	}
}

func TestBuildCompanyMap(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	companies := BuildCompanyMap([]*Company{
		{ID: a, Name: "Acme Corp"},
		{ID: b, Name: "Globex"},
		nil,
	})

	if companies.NameFor(&a) != "Acme Corp" || companies.NameFor(&b) != "Globex" {
		t.Fatalf("lookup broken: %v", companies)
	}
	unknown := uuid.New()
	if companies.NameFor(&unknown) != "" {
		t.Fatalf("unknown id should resolve to empty")
	}
	if companies.NameFor(nil) != "" {
		t.Fatalf("nil id should resolve to empty")
	}
}
