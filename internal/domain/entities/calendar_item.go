package entities

import (
	"strings"

	"github.com/google/uuid"
)

// ItemType tags the source kind of a calendar item
type ItemType string

const (
	ItemTypeTask    ItemType = "task"
	ItemTypeMeeting ItemType = "meeting"
)

// InvalidDateKey buckets items whose source date could not be parsed.
// It never matches a real calendar cell, so malformed records surface in
// logs instead of rendering as a garbage day.
const InvalidDateKey = "invalid-date"

// CalendarItem is the derived, display-only projection of a task or meeting
// onto a calendar date. Items are recomputed on every fetch and never
// persisted; exactly one exists per non-closed task and per meeting.
//
// DateKey is the local calendar date string (YYYY-MM-DD) used to bucket the
// item into a day cell. SortKey orders items within a day: unix nanos of the
// meeting instant, constant 0 for tasks so they render in list order ahead
// of timed entries.
type CalendarItem struct {
	ID       string   `json:"id"`
	DateKey  string   `json:"date_key"`
	SortKey  int64    `json:"sort_key"`
	Title    string   `json:"title"`
	Type     ItemType `json:"type"`
	Status   string   `json:"status"`
	Priority *string  `json:"priority,omitempty"`
	Company  string   `json:"company,omitempty"`
	Task     *Task    `json:"task,omitempty"`
	Meeting  *Meeting `json:"meeting,omitempty"`
}

// TaskItemID returns the composite calendar id for a task record.
func TaskItemID(id uuid.UUID) string {
	return "task-" + id.String()
}

// MeetingItemID returns the composite calendar id for a meeting record.
func MeetingItemID(id uuid.UUID) string {
	return "meeting-" + id.String()
}

// SourceID splits a composite item id back into its type tag and record id.
func SourceID(itemID string) (ItemType, uuid.UUID, error) {
	var kind ItemType
	var raw string
	switch {
	case strings.HasPrefix(itemID, "task-"):
		kind, raw = ItemTypeTask, strings.TrimPrefix(itemID, "task-")
	case strings.HasPrefix(itemID, "meeting-"):
		kind, raw = ItemTypeMeeting, strings.TrimPrefix(itemID, "meeting-")
	default:
		return "", uuid.Nil, ErrInvalidItemID
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return "", uuid.Nil, ErrInvalidItemID
	}
	return kind, id, nil
}

// InMonth reports whether the item's date key falls inside the given
// YYYY-MM month prefix.
func (i *CalendarItem) InMonth(prefix string) bool {
	return strings.HasPrefix(i.DateKey, prefix+"-")
}
