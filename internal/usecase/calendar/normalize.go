package calendar

import (
	"time"

	"go.uber.org/zap"

	"github.com/incial/Incial/internal/domain/entities"
)

const dateKeyLayout = "2006-01-02"

// NewTaskItem projects one task onto the calendar. Closed tasks have no
// calendar presence and yield nil.
//
// The task groups under its due-date string verbatim: the due date is
// already a local-date-only value and converting it through an instant
// would shift it across timezones. Sort key stays 0 so tasks keep list
// order ahead of timed entries.
func NewTaskItem(t *entities.Task, companies entities.CompanyMap, logger *zap.Logger) *entities.CalendarItem {
	if t.Status.IsClosed() {
		return nil
	}

	key := t.DueDate
	if _, err := time.Parse(dateKeyLayout, t.DueDate); err != nil {
		logger.Warn("calendar.normalize.malformed_due_date",
			zap.String("task_id", t.ID.String()),
			zap.String("due_date", t.DueDate),
		)
		key = entities.InvalidDateKey
	}

	priority := string(t.Priority)
	return &entities.CalendarItem{
		ID:       entities.TaskItemID(t.ID),
		DateKey:  key,
		SortKey:  0,
		Title:    t.Title,
		Type:     entities.ItemTypeTask,
		Status:   string(t.Status),
		Priority: &priority,
		Company:  companies.NameFor(t.CompanyID),
		Task:     t,
	}
}

// NewMeetingItem projects one meeting onto the calendar. The grouping key is
// the local calendar date of the instant in the display location; the sort
// key is the instant itself.
func NewMeetingItem(m *entities.Meeting, companies entities.CompanyMap, loc *time.Location) *entities.CalendarItem {
	return &entities.CalendarItem{
		ID:      entities.MeetingItemID(m.ID),
		DateKey: m.StartTime.In(loc).Format(dateKeyLayout),
		SortKey: m.StartTime.UnixNano(),
		Title:   m.Title,
		Type:    entities.ItemTypeMeeting,
		Status:  string(m.Status),
		Company: companies.NameFor(m.CompanyID),
		Meeting: m,
	}
}

// Normalize projects raw task and meeting collections into the unified
// CalendarItem shape. Every non-closed task and every meeting yields exactly
// one item; the collection is recomputed wholesale on each fetch.
func Normalize(
	tasks []*entities.Task,
	meetings []*entities.Meeting,
	companies entities.CompanyMap,
	loc *time.Location,
	logger *zap.Logger,
) []*entities.CalendarItem {
	items := make([]*entities.CalendarItem, 0, len(tasks)+len(meetings))

	for _, t := range tasks {
		if item := NewTaskItem(t, companies, logger); item != nil {
			items = append(items, item)
		}
	}
	for _, m := range meetings {
		items = append(items, NewMeetingItem(m, companies, loc))
	}

	return items
}
