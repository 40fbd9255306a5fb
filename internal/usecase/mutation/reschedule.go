package mutation

import (
	"context"
	"time"

	"github.com/incial/Incial/errors"
	"github.com/incial/Incial/internal/domain/entities"
	"github.com/incial/Incial/internal/domain/repositories"
)

// RescheduleResult reports the outcome of a drag-reschedule.
type RescheduleResult struct {
	// Moved is false for a drop onto the item's current day: a no-op with
	// no upstream call.
	Moved bool
	Item  *entities.CalendarItem
}

// RescheduleInstant replaces the calendar date of an instant while keeping
// its local wall-clock hour and minute. The fields are reassembled
// explicitly in the display location; round-tripping the instant through a
// UTC string would shift the wall time.
func RescheduleInstant(orig time.Time, year int, month time.Month, day int, loc *time.Location) time.Time {
	local := orig.In(loc)
	return time.Date(year, month, day, local.Hour(), local.Minute(), 0, 0, loc)
}

// Reschedule handles a drag-and-drop of a calendar item onto a target day.
// A task changes only its due-date grouping key; a meeting keeps its
// original hour and minute and swaps the calendar date component.
func (c *Coordinator) Reschedule(ctx context.Context, editor, itemID, targetKey string) (*RescheduleResult, error) {
	target, err := time.ParseInLocation("2006-01-02", targetKey, c.loc)
	if err != nil {
		return nil, errors.ErrInvalidDate(targetKey)
	}

	kind, _, err := entities.SourceID(itemID)
	if err != nil {
		return nil, errors.ErrCalendarItemNotFound(itemID)
	}

	item, ok := c.snapshot.Get(itemID)
	if !ok {
		return nil, errors.ErrCalendarItemNotFound(itemID)
	}

	if item.DateKey == targetKey {
		return &RescheduleResult{Moved: false, Item: item}, nil
	}

	if kind == entities.ItemTypeTask {
		return c.rescheduleTask(ctx, editor, item, targetKey)
	}
	return c.rescheduleMeeting(ctx, editor, item, target)
}

func (c *Coordinator) rescheduleTask(ctx context.Context, editor string, item *entities.CalendarItem, targetKey string) (*RescheduleResult, error) {
	patched := *item.Task
	patched.DueDate = targetKey
	patched.StampAudit(editor, c.now())
	c.patchTask(&patched)

	update := repositories.TaskUpdate{DueDate: &targetKey, UpdatedBy: editor}
	if _, err := c.taskRepo.Update(ctx, patched.ID, update); err != nil {
		c.resync(ctx, "task.reschedule")
		return nil, err
	}

	moved, _ := c.snapshot.Get(item.ID)
	return &RescheduleResult{Moved: true, Item: moved}, nil
}

func (c *Coordinator) rescheduleMeeting(ctx context.Context, editor string, item *entities.CalendarItem, target time.Time) (*RescheduleResult, error) {
	newStart := RescheduleInstant(item.Meeting.StartTime, target.Year(), target.Month(), target.Day(), c.loc)

	patched := *item.Meeting
	patched.StartTime = newStart
	patched.StampAudit(editor, c.now())
	c.patchMeeting(&patched)

	update := repositories.MeetingUpdate{StartTime: &newStart, UpdatedBy: editor}
	if _, err := c.meetingRepo.Update(ctx, patched.ID, update); err != nil {
		c.resync(ctx, "meeting.reschedule")
		return nil, err
	}

	moved, _ := c.snapshot.Get(item.ID)
	return &RescheduleResult{Moved: true, Item: moved}, nil
}
