package mutation

import (
	"context"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/incial/Incial/errors"
	"github.com/incial/Incial/internal/domain/entities"
	"github.com/incial/Incial/internal/domain/repositories"
	"github.com/incial/Incial/internal/infrastructure/cache"
	"github.com/incial/Incial/internal/usecase/calendar"
)

// Coordinator applies the optimistic-then-confirm-or-revert write flow:
// patch the local snapshot first, stamp audit fields, issue the single-shot
// upstream call, and on failure resynchronize by refetching. The upstream
// write itself is never retried; only the resync refetch backs off.
//
// The snapshot is a projection, not the record authority: a record absent
// from it (a closed task, or a cache that never warmed) is still updatable
// upstream and re-enters the calendar from the stored response.
type Coordinator struct {
	taskRepo      repositories.TaskRepository
	meetingRepo   repositories.MeetingRepository
	calendarSvc   *calendar.Service
	snapshot      *cache.Snapshot
	loc           *time.Location
	resyncMaxWait time.Duration
	logger        *zap.Logger

	// now is swappable for tests
	now func() time.Time
}

// NewCoordinator creates a new mutation coordinator
func NewCoordinator(
	taskRepo repositories.TaskRepository,
	meetingRepo repositories.MeetingRepository,
	calendarSvc *calendar.Service,
	snapshot *cache.Snapshot,
	loc *time.Location,
	resyncMaxWait time.Duration,
	logger *zap.Logger,
) *Coordinator {
	return &Coordinator{
		taskRepo:      taskRepo,
		meetingRepo:   meetingRepo,
		calendarSvc:   calendarSvc,
		snapshot:      snapshot,
		loc:           loc,
		resyncMaxWait: resyncMaxWait,
		logger:        logger,
		now:           time.Now,
	}
}

// CreateTask stores a new task upstream and patches its calendar projection
// into the snapshot.
func (c *Coordinator) CreateTask(ctx context.Context, editor string, task *entities.Task) (*entities.Task, error) {
	if err := task.Validate(); err != nil {
		return nil, errors.ErrInvalidArgument(err.Error())
	}
	task.StampAudit(editor, c.now())

	created, err := c.taskRepo.Create(ctx, task)
	if err != nil {
		return nil, err
	}
	c.patchTask(created)
	return created, nil
}

// UpdateTask applies a partial update to a task. When the record projects
// onto the calendar the edit is visible optimistically before the server
// confirms; on a snapshot miss the update still goes upstream and the stored
// record is installed from the response, so a completed task can be reopened
// and edits keep working before the first successful refresh.
func (c *Coordinator) UpdateTask(ctx context.Context, editor string, id uuid.UUID, update repositories.TaskUpdate) (*entities.Task, error) {
	update.UpdatedBy = editor

	item, ok := c.snapshot.Get(entities.TaskItemID(id))
	if ok && item.Task != nil {
		patched := *item.Task
		applyTaskUpdate(&patched, update)
		if err := patched.Validate(); err != nil {
			return nil, errors.ErrInvalidArgument(err.Error())
		}
		patched.StampAudit(editor, c.now())
		c.patchTask(&patched)
	}

	updated, err := c.taskRepo.Update(ctx, id, update)
	if err != nil {
		if ok {
			c.resync(ctx, "task.update")
		}
		return nil, err
	}
	c.patchTask(updated)
	return updated, nil
}

// ChangeTaskStatus applies a status change. A task closed by the change
// leaves the calendar at once; a closed task reopened by it comes back.
func (c *Coordinator) ChangeTaskStatus(ctx context.Context, editor string, id uuid.UUID, status entities.TaskStatus) error {
	if !status.IsValid() {
		return errors.ErrInvalidArgument("invalid task status")
	}
	_, err := c.UpdateTask(ctx, editor, id, repositories.TaskUpdate{Status: &status})
	return err
}

// DeleteTask removes a task optimistically, then upstream.
func (c *Coordinator) DeleteTask(ctx context.Context, id uuid.UUID) error {
	c.snapshot.Remove(entities.TaskItemID(id))
	if err := c.taskRepo.Delete(ctx, id); err != nil {
		c.resync(ctx, "task.delete")
		return err
	}
	return nil
}

// CreateMeeting stores a new meeting upstream and patches its calendar
// projection into the snapshot.
func (c *Coordinator) CreateMeeting(ctx context.Context, editor string, meeting *entities.Meeting) (*entities.Meeting, error) {
	if err := meeting.Validate(); err != nil {
		return nil, errors.ErrInvalidArgument(err.Error())
	}
	meeting.StampAudit(editor, c.now())

	created, err := c.meetingRepo.Create(ctx, meeting)
	if err != nil {
		return nil, err
	}
	c.patchMeeting(created)
	return created, nil
}

// UpdateMeeting applies a partial update to a meeting, optimistically when
// the record is in the snapshot, falling back to the upstream record on a
// miss.
func (c *Coordinator) UpdateMeeting(ctx context.Context, editor string, id uuid.UUID, update repositories.MeetingUpdate) (*entities.Meeting, error) {
	update.UpdatedBy = editor

	item, ok := c.snapshot.Get(entities.MeetingItemID(id))
	if ok && item.Meeting != nil {
		patched := *item.Meeting
		applyMeetingUpdate(&patched, update)
		if err := patched.Validate(); err != nil {
			return nil, errors.ErrInvalidArgument(err.Error())
		}
		patched.StampAudit(editor, c.now())
		c.patchMeeting(&patched)
	}

	updated, err := c.meetingRepo.Update(ctx, id, update)
	if err != nil {
		if ok {
			c.resync(ctx, "meeting.update")
		}
		return nil, err
	}
	c.patchMeeting(updated)
	return updated, nil
}

// ChangeMeetingStatus applies a status change.
func (c *Coordinator) ChangeMeetingStatus(ctx context.Context, editor string, id uuid.UUID, status entities.MeetingStatus) error {
	if !status.IsValid() {
		return errors.ErrInvalidArgument("invalid meeting status")
	}
	_, err := c.UpdateMeeting(ctx, editor, id, repositories.MeetingUpdate{Status: &status})
	return err
}

// DeleteMeeting removes a meeting optimistically, then upstream.
func (c *Coordinator) DeleteMeeting(ctx context.Context, id uuid.UUID) error {
	c.snapshot.Remove(entities.MeetingItemID(id))
	if err := c.meetingRepo.Delete(ctx, id); err != nil {
		c.resync(ctx, "meeting.delete")
		return err
	}
	return nil
}

// applyTaskUpdate merges the set fields of a partial update onto a task copy
// for the optimistic patch.
func applyTaskUpdate(t *entities.Task, u repositories.TaskUpdate) {
	if u.Title != nil {
		t.Title = *u.Title
	}
	if u.Status != nil {
		t.Status = *u.Status
	}
	if u.Priority != nil {
		t.Priority = *u.Priority
	}
	if u.DueDate != nil {
		t.DueDate = *u.DueDate
	}
	if u.CompanyID != nil {
		t.CompanyID = u.CompanyID
	}
	if u.Assignee != nil {
		t.Assignee = u.Assignee
	}
}

func applyMeetingUpdate(m *entities.Meeting, u repositories.MeetingUpdate) {
	if u.Title != nil {
		m.Title = *u.Title
	}
	if u.Status != nil {
		m.Status = *u.Status
	}
	if u.StartTime != nil {
		m.StartTime = *u.StartTime
	}
	if u.MeetingLink != nil {
		m.MeetingLink = u.MeetingLink
	}
	if u.CompanyID != nil {
		m.CompanyID = u.CompanyID
	}
}

// patchTask installs a task's calendar projection into the snapshot. A
// closed task has no projection, so its item is removed instead.
func (c *Coordinator) patchTask(t *entities.Task) {
	item := calendar.NewTaskItem(t, c.snapshot.Companies(), c.logger)
	if item == nil {
		c.snapshot.Remove(entities.TaskItemID(t.ID))
		return
	}
	c.snapshot.Patch(item)
}

func (c *Coordinator) patchMeeting(m *entities.Meeting) {
	c.snapshot.Patch(calendar.NewMeetingItem(m, c.snapshot.Companies(), c.loc))
}

// resync refetches the snapshot after a failed write so the optimistic
// patch cannot outlive the truth upstream. The refetch backs off until
// resyncMaxWait elapses; the failure that triggered it is still returned to
// the caller by the operation itself.
func (c *Coordinator) resync(ctx context.Context, op string) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxInterval = 5 * time.Second
	bo.MaxElapsedTime = c.resyncMaxWait

	refetch := func() error {
		return c.calendarSvc.Refresh(ctx)
	}

	if err := backoff.Retry(refetch, backoff.WithContext(bo, ctx)); err != nil {
		c.logger.Error("mutation.resync.failed",
			zap.String("operation", op),
			zap.Error(errors.ErrResyncFailed(err)),
		)
		return
	}

	c.logger.Info("mutation.resync.completed", zap.String("operation", op))
}
