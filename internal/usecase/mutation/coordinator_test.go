package mutation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/incial/Incial/internal/domain/entities"
	"github.com/incial/Incial/internal/domain/repositories"
	"github.com/incial/Incial/internal/infrastructure/cache"
	"github.com/incial/Incial/internal/usecase/calendar"
)

type fakeTaskRepo struct {
	tasks       []*entities.Task
	getAllCalls int
	createCalls int
	updateCalls int
	deleteCalls int
	lastUpdate  repositories.TaskUpdate
	failWrites  bool
}

func (f *fakeTaskRepo) GetAll(ctx context.Context) ([]*entities.Task, error) {
	f.getAllCalls++
	return f.tasks, nil
}

func (f *fakeTaskRepo) Create(ctx context.Context, task *entities.Task) (*entities.Task, error) {
	f.createCalls++
	if f.failWrites {
		return nil, errors.New("upstream down")
	}
	stored := *task
	stored.ID = uuid.New()
	f.tasks = append(f.tasks, &stored)
	return &stored, nil
}

func (f *fakeTaskRepo) Update(ctx context.Context, id uuid.UUID, update repositories.TaskUpdate) (*entities.Task, error) {
	f.updateCalls++
	f.lastUpdate = update
	if f.failWrites {
		return nil, errors.New("upstream down")
	}
	for _, task := range f.tasks {
		if task.ID != id {
			continue
		}
		if update.Title != nil {
			task.Title = *update.Title
		}
		if update.Status != nil {
			task.Status = *update.Status
		}
		if update.Priority != nil {
			task.Priority = *update.Priority
		}
		if update.DueDate != nil {
			task.DueDate = *update.DueDate
		}
		task.UpdatedBy = update.UpdatedBy
		return task, nil
	}
	return nil, errors.New("task not found")
}

func (f *fakeTaskRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.deleteCalls++
	if f.failWrites {
		return errors.New("upstream down")
	}
	return nil
}

type fakeMeetingRepo struct {
	meetings    []*entities.Meeting
	getAllCalls int
	updateCalls int
	lastUpdate  repositories.MeetingUpdate
	failWrites  bool
}

func (f *fakeMeetingRepo) GetAll(ctx context.Context) ([]*entities.Meeting, error) {
	f.getAllCalls++
	return f.meetings, nil
}

func (f *fakeMeetingRepo) Create(ctx context.Context, meeting *entities.Meeting) (*entities.Meeting, error) {
	if f.failWrites {
		return nil, errors.New("upstream down")
	}
	stored := *meeting
	stored.ID = uuid.New()
	f.meetings = append(f.meetings, &stored)
	return &stored, nil
}

func (f *fakeMeetingRepo) Update(ctx context.Context, id uuid.UUID, update repositories.MeetingUpdate) (*entities.Meeting, error) {
	f.updateCalls++
	f.lastUpdate = update
	if f.failWrites {
		return nil, errors.New("upstream down")
	}
	for _, meeting := range f.meetings {
		if meeting.ID != id {
			continue
		}
		if update.Title != nil {
			meeting.Title = *update.Title
		}
		if update.Status != nil {
			meeting.Status = *update.Status
		}
		if update.StartTime != nil {
			meeting.StartTime = *update.StartTime
		}
		meeting.UpdatedBy = update.UpdatedBy
		return meeting, nil
	}
	return nil, errors.New("meeting not found")
}

func (f *fakeMeetingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.failWrites {
		return errors.New("upstream down")
	}
	return nil
}

type fakeCompanyRepo struct {
	companies []*entities.Company
}

func (f *fakeCompanyRepo) GetAll(ctx context.Context) ([]*entities.Company, error) {
	return f.companies, nil
}

type fixture struct {
	coordinator *Coordinator
	snapshot    *cache.Snapshot
	taskRepo    *fakeTaskRepo
	meetingRepo *fakeMeetingRepo
}

func newFixture(t *testing.T, loc *time.Location) *fixture {
	t.Helper()

	taskRepo := &fakeTaskRepo{}
	meetingRepo := &fakeMeetingRepo{}
	companyRepo := &fakeCompanyRepo{}
	snapshot := cache.NewSnapshot()
	logger := zap.NewNop()

	svc := calendar.NewService(taskRepo, meetingRepo, companyRepo, snapshot, loc, logger)
	coordinator := NewCoordinator(taskRepo, meetingRepo, svc, snapshot, loc, 100*time.Millisecond, logger)

	return &fixture{
		coordinator: coordinator,
		snapshot:    snapshot,
		taskRepo:    taskRepo,
		meetingRepo: meetingRepo,
	}
}

// seed installs records in the fakes and commits an initial refresh so the
// snapshot mirrors the upstream state.
func (fx *fixture) seed(t *testing.T, tasks []*entities.Task, meetings []*entities.Meeting) {
	t.Helper()

	fx.taskRepo.tasks = tasks
	fx.meetingRepo.meetings = meetings

	fx.taskRepo.getAllCalls = 0
	fx.meetingRepo.getAllCalls = 0

	gen := fx.snapshot.Begin()
	companies := entities.CompanyMap{}
	items := calendar.Normalize(tasks, meetings, companies, fx.coordinator.loc, zap.NewNop())
	if !fx.snapshot.Replace(gen, items, companies) {
		t.Fatalf("seed replace failed")
	}
}

func TestCreateTask(t *testing.T) {
	fx := newFixture(t, time.UTC)
	fx.seed(t, nil, nil)

	draft := entities.NewTask("Call back Acme", "2024-05-10", "dana")
	created, err := fx.coordinator.CreateTask(context.Background(), "dana", draft)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !created.IsPersisted() {
		t.Fatalf("created task should carry the stored id")
	}
	if created.UpdatedBy != "dana" {
		t.Fatalf("audit stamp missing, got %q", created.UpdatedBy)
	}
	if fx.taskRepo.createCalls != 1 || fx.taskRepo.updateCalls != 0 {
		t.Fatalf("create must not touch the update endpoint, got create=%d update=%d", fx.taskRepo.createCalls, fx.taskRepo.updateCalls)
	}

	if _, ok := fx.snapshot.Get(entities.TaskItemID(created.ID)); !ok {
		t.Fatalf("created task should appear in the snapshot")
	}
}

func TestCreateTask_ValidationShortCircuits(t *testing.T) {
	fx := newFixture(t, time.UTC)
	fx.seed(t, nil, nil)

	draft := entities.NewTask("", "2024-05-10", "dana")
	_, err := fx.coordinator.CreateTask(context.Background(), "dana", draft)
	if err == nil {
		t.Fatalf("expected a validation error for an empty title")
	}
	if fx.taskRepo.createCalls != 0 && fx.taskRepo.updateCalls != 0 {
		t.Fatalf("invalid draft must not reach the upstream API")
	}
}

func TestChangeTaskStatus_ClosedTaskLeavesCalendar(t *testing.T) {
	fx := newFixture(t, time.UTC)
	task := &entities.Task{ID: uuid.New(), Title: "Send quote", Status: entities.TaskStatusInProgress, Priority: entities.TaskPriorityHigh, DueDate: "2024-05-10"}
	fx.seed(t, []*entities.Task{task}, nil)

	if err := fx.coordinator.ChangeTaskStatus(context.Background(), "dana", task.ID, entities.TaskStatusCompleted); err != nil {
		t.Fatalf("change status: %v", err)
	}

	if _, ok := fx.snapshot.Get(entities.TaskItemID(task.ID)); ok {
		t.Fatalf("completed task should leave the calendar immediately")
	}
	if fx.taskRepo.updateCalls != 1 {
		t.Fatalf("expected one upstream update, got %d", fx.taskRepo.updateCalls)
	}
	if fx.taskRepo.lastUpdate.Status == nil || *fx.taskRepo.lastUpdate.Status != entities.TaskStatusCompleted {
		t.Fatalf("status not forwarded upstream: %+v", fx.taskRepo.lastUpdate)
	}
}

func TestChangeTaskStatus_ReopensCompletedTask(t *testing.T) {
	fx := newFixture(t, time.UTC)
	task := &entities.Task{ID: uuid.New(), Title: "Send quote", Status: entities.TaskStatusCompleted, Priority: entities.TaskPriorityHigh, DueDate: "2024-05-10"}
	fx.seed(t, []*entities.Task{task}, nil)

	// A completed task has no calendar projection, so the snapshot cannot
	// resolve it. Reopening must still reach the upstream API and put the
	// task back on the calendar from the stored record.
	if _, ok := fx.snapshot.Get(entities.TaskItemID(task.ID)); ok {
		t.Fatalf("completed task should not be in the snapshot")
	}

	if err := fx.coordinator.ChangeTaskStatus(context.Background(), "dana", task.ID, entities.TaskStatusInProgress); err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if fx.taskRepo.updateCalls != 1 {
		t.Fatalf("expected one upstream update, got %d", fx.taskRepo.updateCalls)
	}

	item, ok := fx.snapshot.Get(entities.TaskItemID(task.ID))
	if !ok {
		t.Fatalf("reopened task should re-enter the calendar")
	}
	if item.Status != string(entities.TaskStatusInProgress) {
		t.Fatalf("reopened status not visible in the snapshot: %s", item.Status)
	}
}

func TestChangeTaskStatus_UnknownTask(t *testing.T) {
	fx := newFixture(t, time.UTC)
	fx.seed(t, nil, nil)

	err := fx.coordinator.ChangeTaskStatus(context.Background(), "dana", uuid.New(), entities.TaskStatusCompleted)
	if err == nil {
		t.Fatalf("an id unknown upstream must surface the rejection")
	}
	if fx.taskRepo.updateCalls != 1 {
		t.Fatalf("a snapshot miss must still consult the upstream API, got %d calls", fx.taskRepo.updateCalls)
	}
}

func TestDeleteTask_OptimisticRemoval(t *testing.T) {
	fx := newFixture(t, time.UTC)
	task := &entities.Task{ID: uuid.New(), Title: "Old item", Status: entities.TaskStatusNotStarted, Priority: entities.TaskPriorityLow, DueDate: "2024-05-10"}
	fx.seed(t, []*entities.Task{task}, nil)

	if err := fx.coordinator.DeleteTask(context.Background(), task.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := fx.snapshot.Get(entities.TaskItemID(task.ID)); ok {
		t.Fatalf("deleted task should leave the snapshot")
	}
	if fx.taskRepo.deleteCalls != 1 {
		t.Fatalf("expected one upstream delete, got %d", fx.taskRepo.deleteCalls)
	}
}

func TestFailedWriteTriggersResync(t *testing.T) {
	fx := newFixture(t, time.UTC)
	task := &entities.Task{ID: uuid.New(), Title: "Send quote", Status: entities.TaskStatusInProgress, Priority: entities.TaskPriorityHigh, DueDate: "2024-05-10"}
	fx.seed(t, []*entities.Task{task}, nil)

	fx.taskRepo.failWrites = true
	err := fx.coordinator.ChangeTaskStatus(context.Background(), "dana", task.ID, entities.TaskStatusBlocked)
	if err == nil {
		t.Fatalf("the upstream failure must surface to the caller")
	}

	// The resync refetched every source so the optimistic patch cannot
	// outlive the stored truth.
	if fx.taskRepo.getAllCalls == 0 || fx.meetingRepo.getAllCalls == 0 {
		t.Fatalf("failed write should trigger a refetch, got tasks=%d meetings=%d", fx.taskRepo.getAllCalls, fx.meetingRepo.getAllCalls)
	}

	got, ok := fx.snapshot.Get(entities.TaskItemID(task.ID))
	if !ok {
		t.Fatalf("task should be restored by the resync")
	}
	if got.Status != string(entities.TaskStatusInProgress) {
		t.Fatalf("optimistic status survived the resync: %s", got.Status)
	}
}

func TestUpdateMeeting(t *testing.T) {
	fx := newFixture(t, time.UTC)
	meeting := &entities.Meeting{ID: uuid.New(), Title: "Kickoff", Status: entities.MeetingStatusScheduled, StartTime: time.Date(2024, 5, 10, 14, 0, 0, 0, time.UTC)}
	fx.seed(t, nil, []*entities.Meeting{meeting})

	title := "Kickoff (rescheduled)"
	updated, err := fx.coordinator.UpdateMeeting(context.Background(), "dana", meeting.ID, repositories.MeetingUpdate{Title: &title})
	if err != nil {
		t.Fatalf("update meeting: %v", err)
	}
	if updated.Title != "Kickoff (rescheduled)" {
		t.Fatalf("title not updated: %q", updated.Title)
	}
	if fx.meetingRepo.updateCalls != 1 {
		t.Fatalf("expected one upstream update, got %d", fx.meetingRepo.updateCalls)
	}

	item, _ := fx.snapshot.Get(entities.MeetingItemID(meeting.ID))
	if item == nil || item.Title != "Kickoff (rescheduled)" {
		t.Fatalf("snapshot not patched with the stored record")
	}
}

func TestChangeMeetingStatus(t *testing.T) {
	fx := newFixture(t, time.UTC)
	meeting := &entities.Meeting{ID: uuid.New(), Title: "Kickoff", Status: entities.MeetingStatusScheduled, StartTime: time.Date(2024, 5, 10, 14, 0, 0, 0, time.UTC)}
	fx.seed(t, nil, []*entities.Meeting{meeting})

	if err := fx.coordinator.ChangeMeetingStatus(context.Background(), "dana", meeting.ID, entities.MeetingStatusCancelled); err != nil {
		t.Fatalf("change status: %v", err)
	}

	item, ok := fx.snapshot.Get(entities.MeetingItemID(meeting.ID))
	if !ok || item.Status != string(entities.MeetingStatusCancelled) {
		t.Fatalf("cancelled status not visible in the snapshot")
	}
}
