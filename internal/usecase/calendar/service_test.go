package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/incial/Incial/errors"
	"github.com/incial/Incial/internal/domain/entities"
	"github.com/incial/Incial/internal/domain/repositories"
	"github.com/incial/Incial/internal/infrastructure/cache"
)

type stubTaskRepo struct {
	tasks []*entities.Task
	err   error
	// onGetAll runs before each fetch, used to race edits against a refresh
	onGetAll func()
	calls    int
}

func (s *stubTaskRepo) GetAll(ctx context.Context) ([]*entities.Task, error) {
	s.calls++
	if s.onGetAll != nil {
		s.onGetAll()
	}
	return s.tasks, s.err
}

func (s *stubTaskRepo) Create(ctx context.Context, task *entities.Task) (*entities.Task, error) {
	return task, nil
}

func (s *stubTaskRepo) Update(ctx context.Context, id uuid.UUID, update repositories.TaskUpdate) (*entities.Task, error) {
	return nil, errors.New("not implemented")
}

func (s *stubTaskRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type stubMeetingRepo struct {
	meetings []*entities.Meeting
	err      error
}

func (s *stubMeetingRepo) GetAll(ctx context.Context) ([]*entities.Meeting, error) {
	return s.meetings, s.err
}

func (s *stubMeetingRepo) Create(ctx context.Context, meeting *entities.Meeting) (*entities.Meeting, error) {
	return meeting, nil
}

func (s *stubMeetingRepo) Update(ctx context.Context, id uuid.UUID, update repositories.MeetingUpdate) (*entities.Meeting, error) {
	return nil, errors.New("not implemented")
}

func (s *stubMeetingRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type stubCompanyRepo struct {
	companies []*entities.Company
	err       error
}

func (s *stubCompanyRepo) GetAll(ctx context.Context) ([]*entities.Company, error) {
	return s.companies, s.err
}

func TestRefresh_CommitsNormalizedSnapshot(t *testing.T) {
	companyID := uuid.New()
	taskRepo := &stubTaskRepo{tasks: []*entities.Task{
		{ID: uuid.New(), Title: "Call back", Status: entities.TaskStatusNotStarted, Priority: entities.TaskPriorityMedium, DueDate: "2024-05-10", CompanyID: &companyID},
	}}
	meetingRepo := &stubMeetingRepo{meetings: []*entities.Meeting{
		{ID: uuid.New(), Title: "Kickoff", Status: entities.MeetingStatusScheduled, StartTime: time.Date(2024, 5, 12, 10, 0, 0, 0, time.UTC)},
	}}
	companyRepo := &stubCompanyRepo{companies: []*entities.Company{
		{ID: companyID, Name: "Acme Corp"},
	}}

	snapshot := cache.NewSnapshot()
	svc := NewService(taskRepo, meetingRepo, companyRepo, snapshot, time.UTC, zap.NewNop())

	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	items := snapshot.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Company != "Acme Corp" {
		t.Fatalf("company not joined onto the task: %q", items[0].Company)
	}
	if snapshot.RefreshedAt().IsZero() {
		t.Fatalf("refresh timestamp missing")
	}
}

func TestRefresh_FetchFailureLeavesSnapshotIntact(t *testing.T) {
	taskRepo := &stubTaskRepo{tasks: []*entities.Task{
		{ID: uuid.New(), Title: "Call back", Status: entities.TaskStatusNotStarted, Priority: entities.TaskPriorityMedium, DueDate: "2024-05-10"},
	}}
	meetingRepo := &stubMeetingRepo{}
	companyRepo := &stubCompanyRepo{}

	snapshot := cache.NewSnapshot()
	svc := NewService(taskRepo, meetingRepo, companyRepo, snapshot, time.UTC, zap.NewNop())
	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("first refresh: %v", err)
	}

	meetingRepo.err = errors.New("upstream down")
	if err := svc.Refresh(context.Background()); err == nil {
		t.Fatalf("expected the joint fetch to fail")
	}

	// The previous snapshot stays served.
	if len(snapshot.Items()) != 1 {
		t.Fatalf("failed refresh must not clear the snapshot")
	}
}

func TestRefresh_SupersededByEditRetries(t *testing.T) {
	taskRepo := &stubTaskRepo{}
	meetingRepo := &stubMeetingRepo{}
	companyRepo := &stubCompanyRepo{}

	snapshot := cache.NewSnapshot()
	svc := NewService(taskRepo, meetingRepo, companyRepo, snapshot, time.UTC, zap.NewNop())

	// The first fetch is raced by an optimistic edit, forcing a re-run.
	raced := false
	taskRepo.onGetAll = func() {
		if !raced {
			raced = true
			snapshot.Patch(&entities.CalendarItem{ID: "task-race", DateKey: "2024-05-10", Type: entities.ItemTypeTask, Title: "Edited"})
		}
	}

	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh should retry past a single superseding edit: %v", err)
	}
	if taskRepo.calls != 2 {
		t.Fatalf("expected 2 fetch rounds, got %d", taskRepo.calls)
	}
}

func TestRefresh_GivesUpAfterRepeatedSupersession(t *testing.T) {
	taskRepo := &stubTaskRepo{}
	meetingRepo := &stubMeetingRepo{}
	companyRepo := &stubCompanyRepo{}

	snapshot := cache.NewSnapshot()
	svc := NewService(taskRepo, meetingRepo, companyRepo, snapshot, time.UTC, zap.NewNop())

	// Every fetch round is raced by another edit.
	taskRepo.onGetAll = func() {
		snapshot.Patch(&entities.CalendarItem{ID: "task-race", DateKey: "2024-05-10", Type: entities.ItemTypeTask, Title: "Edited"})
	}

	err := svc.Refresh(context.Background())
	var appErr apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_CALENDAR_STALE_SNAPSHOT {
		t.Fatalf("expected stale-snapshot error, got %v", err)
	}
	if taskRepo.calls != refreshAttempts {
		t.Fatalf("expected %d fetch rounds, got %d", refreshAttempts, taskRepo.calls)
	}
}

func TestDayAgenda_ValidatesDate(t *testing.T) {
	snapshot := cache.NewSnapshot()
	svc := NewService(&stubTaskRepo{}, &stubMeetingRepo{}, &stubCompanyRepo{}, snapshot, time.UTC, zap.NewNop())

	if _, err := svc.DayAgenda("10-05-2024", DefaultFilter()); err == nil {
		t.Fatalf("expected invalid-date error")
	}
	if _, err := svc.DayAgenda("2024-05-10", DefaultFilter()); err != nil {
		t.Fatalf("valid date rejected: %v", err)
	}
}

func TestItem_Lookup(t *testing.T) {
	snapshot := cache.NewSnapshot()
	svc := NewService(&stubTaskRepo{}, &stubMeetingRepo{}, &stubCompanyRepo{}, snapshot, time.UTC, zap.NewNop())

	snapshot.Patch(&entities.CalendarItem{ID: "task-a", DateKey: "2024-05-10", Type: entities.ItemTypeTask, Title: "A"})

	if _, err := svc.Item("task-a"); err != nil {
		t.Fatalf("lookup: %v", err)
	}

	_, err := svc.Item("task-missing")
	var appErr apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_CALENDAR_ITEM_NOT_FOUND {
		t.Fatalf("expected item-not-found, got %v", err)
	}
}
