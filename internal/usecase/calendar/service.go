package calendar

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/incial/Incial/errors"
	"github.com/incial/Incial/internal/domain/entities"
	"github.com/incial/Incial/internal/domain/repositories"
	"github.com/incial/Incial/internal/infrastructure/cache"
)

// refreshAttempts bounds how often a refresh re-fetches after being
// superseded by a concurrent optimistic edit.
const refreshAttempts = 3

// Service owns the derived calendar state: it fetches the three upstream
// collections, normalizes them into CalendarItems and serves the computed
// views from the snapshot.
type Service struct {
	taskRepo    repositories.TaskRepository
	meetingRepo repositories.MeetingRepository
	companyRepo repositories.CompanyRepository
	snapshot    *cache.Snapshot
	loc         *time.Location
	logger      *zap.Logger
}

// NewService creates a new calendar service
func NewService(
	taskRepo repositories.TaskRepository,
	meetingRepo repositories.MeetingRepository,
	companyRepo repositories.CompanyRepository,
	snapshot *cache.Snapshot,
	loc *time.Location,
	logger *zap.Logger,
) *Service {
	return &Service{
		taskRepo:    taskRepo,
		meetingRepo: meetingRepo,
		companyRepo: companyRepo,
		snapshot:    snapshot,
		loc:         loc,
		logger:      logger,
	}
}

// Refresh issues the three upstream reads in parallel, jointly awaits them,
// then normalizes and commits the snapshot. When a concurrent optimistic
// edit supersedes the fetch the whole read is re-run, so a slow fetch never
// clobbers a newer local patch.
func (s *Service) Refresh(ctx context.Context) error {
	for attempt := 0; attempt < refreshAttempts; attempt++ {
		gen := s.snapshot.Begin()

		var (
			tasks     []*entities.Task
			meetings  []*entities.Meeting
			companies []*entities.Company
		)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			tasks, err = s.taskRepo.GetAll(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			meetings, err = s.meetingRepo.GetAll(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			companies, err = s.companyRepo.GetAll(gctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return fmt.Errorf("failed to fetch calendar sources: %w", err)
		}

		companyMap := entities.BuildCompanyMap(companies)
		items := Normalize(tasks, meetings, companyMap, s.loc, s.logger)

		if s.snapshot.Replace(gen, items, companyMap) {
			s.logger.Info("calendar.refresh.committed",
				zap.Int("items", len(items)),
				zap.Int("tasks", len(tasks)),
				zap.Int("meetings", len(meetings)),
				zap.Int("companies", len(companies)),
			)
			return nil
		}

		s.logger.Info("calendar.refresh.superseded", zap.Uint64("generation", gen))
	}

	return errors.ErrStaleSnapshot()
}

// MonthView computes the month grid from the current snapshot.
func (s *Service) MonthView(year int, month time.Month, filter Filter, selectedKey string) *MonthView {
	return BuildMonthGrid(s.snapshot.Items(), year, month, filter, time.Now(), selectedKey, s.loc)
}

// DayAgenda returns one day's items sorted ascending by sort key.
func (s *Service) DayAgenda(dateKey string, filter Filter) ([]*entities.CalendarItem, error) {
	if _, err := time.Parse(dateKeyLayout, dateKey); err != nil {
		return nil, errors.ErrInvalidDate(dateKey)
	}
	return BuildDayAgenda(s.snapshot.Items(), dateKey, filter), nil
}

// MonthStats counts the displayed month's items for the header.
func (s *Service) MonthStats(year int, month time.Month) MonthStats {
	return ComputeMonthStats(s.snapshot.Items(), year, month)
}

// Item looks up a single calendar item by composite id.
func (s *Service) Item(itemID string) (*entities.CalendarItem, error) {
	item, ok := s.snapshot.Get(itemID)
	if !ok {
		return nil, errors.ErrCalendarItemNotFound(itemID)
	}
	return item, nil
}

// Location returns the display location used for date-key derivation.
func (s *Service) Location() *time.Location {
	return s.loc
}

// RefreshedAt reports when the snapshot last committed a full refresh.
func (s *Service) RefreshedAt() time.Time {
	return s.snapshot.RefreshedAt()
}
