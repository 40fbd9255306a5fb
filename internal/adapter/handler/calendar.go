package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/incial/Incial/errors"
	"github.com/incial/Incial/internal/adapter/dto/calendarview"
	"github.com/incial/Incial/internal/adapter/presenter"
	"github.com/incial/Incial/internal/domain/entities"
	calendarUsecase "github.com/incial/Incial/internal/usecase/calendar"
	"github.com/incial/Incial/internal/usecase/mutation"
)

// Calendar handles calendar view and mutation HTTP requests
type Calendar struct {
	calendarSvc *calendarUsecase.Service
	coordinator *mutation.Coordinator
	companies   companySource
	logger      *zap.Logger
}

// companySource exposes the snapshot's company lookup to the presenters.
type companySource interface {
	Companies() entities.CompanyMap
}

// NewCalendarHandler creates a new calendar handler
func NewCalendarHandler(
	calendarSvc *calendarUsecase.Service,
	coordinator *mutation.Coordinator,
	companies companySource,
	logger *zap.Logger,
) *Calendar {
	return &Calendar{
		calendarSvc: calendarSvc,
		coordinator: coordinator,
		companies:   companies,
		logger:      logger,
	}
}

// filterFrom builds the view filter from the shared toggle parameters.
// Toggles default to on; an absent parameter never hides a type.
func filterFrom(showTasks, showMeetings *bool, status, search string) calendarUsecase.Filter {
	filter := calendarUsecase.DefaultFilter()
	if showTasks != nil {
		filter.ShowTasks = *showTasks
	}
	if showMeetings != nil {
		filter.ShowMeetings = *showMeetings
	}
	filter.Status = status
	filter.Search = search
	return filter
}

// Month handles GET /calendar/month
// @Summary      Month grid
// @Description  Computes the month grid with per-day item buckets and header stats
// @Tags         Calendar
// @Produce      json
// @Security     BearerAuth
// @Param        year          query  int     true   "Year"
// @Param        month         query  int     true   "Month (1-12)"
// @Param        show_tasks    query  bool    false  "Task toggle (default true)"
// @Param        show_meetings query  bool    false  "Meeting toggle (default true)"
// @Param        selected      query  string  false  "Selected day (YYYY-MM-DD)"
// @Router       /calendar/month [get]
func (h *Calendar) Month(c echo.Context) error {
	var req calendarview.MonthRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	filter := filterFrom(req.ShowTasks, req.ShowMeetings, "", "")
	view := h.calendarSvc.MonthView(req.Year, time.Month(req.Month), filter, req.Selected)
	response := presenter.ToMonthResponse(view, h.companies.Companies(), h.calendarSvc.RefreshedAt())

	return HandleSuccess(h.logger, c, http.StatusOK, response)
}

// Day handles GET /calendar/day/:date
// @Summary      Day agenda
// @Description  Returns one day's items sorted ascending by sort key
// @Tags         Calendar
// @Produce      json
// @Security     BearerAuth
// @Param        date  path  string  true  "Day (YYYY-MM-DD)"
// @Router       /calendar/day/{date} [get]
func (h *Calendar) Day(c echo.Context) error {
	var req calendarview.DayRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	dateKey := c.Param("date")
	filter := filterFrom(req.ShowTasks, req.ShowMeetings, req.Status, req.Search)

	items, err := h.calendarSvc.DayAgenda(dateKey, filter)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	response := &calendarview.AgendaResponse{
		DateKey: dateKey,
		Items:   presenter.ToItemListResponse(items, h.companies.Companies()),
	}
	return HandleSuccess(h.logger, c, http.StatusOK, response)
}

// Stats handles GET /calendar/stats
// @Summary      Month statistics
// @Tags         Calendar
// @Produce      json
// @Security     BearerAuth
// @Router       /calendar/stats [get]
func (h *Calendar) Stats(c echo.Context) error {
	var req calendarview.StatsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	stats := h.calendarSvc.MonthStats(req.Year, time.Month(req.Month))
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToStatsResponse(stats))
}

// Refresh handles POST /calendar/refresh
// @Summary      Refetch the three upstream collections and rebuild the snapshot
// @Tags         Calendar
// @Produce      json
// @Security     BearerAuth
// @Router       /calendar/refresh [post]
func (h *Calendar) Refresh(c echo.Context) error {
	if err := h.calendarSvc.Refresh(c.Request().Context()); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, map[string]interface{}{
		"refreshed_at": h.calendarSvc.RefreshedAt(),
	})
}

// Reschedule handles POST /calendar/reschedule
// @Summary      Drag-and-drop reschedule
// @Description  Moves a task's due date or a meeting's calendar date; dropping onto the current day is a no-op
// @Tags         Calendar
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Router       /calendar/reschedule [post]
func (h *Calendar) Reschedule(c echo.Context) error {
	var req calendarview.RescheduleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	user, ok := currentUser(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	result, err := h.coordinator.Reschedule(c.Request().Context(), user.Name, req.ItemID, req.TargetDate)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	response := &calendarview.RescheduleResponse{
		Moved: result.Moved,
		Item:  presenter.ToItemResponse(result.Item, h.companies.Companies()),
	}
	return HandleSuccess(h.logger, c, http.StatusOK, response)
}

// QuickAdd handles POST /calendar/quick-add
// @Summary      Pre-fill a draft for a day's quick-add affordance
// @Tags         Calendar
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Router       /calendar/quick-add [post]
func (h *Calendar) QuickAdd(c echo.Context) error {
	var req calendarview.QuickAddRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	user, ok := currentUser(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	companies := h.companies.Companies()
	response := &calendarview.QuickAddResponse{Kind: req.Kind}

	switch req.Kind {
	case "task":
		draft, err := h.coordinator.DraftTask(user.Name, req.Date)
		if err != nil {
			return HandleError(h.logger, c, err)
		}
		response.Task = presenter.ToTaskResponse(draft, companies)
	case "meeting":
		draft, err := h.coordinator.DraftMeeting(req.Date)
		if err != nil {
			return HandleError(h.logger, c, err)
		}
		response.Meeting = presenter.ToMeetingResponse(draft, companies)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, response)
}

// Popover handles GET /calendar/popover
// @Summary      Clamped popover placement
// @Description  Computes a popover origin that stays fully inside the viewport
// @Tags         Calendar
// @Produce      json
// @Security     BearerAuth
// @Router       /calendar/popover [get]
func (h *Calendar) Popover(c echo.Context) error {
	var req calendarview.PopoverRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	placement := calendarUsecase.PlacePopover(
		req.AnchorX, req.AnchorY,
		req.Width, req.Height,
		req.ViewportW, req.ViewportH,
	)
	return HandleSuccess(h.logger, c, http.StatusOK, placement)
}
