package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/incial/Incial/errors"
	meetingdto "github.com/incial/Incial/internal/adapter/dto/meeting"
	"github.com/incial/Incial/internal/adapter/presenter"
	"github.com/incial/Incial/internal/domain/entities"
	"github.com/incial/Incial/internal/domain/repositories"
	"github.com/incial/Incial/internal/usecase/mutation"
)

// Meeting handles meeting HTTP requests for the meeting-tracker view.
type Meeting struct {
	meetingRepo repositories.MeetingRepository
	coordinator *mutation.Coordinator
	companies   companySource
	logger      *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(
	meetingRepo repositories.MeetingRepository,
	coordinator *mutation.Coordinator,
	companies companySource,
	logger *zap.Logger,
) *Meeting {
	return &Meeting{
		meetingRepo: meetingRepo,
		coordinator: coordinator,
		companies:   companies,
		logger:      logger,
	}
}

// List handles GET /meetings
func (h *Meeting) List(c echo.Context) error {
	meetings, err := h.meetingRepo.GetAll(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToMeetingListResponse(meetings, h.companies.Companies()))
}

// Create handles POST /meetings
func (h *Meeting) Create(c echo.Context) error {
	var req meetingdto.CreateMeetingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	user, ok := currentUser(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	meeting := &entities.Meeting{
		Title:       req.Title,
		Status:      entities.MeetingStatusScheduled,
		StartTime:   *req.StartTime,
		MeetingLink: req.MeetingLink,
	}
	if req.Status != "" {
		meeting.Status = entities.MeetingStatus(req.Status)
	}
	if req.CompanyID != nil {
		id, err := uuid.Parse(*req.CompanyID)
		if err != nil {
			return HandleError(h.logger, c, errors.ErrInvalidArgument("company_id must be a valid UUID"))
		}
		meeting.CompanyID = &id
	}

	created, err := h.coordinator.CreateMeeting(c.Request().Context(), user.Name, meeting)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusCreated, presenter.ToMeetingResponse(created, h.companies.Companies()))
}

// Update handles PATCH /meetings/:id
func (h *Meeting) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("meeting ID must be a valid UUID"))
	}

	var req meetingdto.UpdateMeetingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	user, ok := currentUser(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	update := repositories.MeetingUpdate{
		Title:       req.Title,
		StartTime:   req.StartTime,
		MeetingLink: req.MeetingLink,
	}
	if req.Status != nil {
		status := entities.MeetingStatus(*req.Status)
		update.Status = &status
	}
	if req.CompanyID != nil {
		companyID, err := uuid.Parse(*req.CompanyID)
		if err != nil {
			return HandleError(h.logger, c, errors.ErrInvalidArgument("company_id must be a valid UUID"))
		}
		update.CompanyID = &companyID
	}

	updated, err := h.coordinator.UpdateMeeting(c.Request().Context(), user.Name, id, update)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToMeetingResponse(updated, h.companies.Companies()))
}

// ChangeStatus handles PATCH /meetings/:id/status
func (h *Meeting) ChangeStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("meeting ID must be a valid UUID"))
	}

	var req meetingdto.ChangeStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	user, ok := currentUser(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	if err := h.coordinator.ChangeMeetingStatus(c.Request().Context(), user.Name, id, entities.MeetingStatus(req.Status)); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, nil)
}

// Delete handles DELETE /meetings/:id
func (h *Meeting) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("meeting ID must be a valid UUID"))
	}

	if err := h.coordinator.DeleteMeeting(c.Request().Context(), id); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, nil)
}
