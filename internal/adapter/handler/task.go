package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/incial/Incial/errors"
	taskdto "github.com/incial/Incial/internal/adapter/dto/task"
	"github.com/incial/Incial/internal/adapter/presenter"
	"github.com/incial/Incial/internal/domain/entities"
	"github.com/incial/Incial/internal/domain/repositories"
	"github.com/incial/Incial/internal/usecase/mutation"
)

// Task handles task HTTP requests. Reads proxy the upstream collection;
// writes go through the mutation coordinator so the calendar snapshot stays
// optimistically patched.
type Task struct {
	taskRepo    repositories.TaskRepository
	coordinator *mutation.Coordinator
	companies   companySource
	logger      *zap.Logger
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(
	taskRepo repositories.TaskRepository,
	coordinator *mutation.Coordinator,
	companies companySource,
	logger *zap.Logger,
) *Task {
	return &Task{
		taskRepo:    taskRepo,
		coordinator: coordinator,
		companies:   companies,
		logger:      logger,
	}
}

// List handles GET /tasks
func (h *Task) List(c echo.Context) error {
	tasks, err := h.taskRepo.GetAll(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToTaskListResponse(tasks, h.companies.Companies()))
}

// Create handles POST /tasks
func (h *Task) Create(c echo.Context) error {
	var req taskdto.CreateTaskRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	user, ok := currentUser(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	task := &entities.Task{
		Title:    req.Title,
		Status:   entities.TaskStatusNotStarted,
		Priority: entities.TaskPriorityMedium,
		DueDate:  req.DueDate,
		Assignee: req.Assignee,
	}
	if req.Status != "" {
		task.Status = entities.TaskStatus(req.Status)
	}
	if req.Priority != "" {
		task.Priority = entities.TaskPriority(req.Priority)
	}
	if req.CompanyID != nil {
		id, err := uuid.Parse(*req.CompanyID)
		if err != nil {
			return HandleError(h.logger, c, errors.ErrInvalidArgument("company_id must be a valid UUID"))
		}
		task.CompanyID = &id
	}

	created, err := h.coordinator.CreateTask(c.Request().Context(), user.Name, task)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusCreated, presenter.ToTaskResponse(created, h.companies.Companies()))
}

// Update handles PATCH /tasks/:id
func (h *Task) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("task ID must be a valid UUID"))
	}

	var req taskdto.UpdateTaskRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	user, ok := currentUser(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	update := repositories.TaskUpdate{
		Title:    req.Title,
		DueDate:  req.DueDate,
		Assignee: req.Assignee,
	}
	if req.Status != nil {
		status := entities.TaskStatus(*req.Status)
		update.Status = &status
	}
	if req.Priority != nil {
		priority := entities.TaskPriority(*req.Priority)
		update.Priority = &priority
	}
	if req.CompanyID != nil {
		companyID, err := uuid.Parse(*req.CompanyID)
		if err != nil {
			return HandleError(h.logger, c, errors.ErrInvalidArgument("company_id must be a valid UUID"))
		}
		update.CompanyID = &companyID
	}

	updated, err := h.coordinator.UpdateTask(c.Request().Context(), user.Name, id, update)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToTaskResponse(updated, h.companies.Companies()))
}

// ChangeStatus handles PATCH /tasks/:id/status
func (h *Task) ChangeStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("task ID must be a valid UUID"))
	}

	var req taskdto.ChangeStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	user, ok := currentUser(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	if err := h.coordinator.ChangeTaskStatus(c.Request().Context(), user.Name, id, entities.TaskStatus(req.Status)); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, nil)
}

// Delete handles DELETE /tasks/:id
func (h *Task) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("task ID must be a valid UUID"))
	}

	if err := h.coordinator.DeleteTask(c.Request().Context(), id); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, nil)
}
