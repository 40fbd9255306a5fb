package presenter

import (
	"github.com/google/uuid"

	"github.com/incial/Incial/internal/adapter/dto/task"
	"github.com/incial/Incial/internal/domain/entities"
)

// ToTaskResponse converts a Task entity to TaskResponse DTO
func ToTaskResponse(t *entities.Task, companies entities.CompanyMap) *task.TaskResponse {
	if t == nil {
		return nil
	}

	response := &task.TaskResponse{
		Title:     t.Title,
		Status:    string(t.Status),
		Priority:  string(t.Priority),
		DueDate:   t.DueDate,
		Assignee:  t.Assignee,
		Company:   companies.NameFor(t.CompanyID),
		UpdatedBy: t.UpdatedBy,
		UpdatedAt: t.UpdatedAt,
	}
	if t.ID != uuid.Nil {
		response.ID = t.ID.String()
	}
	if t.CompanyID != nil {
		id := t.CompanyID.String()
		response.CompanyID = &id
	}
	return response
}

// ToTaskListResponse converts a task collection
func ToTaskListResponse(tasks []*entities.Task, companies entities.CompanyMap) *task.TaskListResponse {
	out := make([]*task.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, ToTaskResponse(t, companies))
	}
	return &task.TaskListResponse{Tasks: out, Total: len(out)}
}
