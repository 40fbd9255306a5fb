package repository

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/incial/Incial/internal/domain/entities"
	"github.com/incial/Incial/internal/domain/repositories"
)

// TaskAPI implements repositories.TaskRepository against the upstream REST API
type TaskAPI struct {
	client *Client
}

// NewTaskAPI creates a new upstream task repository
func NewTaskAPI(client *Client) *TaskAPI {
	return &TaskAPI{client: client}
}

// GetAll retrieves every task record
func (r *TaskAPI) GetAll(ctx context.Context) ([]*entities.Task, error) {
	var tasks []*entities.Task
	req := r.client.http.R().
		SetContext(ctx).
		SetResult(&tasks)

	if _, err := r.client.execute(req, http.MethodGet, "/tasks", "tasks"); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Create creates a new task and returns the stored record
func (r *TaskAPI) Create(ctx context.Context, task *entities.Task) (*entities.Task, error) {
	var created entities.Task
	req := r.client.http.R().
		SetContext(ctx).
		SetBody(task).
		SetResult(&created)

	if _, err := r.client.execute(req, http.MethodPost, "/tasks", "tasks"); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update applies a partial update to an existing task. Only the fields set
// on the update are sent so untouched columns keep their upstream values.
func (r *TaskAPI) Update(ctx context.Context, id uuid.UUID, update repositories.TaskUpdate) (*entities.Task, error) {
	body := map[string]interface{}{}
	if update.Title != nil {
		body["title"] = *update.Title
	}
	if update.Status != nil {
		body["status"] = *update.Status
	}
	if update.Priority != nil {
		body["priority"] = *update.Priority
	}
	if update.DueDate != nil {
		body["due_date"] = *update.DueDate
	}
	if update.CompanyID != nil {
		body["company_id"] = update.CompanyID.String()
	}
	if update.Assignee != nil {
		body["assignee"] = *update.Assignee
	}
	if update.UpdatedBy != "" {
		body["updated_by"] = update.UpdatedBy
	}

	var updated entities.Task
	req := r.client.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&updated)

	if _, err := r.client.execute(req, http.MethodPatch, "/tasks/"+id.String(), "tasks"); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a task
func (r *TaskAPI) Delete(ctx context.Context, id uuid.UUID) error {
	req := r.client.http.R().SetContext(ctx)
	_, err := r.client.execute(req, http.MethodDelete, "/tasks/"+id.String(), "tasks")
	return err
}
