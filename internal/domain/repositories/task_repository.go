package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/incial/Incial/internal/domain/entities"
)

// TaskUpdate carries the partial fields of a task update. Nil fields are
// left untouched upstream.
type TaskUpdate struct {
	Title     *string
	Status    *entities.TaskStatus
	Priority  *entities.TaskPriority
	DueDate   *string
	CompanyID *uuid.UUID
	Assignee  *string
	UpdatedBy string
}

// TaskRepository defines the interface for task data access on the upstream API
type TaskRepository interface {
	// GetAll retrieves every task record
	GetAll(ctx context.Context) ([]*entities.Task, error)

	// Create creates a new task and returns the stored record
	Create(ctx context.Context, task *entities.Task) (*entities.Task, error)

	// Update applies a partial update to an existing task
	Update(ctx context.Context, id uuid.UUID, update TaskUpdate) (*entities.Task, error)

	// Delete removes a task
	Delete(ctx context.Context, id uuid.UUID) error
}
