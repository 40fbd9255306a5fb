package entities

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents the workflow state of a task
type TaskStatus string

const (
	TaskStatusNotStarted TaskStatus = "Not Started"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusBlocked    TaskStatus = "Blocked"
	TaskStatusCompleted  TaskStatus = "Completed"
	TaskStatusDone       TaskStatus = "Done"
)

// IsValid checks if the task status is valid
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusNotStarted, TaskStatusInProgress, TaskStatusBlocked, TaskStatusCompleted, TaskStatusDone:
		return true
	}
	return false
}

// IsClosed reports whether the status removes the task from the calendar.
// Both "Completed" and "Done" exist upstream; they are treated identically.
func (s TaskStatus) IsClosed() bool {
	return s == TaskStatusCompleted || s == TaskStatusDone
}

// TaskPriority represents task priority
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "Low"
	TaskPriorityMedium TaskPriority = "Medium"
	TaskPriorityHigh   TaskPriority = "High"
)

// IsValid checks if the task priority is valid
func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

// Task represents a task record owned by the upstream API.
// DueDate is kept as the upstream date-only string (YYYY-MM-DD), never parsed
// into an instant: the due date has no time-of-day and must not shift across
// timezones.
type Task struct {
	ID        uuid.UUID    `json:"id"`
	Title     string       `json:"title"`
	Status    TaskStatus   `json:"status"`
	Priority  TaskPriority `json:"priority"`
	DueDate   string       `json:"due_date"`
	CompanyID *uuid.UUID   `json:"company_id,omitempty"`
	Assignee  *string      `json:"assignee,omitempty"`
	UpdatedBy string       `json:"updated_by,omitempty"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// NewTask creates a task draft with upstream defaults.
func NewTask(title, dueDate, assignee string) *Task {
	return &Task{
		Title:     title,
		Status:    TaskStatusNotStarted,
		Priority:  TaskPriorityMedium,
		DueDate:   dueDate,
		Assignee:  &assignee,
		UpdatedAt: time.Now(),
	}
}

// IsPersisted reports whether the task already exists upstream.
// Create vs. update is decided by presence of the record id.
func (t *Task) IsPersisted() bool {
	return t.ID != uuid.Nil
}

// StampAudit records the last editor before a write is sent upstream.
func (t *Task) StampAudit(editor string, at time.Time) {
	t.UpdatedBy = editor
	t.UpdatedAt = at
}

// Validate validates task data
func (t *Task) Validate() error {
	if t.Title == "" {
		return ErrInvalidTitle
	}
	if !t.Status.IsValid() {
		return ErrInvalidStatus
	}
	if !t.Priority.IsValid() {
		return ErrInvalidPriority
	}
	return nil
}
