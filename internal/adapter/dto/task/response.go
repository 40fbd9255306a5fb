package task

import "time"

// TaskResponse represents a task in responses
type TaskResponse struct {
	ID        string    `json:"id,omitempty"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	Priority  string    `json:"priority"`
	DueDate   string    `json:"due_date"`
	CompanyID *string   `json:"company_id,omitempty"`
	Company   string    `json:"company,omitempty"`
	Assignee  *string   `json:"assignee,omitempty"`
	UpdatedBy string    `json:"updated_by,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TaskListResponse represents a list of tasks
type TaskListResponse struct {
	Tasks []*TaskResponse `json:"tasks"`
	Total int             `json:"total"`
}
