package task

// CreateTaskRequest represents the request to create a task
type CreateTaskRequest struct {
	Title     string  `json:"title" validate:"required,min=1,max=255"`
	Status    string  `json:"status" validate:"omitempty,oneof='Not Started' 'In Progress' 'Blocked' 'Completed' 'Done'"`
	Priority  string  `json:"priority" validate:"omitempty,oneof=Low Medium High"`
	DueDate   string  `json:"due_date" validate:"required,datekey"`
	CompanyID *string `json:"company_id,omitempty" validate:"omitempty,uuid"`
	Assignee  *string `json:"assignee,omitempty"`
}

// UpdateTaskRequest represents the request to update a task
type UpdateTaskRequest struct {
	Title     *string `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Status    *string `json:"status,omitempty" validate:"omitempty,oneof='Not Started' 'In Progress' 'Blocked' 'Completed' 'Done'"`
	Priority  *string `json:"priority,omitempty" validate:"omitempty,oneof=Low Medium High"`
	DueDate   *string `json:"due_date,omitempty" validate:"omitempty,datekey"`
	CompanyID *string `json:"company_id,omitempty" validate:"omitempty,uuid"`
	Assignee  *string `json:"assignee,omitempty"`
}

// ChangeStatusRequest represents a task status change
type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof='Not Started' 'In Progress' 'Blocked' 'Completed' 'Done'"`
}
