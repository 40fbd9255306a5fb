package meeting

import "time"

// CreateMeetingRequest represents the request to create a meeting
type CreateMeetingRequest struct {
	Title       string     `json:"title" validate:"required,min=1,max=255"`
	Status      string     `json:"status" validate:"omitempty,oneof=Scheduled Postponed Cancelled Completed"`
	StartTime   *time.Time `json:"start_time" validate:"required"`
	MeetingLink *string    `json:"meeting_link,omitempty" validate:"omitempty,url"`
	CompanyID   *string    `json:"company_id,omitempty" validate:"omitempty,uuid"`
}

// UpdateMeetingRequest represents the request to update a meeting
type UpdateMeetingRequest struct {
	Title       *string    `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Status      *string    `json:"status,omitempty" validate:"omitempty,oneof=Scheduled Postponed Cancelled Completed"`
	StartTime   *time.Time `json:"start_time,omitempty"`
	MeetingLink *string    `json:"meeting_link,omitempty" validate:"omitempty,url"`
	CompanyID   *string    `json:"company_id,omitempty" validate:"omitempty,uuid"`
}

// ChangeStatusRequest represents a meeting status change
type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Scheduled Postponed Cancelled Completed"`
}
